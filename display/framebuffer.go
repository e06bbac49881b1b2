package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Framebuffer is an in-memory RGB565 display, two bytes per pixel, low
// byte first, the layout of most SPI panels.
type Framebuffer struct {
	width, height int
	stride        int
	buf           []byte

	// Present, if set, is called by Display with the finished buffer.
	Present func(buf []byte) error
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer returns a black framebuffer of w×h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		width:  w,
		height: h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
	}
}

func (d *Framebuffer) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.width || iy < 0 || iy >= d.height {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.stride + ix*2
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
}

func (d *Framebuffer) Display() error {
	if d.Present == nil {
		return nil
	}
	return d.Present(d.buf)
}

func (d *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.width)
	y0 := clampInt(int(y), 0, d.height)
	x1 := clampInt(int(x)+int(width), 0, d.width)
	y1 := clampInt(int(y)+int(height), 0, d.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	for py := y0; py < y1; py++ {
		row := py * d.stride
		for px := x0; px < x1; px++ {
			d.buf[row+px*2] = lo
			d.buf[row+px*2+1] = hi
		}
	}
	return nil
}

// RGBAAt returns the color of pixel (x, y), expanded from RGB565.
func (d *Framebuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return color.RGBA{}
	}
	off := y*d.stride + x*2
	return rgb888From565(uint16(d.buf[off]) | uint16(d.buf[off+1])<<8)
}

// Image returns a copy of the framebuffer contents.
func (d *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			img.SetRGBA(x, y, d.RGBAAt(x, y))
		}
	}
	return img
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) color.RGBA {
	r, g, b := uint8(p>>11&0x1F), uint8(p>>5&0x3F), uint8(p&0x1F)
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
