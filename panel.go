package graphcalc

import (
	"image"
	"image/color"
	imgdraw "image/draw"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the drawing surface of one frame. Lines and text go through
// Canvas, which anti-aliases; sampled grids are written pixel by pixel.
// Pixel rows count from the top.
type Panel struct {
	Canvas draw.Canvas
	X, Y   Range

	img   imgdraw.Image
	w, h  int
	trans pixelTrans
}

// NewPanel returns a panel of w×h pixels showing x horizontally and y
// vertically, painted with background.
func NewPanel(w, h int, x, y Range, background color.Color) *Panel {
	c := vgimg.NewWith(vgimg.UseDPI(72), vgimg.UseWH(vg.Length(w), vg.Length(h)))
	p := &Panel{
		Canvas: draw.New(c),
		X:      x,
		Y:      y,
		img:    c.Image(),
		w:      w,
		h:      h,
		trans:  pixelTrans{h: float64(h)},
	}
	imgdraw.Draw(p.img, p.img.Bounds(), image.NewUniform(background), image.Point{}, imgdraw.Src)
	return p
}

// Size returns the panel size in pixels.
func (p *Panel) Size() (w, h int) { return p.w, p.h }

// Image is the rendered raster.
func (p *Panel) Image() image.Image { return p.img }

// SetPixel paints pixel (px, py) if it lies inside the panel.
func (p *Panel) SetPixel(px, py int, c color.Color) {
	if px < 0 || py < 0 || px >= p.w || py >= p.h {
		return
	}
	b := p.img.Bounds()
	p.img.Set(b.Min.X+px, b.Min.Y+py, c)
}

// MapPx maps the pixel position (px, py) to a canvas point.
func (p *Panel) MapPx(px, py float64) vg.Point {
	return p.trans.point(px, py)
}

// MapXY maps the data coordinate (x, y) to a canvas point.
func (p *Panel) MapXY(x, y float64) vg.Point {
	return p.MapPx(p.X.ValueToPx(x), p.RowOf(y))
}

// RowOf is the pixel row of the value y. Row 0 is at the top.
func (p *Panel) RowOf(y float64) float64 {
	return float64(p.Y.PxCount-1) - p.Y.ValueToPx(y)
}

// CopyTo draws the panel into dst at its origin.
func (p *Panel) CopyTo(dst imgdraw.Image) {
	imgdraw.Draw(dst, dst.Bounds(), p.img, p.img.Bounds().Min, imgdraw.Src)
}
