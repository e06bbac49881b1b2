// Package display shows graphcalc frames on small pixel devices: anything
// implementing the TinyGo drivers.Displayer interface, including the
// in-memory RGB565 Framebuffer of this package.
package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorStatusBG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorStatusFG = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorErrorBG  = color.RGBA{R: 0xff, G: 0xe4, B: 0xe1, A: 0xff}
	colorErrorFG  = color.RGBA{R: 0xb2, G: 0x22, B: 0x22, A: 0xff}
)

// A Screen draws frames with a one line status bar at the bottom.
type Screen struct {
	Device drivers.Displayer
	Font   tinyfont.Fonter
}

// NewScreen returns a screen on d using a small proportional font.
func NewScreen(d drivers.Displayer) *Screen {
	return &Screen{Device: d, Font: &proggy.TinySZ8pt7b}
}

// StatusHeight is the height of the status bar in pixels.
func (s *Screen) StatusHeight() int {
	return int(s.Font.GetYAdvance())
}

// Show copies img to the device, writes status below it and flushes the
// device. An error status is highlighted. The part of img hidden by the
// status bar is not drawn.
func (s *Screen) Show(img image.Image, status string, isError bool) error {
	w, h := s.Device.Size()
	barTop := int(h) - s.StatusHeight()
	if status == "" {
		barTop = int(h)
	}

	if img != nil {
		b := img.Bounds()
		for y := 0; y < barTop && y < b.Dy(); y++ {
			for x := 0; x < int(w) && x < b.Dx(); x++ {
				c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
				s.Device.SetPixel(int16(x), int16(y), c)
			}
		}
	}

	if status != "" {
		bg, fg := colorStatusBG, colorStatusFG
		if isError {
			bg, fg = colorErrorBG, colorErrorFG
		}
		fillRect(s.Device, 0, barTop, int(w), int(h)-barTop, bg)
		text := truncateToWidth(s.Font, status, int(w)-4)
		// WriteLine takes the baseline; keep descenders inside the bar.
		tinyfont.WriteLine(s.Device, s.Font, 2, int16(h)-3, text, fg)
	}
	return s.Device.Display()
}

func fillRect(d drivers.Displayer, x, y, width, height int, c color.RGBA) {
	if f, ok := d.(interface {
		FillRectangle(x, y, width, height int16, c color.RGBA) error
	}); ok {
		_ = f.FillRectangle(int16(x), int16(y), int16(width), int16(height), c)
		return
	}
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			d.SetPixel(int16(px), int16(py), c)
		}
	}
}

func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	w, _ := tinyfont.LineWidth(f, s)
	if int(w) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		w, _ = tinyfont.LineWidth(f, string(r)+"...")
		if int(w) <= maxW {
			return string(r) + "..."
		}
	}
	return ""
}
