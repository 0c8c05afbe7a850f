// Package draw defines the render surface the game draws on and the
// terminal implementation of it.
package draw

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Align controls horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size 2D drawing target in logical pixels.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	// Clear wipes the surface to its background.
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	// Image blits the image at path into the rectangle. It returns false,
	// drawing nothing, when the image is not loaded yet.
	Image(path string, x, y, w, h float64) bool
	Text(x, y float64, s string, c color.Color, align Align)
}

// WithAlpha returns c with its alpha multiplied by a (clamped to [0,1]).
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a = math.Max(0, math.Min(1, a))
	n.A = uint8(math.Round(float64(n.A) * a))
	return n
}

// Hex parses "#rrggbb" into an opaque colour. Malformed input yields white.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
