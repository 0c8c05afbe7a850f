package object

import (
	"image/color"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/physics"
)

const (
	ringStartRadius = 5
	ringGrowth      = 2
	ringFade        = 0.05
	ringWidth       = 3
	tickInner       = 5
	tickOuter       = 15
)

var (
	ringHitColor  = color.NRGBA{R: 76, G: 175, B: 80, A: 0xff}
	ringMissColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ClickRing is the expanding ring left behind by a click.
type ClickRing struct {
	Pos    physics.Vec2
	Radius float64
	Alpha  float64
	WasHit bool
}

// NewClickRing creates a ring at pos; hit selects the green variant.
func NewClickRing(pos physics.Vec2, hit bool) *ClickRing {
	return &ClickRing{Pos: pos, Radius: ringStartRadius, Alpha: 1, WasHit: hit}
}

// Alive reports whether the ring is still visible.
func (r *ClickRing) Alive() bool {
	return r.Alpha > 0
}

// Update grows and fades the ring.
func (r *ClickRing) Update(UpdateContext) (bool, error) {
	r.Radius += ringGrowth
	r.Alpha -= ringFade
	return !r.Alive(), nil
}

// Draw renders the ring with four crosshair ticks outside it.
func (r *ClickRing) Draw(ctx DrawContext) error {
	if !r.Alive() {
		return nil
	}
	base := ringMissColor
	if r.WasHit {
		base = ringHitColor
	}
	c := draw.WithAlpha(base, r.Alpha)
	s := ctx.Surface
	x, y := r.Pos.X, r.Pos.Y
	in, out := r.Radius+tickInner, r.Radius+tickOuter

	s.StrokeCircle(x, y, r.Radius, ringWidth, c)
	s.Line(x-out, y, x-in, y, ringWidth, c)
	s.Line(x+in, y, x+out, y, ringWidth, c)
	s.Line(x, y-out, x, y-in, ringWidth, c)
	s.Line(x, y+in, x, y+out, ringWidth, c)
	return nil
}
