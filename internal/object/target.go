package object

import (
	"image/color"
	"math"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/physics"
)

// Target dimensions and top speed per axis.
const (
	TargetWidth  = 120
	TargetHeight = 190
	TargetSpeed  = 4
)

const (
	labelOffset   = 10
	outlineWidth  = 3
	hitScaleSteps = 10
)

// Identity names a target, picks its colour and image.
type Identity struct {
	Name  string
	Color color.NRGBA
	Image string
}

// Target is a bouncing box that can be clicked.
type Target struct {
	ID       int
	Identity Identity
	Pos      physics.Vec2
	Vel      physics.Vec2
	Size     physics.Vec2
	Visible  bool
	// HitFrames counts down a pop animation; each draw consumes one frame.
	HitFrames int
}

// NewTarget creates a visible target at a random place inside bounds.
func NewTarget(id int, identity Identity, bounds Bounds, rnd Random) *Target {
	t := &Target{
		ID:       id,
		Identity: identity,
		Size:     physics.Vec2{X: TargetWidth, Y: TargetHeight},
	}
	t.Respawn(bounds, rnd)
	return t
}

// Respawn re-randomises position and velocity and makes the target visible.
func (t *Target) Respawn(bounds Bounds, rnd Random) {
	if rnd == nil {
		rnd = DefaultRandom
	}
	maxX := bounds.Width - t.Size.X
	maxY := bounds.Height - t.Size.Y
	t.Pos = physics.Vec2{
		X: physics.Clamp(rnd.Float64()*maxX, 0, maxX),
		Y: physics.Clamp(rnd.Float64()*maxY, 0, maxY),
	}
	t.Vel = physics.Vec2{
		X: (rnd.Float64() - 0.5) * TargetSpeed,
		Y: (rnd.Float64() - 0.5) * TargetSpeed,
	}
	t.Visible = true
	t.HitFrames = 0
}

// Center returns the middle of the target's box.
func (t *Target) Center() physics.Vec2 {
	return t.Pos.Add(t.Size.Scale(0.5))
}

// Radius is the hit radius, half the shorter side.
func (t *Target) Radius() float64 {
	return math.Min(t.Size.X, t.Size.Y) / 2
}

// Advance moves a visible target one frame and bounces it off the walls.
func (t *Target) Advance(bounds Bounds) {
	if !t.Visible {
		return
	}
	t.Pos = t.Pos.Add(t.Vel)
	t.Pos.X, t.Vel.X = physics.Reflect(t.Pos.X, t.Vel.X, t.Size.X, bounds.Width)
	t.Pos.Y, t.Vel.Y = physics.Reflect(t.Pos.Y, t.Vel.Y, t.Size.Y, bounds.Height)
}

// TestHit reports whether p lands on a visible target.
func (t *Target) TestHit(p physics.Vec2) bool {
	return t.Visible && physics.PointInCircle(p, t.Center(), t.Radius())
}

// Hit hides the target and bursts particles from its centre.
func (t *Target) Hit(rnd Random, spawner Spawner) {
	t.Visible = false
	SpawnExplosion(t.Center(), ExplosionParticles, rnd, spawner)
}

// Update advances the target. Targets are never removed.
func (t *Target) Update(ctx UpdateContext) (bool, error) {
	t.Advance(ctx.Bounds)
	return false, nil
}

// Draw renders the label, then the image or a filled disc when the image
// isn't loaded yet.
func (t *Target) Draw(ctx DrawContext) error {
	if !t.Visible {
		return nil
	}
	s := ctx.Surface
	c := t.Center()
	s.Text(c.X, t.Pos.Y-labelOffset, t.Identity.Name, t.Identity.Color, draw.AlignCenter)

	scale := 1.0
	if t.HitFrames > 0 {
		scale += float64(t.HitFrames) / hitScaleSteps
		t.HitFrames--
	}
	w, h := t.Size.X*scale, t.Size.Y*scale
	if s.Image(t.Identity.Image, c.X-w/2, c.Y-h/2, w, h) {
		return nil
	}

	r := t.Radius() * scale
	s.FillCircle(c.X, c.Y, r, t.Identity.Color)
	s.StrokeCircle(c.X, c.Y, r, outlineWidth, color.White)
	return nil
}
