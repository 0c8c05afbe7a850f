package object

import (
	"math"
	"testing"

	"github.com/tomz197/gallery/internal/draw/drawtest"
	"github.com/tomz197/gallery/internal/physics"
)

// seqRandom replays vals in order, wrapping around.
type seqRandom struct {
	vals []float64
	i    int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

type collector struct {
	objs []Object
}

func (c *collector) Spawn(obj Object) { c.objs = append(c.objs, obj) }

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

var bounds = Bounds{Width: 800, Height: 600}

func TestNewTargetPlacement(t *testing.T) {
	rnd := &seqRandom{vals: []float64{0.5, 0.25, 1, 0}}
	tg := NewTarget(3, Identity{Name: "A"}, bounds, rnd)

	if tg.ID != 3 || !tg.Visible {
		t.Fatalf("target = %+v, want id 3 and visible", tg)
	}
	if !near(tg.Pos.X, 340) || !near(tg.Pos.Y, 102.5) {
		t.Errorf("Pos = %v, want {340 102.5}", tg.Pos)
	}
	if !near(tg.Vel.X, 2) || !near(tg.Vel.Y, -2) {
		t.Errorf("Vel = %v, want {2 -2}", tg.Vel)
	}
}

func TestRespawnStaysInBounds(t *testing.T) {
	for _, v := range []float64{0, 0.3, 0.999999} {
		tg := NewTarget(0, Identity{}, bounds, fixedRandom(v))
		if tg.Pos.X < 0 || tg.Pos.X+tg.Size.X > bounds.Width {
			t.Errorf("rand %v: X = %v out of bounds", v, tg.Pos.X)
		}
		if tg.Pos.Y < 0 || tg.Pos.Y+tg.Size.Y > bounds.Height {
			t.Errorf("rand %v: Y = %v out of bounds", v, tg.Pos.Y)
		}
		if math.Abs(tg.Vel.X) > TargetSpeed/2 || math.Abs(tg.Vel.Y) > TargetSpeed/2 {
			t.Errorf("rand %v: Vel = %v exceeds speed", v, tg.Vel)
		}
	}
}

func TestRespawnTinySurface(t *testing.T) {
	tg := NewTarget(0, Identity{}, Bounds{Width: 50, Height: 50}, fixedRandom(0.7))
	if tg.Pos.X != 0 || tg.Pos.Y != 0 {
		t.Errorf("Pos = %v, want origin when the surface is smaller than the target", tg.Pos)
	}
}

func TestAdvanceReflectsAtRightWall(t *testing.T) {
	tg := &Target{
		Pos:     physics.Vec2{X: 679, Y: 100},
		Vel:     physics.Vec2{X: 2, Y: 0},
		Size:    physics.Vec2{X: TargetWidth, Y: TargetHeight},
		Visible: true,
	}
	tg.Advance(bounds)

	if tg.Pos.X != 680 {
		t.Errorf("X = %v, want 680", tg.Pos.X)
	}
	if tg.Vel.X != -2 {
		t.Errorf("VelX = %v, want -2", tg.Vel.X)
	}
}

func TestAdvanceHiddenIsNoop(t *testing.T) {
	tg := &Target{Pos: physics.Vec2{X: 10, Y: 10}, Vel: physics.Vec2{X: 1, Y: 1}, Size: physics.Vec2{X: 120, Y: 190}}
	tg.Advance(bounds)
	if tg.Pos.X != 10 || tg.Pos.Y != 10 {
		t.Errorf("hidden target moved to %v", tg.Pos)
	}
}

func TestAdvanceStaysInBoundsOverManyFrames(t *testing.T) {
	tg := NewTarget(0, Identity{}, bounds, &seqRandom{vals: []float64{0.1, 0.9, 0.99, 0.01}})
	for range 5000 {
		tg.Advance(bounds)
		if tg.Pos.X < 0 || tg.Pos.X > bounds.Width-tg.Size.X || tg.Pos.Y < 0 || tg.Pos.Y > bounds.Height-tg.Size.Y {
			t.Fatalf("Pos = %v escaped bounds", tg.Pos)
		}
	}
}

func TestTestHit(t *testing.T) {
	tg := &Target{Pos: physics.Vec2{X: 100, Y: 100}, Size: physics.Vec2{X: 120, Y: 190}, Visible: true}
	c := tg.Center()

	tests := []struct {
		name string
		p    physics.Vec2
		want bool
	}{
		{"centre", c, true},
		{"on radius", physics.Vec2{X: c.X + 60, Y: c.Y}, true},
		{"just outside", physics.Vec2{X: c.X + 60.01, Y: c.Y}, false},
		{"box corner", tg.Pos, false},
	}
	for _, tt := range tests {
		if got := tg.TestHit(tt.p); got != tt.want {
			t.Errorf("%s: TestHit(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}

	tg.Visible = false
	if tg.TestHit(c) {
		t.Error("hidden target should not be hit")
	}
}

func TestHitSpawnsExplosion(t *testing.T) {
	tg := &Target{Pos: physics.Vec2{X: 100, Y: 100}, Size: physics.Vec2{X: 120, Y: 190}, Visible: true}
	var c collector
	tg.Hit(fixedRandom(0.5), &c)

	if tg.Visible {
		t.Error("target still visible after hit")
	}
	if len(c.objs) != ExplosionParticles {
		t.Fatalf("spawned %d objects, want %d", len(c.objs), ExplosionParticles)
	}
	for _, o := range c.objs {
		p, ok := o.(*Particle)
		if !ok {
			t.Fatalf("spawned %T, want *Particle", o)
		}
		if p.Pos != tg.Center() {
			t.Errorf("particle at %v, want %v", p.Pos, tg.Center())
		}
	}
}

func TestTargetDrawFallbackAndLabel(t *testing.T) {
	id := Identity{Name: "Alpha", Image: "a.png"}
	tg := &Target{Identity: id, Pos: physics.Vec2{X: 100, Y: 100}, Size: physics.Vec2{X: 120, Y: 190}, Visible: true}
	rec := drawtest.NewRecorder(800, 600)

	if err := tg.Draw(DrawContext{Surface: rec}); err != nil {
		t.Fatal(err)
	}
	if !rec.HasText("Alpha") {
		t.Errorf("label missing: %v", rec)
	}
	circles := rec.Ops("fillCircle")
	if len(circles) != 1 || circles[0].W != 60 {
		t.Errorf("fallback circles = %v, want one of radius 60", circles)
	}

	rec.Reset()
	rec.Ready["a.png"] = true
	tg.Draw(DrawContext{Surface: rec})
	imgs := rec.Ops("image")
	if len(imgs) != 1 || imgs[0].X != 100 || imgs[0].W != 120 {
		t.Errorf("image calls = %v, want one at x=100 w=120", imgs)
	}
	if len(rec.Ops("fillCircle")) != 0 {
		t.Error("fallback drawn although image is ready")
	}
}

func TestTargetDrawHitScale(t *testing.T) {
	tg := &Target{Identity: Identity{Image: "a.png"}, Pos: physics.Vec2{X: 100, Y: 100}, Size: physics.Vec2{X: 120, Y: 190}, Visible: true, HitFrames: 5}
	rec := drawtest.NewRecorder(800, 600)
	rec.Ready["a.png"] = true

	tg.Draw(DrawContext{Surface: rec})
	if tg.HitFrames != 4 {
		t.Errorf("HitFrames = %d, want 4", tg.HitFrames)
	}
	img := rec.Ops("image")[0]
	if !near(img.W, 180) || !near(img.X, 160-90) {
		t.Errorf("scaled image = %+v, want w=180 x=70", img)
	}
}

func TestTargetDrawHidden(t *testing.T) {
	tg := &Target{Size: physics.Vec2{X: 120, Y: 190}}
	rec := drawtest.NewRecorder(800, 600)
	tg.Draw(DrawContext{Surface: rec})
	if n := len(rec.Calls()); n != 0 {
		t.Errorf("hidden target made %d draw calls", n)
	}
}

func TestUpdateAllPrunes(t *testing.T) {
	rings := []*ClickRing{NewClickRing(physics.Vec2{}, true), NewClickRing(physics.Vec2{}, false)}
	rings[0].Alpha = 0.04

	kept, err := UpdateAll(rings, UpdateContext{})
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 || kept[0].WasHit {
		t.Errorf("kept = %v, want only the miss ring", kept)
	}
}
