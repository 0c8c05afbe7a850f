package object

import (
	"testing"

	"github.com/tomz197/gallery/internal/draw/drawtest"
	"github.com/tomz197/gallery/internal/physics"
)

func TestNewParticleRanges(t *testing.T) {
	for _, v := range []float64{0, 0.5, 0.999} {
		p := NewParticle(physics.Vec2{X: 10, Y: 20}, fixedRandom(v))
		if p.Vel.X < -4 || p.Vel.X >= 4 || p.Vel.Y < -4 || p.Vel.Y >= 4 {
			t.Errorf("rand %v: Vel = %v out of range", v, p.Vel)
		}
		if p.Radius < 2 || p.Radius >= 6 {
			t.Errorf("rand %v: Radius = %v out of range", v, p.Radius)
		}
		if p.Alpha != 1 || p.Gravity != 0.2 {
			t.Errorf("rand %v: Alpha = %v Gravity = %v, want 1 and 0.2", v, p.Alpha, p.Gravity)
		}
		p.Release()
	}
}

func TestParticleHueIsWarm(t *testing.T) {
	// hue 10 at rand 0: red dominant, some green, no blue.
	p := NewParticle(physics.Vec2{}, fixedRandom(0))
	if p.Color.R != 255 || p.Color.B != 0 || p.Color.G == 0 || p.Color.G > 64 {
		t.Errorf("Color = %v, want a red-orange", p.Color)
	}
}

func TestParticleUpdate(t *testing.T) {
	p := &Particle{
		Pos:     physics.Vec2{X: 100, Y: 100},
		Vel:     physics.Vec2{X: 2, Y: -1},
		Radius:  4,
		Alpha:   1,
		Gravity: 0.2,
	}
	remove, err := p.Update(UpdateContext{})
	if err != nil || remove {
		t.Fatalf("Update = %v, %v; want false, nil", remove, err)
	}
	if !near(p.Vel.X, 1.96) || !near(p.Vel.Y, -0.8) {
		t.Errorf("Vel = %v, want {1.96 -0.8}", p.Vel)
	}
	if !near(p.Pos.X, 101.96) || !near(p.Pos.Y, 99.2) {
		t.Errorf("Pos = %v, want {101.96 99.2}", p.Pos)
	}
	if !near(p.Alpha, 0.98) || !near(p.Radius, 3.88) {
		t.Errorf("Alpha = %v Radius = %v, want 0.98 3.88", p.Alpha, p.Radius)
	}
}

func TestParticleRemovedWhenShrunk(t *testing.T) {
	p := &Particle{Radius: 0.51, Alpha: 1}
	remove, _ := p.Update(UpdateContext{})
	if !remove {
		t.Errorf("radius %v should be removed", p.Radius)
	}
}

func TestParticleRemovedWhenFaded(t *testing.T) {
	p := &Particle{Radius: 5, Alpha: 0.02}
	remove, _ := p.Update(UpdateContext{})
	if !remove {
		t.Errorf("alpha %v should be removed", p.Alpha)
	}
}

func TestParticleEventuallyDies(t *testing.T) {
	p := NewParticle(physics.Vec2{}, fixedRandom(0.9))
	for i := 0; i < 100; i++ {
		if remove, _ := p.Update(UpdateContext{}); remove {
			return
		}
	}
	t.Error("particle still alive after 100 updates")
}

func TestParticleDraw(t *testing.T) {
	p := &Particle{Pos: physics.Vec2{X: 5, Y: 6}, Radius: 3, Alpha: 0.5}
	rec := drawtest.NewRecorder(100, 100)
	p.Draw(DrawContext{Surface: rec})

	c := rec.Ops("fillCircle")
	if len(c) != 1 || c[0].X != 5 || c[0].W != 3 || c[0].Color.A != 128 {
		t.Errorf("draw calls = %v, want one circle r=3 alpha 128", c)
	}
}

func TestSpawnExplosionNilSpawner(t *testing.T) {
	SpawnExplosion(physics.Vec2{}, 5, nil, nil)
}
