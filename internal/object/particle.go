package object

import (
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/physics"
)

// ExplosionParticles is the number of particles a hit bursts into.
const ExplosionParticles = 20

const (
	particleGravity = 0.2
	particleDrag    = 0.98
	particleFade    = 0.02
	particleShrink  = 0.97
	particleMinSize = 0.5
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark from a hit.
type Particle struct {
	Pos     physics.Vec2
	Vel     physics.Vec2
	Radius  float64
	Alpha   float64
	Gravity float64
	Color   color.NRGBA
}

// NewParticle takes a particle from the pool and randomises it around pos:
// velocity in [-4, 4) per axis, radius in [2, 6), warm hue in [10, 70).
func NewParticle(pos physics.Vec2, rnd Random) *Particle {
	if rnd == nil {
		rnd = DefaultRandom
	}
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = physics.Vec2{X: (rnd.Float64() - 0.5) * 8, Y: (rnd.Float64() - 0.5) * 8}
	p.Radius = rnd.Float64()*4 + 2
	p.Alpha = 1
	p.Gravity = particleGravity

	hue := rnd.Float64()*60 + 10
	r, g, b := colorful.Hsl(hue, 1, 0.5).RGB255()
	p.Color = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	*p = Particle{}
	particlePool.Put(p)
}

// SpawnExplosion bursts count particles out of center.
func SpawnExplosion(center physics.Vec2, count int, rnd Random, spawner Spawner) {
	if spawner == nil {
		return
	}
	for range count {
		spawner.Spawn(NewParticle(center, rnd))
	}
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool {
	return p.Alpha > 0 && p.Radius > particleMinSize
}

// Update applies drag, gravity and decay. The particle asks to be removed
// once it has faded or shrunk away.
func (p *Particle) Update(UpdateContext) (bool, error) {
	p.Vel.X *= particleDrag
	p.Vel.Y += p.Gravity
	p.Pos = p.Pos.Add(p.Vel)
	p.Alpha -= particleFade
	p.Radius *= particleShrink
	return !p.Alive(), nil
}

// Draw renders the particle as a translucent disc.
func (p *Particle) Draw(ctx DrawContext) error {
	if !p.Alive() {
		return nil
	}
	ctx.Surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, draw.WithAlpha(p.Color, p.Alpha))
	return nil
}
