package object

import (
	"math/rand/v2"

	"github.com/tomz197/gallery/internal/draw"
)

// Random supplies uniform floats in [0, 1).
type Random interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom draws from the process-wide math/rand/v2 source.
var DefaultRandom Random = globalRandom{}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Bounds is the playfield size in surface pixels.
type Bounds struct {
	Width, Height float64
}

// UpdateContext provides all the information an object needs during update.
// Entity motion is per frame, so Delta is informational only.
type UpdateContext struct {
	Delta   float64
	Bounds  Bounds
	Spawner Spawner
	Random  Random
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// UpdateAll updates every object in place and drops the ones that ask to be
// removed, releasing pooled ones. The returned slice shares objs' backing array.
func UpdateAll[T Object](objs []T, ctx UpdateContext) ([]T, error) {
	kept := objs[:0]
	for _, obj := range objs {
		remove, err := obj.Update(ctx)
		if err != nil {
			return objs, err
		}
		if remove {
			ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(objs[len(kept):])
	return kept, nil
}

// DrawAll draws objects in order, stopping at the first error.
func DrawAll[T Object](objs []T, ctx DrawContext) error {
	for _, obj := range objs {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
