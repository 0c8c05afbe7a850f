package loop

import (
	"github.com/tomz197/gallery/internal/object"
	"github.com/tomz197/gallery/internal/score"
)

// Phase is the round's current state.
type Phase int

const (
	PhaseIdle    Phase = iota // Start screen, waiting for the first click
	PhaseRunning              // Timer counting down
	PhaseOver                 // Summary shown, waiting for a click to replay
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Respawn is a pending target respawn. Entries from an older generation are
// dropped instead of applied.
type Respawn struct {
	Due        float64
	TargetID   int
	Generation uint64
}

// State holds everything one round owns. It is replaced wholesale by reset.
type State struct {
	Phase     Phase
	TimeLeft  float64
	LastFrame float64

	Bounds    object.Bounds
	Targets   []*object.Target
	Particles []*object.Particle
	Rings     []*object.ClickRing
	Score     *score.Tracker
	Respawns  []Respawn

	Generation uint64
	RoundID    string
}

var _ object.Spawner = (*State)(nil)

// Spawn adds an effect spawned by an entity. Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Particle:
		s.Particles = append(s.Particles, o)
	case *object.ClickRing:
		s.Rings = append(s.Rings, o)
	}
}

// Target returns the target with the given ID, or nil.
func (s *State) Target(id int) *object.Target {
	for _, t := range s.Targets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// clearEffects releases pooled particles and drops rings and respawns.
func (s *State) clearEffects() {
	for _, p := range s.Particles {
		p.Release()
	}
	s.Particles = nil
	s.Rings = nil
	s.Respawns = nil
}
