// Package loop runs the shooting gallery: round state, click dispatch, the
// per-frame update and the terminal host loop.
package loop

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/gallery/internal/clock"
	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/object"
	"github.com/tomz197/gallery/internal/physics"
	"github.com/tomz197/gallery/internal/score"
)

// Display receives the score and remaining time once per running frame.
type Display interface {
	ShowScore(total int)
	ShowTime(seconds float64)
}

// Recorder observes round events, e.g. for metrics.
type Recorder interface {
	RoundStarted()
	RoundEnded(total int)
	Shot(hit bool)
}

// Options configures a Game. Zero values get defaults.
type Options struct {
	Width, Height float64
	RoundDuration float64
	TargetCount   int
	Roster        []object.Identity

	Clock    clock.Clock
	Random   object.Random
	Display  Display
	Recorder Recorder
	Logger   *log.Logger
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if d := o.RoundDuration; math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		o.RoundDuration = 15
	}
	if o.TargetCount <= 0 {
		o.TargetCount = 4
	}
	if len(o.Roster) == 0 {
		o.Roster = DefaultRoster()
	}
	if o.Clock == nil {
		o.Clock = clock.NewSystem()
	}
	if o.Random == nil {
		o.Random = object.DefaultRandom
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// frameRequest is the single pending frame, tagged with the generation it
// was requested for.
type frameRequest struct {
	generation uint64
	valid      bool
}

// Game owns one player's round. Its methods must be called from a single
// goroutine.
type Game struct {
	opts    Options
	state   *State
	pending frameRequest
	logger  *log.Logger
}

// NewGame creates a game in the Idle phase with its start screen requested.
func NewGame(opts Options) *Game {
	opts.setDefaults()
	g := &Game{
		opts:   opts,
		logger: opts.Logger,
	}
	g.state = g.newState(0)
	g.requestFrame()
	return g
}

// State exposes the current round state. Callers must not keep it across
// Start or Reset.
func (g *Game) State() *State {
	return g.state
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Pending reports whether a current frame request is waiting.
func (g *Game) Pending() bool {
	return g.pending.valid && g.pending.generation == g.state.Generation
}

// names returns the roster names in roster order. Repeated names are merged
// by score.Tracker.
func (g *Game) names() []string {
	names := make([]string, 0, len(g.opts.Roster))
	for _, id := range g.opts.Roster {
		names = append(names, id.Name)
	}
	return names
}

func (g *Game) newState(generation uint64) *State {
	s := &State{
		Phase:      PhaseIdle,
		TimeLeft:   g.opts.RoundDuration,
		Bounds:     object.Bounds{Width: g.opts.Width, Height: g.opts.Height},
		Score:      score.NewTracker(g.names()...),
		Generation: generation,
	}
	s.Targets = make([]*object.Target, g.opts.TargetCount)
	for i := range s.Targets {
		id := g.opts.Roster[i%len(g.opts.Roster)]
		s.Targets[i] = object.NewTarget(i, id, s.Bounds, g.opts.Random)
	}
	return s
}

func (g *Game) requestFrame() {
	g.pending = frameRequest{generation: g.state.Generation, valid: true}
}

// Reset discards the round and returns to Idle with fresh targets, zero
// score and a full timer. Pending respawns go with it.
func (g *Game) Reset() {
	g.state.clearEffects()
	g.state = g.newState(g.state.Generation)
	g.requestFrame()
}

// Start begins a new round. The generation moves on, so any frame or
// respawn scheduled for an earlier round is ignored.
func (g *Game) Start() {
	g.state.clearEffects()
	g.state = g.newState(g.state.Generation + 1)
	g.state.Phase = PhaseRunning
	g.state.LastFrame = g.opts.Clock.Now()
	g.state.RoundID = uuid.NewString()
	g.requestFrame()

	if g.opts.Recorder != nil {
		g.opts.Recorder.RoundStarted()
	}
	g.logger.Info("round started", "round", g.state.RoundID, "duration", g.opts.RoundDuration, "targets", len(g.state.Targets))
}

// Redraw requests a frame at the current generation, e.g. after a resize.
func (g *Game) Redraw() {
	g.requestFrame()
}

// Click handles a click at surface-local coordinates.
func (g *Game) Click(x, y float64) {
	switch g.state.Phase {
	case PhaseIdle:
		g.Start()
		return
	case PhaseOver:
		g.Reset()
		g.Start()
		return
	}

	s := g.state
	p := physics.Vec2{X: x, Y: y}
	var hit *object.Target
	for _, t := range s.Targets {
		if t.TestHit(p) {
			hit = t
			break
		}
	}

	if hit != nil {
		hit.Hit(g.opts.Random, s)
		s.Score.Credit(hit.Identity.Name)
		s.Respawns = append(s.Respawns, Respawn{
			Due:        g.opts.Clock.Now() + RespawnDelay,
			TargetID:   hit.ID,
			Generation: s.Generation,
		})
		g.logger.Debug("hit", "round", s.RoundID, "target", hit.Identity.Name, "total", s.Score.Total())
	}
	s.Spawn(object.NewClickRing(p, hit != nil))

	if g.opts.Recorder != nil {
		g.opts.Recorder.Shot(hit != nil)
	}
}

// Frame runs one frame onto surface if a current request is pending. It
// returns whether a frame was run. A running round requests its next frame;
// Idle and Over draw once and wait for a click.
func (g *Game) Frame(surface draw.Surface) (bool, error) {
	req := g.pending
	if !req.valid {
		return false, nil
	}
	g.pending = frameRequest{}
	if req.generation != g.state.Generation {
		g.logger.Debug("dropping stale frame", "generation", req.generation, "current", g.state.Generation)
		return false, nil
	}

	wasRunning := g.state.Phase == PhaseRunning
	if wasRunning {
		if err := g.step(g.opts.Clock.Now()); err != nil {
			return true, err
		}
	}

	if err := g.render(surface); err != nil {
		return true, err
	}

	if wasRunning && g.opts.Display != nil {
		g.opts.Display.ShowScore(g.state.Score.Total())
		g.opts.Display.ShowTime(g.state.TimeLeft)
	}
	if g.state.Phase == PhaseRunning {
		g.requestFrame()
	}
	return true, nil
}
