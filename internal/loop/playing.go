package loop

import (
	"github.com/tomz197/gallery/internal/object"
	"github.com/tomz197/gallery/internal/score"
)

// step advances a running round to now.
func (g *Game) step(now float64) error {
	s := g.state
	dt := now - s.LastFrame
	if dt < 0 {
		dt = 0
	}
	s.LastFrame = now

	s.TimeLeft -= dt
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		g.endRound()
	}

	g.applyRespawns(now)
	return g.updateObjects(dt)
}

// endRound moves to Over. Effects keep their state for the summary frame.
func (g *Game) endRound() {
	s := g.state
	s.Phase = PhaseOver
	if g.opts.Recorder != nil {
		g.opts.Recorder.RoundEnded(s.Score.Total())
	}
	g.logger.Info("round over", "round", s.RoundID, "score", s.Score.Total(), "ranking", rankingSummary(s.Score.Ranked()))
}

// applyRespawns brings back targets whose delay has passed and drops
// entries left over from an earlier round.
func (g *Game) applyRespawns(now float64) {
	s := g.state
	kept := s.Respawns[:0]
	for _, r := range s.Respawns {
		if r.Generation != s.Generation {
			g.logger.Debug("dropping stale respawn", "target", r.TargetID, "generation", r.Generation)
			continue
		}
		if now < r.Due {
			kept = append(kept, r)
			continue
		}
		if t := s.Target(r.TargetID); t != nil {
			t.Respawn(s.Bounds, g.opts.Random)
		}
	}
	s.Respawns = kept
}

// updateObjects advances targets, particles and rings, pruning dead effects.
func (g *Game) updateObjects(dt float64) error {
	s := g.state
	ctx := object.UpdateContext{
		Delta:   dt,
		Bounds:  s.Bounds,
		Spawner: s,
		Random:  g.opts.Random,
	}

	var err error
	if s.Targets, err = object.UpdateAll(s.Targets, ctx); err != nil {
		return err
	}
	if s.Particles, err = object.UpdateAll(s.Particles, ctx); err != nil {
		return err
	}
	s.Rings, err = object.UpdateAll(s.Rings, ctx)
	return err
}

// rankingSummary flattens the tally for a log line.
func rankingSummary(entries []score.Entry) map[string]int {
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.Name] = e.Count
	}
	return out
}
