package loop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/object"
	"github.com/tomz197/gallery/internal/score"
)

var (
	skyTop     = draw.Hex("#87CEEB")
	skyBottom  = draw.Hex("#E0F6FF")
	gold       = draw.Hex("#FFD700")
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shade      = color.NRGBA{A: 0xff}
	medalTints = []color.NRGBA{gold, draw.Hex("#C0C0C0"), draw.Hex("#CD7F32")}
)

// Scoreboard layout, in surface pixels.
const (
	boardWidth   = 190
	boardMargin  = 10
	boardHeader  = 40
	boardRow     = 35
	summaryTop   = 220
	summaryRow   = 40
	summaryHalfW = 150
)

// render draws the whole frame for the current phase.
func (g *Game) render(s draw.Surface) error {
	s.Clear()
	drawBackground(s)

	switch g.state.Phase {
	case PhaseIdle:
		drawStartScreen(s, g.opts.RoundDuration)
	case PhaseRunning:
		ctx := object.DrawContext{Surface: s}
		if err := object.DrawAll(g.state.Targets, ctx); err != nil {
			return err
		}
		if err := object.DrawAll(g.state.Particles, ctx); err != nil {
			return err
		}
		if err := object.DrawAll(g.state.Rings, ctx); err != nil {
			return err
		}
		drawHUD(s, g.state)
		drawScoreboard(s, g.state.Score.Ranked(), g.opts.Roster)
	case PhaseOver:
		if err := object.DrawAll(g.state.Targets, object.DrawContext{Surface: s}); err != nil {
			return err
		}
		drawGameOver(s, g.state.Score, g.opts.Roster)
	}
	return nil
}

// drawBackground fills a two-band sky.
func drawBackground(s draw.Surface) {
	w, h := s.Size()
	split := h * 0.6
	s.FillRect(0, 0, w, split, skyTop)
	s.FillRect(0, split, w, h-split, skyBottom)
}

// drawStartScreen draws the title screen.
func drawStartScreen(s draw.Surface, duration float64) {
	w, h := s.Size()
	cx, cy := w/2, h/2
	s.FillRect(0, 0, w, h, draw.WithAlpha(shade, 0.5))

	s.Text(cx, cy-60, "SHOOTING GALLERY", white, draw.AlignCenter)
	s.Text(cx, cy, "Click the moving targets to shoot them", white, draw.AlignCenter)
	s.Text(cx, cy+40, fmt.Sprintf("Each hit = %d points, %gs on the clock", score.PointsPerHit, duration), white, draw.AlignCenter)
	s.Text(cx, cy+100, "Click to start", gold, draw.AlignCenter)
}

// drawHUD draws score and time in the top-left corner.
func drawHUD(s draw.Surface, st *State) {
	s.Text(boardMargin, 20, fmt.Sprintf("Score: %d", st.Score.Total()), white, draw.AlignLeft)
	s.Text(boardMargin, 45, fmt.Sprintf("Time: %.0fs", math.Ceil(st.TimeLeft)), white, draw.AlignLeft)
}

// drawScoreboard draws the live tally panel in the top-right corner.
func drawScoreboard(s draw.Surface, ranked []score.Entry, roster []object.Identity) {
	w, _ := s.Size()
	x := w - boardWidth - boardMargin
	y := float64(boardMargin)
	height := boardHeader + float64(len(ranked))*boardRow + 10

	s.FillRect(x, y, boardWidth, height, draw.WithAlpha(shade, 0.7))
	s.StrokeRect(x, y, boardWidth, height, 2, gold)
	s.Text(x+boardWidth/2, y+25, "SCOREBOARD", gold, draw.AlignCenter)

	row := y + boardHeader + 5
	for i, e := range ranked {
		if i%2 == 0 {
			s.FillRect(x+5, row-20, boardWidth-10, boardRow-5, draw.WithAlpha(white, 0.05))
		}
		s.Text(x+15, row, e.Name, identityColor(roster, e.Name), draw.AlignLeft)
		s.Text(x+boardWidth-15, row, fmt.Sprintf("%d hits", e.Count), white, draw.AlignRight)
		row += boardRow
	}
}

// drawGameOver draws the final summary with medals for the top three.
func drawGameOver(s draw.Surface, tracker *score.Tracker, roster []object.Identity) {
	w, h := s.Size()
	cx := w / 2
	s.FillRect(0, 0, w, h, draw.WithAlpha(shade, 0.8))

	s.Text(cx, 100, "GAME OVER!", white, draw.AlignCenter)
	s.Text(cx, 160, fmt.Sprintf("Total score: %d", tracker.Total()), gold, draw.AlignCenter)
	s.Text(cx, summaryTop, "Summary", white, draw.AlignCenter)

	row := float64(summaryTop + 50)
	for i, e := range tracker.Ranked() {
		left := cx - summaryHalfW
		if i < len(medalTints) {
			s.FillCircle(left-15, row-5, 8, medalTints[i])
		}
		s.Text(left, row, e.Name, identityColor(roster, e.Name), draw.AlignLeft)
		s.Text(cx+summaryHalfW, row, fmt.Sprintf("%d hits (%d pts)", e.Count, e.Points()), white, draw.AlignRight)
		row += summaryRow
	}

	s.Text(cx, h-40, "Click to play again", gold, draw.AlignCenter)
}

func identityColor(roster []object.Identity, name string) color.NRGBA {
	for _, id := range roster {
		if id.Name == name {
			return id.Color
		}
	}
	return white
}
