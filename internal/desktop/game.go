// Package desktop hosts the game in an ebiten window.
package desktop

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/loop"
)

const (
	pulseLow      = 0.25
	pulseHigh     = 1.0
	pulseDuration = 0.8 // seconds per half cycle
	pulseInset    = 4
	pulseWidth    = 4
)

var pulseColor = draw.Hex("#FFD700")

// Pulse ping-pongs a value between two bounds with an easing curve.
type Pulse struct {
	tween  *gween.Tween
	from   float32
	to     float32
	length float32
	fn     ease.TweenFunc
	value  float32
}

// NewPulse starts at from and eases towards to over length seconds.
func NewPulse(from, to, length float32, fn ease.TweenFunc) *Pulse {
	return &Pulse{
		tween:  gween.New(from, to, length, fn),
		from:   from,
		to:     to,
		length: length,
		fn:     fn,
		value:  from,
	}
}

// Update advances the pulse by dt seconds and returns the current value.
func (p *Pulse) Update(dt float32) float32 {
	v, finished := p.tween.Update(dt)
	p.value = v
	if finished {
		p.from, p.to = p.to, p.from
		p.tween = gween.New(p.from, p.to, p.length, p.fn)
	}
	return p.value
}

// Value returns the last computed value.
func (p *Pulse) Value() float32 {
	return p.value
}

// Game adapts a loop.Game to ebiten.Game.
type Game struct {
	game    *loop.Game
	surface *Surface
	pulse   *Pulse
	showFPS bool
}

var _ ebiten.Game = (*Game)(nil)

// Options configures the desktop host.
type Options struct {
	Images  draw.ImageSource
	ShowFPS bool
}

// New wraps game. The window's logical size is the game's surface size.
func New(game *loop.Game, opts Options) *Game {
	b := game.State().Bounds
	return &Game{
		game:    game,
		surface: NewSurface(int(b.Width), int(b.Height), opts.Images),
		pulse:   NewPulse(pulseLow, pulseHigh, pulseDuration, ease.InOutSine),
		showFPS: opts.ShowFPS,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.game.Click(float64(x), float64(y))
	}

	g.pulse.Update(float32(1 / float64(ebiten.TPS())))

	if _, err := g.game.Frame(g.surface); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Target(), nil)

	if g.game.Phase() != loop.PhaseRunning {
		w, h := g.surface.Size()
		c := draw.WithAlpha(pulseColor, float64(g.pulse.Value()))
		vector.StrokeRect(screen, pulseInset, pulseInset, float32(w-2*pulseInset), float32(h-2*pulseInset), pulseWidth, c, true)
	}
	if g.showFPS {
		_, h := g.surface.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, int(h)-18)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.surface.Size()
	return int(w), int(h)
}

// TitleDisplay shows score and time in the window title.
type TitleDisplay struct {
	Base  string
	score int
	secs  int
	last  string
	set   func(string)
}

// NewTitleDisplay creates a display that retitles the ebiten window.
func NewTitleDisplay(base string) *TitleDisplay {
	return &TitleDisplay{Base: base, set: ebiten.SetWindowTitle}
}

func (d *TitleDisplay) ShowScore(total int) {
	d.score = total
	d.apply()
}

func (d *TitleDisplay) ShowTime(seconds float64) {
	d.secs = int(math.Ceil(seconds))
	d.apply()
}

// Title returns the current window title.
func (d *TitleDisplay) Title() string {
	return fmt.Sprintf("%s | Score: %d | Time: %ds", d.Base, d.score, d.secs)
}

func (d *TitleDisplay) apply() {
	t := d.Title()
	if t == d.last {
		return
	}
	d.last = t
	if d.set != nil {
		d.set(t)
	}
}

var _ loop.Display = (*TitleDisplay)(nil)
