package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/input"
)

// RunOptions configures the terminal host loop.
type RunOptions struct {
	Game         Options
	TermSizeFunc draw.TermSizeFunc
	// Images backs target image blits; nil draws the fallback shapes.
	Images draw.ImageSource
}

// Run plays a game in the terminal behind r and w with the standard
// Input → Update → Draw cycle. It returns when the player quits, the input
// ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts RunOptions) error {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	game := NewGame(opts.Game)
	stream := input.StartStream(r)

	termWidth, termHeight, err := termSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, game.opts.Width, game.opts.Height)
	canvas.SetOffset(offsetCol, offsetRow)
	surface := draw.NewTerminalSurface(canvas, opts.Images)
	cw := draw.NewChunkWriter(w, offsetCol, offsetRow)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	draw.ClearScreen(w)
	defer func() {
		draw.ClearScreen(w)
		draw.DisableMouse(w)
		draw.ShowCursor(w)
	}()

	for {
		frameStart := time.Now()
		if ctx.Err() != nil {
			return nil
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || in.Closed {
			return nil
		}
		for _, c := range in.Clicks {
			x, y := canvas.TerminalToLogical(c.Col, c.Row)
			game.Click(x, y)
		}

		if updateScreen(termSize, canvas, cw) {
			game.Redraw()
		}

		// ===== UPDATE + DRAW PHASE =====
		ran, err := game.Frame(surface)
		if err != nil {
			return err
		}
		if ran {
			surface.Flush(cw)
			if err := cw.Flush(); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes it clears the terminal to remove residual pixels
// outside the new canvas area and reports true.
func updateScreen(termSize draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter) bool {
	termWidth, termHeight, err := termSize()
	if err != nil {
		return false
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == canvas.TerminalWidth() && renderHeight == canvas.TerminalHeight() &&
		offsetCol == canvas.OffsetCol() && offsetRow == canvas.OffsetRow() {
		return false
	}

	draw.ClearScreen(cw)
	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw.SetOffset(offsetCol, offsetRow)
	return true
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxTermWidth)
	renderHeight = min(termHeight, maxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
