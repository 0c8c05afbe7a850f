package draw

import (
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"
)

// ImageSource looks up decoded images by path. Surfaces check Ready before
// Get so a missing or still-loading image falls back to the placeholder.
type ImageSource interface {
	Ready(path string) bool
	Get(path string) (image.Image, bool)
}

// TerminalSurface implements Surface on a Canvas. Shapes go to the canvas;
// text is queued and written over the rendered canvas by Flush.
type TerminalSurface struct {
	canvas *Canvas
	images ImageSource
	labels []label
}

type label struct {
	x, y  float64
	text  string
	color color.NRGBA
	align Align
}

var _ Surface = (*TerminalSurface)(nil)

// NewTerminalSurface wraps canvas. images may be nil, in which case every
// image blit reports not ready.
func NewTerminalSurface(canvas *Canvas, images ImageSource) *TerminalSurface {
	return &TerminalSurface{canvas: canvas, images: images}
}

func (s *TerminalSurface) Size() (float64, float64) {
	return s.canvas.LogicalWidth(), s.canvas.LogicalHeight()
}

func (s *TerminalSurface) Clear() {
	s.canvas.Clear()
	s.labels = s.labels[:0]
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.canvas.FillRect(x, y, w, h, c)
}

func (s *TerminalSurface) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	s.canvas.StrokeRect(x, y, w, h, c)
}

func (s *TerminalSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.canvas.FillCircle(cx, cy, r, c)
}

func (s *TerminalSurface) StrokeCircle(cx, cy, r, _ float64, c color.Color) {
	s.canvas.StrokeCircle(cx, cy, r, c)
}

func (s *TerminalSurface) Line(x1, y1, x2, y2, _ float64, c color.Color) {
	s.canvas.DrawLine(x1, y1, x2, y2, c)
}

func (s *TerminalSurface) Image(path string, x, y, w, h float64) bool {
	if s.images == nil || !s.images.Ready(path) {
		return false
	}
	img, ok := s.images.Get(path)
	if !ok {
		return false
	}
	s.canvas.DrawImage(img, x, y, w, h)
	return true
}

func (s *TerminalSurface) Text(x, y float64, text string, c color.Color, align Align) {
	s.labels = append(s.labels, label{x: x, y: y, text: text, color: nrgba(c), align: align})
}

// Flush renders the canvas, its border and the queued text into cw.
// It does not flush cw itself.
func (s *TerminalSurface) Flush(cw *ChunkWriter) {
	s.canvas.Render(cw)
	s.canvas.RenderBorder(cw)

	for _, l := range s.labels {
		if l.color.A == 0 {
			continue
		}
		col, row := s.canvas.LogicalToTerminal(l.x, l.y)
		width := runewidth.StringWidth(l.text)
		switch l.align {
		case AlignCenter:
			col -= width / 2
		case AlignRight:
			col -= width
		}
		if col < 1 {
			col = 1
		}
		if row < 1 {
			row = 1
		}
		cw.SetForeground(l.color.R, l.color.G, l.color.B)
		cw.WriteAt(col, row, l.text)
	}
	cw.ResetStyle()
}
