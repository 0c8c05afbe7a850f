// Package drawtest provides a draw.Surface that records calls for tests.
package drawtest

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tomz197/gallery/internal/draw"
)

// Call is one recorded surface operation.
type Call struct {
	Op         string
	X, Y, W, H float64
	Text       string
	Color      color.NRGBA
}

// Recorder implements draw.Surface by recording every call.
type Recorder struct {
	Width, Height float64
	// Ready lists image paths that report as loaded.
	Ready map[string]bool

	mu    sync.Mutex
	calls []Call
}

var _ draw.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h, Ready: map[string]bool{}}
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear() { r.add(Call{Op: "clear"}) }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Call{Op: "fillRect", X: x, Y: y, W: w, H: h, Color: toNRGBA(c)})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	r.add(Call{Op: "strokeRect", X: x, Y: y, W: w, H: h, Color: toNRGBA(c)})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.add(Call{Op: "fillCircle", X: cx, Y: cy, W: rad, Color: toNRGBA(c)})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, _ float64, c color.Color) {
	r.add(Call{Op: "strokeCircle", X: cx, Y: cy, W: rad, Color: toNRGBA(c)})
}

func (r *Recorder) Line(x1, y1, x2, y2, _ float64, c color.Color) {
	r.add(Call{Op: "line", X: x1, Y: y1, W: x2, H: y2, Color: toNRGBA(c)})
}

func (r *Recorder) Image(path string, x, y, w, h float64) bool {
	if !r.Ready[path] {
		return false
	}
	r.add(Call{Op: "image", X: x, Y: y, W: w, H: h, Text: path})
	return true
}

func (r *Recorder) Text(x, y float64, s string, c color.Color, _ draw.Align) {
	r.add(Call{Op: "text", X: x, Y: y, Text: s, Color: toNRGBA(c)})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Ops returns the calls with the given op name.
func (r *Recorder) Ops(op string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// HasText reports whether any text call contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Ops("text") {
		if strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// String summarises the recorded ops, for test failure messages.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.Calls() {
		fmt.Fprintf(&b, "%s(%q) ", c.Op, c.Text)
	}
	return b.String()
}
