package draw

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Half-block glyphs: one terminal cell holds two vertical sub-pixels.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

const (
	resetStyle = "\033[0m"

	// Button press/release reports in SGR form (ESC [ < b ; x ; y M).
	mouseClickOn  = "\033[?1000h"
	mouseClickOff = "\033[?1000l"
	mouseSGROn    = "\033[?1006h"
	mouseSGROff   = "\033[?1006l"
)

// ChunkWriter collects one gallery frame (canvas cells, border and labels)
// and sends it to the session in maxChunkSize pieces on Flush. Positions
// passed to WriteAt are canvas cells; the centring offset is added here.
type ChunkWriter struct {
	frame  bytes.Buffer
	out    *bufio.Writer
	scrap  []byte
	offCol int
	offRow int
}

var _ io.Writer = (*ChunkWriter)(nil)

// NewChunkWriter returns a frame writer for w with the canvas placed at
// (offsetCol, offsetRow).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		scrap:  make([]byte, 0, 24),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the canvas after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// Write appends raw bytes to the frame. Canvas.Render writes through it.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// WriteAt places s at 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.scrap = append(cw.scrap[:0], "\033["...)
	cw.scrap = strconv.AppendInt(cw.scrap, int64(row+cw.offRow), 10)
	cw.scrap = append(cw.scrap, ';')
	cw.scrap = strconv.AppendInt(cw.scrap, int64(col+cw.offCol), 10)
	cw.scrap = append(cw.scrap, 'H')
	cw.frame.Write(cw.scrap)
	cw.frame.WriteString(s)
}

// SetForeground switches label text to a truecolor foreground.
func (cw *ChunkWriter) SetForeground(r, g, b uint8) {
	fmt.Fprintf(&cw.frame, "\033[38;2;%d;%d;%dm", r, g, b)
}

// ResetStyle returns to the terminal's default colours.
func (cw *ChunkWriter) ResetStyle() {
	cw.frame.WriteString(resetStyle)
}

// Flush sends the collected frame and empties it.
func (cw *ChunkWriter) Flush() error {
	for cw.frame.Len() > 0 {
		if _, err := cw.out.Write(cw.frame.Next(maxChunkSize)); err != nil {
			cw.frame.Reset()
			return err
		}
	}
	cw.frame.Reset()
	return cw.out.Flush()
}

// TermSizeFunc reports the size of the player's terminal in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the local terminal on stdout. SSH sessions
// supply their own from the pty window.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen wipes the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[H\033[2J")
}

// HideCursor hides the cursor while a round is on screen.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor restores the cursor on exit.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}

// EnableMouse turns on SGR click reporting so shots arrive as input bytes.
func EnableMouse(w io.Writer) {
	io.WriteString(w, mouseSGROn+mouseClickOn)
}

// DisableMouse turns click reporting back off.
func DisableMouse(w io.Writer) {
	io.WriteString(w, mouseClickOff+mouseSGROff)
}
