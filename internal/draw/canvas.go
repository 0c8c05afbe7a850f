package draw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int      // Actual terminal columns
	termHeight     int      // Actual terminal rows
	subPixelHeight int      // termHeight * 2
	pixels         []uint32 // Flat slice: [y * termWidth + x]; 0 = empty, else pixelSet|rgb

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

const pixelSet = 1 << 24

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint32, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel blends col onto the pixel at actual terminal coordinates (no scaling).
// Empty pixels blend as black; a pure black result leaves the pixel empty so
// dark overlays dim what is under them without painting the terminal background.
func (c *Canvas) setPixel(x, y int, col color.NRGBA) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight || col.A == 0 {
		return
	}
	idx := y*c.termWidth + x
	dst := c.pixels[idx]
	a := float64(col.A) / 255
	blend := func(src uint8, shift uint) uint32 {
		d := float64((dst >> shift) & 0xff)
		return uint32(math.Round(float64(src)*a+d*(1-a))) << shift
	}
	rgb := blend(col.R, 16) | blend(col.G, 8) | blend(col.B, 0)
	if rgb == 0 {
		c.pixels[idx] = 0
		return
	}
	c.pixels[idx] = pixelSet | rgb
}

// At returns the colour of the pixel at terminal sub-pixel coordinates and
// whether it is set.
func (c *Canvas) At(x, y int) (color.NRGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.NRGBA{}, false
	}
	p := c.pixels[y*c.termWidth+x]
	if p == 0 {
		return color.NRGBA{}, false
	}
	return unpack(p), true
}

func unpack(p uint32) color.NRGBA {
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 255}
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col color.Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, nrgba(col))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(x1f, y1f, x2f, y2f float64, col color.Color) {
	n := nrgba(col)
	x1 := int(math.Round(x1f * c.scaleX))
	y1 := int(math.Round(y1f * c.scaleY))
	x2 := int(math.Round(x2f * c.scaleX))
	y2 := int(math.Round(y2f * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, n)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical space.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	n := nrgba(col)
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			c.setPixel(px, py, n)
		}
	}
}

// StrokeRect outlines a rectangle given in logical space.
func (c *Canvas) StrokeRect(x, y, w, h float64, col color.Color) {
	c.DrawLine(x, y, x+w, y, col)
	c.DrawLine(x+w, y, x+w, y+h, col)
	c.DrawLine(x+w, y+h, x, y+h, col)
	c.DrawLine(x, y+h, x, y, col)
}

// FillCircle fills a circle given in logical space. Because the axes scale
// independently the circle becomes an ellipse in pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	n := nrgba(col)
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}
	// Tiny circles still get one pixel.
	if rx < 0.5 && ry < 0.5 {
		c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)), n)
		return
	}

	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		dy := (float64(py) - pcy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for px := int(math.Round(pcx - half)); px <= int(math.Round(pcx+half)); px++ {
			c.setPixel(px, py, n)
		}
	}
}

// StrokeCircle outlines a circle given in logical space.
func (c *Canvas) StrokeCircle(cx, cy, r float64, col color.Color) {
	n := nrgba(col)
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	steps := int(2 * math.Pi * math.Max(rx, ry) * 1.5)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		c.setPixel(int(math.Round(pcx+math.Cos(a)*rx)), int(math.Round(pcy+math.Sin(a)*ry)), n)
	}
}

// DrawImage scales img into the logical rectangle using nearest-neighbour
// sampling. Pixels under half opacity are skipped.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() || w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		sy := b.Min.Y + (py-y0)*b.Dy()/(y1-y0)
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			sx := b.Min.X + (px-x0)*b.Dx()/(x1-x0)
			n := nrgba(img.At(sx, sy))
			if n.A < 128 {
				continue
			}
			n.A = 255
			c.setPixel(px, py, n)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24)

	var fg, bg uint32 // 0 = terminal default
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			var wantFg, wantBg uint32
			switch {
			case top != 0 && top == bottom:
				ch, wantFg = BlockFull, top
			case top != 0 && bottom != 0:
				ch, wantFg, wantBg = BlockUpperHalf, top, bottom
			case top != 0:
				ch, wantFg = BlockUpperHalf, top
			case bottom != 0:
				ch, wantFg = BlockLowerHalf, bottom
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			if wantFg != fg {
				p := unpack(wantFg)
				fmt.Fprintf(&c.renderBuf, "\033[38;2;%d;%d;%dm", p.R, p.G, p.B)
				fg = wantFg
			}
			if wantBg != bg {
				if wantBg == 0 {
					c.renderBuf.WriteString("\033[49m")
				} else {
					p := unpack(wantBg)
					fmt.Fprintf(&c.renderBuf, "\033[48;2;%d;%d;%dm", p.R, p.G, p.B)
				}
				bg = wantBg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	c.renderBuf.WriteString(resetStyle)

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based position (col, row)
// relative to the canvas origin (offset not applied).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based screen cell (as reported by the
// terminal, offset included) to logical coordinates in the cell's upper half.
// Cells outside the canvas map to coordinates outside the logical bounds.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := col - 1 - c.offsetCol
	cellRow := row - 1 - c.offsetRow
	return float64(px) / c.scaleX, (float64(cellRow*2) + 0.5) / c.scaleY
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
