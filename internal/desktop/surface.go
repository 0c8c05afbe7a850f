package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/gallery/internal/draw"
)

// Baseline of basicfont.Face7x13 from the top of its line box.
const fontAscent = 11

var fontFace = text.NewGoXFace(basicfont.Face7x13)

// Surface draws onto an offscreen ebiten image that is kept between frames,
// so Idle and Over screens stay visible without being redrawn.
type Surface struct {
	target *ebiten.Image
	images draw.ImageSource
	cache  map[string]*ebiten.Image
	w, h   float64
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface allocates a w×h offscreen surface. images may be nil.
func NewSurface(w, h int, images draw.ImageSource) *Surface {
	return &Surface{
		target: ebiten.NewImage(w, h),
		images: images,
		cache:  make(map[string]*ebiten.Image),
		w:      float64(w),
		h:      float64(h),
	}
}

// Target returns the offscreen image.
func (s *Surface) Target() *ebiten.Image {
	return s.target
}

func (s *Surface) Size() (float64, float64) { return s.w, s.h }

func (s *Surface) Clear() { s.target.Clear() }

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(width), c, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// Image blits a decoded asset, uploading it to the GPU on first use.
func (s *Surface) Image(path string, x, y, w, h float64) bool {
	img := s.ebitenImage(path)
	if img == nil {
		return false
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
	return true
}

func (s *Surface) ebitenImage(path string) *ebiten.Image {
	if img, ok := s.cache[path]; ok {
		return img
	}
	if s.images == nil || !s.images.Ready(path) {
		return nil
	}
	src, ok := s.images.Get(path)
	if !ok || src.Bounds().Empty() {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	s.cache[path] = img
	return img
}

// Text draws s with its baseline at y.
func (s *Surface) Text(x, y float64, str string, c color.Color, align draw.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-fontAscent)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = textAlign(align)
	text.Draw(s.target, str, fontFace, op)
}

func textAlign(a draw.Align) text.Align {
	switch a {
	case draw.AlignCenter:
		return text.AlignCenter
	case draw.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
