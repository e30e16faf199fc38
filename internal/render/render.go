package render

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/clockcast/clockcast/internal/render/layout"
)

// Target display geometry. The canvas is always exactly this size.
const (
	CanvasWidth  = 128
	CanvasHeight = 64
)

const timeLayout = "15:04:05"

var (
	Background = color.RGBA{A: 0xFF}
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Renderer draws a clock face into a fixed-size offscreen canvas.
// It holds only the immutable glyph face and is safe to reuse across ticks.
type Renderer struct {
	face font.Face
}

func New(face font.Face) *Renderer { return &Renderer{face: face} }

// Frame returns a fresh canvas with t formatted as HH:MM:SS in white on
// black, centered via the measured glyph bounding box. For a fixed t the
// output is byte-identical across calls.
func (r *Renderer) Frame(t time.Time) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	text := t.Format(timeLayout)
	bounds, _ := font.BoundString(r.face, text)
	origin := layout.Center(boxSize(bounds), canvas.Bounds())

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  &image.Uniform{C: Foreground},
		Face: r.face,
		// Offset the dot so the measured box lands exactly at origin.
		// Text wider than the canvas starts at a negative offset; there
		// is no clipping or scaling.
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X) - bounds.Min.X,
			Y: fixed.I(origin.Y) - bounds.Min.Y,
		},
	}
	drawer.DrawString(text)
	return canvas
}

// TextOrigin reports the top-left point at which Frame places the measured
// text box for s.
func (r *Renderer) TextOrigin(s string) image.Point {
	bounds, _ := font.BoundString(r.face, s)
	return layout.Center(boxSize(bounds), image.Rect(0, 0, CanvasWidth, CanvasHeight))
}

func boxSize(bounds fixed.Rectangle26_6) image.Point {
	return image.Pt((bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil())
}
