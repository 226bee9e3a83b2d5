// Package raster provides a software render surface that rasterizes path
// descriptors into an RGBA image using golang.org/x/image/vector. It backs
// the committed and ephemeral layers when no host renderer is available,
// and doubles as the PNG export path.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/render"
)

// Surface is a CPU rasterizing implementation of render.Surface. Path
// coordinates are logical (internal) pixels; the pixel store is scaled by
// the device pixel ratio.
type Surface struct {
	width, height int
	scale         float64
	background    ink.RGBA

	img *image.RGBA
	ras *vector.Rasterizer
}

var (
	_ render.Surface = (*Surface)(nil)
	_ render.Resizer = (*Surface)(nil)
)

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithScale sets the device pixel ratio. The pixel store is scaled by this
// factor while path coordinates stay in logical pixels.
func WithScale(scale float64) SurfaceOption {
	return func(s *Surface) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithBackground makes Clear fill the surface with a solid color instead
// of leaving it transparent.
func WithBackground(c ink.RGBA) SurfaceOption {
	return func(s *Surface) {
		s.background = c
	}
}

// NewSurface creates a cleared surface of width by height logical pixels.
func NewSurface(width, height int, opts ...SurfaceOption) *Surface {
	s := &Surface{width: width, height: height, scale: 1, ras: &vector.Rasterizer{}}
	for _, opt := range opts {
		opt(s)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, s.pixels(width), s.pixels(height)))
	s.Clear()
	return s
}

func (s *Surface) pixels(v int) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(float64(v) * s.scale))
}

// Width returns the logical width in internal pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the logical height in internal pixels.
func (s *Surface) Height() int { return s.height }

// Scale returns the device pixel ratio.
func (s *Surface) Scale() float64 { return s.scale }

// Image returns the backing pixel store. The image is live: drawing
// through the surface mutates it.
func (s *Surface) Image() *image.RGBA { return s.img }

// Clear erases the surface to its background color, transparent by
// default.
func (s *Surface) Clear() {
	if s.background.A > 0 {
		src := image.NewUniform(s.background.Color())
		draw.Draw(s.img, s.img.Bounds(), src, image.Point{}, draw.Src)
		return
	}
	clear(s.img.Pix)
}

// Resize reallocates the pixel store for a new logical size and clears it.
// Content is discarded; the pipeline redraws after resizing.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, s.pixels(width), s.pixels(height)))
	s.Clear()
}

// FillPath rasterizes one path onto the surface with the given paint.
// Subpaths left open are closed before filling, matching the fill behavior
// of the path's vector form.
func (s *Surface) FillPath(path *ink.PathData, paint render.Paint) error {
	if path == nil || path.Empty() {
		return nil
	}
	b := s.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over

	k := float32(s.scale)
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			if open {
				s.ras.ClosePath()
			}
			s.ras.MoveTo(float32(e.Point.X)*k, float32(e.Point.Y)*k)
			open = true
		case ink.LineTo:
			s.ras.LineTo(float32(e.Point.X)*k, float32(e.Point.Y)*k)
		case ink.QuadTo:
			s.ras.QuadTo(
				float32(e.Control.X)*k, float32(e.Control.Y)*k,
				float32(e.Point.X)*k, float32(e.Point.Y)*k,
			)
		case ink.CubicTo:
			s.ras.CubeTo(
				float32(e.Control1.X)*k, float32(e.Control1.Y)*k,
				float32(e.Control2.X)*k, float32(e.Control2.Y)*k,
				float32(e.Point.X)*k, float32(e.Point.Y)*k,
			)
		case ink.Close:
			s.ras.ClosePath()
			open = false
		}
	}
	if open {
		s.ras.ClosePath()
	}

	s.ras.Draw(s.img, b, image.NewUniform(fillColor(paint)), image.Point{})
	return nil
}

// fillColor flattens a paint into one straight-alpha color.
func fillColor(p render.Paint) color.Color {
	opacity := p.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return p.Fill.WithAlpha(p.Fill.A * opacity).Color()
}

// EncodePNG writes the surface pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.img)
}
