// Package export renders committed scenes to PDF.
//
// A scene exports as a single page sized to its content bounds. Objects are
// drawn bottom to top as filled vector paths, so overlapping strokes layer
// the same way they do on screen. Geometry stays in curve form rather than
// being flattened, keeping the output resolution independent.
package export

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/scene"
)

// defaultPadding is the margin, in points, left around the scene content.
const defaultPadding = 16.0

type options struct {
	padding    float64
	background ink.RGBA
}

// Option configures PDF output.
//
// Example:
//
//	err := export.SavePDF("board.pdf", graph,
//		export.WithPadding(32),
//		export.WithBackground(ink.White))
type Option func(*options)

// WithPadding sets the margin, in points, between the scene bounds and the
// page edge. Negative values are treated as zero.
func WithPadding(pts float64) Option {
	return func(o *options) {
		if pts < 0 {
			pts = 0
		}
		o.padding = pts
	}
}

// WithBackground fills the page with a color before any objects are drawn.
// The default leaves the page white.
func WithBackground(c ink.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WritePDF writes the graph as a single-page PDF document. The page is
// sized to the union of the object bounds plus padding, with one PDF point
// per canvas unit. An empty graph produces a valid empty page.
func WritePDF(w io.Writer, g *scene.Graph, opts ...Option) error {
	o := options{padding: defaultPadding}
	for _, opt := range opts {
		opt(&o)
	}

	bounds := g.Bounds()
	width := bounds.Width() + 2*o.padding
	height := bounds.Height() + 2*o.padding
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	if o.background.A > 0 {
		r, gr, b := pdfChannels(o.background)
		doc.SetFillColor(r, gr, b)
		doc.SetAlpha(clamp01(o.background.A), "Normal")
		doc.Rect(0, 0, width, height, "F")
	}

	// Translate content so the scene origin lands inside the padding.
	ox, oy := o.padding, o.padding
	if !bounds.IsEmpty() {
		ox -= bounds.MinX
		oy -= bounds.MinY
	}

	for _, obj := range g.Objects() {
		if obj.Path.Empty() || obj.Opacity <= 0 {
			continue
		}
		fillObject(doc, obj, ox, oy)
	}
	return doc.Output(w)
}

// SavePDF writes the graph as a PDF file.
func SavePDF(path string, g *scene.Graph, opts ...Option) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return WritePDF(f, g, opts...)
}

// fillObject emits one object as a filled path, offset by (ox, oy).
func fillObject(doc *gofpdf.Fpdf, obj *scene.Object, ox, oy float64) {
	r, g, b := pdfChannels(obj.Fill)
	doc.SetFillColor(r, g, b)
	doc.SetAlpha(clamp01(obj.Fill.A*obj.Opacity), "Normal")

	var cur, start ink.Point
	for _, elem := range obj.Path.Elements() {
		switch e := elem.(type) {
		case ink.MoveTo:
			doc.MoveTo(e.Point.X+ox, e.Point.Y+oy)
			cur, start = e.Point, e.Point
		case ink.LineTo:
			doc.LineTo(e.Point.X+ox, e.Point.Y+oy)
			cur = e.Point
		case ink.QuadTo:
			// PDF has no quadratic operator; elevate to the equivalent cubic.
			c1 := cur.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			doc.CurveBezierCubicTo(c1.X+ox, c1.Y+oy, c2.X+ox, c2.Y+oy, e.Point.X+ox, e.Point.Y+oy)
			cur = e.Point
		case ink.CubicTo:
			doc.CurveBezierCubicTo(
				e.Control1.X+ox, e.Control1.Y+oy,
				e.Control2.X+ox, e.Control2.Y+oy,
				e.Point.X+ox, e.Point.Y+oy)
			cur = e.Point
		case ink.Close:
			doc.ClosePath()
			cur = start
		}
	}
	doc.DrawPath("F")
}

// pdfChannels converts a color to the 0..255 integer channels gofpdf expects.
func pdfChannels(c ink.RGBA) (r, g, b int) {
	to255 := func(v float64) int {
		return int(clamp01(v) * 255)
	}
	return to255(c.R), to255(c.G), to255(c.B)
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
