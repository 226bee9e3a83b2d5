package ink

import (
	"fmt"
	"strconv"
	"strings"
)

// PathElement represents a single command in a path descriptor.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// PathData is a renderable path descriptor: the geometry of one committed
// vector object. It round-trips through an SVG-style string form for
// persistence.
type PathData struct {
	elements []PathElement
}

// NewPathData creates an empty path descriptor.
func NewPathData() *PathData {
	return &PathData{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to (x, y).
func (p *PathData) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadTo draws a quadratic Bezier curve through control (cx, cy) to (x, y).
func (p *PathData) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve with controls (c1x, c1y) and (c2x, c2y)
// to (x, y).
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *PathData) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path commands in order.
func (p *PathData) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path contains no commands.
func (p *PathData) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// Bounds returns the bounding rectangle of all path coordinates, control
// points included. Curves lie within the hull of their control points, so
// the box always contains the rendered geometry; it may overestimate
// slightly where curves cut corners.
func (p *PathData) Bounds() Rect {
	r := EmptyRect()
	if p == nil {
		return r
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			r = r.UnionPoint(e.Point)
		case LineTo:
			r = r.UnionPoint(e.Point)
		case QuadTo:
			r = r.UnionPoint(e.Control).UnionPoint(e.Point)
		case CubicTo:
			r = r.UnionPoint(e.Control1).UnionPoint(e.Control2).UnionPoint(e.Point)
		}
	}
	return r
}

// PathFromOutline converts a closed outline polygon into a smooth path
// descriptor using quadratic midpoint smoothing: each vertex becomes the
// control point of a curve ending at the midpoint to the next vertex,
// wrapping around the ring. The result has no visible faceting once the
// polygon carries more than a handful of vertices; very short outlines
// degrade to a simple rounded shape.
func PathFromOutline(outline []Point) *PathData {
	p := NewPathData()
	if len(outline) == 0 {
		return p
	}
	p.MoveTo(outline[0].X, outline[0].Y)
	for i, v := range outline {
		mid := v.Midpoint(outline[(i+1)%len(outline)])
		p.QuadTo(v.X, v.Y, mid.X, mid.Y)
	}
	p.Close()
	return p
}

// String returns the path in SVG syntax with absolute commands:
// "M x y", "L x y", "Q cx cy x y", "C c1x c1y c2x c2y x y", and "Z".
// This is the form stored in serialized scenes; ParsePathData reverses it.
func (p *PathData) String() string {
	var b strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			writeCoords(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writeCoords(&b, e.Point)
		case QuadTo:
			b.WriteString("Q ")
			writeCoords(&b, e.Control, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writeCoords(&b, e.Control1, e.Control2, e.Point)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// writeCoords appends space-separated point coordinates using the shortest
// representation that round-trips exactly.
func writeCoords(b *strings.Builder, points ...Point) {
	for i, pt := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
	}
}

// ParsePathData parses an SVG-style path string into a path descriptor.
// Supported commands are absolute M, L, Q, C, and Z. A command followed by
// more coordinate groups than it consumes repeats implicitly, except that
// extra pairs after M continue as lines, matching SVG semantics. Relative
// (lowercase) commands and arcs are not produced by this package and are
// rejected.
func ParsePathData(s string) (*PathData, error) {
	tokens := strings.Fields(s)
	p := NewPathData()
	if len(tokens) == 0 {
		return p, nil
	}

	i := 0
	next := func() (float64, error) {
		if i >= len(tokens) {
			return 0, fmt.Errorf("ink: path data ends mid-command")
		}
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return 0, fmt.Errorf("ink: path data has invalid number %q", tokens[i])
		}
		i++
		return v, nil
	}
	pair := func() (float64, float64, error) {
		x, err := next()
		if err != nil {
			return 0, 0, err
		}
		y, err := next()
		if err != nil {
			return 0, 0, err
		}
		return x, y, nil
	}

	cmd := ""
	started := false
	for i < len(tokens) {
		tok := tokens[i]
		if len(tok) == 1 && strings.ContainsAny(tok, "MLQCZ") {
			cmd = tok
			i++
			if cmd == "Z" {
				p.Close()
				cmd = ""
			}
			continue
		}
		switch cmd {
		case "M":
			x, y, err := pair()
			if err != nil {
				return nil, err
			}
			p.MoveTo(x, y)
			started = true
			cmd = "L" // subsequent pairs are implicit line commands
		case "L":
			if !started {
				return nil, fmt.Errorf("ink: path data must start with M")
			}
			x, y, err := pair()
			if err != nil {
				return nil, err
			}
			p.LineTo(x, y)
		case "Q":
			if !started {
				return nil, fmt.Errorf("ink: path data must start with M")
			}
			cx, cy, err := pair()
			if err != nil {
				return nil, err
			}
			x, y, err := pair()
			if err != nil {
				return nil, err
			}
			p.QuadTo(cx, cy, x, y)
		case "C":
			if !started {
				return nil, fmt.Errorf("ink: path data must start with M")
			}
			c1x, c1y, err := pair()
			if err != nil {
				return nil, err
			}
			c2x, c2y, err := pair()
			if err != nil {
				return nil, err
			}
			x, y, err := pair()
			if err != nil {
				return nil, err
			}
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		default:
			return nil, fmt.Errorf("ink: path data has unsupported command %q", tok)
		}
	}
	return p, nil
}
