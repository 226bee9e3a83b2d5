package ink

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathFromOutline_QuadraticMidpointSmoothing(t *testing.T) {
	outline := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	p := PathFromOutline(outline)

	elems := p.Elements()
	// One MoveTo, one QuadTo per vertex, one Close.
	if len(elems) != len(outline)+2 {
		t.Fatalf("path has %d elements, want %d", len(elems), len(outline)+2)
	}
	if mv, ok := elems[0].(MoveTo); !ok || mv.Point != Pt(0, 0) {
		t.Errorf("first element = %#v, want MoveTo (0,0)", elems[0])
	}
	if _, ok := elems[len(elems)-1].(Close); !ok {
		t.Errorf("last element = %#v, want Close", elems[len(elems)-1])
	}
	for i, v := range outline {
		q, ok := elems[i+1].(QuadTo)
		if !ok {
			t.Fatalf("element %d = %#v, want QuadTo", i+1, elems[i+1])
		}
		if q.Control != v {
			t.Errorf("curve %d control = %v, want vertex %v", i, q.Control, v)
		}
		wantEnd := v.Midpoint(outline[(i+1)%len(outline)])
		if q.Point != wantEnd {
			t.Errorf("curve %d endpoint = %v, want midpoint %v", i, q.Point, wantEnd)
		}
	}
}

func TestPathFromOutline_Empty(t *testing.T) {
	p := PathFromOutline(nil)
	if !p.Empty() {
		t.Errorf("PathFromOutline(nil) has %d elements, want empty", len(p.Elements()))
	}
}

func TestPathData_StringParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *PathData)
	}{
		{"quads", func(p *PathData) {
			p.MoveTo(0, 0)
			p.QuadTo(5, 0, 10, 0)
			p.QuadTo(10, 5, 10, 10)
			p.Close()
		}},
		{"mixed", func(p *PathData) {
			p.MoveTo(-3.25, 4.5)
			p.LineTo(7, -1)
			p.CubicTo(1, 2, 3, 4, 5, 6)
			p.QuadTo(0.1, 0.2, 0.3, 0.4)
			p.Close()
		}},
		{"outline", func(p *PathData) {
			points := wave(30)
			*p = *PathFromOutline(BuildOutline(points, DefaultStrokeStyle(), true))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPathData()
			tt.build(p)
			s := p.String()

			got, err := ParsePathData(s)
			if err != nil {
				t.Fatalf("ParsePathData(%q) error: %v", s, err)
			}
			if diff := cmp.Diff(p.Elements(), got.Elements()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePathData_ImplicitRepetition(t *testing.T) {
	// A command letter followed by extra coordinate groups repeats, and
	// extra pairs after M continue as lines.
	p, err := ParsePathData("M 0 0 Q 1 1 2 2 3 3 4 4 Z")
	if err != nil {
		t.Fatalf("ParsePathData error: %v", err)
	}
	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		QuadTo{Control: Pt(1, 1), Point: Pt(2, 2)},
		QuadTo{Control: Pt(3, 3), Point: Pt(4, 4)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("parsed elements mismatch (-want +got):\n%s", diff)
	}

	p, err = ParsePathData("M 0 0 5 5 10 0")
	if err != nil {
		t.Fatalf("ParsePathData error: %v", err)
	}
	want = []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(5, 5)},
		LineTo{Point: Pt(10, 0)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("parsed elements mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathData_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", "M 0"},
		{"bad number", "M 0 zero"},
		{"no leading move", "Q 1 1 2 2"},
		{"relative command", "m 0 0 l 5 5"},
		{"arc command", "M 0 0 A 5 5 0 0 1 10 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePathData(tt.data); err == nil {
				t.Errorf("ParsePathData(%q) = nil error, want failure", tt.data)
			}
		})
	}
}

func TestParsePathData_Empty(t *testing.T) {
	p, err := ParsePathData("")
	if err != nil {
		t.Fatalf("ParsePathData(\"\") error: %v", err)
	}
	if !p.Empty() {
		t.Errorf("ParsePathData(\"\") has %d elements, want empty", len(p.Elements()))
	}
}

func TestPathData_String(t *testing.T) {
	p := NewPathData()
	p.MoveTo(0, 0)
	p.QuadTo(5, -2.5, 10, 0)
	p.Close()

	got := p.String()
	want := "M 0 0 Q 5 -2.5 10 0 Z"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("String() contains double spaces: %q", got)
	}
}

func TestPathData_Bounds(t *testing.T) {
	p := NewPathData()
	p.MoveTo(10, 20)
	p.LineTo(30, 5)
	p.QuadTo(40, 50, 35, 25)
	p.Close()

	b := p.Bounds()
	want := Rect{MinX: 10, MinY: 5, MaxX: 40, MaxY: 50}
	if math.Abs(b.MinX-want.MinX) > 1e-9 || math.Abs(b.MinY-want.MinY) > 1e-9 ||
		math.Abs(b.MaxX-want.MaxX) > 1e-9 || math.Abs(b.MaxY-want.MaxY) > 1e-9 {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}

	var empty *PathData
	if !empty.Bounds().IsEmpty() {
		t.Error("nil path bounds should be empty")
	}
}
