package ink

import "testing"

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Error("EmptyRect().IsEmpty() = false, want true")
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("empty rect dimensions = %vx%v, want 0x0", r.Width(), r.Height())
	}

	// Union with an empty rect is the identity.
	other := RectFromSize(1, 2, 3, 4)
	if got := r.Union(other); got != other {
		t.Errorf("EmptyRect().Union(%+v) = %+v", other, got)
	}
}

func TestRect_UnionPoint(t *testing.T) {
	r := EmptyRect().UnionPoint(Pt(5, 5)).UnionPoint(Pt(-1, 8)).UnionPoint(Pt(2, 0))
	want := Rect{MinX: -1, MinY: 0, MaxX: 5, MaxY: 8}
	if r != want {
		t.Errorf("UnionPoint chain = %+v, want %+v", r, want)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromSize(10, 10, 20, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(15, 15), true},
		{Pt(10, 10), true}, // edges inclusive
		{Pt(30, 20), true},
		{Pt(9.99, 15), false},
		{Pt(15, 21), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_DistanceSquared(t *testing.T) {
	r := RectFromSize(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"inside", Pt(5, 5), 0},
		{"on edge", Pt(10, 5), 0},
		{"right of", Pt(13, 5), 9},
		{"diagonal", Pt(13, 14), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DistanceSquared(tt.p); got != tt.want {
				t.Errorf("DistanceSquared(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(nil); !got.IsEmpty() {
		t.Errorf("BoundsOf(nil) = %+v, want empty", got)
	}
	got := BoundsOf([]Point{Pt(3, 4), Pt(-2, 9), Pt(0, 0)})
	want := Rect{MinX: -2, MinY: 0, MaxX: 3, MaxY: 9}
	if got != want {
		t.Errorf("BoundsOf = %+v, want %+v", got, want)
	}
}
