package ink

import "math"

// Rect represents an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// RectFromSize creates a rectangle from an origin and dimensions.
func RectFromSize(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Contains reports whether the point lies inside the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// DistanceSquared returns the squared distance from the point to the nearest
// point of the rectangle. Zero when the point is inside. Used for hit-testing
// a circular brush against object bounds.
func (r Rect) DistanceSquared(p Point) float64 {
	if r.IsEmpty() {
		return math.MaxFloat64
	}
	nearest := Point{
		X: math.Max(r.MinX, math.Min(p.X, r.MaxX)),
		Y: math.Max(r.MinY, math.Min(p.Y, r.MaxY)),
	}
	return p.DistanceSquared(nearest)
}

// BoundsOf returns the bounding rectangle of a point sequence.
// Returns an empty rectangle for an empty sequence.
func BoundsOf(points []Point) Rect {
	r := EmptyRect()
	for _, p := range points {
		r = r.UnionPoint(p)
	}
	return r
}
