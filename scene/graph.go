// Package scene holds the committed drawing: an insertion-ordered
// collection of vector path objects with JSON serialization. Insertion
// order doubles as z-order, bottom first.
package scene

import (
	"github.com/google/uuid"

	ink "github.com/shelost/daydream-svelte-sub006"
)

// Graph is the committed scene: the ordered list of vector path objects
// forming the persisted drawing. One graph is owned by one render pipeline
// per canvas instance and is mutated only through its own methods.
//
// Graph is not safe for concurrent use; like the rest of the capture and
// render path it lives on a single event loop.
type Graph struct {
	objects []*Object

	// version is incremented on each mutation for cheap change detection
	// by the render pipeline and the autosaver.
	version uint64
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{objects: make([]*Object, 0, 16)}
}

// Add appends a new object at the top of the z-order and returns its
// freshly assigned id. The bounding box is derived from the path. Opacity
// is clamped to [0, 1].
func (g *Graph) Add(path *ink.PathData, fill ink.RGBA, opacity float64) string {
	obj := &Object{
		ID:      uuid.NewString(),
		Path:    path,
		Fill:    fill,
		Opacity: clamp01(opacity),
		Bounds:  path.Bounds(),
	}
	g.objects = append(g.objects, obj)
	g.version++
	return obj.ID
}

// insert appends a fully formed object, preserving its id. Used when
// rebuilding a graph from persisted entries.
func (g *Graph) insert(obj *Object) {
	g.objects = append(g.objects, obj)
	g.version++
}

// Remove deletes the objects with the given ids. Unknown ids are ignored.
// Returns the number of objects removed.
func (g *Graph) Remove(ids ...string) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := g.objects[:0]
	removed := 0
	for _, obj := range g.objects {
		if drop[obj.ID] {
			removed++
			continue
		}
		kept = append(kept, obj)
	}
	for i := len(kept); i < len(g.objects); i++ {
		g.objects[i] = nil
	}
	g.objects = kept
	if removed > 0 {
		g.version++
	}
	return removed
}

// Clear empties the graph.
func (g *Graph) Clear() {
	for i := range g.objects {
		g.objects[i] = nil
	}
	g.objects = g.objects[:0]
	g.version++
}

// Len returns the number of objects.
func (g *Graph) Len() int {
	return len(g.objects)
}

// Objects returns the objects in z-order, bottom first. The slice is a
// copy; the objects are shared.
func (g *Graph) Objects() []*Object {
	out := make([]*Object, len(g.objects))
	copy(out, g.objects)
	return out
}

// Get returns the object with the given id.
func (g *Graph) Get(id string) (*Object, bool) {
	for _, obj := range g.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return nil, false
}

// SetFill changes an object's fill color in place.
// Returns false if no object has the given id.
func (g *Graph) SetFill(id string, fill ink.RGBA) bool {
	obj, ok := g.Get(id)
	if !ok {
		return false
	}
	obj.Fill = fill
	g.version++
	return true
}

// SetOpacity changes an object's opacity in place, clamped to [0, 1].
// Returns false if no object has the given id.
func (g *Graph) SetOpacity(id string, opacity float64) bool {
	obj, ok := g.Get(id)
	if !ok {
		return false
	}
	obj.Opacity = clamp01(opacity)
	g.version++
	return true
}

// EraseAt removes every object whose bounding box intersects a circular
// brush of the given radius around p, and returns the removed ids in
// z-order. This is the object-removal eraser: whole strokes disappear
// rather than being masked pixel by pixel.
func (g *Graph) EraseAt(p ink.Point, radius float64) []string {
	if radius < 0 {
		radius = 0
	}
	var hit []string
	for _, obj := range g.objects {
		if obj.Bounds.DistanceSquared(p) <= radius*radius {
			hit = append(hit, obj.ID)
		}
	}
	if len(hit) > 0 {
		g.Remove(hit...)
	}
	return hit
}

// Bounds returns the union of all object bounding boxes.
// Empty when the graph is empty.
func (g *Graph) Bounds() ink.Rect {
	r := ink.EmptyRect()
	for _, obj := range g.objects {
		r = r.Union(obj.Bounds)
	}
	return r
}

// Version returns a counter incremented on every mutation. Consumers
// compare versions to detect changes without walking the object list.
func (g *Graph) Version() uint64 {
	return g.version
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
