package scene

import (
	ink "github.com/shelost/daydream-svelte-sub006"
)

// Object is one committed vector path: the filled outline of a finished
// stroke. Geometry is immutable after creation; the style fields Fill and
// Opacity may be edited through the graph without changing the object's
// identity.
type Object struct {
	// ID uniquely identifies the object within its graph. IDs are not
	// guaranteed stable across a save/load cycle.
	ID string

	// Path is the object's outline geometry.
	Path *ink.PathData

	// Fill is the fill color.
	Fill ink.RGBA

	// Opacity is the fill opacity in [0, 1].
	Opacity float64

	// Bounds is the axis-aligned bounding box of the outline, kept
	// alongside the path so hit-testing never re-walks geometry.
	Bounds ink.Rect
}
