package render

import (
	ink "github.com/shelost/daydream-svelte-sub006"
)

// Paint carries the styling for one fill operation.
type Paint struct {
	// Fill is the fill color.
	Fill ink.RGBA

	// Opacity scales the fill alpha, in [0, 1].
	Opacity float64
}

// Surface is the drawing target the pipeline renders through. It is the
// engine's only contract with the host's rendering technology; a raster
// image, an SVG writer, or a recording surface can all satisfy it.
type Surface interface {
	// Clear erases the whole surface to transparent.
	Clear()

	// FillPath fills a closed path with the given paint.
	// Returns an error if the surface cannot complete the operation.
	FillPath(path *ink.PathData, paint Paint) error
}

// Resizer is implemented by surfaces whose pixel store can change size.
// The pipeline resizes such surfaces before redrawing after a viewport
// change; surfaces without it keep their dimensions.
type Resizer interface {
	Resize(width, height int)
}
