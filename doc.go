// Package ink implements a freehand stroke capture and vector rendering
// engine: the pipeline that turns raw pointer samples into a persisted,
// re-renderable vector scene.
//
// # Overview
//
// The root package holds the numeric core. It is pure computation with no
// I/O and no platform dependencies:
//
//   - geometry primitives (Point, Vec2, Rect, RGBA)
//   - StrokeStyle, the brush configuration (size, thinning, smoothing,
//     streamline, tapers, caps)
//   - pressure estimation from point velocity when hardware pressure is
//     unavailable
//   - outline construction: a pressure-weighted point sequence becomes a
//     closed variable-width polygon
//   - path descriptors: the polygon becomes a smooth quadratic path that
//     round-trips through an SVG-style string form
//
// The stateful subsystems live in subpackages:
//
//   - capture: pointer-event state machine, viewport mapping, draw-mode
//     coordination across canvas instances
//   - scene: the committed, ordered collection of vector path objects and
//     its JSON serialization
//   - render: the Surface abstraction and the ephemeral/committed
//     dual-surface pipeline
//   - raster: a software Surface backed by golang.org/x/image/vector
//   - persist: persistence adapters and the debounced autosaver
//   - export: PDF export of a scene
//   - settings: TOML-backed tool presets
//
// # Quick Start
//
//	import ink "github.com/shelost/daydream-svelte-sub006"
//
//	points := []ink.StrokePoint{
//		{Point: ink.Pt(0, 0), Pressure: 0.5, Time: 0},
//		{Point: ink.Pt(40, 10), Pressure: 0.6, Time: 8},
//		{Point: ink.Pt(90, 15), Pressure: 0.4, Time: 16},
//	}
//	outline := ink.BuildOutline(points, ink.DefaultStrokeStyle(), true)
//	path := ink.PathFromOutline(outline)
//	fmt.Println(path.String()) // "M 0 -4 Q ... Z"
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// All geometry is float64. Outline polygons are wound clockwise in this
// coordinate system.
//
// # Logging
//
// The library is silent by default. Call [SetLogger] to enable logging for
// this package and all subpackages.
package ink

// Version is the current version of the library.
const Version = "0.3.0"
