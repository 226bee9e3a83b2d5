// Package capture owns the pointer-event lifecycle of a canvas instance:
// it turns host input events into raw strokes, previews the stroke in
// flight through the render pipeline, and commits finished strokes to the
// scene graph.
package capture

import (
	"github.com/google/uuid"

	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/render"
	"github.com/shelost/daydream-svelte-sub006/scene"
)

// State is the capturer's lifecycle state.
type State uint8

const (
	// StateIdle means no stroke is in flight.
	StateIdle State = iota
	// StateCapturing means a pointer is down and points are being recorded.
	StateCapturing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// pressureSmoothing weights the previous simulated-pressure estimate when
// folding in a new sample, keeping width changes gradual under jittery
// velocity.
const pressureSmoothing = 0.3

// defaultEraserSize is the eraser brush diameter in internal pixels.
const defaultEraserSize = 24

// CapturerOption configures a Capturer during creation.
//
// Example:
//
//	coord := capture.NewCoordinator()
//	capturer := capture.NewCapturer(graph, pipe,
//		capture.WithCoordinator(coord),
//		capture.WithChangeHook(saver.Trigger),
//	)
type CapturerOption func(*Capturer)

// WithCoordinator attaches the shared draw coordinator. The capturer
// claims draw mode on pointer down and on EnterDrawMode, silently evicting
// whichever instance held it.
func WithCoordinator(coord *Coordinator) CapturerOption {
	return func(c *Capturer) {
		c.coord = coord
	}
}

// WithInstanceID sets the identity this capturer registers with the
// coordinator. Defaults to a fresh UUID.
func WithInstanceID(id string) CapturerOption {
	return func(c *Capturer) {
		if id != "" {
			c.id = id
		}
	}
}

// WithPointerCapture installs the host's exclusive input capture hooks.
// The acquire hook runs when a stroke starts; the release hook runs on
// every exit from the capturing state, including cancellation and
// eviction.
func WithPointerCapture(acquire, release func()) CapturerOption {
	return func(c *Capturer) {
		if acquire != nil {
			c.acquireCapture = acquire
		}
		if release != nil {
			c.releaseCapture = release
		}
	}
}

// WithChangeHook sets a function called after every scene mutation this
// capturer performs: a committed stroke or a completed eraser pass. Hosts
// use it to schedule persistence.
func WithChangeHook(fn func()) CapturerOption {
	return func(c *Capturer) {
		if fn != nil {
			c.onChange = fn
		}
	}
}

// Capturer is the stroke capture state machine of one canvas instance.
// It moves between StateIdle and StateCapturing, holds at most one raw
// stroke at a time, and owns that stroke exclusively.
//
// A Capturer is not safe for concurrent use; feed it from the instance's
// event loop.
type Capturer struct {
	graph *scene.Graph
	pipe  *render.Pipeline
	coord *Coordinator
	id    string

	viewport ViewportState
	styles   map[ink.Tool]ink.StrokeStyle
	tool     ink.Tool

	state State
	raw   *ink.RawStroke
	// active is the normalized style snapshot taken at pointer down; the
	// stroke in flight keeps it even if the host edits styles mid-gesture.
	active    ink.StrokeStyle
	estimator *ink.PressureEstimator
	erased    int

	acquireCapture func()
	releaseCapture func()
	onChange       func()
}

// NewCapturer creates a capturer committing into graph and previewing
// through pipe. The pen starts with the default stroke style and the
// eraser with a 24 pixel brush; the viewport starts as the identity
// mapping until the host calls SetViewport.
func NewCapturer(graph *scene.Graph, pipe *render.Pipeline, opts ...CapturerOption) *Capturer {
	c := &Capturer{
		graph:    graph,
		pipe:     pipe,
		id:       uuid.NewString(),
		viewport: ViewportState{DevicePixelRatio: 1, Zoom: 1},
		styles: map[ink.Tool]ink.StrokeStyle{
			ink.ToolPen:    ink.DefaultStrokeStyle(),
			ink.ToolEraser: ink.DefaultStrokeStyle().WithSize(defaultEraserSize),
		},
		estimator:      ink.NewPressureEstimator(pressureSmoothing),
		acquireCapture: func() {},
		releaseCapture: func() {},
		onChange:       func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the identity this capturer uses with the coordinator.
func (c *Capturer) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Capturer) State() State { return c.state }

// Tool returns the tool applied at the next pointer down.
func (c *Capturer) Tool() ink.Tool { return c.tool }

// SetTool selects the tool applied at the next pointer down. A stroke in
// flight keeps the tool it started with.
func (c *Capturer) SetTool(tool ink.Tool) { c.tool = tool }

// Style returns the stroke style configured for tool.
func (c *Capturer) Style(tool ink.Tool) ink.StrokeStyle { return c.styles[tool] }

// SetStyle sets the stroke style used when tool is active. A stroke in
// flight keeps the style snapshot taken at pointer down.
func (c *Capturer) SetStyle(tool ink.Tool, style ink.StrokeStyle) {
	c.styles[tool] = style
}

// Viewport returns the current device-to-internal mapping.
func (c *Capturer) Viewport() ViewportState { return c.viewport }

// SetViewport replaces the mapping used for future events. Points already
// recorded in a stroke in flight keep their internal coordinates; only the
// mapping of subsequent points changes.
func (c *Capturer) SetViewport(vp ViewportState) { c.viewport = vp }

// InDrawMode reports whether this instance may start strokes. Without a
// coordinator every instance is independent and always in draw mode.
func (c *Capturer) InDrawMode() bool {
	return c.coord == nil || c.coord.Active() == c.id
}

// EnterDrawMode claims draw mode for this instance, silently evicting
// whichever instance held it.
func (c *Capturer) EnterDrawMode() {
	if c.coord != nil {
		c.coord.Acquire(c.id, c.evicted)
	}
}

// ExitDrawMode gives up draw mode. A stroke in flight ends as if the
// pointer were cancelled.
func (c *Capturer) ExitDrawMode() {
	c.finish()
	if c.coord != nil {
		c.coord.Release(c.id)
	}
}

// evicted runs when another instance takes draw mode.
func (c *Capturer) evicted() {
	c.finish()
}

// Handle feeds one pointer event into the state machine. The host adapter
// translates platform input events into these calls. Events that do not
// apply in the current state are dropped.
func (c *Capturer) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.down(ev)
	case PointerMove:
		c.move(ev)
	case PointerUp, PointerCancel, PointerLeave:
		// Cancel and leave behave exactly like an ordinary lift: there is
		// no separate abort path.
		c.finish()
	}
}

func (c *Capturer) down(ev PointerEvent) {
	if c.state != StateIdle {
		// At most one stroke per capturer. Overlapping downs are dropped.
		return
	}
	c.EnterDrawMode()

	c.active = c.styles[c.tool].Normalized()
	c.raw = &ink.RawStroke{
		Tool:                c.tool,
		Style:               c.active,
		HasHardwarePressure: ev.Pointer == PointerPen,
	}
	c.estimator.Reset()
	c.erased = 0
	c.state = StateCapturing
	c.acquireCapture()

	c.record(ev)
}

func (c *Capturer) move(ev PointerEvent) {
	if c.state != StateCapturing {
		return
	}
	c.record(ev)
}

// record appends one sample to the stroke in flight and refreshes the
// canvas: an eraser pass removes objects under the brush, a pen stroke
// redraws the live preview.
func (c *Capturer) record(ev PointerEvent) {
	x, y := c.viewport.ToInternal(ev.X, ev.Y, ev.Bounds)
	x, y = c.viewport.ClampInternal(x, y)

	p := ink.StrokePoint{Point: ink.Pt(x, y), Time: ev.Time}
	p.Pressure = c.pointPressure(ev, p)
	c.raw.Append(p)

	if c.raw.Tool == ink.ToolEraser {
		if removed := c.graph.EraseAt(p.Point, c.active.Size/2); len(removed) > 0 {
			c.erased += len(removed)
			c.pipe.SyncCommitted()
		}
		return
	}

	outline := ink.BuildOutline(c.raw.Points, c.active, false)
	if len(outline) == 0 {
		return
	}
	paint := render.Paint{Fill: c.active.Color, Opacity: c.active.Opacity}
	c.pipe.Preview(ink.PathFromOutline(outline), paint)
}

// finish ends the stroke in flight, if any. Every exit from the capturing
// state lands here, so input capture is always released.
func (c *Capturer) finish() {
	if c.state != StateCapturing {
		return
	}
	defer c.releaseCapture()

	raw := c.raw
	c.raw = nil
	c.state = StateIdle
	c.pipe.ClearPreview()

	if raw.Tool == ink.ToolEraser {
		if c.erased > 0 {
			ink.Logger().Debug("capture: eraser pass removed objects", "count", c.erased)
			c.onChange()
		}
		c.erased = 0
		return
	}

	if raw.Len() < 2 {
		// Degenerate stroke, discarded without a warning.
		ink.Logger().Debug("capture: dropping stroke", "points", raw.Len())
		return
	}
	outline := ink.BuildOutline(raw.Points, c.active, true)
	if len(outline) == 0 {
		return
	}
	id := c.graph.Add(ink.PathFromOutline(outline), c.active.Color, c.active.Opacity)
	ink.Logger().Debug("capture: committed stroke", "id", id, "points", raw.Len())
	c.pipe.SyncCommitted()
	c.onChange()
}

// pointPressure resolves the pressure recorded for one sample: the
// device's own value when it is usable, the velocity-derived estimate
// otherwise.
func (c *Capturer) pointPressure(ev PointerEvent, p ink.StrokePoint) float64 {
	if !c.active.SimulatePressure || !c.needsSimulation(ev) {
		return clamp01(ev.Pressure)
	}
	return c.estimator.Estimate(p)
}

// needsSimulation reports whether the event's pressure value is unusable:
// the stroke's device never reports pressure, or a non-pen pointer is
// handing back the platform's 0.5 default.
func (c *Capturer) needsSimulation(ev PointerEvent) bool {
	if !c.raw.HasHardwarePressure {
		return true
	}
	return ev.Pointer != PointerPen && ev.Pressure == 0.5
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
