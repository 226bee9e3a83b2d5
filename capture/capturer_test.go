package capture

import (
	"testing"

	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/render"
	"github.com/shelost/daydream-svelte-sub006/scene"
)

type recordSurface struct {
	clears int
	fills  int
}

func (s *recordSurface) Clear() { s.clears++ }

func (s *recordSurface) FillPath(path *ink.PathData, paint render.Paint) error {
	s.fills++
	return nil
}

// rig wires a capturer to a fresh graph, pipeline, and counters.
type rig struct {
	graph    *scene.Graph
	eph, com *recordSurface
	cap      *Capturer

	acquires, releases int
	changes            int
}

func newRig(opts ...CapturerOption) *rig {
	r := &rig{graph: scene.NewGraph(), eph: &recordSurface{}, com: &recordSurface{}}
	pipe := render.NewPipeline(r.graph, r.com, r.eph)
	opts = append([]CapturerOption{
		WithPointerCapture(func() { r.acquires++ }, func() { r.releases++ }),
		WithChangeHook(func() { r.changes++ }),
	}, opts...)
	r.cap = NewCapturer(r.graph, pipe, opts...)
	r.cap.SetViewport(NewViewportState(400, 300))
	return r
}

func ev(kind EventKind, x, y, time float64) PointerEvent {
	return PointerEvent{
		Kind:     kind,
		Pointer:  PointerMouse,
		Pressure: 0.5,
		X:        x, Y: y,
		Time:   time,
		Bounds: ElementBounds{Width: 400, Height: 300},
	}
}

func TestCapturer_PenStrokeLifecycle(t *testing.T) {
	r := newRig()

	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	if r.cap.State() != StateCapturing {
		t.Fatalf("state after down = %v, want capturing", r.cap.State())
	}
	if r.acquires != 1 {
		t.Errorf("capture acquires = %d, want 1", r.acquires)
	}

	r.cap.Handle(ev(PointerMove, 50, 10, 8))
	r.cap.Handle(ev(PointerMove, 90, 10, 16))
	if r.eph.fills != 2 {
		t.Errorf("preview fills = %d, want 2 (one per move)", r.eph.fills)
	}

	r.cap.Handle(ev(PointerUp, 90, 10, 24))
	if r.cap.State() != StateIdle {
		t.Errorf("state after up = %v, want idle", r.cap.State())
	}
	if r.releases != 1 {
		t.Errorf("capture releases = %d, want 1", r.releases)
	}
	if r.graph.Len() != 1 {
		t.Fatalf("committed objects = %d, want 1", r.graph.Len())
	}
	if r.com.fills != 1 {
		t.Errorf("committed surface fills = %d, want 1", r.com.fills)
	}
	if r.eph.clears != 3 {
		t.Errorf("ephemeral clears = %d, want 3 (two previews, one finish)", r.eph.clears)
	}
	if r.changes != 1 {
		t.Errorf("change hook calls = %d, want 1", r.changes)
	}
}

func TestCapturer_OverlappingDownIgnored(t *testing.T) {
	r := newRig()

	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	r.cap.Handle(ev(PointerDown, 200, 200, 5))
	if r.acquires != 1 {
		t.Errorf("capture acquires = %d, want 1 (second down dropped)", r.acquires)
	}

	r.cap.Handle(ev(PointerMove, 50, 10, 8))
	r.cap.Handle(ev(PointerUp, 50, 10, 16))
	if r.graph.Len() != 1 {
		t.Errorf("committed objects = %d, want 1", r.graph.Len())
	}
	if r.releases != 1 {
		t.Errorf("capture releases = %d, want 1", r.releases)
	}
}

func TestCapturer_ReleaseOnEveryExit(t *testing.T) {
	// Up, cancel, and leave all finish the stroke identically.
	for _, kind := range []EventKind{PointerUp, PointerCancel, PointerLeave} {
		t.Run(kind.String(), func(t *testing.T) {
			r := newRig()
			r.cap.Handle(ev(PointerDown, 10, 10, 0))
			r.cap.Handle(ev(PointerMove, 60, 10, 8))
			r.cap.Handle(ev(kind, 60, 10, 16))

			if r.cap.State() != StateIdle {
				t.Errorf("state = %v, want idle", r.cap.State())
			}
			if r.releases != 1 {
				t.Errorf("capture releases = %d, want 1", r.releases)
			}
			if r.graph.Len() != 1 {
				t.Errorf("committed objects = %d, want 1 (no discard path)", r.graph.Len())
			}
		})
	}
}

func TestCapturer_ShortStrokeDiscarded(t *testing.T) {
	r := newRig()
	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	r.cap.Handle(ev(PointerUp, 10, 10, 5))

	if r.graph.Len() != 0 {
		t.Errorf("committed objects = %d, want 0", r.graph.Len())
	}
	if r.changes != 0 {
		t.Errorf("change hook calls = %d, want 0", r.changes)
	}
	if r.releases != 1 {
		t.Errorf("capture releases = %d, want 1 (discard still releases)", r.releases)
	}
}

func TestCapturer_SimulatesPressureForMouse(t *testing.T) {
	r := newRig()
	r.cap.Handle(ev(PointerDown, 0, 0, 0))
	r.cap.Handle(ev(PointerMove, 200, 0, 1))

	points := r.cap.raw.Points
	if points[0].Pressure != 0.5 {
		t.Errorf("first simulated pressure = %v, want 0.5", points[0].Pressure)
	}
	if p := points[1].Pressure; p < 0.2 || p > 0.4 {
		t.Errorf("fast-move simulated pressure = %v, want near the floor", p)
	}
}

func TestCapturer_UsesHardwarePressureForPen(t *testing.T) {
	r := newRig()
	pen := func(kind EventKind, x, y, time, pressure float64) PointerEvent {
		e := ev(kind, x, y, time)
		e.Pointer = PointerPen
		e.Pressure = pressure
		return e
	}

	r.cap.Handle(pen(PointerDown, 0, 0, 0, 0.8))
	r.cap.Handle(pen(PointerMove, 200, 0, 1, 1.5))

	points := r.cap.raw.Points
	if points[0].Pressure != 0.8 {
		t.Errorf("pen pressure = %v, want 0.8 recorded unchanged", points[0].Pressure)
	}
	if points[1].Pressure != 1.0 {
		t.Errorf("out-of-range pen pressure = %v, want clamped to 1", points[1].Pressure)
	}
}

func TestCapturer_SimulationDisabledRecordsRawPressure(t *testing.T) {
	r := newRig()
	r.cap.SetStyle(ink.ToolPen, ink.DefaultStrokeStyle().WithSimulatePressure(false))

	r.cap.Handle(ev(PointerDown, 0, 0, 0))
	r.cap.Handle(ev(PointerMove, 200, 0, 1))

	for i, p := range r.cap.raw.Points {
		if p.Pressure != 0.5 {
			t.Errorf("point %d pressure = %v, want the raw 0.5", i, p.Pressure)
		}
	}
}

func TestCapturer_ClampsPointsToCanvas(t *testing.T) {
	r := newRig()
	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	r.cap.Handle(ev(PointerMove, 500, -50, 8))

	got := r.cap.raw.Last().Point
	if got != ink.Pt(400, 0) {
		t.Errorf("clamped point = %v, want (400, 0)", got)
	}
}

func TestCapturer_AppliesViewportMapping(t *testing.T) {
	r := newRig()
	vp := r.cap.Viewport()
	vp.Zoom = 2
	r.cap.SetViewport(vp)

	r.cap.Handle(ev(PointerDown, 100, 60, 0))
	got := r.cap.raw.Points[0].Point
	if got != ink.Pt(50, 30) {
		t.Errorf("mapped point = %v, want (50, 30)", got)
	}
}

func TestCapturer_EraserRemovesObjects(t *testing.T) {
	r := newRig()

	// Commit one pen stroke.
	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	r.cap.Handle(ev(PointerMove, 90, 10, 8))
	r.cap.Handle(ev(PointerUp, 90, 10, 16))
	if r.graph.Len() != 1 {
		t.Fatalf("committed objects = %d, want 1", r.graph.Len())
	}
	previewFills := r.eph.fills

	// One eraser click on top of it.
	r.cap.SetTool(ink.ToolEraser)
	r.cap.Handle(ev(PointerDown, 50, 10, 100))
	r.cap.Handle(ev(PointerUp, 50, 10, 110))

	if r.graph.Len() != 0 {
		t.Errorf("objects after erase = %d, want 0", r.graph.Len())
	}
	if r.changes != 2 {
		t.Errorf("change hook calls = %d, want 2 (commit then erase)", r.changes)
	}
	if r.releases != 2 {
		t.Errorf("capture releases = %d, want 2", r.releases)
	}
	if r.eph.fills != previewFills {
		t.Errorf("eraser drew %d previews, want none", r.eph.fills-previewFills)
	}

	// An eraser pass over empty canvas reports no change.
	r.cap.Handle(ev(PointerDown, 300, 200, 200))
	r.cap.Handle(ev(PointerUp, 300, 200, 210))
	if r.changes != 2 {
		t.Errorf("change hook calls after empty pass = %d, want still 2", r.changes)
	}
}

func TestCapturer_EvictionCancelsStroke(t *testing.T) {
	coord := NewCoordinator()
	ra := newRig(WithCoordinator(coord), WithInstanceID("a"))
	rb := newRig(WithCoordinator(coord), WithInstanceID("b"))

	ra.cap.Handle(ev(PointerDown, 10, 10, 0))
	ra.cap.Handle(ev(PointerMove, 60, 10, 8))
	if got := coord.Active(); got != "a" {
		t.Fatalf("Active() = %q, want a", got)
	}

	// Instance b starts drawing: a is silently evicted mid-stroke.
	rb.cap.Handle(ev(PointerDown, 20, 20, 20))

	if ra.cap.State() != StateIdle {
		t.Errorf("evicted instance state = %v, want idle", ra.cap.State())
	}
	if ra.releases != 1 {
		t.Errorf("evicted instance releases = %d, want 1", ra.releases)
	}
	if ra.graph.Len() != 1 {
		t.Errorf("evicted instance committed %d objects, want 1 (cancel commits)", ra.graph.Len())
	}
	if rb.cap.State() != StateCapturing {
		t.Errorf("acquiring instance state = %v, want capturing", rb.cap.State())
	}
	if got := coord.Active(); got != "b" {
		t.Errorf("Active() = %q, want b", got)
	}
	if ra.cap.InDrawMode() {
		t.Error("evicted instance still reports draw mode")
	}
	if !rb.cap.InDrawMode() {
		t.Error("acquiring instance not in draw mode")
	}
}

func TestCapturer_ExitDrawModeReleasesEverything(t *testing.T) {
	coord := NewCoordinator()
	r := newRig(WithCoordinator(coord), WithInstanceID("a"))

	r.cap.Handle(ev(PointerDown, 10, 10, 0))
	r.cap.Handle(ev(PointerMove, 60, 10, 8))
	r.cap.ExitDrawMode()

	if r.cap.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.cap.State())
	}
	if r.releases != 1 {
		t.Errorf("capture releases = %d, want 1", r.releases)
	}
	if got := coord.Active(); got != "" {
		t.Errorf("Active() = %q, want empty", got)
	}
}

func TestCapturer_StyleSnapshotTakenAtDown(t *testing.T) {
	r := newRig()
	r.cap.Handle(ev(PointerDown, 10, 10, 0))

	// Mid-stroke style edits must not affect the stroke in flight.
	r.cap.SetStyle(ink.ToolPen, ink.DefaultStrokeStyle().WithColor(ink.RGB(1, 0, 0)))
	r.cap.Handle(ev(PointerMove, 60, 10, 8))
	r.cap.Handle(ev(PointerUp, 60, 10, 16))

	obj := r.graph.Objects()[0]
	if obj.Fill != ink.Black {
		t.Errorf("committed fill = %+v, want the style active at pointer down", obj.Fill)
	}
}
