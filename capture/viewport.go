package capture

// ElementBounds is the canvas element's bounding box in device pixels, as
// reported by the host's layout system.
type ElementBounds struct {
	X, Y          float64
	Width, Height float64
}

// ViewportState describes how the canvas element maps onto its internal
// drawing resolution: the element's CSS size, the internal pixel size, the
// current zoom and pan, and the screen's device pixel ratio. The host
// recomputes it on resize, scroll, and zoom. Never persisted.
type ViewportState struct {
	DevicePixelRatio float64

	// CSSWidth and CSSHeight are the element's layout size. They back up
	// the per-event bounding box when the host does not supply one.
	CSSWidth  float64
	CSSHeight float64

	// InternalWidth and InternalHeight are the drawing resolution.
	// Independent of the CSS size; strokes are recorded in this space.
	InternalWidth  float64
	InternalHeight float64

	Zoom float64
	PanX float64
	PanY float64
}

// NewViewportState returns a viewport whose CSS size equals its internal
// size, with zoom 1, no pan, and a device pixel ratio of 1. ToInternal is
// the identity for this state.
func NewViewportState(width, height float64) ViewportState {
	return ViewportState{
		DevicePixelRatio: 1,
		CSSWidth:         width,
		CSSHeight:        height,
		InternalWidth:    width,
		InternalHeight:   height,
		Zoom:             1,
	}
}

// ToInternal maps a device coordinate into internal canvas coordinates:
// translate by the element origin, scale from CSS pixels to internal
// pixels, divide by zoom, and apply the pan offset. Pure; callers pass the
// bounding box per event because layout can move the element at any time.
// A box with zero size falls back to the viewport's CSS size, and a
// degenerate viewport maps 1:1.
func (v ViewportState) ToInternal(deviceX, deviceY float64, box ElementBounds) (float64, float64) {
	cssW, cssH := box.Width, box.Height
	if cssW <= 0 {
		cssW = v.CSSWidth
	}
	if cssH <= 0 {
		cssH = v.CSSHeight
	}

	sx, sy := 1.0, 1.0
	if cssW > 0 && v.InternalWidth > 0 {
		sx = v.InternalWidth / cssW
	}
	if cssH > 0 && v.InternalHeight > 0 {
		sy = v.InternalHeight / cssH
	}
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	x := (deviceX-box.X)*sx/zoom + v.PanX
	y := (deviceY-box.Y)*sy/zoom + v.PanY
	return x, y
}

// ClampInternal clamps an internal coordinate to the canvas. A viewport
// with unknown internal size passes coordinates through.
func (v ViewportState) ClampInternal(x, y float64) (float64, float64) {
	if v.InternalWidth > 0 {
		if x < 0 {
			x = 0
		} else if x > v.InternalWidth {
			x = v.InternalWidth
		}
	}
	if v.InternalHeight > 0 {
		if y < 0 {
			y = 0
		} else if y > v.InternalHeight {
			y = v.InternalHeight
		}
	}
	return x, y
}
