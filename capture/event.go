package capture

// EventKind identifies a pointer event type.
type EventKind uint8

const (
	// PointerDown starts a stroke when the capturer is idle.
	PointerDown EventKind = iota
	// PointerMove extends a stroke in flight.
	PointerMove
	// PointerUp ends a stroke in flight.
	PointerUp
	// PointerCancel ends a stroke; handled exactly like PointerUp.
	PointerCancel
	// PointerLeave ends a stroke; handled exactly like PointerUp.
	PointerLeave
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerType identifies the class of input device behind an event,
// mirroring the platform's pointer-type attribute.
type PointerType uint8

const (
	// PointerMouse is a mouse or trackpad. Reports no real pressure.
	PointerMouse PointerType = iota
	// PointerPen is a stylus with hardware pressure.
	PointerPen
	// PointerTouch is a finger. Reports a constant default pressure.
	PointerTouch
)

// String returns the pointer type name.
func (t PointerType) String() string {
	switch t {
	case PointerMouse:
		return "mouse"
	case PointerPen:
		return "pen"
	case PointerTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// PointerEvent is one input sample in the engine's typed form. The host
// adapter translates platform events into these and feeds them to
// Capturer.Handle.
//
// X and Y are device (client) pixels. Bounds is the canvas element's
// bounding box in the same space, sampled at event time because layout and
// scrolling move the element between events.
type PointerEvent struct {
	Kind    EventKind
	Pointer PointerType

	X, Y float64

	// Pressure is the device-reported pressure in [0, 1]. Non-pen devices
	// report a constant 0.5; the capturer simulates pressure for those.
	Pressure float64

	// Time is the event timestamp in milliseconds.
	Time float64

	Bounds ElementBounds
}
