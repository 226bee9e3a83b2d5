package ink

// Tool identifies the active drawing tool.
type Tool uint8

const (
	// ToolPen captures strokes that become committed vector objects.
	ToolPen Tool = iota

	// ToolEraser removes committed objects under the cursor.
	ToolEraser
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// StrokePoint is a single recorded input sample: a position in internal
// canvas coordinates, a pressure in [0, 1], and a timestamp in milliseconds.
// Immutable once recorded.
type StrokePoint struct {
	Point    Point
	Pressure float64
	Time     float64
}

// RawStroke is an in-flight stroke: the points recorded between pointer
// down and pointer up, plus the style and tool active when it started.
// Created on pointer down, appended to on every move, and consumed
// (committed or discarded) when the pointer lifts. Owned exclusively by one
// capturer; never shared.
type RawStroke struct {
	Tool  Tool
	Style StrokeStyle

	// HasHardwarePressure records whether the input device reported real
	// pressure values. When false, pressure is simulated from velocity.
	HasHardwarePressure bool

	Points []StrokePoint
}

// Append records one more point.
func (s *RawStroke) Append(p StrokePoint) {
	s.Points = append(s.Points, p)
}

// Len returns the number of recorded points.
func (s *RawStroke) Len() int {
	return len(s.Points)
}

// Last returns the most recently recorded point.
// Returns the zero value when no points have been recorded.
func (s *RawStroke) Last() StrokePoint {
	if len(s.Points) == 0 {
		return StrokePoint{}
	}
	return s.Points[len(s.Points)-1]
}
