package ink

// StrokeStyle defines the brush configuration for a freehand stroke.
// It encapsulates every knob the outline builder and the renderer need in a
// single struct supplied by the host per active tool.
type StrokeStyle struct {
	// Color is the fill color of the committed stroke. Default: black.
	Color RGBA

	// Size is the full stroke width in internal pixels. Default: 8.0
	Size float64

	// Opacity is the fill opacity of the committed stroke, in [0, 1].
	// Default: 1.0
	Opacity float64

	// Thinning controls how pressure maps to width, in [-1, 1].
	// Positive thinning shrinks width at low pressure; negative grows it.
	// Zero disables pressure response. Default: 0.5
	Thinning float64

	// Smoothing removes high-frequency direction noise from the outline,
	// in [0, 1]. Higher values drop outline vertices closer together than
	// Size*Smoothing. Default: 0.5
	Smoothing float64

	// Streamline damps input jitter by interpolating each incoming point
	// toward its predecessor, in [0, 1]. Default: 0.5
	Streamline float64

	// TaperStart is the arc-length distance over which the stroke width
	// shrinks to a point at the start. Zero disables. Default: 0
	TaperStart float64

	// TaperEnd is the arc-length distance over which the stroke width
	// shrinks to a point at the end. Zero disables. Default: 0
	TaperEnd float64

	// CapStart draws a rounded semicircular cap at the start when true,
	// a flat cap otherwise. Ignored while TaperStart is active. Default: true
	CapStart bool

	// CapEnd draws a rounded semicircular cap at the end when true,
	// a flat cap otherwise. Ignored while TaperEnd is active. Default: true
	CapEnd bool

	// SimulatePressure derives pressure from point velocity when the
	// device provides none. Default: true
	SimulatePressure bool
}

// DefaultStrokeStyle returns a StrokeStyle with default settings:
// an 8-pixel black pen with moderate thinning, smoothing, and streamline,
// rounded caps, no tapers, and simulated pressure enabled.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:            Black,
		Size:             8.0,
		Opacity:          1.0,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		TaperStart:       0,
		TaperEnd:         0,
		CapStart:         true,
		CapEnd:           true,
		SimulatePressure: true,
	}
}

// WithColor returns a copy of the style with the given color.
func (s StrokeStyle) WithColor(c RGBA) StrokeStyle {
	s.Color = c
	return s
}

// WithSize returns a copy of the style with the given stroke width.
func (s StrokeStyle) WithSize(size float64) StrokeStyle {
	s.Size = size
	return s
}

// WithOpacity returns a copy of the style with the given opacity.
func (s StrokeStyle) WithOpacity(opacity float64) StrokeStyle {
	s.Opacity = opacity
	return s
}

// WithThinning returns a copy of the style with the given thinning.
func (s StrokeStyle) WithThinning(thinning float64) StrokeStyle {
	s.Thinning = thinning
	return s
}

// WithSmoothing returns a copy of the style with the given smoothing.
func (s StrokeStyle) WithSmoothing(smoothing float64) StrokeStyle {
	s.Smoothing = smoothing
	return s
}

// WithStreamline returns a copy of the style with the given streamline.
func (s StrokeStyle) WithStreamline(streamline float64) StrokeStyle {
	s.Streamline = streamline
	return s
}

// WithTaper returns a copy of the style with the given taper distances.
func (s StrokeStyle) WithTaper(start, end float64) StrokeStyle {
	s.TaperStart = start
	s.TaperEnd = end
	return s
}

// WithCaps returns a copy of the style with the given cap settings.
func (s StrokeStyle) WithCaps(start, end bool) StrokeStyle {
	s.CapStart = start
	s.CapEnd = end
	return s
}

// WithSimulatePressure returns a copy of the style with pressure
// simulation enabled or disabled.
func (s StrokeStyle) WithSimulatePressure(simulate bool) StrokeStyle {
	s.SimulatePressure = simulate
	return s
}

// Normalized returns a copy of the style with every numeric field clamped
// to its declared range. Geometry consumes styles through Normalized, so
// out-of-range configuration degrades instead of failing.
func (s StrokeStyle) Normalized() StrokeStyle {
	if s.Size <= 0 {
		s.Size = 1
	}
	s.Opacity = clamp01(s.Opacity)
	s.Thinning = clamp(s.Thinning, -1, 1)
	s.Smoothing = clamp01(s.Smoothing)
	s.Streamline = clamp01(s.Streamline)
	if s.TaperStart < 0 {
		s.TaperStart = 0
	}
	if s.TaperEnd < 0 {
		s.TaperEnd = 0
	}
	return s
}

// clamp restricts a value to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}
