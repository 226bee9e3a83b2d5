package ink

// Pressure simulation constants. Velocity is measured in internal pixels
// per millisecond; at pressureVelocityRef and above the simulated pressure
// reaches pressureFloor.
const (
	pressureFloor       = 0.25
	pressureVelocityRef = 5.0
	pressureInitial     = 0.5
)

// velocityPressure maps an instantaneous velocity to a target pressure.
// Slow movement approaches 1, fast movement approaches the floor. The
// mapping is monotonically non-increasing in velocity.
func velocityPressure(v float64) float64 {
	if v < 0 {
		v = 0
	}
	speed := v / pressureVelocityRef
	if speed > 1 {
		speed = 1
	}
	return pressureFloor + (1-pressureFloor)*(1-speed)
}

// pointVelocity returns the velocity between two samples in pixels per
// millisecond. A non-positive time delta is treated as one millisecond, so
// duplicate timestamps degrade instead of dividing by zero.
func pointVelocity(prev, cur StrokePoint) float64 {
	dt := cur.Time - prev.Time
	if dt <= 0 {
		dt = 1
	}
	return cur.Point.Distance(prev.Point) / dt
}

// EstimatePressure returns the simulated pressure for points[index], blending
// the velocity-derived target with the running estimate of the preceding
// points weighted by smoothing (0 follows velocity exactly, 1 never moves
// off the initial value). The first point of a stroke is always 0.5.
//
// Pure and deterministic: identical inputs give identical results. Out of
// range index is clamped. The result is always in [0, 1].
func EstimatePressure(points []StrokePoint, index int, smoothing float64) float64 {
	if len(points) == 0 {
		return pressureInitial
	}
	if index < 0 {
		index = 0
	}
	if index >= len(points) {
		index = len(points) - 1
	}
	smoothing = clamp01(smoothing)

	estimate := pressureInitial
	for i := 1; i <= index; i++ {
		target := velocityPressure(pointVelocity(points[i-1], points[i]))
		estimate = target + (estimate-target)*smoothing
	}
	return clamp01(estimate)
}

// PressureEstimator is the streaming form of EstimatePressure: it carries
// the running estimate between samples so each point costs O(1). One
// estimator serves one stroke; call Reset between strokes.
type PressureEstimator struct {
	// Smoothing is the weight of the previous estimate in [0, 1].
	Smoothing float64

	prev    StrokePoint
	current float64
	primed  bool
}

// NewPressureEstimator creates an estimator with the given smoothing.
func NewPressureEstimator(smoothing float64) *PressureEstimator {
	return &PressureEstimator{Smoothing: clamp01(smoothing), current: pressureInitial}
}

// Reset clears the running state so the estimator can serve a new stroke.
func (e *PressureEstimator) Reset() {
	e.prev = StrokePoint{}
	e.current = pressureInitial
	e.primed = false
}

// Estimate folds one sample into the running estimate and returns the
// simulated pressure for it. The first sample after construction or Reset
// returns 0.5.
func (e *PressureEstimator) Estimate(p StrokePoint) float64 {
	if !e.primed {
		e.prev = p
		e.current = pressureInitial
		e.primed = true
		return e.current
	}
	target := velocityPressure(pointVelocity(e.prev, p))
	e.current = clamp01(target + (e.current-target)*clamp01(e.Smoothing))
	e.prev = p
	return e.current
}
