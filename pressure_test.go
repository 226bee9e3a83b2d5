package ink

import (
	"math"
	"testing"
)

func TestEstimatePressure_FirstPoint(t *testing.T) {
	points := []StrokePoint{{Point: Pt(10, 10), Time: 0}}
	if got := EstimatePressure(points, 0, 0.5); got != 0.5 {
		t.Errorf("EstimatePressure(first point) = %v, want 0.5", got)
	}
	if got := EstimatePressure(nil, 0, 0.5); got != 0.5 {
		t.Errorf("EstimatePressure(no points) = %v, want 0.5", got)
	}
}

func TestEstimatePressure_VelocityExtremes(t *testing.T) {
	tests := []struct {
		name    string
		second  StrokePoint
		wantLow bool
	}{
		// 200 px in 1 ms: far past the reference velocity, pinned to the floor.
		{"fast", StrokePoint{Point: Pt(200, 0), Time: 1}, true},
		// 5 px in 50 ms: nearly still, pressure close to 1.
		{"slow", StrokePoint{Point: Pt(5, 0), Time: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []StrokePoint{{Point: Pt(0, 0), Time: 0}, tt.second}
			got := EstimatePressure(points, 1, 0)
			if tt.wantLow && got > 0.3 {
				t.Errorf("fast stroke pressure = %v, want <= 0.3", got)
			}
			if !tt.wantLow && got < 0.9 {
				t.Errorf("slow stroke pressure = %v, want >= 0.9", got)
			}
		})
	}
}

func TestEstimatePressure_RangeAndMonotonicity(t *testing.T) {
	velocities := []float64{0, 0.1, 0.5, 1, 2, 5, 10, 50, 200}
	prev := math.Inf(1)
	for _, v := range velocities {
		points := []StrokePoint{
			{Point: Pt(0, 0), Time: 0},
			{Point: Pt(v, 0), Time: 1},
		}
		got := EstimatePressure(points, 1, 0)
		if got < 0 || got > 1 {
			t.Errorf("pressure at velocity %v = %v, out of [0,1]", v, got)
		}
		if got > prev {
			t.Errorf("pressure at velocity %v = %v, increased from %v", v, got, prev)
		}
		prev = got
	}
}

func TestEstimatePressure_SmoothingBlends(t *testing.T) {
	points := []StrokePoint{
		{Point: Pt(0, 0), Time: 0},
		{Point: Pt(200, 0), Time: 1}, // target at the floor
	}
	exact := EstimatePressure(points, 1, 0)
	blended := EstimatePressure(points, 1, 0.5)
	frozen := EstimatePressure(points, 1, 1)

	if blended <= exact {
		t.Errorf("smoothing=0.5 pressure %v should sit above the unsmoothed %v", blended, exact)
	}
	if frozen != 0.5 {
		t.Errorf("smoothing=1 pressure = %v, want to stay at the initial 0.5", frozen)
	}
	want := exact + (0.5-exact)*0.5
	if math.Abs(blended-want) > 1e-9 {
		t.Errorf("smoothing=0.5 pressure = %v, want %v", blended, want)
	}
}

func TestEstimatePressure_DegenerateTimestamps(t *testing.T) {
	// Identical or reversed timestamps must not divide by zero; the delta
	// is treated as one millisecond.
	points := []StrokePoint{
		{Point: Pt(0, 0), Time: 10},
		{Point: Pt(3, 4), Time: 10},
	}
	got := EstimatePressure(points, 1, 0)
	if got < 0 || got > 1 {
		t.Errorf("pressure with zero time delta = %v, out of [0,1]", got)
	}
	// Distance 5 over an assumed 1 ms equals the reference velocity.
	want := EstimatePressure([]StrokePoint{
		{Point: Pt(0, 0), Time: 0},
		{Point: Pt(3, 4), Time: 1},
	}, 1, 0)
	if got != want {
		t.Errorf("pressure with zero time delta = %v, want %v", got, want)
	}
}

func TestEstimatePressure_IndexClamped(t *testing.T) {
	points := []StrokePoint{
		{Point: Pt(0, 0), Time: 0},
		{Point: Pt(10, 0), Time: 10},
	}
	inRange := EstimatePressure(points, 1, 0.3)
	if got := EstimatePressure(points, 99, 0.3); got != inRange {
		t.Errorf("EstimatePressure(index 99) = %v, want clamped to %v", got, inRange)
	}
	if got := EstimatePressure(points, -4, 0.3); got != 0.5 {
		t.Errorf("EstimatePressure(index -4) = %v, want 0.5", got)
	}
}

func TestPressureEstimator_MatchesBatch(t *testing.T) {
	points := []StrokePoint{
		{Point: Pt(0, 0), Time: 0},
		{Point: Pt(12, 3), Time: 9},
		{Point: Pt(30, 8), Time: 17},
		{Point: Pt(31, 8), Time: 40},
		{Point: Pt(90, 20), Time: 48},
		{Point: Pt(95, 21), Time: 80},
	}
	const smoothing = 0.3

	e := NewPressureEstimator(smoothing)
	for i, p := range points {
		got := e.Estimate(p)
		want := EstimatePressure(points, i, smoothing)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("streaming estimate at %d = %v, batch = %v", i, got, want)
		}
	}
}

func TestPressureEstimator_Reset(t *testing.T) {
	e := NewPressureEstimator(0.5)
	e.Estimate(StrokePoint{Point: Pt(0, 0), Time: 0})
	e.Estimate(StrokePoint{Point: Pt(300, 0), Time: 1})

	e.Reset()
	if got := e.Estimate(StrokePoint{Point: Pt(50, 50), Time: 100}); got != 0.5 {
		t.Errorf("first estimate after Reset = %v, want 0.5", got)
	}
}
