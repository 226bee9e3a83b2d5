package ink

import "math"

const (
	// capSegments is the number of divisions in a semicircular cap or
	// sharp-corner fan.
	capSegments = 13

	// discSegments is the number of vertices in the degenerate
	// single-tap disc.
	discSegments = 16

	// minRadius is the smallest effective half-width. Overlapping tapers
	// collapse a stroke to a sliver of this width, never to nothing.
	minRadius = 0.01
)

// flowPoint is one streamlined sample enriched with the quantities the
// outline pass needs: the unit tangent from the previous point and the arc
// length accumulated so far.
type flowPoint struct {
	pt       Point
	pressure float64
	vec      Vec2
	run      float64
}

// flowPoints applies streamline damping and computes tangents and running
// lengths. Samples that land on top of their predecessor are dropped so
// tangents stay well defined. When complete is true the final raw point is
// kept exact instead of interpolated, so a finished stroke ends precisely
// where the pointer lifted.
func flowPoints(points []StrokePoint, streamline float64, complete bool) []flowPoint {
	t := 0.15 + (1-streamline)*0.85
	flow := make([]flowPoint, 0, len(points))
	prev := flowPoint{pt: points[0].Point, pressure: clamp01(points[0].Pressure)}
	flow = append(flow, prev)

	for i := 1; i < len(points); i++ {
		raw := points[i]
		pt := prev.pt.Lerp(raw.Point, t)
		if complete && i == len(points)-1 {
			pt = raw.Point
		}
		distSq := pt.DistanceSquared(prev.pt)
		if distSq < 1e-12 {
			continue
		}
		dist := math.Sqrt(distSq)
		fp := flowPoint{
			pt:       pt,
			pressure: clamp01(raw.Pressure),
			vec:      PointToVec2(pt.Sub(prev.pt)).Mul(1 / dist),
			run:      prev.run + dist,
		}
		flow = append(flow, fp)
		prev = fp
	}

	// The first point has no incoming tangent; borrow the second's.
	if len(flow) > 1 {
		flow[0].vec = flow[1].vec
	}
	return flow
}

// halfWidth maps a pressure value through thinning onto an effective
// half-width. Thinning zero gives a constant Size/2; positive thinning
// shrinks the width at low pressure, negative thinning grows it.
func halfWidth(style StrokeStyle, pressure float64) float64 {
	return style.Size * clamp01(0.5-style.Thinning*(0.5-clamp01(pressure)))
}

// taperedRadius applies the taper envelope to a point's half-width.
// Near the ends the radius shrinks linearly over the configured arc-length
// distances; when tapers overlap on a short stroke the smaller multiplier
// wins and the radius bottoms out at minRadius.
func taperedRadius(style StrokeStyle, p flowPoint, total, taperStart, taperEnd float64) float64 {
	r := halfWidth(style, p.pressure)
	ts, te := 1.0, 1.0
	if taperStart > 0 && p.run < taperStart {
		ts = p.run / taperStart
	}
	if taperEnd > 0 && total-p.run < taperEnd {
		te = (total - p.run) / taperEnd
	}
	return math.Max(minRadius, r*math.Min(ts, te))
}

// outlineNormal returns the unit normal at flow[i]: the perpendicular of
// the incoming tangent blended with the outgoing one at interior points.
func outlineNormal(flow []flowPoint, i int) Vec2 {
	v := flow[i].vec
	if i < len(flow)-1 {
		blended := v.Add(flow[i+1].vec)
		if !blended.IsZero() {
			return blended.Normalize().Perp()
		}
	}
	return v.Perp()
}

// offsetPoint displaces a position along a unit normal by d.
func offsetPoint(p Point, n Vec2, d float64) Point {
	return Point{X: p.X + n.X*d, Y: p.Y + n.Y*d}
}

// BuildOutline converts a pressure-weighted point sequence into a closed
// variable-width outline polygon: two offset curves displaced from the
// stroke spine by a pressure- and taper-modulated half-width, joined by cap
// geometry at both ends. The returned vertices form a clockwise ring; the
// final vertex connects back to the first.
//
// Fewer than two points return nil (nothing to render). Points that all
// coincide return a small disc of radius Size/2. complete marks a finished
// stroke: the final input point is then kept exact rather than streamlined.
//
// BuildOutline never fails: style values are clamped to their declared
// ranges and degenerate geometry falls back to simpler shapes.
func BuildOutline(points []StrokePoint, style StrokeStyle, complete bool) []Point {
	style = style.Normalized()
	if len(points) < 2 {
		return nil
	}

	flow := flowPoints(points, style.Streamline, complete)
	if len(flow) < 2 {
		// Every sample landed on the first point: a single tap.
		return discOutline(flow[0].pt, style.Size/2)
	}

	total := flow[len(flow)-1].run
	taperStart := math.Min(style.TaperStart, total)
	taperEnd := math.Min(style.TaperEnd, total)
	minDist := style.Size * style.Smoothing
	minDistSq := minDist * minDist

	left := make([]Point, 0, len(flow))
	right := make([]Point, 0, len(flow))
	var prevLeft, prevRight Point

	for i, p := range flow {
		radius := taperedRadius(style, p, total, taperStart, taperEnd)

		// A sharp corner (the tangent more than reverses) gets a fan of
		// rotated offsets on both sides instead of a single displaced
		// vertex, rounding the outside of the turn.
		if i < len(flow)-1 && p.vec.Dot(flow[i+1].vec) < 0 {
			offset := p.vec.Perp().Mul(radius)
			l := p.pt.Sub(offset.ToPoint())
			r := p.pt.Add(offset.ToPoint())
			for step := 0; step <= capSegments; step++ {
				angle := math.Pi * float64(step) / capSegments
				left = append(left, l.RotateAround(p.pt, angle))
				right = append(right, r.RotateAround(p.pt, angle))
			}
			prevLeft = left[len(left)-1]
			prevRight = right[len(right)-1]
			continue
		}

		normal := outlineNormal(flow, i)
		l := offsetPoint(p.pt, normal, -radius)
		r := offsetPoint(p.pt, normal, radius)

		// Smoothing drops vertices closer together than Size*Smoothing.
		// The first two and the last are always kept so caps have
		// anchors to attach to.
		keep := i <= 1 || i == len(flow)-1
		if keep || l.DistanceSquared(prevLeft) > minDistSq {
			left = append(left, l)
			prevLeft = l
		}
		if keep || r.DistanceSquared(prevRight) > minDistSq {
			right = append(right, r)
			prevRight = r
		}
	}

	first := flow[0]
	last := flow[len(flow)-1]
	lastRadius := taperedRadius(style, last, total, taperStart, taperEnd)

	// End cap: joins the left curve to the reversed right curve. A tapered
	// end converges on its own and only needs the tip anchored; a flat end
	// is simply the edge between the two curves.
	var endCap []Point
	switch {
	case taperEnd > 0:
		endCap = append(endCap, last.pt)
	case style.CapEnd:
		start := offsetPoint(last.pt, outlineNormal(flow, len(flow)-1), -lastRadius)
		for step := 1; step < capSegments; step++ {
			angle := math.Pi * float64(step) / capSegments
			endCap = append(endCap, start.RotateAround(last.pt, angle))
		}
	}

	// Start cap: joins the reversed right curve back to the first left
	// vertex, closing the ring.
	var startCap []Point
	if taperStart == 0 && style.CapStart {
		start := right[0]
		for step := 1; step < capSegments; step++ {
			angle := math.Pi * float64(step) / capSegments
			startCap = append(startCap, start.RotateAround(first.pt, angle))
		}
	}

	outline := make([]Point, 0, len(left)+len(endCap)+len(right)+len(startCap))
	outline = append(outline, left...)
	outline = append(outline, endCap...)
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	outline = append(outline, startCap...)
	return outline
}

// discOutline returns a clockwise circle approximation centered on a
// single-tap stroke.
func discOutline(center Point, radius float64) []Point {
	if radius <= 0 {
		radius = 0.5
	}
	pts := make([]Point, discSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / discSegments
		pts[i] = Point{
			X: center.X + radius*math.Sin(angle),
			Y: center.Y - radius*math.Cos(angle),
		}
	}
	return pts
}
