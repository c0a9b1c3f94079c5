package planner

import "math"

// PathObstructed reports whether any obstacle ball blocks the straight path
// from start to end. Obstacles exactly coincident with either endpoint are
// the path's own deliberate contacts and are skipped; the comparison is
// exact, not tolerance-based.
//
// The bound test deliberately uses the obstacle's distance from start
// rather than a clamped projection onto the segment. An obstacle near the
// line but outside the true segment span can be misclassified; this matches
// the heuristic the rig was calibrated against and must not be tightened
// without recalibration.
func PathObstructed(start, end Vec2, obstacles []Ball, radius float64) bool {
	span := end.Minus(start)
	if span.IsZero() {
		return false
	}
	spanMag := span.Magnitude()

	for _, obs := range obstacles {
		p := obs.Position
		if p.IsEqualTo(start) || p.IsEqualTo(end) {
			continue
		}
		d := PerpDistance(span, start, p)
		if math.Abs(d) < radius {
			if p.Minus(start).Magnitude() < spanMag {
				return true
			}
		}
	}
	return false
}
