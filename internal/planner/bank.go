package planner

// mirrorAcross reflects point p across the infinite line through w.P1/w.P2.
func mirrorAcross(w WallSegment, p Vec2) (Vec2, bool) {
	dir := w.P2.Minus(w.P1)
	lenSq := dir.Dot(dir)
	if lenSq == 0 {
		return Vec2{}, false
	}
	t := p.Minus(w.P1).Dot(dir) / lenSq
	foot := w.P1.Plus(dir.Times(t))
	return foot.Times(2).Minus(p), true
}

// bouncePoint returns where the segment from→to crosses the wall segment,
// or ok=false when the crossing misses the wall's bounds or the segments
// are parallel. The crossing must be strictly between from and to; grazing
// an endpoint is not a playable bounce.
func bouncePoint(w WallSegment, from, to Vec2) (Vec2, bool) {
	d := to.Minus(from)
	e := w.P2.Minus(w.P1)
	denom := d.Cross(e)
	if denom == 0 {
		return Vec2{}, false
	}
	diff := w.P1.Minus(from)
	s := diff.Cross(e) / denom // along from→to
	u := diff.Cross(d) / denom // along the wall
	if s <= 0 || s >= 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return from.Plus(d.Times(s)), true
}

// BankShots evaluates single-wall-reflection paths: for each wall, ball and
// pocket, the pocket is mirrored across the wall line, turning the bent
// ball→wall→pocket path into one straight feasibility test. A candidate is
// emitted when the bounce point lies within the wall segment and the
// cue→ball, ball→bounce and bounce→pocket paths are each clear of the
// object-ball set. TotalDistance is the sum of the two bent half-segments,
// which equals the reflected straight-line length. Only one reflection is
// considered.
func BankShots(cue Vec2, balls []Ball, pockets []Pocket, walls []WallSegment, radius float64) []ShotCandidate {
	var shots []ShotCandidate
	for _, w := range walls {
		for _, b := range balls {
			if PathObstructed(b.Position, cue, balls, radius) {
				continue
			}
			for _, h := range pockets {
				mirror, ok := mirrorAcross(w, h.Position)
				if !ok {
					continue
				}
				bounce, ok := bouncePoint(w, b.Position, mirror)
				if !ok {
					continue
				}
				if PathObstructed(b.Position, bounce, balls, radius) {
					continue
				}
				if PathObstructed(bounce, h.Position, balls, radius) {
					continue
				}
				bp := bounce
				dist := b.Position.Minus(bounce).Magnitude() +
					bounce.Minus(h.Position).Magnitude()
				shots = append(shots, ShotCandidate{
					Kind:          BankShot,
					BallID:        b.ID,
					Contact:       b.Position,
					Pocket:        h.Position,
					Bounce:        &bp,
					Wall:          w.Name,
					TotalDistance: dist,
				})
			}
		}
	}
	return shots
}
