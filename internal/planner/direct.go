package planner

import "math"

// DirectShots produces every ball/pocket pair that can be played without a
// wall reflection:
//
//  1. the ball→pocket path is clear of the full object-ball set,
//  2. the cue→ball path is clear and the strike angle (between the cue→ball
//     and ball→pocket directions) stays below MaxStrikeAngleDeg for at least
//     one pocket,
//  3. both sets agree on the same ball, matched by ball ID.
//
// TotalDistance is |cue→ball| + |ball→pocket|.
func DirectShots(cue Vec2, balls []Ball, pockets []Pocket, radius float64) []ShotCandidate {
	type aim struct {
		ball   Ball
		pocket Pocket
	}

	// Ball→pocket visibility set.
	var pocketable []aim
	for _, b := range balls {
		for _, h := range pockets {
			if !PathObstructed(b.Position, h.Position, balls, radius) {
				pocketable = append(pocketable, aim{ball: b, pocket: h})
			}
		}
	}

	// Cue→ball visibility set with the strike-angle filter, keyed by ball ID.
	strikeable := make(map[int]bool)
	for _, b := range balls {
		if PathObstructed(b.Position, cue, balls, radius) {
			continue
		}
		toBall := b.Position.Minus(cue)
		for _, h := range pockets {
			toPocket := h.Position.Minus(b.Position)
			cos, ok := CosAngle(toBall, toPocket)
			if !ok {
				// Degenerate geometry, angle undefined: drop the pair.
				continue
			}
			angle := math.Abs(math.Acos(cos)) * 180 / math.Pi
			if angle < MaxStrikeAngleDeg {
				strikeable[b.ID] = true
			}
		}
	}

	var shots []ShotCandidate
	for _, a := range pocketable {
		if !strikeable[a.ball.ID] {
			continue
		}
		dist := cue.Minus(a.ball.Position).Magnitude() +
			a.ball.Position.Minus(a.pocket.Position).Magnitude()
		shots = append(shots, ShotCandidate{
			Kind:          DirectShot,
			BallID:        a.ball.ID,
			Contact:       a.ball.Position,
			Pocket:        a.pocket.Position,
			TotalDistance: dist,
		})
	}
	return shots
}
