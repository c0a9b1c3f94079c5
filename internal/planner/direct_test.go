package planner

import (
	"math"
	"testing"
)

func TestStraightDirectShot(t *testing.T) {
	// Cue, ball and pocket on one line, nothing else on the table.
	cue := NewVec2(0, 0)
	balls := []Ball{{ID: 1, Position: NewVec2(100, 0)}}
	pockets := []Pocket{{ID: 0, Position: NewVec2(200, 0)}}

	shots := DirectShots(cue, balls, pockets, 15)
	if len(shots) != 1 {
		t.Fatalf("expected exactly 1 direct shot, got %d", len(shots))
	}
	s := shots[0]
	if s.Kind != DirectShot || s.BallID != 1 {
		t.Errorf("unexpected candidate: kind=%s ball=%d", s.Kind, s.BallID)
	}
	if math.Abs(s.TotalDistance-200) > 1e-9 {
		t.Errorf("expected total distance 200 (100 cue→ball + 100 ball→pocket), got %.4f", s.TotalDistance)
	}
}

func TestBlockedPocketLineExcluded(t *testing.T) {
	// A second ball sits on the ball→pocket line within the clearance radius.
	cue := NewVec2(0, 0)
	balls := []Ball{
		{ID: 1, Position: NewVec2(100, 0)},
		{ID: 2, Position: NewVec2(150, 0)},
	}
	pockets := []Pocket{{ID: 0, Position: NewVec2(200, 0)}}

	for _, s := range DirectShots(cue, balls, pockets, 15) {
		if s.BallID == 1 {
			t.Errorf("ball 1's pocket line is blocked; candidate should be excluded")
		}
	}
}

func TestAllLinesBlockedReturnsEmpty(t *testing.T) {
	// Two adjacent balls: each sits within the clearance radius of the
	// other's pocket line (the trailing ball via the distance-from-start
	// bound), so nothing is pocketable.
	cue := NewVec2(-100, 0)
	balls := []Ball{
		{ID: 1, Position: NewVec2(0, 0)},
		{ID: 2, Position: NewVec2(10, 0)},
	}
	pockets := []Pocket{{ID: 0, Position: NewVec2(200, 0)}}

	if shots := DirectShots(cue, balls, pockets, 15); len(shots) != 0 {
		t.Errorf("expected no direct shots, got %d", len(shots))
	}
}

func TestStrikeAngleFilter(t *testing.T) {
	// Pocket behind the cue: the cue→ball and ball→pocket directions are
	// opposed (180°), far past the strikeable bound.
	cue := NewVec2(0, 0)
	balls := []Ball{{ID: 1, Position: NewVec2(100, 0)}}
	pockets := []Pocket{{ID: 0, Position: NewVec2(-200, 0)}}

	if shots := DirectShots(cue, balls, pockets, 15); len(shots) != 0 {
		t.Errorf("180° deflection should not be strikeable, got %d shots", len(shots))
	}

	// Just inside the bound: a ~90° cut is playable.
	pockets = []Pocket{{ID: 0, Position: NewVec2(100, 150)}}
	if shots := DirectShots(cue, balls, pockets, 15); len(shots) != 1 {
		t.Errorf("90° cut should be strikeable, got %d shots", len(shots))
	}
}

func TestDegenerateAngleExcluded(t *testing.T) {
	// Ball exactly on the pocket: the ball→pocket vector has zero length and
	// the strike angle is undefined. The candidate must be dropped, not
	// compared as a valid value.
	cue := NewVec2(0, 0)
	balls := []Ball{{ID: 1, Position: NewVec2(100, 0)}}
	pockets := []Pocket{{ID: 0, Position: NewVec2(100, 0)}}

	if shots := DirectShots(cue, balls, pockets, 15); len(shots) != 0 {
		t.Errorf("undefined strike angle must exclude the candidate, got %d shots", len(shots))
	}
}

func TestMatchingKeyedOnBallID(t *testing.T) {
	// Two balls at near-identical coordinates: only ball 1 has a clear cue
	// path geometry-wise, but both share (within float noise) the same
	// position. Matching by ID must not cross-pair them.
	cue := NewVec2(0, 0)
	balls := []Ball{
		{ID: 1, Position: NewVec2(100, 0)},
		{ID: 2, Position: NewVec2(100, 1e-7)},
	}
	pockets := []Pocket{{ID: 0, Position: NewVec2(200, 0)}}

	shots := DirectShots(cue, balls, pockets, 15)
	for _, s := range shots {
		if s.BallID == 1 && !s.Contact.IsEqualTo(balls[0].Position) {
			t.Errorf("candidate for ball 1 carries ball 2's coordinates")
		}
		if s.BallID == 2 && !s.Contact.IsEqualTo(balls[1].Position) {
			t.Errorf("candidate for ball 2 carries ball 1's coordinates")
		}
	}
}
