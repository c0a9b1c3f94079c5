package planner

import (
	"math"
	"testing"
)

// One wall above the table line: ball at the origin, pocket to the right,
// and a blocker on the direct line forces the one-bank path over the wall.
func bankFixture() Snapshot {
	return Snapshot{
		CueBall: NewVec2(-100, 0),
		Balls: []Ball{
			{ID: 1, Position: NewVec2(0, 0)},
			{ID: 2, Position: NewVec2(100, 0)},
		},
		Pockets: []Pocket{{ID: 0, Position: NewVec2(200, 0)}},
		Walls: []WallSegment{
			{Name: "top", P1: NewVec2(-100, 100), P2: NewVec2(300, 100)},
		},
	}
}

func TestBankShotViaWall(t *testing.T) {
	snap := bankFixture()

	shots := BankShots(snap.CueBall, snap.Balls, snap.Pockets, snap.Walls, 15)
	if len(shots) != 1 {
		t.Fatalf("expected exactly 1 bank candidate, got %d", len(shots))
	}
	s := shots[0]
	if s.Kind != BankShot || s.BallID != 1 || s.Wall != "top" {
		t.Errorf("unexpected candidate: kind=%s ball=%d wall=%s", s.Kind, s.BallID, s.Wall)
	}
	if s.Bounce == nil {
		t.Fatal("bank candidate must carry its bounce point")
	}
	// Mirroring the pocket across y=100 puts the bounce at (100, 100).
	if math.Abs(s.Bounce.X-100) > 1e-9 || math.Abs(s.Bounce.Y-100) > 1e-9 {
		t.Errorf("expected bounce at (100,100), got (%.4f,%.4f)", s.Bounce.X, s.Bounce.Y)
	}
	// Reflected length: |ball→bounce| + |bounce→pocket| = 200·√2.
	want := 200 * math.Sqrt2
	if math.Abs(s.TotalDistance-want) > 1e-9 {
		t.Errorf("expected total distance %.4f, got %.4f", want, s.TotalDistance)
	}
	// Candidates carry the original, unreflected coordinates.
	if !s.Pocket.IsEqualTo(snap.Pockets[0].Position) {
		t.Errorf("candidate must carry the unreflected pocket position")
	}
}

func TestBounceMustStayOnWallSegment(t *testing.T) {
	snap := bankFixture()
	// Shorten the wall so the reflection point at x=100 falls outside it.
	snap.Walls = []WallSegment{
		{Name: "top", P1: NewVec2(150, 100), P2: NewVec2(300, 100)},
	}

	if shots := BankShots(snap.CueBall, snap.Balls, snap.Pockets, snap.Walls, 15); len(shots) != 0 {
		t.Errorf("bounce outside the wall segment bounds must be rejected, got %d shots", len(shots))
	}
}

func TestBlockedHalfSegmentRejected(t *testing.T) {
	snap := bankFixture()
	// Park a ball on the ball→bounce half-segment.
	snap.Balls = append(snap.Balls, Ball{ID: 3, Position: NewVec2(50, 52)})

	for _, s := range BankShots(snap.CueBall, snap.Balls, snap.Pockets, snap.Walls, 15) {
		if s.BallID == 1 {
			t.Error("bank path with an obstructed half-segment must be rejected")
		}
	}
}

func TestDegenerateWallSkipped(t *testing.T) {
	snap := bankFixture()
	snap.Walls = []WallSegment{
		{Name: "point", P1: NewVec2(0, 100), P2: NewVec2(0, 100)},
	}

	if shots := BankShots(snap.CueBall, snap.Balls, snap.Pockets, snap.Walls, 15); len(shots) != 0 {
		t.Errorf("zero-length wall cannot reflect, got %d shots", len(shots))
	}
}
