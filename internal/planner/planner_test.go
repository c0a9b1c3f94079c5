package planner

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestPlanPrefersDirectShot(t *testing.T) {
	snap := Snapshot{
		CueBall: NewVec2(0, 0),
		Balls:   []Ball{{ID: 1, Position: NewVec2(100, 0)}},
		Pockets: []Pocket{{ID: 0, Position: NewVec2(200, 0)}},
		Walls: []WallSegment{
			{Name: "top", P1: NewVec2(-1000, 500), P2: NewVec2(1000, 500)},
		},
	}

	shot, err := Plan(snap, 15)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if shot.Kind != DirectShot {
		t.Errorf("direct shot available but selected kind=%s", shot.Kind)
	}
	if math.Abs(shot.TotalDistance-200) > 1e-9 {
		t.Errorf("expected distance 200, got %.4f", shot.TotalDistance)
	}
}

func TestPlanFallsBackToBank(t *testing.T) {
	snap := bankFixture()

	shot, err := Plan(snap, 15)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if shot.Kind != BankShot {
		t.Errorf("expected the one-bank fallback, got kind=%s", shot.Kind)
	}
	if want := 200 * math.Sqrt2; math.Abs(shot.TotalDistance-want) > 1e-9 {
		t.Errorf("expected reflected length %.4f, got %.4f", want, shot.TotalDistance)
	}
}

func TestPlanNoFeasibleShot(t *testing.T) {
	// No walls, and the only pocket line is blocked both ways.
	snap := Snapshot{
		CueBall: NewVec2(-100, 0),
		Balls: []Ball{
			{ID: 1, Position: NewVec2(0, 0)},
			{ID: 2, Position: NewVec2(10, 0)},
		},
		Pockets: []Pocket{{ID: 0, Position: NewVec2(200, 0)}},
	}

	_, err := Plan(snap, 15)
	if !errors.Is(err, ErrNoFeasibleShot) {
		t.Fatalf("expected ErrNoFeasibleShot, got %v", err)
	}
}

func TestPlanEmptyInputs(t *testing.T) {
	// Empty lists are valid inputs that reduce the candidate set, not errors.
	_, err := Plan(Snapshot{CueBall: NewVec2(0, 0)}, 15)
	if !errors.Is(err, ErrNoFeasibleShot) {
		t.Fatalf("expected ErrNoFeasibleShot on empty table, got %v", err)
	}
}

func TestPlanTieBreaksOnGenerationOrder(t *testing.T) {
	// Two pockets at equal total distance from the same ball: the candidate
	// generated first (pocket list order) must win.
	snap := Snapshot{
		CueBall: NewVec2(0, 0),
		Balls:   []Ball{{ID: 1, Position: NewVec2(100, 0)}},
		Pockets: []Pocket{
			{ID: 0, Position: NewVec2(200, 0)},
			{ID: 1, Position: NewVec2(100, 100)},
		},
	}

	shot, err := Plan(snap, 15)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if !shot.Pocket.IsEqualTo(snap.Pockets[0].Position) {
		t.Errorf("tie should keep the first-generated candidate, got pocket (%.0f,%.0f)",
			shot.Pocket.X, shot.Pocket.Y)
	}
}

func TestPlanDeterministic(t *testing.T) {
	snap := Snapshot{
		CueBall: NewVec2(-300, 40),
		Balls: []Ball{
			{ID: 1, Position: NewVec2(0, 0)},
			{ID: 2, Position: NewVec2(120, 60)},
			{ID: 3, Position: NewVec2(-50, 200)},
		},
		Pockets: []Pocket{
			{ID: 0, Position: NewVec2(400, 0)},
			{ID: 1, Position: NewVec2(400, 300)},
		},
		Walls: []WallSegment{
			{Name: "top", P1: NewVec2(-500, 400), P2: NewVec2(500, 400)},
			{Name: "bottom", P1: NewVec2(-500, -400), P2: NewVec2(500, -400)},
		},
	}

	first, err1 := Plan(snap, 15)
	second, err2 := Plan(snap, 15)
	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("non-deterministic outcome: %v vs %v", err1, err2)
	}
	if err1 == nil && !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs must select the identical shot: %+v vs %+v", first, second)
	}

	// Candidate sets are reproducible too.
	d1 := DirectShots(snap.CueBall, snap.Balls, snap.Pockets, 15)
	d2 := DirectShots(snap.CueBall, snap.Balls, snap.Pockets, 15)
	if !reflect.DeepEqual(d1, d2) {
		t.Error("direct candidate sets differ between invocations")
	}
}
