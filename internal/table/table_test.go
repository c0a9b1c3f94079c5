package table

import (
	"testing"

	"github.com/robocue/backend/internal/planner"
)

func TestStandardTableGeometry(t *testing.T) {
	tbl := Standard()

	if len(tbl.Pockets) != 6 {
		t.Errorf("expected 6 pockets, got %d", len(tbl.Pockets))
	}
	if len(tbl.Walls) != 4 {
		t.Errorf("expected 4 rail segments, got %d", len(tbl.Walls))
	}
	for _, w := range tbl.Walls {
		if w.P1.IsEqualTo(w.P2) {
			t.Errorf("rail %q is degenerate", w.Name)
		}
	}
}

func TestCenterBallHasDirectShot(t *testing.T) {
	// Sanity: a lone ball between the cue and a side pocket is pocketable.
	tbl := Standard()
	snap := tbl.Snapshot(
		planner.NewVec2(0, -400),
		[]planner.Ball{{ID: 1, Position: planner.NewVec2(0, 0)}},
	)

	shot, err := planner.Plan(snap, planner.DefaultClearanceRadius)
	if err != nil {
		t.Fatalf("Plan failed on an open table: %v", err)
	}
	if shot.Kind != planner.DirectShot {
		t.Errorf("expected a direct shot on an open table, got %s", shot.Kind)
	}
}
