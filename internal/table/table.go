// Package table provides the default table geometry used when an input
// snapshot does not carry its own wall and pocket coordinates.
package table

import "github.com/robocue/backend/internal/planner"

// Playing-field dimensions in millimetres, origin at the table center.
const (
	HalfWidth  = 1000.0
	HalfHeight = 500.0
)

// Table holds the boundary geometry of the physical rig.
type Table struct {
	Walls   []planner.WallSegment
	Pockets []planner.Pocket
}

// Standard returns the six-pocket table the rig is calibrated for: four rail
// segments usable as bank surfaces and pockets at the corners plus the long
// side midpoints.
func Standard() *Table {
	rails := []struct {
		name   string
		p1, p2 planner.Vec2
	}{
		{"top", planner.NewVec2(-HalfWidth, HalfHeight), planner.NewVec2(HalfWidth, HalfHeight)},
		{"bottom", planner.NewVec2(-HalfWidth, -HalfHeight), planner.NewVec2(HalfWidth, -HalfHeight)},
		{"left", planner.NewVec2(-HalfWidth, -HalfHeight), planner.NewVec2(-HalfWidth, HalfHeight)},
		{"right", planner.NewVec2(HalfWidth, -HalfHeight), planner.NewVec2(HalfWidth, HalfHeight)},
	}

	walls := make([]planner.WallSegment, len(rails))
	for i, r := range rails {
		walls[i] = planner.WallSegment{Name: r.name, P1: r.p1, P2: r.p2}
	}

	pockets := []planner.Pocket{
		{ID: 0, Position: planner.NewVec2(-HalfWidth, HalfHeight)},
		{ID: 1, Position: planner.NewVec2(0, HalfHeight)},
		{ID: 2, Position: planner.NewVec2(HalfWidth, HalfHeight)},
		{ID: 3, Position: planner.NewVec2(-HalfWidth, -HalfHeight)},
		{ID: 4, Position: planner.NewVec2(0, -HalfHeight)},
		{ID: 5, Position: planner.NewVec2(HalfWidth, -HalfHeight)},
	}

	return &Table{Walls: walls, Pockets: pockets}
}

// Snapshot assembles a planning snapshot on the standard table.
func (t *Table) Snapshot(cue planner.Vec2, balls []planner.Ball) planner.Snapshot {
	return planner.Snapshot{
		CueBall: cue,
		Balls:   balls,
		Pockets: t.Pockets,
		Walls:   t.Walls,
	}
}
