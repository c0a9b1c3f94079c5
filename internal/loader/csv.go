// Package loader reads a position snapshot from the CSV files the vision
// pipeline drops after each detection pass.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robocue/backend/internal/planner"
)

// File names written by the detection stage.
const (
	CueBallFile   = "cueball.csv"
	ObjectsFile   = "objectballs.csv"
	PocketsFile   = "pockets.csv"
	WallsFile     = "walls.csv"
	BallCountFile = "ballcount.csv"
)

// Load reads a snapshot from dir. cueball.csv and objectballs.csv are
// required; pockets.csv and walls.csv may be absent (the caller substitutes
// the standard table). ballcount.csv, when present, must match the number of
// parsed object balls — a mismatch means the vision pass and the coordinate
// dump are out of sync.
func Load(dir string) (planner.Snapshot, error) {
	var snap planner.Snapshot

	cuePoints, err := readPoints(filepath.Join(dir, CueBallFile))
	if err != nil {
		return snap, fmt.Errorf("loading cue ball: %w", err)
	}
	if len(cuePoints) == 0 {
		return snap, fmt.Errorf("%s: no cue ball position", CueBallFile)
	}
	snap.CueBall = cuePoints[0]

	objects, err := readPoints(filepath.Join(dir, ObjectsFile))
	if err != nil {
		return snap, fmt.Errorf("loading object balls: %w", err)
	}
	for i, p := range objects {
		snap.Balls = append(snap.Balls, planner.Ball{ID: i + 1, Position: p})
	}

	if count, ok, err := readCount(filepath.Join(dir, BallCountFile)); err != nil {
		return snap, err
	} else if ok && count != len(objects) {
		return snap, fmt.Errorf("%s declares %d balls but %s has %d rows",
			BallCountFile, count, ObjectsFile, len(objects))
	}

	pockets, err := readOptionalPoints(filepath.Join(dir, PocketsFile))
	if err != nil {
		return snap, fmt.Errorf("loading pockets: %w", err)
	}
	for i, p := range pockets {
		snap.Pockets = append(snap.Pockets, planner.Pocket{ID: i, Position: p})
	}

	wallPoints, err := readOptionalPoints(filepath.Join(dir, WallsFile))
	if err != nil {
		return snap, fmt.Errorf("loading walls: %w", err)
	}
	if len(wallPoints)%2 != 0 {
		return snap, fmt.Errorf("%s: walls are endpoint pairs, got %d rows", WallsFile, len(wallPoints))
	}
	for i := 0; i+1 < len(wallPoints); i += 2 {
		snap.Walls = append(snap.Walls, planner.WallSegment{
			Name: fmt.Sprintf("wall-%d", i/2),
			P1:   wallPoints[i],
			P2:   wallPoints[i+1],
		})
	}

	return snap, nil
}

// readPoints parses a two-column CSV of x,y coordinates.
func readPoints(path string) ([]planner.Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated per row below
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	var points []planner.Vec2
	for i, rec := range records {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s row %d: expected x,y got %d fields", filepath.Base(path), i+1, len(rec))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filepath.Base(path), i+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filepath.Base(path), i+1, err)
		}
		points = append(points, planner.NewVec2(x, y))
	}
	return points, nil
}

func readOptionalPoints(path string) ([]planner.Vec2, error) {
	points, err := readPoints(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return points, err
}

func readCount(path string) (int, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return count, true, nil
}
