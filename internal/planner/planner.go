// Package planner chooses which object ball to strike, which pocket to aim
// for, and whether to play a direct or single-bank shot, minimizing the
// projected travel distance. Planning is a pure function of an immutable
// position snapshot: no I/O, no shared state, safe to call concurrently on
// independent snapshots.
package planner

import "errors"

// ErrNoFeasibleShot is the engine's only terminal failure: neither a direct
// nor a bank candidate exists. No hardware action may follow it.
var ErrNoFeasibleShot = errors.New("planner: no feasible shot")

// Plan selects the best shot for the snapshot. Direct candidates are
// preferred; bank candidates are evaluated only when no direct shot exists.
// Among the chosen list the minimum TotalDistance wins, ties broken by
// generation order.
func Plan(snap Snapshot, radius float64) (ShotCandidate, error) {
	shots := DirectShots(snap.CueBall, snap.Balls, snap.Pockets, radius)
	if len(shots) == 0 {
		shots = BankShots(snap.CueBall, snap.Balls, snap.Pockets, snap.Walls, radius)
	}
	if len(shots) == 0 {
		return ShotCandidate{}, ErrNoFeasibleShot
	}

	best := shots[0]
	for _, s := range shots[1:] {
		if s.TotalDistance < best.TotalDistance {
			best = s
		}
	}
	return best, nil
}
