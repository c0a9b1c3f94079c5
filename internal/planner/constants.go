package planner

// Planning constants calibrated on the physical rig.

const (
	// DefaultClearanceRadius folds the ball radius into a single clearance
	// constant: a path is blocked when any other ball comes closer than this
	// to the line, in millimetres.
	DefaultClearanceRadius = 15.0

	// MaxStrikeAngleDeg bounds the deflection between the cue→ball and
	// ball→pocket directions to what the strike mechanism can play.
	MaxStrikeAngleDeg = 110.0
)
