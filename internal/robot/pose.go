package robot

import (
	"errors"
	"math"

	"github.com/robocue/backend/internal/planner"
)

// CueTipMargin is the extra offset behind the cue ball, past the clearance
// radius, where the tool contacts it.
const CueTipMargin = 3.0

// Pose is a Cartesian tool pose (x, y, z, roll, pitch, yaw) in the robot
// base frame. The table plane is z=0.
type Pose struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64
}

// ErrDegenerateShot signals a candidate whose ball and pocket coincide; no
// strike direction exists for it.
var ErrDegenerateShot = errors.New("robot: ball and pocket coincide, no strike direction")

// StrikePose converts a selected shot into the tool pose for the strike:
// the contact point sits behind the cue ball along the ball→pocket
// direction, and yaw orients the tool against its (0,-1,0) reference
// vector, signed by the strike direction's x-component.
func StrikePose(cue planner.Vec2, shot planner.ShotCandidate, clearance float64) (Pose, error) {
	rel := shot.Pocket.Minus(shot.Contact)
	dist := rel.Magnitude()
	if dist == 0 {
		return Pose{}, ErrDegenerateShot
	}
	u := rel.Times(1 / dist)

	hit := cue.Plus(u.Times(clearance + CueTipMargin))

	// Angle between the strike direction and the tool reference (0,-1,0):
	// the inner product collapses to -u.Y.
	theta := math.Abs(math.Acos(-u.Y)) * 180 / math.Pi
	yaw := -90 - theta
	if u.X > 0 {
		yaw = -90 + theta
	}

	return Pose{X: hit.X, Y: hit.Y, Z: 0, Yaw: yaw}, nil
}
