// Package robot drives the strike mechanism: pose computation, the
// distance→intensity calibration table, and the move/strike/home sequence
// against a vendor motion-controller driver.
package robot

import (
	"fmt"
	"log"
	"time"

	"github.com/robocue/backend/internal/planner"
)

// Digital-output pins on the motion controller.
const (
	pinTrigger    = 16 // solenoid striker
	highestPowPin = 15 // power pins run 15 down to 9
)

// triggerSettle is the mechanical response time between trigger toggles.
const triggerSettle = 500 * time.Millisecond

// Driver abstracts the vendor motion-controller SDK. Implementations talk
// to real hardware; tests substitute a recorder.
type Driver interface {
	MovePTP(pose Pose) error
	MoveLinear(pose Pose) error
	MoveHome() error
	SetDigitalOutput(pin int, on bool) error
	WaitMotionDone() error
}

// Controller sequences a selected shot on the physical rig.
type Controller struct {
	drv       Driver
	clearance float64

	// Sleep is swappable so tests do not wait out the solenoid settle time.
	Sleep func(time.Duration)
}

func NewController(drv Driver, clearance float64) *Controller {
	return &Controller{drv: drv, clearance: clearance, Sleep: time.Sleep}
}

// ExecuteShot moves to the strike pose (PTP approach, then linear descent),
// sets the power pins for the shot distance, pulses the trigger, and
// returns home. Callers must only pass candidates returned by the planner;
// a planning failure must never reach this method.
func (c *Controller) ExecuteShot(cue planner.Vec2, shot planner.ShotCandidate) error {
	pose, err := StrikePose(cue, shot, c.clearance)
	if err != nil {
		return err
	}

	if err := c.drv.MovePTP(pose); err != nil {
		return fmt.Errorf("approach move: %w", err)
	}
	if err := c.drv.WaitMotionDone(); err != nil {
		return err
	}
	if err := c.drv.MoveLinear(pose); err != nil {
		return fmt.Errorf("descent move: %w", err)
	}
	if err := c.drv.WaitMotionDone(); err != nil {
		return err
	}

	if err := c.strike(shot.TotalDistance); err != nil {
		return err
	}

	if err := c.drv.MoveHome(); err != nil {
		return fmt.Errorf("home move: %w", err)
	}
	return c.drv.WaitMotionDone()
}

func (c *Controller) strike(distance float64) error {
	intensity := SelectIntensity(distance)
	log.Printf("[ROBOT] distance=%.1f intensity=%q", distance, intensity.Label)

	for i, on := range intensity.Outputs {
		if err := c.drv.SetDigitalOutput(highestPowPin-i, on); err != nil {
			return fmt.Errorf("power pin %d: %w", highestPowPin-i, err)
		}
	}

	// Trigger pulse: the solenoid line is active-low on the rig.
	if err := c.drv.SetDigitalOutput(pinTrigger, false); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	c.Sleep(triggerSettle)
	if err := c.drv.SetDigitalOutput(pinTrigger, true); err != nil {
		return fmt.Errorf("trigger reset: %w", err)
	}
	c.Sleep(triggerSettle)
	if err := c.drv.SetDigitalOutput(pinTrigger, false); err != nil {
		return fmt.Errorf("trigger off: %w", err)
	}
	return c.drv.WaitMotionDone()
}
