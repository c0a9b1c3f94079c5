package robot

import "log"

// LogDriver is a dry-run Driver that logs every command instead of moving
// hardware. Used by the planshot binary when no controller is connected.
type LogDriver struct{}

func (LogDriver) MovePTP(pose Pose) error {
	log.Printf("[ROBOT] PTP  → (%.1f, %.1f, %.1f) yaw=%.2f", pose.X, pose.Y, pose.Z, pose.Yaw)
	return nil
}

func (LogDriver) MoveLinear(pose Pose) error {
	log.Printf("[ROBOT] LIN  → (%.1f, %.1f, %.1f) yaw=%.2f", pose.X, pose.Y, pose.Z, pose.Yaw)
	return nil
}

func (LogDriver) MoveHome() error {
	log.Printf("[ROBOT] HOME")
	return nil
}

func (LogDriver) SetDigitalOutput(pin int, on bool) error {
	log.Printf("[ROBOT] DO%d=%v", pin, on)
	return nil
}

func (LogDriver) WaitMotionDone() error { return nil }
