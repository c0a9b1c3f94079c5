package models

import (
	"database/sql"
	"time"
)

// Operator is a rig operator allowed to trigger planning runs.
type Operator struct {
	ID           int          `db:"id" json:"id"`
	Username     string       `db:"username" json:"username"`
	PasswordHash string       `db:"password_hash" json:"-"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	LastLogin    sql.NullTime `db:"last_login" json:"last_login,omitempty"`
}

// PlannedShot is one selected shot candidate as persisted for audit and
// calibration review. Bounce and wall are set only for bank shots.
type PlannedShot struct {
	ID            int             `db:"id" json:"id"`
	Kind          string          `db:"kind" json:"kind"`
	BallID        int             `db:"ball_id" json:"ball_id"`
	BallX         float64         `db:"ball_x" json:"ball_x"`
	BallY         float64         `db:"ball_y" json:"ball_y"`
	PocketX       float64         `db:"pocket_x" json:"pocket_x"`
	PocketY       float64         `db:"pocket_y" json:"pocket_y"`
	BounceX       sql.NullFloat64 `db:"bounce_x" json:"bounce_x,omitempty"`
	BounceY       sql.NullFloat64 `db:"bounce_y" json:"bounce_y,omitempty"`
	Wall          sql.NullString  `db:"wall" json:"wall,omitempty"`
	TotalDistance float64         `db:"total_distance" json:"total_distance"`
	Source        string          `db:"source" json:"source"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
