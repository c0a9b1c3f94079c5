package planner

// Ball is an object ball on the table. ID is the stable per-ball index
// assigned by the loader; candidate matching is keyed on it, never on
// recomputed coordinates.
type Ball struct {
	ID       int  `json:"id"`
	Position Vec2 `json:"position"`
}

// Pocket is a target position.
type Pocket struct {
	ID       int  `json:"id"`
	Position Vec2 `json:"position"`
}

// WallSegment is a table-boundary edge usable as a bank reflection surface.
type WallSegment struct {
	Name string `json:"name"`
	P1   Vec2   `json:"p1"`
	P2   Vec2   `json:"p2"`
}

// Snapshot is the immutable input of one planning pass.
type Snapshot struct {
	CueBall Vec2          `json:"cue_ball"`
	Balls   []Ball        `json:"balls"`
	Pockets []Pocket      `json:"pockets"`
	Walls   []WallSegment `json:"walls"`
}

// ShotKind distinguishes direct from single-bank candidates.
type ShotKind string

const (
	DirectShot ShotKind = "direct"
	BankShot   ShotKind = "bank"
)

// ShotCandidate is one feasible shot. Contact and Pocket carry the original
// (unreflected) coordinates; Bounce is set only for bank shots.
type ShotCandidate struct {
	Kind          ShotKind `json:"kind"`
	BallID        int      `json:"ball_id"`
	Contact       Vec2     `json:"contact"`
	Pocket        Vec2     `json:"pocket"`
	Bounce        *Vec2    `json:"bounce,omitempty"`
	Wall          string   `json:"wall,omitempty"`
	TotalDistance float64  `json:"total_distance"`
}
