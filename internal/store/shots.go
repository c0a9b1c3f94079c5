// Package store persists planning results and operator accounts.
package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/robocue/backend/internal/models"
	"github.com/robocue/backend/internal/planner"
)

// SaveShot records a selected candidate. source identifies the caller
// ("api" or "planshot").
func SaveShot(ctx context.Context, db *sqlx.DB, shot planner.ShotCandidate, source string) (int, error) {
	var bounceX, bounceY sql.NullFloat64
	var wall sql.NullString
	if shot.Bounce != nil {
		bounceX = sql.NullFloat64{Float64: shot.Bounce.X, Valid: true}
		bounceY = sql.NullFloat64{Float64: shot.Bounce.Y, Valid: true}
	}
	if shot.Wall != "" {
		wall = sql.NullString{String: shot.Wall, Valid: true}
	}

	var id int
	err := db.QueryRowxContext(ctx, `
		INSERT INTO planned_shots
			(kind, ball_id, ball_x, ball_y, pocket_x, pocket_y, bounce_x, bounce_y, wall, total_distance, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		string(shot.Kind), shot.BallID,
		shot.Contact.X, shot.Contact.Y,
		shot.Pocket.X, shot.Pocket.Y,
		bounceX, bounceY, wall,
		shot.TotalDistance, source,
	).Scan(&id)
	return id, err
}

// ListShots returns the most recent planned shots, newest first.
func ListShots(ctx context.Context, db *sqlx.DB, limit int) ([]models.PlannedShot, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	shots := []models.PlannedShot{}
	err := db.SelectContext(ctx, &shots, `
		SELECT * FROM planned_shots ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	return shots, err
}

// LatestShot returns the most recently planned shot.
func LatestShot(ctx context.Context, db *sqlx.DB) (*models.PlannedShot, error) {
	var shot models.PlannedShot
	err := db.GetContext(ctx, &shot, `
		SELECT * FROM planned_shots ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shot, nil
}
