package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/robocue/backend/internal/models"
)

// GetOperator looks up an operator by username. Returns nil when absent.
func GetOperator(ctx context.Context, db *sqlx.DB, username string) (*models.Operator, error) {
	var op models.Operator
	err := db.GetContext(ctx, &op, `SELECT * FROM operators WHERE username = $1`, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// UpsertOperator creates or replaces an operator credential.
func UpsertOperator(ctx context.Context, db *sqlx.DB, username, passwordHash string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO operators (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		username, passwordHash)
	return err
}

// TouchLastLogin stamps a successful login.
func TouchLastLogin(ctx context.Context, db *sqlx.DB, id int) error {
	_, err := db.ExecContext(ctx, `UPDATE operators SET last_login = now() WHERE id = $1`, id)
	return err
}
