package repository

import (
	"context"
	"database/sql"
	"time"

	"breathed/internal/models"
)

type SqliteNudgeRepository struct {
	db *sql.DB
}

func NewNudgeRepository(db *sql.DB) NudgeRepositoryInterface {
	return &SqliteNudgeRepository{db: db}
}

func (r *SqliteNudgeRepository) Create(ctx context.Context, nudge models.Nudge) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO nudges (id, from_uid, to_uid, message, created_at) VALUES (?, ?, ?, ?, ?)",
		nudge.ID, nudge.FromUID, nudge.ToUID, nudge.Message, nudge.CreatedAt.Unix())
	return err
}

func (r *SqliteNudgeRepository) ListForUser(ctx context.Context, uid string) ([]models.Nudge, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, from_uid, to_uid, message, created_at FROM nudges WHERE to_uid = ? ORDER BY created_at DESC",
		uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nudges := make([]models.Nudge, 0)
	for rows.Next() {
		var n models.Nudge
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.FromUID, &n.ToUID, &n.Message, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0).UTC()
		nudges = append(nudges, n)
	}
	return nudges, rows.Err()
}
