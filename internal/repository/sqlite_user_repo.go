package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"breathed/internal/models"
)

type SqliteUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepositoryInterface {
	return &SqliteUserRepository{db: db}
}

// Ensure creates the per-user document on first sight (the anonymous
// sign-in path) and returns the existing one otherwise.
func (r *SqliteUserRepository) Ensure(ctx context.Context, uid, displayName string) (models.User, error) {
	existing, err := r.Get(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	user := models.User{
		UID:         uid,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (uid, display_name, created_at) VALUES (?, ?, ?)",
		user.UID, user.DisplayName, user.CreatedAt.Unix())
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *SqliteUserRepository) Get(ctx context.Context, uid string) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT uid, display_name, created_at FROM users WHERE uid = ?", uid)

	var user models.User
	var createdAt int64
	if err := row.Scan(&user.UID, &user.DisplayName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return user, nil
}
