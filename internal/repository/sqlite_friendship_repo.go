package repository

import (
	"context"
	"database/sql"
	"time"

	"breathed/internal/models"
)

type SqliteFriendshipRepository struct {
	db *sql.DB
}

func NewFriendshipRepository(db *sql.DB) FriendshipRepositoryInterface {
	return &SqliteFriendshipRepository{db: db}
}

func (r *SqliteFriendshipRepository) Create(ctx context.Context, friendship models.Friendship) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO friendships (id, user_a, user_b, created_at) VALUES (?, ?, ?, ?)",
		friendship.ID, friendship.UserA, friendship.UserB, friendship.CreatedAt.Unix())
	return err
}

func (r *SqliteFriendshipRepository) ListForUser(ctx context.Context, uid string) ([]models.Friendship, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_a, user_b, created_at FROM friendships WHERE user_a = ? OR user_b = ? ORDER BY created_at DESC",
		uid, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friendships := make([]models.Friendship, 0)
	for rows.Next() {
		var f models.Friendship
		var createdAt int64
		if err := rows.Scan(&f.ID, &f.UserA, &f.UserB, &createdAt); err != nil {
			return nil, err
		}
		f.CreatedAt = time.Unix(createdAt, 0).UTC()
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}

func (r *SqliteFriendshipRepository) Exists(ctx context.Context, userA, userB string) (bool, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM friendships WHERE (user_a = ? AND user_b = ?) OR (user_a = ? AND user_b = ?)",
		userA, userB, userB, userA)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
