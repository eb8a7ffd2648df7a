package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"breathed/internal/models"
)

type SqliteFriendRequestRepository struct {
	db *sql.DB
}

func NewFriendRequestRepository(db *sql.DB) FriendRequestRepositoryInterface {
	return &SqliteFriendRequestRepository{db: db}
}

func (r *SqliteFriendRequestRepository) Create(ctx context.Context, req models.FriendRequest) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO friend_requests (id, from_uid, to_uid, status, created_at) VALUES (?, ?, ?, ?, ?)",
		req.ID, req.FromUID, req.ToUID, string(req.Status), req.CreatedAt.Unix())
	return err
}

func (r *SqliteFriendRequestRepository) Get(ctx context.Context, id string) (models.FriendRequest, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, from_uid, to_uid, status, created_at FROM friend_requests WHERE id = ?", id)
	return scanFriendRequest(row)
}

func (r *SqliteFriendRequestRepository) SetStatus(ctx context.Context, id string, status models.FriendRequestStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE friend_requests SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SqliteFriendRequestRepository) ListForUser(ctx context.Context, uid string) ([]models.FriendRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, from_uid, to_uid, status, created_at FROM friend_requests WHERE to_uid = ? OR from_uid = ? ORDER BY created_at DESC",
		uid, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.FriendRequest, 0)
	for rows.Next() {
		req, err := scanFriendRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFriendRequest(row rowScanner) (models.FriendRequest, error) {
	var req models.FriendRequest
	var status string
	var createdAt int64
	if err := row.Scan(&req.ID, &req.FromUID, &req.ToUID, &status, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FriendRequest{}, ErrNotFound
		}
		return models.FriendRequest{}, err
	}
	req.Status = models.FriendRequestStatus(status)
	req.CreatedAt = time.Unix(createdAt, 0).UTC()
	return req, nil
}
