package repository

import (
	"context"
	"errors"

	"breathed/internal/models"
)

var ErrNotFound = errors.New("document not found")

type UserRepositoryInterface interface {
	Ensure(ctx context.Context, uid, displayName string) (models.User, error)
	Get(ctx context.Context, uid string) (models.User, error)
}

type FriendRequestRepositoryInterface interface {
	Create(ctx context.Context, req models.FriendRequest) error
	Get(ctx context.Context, id string) (models.FriendRequest, error)
	SetStatus(ctx context.Context, id string, status models.FriendRequestStatus) error
	ListForUser(ctx context.Context, uid string) ([]models.FriendRequest, error)
}

type FriendshipRepositoryInterface interface {
	Create(ctx context.Context, friendship models.Friendship) error
	ListForUser(ctx context.Context, uid string) ([]models.Friendship, error)
	Exists(ctx context.Context, userA, userB string) (bool, error)
}

type NudgeRepositoryInterface interface {
	Create(ctx context.Context, nudge models.Nudge) error
	ListForUser(ctx context.Context, uid string) ([]models.Nudge, error)
}
