package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"breathed/internal/models"
	"breathed/internal/repository"
)

var (
	ErrRequestNotPending = errors.New("friend request is not pending")
	ErrAlreadyFriends    = errors.New("users are already friends")
	ErrSelfRequest       = errors.New("cannot send a friend request to yourself")
)

type FriendServiceInterface interface {
	EnsureUser(ctx context.Context, uid, displayName string) (models.User, error)
	SendRequest(ctx context.Context, fromUID, toUID string) (models.FriendRequest, error)
	AcceptRequest(ctx context.Context, id string) (models.Friendship, error)
	DeclineRequest(ctx context.Context, id string) error
	ListRequests(ctx context.Context, uid string) ([]models.FriendRequest, error)
	ListFriends(ctx context.Context, uid string) ([]models.Friendship, error)
	SendNudge(ctx context.Context, fromUID, toUID, message string) (models.Nudge, error)
	ListNudges(ctx context.Context, uid string) ([]models.Nudge, error)
	InviteMessage(inviterName string) string
}

// FriendService is straight document CRUD over the social collections.
// There is no local consistency logic beyond "accept flips the request and
// creates a friendship"; last write wins everywhere.
type FriendService struct {
	users       repository.UserRepositoryInterface
	requests    repository.FriendRequestRepositoryInterface
	friendships repository.FriendshipRepositoryInterface
	nudges      repository.NudgeRepositoryInterface
}

func NewFriendService(
	users repository.UserRepositoryInterface,
	requests repository.FriendRequestRepositoryInterface,
	friendships repository.FriendshipRepositoryInterface,
	nudges repository.NudgeRepositoryInterface,
) FriendServiceInterface {
	return &FriendService{
		users:       users,
		requests:    requests,
		friendships: friendships,
		nudges:      nudges,
	}
}

func (fs *FriendService) EnsureUser(ctx context.Context, uid, displayName string) (models.User, error) {
	if uid == "" {
		uid = uuid.NewString()
	}
	if displayName == "" {
		displayName = "Anonymous"
	}
	return fs.users.Ensure(ctx, uid, displayName)
}

func (fs *FriendService) SendRequest(ctx context.Context, fromUID, toUID string) (models.FriendRequest, error) {
	if fromUID == toUID {
		return models.FriendRequest{}, ErrSelfRequest
	}
	already, err := fs.friendships.Exists(ctx, fromUID, toUID)
	if err != nil {
		return models.FriendRequest{}, err
	}
	if already {
		return models.FriendRequest{}, ErrAlreadyFriends
	}

	req := models.FriendRequest{
		ID:        uuid.NewString(),
		FromUID:   fromUID,
		ToUID:     toUID,
		Status:    models.FriendRequestPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := fs.requests.Create(ctx, req); err != nil {
		return models.FriendRequest{}, err
	}
	return req, nil
}

func (fs *FriendService) AcceptRequest(ctx context.Context, id string) (models.Friendship, error) {
	req, err := fs.requests.Get(ctx, id)
	if err != nil {
		return models.Friendship{}, err
	}
	if req.Status != models.FriendRequestPending {
		return models.Friendship{}, ErrRequestNotPending
	}

	if err := fs.requests.SetStatus(ctx, id, models.FriendRequestAccepted); err != nil {
		return models.Friendship{}, err
	}

	friendship := models.Friendship{
		ID:        uuid.NewString(),
		UserA:     req.FromUID,
		UserB:     req.ToUID,
		CreatedAt: time.Now().UTC(),
	}
	if err := fs.friendships.Create(ctx, friendship); err != nil {
		return models.Friendship{}, err
	}
	return friendship, nil
}

func (fs *FriendService) DeclineRequest(ctx context.Context, id string) error {
	req, err := fs.requests.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != models.FriendRequestPending {
		return ErrRequestNotPending
	}
	return fs.requests.SetStatus(ctx, id, models.FriendRequestDeclined)
}

func (fs *FriendService) ListRequests(ctx context.Context, uid string) ([]models.FriendRequest, error) {
	return fs.requests.ListForUser(ctx, uid)
}

func (fs *FriendService) ListFriends(ctx context.Context, uid string) ([]models.Friendship, error) {
	return fs.friendships.ListForUser(ctx, uid)
}

func (fs *FriendService) SendNudge(ctx context.Context, fromUID, toUID, message string) (models.Nudge, error) {
	if message == "" {
		message = "Time to take a breath"
	}
	nudge := models.Nudge{
		ID:        uuid.NewString(),
		FromUID:   fromUID,
		ToUID:     toUID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := fs.nudges.Create(ctx, nudge); err != nil {
		return models.Nudge{}, err
	}
	return nudge, nil
}

func (fs *FriendService) ListNudges(ctx context.Context, uid string) ([]models.Nudge, error) {
	return fs.nudges.ListForUser(ctx, uid)
}

// InviteMessage composes the SMS invite body. Sending is OS-owned; the
// caller hands this to the platform compose intent.
func (fs *FriendService) InviteMessage(inviterName string) string {
	if inviterName == "" {
		inviterName = "A friend"
	}
	return fmt.Sprintf("%s invited you to Breathe In. Take a breath before you scroll: https://breathein.app/invite", inviterName)
}
