package models

import "time"

type User struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

type FriendRequest struct {
	ID        string              `json:"id"`
	FromUID   string              `json:"fromUid"`
	ToUID     string              `json:"toUid"`
	Status    FriendRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

type Friendship struct {
	ID        string    `json:"id"`
	UserA     string    `json:"userA"`
	UserB     string    `json:"userB"`
	CreatedAt time.Time `json:"createdAt"`
}

// Nudge is a lightweight "take a breath" ping between friends.
type Nudge struct {
	ID        string    `json:"id"`
	FromUID   string    `json:"fromUid"`
	ToUID     string    `json:"toUid"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
