package controllers

import (
	"errors"
	"net/http"

	"breathed/internal/providers"
	"breathed/internal/repository"
	"breathed/internal/services"
)

type FriendsController struct {
	logger  providers.Logger
	friends services.FriendServiceInterface
}

func NewFriendsController(logger providers.Logger, friends services.FriendServiceInterface) *FriendsController {
	return &FriendsController{logger: logger, friends: friends}
}

func (fc *FriendsController) friendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, services.ErrSelfRequest),
		errors.Is(err, services.ErrAlreadyFriends),
		errors.Is(err, services.ErrRequestNotPending):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		fc.logger.Errorf(providers.TypePost, "Friend operation failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (fc *FriendsController) EnsureUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UID         string `json:"uid"`
		DisplayName string `json:"displayName"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	user, err := fc.friends.EnsureUser(r.Context(), payload.UID, payload.DisplayName)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (fc *FriendsController) SendRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FromUID string `json:"fromUid"`
		ToUID   string `json:"toUid"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.FromUID == "" || payload.ToUID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	req, err := fc.friends.SendRequest(r.Context(), payload.FromUID, payload.ToUID)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (fc *FriendsController) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	friendship, err := fc.friends.AcceptRequest(r.Context(), payload.ID)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friendship)
}

func (fc *FriendsController) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := fc.friends.DeclineRequest(r.Context(), payload.ID); err != nil {
		fc.friendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (fc *FriendsController) ListRequests(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	requests, err := fc.friends.ListRequests(r.Context(), uid)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (fc *FriendsController) ListFriends(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	friendships, err := fc.friends.ListFriends(r.Context(), uid)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friendships)
}

func (fc *FriendsController) SendNudge(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FromUID string `json:"fromUid"`
		ToUID   string `json:"toUid"`
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.FromUID == "" || payload.ToUID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	nudge, err := fc.friends.SendNudge(r.Context(), payload.FromUID, payload.ToUID, payload.Message)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nudge)
}

func (fc *FriendsController) ListNudges(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	nudges, err := fc.friends.ListNudges(r.Context(), uid)
	if err != nil {
		fc.friendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nudges)
}

// GetInviteMessage hands the SMS compose body to the platform side.
func (fc *FriendsController) GetInviteMessage(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: fc.friends.InviteMessage(name)})
}
