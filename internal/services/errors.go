package services

import "errors"

var (
	ErrListNotFound    = errors.New("breathe list not found")
	ErrGroupNotFound   = errors.New("contact group not found")
	ErrWindowNotFound  = errors.New("time window not found")
	ErrInvalidWindow   = errors.New("time window must use zero-padded 24h HH:MM")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoPermissions   = errors.New("watcher permissions not granted")
)
