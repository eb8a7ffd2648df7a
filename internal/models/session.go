package models

import "time"

type SessionState string

const (
	SessionActive    SessionState = "active"
	SessionCompleted SessionState = "completed"
	SessionSkipped   SessionState = "skipped"
)

// Session is one breathing exercise. App is nil for standalone sessions
// started from the home screen; interception sessions carry the app that
// triggered them and relaunch it on completion.
type Session struct {
	ID          string       `json:"id"`
	App         *AppInfo     `json:"app,omitempty"`
	Duration    int          `json:"duration"`
	State       SessionState `json:"state"`
	StartedAt   time.Time    `json:"startedAt"`
	FinishedAt  *time.Time   `json:"finishedAt,omitempty"`
	Intercepted bool         `json:"intercepted"`
}
