package controllers

import (
	"errors"
	"net/http"
	"time"

	"breathed/internal/bridge"
	"breathed/internal/models"
	"breathed/internal/providers"
	"breathed/internal/services"
)

type SessionsController struct {
	logger   providers.Logger
	sessions services.SessionServiceInterface
	settings services.SettingsServiceInterface
	bridge   bridge.Bridge
	metrics  providers.MetricsProviderInterface
}

func NewSessionsController(
	logger providers.Logger,
	sessions services.SessionServiceInterface,
	settings services.SettingsServiceInterface,
	b bridge.Bridge,
	metrics providers.MetricsProviderInterface,
) *SessionsController {
	return &SessionsController{
		logger:   logger,
		sessions: sessions,
		settings: settings,
		bridge:   b,
		metrics:  metrics,
	}
}

// StartSession begins a standalone breathing session. Interception
// sessions are started by the watcher, not through here.
func (sc *SessionsController) StartSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AppID    string `json:"appId"`
		Duration int    `json:"duration"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	var app *models.AppInfo
	if payload.AppID != "" {
		resolved := models.SynthesizeAppInfo(payload.AppID)
		if selected, ok := sc.settings.Settings().SelectedApp(payload.AppID); ok {
			resolved = selected
		}
		app = &resolved
	}

	session, err := sc.sessions.Start(app, payload.Duration, false, time.Now())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (sc *SessionsController) CompleteSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	session, completed, err := sc.sessions.Complete(payload.ID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	// Complete is idempotent; only the call that finished the session counts.
	if completed {
		sc.metrics.IncSessionOutcome("completed")
	}

	// An interception session hands the user back to the app they were
	// opening; the overlay comes down either way.
	if session.Intercepted {
		sc.bridge.DismissOverlay()
		if session.App != nil {
			sc.bridge.LaunchApp(session.App.ID)
		}
	}

	writeJSON(w, http.StatusOK, session)
}

func (sc *SessionsController) SkipSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	session, skipped, err := sc.sessions.Skip(payload.ID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if skipped {
		sc.metrics.IncSessionOutcome("skipped")
	}

	if session.Intercepted {
		sc.bridge.DismissOverlay()
	}

	writeJSON(w, http.StatusOK, session)
}

func (sc *SessionsController) GetActiveSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Sessions     []models.Session `json:"sessions"`
		LastDuration int              `json:"lastDuration"`
	}{
		Sessions:     sc.sessions.Active(),
		LastDuration: sc.settings.LastSessionDuration(),
	})
}
