package controllers

import (
	"net/http"
	"time"

	"breathed/internal/models"
	"breathed/internal/providers"
	"breathed/internal/services"
	"breathed/internal/watcher"
)

type EventsController struct {
	logger  providers.Logger
	watcher watcher.WatcherInterface
}

func NewEventsController(logger providers.Logger, w watcher.WatcherInterface) *EventsController {
	return &EventsController{logger: logger, watcher: w}
}

type foregroundEvent struct {
	PackageID string `json:"packageId"`
}

type foregroundResponse struct {
	Outcome      services.DecisionOutcome `json:"outcome"`
	App          *models.AppInfo          `json:"app,omitempty"`
	OverlayShown bool                     `json:"overlayShown"`
	DeepLink     string                   `json:"deepLink,omitempty"`
	SessionID    string                   `json:"sessionId,omitempty"`
}

// ReceiveForeground ingests one foreground-app-change event from the
// platform watcher and answers with the interception outcome.
func (ec *EventsController) ReceiveForeground(w http.ResponseWriter, r *http.Request) {
	var payload foregroundEvent
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.PackageID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	outcome := ec.watcher.HandleForeground(payload.PackageID, time.Now())
	ec.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Foreground %s -> %s", payload.PackageID, outcome.Decision.Outcome)

	resp := foregroundResponse{
		Outcome:      outcome.Decision.Outcome,
		OverlayShown: outcome.OverlayShown,
		DeepLink:     outcome.DeepLink,
		SessionID:    outcome.SessionID,
	}
	if outcome.Decision.App.ID != "" {
		app := outcome.Decision.App
		resp.App = &app
	}
	writeJSON(w, http.StatusOK, resp)
}
