package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"breathed/internal/bridge"
	"breathed/internal/providers"
)

const installedAppsCacheKey = "apps:installed"

type AppsController struct {
	logger providers.Logger
	bridge bridge.Bridge
	cache  providers.CacheProviderInterface
}

func NewAppsController(logger providers.Logger, b bridge.Bridge, cache providers.CacheProviderInterface) *AppsController {
	return &AppsController{
		logger: logger,
		bridge: b,
		cache:  cache,
	}
}

// GetInstalledApps serves the launchable-app list. An empty list means the
// platform capability is unavailable, which is not an error.
func (ac *AppsController) GetInstalledApps(w http.ResponseWriter, r *http.Request) {
	if data, ok := ac.cache.Get(installedAppsCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	apps := ac.bridge.GetInstalledApps(r.Context())
	gson, err := json.Marshal(apps)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set(installedAppsCacheKey, gson)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *AppsController) GetPermissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Available     bool `json:"available"`
		All           bool `json:"all"`
		Accessibility bool `json:"accessibility"`
		Overlay       bool `json:"overlay"`
	}{
		Available:     ac.bridge.Available(),
		All:           ac.bridge.HasPermissions(),
		Accessibility: ac.bridge.HasAccessibilityPermission(),
		Overlay:       ac.bridge.HasOverlayPermission(),
	})
}

// RequestPermissions deep-links into OS settings. The grant cannot be
// confirmed synchronously; clients re-poll GetPermissions on refocus.
func (ac *AppsController) RequestPermissions(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Kind string `json:"kind"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	var requested bool
	if payload.Kind == "overlay" {
		requested = ac.bridge.RequestOverlayPermission()
	} else {
		requested = ac.bridge.RequestPermissions()
	}

	writeJSON(w, http.StatusOK, struct {
		Requested bool `json:"requested"`
	}{Requested: requested})
}

func (ac *AppsController) GetMonitoredPackages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.bridge.MonitoredPackages())
}

func (ac *AppsController) LaunchApp(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Launched bool `json:"launched"`
	}{Launched: ac.bridge.LaunchApp(payload.ID)})
}

func (ac *AppsController) DismissOverlay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Dismissed bool `json:"dismissed"`
	}{Dismissed: ac.bridge.DismissOverlay()})
}
