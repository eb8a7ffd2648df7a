package controllers

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"breathed/internal/models"
	"breathed/internal/providers"
	"breathed/internal/services"
	"breathed/internal/watcher"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const settingsCacheKey = "settings"

type SettingsController struct {
	logger   providers.Logger
	settings services.SettingsServiceInterface
	watcher  watcher.WatcherInterface
	cache    providers.CacheProviderInterface
}

func NewSettingsController(logger providers.Logger, settings services.SettingsServiceInterface, w watcher.WatcherInterface, cache providers.CacheProviderInterface) *SettingsController {
	return &SettingsController{
		logger:   logger,
		settings: settings,
		watcher:  w,
		cache:    cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func mutationStatus(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, services.ErrListNotFound),
		errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrWindowNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidWindow),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	if data, ok := sc.cache.Get(settingsCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	snapshot := sc.settings.Settings()
	gson, err := json.Marshal(snapshot)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sc.cache.Set(settingsCacheKey, gson)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (sc *SettingsController) invalidate() {
	sc.cache.Del(settingsCacheKey)
}

func (sc *SettingsController) SetEnabled(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Enabled bool `json:"enabled"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Enabled {
		if err := sc.watcher.Start(); err != nil {
			if errors.Is(err, services.ErrNoPermissions) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	} else {
		sc.watcher.Stop()
	}

	if err := sc.settings.SetEnabled(payload.Enabled); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) SetSelectedApps(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Apps []models.AppInfo `json:"apps"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := sc.settings.SetSelectedApps(payload.Apps); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	sc.watcher.SyncMonitored()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) AddTimeWindow(w http.ResponseWriter, r *http.Request) {
	var payload models.TimeWindow
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := sc.settings.AddTimeWindow(payload); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) RemoveTimeWindow(w http.ResponseWriter, r *http.Request) {
	index, err := cast.ToIntE(r.URL.Query().Get("index"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := sc.settings.RemoveTimeWindow(index); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) CreateBreatheList(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string           `json:"name"`
		Apps []models.AppInfo `json:"apps"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	list, err := sc.settings.CreateBreatheList(payload.Name, payload.Apps, time.Now())
	if err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	sc.watcher.SyncMonitored()
	writeJSON(w, http.StatusCreated, list)
}

func (sc *SettingsController) UpdateBreatheList(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID   string           `json:"id"`
		Name string           `json:"name"`
		Apps []models.AppInfo `json:"apps"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	list, err := sc.settings.UpdateBreatheList(payload.ID, payload.Name, payload.Apps, time.Now())
	if err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	sc.watcher.SyncMonitored()
	writeJSON(w, http.StatusOK, list)
}

func (sc *SettingsController) DeleteBreatheList(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := sc.settings.DeleteBreatheList(id); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	sc.watcher.SyncMonitored()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) SetDefaultDuration(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Seconds int `json:"seconds"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := sc.settings.SetDefaultDuration(payload.Seconds); err != nil {
		mutationStatus(w, err)
		return
	}
	sc.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (sc *SettingsController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.settings.Settings().Statistics)
}

func (sc *SettingsController) GetContactGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Groups      []models.ContactGroup `json:"groups"`
		PromptShown bool                  `json:"promptShown"`
	}{
		Groups:      sc.settings.ContactGroups(),
		PromptShown: sc.settings.ContactsPromptShown(),
	})
}

func (sc *SettingsController) CreateContactGroup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name       string   `json:"name"`
		ContactIDs []string `json:"contactIds"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	group, err := sc.settings.CreateContactGroup(payload.Name, payload.ContactIDs, time.Now())
	if err != nil {
		mutationStatus(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (sc *SettingsController) DeleteContactGroup(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	mutationStatus(w, sc.settings.DeleteContactGroup(id))
}

func (sc *SettingsController) MarkContactsPromptShown(w http.ResponseWriter, r *http.Request) {
	mutationStatus(w, sc.settings.MarkContactsPromptShown())
}
