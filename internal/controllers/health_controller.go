package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"breathed/internal/services"
	"breathed/internal/watcher"
)

type HealthController struct {
	settings  services.SettingsServiceInterface
	watcher   watcher.WatcherInterface
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	WatcherRunning bool    `json:"watcher_running"`
	MonitoredApps  int     `json:"monitored_apps"`
	TotalBreathed  int     `json:"total_breathed"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot := hc.settings.Settings()
	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:         "ok",
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		WatcherRunning: hc.watcher.Running(),
		MonitoredApps:  len(snapshot.MonitoredIDs()),
		TotalBreathed:  snapshot.Statistics.TotalBreathed,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(settings services.SettingsServiceInterface, w watcher.WatcherInterface) *HealthController {
	return &HealthController{
		settings:  settings,
		watcher:   w,
		startTime: time.Now(),
	}
}
