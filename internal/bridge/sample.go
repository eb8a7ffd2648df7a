package bridge

import (
	"context"

	"breathed/internal/models"
	"breathed/internal/providers"
)

// sampleApps keeps the API usable in development builds where no real
// package manager is reachable.
var sampleApps = []models.AppInfo{
	{ID: "com.instagram.android", Name: "Instagram", Category: "social"},
	{ID: "com.zhiliaoapp.musically", Name: "TikTok", Category: "social"},
	{ID: "com.google.android.youtube", Name: "YouTube", Category: "video"},
	{ID: "com.twitter.android", Name: "X", Category: "social"},
	{ID: "com.reddit.frontpage", Name: "Reddit", Category: "social"},
	{ID: "com.facebook.katana", Name: "Facebook", Category: "social"},
	{ID: "com.snapchat.android", Name: "Snapchat", Category: "social"},
	{ID: "com.netflix.mediaclient", Name: "Netflix", Category: "video"},
}

// SampleBridge simulates a fully granted platform: it serves the fixed app
// list, accepts monitored-package writes through the handoff store, and
// acknowledges launch/overlay calls without doing anything.
type SampleBridge struct {
	handoff *HandoffStore
	logger  providers.Logger
}

func NewSampleBridge(handoff *HandoffStore, logger providers.Logger) *SampleBridge {
	return &SampleBridge{handoff: handoff, logger: logger}
}

func (sb *SampleBridge) GetInstalledApps(_ context.Context) []models.AppInfo {
	apps := make([]models.AppInfo, len(sampleApps))
	copy(apps, sampleApps)
	return apps
}

func (sb *SampleBridge) HasPermissions() bool             { return true }
func (sb *SampleBridge) HasAccessibilityPermission() bool { return true }
func (sb *SampleBridge) HasOverlayPermission() bool       { return true }
func (sb *SampleBridge) RequestPermissions() bool         { return true }
func (sb *SampleBridge) RequestOverlayPermission() bool   { return true }
func (sb *SampleBridge) Available() bool                  { return true }

func (sb *SampleBridge) SetMonitoredPackages(ids []string) bool {
	if err := sb.handoff.Write(ids); err != nil {
		sb.logger.Errorf(providers.TypeWatch, "Cannot publish monitored packages: %s", err)
		return false
	}
	return true
}

func (sb *SampleBridge) MonitoredPackages() models.MonitoredPackages {
	return sb.handoff.Current()
}

func (sb *SampleBridge) LaunchApp(id string) bool {
	sb.logger.Infof(providers.TypeWatch, "Launch requested for %s", id)
	return true
}

func (sb *SampleBridge) ShowOverlay(app models.AppInfo) bool {
	sb.logger.Infof(providers.TypeWatch, "Overlay show for %s (%s)", app.Name, app.ID)
	return true
}

func (sb *SampleBridge) DismissOverlay() bool {
	sb.logger.Infof(providers.TypeWatch, "Overlay dismissed")
	return true
}
