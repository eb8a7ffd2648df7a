package bridge

import (
	"context"

	"breathed/internal/models"
)

// Bridge is the host-platform contract. Every operation degrades to
// false/empty when the underlying capability is unavailable; callers must
// treat that as "feature unavailable", never as a hard failure. Permission
// requests deep-link into OS settings screens and cannot confirm the grant
// synchronously, so callers re-poll the Has* queries when the app regains
// foreground focus.
type Bridge interface {
	GetInstalledApps(ctx context.Context) []models.AppInfo
	HasPermissions() bool
	HasAccessibilityPermission() bool
	HasOverlayPermission() bool
	RequestPermissions() bool
	RequestOverlayPermission() bool
	SetMonitoredPackages(ids []string) bool
	MonitoredPackages() models.MonitoredPackages
	LaunchApp(id string) bool
	ShowOverlay(app models.AppInfo) bool
	DismissOverlay() bool
	Available() bool
}
