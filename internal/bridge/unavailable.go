package bridge

import (
	"context"

	"breathed/internal/models"
)

// UnavailableBridge is the resolved variant when no platform capability
// exists. Every operation answers false/empty.
type UnavailableBridge struct{}

func NewUnavailableBridge() *UnavailableBridge { return &UnavailableBridge{} }

func (ub *UnavailableBridge) GetInstalledApps(_ context.Context) []models.AppInfo {
	return []models.AppInfo{}
}

func (ub *UnavailableBridge) HasPermissions() bool             { return false }
func (ub *UnavailableBridge) HasAccessibilityPermission() bool { return false }
func (ub *UnavailableBridge) HasOverlayPermission() bool       { return false }
func (ub *UnavailableBridge) RequestPermissions() bool         { return false }
func (ub *UnavailableBridge) RequestOverlayPermission() bool   { return false }
func (ub *UnavailableBridge) Available() bool                  { return false }

func (ub *UnavailableBridge) SetMonitoredPackages(_ []string) bool { return false }

func (ub *UnavailableBridge) MonitoredPackages() models.MonitoredPackages {
	return models.MonitoredPackages{Packages: []string{}}
}

func (ub *UnavailableBridge) LaunchApp(_ string) bool           { return false }
func (ub *UnavailableBridge) ShowOverlay(_ models.AppInfo) bool { return false }
func (ub *UnavailableBridge) DismissOverlay() bool              { return false }
