package bridge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breathed/internal/models"
	"breathed/internal/structures"
	"breathed/internal/testutil"
)

func TestSampleBridge_ServesFixedAppList(t *testing.T) {
	bridge := NewSampleBridge(NewHandoffStore(filepath.Join(t.TempDir(), "monitored.json")), &testutil.MockLogger{})

	apps := bridge.GetInstalledApps(context.Background())
	require.NotEmpty(t, apps)
	for _, app := range apps {
		assert.NotEmpty(t, app.ID)
		assert.NotEmpty(t, app.Name)
		assert.NotEmpty(t, app.Category)
	}

	// callers may mutate the returned slice freely
	apps[0].Name = "mutated"
	assert.NotEqual(t, "mutated", bridge.GetInstalledApps(context.Background())[0].Name)
}

func TestSampleBridge_AllCapabilitiesGranted(t *testing.T) {
	bridge := NewSampleBridge(NewHandoffStore(filepath.Join(t.TempDir(), "monitored.json")), &testutil.MockLogger{})

	assert.True(t, bridge.Available())
	assert.True(t, bridge.HasPermissions())
	assert.True(t, bridge.HasAccessibilityPermission())
	assert.True(t, bridge.HasOverlayPermission())
	assert.True(t, bridge.RequestPermissions())
	assert.True(t, bridge.RequestOverlayPermission())
	assert.True(t, bridge.LaunchApp("com.a"))
	assert.True(t, bridge.ShowOverlay(models.AppInfo{ID: "com.a", Name: "A"}))
	assert.True(t, bridge.DismissOverlay())
}

func TestSampleBridge_MonitoredPackagesGoThroughHandoff(t *testing.T) {
	bridge := NewSampleBridge(NewHandoffStore(filepath.Join(t.TempDir(), "monitored.json")), &testutil.MockLogger{})

	require.True(t, bridge.SetMonitoredPackages([]string{"com.a", "com.b"}))
	record := bridge.MonitoredPackages()
	assert.Equal(t, uint64(1), record.Seq)
	assert.Equal(t, []string{"com.a", "com.b"}, record.Packages)
}

func TestUnavailableBridge_AllOperationsDegrade(t *testing.T) {
	bridge := NewUnavailableBridge()

	assert.False(t, bridge.Available())
	assert.False(t, bridge.HasPermissions())
	assert.False(t, bridge.HasOverlayPermission())
	assert.False(t, bridge.RequestPermissions())
	assert.False(t, bridge.SetMonitoredPackages([]string{"com.a"}))
	assert.False(t, bridge.LaunchApp("com.a"))
	assert.False(t, bridge.ShowOverlay(models.AppInfo{}))
	assert.False(t, bridge.DismissOverlay())
	assert.Empty(t, bridge.GetInstalledApps(context.Background()))
	assert.Empty(t, bridge.MonitoredPackages().Packages)
}

func TestNewBridge_ResolvesByMode(t *testing.T) {
	conf := &structures.Config{}
	conf.Watcher.MonitoredPath = filepath.Join(t.TempDir(), "monitored.json")

	conf.Watcher.Mode = "sample"
	assert.IsType(t, &SampleBridge{}, NewBridge(conf, &testutil.MockLogger{}))

	conf.Watcher.Mode = "none"
	assert.IsType(t, &UnavailableBridge{}, NewBridge(conf, &testutil.MockLogger{}))
}
