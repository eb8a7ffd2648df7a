package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breathed/internal/models"
)

func newAppsController(t *testing.T) (*AppsController, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewAppsController(env.logger, env.bridge, env.cache), env
}

func TestAppsController_GetInstalledAppsCaches(t *testing.T) {
	ac, env := newAppsController(t)
	env.bridge.Apps = []models.AppInfo{{ID: "com.a", Name: "A", Category: "social"}}

	var apps []models.AppInfo
	rec := getJSON(t, ac.GetInstalledApps, "/apps", &apps)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, apps, 1)

	// cache now answers, bridge changes are not visible until invalidation
	env.bridge.Apps = nil
	rec = getJSON(t, ac.GetInstalledApps, "/apps", &apps)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, apps, 1)
}

func TestAppsController_GetInstalledAppsEmptyWhenUnavailable(t *testing.T) {
	ac, _ := newAppsController(t)

	var apps []models.AppInfo
	rec := getJSON(t, ac.GetInstalledApps, "/apps", &apps)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, apps)
}

func TestAppsController_GetPermissions(t *testing.T) {
	ac, env := newAppsController(t)
	env.bridge.Overlay = false

	var resp struct {
		Available     bool `json:"available"`
		All           bool `json:"all"`
		Accessibility bool `json:"accessibility"`
		Overlay       bool `json:"overlay"`
	}
	rec := getJSON(t, ac.GetPermissions, "/apps/permissions", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Available)
	assert.True(t, resp.All)
	assert.True(t, resp.Accessibility)
	assert.False(t, resp.Overlay)
}

func TestAppsController_RequestPermissions(t *testing.T) {
	ac, env := newAppsController(t)
	env.bridge.Overlay = false

	rec := postJSON(t, ac.RequestPermissions, "/apps/permissions/request", map[string]string{"kind": "overlay"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Requested bool `json:"requested"`
	}
	decodeResponse(t, rec, &resp)
	assert.False(t, resp.Requested)

	rec = postJSON(t, ac.RequestPermissions, "/apps/permissions/request", map[string]string{"kind": "all"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Requested)
}

func TestAppsController_GetMonitoredPackages(t *testing.T) {
	ac, env := newAppsController(t)
	env.bridge.SetMonitoredPackages([]string{"com.a", "com.b"})

	var record models.MonitoredPackages
	rec := getJSON(t, ac.GetMonitoredPackages, "/apps/monitored", &record)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(1), record.Seq)
	assert.Equal(t, []string{"com.a", "com.b"}, record.Packages)
}

func TestAppsController_LaunchApp(t *testing.T) {
	ac, env := newAppsController(t)

	rec := postJSON(t, ac.LaunchApp, "/apps/launch", map[string]string{"id": "com.a"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Launched bool `json:"launched"`
	}
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Launched)
	assert.Equal(t, []string{"com.a"}, env.bridge.LaunchCalls)
}

func TestAppsController_DismissOverlay(t *testing.T) {
	ac, env := newAppsController(t)

	rec := getJSON(t, ac.DismissOverlay, "/apps/overlay/dismiss", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.bridge.DismissCalls)
}
