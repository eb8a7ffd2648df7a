package internal

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breathed/internal/controllers"
	"breathed/internal/providers"
	"breathed/internal/repository"
	"breathed/internal/services"
	"breathed/internal/structures"
	"breathed/internal/testutil"
	"breathed/internal/watcher"
)

func buildRouter(t *testing.T) providers.RouterProviderInterface {
	t.Helper()
	conf := &structures.Config{}
	conf.Watcher.Cooldown = 10 * time.Second
	conf.Watcher.EventRateLimit = 100
	conf.Watcher.EventBurst = 100
	conf.Database.Path = filepath.Join(t.TempDir(), "social.db")

	logger := &testutil.MockLogger{}
	settings := services.NewSettingsService(&testutil.MemoryPersister{})
	require.NoError(t, settings.Restore())
	interception := services.NewInterceptionService(conf, settings)
	sessions := services.NewSessionService(conf, settings)
	mockBridge := testutil.NewMockBridge()
	metrics := testutil.NewMockMetrics()
	appWatcher := watcher.NewWatcher(mockBridge, interception, sessions, settings, metrics, logger)
	cache := testutil.NewMockCache()

	db, err := repository.NewDB(conf, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	friends := services.NewFriendService(
		repository.NewUserRepository(db),
		repository.NewFriendRequestRepository(db),
		repository.NewFriendshipRepository(db),
		repository.NewNudgeRepository(db),
	)

	return InitRoutes(
		controllers.NewSettingsController(logger, settings, appWatcher, cache),
		controllers.NewAppsController(logger, mockBridge, cache),
		controllers.NewEventsController(logger, appWatcher),
		controllers.NewSessionsController(logger, sessions, settings, mockBridge, metrics),
		controllers.NewFriendsController(logger, friends),
		conf,
	)
}

func TestInitRoutes_RegistersAllEndpoints(t *testing.T) {
	routes := buildRouter(t).GetRoutes()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	expected := []string{
		"/settings",
		"/settings/enabled",
		"/settings/apps",
		"/settings/windows/add",
		"/settings/windows/remove",
		"/settings/duration",
		"/stats",
		"/lists/create",
		"/lists/update",
		"/lists/delete",
		"/contacts/groups",
		"/contacts/groups/create",
		"/contacts/groups/delete",
		"/contacts/prompt-shown",
		"/apps",
		"/apps/monitored",
		"/apps/launch",
		"/apps/overlay/dismiss",
		"/permissions",
		"/permissions/request",
		"/events/foreground",
		"/sessions",
		"/sessions/start",
		"/sessions/complete",
		"/sessions/skip",
		"/friends/users",
		"/friends/requests",
		"/friends/requests/send",
		"/friends/requests/accept",
		"/friends/requests/decline",
		"/friends",
		"/friends/nudges",
		"/friends/nudges/send",
		"/friends/invite",
	}
	for _, url := range expected {
		assert.Contains(t, urls, url)
	}
	assert.Len(t, routes, len(expected))
}

func TestInitRoutes_UrlsAreUnique(t *testing.T) {
	routes := buildRouter(t).GetRoutes()

	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		assert.False(t, seen[r.Url], "duplicate route %s", r.Url)
		seen[r.Url] = true
	}

	// ServeMux panics on duplicate patterns; registering all must not.
	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := buildRouter(t).GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /settings with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/settings", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /sessions/start with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/sessions/start", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
