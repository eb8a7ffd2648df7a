package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"breathed/internal/services"
	"breathed/internal/structures"
	"breathed/internal/testutil"
	"breathed/internal/watcher"
)

// testEnv wires real services over the in-memory test doubles so the
// controller tests exercise the same paths the daemon runs.
type testEnv struct {
	settings services.SettingsServiceInterface
	sessions services.SessionServiceInterface
	watcher  watcher.WatcherInterface
	bridge   *testutil.MockBridge
	cache    *testutil.MockCache
	metrics  *testutil.MockMetrics
	logger   *testutil.MockLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conf := &structures.Config{}
	conf.Watcher.Cooldown = 10 * time.Second

	settings := services.NewSettingsService(&testutil.MemoryPersister{})
	require.NoError(t, settings.Restore())
	interception := services.NewInterceptionService(conf, settings)
	sessions := services.NewSessionService(conf, settings)
	mockBridge := testutil.NewMockBridge()
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}

	return &testEnv{
		settings: settings,
		sessions: sessions,
		watcher:  watcher.NewWatcher(mockBridge, interception, sessions, settings, metrics, logger),
		bridge:   mockBridge,
		cache:    testutil.NewMockCache(),
		metrics:  metrics,
		logger:   logger,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func getJSON(t *testing.T, handler http.HandlerFunc, target string, dst any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if dst != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
	}
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
