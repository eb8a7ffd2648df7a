package testutil

import (
	"context"
	"sync"
	"time"

	"breathed/internal/models"
	"breathed/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MemoryPersister implements services.StatePersister without disk.
type MemoryPersister struct {
	mu      sync.Mutex
	Saved   *models.StateDocument
	SaveCnt int
	LoadDoc *models.StateDocument
	SaveErr error
	LoadErr error
}

func (m *MemoryPersister) Save(doc *models.StateDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCnt++
	m.Saved = doc
	return nil
}

func (m *MemoryPersister) Load() (*models.StateDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.LoadDoc != nil {
		return m.LoadDoc, nil
	}
	return models.DefaultStateDocument(), nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Decisions      map[string]int
	OverlayShows   int
	Sessions       map[string]int
	MonitoredCount int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Decisions: make(map[string]int),
		Sessions:  make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration)       {}

func (m *MockMetrics) IncDecision(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Decisions[outcome]++
}

func (m *MockMetrics) IncOverlayShows() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OverlayShows++
}

func (m *MockMetrics) IncSessionOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions[outcome]++
}

func (m *MockMetrics) SetMonitoredPackages(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MonitoredCount = count
}

// MockBridge implements bridge.Bridge with configurable capabilities.
type MockBridge struct {
	mu            sync.Mutex
	Apps          []models.AppInfo
	Permissions   bool
	Overlay       bool
	AvailableFlag bool
	SetResult     bool
	ShowResult    bool

	ShowCalls     []models.AppInfo
	LaunchCalls   []string
	DismissCalls  int
	MonitoredSets [][]string
	MonitoredSeq  uint64
}

func NewMockBridge() *MockBridge {
	return &MockBridge{
		Permissions:   true,
		Overlay:       true,
		AvailableFlag: true,
		SetResult:     true,
		ShowResult:    true,
	}
}

func (m *MockBridge) GetInstalledApps(_ context.Context) []models.AppInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AppInfo{}, m.Apps...)
}

func (m *MockBridge) HasPermissions() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Permissions
}

func (m *MockBridge) HasAccessibilityPermission() bool { return m.HasPermissions() }

func (m *MockBridge) HasOverlayPermission() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Overlay
}

func (m *MockBridge) RequestPermissions() bool       { return m.HasPermissions() }
func (m *MockBridge) RequestOverlayPermission() bool { return m.HasOverlayPermission() }

func (m *MockBridge) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AvailableFlag
}

func (m *MockBridge) SetMonitoredPackages(ids []string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.SetResult {
		return false
	}
	m.MonitoredSeq++
	m.MonitoredSets = append(m.MonitoredSets, append([]string{}, ids...))
	return true
}

func (m *MockBridge) MonitoredPackages() models.MonitoredPackages {
	m.mu.Lock()
	defer m.mu.Unlock()
	record := models.MonitoredPackages{Seq: m.MonitoredSeq, Packages: []string{}}
	if len(m.MonitoredSets) > 0 {
		record.Packages = append(record.Packages, m.MonitoredSets[len(m.MonitoredSets)-1]...)
	}
	return record
}

func (m *MockBridge) LaunchApp(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LaunchCalls = append(m.LaunchCalls, id)
	return true
}

func (m *MockBridge) ShowOverlay(app models.AppInfo) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ShowResult {
		return false
	}
	m.ShowCalls = append(m.ShowCalls, app)
	return true
}

func (m *MockBridge) DismissOverlay() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DismissCalls++
	return true
}
