package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"breathed/internal/services"
	"breathed/internal/structures"
	"breathed/internal/testutil"
)

// countingSettings wraps the real settings service to observe Persist calls.
type countingSettings struct {
	services.SettingsServiceInterface
	persists atomic.Int32
}

func (c *countingSettings) Persist() error {
	c.persists.Inc()
	return c.SettingsServiceInterface.Persist()
}

func TestScheduler_PeriodicSaveAndShutdownPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	conf := &structures.Config{}
	conf.Persistence.FilePath = path
	conf.Persistence.SaveInterval = time.Second

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	logger := &testutil.MockLogger{}
	manager := NewFileManager(conf, compressor, logger)

	settings := &countingSettings{SettingsServiceInterface: services.NewSettingsService(manager)}
	scheduler := NewScheduler(conf, logger, settings, testutil.NewMockMetrics())

	require.NoError(t, scheduler.Restore())
	scheduler.Init()
	defer scheduler.Stop()

	assert.Eventually(t, func() bool {
		return settings.persists.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)

	scheduler.Stop()
	require.NoError(t, scheduler.Persist())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestScheduler_RestoreHydratesFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	conf := &structures.Config{}
	conf.Persistence.FilePath = path
	conf.Persistence.SaveInterval = time.Minute

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	manager := NewFileManager(conf, compressor, &testutil.MockLogger{})

	seed := services.NewSettingsService(manager)
	require.NoError(t, seed.SetEnabled(true))

	settings := services.NewSettingsService(manager)
	scheduler := NewScheduler(conf, &testutil.MockLogger{}, settings, testutil.NewMockMetrics())
	require.NoError(t, scheduler.Restore())

	assert.True(t, settings.Settings().IsEnabled)
}
