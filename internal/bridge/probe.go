package bridge

import (
	"breathed/internal/providers"
	"breathed/internal/structures"
)

// NewBridge resolves the platform bridge once at startup instead of
// probing at every call site. Real Android/iOS variants are built on
// their host platforms; this module ships the development sample and the
// unavailable fallback.
func NewBridge(conf *structures.Config, logger providers.Logger) Bridge {
	switch conf.Watcher.Mode {
	case "sample":
		logger.Infof(providers.TypeApp, "Platform bridge: sample (development app list)")
		return NewSampleBridge(NewHandoffStore(conf.Watcher.MonitoredPath), logger)
	default:
		logger.Warnf(providers.TypeApp, "Platform bridge unavailable, features degrade to empty results")
		return NewUnavailableBridge()
	}
}
