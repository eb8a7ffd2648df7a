package watcher

import (
	"time"

	"go.uber.org/atomic"

	"breathed/internal/bridge"
	"breathed/internal/providers"
	"breathed/internal/services"
)

type Outcome struct {
	Decision     services.Decision
	OverlayShown bool
	DeepLink     string
	SessionID    string
}

type WatcherInterface interface {
	Start() error
	Stop()
	Running() bool
	HandleForeground(packageID string, now time.Time) Outcome
	SyncMonitored() bool
}

// Watcher wires foreground-change events to the interception decision and
// the overlay. The platform side posts events; nothing here polls.
type Watcher struct {
	bridge       bridge.Bridge
	interception services.InterceptionServiceInterface
	sessions     services.SessionServiceInterface
	settings     services.SettingsServiceInterface
	metrics      providers.MetricsProviderInterface
	logger       providers.Logger
	running      atomic.Bool
}

func NewWatcher(
	b bridge.Bridge,
	interception services.InterceptionServiceInterface,
	sessions services.SessionServiceInterface,
	settings services.SettingsServiceInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) WatcherInterface {
	return &Watcher{
		bridge:       b,
		interception: interception,
		sessions:     sessions,
		settings:     settings,
		metrics:      metrics,
		logger:       logger,
	}
}

// Start refuses to begin monitoring without permissions; the caller gets
// an error to surface, not a silent no-op.
func (w *Watcher) Start() error {
	if !w.bridge.HasPermissions() {
		return services.ErrNoPermissions
	}
	if !w.SyncMonitored() {
		w.logger.Warnf(providers.TypeWatch, "Monitored package list could not be published")
	}
	w.running.Store(true)
	w.logger.Infof(providers.TypeWatch, "Watcher started")
	return nil
}

// Stop clears the monitored set to empty. That is the only cancellation
// semantics the platform side understands.
func (w *Watcher) Stop() {
	w.running.Store(false)
	w.bridge.SetMonitoredPackages([]string{})
	w.metrics.SetMonitoredPackages(0)
	w.interception.ClearCooldowns()
	w.logger.Infof(providers.TypeWatch, "Watcher stopped")
}

func (w *Watcher) Running() bool {
	return w.running.Load()
}

// SyncMonitored republishes the allow-list after a settings mutation.
func (w *Watcher) SyncMonitored() bool {
	ids := w.settings.Settings().MonitoredIDs()
	ok := w.bridge.SetMonitoredPackages(ids)
	if ok {
		w.metrics.SetMonitoredPackages(len(ids))
	}
	return ok
}

func (w *Watcher) HandleForeground(packageID string, now time.Time) Outcome {
	if !w.running.Load() {
		return Outcome{Decision: services.Decision{Outcome: services.OutcomePass}}
	}

	decision := w.interception.Evaluate(packageID, now)
	w.metrics.IncDecision(string(decision.Outcome))

	if decision.Outcome != services.OutcomeIntercept {
		return Outcome{Decision: decision}
	}

	out := Outcome{
		Decision: decision,
		DeepLink: bridge.BuildOverlayLink(decision.App),
	}

	session, err := w.sessions.Start(&decision.App, 0, true, now)
	if err != nil {
		w.logger.Errorf(providers.TypeWatch, "Cannot start interception session for %s: %s", packageID, err)
	} else {
		out.SessionID = session.ID
	}

	if w.bridge.ShowOverlay(decision.App) {
		out.OverlayShown = true
		w.metrics.IncOverlayShows()
	} else {
		// No overlay capability: the platform side falls back to the
		// legacy deep-link path carried in the outcome.
		w.logger.Debugf(providers.TypeWatch, "Overlay unavailable for %s, deep link returned", packageID)
	}

	return out
}
