package services

import (
	"sync"
	"time"

	"breathed/internal/models"
	"breathed/internal/structures"
)

type DecisionOutcome string

const (
	OutcomePass      DecisionOutcome = "pass"
	OutcomeIntercept DecisionOutcome = "intercept"
	OutcomeThrottled DecisionOutcome = "throttled"
)

type Decision struct {
	Outcome DecisionOutcome
	App     models.AppInfo
}

type InterceptionServiceInterface interface {
	Evaluate(packageID string, now time.Time) Decision
	ClearCooldowns()
}

// InterceptionService decides pass/intercept for a foreground-app change:
// intercept iff the feature is enabled, the package is in the selected set
// or any breathe list, and the current time is eligible. A per-package
// cooldown collapses the rapid duplicate events an accessibility watcher
// emits into a single overlay show.
type InterceptionService struct {
	settings SettingsServiceInterface
	cooldown time.Duration

	mu        sync.Mutex
	lastShown map[string]time.Time
}

func NewInterceptionService(conf *structures.Config, settings SettingsServiceInterface) InterceptionServiceInterface {
	cooldown := conf.Watcher.Cooldown
	if cooldown <= 0 {
		cooldown = 10 * time.Second
	}
	return &InterceptionService{
		settings:  settings,
		cooldown:  cooldown,
		lastShown: make(map[string]time.Time),
	}
}

func (is *InterceptionService) Evaluate(packageID string, now time.Time) Decision {
	snapshot := is.settings.Settings()

	if !snapshot.IsEnabled {
		return Decision{Outcome: OutcomePass}
	}

	app, selected := snapshot.SelectedApp(packageID)
	if !selected {
		var listed bool
		app, listed = snapshot.ListedApp(packageID)
		if !listed {
			return Decision{Outcome: OutcomePass}
		}
	}

	if !models.AnyWindowContains(snapshot.TimeWindows, now) {
		return Decision{Outcome: OutcomePass}
	}

	if app.ID == "" {
		app = models.SynthesizeAppInfo(packageID)
	}

	is.mu.Lock()
	defer is.mu.Unlock()
	if last, ok := is.lastShown[packageID]; ok && now.Sub(last) < is.cooldown {
		return Decision{Outcome: OutcomeThrottled, App: app}
	}
	is.lastShown[packageID] = now

	return Decision{Outcome: OutcomeIntercept, App: app}
}

func (is *InterceptionService) ClearCooldowns() {
	is.mu.Lock()
	defer is.mu.Unlock()
	is.lastShown = make(map[string]time.Time)
}
