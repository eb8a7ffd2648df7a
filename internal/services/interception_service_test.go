package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breathed/internal/models"
	"breathed/internal/structures"
	"breathed/internal/testutil"
)

func newInterception(t *testing.T, cooldown time.Duration) (InterceptionServiceInterface, SettingsServiceInterface) {
	t.Helper()
	settings := NewSettingsService(&testutil.MemoryPersister{})
	require.NoError(t, settings.Restore())
	conf := &structures.Config{}
	conf.Watcher.Cooldown = cooldown
	return NewInterceptionService(conf, settings), settings
}

func TestInterception_PassWhenDisabled(t *testing.T) {
	svc, settings := newInterception(t, time.Second)
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.instagram.android", Name: "Instagram"}}))

	decision := svc.Evaluate("com.instagram.android", time.Now())
	assert.Equal(t, OutcomePass, decision.Outcome)
}

func TestInterception_MembershipViaSelectedAppsOrLists(t *testing.T) {
	svc, settings := newInterception(t, time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "A"}}))
	_, err := settings.CreateBreatheList("Evening", []models.AppInfo{{ID: "com.b", Name: "B"}}, time.Now())
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", now).Outcome)
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.b", now).Outcome)
	assert.Equal(t, OutcomePass, svc.Evaluate("com.c", now).Outcome)
}

func TestInterception_DecisionCarriesKnownAppMetadata(t *testing.T) {
	svc, settings := newInterception(t, time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "Shiny App"}}))

	decision := svc.Evaluate("com.a", time.Now())
	assert.Equal(t, "Shiny App", decision.App.Name)
}

func TestInterception_OutsideEveryWindowPasses(t *testing.T) {
	svc, settings := newInterception(t, time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "A"}}))
	require.NoError(t, settings.AddTimeWindow(models.TimeWindow{Start: "09:00", End: "10:00"}))

	inside := time.Date(2024, 5, 14, 9, 30, 0, 0, time.Local)
	outside := time.Date(2024, 5, 14, 11, 0, 0, 0, time.Local)

	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", inside).Outcome)
	assert.Equal(t, OutcomePass, svc.Evaluate("com.a", outside).Outcome)
}

func TestInterception_CooldownCollapsesDuplicates(t *testing.T) {
	svc, settings := newInterception(t, 10*time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "A"}}))

	base := time.Date(2024, 5, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base).Outcome)
	assert.Equal(t, OutcomeThrottled, svc.Evaluate("com.a", base.Add(3*time.Second)).Outcome)
	assert.Equal(t, OutcomeThrottled, svc.Evaluate("com.a", base.Add(9*time.Second)).Outcome)
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base.Add(10*time.Second)).Outcome)
}

func TestInterception_CooldownIsPerPackage(t *testing.T) {
	svc, settings := newInterception(t, 10*time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{
		{ID: "com.a", Name: "A"},
		{ID: "com.b", Name: "B"},
	}))

	base := time.Date(2024, 5, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base).Outcome)
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.b", base.Add(time.Second)).Outcome)
}

func TestInterception_ClearCooldowns(t *testing.T) {
	svc, settings := newInterception(t, 10*time.Second)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "A"}}))

	base := time.Date(2024, 5, 14, 12, 0, 0, 0, time.Local)
	require.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base).Outcome)
	svc.ClearCooldowns()
	assert.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base.Add(time.Second)).Outcome)
}

func TestInterception_DefaultCooldownWhenUnconfigured(t *testing.T) {
	svc, settings := newInterception(t, 0)
	require.NoError(t, settings.SetEnabled(true))
	require.NoError(t, settings.SetSelectedApps([]models.AppInfo{{ID: "com.a", Name: "A"}}))

	base := time.Date(2024, 5, 14, 12, 0, 0, 0, time.Local)
	require.Equal(t, OutcomeIntercept, svc.Evaluate("com.a", base).Outcome)
	assert.Equal(t, OutcomeThrottled, svc.Evaluate("com.a", base.Add(9*time.Second)).Outcome)
}
