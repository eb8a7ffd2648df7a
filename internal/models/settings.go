package models

import (
	json "github.com/goccy/go-json"
)

// BreatheSettings is the root aggregate of user preferences. It is loaded
// once at startup and rewritten whole on every mutation, last-writer-wins.
type BreatheSettings struct {
	IsEnabled                bool          `json:"isEnabled"`
	SelectedApps             []AppInfo     `json:"selectedApps"`
	TimeWindows              []TimeWindow  `json:"timeWindows"`
	BreatheLists             []BreatheList `json:"breatheLists"`
	DefaultBreathingDuration int           `json:"defaultBreathingDuration"`
	Statistics               Statistics    `json:"statistics"`

	// Extra carries unknown top-level fields through a load/save cycle
	// unchanged. Documents written by newer builds stay intact.
	Extra map[string]json.RawMessage `json:"-"`
}

var knownSettingsFields = map[string]struct{}{
	"isEnabled":                {},
	"selectedApps":             {},
	"timeWindows":              {},
	"breatheLists":             {},
	"defaultBreathingDuration": {},
	"statistics":               {},
}

func DefaultSettings() *BreatheSettings {
	return &BreatheSettings{
		IsEnabled:                false,
		SelectedApps:             []AppInfo{},
		TimeWindows:              []TimeWindow{},
		BreatheLists:             []BreatheList{},
		DefaultBreathingDuration: 60,
		Statistics:               Statistics{},
	}
}

type settingsAlias BreatheSettings

// UnmarshalJSON merges a stored document over hard-coded defaults: missing
// fields keep their default, unknown fields are retained in Extra.
func (bs *BreatheSettings) UnmarshalJSON(data []byte) error {
	defaults := settingsAlias(*DefaultSettings())
	if err := json.Unmarshal(data, &defaults); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, known := knownSettingsFields[key]; known {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		defaults.Extra = raw
	}

	*bs = BreatheSettings(defaults)
	return nil
}

// MarshalJSON writes the known fields plus any retained unknown fields.
func (bs BreatheSettings) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(settingsAlias(bs))
	if err != nil {
		return nil, err
	}
	if len(bs.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, val := range bs.Extra {
		if _, known := knownSettingsFields[key]; !known {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}

// SelectedApp returns the first selected app with the given id.
func (bs BreatheSettings) SelectedApp(id string) (AppInfo, bool) {
	for _, app := range bs.SelectedApps {
		if app.ID == id {
			return app, true
		}
	}
	return AppInfo{}, false
}

// ListedApp returns the first app with the given id from any breathe list.
func (bs BreatheSettings) ListedApp(id string) (AppInfo, bool) {
	for _, list := range bs.BreatheLists {
		if app, ok := list.App(id); ok {
			return app, true
		}
	}
	return AppInfo{}, false
}

// MonitoredIDs is the union of the selected-apps set and every list's apps,
// deduplicated, in first-seen order.
func (bs BreatheSettings) MonitoredIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(bs.SelectedApps))
	add := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, app := range bs.SelectedApps {
		add(app.ID)
	}
	for _, list := range bs.BreatheLists {
		for _, app := range list.Apps {
			add(app.ID)
		}
	}
	return ids
}
