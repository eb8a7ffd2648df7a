package models

// StateDocument is the on-disk envelope for everything the daemon keeps
// locally: the settings aggregate plus the small fixed keys that used to
// live beside it in key-value storage.
type StateDocument struct {
	Version             int              `json:"version"`
	Settings            *BreatheSettings `json:"settings"`
	ContactGroups       []ContactGroup   `json:"contactGroups"`
	LastSessionDuration int              `json:"lastSessionDuration,omitempty"`
	ContactsPromptShown bool             `json:"contactsPromptShown"`
}

const StateVersion = 2

func DefaultStateDocument() *StateDocument {
	return &StateDocument{
		Version:       StateVersion,
		Settings:      DefaultSettings(),
		ContactGroups: []ContactGroup{},
	}
}
