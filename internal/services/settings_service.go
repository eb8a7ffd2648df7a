package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"breathed/internal/models"
)

// StatePersister is the slice of the store layer the settings service
// needs: whole-document load and save.
type StatePersister interface {
	Save(doc *models.StateDocument) error
	Load() (*models.StateDocument, error)
}

type SettingsServiceInterface interface {
	Restore() error
	Persist() error
	Settings() models.BreatheSettings
	Snapshot() *models.StateDocument

	SetEnabled(enabled bool) error
	SetSelectedApps(apps []models.AppInfo) error
	AddTimeWindow(window models.TimeWindow) error
	RemoveTimeWindow(index int) error
	CreateBreatheList(name string, apps []models.AppInfo, now time.Time) (models.BreatheList, error)
	UpdateBreatheList(id, name string, apps []models.AppInfo, now time.Time) (models.BreatheList, error)
	DeleteBreatheList(id string) error
	SetDefaultDuration(seconds int) error
	IncrementBreathedCount(app *models.AppInfo, now time.Time) (models.Statistics, error)

	LastSessionDuration() int
	SetLastSessionDuration(seconds int) error
	ContactsPromptShown() bool
	MarkContactsPromptShown() error

	ContactGroups() []models.ContactGroup
	CreateContactGroup(name string, contactIDs []string, now time.Time) (models.ContactGroup, error)
	DeleteContactGroup(id string) error
}

// SettingsService owns the in-memory state document. It is constructed
// once at process start and handed to consumers; there is no package-level
// singleton. Every mutator rewrites and persists the whole document,
// last-writer-wins.
type SettingsService struct {
	mu        sync.RWMutex
	doc       *models.StateDocument
	persister StatePersister
}

func NewSettingsService(persister StatePersister) SettingsServiceInterface {
	return &SettingsService{
		doc:       models.DefaultStateDocument(),
		persister: persister,
	}
}

func (ss *SettingsService) Restore() error {
	doc, err := ss.persister.Load()
	if err != nil {
		return err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.doc = doc
	return nil
}

func (ss *SettingsService) Persist() error {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.persister.Save(ss.doc)
}

// Settings returns a copy of the settings aggregate. Slices are copied so
// callers cannot mutate service state through the snapshot.
func (ss *SettingsService) Settings() models.BreatheSettings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return copySettings(ss.doc.Settings)
}

func (ss *SettingsService) Snapshot() *models.StateDocument {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	settings := copySettings(ss.doc.Settings)
	groups := make([]models.ContactGroup, len(ss.doc.ContactGroups))
	copy(groups, ss.doc.ContactGroups)

	return &models.StateDocument{
		Version:             ss.doc.Version,
		Settings:            &settings,
		ContactGroups:       groups,
		LastSessionDuration: ss.doc.LastSessionDuration,
		ContactsPromptShown: ss.doc.ContactsPromptShown,
	}
}

func copySettings(s *models.BreatheSettings) models.BreatheSettings {
	out := *s
	out.SelectedApps = append([]models.AppInfo{}, s.SelectedApps...)
	out.TimeWindows = append([]models.TimeWindow{}, s.TimeWindows...)
	out.BreatheLists = make([]models.BreatheList, len(s.BreatheLists))
	for i, list := range s.BreatheLists {
		listCopy := list
		listCopy.Apps = append([]models.AppInfo{}, list.Apps...)
		out.BreatheLists[i] = listCopy
	}
	return out
}

// mutate runs fn under the write lock and persists the whole document.
func (ss *SettingsService) mutate(fn func(doc *models.StateDocument) error) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if err := fn(ss.doc); err != nil {
		return err
	}
	return ss.persister.Save(ss.doc)
}

func (ss *SettingsService) SetEnabled(enabled bool) error {
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.IsEnabled = enabled
		return nil
	})
}

func (ss *SettingsService) SetSelectedApps(apps []models.AppInfo) error {
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.SelectedApps = append([]models.AppInfo{}, apps...)
		return nil
	})
}

func (ss *SettingsService) AddTimeWindow(window models.TimeWindow) error {
	if !window.Valid() {
		return ErrInvalidWindow
	}
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.TimeWindows = append(doc.Settings.TimeWindows, window)
		return nil
	})
}

func (ss *SettingsService) RemoveTimeWindow(index int) error {
	return ss.mutate(func(doc *models.StateDocument) error {
		windows := doc.Settings.TimeWindows
		if index < 0 || index >= len(windows) {
			return ErrWindowNotFound
		}
		doc.Settings.TimeWindows = append(windows[:index], windows[index+1:]...)
		return nil
	})
}

func (ss *SettingsService) CreateBreatheList(name string, apps []models.AppInfo, now time.Time) (models.BreatheList, error) {
	if name == "" {
		return models.BreatheList{}, ErrEmptyName
	}
	list := models.BreatheList{
		ID:        uuid.NewString(),
		Name:      name,
		Apps:      append([]models.AppInfo{}, apps...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.BreatheLists = append(doc.Settings.BreatheLists, list)
		return nil
	})
	if err != nil {
		return models.BreatheList{}, err
	}
	return list, nil
}

func (ss *SettingsService) UpdateBreatheList(id, name string, apps []models.AppInfo, now time.Time) (models.BreatheList, error) {
	var updated models.BreatheList
	err := ss.mutate(func(doc *models.StateDocument) error {
		for i := range doc.Settings.BreatheLists {
			if doc.Settings.BreatheLists[i].ID != id {
				continue
			}
			if name != "" {
				doc.Settings.BreatheLists[i].Name = name
			}
			if apps != nil {
				doc.Settings.BreatheLists[i].Apps = append([]models.AppInfo{}, apps...)
			}
			doc.Settings.BreatheLists[i].UpdatedAt = now
			updated = doc.Settings.BreatheLists[i]
			return nil
		}
		return ErrListNotFound
	})
	if err != nil {
		return models.BreatheList{}, err
	}
	return updated, nil
}

func (ss *SettingsService) DeleteBreatheList(id string) error {
	return ss.mutate(func(doc *models.StateDocument) error {
		lists := doc.Settings.BreatheLists
		for i := range lists {
			if lists[i].ID == id {
				doc.Settings.BreatheLists = append(lists[:i], lists[i+1:]...)
				return nil
			}
		}
		return ErrListNotFound
	})
}

func (ss *SettingsService) SetDefaultDuration(seconds int) error {
	if seconds <= 0 {
		return ErrInvalidDuration
	}
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.DefaultBreathingDuration = seconds
		return nil
	})
}

func (ss *SettingsService) IncrementBreathedCount(app *models.AppInfo, now time.Time) (models.Statistics, error) {
	var stats models.Statistics
	err := ss.mutate(func(doc *models.StateDocument) error {
		doc.Settings.Statistics.Increment(app, now)
		stats = doc.Settings.Statistics
		return nil
	})
	return stats, err
}

func (ss *SettingsService) LastSessionDuration() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.doc.LastSessionDuration
}

func (ss *SettingsService) SetLastSessionDuration(seconds int) error {
	if seconds <= 0 {
		return ErrInvalidDuration
	}
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.LastSessionDuration = seconds
		return nil
	})
}

func (ss *SettingsService) ContactsPromptShown() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.doc.ContactsPromptShown
}

func (ss *SettingsService) MarkContactsPromptShown() error {
	return ss.mutate(func(doc *models.StateDocument) error {
		doc.ContactsPromptShown = true
		return nil
	})
}

func (ss *SettingsService) ContactGroups() []models.ContactGroup {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	groups := make([]models.ContactGroup, len(ss.doc.ContactGroups))
	copy(groups, ss.doc.ContactGroups)
	return groups
}

func (ss *SettingsService) CreateContactGroup(name string, contactIDs []string, now time.Time) (models.ContactGroup, error) {
	if name == "" {
		return models.ContactGroup{}, ErrEmptyName
	}
	group := models.ContactGroup{
		ID:         uuid.NewString(),
		Name:       name,
		ContactIDs: append([]string{}, contactIDs...),
		CreatedAt:  now,
	}
	err := ss.mutate(func(doc *models.StateDocument) error {
		doc.ContactGroups = append(doc.ContactGroups, group)
		return nil
	})
	if err != nil {
		return models.ContactGroup{}, err
	}
	return group, nil
}

func (ss *SettingsService) DeleteContactGroup(id string) error {
	return ss.mutate(func(doc *models.StateDocument) error {
		for i := range doc.ContactGroups {
			if doc.ContactGroups[i].ID == id {
				doc.ContactGroups = append(doc.ContactGroups[:i], doc.ContactGroups[i+1:]...)
				return nil
			}
		}
		return ErrGroupNotFound
	})
}
