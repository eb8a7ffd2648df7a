package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"breathed/internal/models"
	"breathed/internal/structures"
)

type SessionServiceInterface interface {
	Start(app *models.AppInfo, duration int, intercepted bool, now time.Time) (models.Session, error)
	Complete(id string, now time.Time) (models.Session, bool, error)
	Skip(id string, now time.Time) (models.Session, bool, error)
	Get(id string) (models.Session, bool)
	Active() []models.Session
}

// SessionService tracks in-flight breathing sessions. Statistics are
// incremented exactly once per session: Complete is idempotent, Skip
// counts nothing.
type SessionService struct {
	settings  SettingsServiceInterface
	retention time.Duration

	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionService(conf *structures.Config, settings SettingsServiceInterface) SessionServiceInterface {
	retention := conf.Watcher.SessionRetention
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return &SessionService{
		settings:  settings,
		retention: retention,
		sessions:  make(map[string]*models.Session),
	}
}

func (s *SessionService) Start(app *models.AppInfo, duration int, intercepted bool, now time.Time) (models.Session, error) {
	if duration <= 0 {
		duration = s.settings.Settings().DefaultBreathingDuration
	}

	session := &models.Session{
		ID:          uuid.NewString(),
		Duration:    duration,
		State:       models.SessionActive,
		StartedAt:   now,
		Intercepted: intercepted,
	}
	if app != nil {
		appCopy := *app
		session.App = &appCopy
	}

	s.mu.Lock()
	s.prune(now)
	s.sessions[session.ID] = session
	s.mu.Unlock()

	// Remembered so the next standalone session offers the same length.
	_ = s.settings.SetLastSessionDuration(duration)

	return *session, nil
}

// Complete finishes a session. The bool reports whether this call did the
// transition; a repeated Complete returns the finished session and false.
func (s *SessionService) Complete(id string, now time.Time) (models.Session, bool, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return models.Session{}, false, ErrSessionNotFound
	}
	if session.State != models.SessionActive {
		out := *session
		s.mu.Unlock()
		return out, false, nil
	}
	session.State = models.SessionCompleted
	ts := now
	session.FinishedAt = &ts
	out := *session
	s.mu.Unlock()

	if _, err := s.settings.IncrementBreathedCount(session.App, now); err != nil {
		return out, true, err
	}
	return out, true, nil
}

func (s *SessionService) Skip(id string, now time.Time) (models.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, false, ErrSessionNotFound
	}
	if session.State != models.SessionActive {
		return *session, false, nil
	}
	session.State = models.SessionSkipped
	ts := now
	session.FinishedAt = &ts
	return *session, true, nil
}

func (s *SessionService) Get(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, false
	}
	return *session, true
}

func (s *SessionService) Active() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, 0)
	for _, session := range s.sessions {
		if session.State == models.SessionActive {
			out = append(out, *session)
		}
	}
	return out
}

// prune drops finished sessions past retention. Caller holds the lock.
func (s *SessionService) prune(now time.Time) {
	for id, session := range s.sessions {
		if session.FinishedAt != nil && now.Sub(*session.FinishedAt) > s.retention {
			delete(s.sessions, id)
		}
	}
}
