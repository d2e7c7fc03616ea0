// Package store keeps a user's profile and saved scenarios for the lifetime
// of a session. Nothing is persisted.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lifeplan/planner/internal/domain"
)

// SessionStore is an in-memory, concurrency-safe scenario list.
type SessionStore struct {
	mu        sync.RWMutex
	profile   *domain.Profile
	scenarios []domain.Scenario
	now       func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{now: time.Now}
}

// SetNowFunc overrides the clock used to stamp new scenarios. Intended for tests.
func (s *SessionStore) SetNowFunc(f func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f == nil {
		f = time.Now
	}
	s.now = f
}

// SetProfile replaces the session profile.
func (s *SessionStore) SetProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

// Profile returns the session profile, or false if none was set.
func (s *SessionStore) Profile() (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.Profile{}, false
	}
	return *s.profile, true
}

// SaveScenario stores a copy of the scenario and returns it. A scenario
// without an ID, or with an ID the store has not seen, is appended with a
// fresh ID and creation time; a known ID replaces the stored scenario in place.
func (s *SessionStore) SaveScenario(sc domain.Scenario) domain.Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sc.ID != "" {
		if i := s.indexOf(sc.ID); i >= 0 {
			if sc.CreatedAt.IsZero() {
				sc.CreatedAt = s.scenarios[i].CreatedAt
			}
			s.scenarios[i] = sc
			return sc
		}
	} else {
		sc.ID = uuid.NewString()
	}
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = s.now().UTC()
	}
	s.scenarios = append(s.scenarios, sc)
	return sc
}

// Scenario returns the scenario with the given ID.
func (s *SessionStore) Scenario(id string) (domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Scenario{}, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, id)
	}
	return s.scenarios[i], nil
}

// Scenarios returns all saved scenarios in insertion order.
func (s *SessionStore) Scenarios() []domain.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// DeleteScenario removes the scenario with the given ID.
func (s *SessionStore) DeleteScenario(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, id)
	}
	s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
	return nil
}

// Select returns the scenarios with the given IDs, in the order requested,
// ready to be compared.
func (s *SessionStore) Select(ids ...string) ([]domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Scenario, 0, len(ids))
	for _, id := range ids {
		i := s.indexOf(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, id)
		}
		out = append(out, s.scenarios[i])
	}
	return out, nil
}

// Configuration assembles the profile and the selected scenarios (all of
// them when no IDs are given) into a configuration the engine can run.
func (s *SessionStore) Configuration(ids ...string) (*domain.Configuration, error) {
	profile, ok := s.Profile()
	if !ok {
		return nil, fmt.Errorf("%w: no profile in session", domain.ErrInvalidConfiguration)
	}
	var scenarios []domain.Scenario
	if len(ids) == 0 {
		scenarios = s.Scenarios()
	} else {
		var err error
		if scenarios, err = s.Select(ids...); err != nil {
			return nil, err
		}
	}
	return &domain.Configuration{Profile: profile, Scenarios: scenarios}, nil
}

func (s *SessionStore) indexOf(id string) int {
	for i := range s.scenarios {
		if s.scenarios[i].ID == id {
			return i
		}
	}
	return -1
}
