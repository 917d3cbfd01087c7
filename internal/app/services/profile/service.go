// Package profile implements the client-side profile store: a read model of
// the backend's profile record plus the async request lifecycle around it.
package profile

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/metrics"
	"github.com/perkhub/dashboard/pkg/logger"
)

// ErrProfileNotLoaded is returned by operations that require a fetched
// profile before any fetch has succeeded.
var ErrProfileNotLoaded = errors.New("profile not loaded")

// Backend is the slice of the mock data service this store depends on.
type Backend interface {
	GetUserProfile(ctx context.Context) (profile.UserProfile, error)
	UpdateUserXP(ctx context.Context, xpGained int) (profile.ProgressDelta, error)
}

// Store holds the profile read model. All state transitions run under the
// store lock; accessors return copies.
type Store struct {
	backend Backend
	bus     *events.Bus
	log     *logger.Logger

	mu      sync.RWMutex
	profile profile.UserProfile
	stats   profile.Stats
	loaded  bool
	loading bool
	lastErr string
}

// New creates the store. A nil log gets a default logger.
func New(backend Backend, bus *events.Bus, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewDefault("profile-store")
	}
	return &Store{backend: backend, bus: bus, log: log}
}

// Fetch loads the profile from the backend. On failure the previous profile
// is retained and the error message is stored until the next success or
// ClearError.
func (s *Store) Fetch(ctx context.Context) error {
	s.setLoading()

	p, err := s.backend.GetUserProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		metrics.StoreError("profile")
		s.log.WithError(err).Warn("profile fetch failed")
		return err
	}
	s.profile = p
	s.stats = profile.StatsOf(p)
	s.loaded = true
	s.lastErr = ""
	return nil
}

// AddXP sends an XP gain to the backend and merges the returned progression
// into the local profile. It requires a previously fetched profile.
func (s *Store) AddXP(ctx context.Context, xpGained int) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if !loaded {
		return ErrProfileNotLoaded
	}

	s.setLoading()

	delta, err := s.backend.UpdateUserXP(ctx, xpGained)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		metrics.StoreError("profile")
		s.log.WithError(err).Warn("xp update failed")
		return err
	}
	delta.Merge(&s.profile)
	s.lastErr = ""
	level := delta.Level
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(events.Event{
			Type:    events.TypeProfileUpdated,
			Message: "xp updated",
			Metadata: map[string]string{
				"level": strconv.Itoa(level),
				"xp":    strconv.Itoa(delta.XP),
			},
		})
	}
	return nil
}

// ApplyStats merges a local stats patch into the stats snapshot without a
// backend round trip. Point totals are mirrored into the profile; the
// snapshot's progress override does not touch the profile's level progress,
// which stays owned by XP updates.
func (s *Store) ApplyStats(patch profile.StatsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = patch.Apply(s.stats)
	s.profile.TotalPoints = s.stats.TotalPoints
	s.profile.RedeemedPoints = s.stats.RedeemedPoints
	s.profile.MonthlyPoints = s.stats.MonthlyPoints
}

// Stats returns the point summary snapshot.
func (s *Store) Stats() profile.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Profile returns the current profile and whether a fetch has succeeded.
func (s *Store) Profile() (profile.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.loaded
}

// Loading reports whether a request is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the retained error message, empty when the last operation
// succeeded.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError drops the retained error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}
