// Package theme implements the theme store, synced to a durable preference
// store so the choice survives restarts.
package theme

import (
	"fmt"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/theme"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/storage"
	"github.com/perkhub/dashboard/pkg/logger"
)

// Applier receives the active mode whenever it changes, so a presentation
// layer can reflect it (the analogue of flipping a root style class).
type Applier func(theme.Mode)

// Store holds the active theme mode.
type Store struct {
	prefs   storage.PreferenceStore
	bus     *events.Bus
	log     *logger.Logger
	applier Applier

	mu   sync.RWMutex
	mode theme.Mode
}

// New creates the store, restoring the persisted mode. A missing or invalid
// stored value falls back to def, and a read failure is logged rather than
// fatal.
func New(prefs storage.PreferenceStore, def theme.Mode, bus *events.Bus, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewDefault("theme-store")
	}
	if !def.Valid() {
		def = theme.ModeLight
	}

	mode := def
	if prefs != nil {
		value, present, err := prefs.Load()
		switch {
		case err != nil:
			log.WithError(err).Warn("theme preference unreadable, using default")
		case present && theme.Mode(value).Valid():
			mode = theme.Mode(value)
		}
	}

	return &Store{prefs: prefs, bus: bus, log: log, mode: mode}
}

// WithApplier registers a callback invoked on every mode change, and fires it
// once with the restored mode.
func (s *Store) WithApplier(fn Applier) *Store {
	s.applier = fn
	if fn != nil {
		fn(s.Mode())
	}
	return s
}

// Mode returns the active theme mode.
func (s *Store) Mode() theme.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches to the given mode, persists it and notifies the applier.
func (s *Store) SetMode(mode theme.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid theme mode %q", mode)
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	if s.applier != nil {
		s.applier(mode)
	}

	if s.prefs != nil {
		if err := s.prefs.Save(string(mode)); err != nil {
			s.log.WithError(err).Warn("theme preference not persisted")
			return err
		}
	}

	if s.bus != nil {
		s.bus.Publish(events.Event{
			Type:    events.TypeThemeChanged,
			Message: string(mode),
		})
	}
	return nil
}

// Toggle flips between light and dark and returns the new mode.
func (s *Store) Toggle() (theme.Mode, error) {
	s.mu.RLock()
	next := s.mode.Toggle()
	s.mu.RUnlock()
	return next, s.SetMode(next)
}
