// Package rewards implements the client-side rewards store. The backend owns
// every ledger mutation; this store mirrors the snapshots it returns, so the
// balances here never drift from the record store.
package rewards

import (
	"context"
	"strconv"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/rewards"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/metrics"
	"github.com/perkhub/dashboard/pkg/logger"
)

// Backend is the slice of the mock data service this store depends on.
type Backend interface {
	GetRewardsData(ctx context.Context) (rewards.Ledger, error)
	RedeemPoints(ctx context.Context, amount int, description string) (rewards.Ledger, error)
	CreditPoints(ctx context.Context, amount int, description string) (rewards.Ledger, error)
}

// Store holds the rewards read model.
type Store struct {
	backend Backend
	bus     *events.Bus
	log     *logger.Logger

	mu      sync.RWMutex
	ledger  rewards.Ledger
	loaded  bool
	loading bool
	lastErr string
}

// New creates the store. A nil log gets a default logger.
func New(backend Backend, bus *events.Bus, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewDefault("rewards-store")
	}
	return &Store{backend: backend, bus: bus, log: log}
}

// Fetch loads the ledger snapshot. On failure the previous ledger is retained
// and the error message is stored.
func (s *Store) Fetch(ctx context.Context) error {
	s.setLoading()

	l, err := s.backend.GetRewardsData(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		metrics.StoreError("rewards")
		s.log.WithError(err).Warn("rewards fetch failed")
		return err
	}
	s.ledger = l
	s.loaded = true
	s.lastErr = ""
	return nil
}

// AddPoints credits points through the backend and mirrors the returned
// ledger.
func (s *Store) AddPoints(ctx context.Context, amount int, description string) error {
	l, err := s.backend.CreditPoints(ctx, amount, description)

	s.mu.Lock()
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		metrics.StoreError("rewards")
		s.log.WithError(err).Warn("point credit failed")
		return err
	}
	s.ledger = l
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(events.Event{
			Type:    events.TypePointsCredited,
			Message: description,
			Metadata: map[string]string{
				"amount": strconv.Itoa(amount),
			},
		})
	}
	return nil
}

// Redeem spends points through the backend and mirrors the returned ledger.
// An insufficient balance leaves the local ledger untouched.
func (s *Store) Redeem(ctx context.Context, amount int, description string) error {
	s.setLoading()

	l, err := s.backend.RedeemPoints(ctx, amount, description)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		metrics.StoreError("rewards")
		s.log.WithError(err).Warn("redemption failed")
		return err
	}
	s.ledger = l
	s.loaded = true
	s.lastErr = ""
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(events.Event{
			Type:    events.TypePointsRedeemed,
			Message: description,
			Metadata: map[string]string{
				"amount": strconv.Itoa(amount),
			},
		})
	}
	return nil
}

// UpdateProgressPercent overrides the monthly goal progress locally, clamped
// to the 0-100 range.
func (s *Store) UpdateProgressPercent(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.ProgressPercent = p
}

// Ledger returns a copy of the current ledger and whether a snapshot has been
// loaded.
func (s *Store) Ledger() (rewards.Ledger, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone(), s.loaded
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
