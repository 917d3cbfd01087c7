// Package memory provides the in-memory record store backing the mock data
// service. It is safe for concurrent use and hands out copies so callers never
// observe mutations through aliasing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/domain/rewards"
	"github.com/perkhub/dashboard/internal/app/storage"
)

// Store is an in-memory implementation of the record-store interfaces. It
// holds the single-user dashboard state: one profile, one benefit catalog,
// one ledger.
type Store struct {
	mu       sync.RWMutex
	profile  profile.UserProfile
	benefits []benefit.Benefit
	ledger   rewards.Ledger
}

var _ storage.ProfileRecordStore = (*Store)(nil)
var _ storage.BenefitRecordStore = (*Store)(nil)
var _ storage.RewardsRecordStore = (*Store)(nil)

// New creates a store populated with the default seed data.
func New() *Store {
	return NewWithSeed(DefaultSeed())
}

// NewWithSeed creates a store populated from the given seed.
func NewWithSeed(seed Seed) *Store {
	s := &Store{
		profile: seed.Profile,
		ledger:  seed.Ledger.Clone(),
	}
	s.benefits = make([]benefit.Benefit, len(seed.Benefits))
	copy(s.benefits, seed.Benefits)
	return s
}

// Profile operations ----------------------------------------------------------

func (s *Store) GetProfile(_ context.Context) (profile.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, nil
}

func (s *Store) PutProfile(_ context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return p, nil
}

// Benefit operations ----------------------------------------------------------

func (s *Store) ListBenefits(_ context.Context) ([]benefit.Benefit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]benefit.Benefit, len(s.benefits))
	copy(out, s.benefits)
	return out, nil
}

func (s *Store) GetBenefit(_ context.Context, id int64) (benefit.Benefit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.benefits {
		if b.ID == id {
			return b, nil
		}
	}
	return benefit.Benefit{}, fmt.Errorf("benefit %d: %w", id, storage.ErrNotFound)
}

func (s *Store) PutBenefit(_ context.Context, b benefit.Benefit) (benefit.Benefit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.benefits {
		if s.benefits[i].ID == b.ID {
			s.benefits[i] = b
			return b, nil
		}
	}
	return benefit.Benefit{}, fmt.Errorf("benefit %d: %w", b.ID, storage.ErrNotFound)
}

// Ledger operations -----------------------------------------------------------

func (s *Store) GetLedger(_ context.Context) (rewards.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone(), nil
}

func (s *Store) PutLedger(_ context.Context, l rewards.Ledger) (rewards.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = l.Clone()
	return l, nil
}
