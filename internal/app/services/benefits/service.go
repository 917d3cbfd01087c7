// Package benefits implements the client-side benefits store: the catalog
// read model, the user's claimed benefits, and the presentation projections
// (category filter, display window).
package benefits

import (
	"context"
	"strconv"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/metrics"
	"github.com/perkhub/dashboard/pkg/logger"
)

// DisplayLimit is the number of benefits shown before the user expands the
// full catalog.
const DisplayLimit = 6

// Backend is the slice of the mock data service this store depends on.
type Backend interface {
	GetBenefits(ctx context.Context) ([]benefit.Benefit, error)
	ClaimBenefit(ctx context.Context, id int64) (benefit.Benefit, bool, error)
	GetUserBenefits(ctx context.Context) ([]benefit.Benefit, error)
}

// Store holds the benefits read model.
type Store struct {
	backend Backend
	bus     *events.Bus
	log     *logger.Logger

	mu           sync.RWMutex
	catalog      []benefit.Benefit
	userBenefits []benefit.Benefit
	filter       string
	showAll      bool
	loading      bool
	lastErr      string
}

// New creates the store with the default "all" filter. A nil log gets a
// default logger.
func New(backend Backend, bus *events.Bus, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewDefault("benefits-store")
	}
	return &Store{backend: backend, bus: bus, log: log, filter: benefit.FilterAll}
}

// Fetch loads the benefit catalog. On failure the previous catalog is
// retained and the error message is stored.
func (s *Store) Fetch(ctx context.Context) error {
	s.setLoading()

	list, err := s.backend.GetBenefits(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		metrics.StoreError("benefits")
		s.log.WithError(err).Warn("benefits fetch failed")
		return err
	}
	s.catalog = list
	s.lastErr = ""
	return nil
}

// FetchUserBenefits loads the user's claimed benefits.
func (s *Store) FetchUserBenefits(ctx context.Context) error {
	s.setLoading()

	list, err := s.backend.GetUserBenefits(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		metrics.StoreError("benefits")
		s.log.WithError(err).Warn("user benefits fetch failed")
		return err
	}
	s.userBenefits = list
	s.lastErr = ""
	return nil
}

// Claim claims a benefit through the backend and folds the result into the
// local state. A first-time claim appends to the user's benefits exactly once
// and announces the claim on the bus; re-claiming is a no-op that still
// reports the stored record.
func (s *Store) Claim(ctx context.Context, id int64) (benefit.Benefit, bool, error) {
	s.setLoading()

	claimed, newly, err := s.backend.ClaimBenefit(ctx, id)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		metrics.StoreError("benefits")
		s.log.WithError(err).WithField("benefit_id", id).Warn("claim failed")
		return benefit.Benefit{}, false, err
	}

	for i := range s.catalog {
		if s.catalog[i].ID == claimed.ID {
			s.catalog[i] = claimed
			break
		}
	}
	if newly {
		s.userBenefits = append(s.userBenefits, claimed)
	}
	s.lastErr = ""
	s.mu.Unlock()

	if newly && s.bus != nil {
		s.bus.Publish(events.Event{
			Type:    events.TypeBenefitClaimed,
			Message: claimed.Title,
			Metadata: map[string]string{
				"benefit_id": strconv.FormatInt(claimed.ID, 10),
				"title":      claimed.Title,
			},
		})
	}
	return claimed, newly, nil
}

// SetFilter selects the category filter. The catalog itself is untouched;
// Filtered applies the projection.
func (s *Store) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if filter == "" {
		filter = benefit.FilterAll
	}
	s.filter = filter
}

// Filter returns the active category filter.
func (s *Store) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetShowAll toggles between the display window and the full catalog.
func (s *Store) SetShowAll(showAll bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showAll = showAll
}

// Benefits returns a copy of the full catalog.
func (s *Store) Benefits() []benefit.Benefit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]benefit.Benefit, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// UserBenefits returns a copy of the claimed benefits.
func (s *Store) UserBenefits() []benefit.Benefit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]benefit.Benefit, len(s.userBenefits))
	copy(out, s.userBenefits)
	return out
}

// Filtered returns the catalog entries matching the active filter.
func (s *Store) Filtered() []benefit.Benefit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]benefit.Benefit, 0, len(s.catalog))
	for _, b := range s.catalog {
		if b.Matches(s.filter) {
			out = append(out, b)
		}
	}
	return out
}

// Displayed returns the filtered catalog, truncated to DisplayLimit unless
// show-all is set.
func (s *Store) Displayed() []benefit.Benefit {
	filtered := s.Filtered()
	s.mu.RLock()
	showAll := s.showAll
	s.mu.RUnlock()
	if !showAll && len(filtered) > DisplayLimit {
		filtered = filtered[:DisplayLimit]
	}
	return filtered
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
