// Package testutil provides shared test doubles for the record stores.
package testutil

import (
	"context"
	"sync"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/domain/rewards"
	"github.com/perkhub/dashboard/internal/app/storage/memory"
)

// FaultyStore wraps the in-memory record store and fails selected methods on
// demand, for exercising persistence error paths.
type FaultyStore struct {
	*memory.Store

	mu       sync.Mutex
	failures map[string]error
}

// NewFaultyStore creates a faulty store over the given seed.
func NewFaultyStore(seed memory.Seed) *FaultyStore {
	return &FaultyStore{
		Store:    memory.NewWithSeed(seed),
		failures: make(map[string]error),
	}
}

// Fail makes every call of the named method return err until Clear.
func (f *FaultyStore) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method] = err
}

// Clear removes the failure for the named method.
func (f *FaultyStore) Clear(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failures, method)
}

func (f *FaultyStore) failure(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[method]
}

func (f *FaultyStore) GetProfile(ctx context.Context) (profile.UserProfile, error) {
	if err := f.failure("GetProfile"); err != nil {
		return profile.UserProfile{}, err
	}
	return f.Store.GetProfile(ctx)
}

func (f *FaultyStore) PutProfile(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	if err := f.failure("PutProfile"); err != nil {
		return profile.UserProfile{}, err
	}
	return f.Store.PutProfile(ctx, p)
}

func (f *FaultyStore) ListBenefits(ctx context.Context) ([]benefit.Benefit, error) {
	if err := f.failure("ListBenefits"); err != nil {
		return nil, err
	}
	return f.Store.ListBenefits(ctx)
}

func (f *FaultyStore) GetBenefit(ctx context.Context, id int64) (benefit.Benefit, error) {
	if err := f.failure("GetBenefit"); err != nil {
		return benefit.Benefit{}, err
	}
	return f.Store.GetBenefit(ctx, id)
}

func (f *FaultyStore) PutBenefit(ctx context.Context, b benefit.Benefit) (benefit.Benefit, error) {
	if err := f.failure("PutBenefit"); err != nil {
		return benefit.Benefit{}, err
	}
	return f.Store.PutBenefit(ctx, b)
}

func (f *FaultyStore) GetLedger(ctx context.Context) (rewards.Ledger, error) {
	if err := f.failure("GetLedger"); err != nil {
		return rewards.Ledger{}, err
	}
	return f.Store.GetLedger(ctx)
}

func (f *FaultyStore) PutLedger(ctx context.Context, l rewards.Ledger) (rewards.Ledger, error) {
	if err := f.failure("PutLedger"); err != nil {
		return rewards.Ledger{}, err
	}
	return f.Store.PutLedger(ctx, l)
}
