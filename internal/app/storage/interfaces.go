// Package storage defines the record-store interfaces the backend service
// depends on. Implementations live in subpackages; the composition root picks
// one and passes it down, so no package-level singleton holds state.
package storage

import (
	"context"
	"errors"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/domain/rewards"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ProfileRecordStore persists the single user profile record.
type ProfileRecordStore interface {
	GetProfile(ctx context.Context) (profile.UserProfile, error)
	PutProfile(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error)
}

// BenefitRecordStore persists the benefit catalog.
type BenefitRecordStore interface {
	ListBenefits(ctx context.Context) ([]benefit.Benefit, error)
	GetBenefit(ctx context.Context, id int64) (benefit.Benefit, error)
	PutBenefit(ctx context.Context, b benefit.Benefit) (benefit.Benefit, error)
}

// RewardsRecordStore persists the points ledger.
type RewardsRecordStore interface {
	GetLedger(ctx context.Context) (rewards.Ledger, error)
	PutLedger(ctx context.Context, l rewards.Ledger) (rewards.Ledger, error)
}

// PreferenceStore holds the single durable theme preference key. Load reports
// whether a value was present so callers can fall back to a default.
type PreferenceStore interface {
	Load() (value string, present bool, err error)
	Save(value string) error
}
