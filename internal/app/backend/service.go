// Package backend implements the mock data service: the single authority over
// profile, benefit catalog and rewards ledger records. Every operation is
// context-aware, applies a configurable artificial latency, and mutates state
// only through the injected record stores. Client stores hold read models that
// mirror the snapshots this service returns.
package backend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/domain/rewards"
	"github.com/perkhub/dashboard/internal/app/metrics"
	"github.com/perkhub/dashboard/internal/app/storage"
	"github.com/perkhub/dashboard/pkg/logger"
)

// Op names a backend operation, used for latency lookup, fault injection and
// metrics labels.
type Op string

const (
	OpGetProfile      Op = "get_profile"
	OpUpdateXP        Op = "update_xp"
	OpGetBenefits     Op = "get_benefits"
	OpClaimBenefit    Op = "claim_benefit"
	OpGetUserBenefits Op = "get_user_benefits"
	OpGetRewards      Op = "get_rewards"
	OpRedeemPoints    Op = "redeem_points"
	OpCreditPoints    Op = "credit_points"
)

var (
	// ErrBenefitNotFound is returned when a benefit id does not exist in the
	// catalog.
	ErrBenefitNotFound = errors.New("benefit not found")
	// ErrInsufficientPoints is returned when a redemption exceeds the
	// available balance.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrInvalidAmount is returned for zero or negative point amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Latencies configures the artificial delay applied per operation.
type Latencies struct {
	GetProfile      time.Duration
	UpdateXP        time.Duration
	GetBenefits     time.Duration
	ClaimBenefit    time.Duration
	GetUserBenefits time.Duration
	GetRewards      time.Duration
	RedeemPoints    time.Duration
	CreditPoints    time.Duration
}

// DefaultLatencies returns the stock per-operation delays.
func DefaultLatencies() Latencies {
	return Latencies{
		GetProfile:      800 * time.Millisecond,
		UpdateXP:        500 * time.Millisecond,
		GetBenefits:     1200 * time.Millisecond,
		ClaimBenefit:    800 * time.Millisecond,
		GetUserBenefits: 600 * time.Millisecond,
		GetRewards:      900 * time.Millisecond,
		RedeemPoints:    1000 * time.Millisecond,
		CreditPoints:    500 * time.Millisecond,
	}
}

func (l Latencies) forOp(op Op) time.Duration {
	switch op {
	case OpGetProfile:
		return l.GetProfile
	case OpUpdateXP:
		return l.UpdateXP
	case OpGetBenefits:
		return l.GetBenefits
	case OpClaimBenefit:
		return l.ClaimBenefit
	case OpGetUserBenefits:
		return l.GetUserBenefits
	case OpGetRewards:
		return l.GetRewards
	case OpRedeemPoints:
		return l.RedeemPoints
	case OpCreditPoints:
		return l.CreditPoints
	}
	return 0
}

// Service is the mock data service. Zero latency by default; call
// WithLatencies to simulate network delay.
type Service struct {
	profiles storage.ProfileRecordStore
	benefits storage.BenefitRecordStore
	ledgers  storage.RewardsRecordStore
	log      *logger.Logger

	latency Latencies

	// mu serializes read-modify-write operations against the record stores.
	mu sync.Mutex

	faults faultSet

	now func() time.Time
}

// New creates the service over the given record stores. A nil log gets a
// default logger.
func New(profiles storage.ProfileRecordStore, benefits storage.BenefitRecordStore, ledgers storage.RewardsRecordStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("backend")
	}
	return &Service{
		profiles: profiles,
		benefits: benefits,
		ledgers:  ledgers,
		log:      log,
		now:      time.Now,
	}
}

// WithLatencies sets the per-operation artificial delay and returns the
// service for chaining.
func (s *Service) WithLatencies(l Latencies) *Service {
	s.latency = l
	return s
}

// begin applies fault injection and latency before an operation runs.
func (s *Service) begin(ctx context.Context, op Op) error {
	if err := s.faults.take(op); err != nil {
		s.log.WithError(err).WithField("op", string(op)).Debug("injected fault")
		return err
	}
	return s.sleep(ctx, s.latency.forOp(op))
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetUserProfile returns a snapshot of the user profile.
func (s *Service) GetUserProfile(ctx context.Context) (profile.UserProfile, error) {
	var zero profile.UserProfile
	if err := s.begin(ctx, OpGetProfile); err != nil {
		metrics.ObserveBackendRequest(string(OpGetProfile), err)
		return zero, err
	}
	p, err := s.profiles.GetProfile(ctx)
	metrics.ObserveBackendRequest(string(OpGetProfile), err)
	return p, err
}

// UpdateUserXP adds xpGained to the stored XP and returns the derived
// progression values. Level and progress are recomputed from the new total:
// one level per 500 XP, progress as the rounded percentage into the current
// level.
func (s *Service) UpdateUserXP(ctx context.Context, xpGained int) (profile.ProgressDelta, error) {
	var zero profile.ProgressDelta
	if xpGained < 0 {
		return zero, fmt.Errorf("xp gained %d: %w", xpGained, ErrInvalidAmount)
	}
	if err := s.begin(ctx, OpUpdateXP); err != nil {
		metrics.ObserveBackendRequest(string(OpUpdateXP), err)
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.profiles.GetProfile(ctx)
	if err != nil {
		metrics.ObserveBackendRequest(string(OpUpdateXP), err)
		return zero, err
	}

	delta := ProgressFor(p.XP + xpGained)
	delta.Merge(&p)
	if _, err := s.profiles.PutProfile(ctx, p); err != nil {
		metrics.ObserveBackendRequest(string(OpUpdateXP), err)
		return zero, err
	}

	s.log.WithField("xp", delta.XP).WithField("level", delta.Level).Debug("profile xp updated")
	metrics.ObserveBackendRequest(string(OpUpdateXP), nil)
	return delta, nil
}

// ProgressFor derives level, progress percentage and XP remaining from a
// total XP value.
func ProgressFor(totalXP int) profile.ProgressDelta {
	into := totalXP % profile.XPPerLevel
	return profile.ProgressDelta{
		XP:              totalXP,
		Level:           totalXP/profile.XPPerLevel + 1,
		ProgressPercent: int(math.Round(float64(into) / profile.XPPerLevel * 100)),
		XPToNext:        profile.XPPerLevel - into,
	}
}

// GetBenefits returns an independent copy of the benefit catalog.
func (s *Service) GetBenefits(ctx context.Context) ([]benefit.Benefit, error) {
	if err := s.begin(ctx, OpGetBenefits); err != nil {
		metrics.ObserveBackendRequest(string(OpGetBenefits), err)
		return nil, err
	}
	list, err := s.benefits.ListBenefits(ctx)
	metrics.ObserveBackendRequest(string(OpGetBenefits), err)
	return list, err
}

// ClaimBenefit marks a benefit as claimed. The first claim stamps the claim
// time and reports newlyClaimed=true. Claiming an already-claimed benefit is
// a no-op that returns the stored record with newlyClaimed=false.
func (s *Service) ClaimBenefit(ctx context.Context, id int64) (benefit.Benefit, bool, error) {
	var zero benefit.Benefit
	if err := s.begin(ctx, OpClaimBenefit); err != nil {
		metrics.ObserveBackendRequest(string(OpClaimBenefit), err)
		return zero, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.benefits.GetBenefit(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			err = fmt.Errorf("benefit %d: %w", id, ErrBenefitNotFound)
		}
		metrics.ObserveBackendRequest(string(OpClaimBenefit), err)
		return zero, false, err
	}

	if b.Claimed {
		metrics.ObserveBackendRequest(string(OpClaimBenefit), nil)
		return b, false, nil
	}

	b.Claimed = true
	b.ClaimedAt = s.now().UTC()
	if _, err := s.benefits.PutBenefit(ctx, b); err != nil {
		metrics.ObserveBackendRequest(string(OpClaimBenefit), err)
		return zero, false, err
	}

	s.log.WithField("benefit_id", id).Info("benefit claimed")
	metrics.ObserveBackendRequest(string(OpClaimBenefit), nil)
	metrics.BenefitClaimed()
	return b, true, nil
}

// GetUserBenefits returns the benefits the user has claimed.
func (s *Service) GetUserBenefits(ctx context.Context) ([]benefit.Benefit, error) {
	if err := s.begin(ctx, OpGetUserBenefits); err != nil {
		metrics.ObserveBackendRequest(string(OpGetUserBenefits), err)
		return nil, err
	}

	list, err := s.benefits.ListBenefits(ctx)
	if err != nil {
		metrics.ObserveBackendRequest(string(OpGetUserBenefits), err)
		return nil, err
	}

	claimed := make([]benefit.Benefit, 0, len(list))
	for _, b := range list {
		if b.Claimed {
			claimed = append(claimed, b)
		}
	}
	metrics.ObserveBackendRequest(string(OpGetUserBenefits), nil)
	return claimed, nil
}

// GetRewardsData returns a snapshot of the rewards ledger.
func (s *Service) GetRewardsData(ctx context.Context) (rewards.Ledger, error) {
	var zero rewards.Ledger
	if err := s.begin(ctx, OpGetRewards); err != nil {
		metrics.ObserveBackendRequest(string(OpGetRewards), err)
		return zero, err
	}
	l, err := s.ledgers.GetLedger(ctx)
	metrics.ObserveBackendRequest(string(OpGetRewards), err)
	return l, err
}

// RedeemPoints deducts amount from the available balance, raises the redeemed
// total, records a redemption transaction and returns the updated ledger. The
// ledger is left untouched when the balance is insufficient.
func (s *Service) RedeemPoints(ctx context.Context, amount int, description string) (rewards.Ledger, error) {
	var zero rewards.Ledger
	if amount <= 0 {
		return zero, fmt.Errorf("redeem %d: %w", amount, ErrInvalidAmount)
	}
	if err := s.begin(ctx, OpRedeemPoints); err != nil {
		metrics.ObserveBackendRequest(string(OpRedeemPoints), err)
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledgers.GetLedger(ctx)
	if err != nil {
		metrics.ObserveBackendRequest(string(OpRedeemPoints), err)
		return zero, err
	}

	if amount > l.AvailablePoints {
		err := fmt.Errorf("redeem %d with %d available: %w", amount, l.AvailablePoints, ErrInsufficientPoints)
		metrics.ObserveBackendRequest(string(OpRedeemPoints), err)
		return zero, err
	}

	if description == "" {
		description = "Points redemption"
	}

	l.AvailablePoints -= amount
	l.RedeemedPoints += amount
	l.Prepend(rewards.NewTransaction(rewards.KindRedeemed, amount, description, s.now()))

	if _, err := s.ledgers.PutLedger(ctx, l); err != nil {
		metrics.ObserveBackendRequest(string(OpRedeemPoints), err)
		return zero, err
	}

	s.log.WithField("amount", amount).Info("points redeemed")
	metrics.ObserveBackendRequest(string(OpRedeemPoints), nil)
	metrics.PointsRedeemed(amount)
	return l, nil
}

// CreditPoints adds amount to the available, total and monthly balances,
// recomputes the monthly goal progress, records an earned transaction and
// returns the updated ledger.
func (s *Service) CreditPoints(ctx context.Context, amount int, description string) (rewards.Ledger, error) {
	var zero rewards.Ledger
	if amount <= 0 {
		return zero, fmt.Errorf("credit %d: %w", amount, ErrInvalidAmount)
	}
	if err := s.begin(ctx, OpCreditPoints); err != nil {
		metrics.ObserveBackendRequest(string(OpCreditPoints), err)
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledgers.GetLedger(ctx)
	if err != nil {
		metrics.ObserveBackendRequest(string(OpCreditPoints), err)
		return zero, err
	}

	l.AvailablePoints += amount
	l.TotalPoints += amount
	l.MonthlyPoints += amount
	l.ProgressPercent = rewards.GoalProgress(l.TotalPoints)
	l.Prepend(rewards.NewTransaction(rewards.KindEarned, amount, description, s.now()))

	if _, err := s.ledgers.PutLedger(ctx, l); err != nil {
		metrics.ObserveBackendRequest(string(OpCreditPoints), err)
		return zero, err
	}

	s.log.WithField("amount", amount).Info("points credited")
	metrics.ObserveBackendRequest(string(OpCreditPoints), nil)
	metrics.PointsEarned(amount)
	return l, nil
}
