// Package effects hosts cross-store coordination. Stores never call each
// other; reactions to one store's events are wired here as lifecycle-managed
// subscribers.
package effects

import (
	"context"
	"time"

	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/system"
	"github.com/perkhub/dashboard/pkg/logger"
)

// ClaimBonusPoints is the fixed credit awarded for a first-time benefit
// claim.
const ClaimBonusPoints = 100

const creditTimeout = 30 * time.Second

// PointsCreditor is the slice of the rewards store the coordinator needs.
type PointsCreditor interface {
	AddPoints(ctx context.Context, amount int, description string) error
}

// Coordinator credits reward points when a benefit is claimed for the first
// time. It subscribes to the event bus at Start and unsubscribes at Stop.
type Coordinator struct {
	bus         *events.Bus
	rewards     PointsCreditor
	log         *logger.Logger
	unsubscribe func()
}

var _ system.Service = (*Coordinator)(nil)

// NewCoordinator creates the coordinator. A nil log gets a default logger.
func NewCoordinator(bus *events.Bus, rewards PointsCreditor, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewDefault("effects-coordinator")
	}
	return &Coordinator{bus: bus, rewards: rewards, log: log}
}

func (c *Coordinator) Name() string { return "effects-coordinator" }

// Start subscribes to claim events. Only first-time claims are published, so
// re-claims never produce a second credit.
func (c *Coordinator) Start(context.Context) error {
	c.unsubscribe = c.bus.SubscribeType(events.TypeBenefitClaimed, c.onClaim)
	c.log.Info("claim bonus coordinator started")
	return nil
}

// Stop unsubscribes from the bus.
func (c *Coordinator) Stop(context.Context) error {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	return nil
}

func (c *Coordinator) onClaim(e events.Event) {
	title := e.Metadata["title"]
	if title == "" {
		title = e.Message
	}

	ctx, cancel := context.WithTimeout(context.Background(), creditTimeout)
	defer cancel()

	if err := c.rewards.AddPoints(ctx, ClaimBonusPoints, "Claimed: "+title); err != nil {
		c.log.WithError(err).WithField("benefit", title).Error("claim bonus credit failed")
		return
	}
	c.log.WithField("benefit", title).WithField("amount", ClaimBonusPoints).Info("claim bonus credited")
}
