// Package benefit defines the claimable benefit domain model.
package benefit

import "time"

// Status classifies how a benefit is surfaced to the user. The set is open
// ended; unknown values are carried through untouched.
type Status string

const (
	StatusActive  Status = "active"
	StatusPremium Status = "premium"
	StatusLimited Status = "limited"
	StatusNew     Status = "new"
	StatusHealth  Status = "health"
)

// FilterAll is the filter value that matches every status.
const FilterAll = "all"

// Benefit is a claimable perk/offer record. ClaimedAt is non-zero iff Claimed
// is true; the unclaimed -> claimed transition happens at most once.
type Benefit struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	CTAText     string    `json:"cta_text"`
	Value       string    `json:"value"`
	Claimed     bool      `json:"claimed"`
	ClaimedAt   time.Time `json:"claimed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Matches reports whether the benefit passes the given status filter.
func (b Benefit) Matches(filter string) bool {
	return filter == FilterAll || string(b.Status) == filter
}
