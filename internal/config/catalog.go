package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/perkhub/dashboard/internal/app/backend"
	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/storage/memory"
)

// Catalog is the optional YAML override for the seeded records and latency
// simulation. Absent sections keep the built-in seed.
type Catalog struct {
	Profile  *ProfileRecord  `yaml:"profile"`
	Benefits []BenefitRecord `yaml:"benefits"`
	Ledger   *LedgerRecord   `yaml:"ledger"`
	Latency  *LatencyMS      `yaml:"latency"`
}

// ProfileRecord seeds the user profile.
type ProfileRecord struct {
	ID              int64  `yaml:"id"`
	Name            string `yaml:"name"`
	Avatar          string `yaml:"avatar"`
	Level           int    `yaml:"level"`
	XP              int    `yaml:"xp"`
	ProgressPercent int    `yaml:"progress_percent"`
	XPToNext        int    `yaml:"xp_to_next"`
	TotalPoints     int    `yaml:"total_points"`
	RedeemedPoints  int    `yaml:"redeemed_points"`
	MonthlyPoints   int    `yaml:"monthly_points"`
}

// BenefitRecord seeds one catalog entry.
type BenefitRecord struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
	CTAText     string `yaml:"cta_text"`
	Value       string `yaml:"value"`
	Claimed     bool   `yaml:"claimed"`
}

// LedgerRecord seeds the rewards balances. The built-in seed transactions are
// kept.
type LedgerRecord struct {
	TotalPoints     int     `yaml:"total_points"`
	AvailablePoints int     `yaml:"available_points"`
	RedeemedPoints  int     `yaml:"redeemed_points"`
	MonthlyPoints   int     `yaml:"monthly_points"`
	ProgressPercent float64 `yaml:"progress_percent"`
}

// LatencyMS overrides the per-operation artificial delay, in milliseconds.
type LatencyMS struct {
	GetProfile      int `yaml:"get_profile"`
	UpdateXP        int `yaml:"update_xp"`
	GetBenefits     int `yaml:"get_benefits"`
	ClaimBenefit    int `yaml:"claim_benefit"`
	GetUserBenefits int `yaml:"get_user_benefits"`
	GetRewards      int `yaml:"get_rewards"`
	RedeemPoints    int `yaml:"redeem_points"`
	CreditPoints    int `yaml:"credit_points"`
}

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadCatalogOrDefault returns the parsed catalog, or an empty one when path
// is blank or the file is missing.
func LoadCatalogOrDefault(path string) Catalog {
	if path == "" {
		return Catalog{}
	}
	c, err := LoadCatalog(path)
	if err != nil {
		return Catalog{}
	}
	return c
}

// Seed merges the catalog over the built-in seed.
func (c Catalog) Seed() memory.Seed {
	seed := memory.DefaultSeed()

	if c.Profile != nil {
		p := c.Profile
		seed.Profile.ID = p.ID
		seed.Profile.Name = p.Name
		seed.Profile.Avatar = p.Avatar
		seed.Profile.Level = p.Level
		seed.Profile.XP = p.XP
		seed.Profile.ProgressPercent = p.ProgressPercent
		seed.Profile.XPToNext = p.XPToNext
		seed.Profile.TotalPoints = p.TotalPoints
		seed.Profile.RedeemedPoints = p.RedeemedPoints
		seed.Profile.MonthlyPoints = p.MonthlyPoints
	}

	if len(c.Benefits) > 0 {
		list := make([]benefit.Benefit, 0, len(c.Benefits))
		for _, b := range c.Benefits {
			list = append(list, benefit.Benefit{
				ID:          b.ID,
				Title:       b.Title,
				Description: b.Description,
				Icon:        b.Icon,
				Category:    b.Category,
				Status:      benefit.Status(b.Status),
				CTAText:     b.CTAText,
				Value:       b.Value,
				Claimed:     b.Claimed,
				CreatedAt:   time.Now().UTC(),
			})
		}
		seed.Benefits = list
	}

	if c.Ledger != nil {
		l := c.Ledger
		seed.Ledger.TotalPoints = l.TotalPoints
		seed.Ledger.AvailablePoints = l.AvailablePoints
		seed.Ledger.RedeemedPoints = l.RedeemedPoints
		seed.Ledger.MonthlyPoints = l.MonthlyPoints
		seed.Ledger.ProgressPercent = l.ProgressPercent
	}

	return seed
}

// Latencies resolves the effective backend latencies: zero when simulation is
// off, the catalog override when present, defaults otherwise.
func (c Catalog) Latencies(simulate bool) backend.Latencies {
	if !simulate {
		return backend.Latencies{}
	}
	if c.Latency == nil {
		return backend.DefaultLatencies()
	}
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return backend.Latencies{
		GetProfile:      ms(c.Latency.GetProfile),
		UpdateXP:        ms(c.Latency.UpdateXP),
		GetBenefits:     ms(c.Latency.GetBenefits),
		ClaimBenefit:    ms(c.Latency.ClaimBenefit),
		GetUserBenefits: ms(c.Latency.GetUserBenefits),
		GetRewards:      ms(c.Latency.GetRewards),
		RedeemPoints:    ms(c.Latency.RedeemPoints),
		CreditPoints:    ms(c.Latency.CreditPoints),
	}
}
