package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/perkhub/dashboard/internal/app/backend"
)

const sampleCatalog = `
profile:
  id: 2
  name: Priya Sharma
  level: 3
  xp: 1200
  total_points: 6000
benefits:
  - id: 1
    title: Free Coffee
    category: food
    status: active
    cta_text: Grab It
    value: "1 cup"
ledger:
  total_points: 6000
  available_points: 2000
  redeemed_points: 4000
  monthly_points: 300
  progress_percent: 40
latency:
  get_profile: 5
  claim_benefit: 10
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Profile == nil || c.Profile.Name != "Priya Sharma" {
		t.Errorf("profile = %+v", c.Profile)
	}
	if len(c.Benefits) != 1 || c.Benefits[0].Title != "Free Coffee" {
		t.Errorf("benefits = %+v", c.Benefits)
	}
}

func TestLoadCatalogOrDefault(t *testing.T) {
	if c := LoadCatalogOrDefault(""); c.Profile != nil {
		t.Error("blank path should give an empty catalog")
	}
	if c := LoadCatalogOrDefault("/does/not/exist.yaml"); c.Profile != nil {
		t.Error("missing file should give an empty catalog")
	}
}

func TestSeedMergesOverDefaults(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	seed := c.Seed()
	if seed.Profile.Name != "Priya Sharma" || seed.Profile.XP != 1200 {
		t.Errorf("profile = %+v, want override", seed.Profile)
	}
	if len(seed.Benefits) != 1 {
		t.Errorf("benefits = %d entries, want the override list", len(seed.Benefits))
	}
	if seed.Ledger.AvailablePoints != 2000 {
		t.Errorf("available = %d, want 2000", seed.Ledger.AvailablePoints)
	}
	// Balance overrides keep the built-in seed transactions.
	if len(seed.Ledger.Transactions) != 2 {
		t.Errorf("transactions = %d, want the default 2", len(seed.Ledger.Transactions))
	}
}

func TestSeedWithoutOverrides(t *testing.T) {
	seed := Catalog{}.Seed()
	if seed.Profile.Name != "Alex Johnson" || len(seed.Benefits) != 6 {
		t.Errorf("empty catalog should yield the default seed, got %+v", seed.Profile)
	}
}

func TestLatencies(t *testing.T) {
	c, err := LoadCatalog(writeCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Latencies(false); got != (backend.Latencies{}) {
		t.Errorf("latencies with simulation off = %+v, want zero", got)
	}

	got := c.Latencies(true)
	if got.GetProfile != 5*time.Millisecond || got.ClaimBenefit != 10*time.Millisecond {
		t.Errorf("latencies = %+v, want catalog overrides", got)
	}
	if got.GetBenefits != 0 {
		t.Errorf("unset latency = %v, want 0", got.GetBenefits)
	}

	if got := (Catalog{}).Latencies(true); got != backend.DefaultLatencies() {
		t.Errorf("latencies without override = %+v, want defaults", got)
	}
}
