// Command dashboard runs a demo session against the seeded in-memory backend:
// it loads the profile, catalog and ledger, claims a benefit, redeems points
// and prints the resulting state.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/perkhub/dashboard/internal/app"
	"github.com/perkhub/dashboard/internal/app/backend"
	"github.com/perkhub/dashboard/internal/app/domain/theme"
	"github.com/perkhub/dashboard/internal/app/storage/memory"
	"github.com/perkhub/dashboard/internal/app/storage/themefile"
	"github.com/perkhub/dashboard/internal/config"
	"github.com/perkhub/dashboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("dashboard", cfg.LogLevel)
	catalog := config.LoadCatalogOrDefault(cfg.CatalogPath)
	records := memory.NewWithSeed(catalog.Seed())

	application, err := app.New(app.Options{
		Latencies:       catalog.Latencies(cfg.SimulateLatency),
		DefaultTheme:    theme.Mode(cfg.DefaultTheme),
		EventBufferSize: cfg.EventBufferSize,
		ThemeApplier: func(m theme.Mode) {
			log.WithField("mode", string(m)).Info("theme applied")
		},
	}, app.Stores{
		Profiles:    records,
		Benefits:    records,
		Ledgers:     records,
		Preferences: themefile.New(cfg.ThemePath),
	}, log)
	if err != nil {
		log.WithError(err).Error("wiring failed")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.WithError(err).Error("start failed")
		os.Exit(1)
	}
	defer func() {
		if err := application.Stop(context.Background()); err != nil {
			log.WithError(err).Warn("shutdown reported errors")
		}
	}()

	if err := run(ctx, application, log); err != nil {
		log.WithError(err).Error("demo session failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.Application, log *logger.Logger) error {
	if err := a.Profile.Fetch(ctx); err != nil {
		return err
	}
	if err := a.Benefits.Fetch(ctx); err != nil {
		return err
	}
	if err := a.Rewards.Fetch(ctx); err != nil {
		return err
	}

	p, _ := a.Profile.Profile()
	log.WithField("user", p.Name).WithField("level", p.Level).Info("profile loaded")

	claimed, newly, err := a.Benefits.Claim(ctx, 1)
	if err != nil {
		return err
	}
	log.WithField("benefit", claimed.Title).WithField("first_claim", newly).Info("benefit claimed")

	if err := a.Rewards.Redeem(ctx, 500, "Demo redemption"); err != nil {
		return err
	}

	if _, err := a.Theme.Toggle(); err != nil {
		log.WithError(err).Warn("theme toggle failed")
	}

	ledger, _ := a.Rewards.Ledger()
	out := backend.OK(struct {
		Available int    `json:"available_points"`
		Total     int    `json:"total_points"`
		Monthly   int    `json:"monthly_points"`
		Theme     string `json:"theme"`
	}{
		Available: ledger.AvailablePoints,
		Total:     ledger.TotalPoints,
		Monthly:   ledger.MonthlyPoints,
		Theme:     string(a.Theme.Mode()),
	}, "demo session complete")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
