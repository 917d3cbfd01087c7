package app

import (
	"context"

	"github.com/perkhub/dashboard/internal/app/backend"
	"github.com/perkhub/dashboard/internal/app/domain/theme"
	"github.com/perkhub/dashboard/internal/app/effects"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/services/benefits"
	profilestore "github.com/perkhub/dashboard/internal/app/services/profile"
	rewardstore "github.com/perkhub/dashboard/internal/app/services/rewards"
	themestore "github.com/perkhub/dashboard/internal/app/services/theme"
	"github.com/perkhub/dashboard/internal/app/storage"
	"github.com/perkhub/dashboard/internal/app/storage/memory"
	"github.com/perkhub/dashboard/internal/app/system"
	"github.com/perkhub/dashboard/pkg/logger"
)

// Options configures the application wiring.
type Options struct {
	// Latencies applied by the mock backend. Zero means no artificial delay.
	Latencies backend.Latencies
	// DefaultTheme applies when no preference has been persisted.
	DefaultTheme theme.Mode
	// EventBufferSize bounds the event bus ring. Zero picks the bus default.
	EventBufferSize int
	// ThemeApplier, when set, receives every theme change.
	ThemeApplier themestore.Applier
}

// Stores lets callers inject record stores. Nil fields default to the seeded
// in-memory implementations.
type Stores struct {
	Profiles    storage.ProfileRecordStore
	Benefits    storage.BenefitRecordStore
	Ledgers     storage.RewardsRecordStore
	Preferences storage.PreferenceStore
}

// Application is the composition root: the mock backend, the event bus, the
// four client stores and the effects coordinator, wired together.
type Application struct {
	Backend  *backend.Service
	Bus      *events.Bus
	Profile  *profilestore.Store
	Benefits *benefits.Store
	Rewards  *rewardstore.Store
	Theme    *themestore.Store

	log     *logger.Logger
	manager *system.Manager
}

// New wires the application. A nil log gets a default logger.
func New(opts Options, stores Stores, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}

	if stores.Profiles == nil || stores.Benefits == nil || stores.Ledgers == nil {
		mem := memory.New()
		if stores.Profiles == nil {
			stores.Profiles = mem
		}
		if stores.Benefits == nil {
			stores.Benefits = mem
		}
		if stores.Ledgers == nil {
			stores.Ledgers = mem
		}
	}
	if stores.Preferences == nil {
		stores.Preferences = memory.NewPrefs()
	}

	bus := events.NewBus(opts.EventBufferSize)

	svc := backend.New(stores.Profiles, stores.Benefits, stores.Ledgers, log.WithField("service", "backend")).
		WithLatencies(opts.Latencies)

	app := &Application{
		Backend:  svc,
		Bus:      bus,
		Profile:  profilestore.New(svc, bus, log.WithField("store", "profile")),
		Benefits: benefits.New(svc, bus, log.WithField("store", "benefits")),
		Rewards:  rewardstore.New(svc, bus, log.WithField("store", "rewards")),
		Theme: themestore.New(stores.Preferences, opts.DefaultTheme, bus, log.WithField("store", "theme")).
			WithApplier(opts.ThemeApplier),
		log:     log,
		manager: system.NewManager(),
	}

	coordinator := effects.NewCoordinator(bus, app.Rewards, log.WithField("service", "effects"))
	if err := app.manager.Register(coordinator); err != nil {
		return nil, err
	}

	return app, nil
}

// Start brings up the lifecycle-managed services.
func (a *Application) Start(ctx context.Context) error {
	if err := a.manager.Start(ctx); err != nil {
		return err
	}
	a.log.Info("application started")
	return nil
}

// Stop shuts the services down in reverse order.
func (a *Application) Stop(ctx context.Context) error {
	err := a.manager.Stop(ctx)
	a.log.Info("application stopped")
	return err
}
