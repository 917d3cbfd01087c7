// Package app provides the composition layer for the rewards dashboard core.
//
// # Architecture Role
//
// The app package wires the mock data service, the client-side stores and the
// cross-store effects into one Application value. It holds no business rules
// itself - those live in the backend service and the store packages below it.
//
// # Package Structure
//
//	internal/app/
//	├── application.go      # Application struct, wiring, and lifecycle
//	├── domain/             # Domain models (pure data structures)
//	│   ├── profile/        # User profile and progression
//	│   ├── benefit/        # Benefit catalog entries, status styling
//	│   ├── rewards/        # Points ledger and transactions
//	│   └── theme/          # Theme mode enum
//	├── storage/            # Record store interfaces and implementations
//	│   ├── interfaces.go   # ProfileRecordStore, BenefitRecordStore, ...
//	│   ├── memory/         # Seeded in-memory implementation
//	│   └── themefile/      # File-backed theme preference
//	├── backend/            # Mock data service: latency, faults, all mutation
//	├── services/           # Client stores (profile, benefits, rewards, theme)
//	├── effects/            # Cross-store coordination over the event bus
//	├── events/             # In-process ring-buffer event bus
//	├── system/             # Service lifecycle contract and manager
//	└── metrics/            # Prometheus collectors
//
// # Data Flow
//
// Stores never mutate records and never call each other. Every mutation goes
// through the backend service, which returns a snapshot the store mirrors.
// Reactions that span stores (a claimed benefit awarding bonus points) are
// event subscriptions registered by the effects coordinator.
package app
