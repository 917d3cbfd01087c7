package theme

import (
	"testing"

	domain "github.com/perkhub/dashboard/internal/app/domain/theme"
	"github.com/perkhub/dashboard/internal/app/events"
	"github.com/perkhub/dashboard/internal/app/storage/memory"
)

func TestDefaultsToLight(t *testing.T) {
	store := New(memory.NewPrefs(), domain.ModeLight, nil, nil)
	if store.Mode() != domain.ModeLight {
		t.Errorf("mode = %q, want light", store.Mode())
	}
}

func TestInvalidDefaultFallsBack(t *testing.T) {
	store := New(memory.NewPrefs(), domain.Mode("sepia"), nil, nil)
	if store.Mode() != domain.ModeLight {
		t.Errorf("mode = %q, want light fallback", store.Mode())
	}
}

func TestSetModePersistsAndRestores(t *testing.T) {
	prefs := memory.NewPrefs()

	store := New(prefs, domain.ModeLight, nil, nil)
	if err := store.SetMode(domain.ModeDark); err != nil {
		t.Fatalf("set mode: %v", err)
	}

	restored := New(prefs, domain.ModeLight, nil, nil)
	if restored.Mode() != domain.ModeDark {
		t.Errorf("restored mode = %q, want dark", restored.Mode())
	}
}

func TestSetModeRejectsInvalid(t *testing.T) {
	store := New(memory.NewPrefs(), domain.ModeLight, nil, nil)
	if err := store.SetMode(domain.Mode("sepia")); err == nil {
		t.Error("invalid mode should be rejected")
	}
	if store.Mode() != domain.ModeLight {
		t.Error("invalid mode must not change state")
	}
}

func TestInvalidStoredValueIgnored(t *testing.T) {
	prefs := memory.NewPrefs()
	if err := prefs.Save("sepia"); err != nil {
		t.Fatal(err)
	}

	store := New(prefs, domain.ModeDark, nil, nil)
	if store.Mode() != domain.ModeDark {
		t.Errorf("mode = %q, want configured default when stored value is invalid", store.Mode())
	}
}

func TestToggle(t *testing.T) {
	bus := events.NewBus(8)
	store := New(memory.NewPrefs(), domain.ModeLight, bus, nil)

	next, err := store.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != domain.ModeDark || store.Mode() != domain.ModeDark {
		t.Errorf("toggle = %q, want dark", next)
	}

	if next, _ = store.Toggle(); next != domain.ModeLight {
		t.Errorf("second toggle = %q, want light", next)
	}

	if got := bus.RecentByType(events.TypeThemeChanged, 10); len(got) != 2 {
		t.Errorf("theme events = %d, want 2", len(got))
	}
}

func TestApplierReceivesChanges(t *testing.T) {
	var applied []domain.Mode
	store := New(memory.NewPrefs(), domain.ModeLight, nil, nil).
		WithApplier(func(m domain.Mode) { applied = append(applied, m) })

	if err := store.SetMode(domain.ModeDark); err != nil {
		t.Fatalf("set mode: %v", err)
	}

	// Once on registration with the restored mode, once for the change.
	if len(applied) != 2 || applied[0] != domain.ModeLight || applied[1] != domain.ModeDark {
		t.Errorf("applied = %v, want [light dark]", applied)
	}
}
