package events

import (
	"testing"
)

func TestPublishAssignsIDAndTimestamp(t *testing.T) {
	bus := NewBus(8)
	bus.Publish(Event{Type: TypeThemeChanged})

	recent := bus.Recent(1)
	if len(recent) != 1 {
		t.Fatalf("recent length = %d, want 1", len(recent))
	}
	if recent[0].ID == "" || recent[0].Timestamp.IsZero() {
		t.Errorf("event %+v missing id or timestamp", recent[0])
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	bus := NewBus(8)

	var seen []Event
	unsubscribe := bus.Subscribe(func(e Event) { seen = append(seen, e) })

	bus.Publish(Event{Type: TypeBenefitClaimed})
	if len(seen) != 1 {
		t.Fatalf("handler saw %d events, want 1", len(seen))
	}

	unsubscribe()
	bus.Publish(Event{Type: TypeBenefitClaimed})
	if len(seen) != 1 {
		t.Errorf("handler saw %d events after unsubscribe, want 1", len(seen))
	}
}

func TestSubscribeTypeFilters(t *testing.T) {
	bus := NewBus(8)

	var claims int
	bus.SubscribeType(TypeBenefitClaimed, func(Event) { claims++ })

	bus.Publish(Event{Type: TypeBenefitClaimed})
	bus.Publish(Event{Type: TypePointsCredited})
	bus.Publish(Event{Type: TypeBenefitClaimed})

	if claims != 2 {
		t.Errorf("claims = %d, want 2", claims)
	}
}

func TestRecentOrderAndWrap(t *testing.T) {
	bus := NewBus(3)

	for _, msg := range []string{"a", "b", "c", "d"} {
		bus.Publish(Event{Type: TypeProfileUpdated, Message: msg})
	}

	recent := bus.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("recent length = %d, want buffer size 3", len(recent))
	}
	want := []string{"d", "c", "b"}
	for i, e := range recent {
		if e.Message != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, e.Message, want[i])
		}
	}
}

func TestRecentByType(t *testing.T) {
	bus := NewBus(8)
	bus.Publish(Event{Type: TypeBenefitClaimed, Message: "first"})
	bus.Publish(Event{Type: TypeThemeChanged, Message: "noise"})
	bus.Publish(Event{Type: TypeBenefitClaimed, Message: "second"})

	claims := bus.RecentByType(TypeBenefitClaimed, 10)
	if len(claims) != 2 {
		t.Fatalf("claims = %d, want 2", len(claims))
	}
	if claims[0].Message != "second" || claims[1].Message != "first" {
		t.Errorf("order = %q,%q want second,first", claims[0].Message, claims[1].Message)
	}
}
