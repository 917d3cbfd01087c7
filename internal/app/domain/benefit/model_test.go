package benefit

import "testing"

func TestMatches(t *testing.T) {
	b := Benefit{Status: StatusPremium}

	if !b.Matches(FilterAll) {
		t.Error("every benefit should match the all filter")
	}
	if !b.Matches("premium") {
		t.Error("benefit should match its own status")
	}
	if b.Matches("active") {
		t.Error("benefit should not match a different status")
	}
}

func TestStyleFor(t *testing.T) {
	for _, status := range []Status{StatusActive, StatusPremium, StatusLimited, StatusNew, StatusHealth} {
		s := StyleFor(status)
		if s.Label == "" || s.BadgeClass == "" {
			t.Errorf("StyleFor(%q) returned incomplete style %+v", status, s)
		}
	}

	// Unknown statuses fall back to a usable default instead of panicking.
	def := StyleFor(Status("mystery"))
	if def.Label == "" {
		t.Error("unknown status should map to the default style")
	}
}
