package system

import (
	"context"
	"errors"
	"testing"
)

type probeService struct {
	name     string
	startErr error
	started  bool
	stopped  bool
	order    *[]string
}

func (p *probeService) Name() string { return p.name }

func (p *probeService) Start(context.Context) error {
	if p.startErr != nil {
		return p.startErr
	}
	p.started = true
	if p.order != nil {
		*p.order = append(*p.order, "start:"+p.name)
	}
	return nil
}

func (p *probeService) Stop(context.Context) error {
	p.stopped = true
	if p.order != nil {
		*p.order = append(*p.order, "stop:"+p.name)
	}
	return nil
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	m := NewManager()
	if err := m.Register(&probeService{name: "a"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := m.Register(&probeService{name: "a"}); err == nil {
		t.Error("duplicate name should be rejected")
	}
}

func TestStartFailFastStopsStarted(t *testing.T) {
	m := NewManager()
	first := &probeService{name: "first"}
	broken := &probeService{name: "broken", startErr: errors.New("boom")}

	if err := m.Register(first); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(broken); err != nil {
		t.Fatal(err)
	}

	if err := m.Start(context.Background()); err == nil {
		t.Fatal("start should propagate the failure")
	}
	if !first.stopped {
		t.Error("already-started service should be stopped on failure")
	}
}

func TestStopReverseOrder(t *testing.T) {
	m := NewManager()
	var order []string
	a := &probeService{name: "a", order: &order}
	b := &probeService{name: "b", order: &order}

	if err := m.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(b); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestNoopServiceLifecycle(t *testing.T) {
	m := NewManager()
	svc := NoopService{ServiceName: "placeholder"}

	if svc.Name() != "placeholder" {
		t.Errorf("name = %q, want placeholder", svc.Name())
	}
	if err := m.Register(svc); err != nil {
		t.Fatalf("register: %v", err)
	}

	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	m := NewManager()
	if err := m.Register(&probeService{name: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Stop(context.Background()); err != nil {
		t.Errorf("stop before start: %v", err)
	}
}
