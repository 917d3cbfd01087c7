package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/storage"
)

func TestSeedContents(t *testing.T) {
	store := New()
	ctx := context.Background()

	p, err := store.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.Name != "Alex Johnson" || p.Level != 7 {
		t.Errorf("profile = %+v, want seeded values", p)
	}

	list, err := store.ListBenefits(ctx)
	if err != nil {
		t.Fatalf("list benefits: %v", err)
	}
	if len(list) != 6 {
		t.Errorf("catalog size = %d, want 6", len(list))
	}

	l, err := store.GetLedger(ctx)
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	if l.AvailablePoints != 4250 || len(l.Transactions) != 2 {
		t.Errorf("ledger = %+v, want seeded balances and transactions", l)
	}
}

func TestGetBenefitNotFound(t *testing.T) {
	store := New()

	_, err := store.GetBenefit(context.Background(), 404)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want storage.ErrNotFound", err)
	}
}

func TestPutBenefitIsUpdateOnly(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.PutBenefit(ctx, benefit.Benefit{ID: 404}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want storage.ErrNotFound for unknown id", err)
	}

	b, err := store.GetBenefit(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	b.Claimed = true
	if _, err := store.PutBenefit(ctx, b); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.GetBenefit(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Claimed {
		t.Error("update did not persist")
	}
}

func TestListBenefitsReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()

	list, err := store.ListBenefits(ctx)
	if err != nil {
		t.Fatal(err)
	}
	list[0].Title = "mutated"

	fresh, err := store.ListBenefits(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fresh[0].Title == "mutated" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestLedgerCloneOnReadAndWrite(t *testing.T) {
	store := New()
	ctx := context.Background()

	l, err := store.GetLedger(ctx)
	if err != nil {
		t.Fatal(err)
	}
	l.Transactions[0].Description = "mutated"

	fresh, err := store.GetLedger(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Transactions[0].Description == "mutated" {
		t.Error("caller mutation leaked into the stored ledger")
	}
}
