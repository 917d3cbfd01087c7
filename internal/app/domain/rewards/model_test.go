package rewards

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(7500); got != 50 {
		t.Errorf("GoalProgress(7500) = %v, want 50", got)
	}
	if got := GoalProgress(20000); got != 100 {
		t.Errorf("GoalProgress(20000) = %v, want capped at 100", got)
	}
	if got := GoalProgress(0); got != 0 {
		t.Errorf("GoalProgress(0) = %v, want 0", got)
	}
}

func TestPrependCapsLog(t *testing.T) {
	var l Ledger
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < TransactionCap+3; i++ {
		l.Prepend(NewTransaction(KindEarned, 10, "credit", base.Add(time.Duration(i)*time.Second)))
	}

	if len(l.Transactions) != TransactionCap {
		t.Fatalf("log length = %d, want %d", len(l.Transactions), TransactionCap)
	}
	for i := 1; i < len(l.Transactions); i++ {
		if l.Transactions[i].Date.After(l.Transactions[i-1].Date) {
			t.Fatalf("log not most-recent-first at index %d", i)
		}
	}
	// The newest entry survives, the oldest were evicted.
	if !l.Transactions[0].Date.Equal(base.Add(time.Duration(TransactionCap+2) * time.Second)) {
		t.Errorf("head = %v, want the most recent transaction", l.Transactions[0].Date)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var l Ledger
	l.Prepend(NewTransaction(KindEarned, 10, "credit", time.Now()))

	c := l.Clone()
	c.Transactions[0].Description = "mutated"

	if l.Transactions[0].Description == "mutated" {
		t.Error("clone shares transaction backing array with source")
	}
}

func TestNewTransactionID(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 30, 45, 123456789, time.UTC)
	tx := NewTransaction(KindRedeemed, 100, "voucher", at)
	if tx.ID != "20250301123045.123456789" {
		t.Errorf("ID = %q, want timestamp-derived id", tx.ID)
	}
	if !tx.Date.Equal(at) {
		t.Errorf("Date = %v, want %v", tx.Date, at)
	}
}
