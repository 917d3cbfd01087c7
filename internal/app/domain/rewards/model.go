// Package rewards defines the points ledger domain model.
package rewards

import "time"

// Kind distinguishes earning from spending transactions.
type Kind string

const (
	KindEarned   Kind = "earned"
	KindRedeemed Kind = "redeemed"
)

const (
	// MonthlyGoal is the fixed point target the progress percentage is
	// derived from.
	MonthlyGoal = 15000

	// TransactionCap bounds the rolling transaction log. The oldest entry is
	// evicted on overflow.
	TransactionCap = 10
)

// Transaction records a single points movement. Immutable once created.
type Transaction struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Amount      int       `json:"amount"` // > 0
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// NewTransaction builds a transaction with a timestamp-derived identifier.
func NewTransaction(kind Kind, amount int, description string, at time.Time) Transaction {
	at = at.UTC()
	return Transaction{
		ID:          at.Format("20060102150405.000000000"),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        at,
	}
}

// Ledger aggregates point balances and the rolling transaction log, ordered
// most-recent-first.
type Ledger struct {
	TotalPoints     int           `json:"total_points"`
	AvailablePoints int           `json:"available_points"`
	RedeemedPoints  int           `json:"redeemed_points"`
	MonthlyPoints   int           `json:"monthly_points"`
	ProgressPercent float64       `json:"progress_percent"` // 0-100
	Transactions    []Transaction `json:"transactions"`
}

// GoalProgress derives the progress percentage for a point total against the
// monthly goal, capped at 100.
func GoalProgress(totalPoints int) float64 {
	pct := float64(totalPoints) / float64(MonthlyGoal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Prepend inserts a transaction at the head of the log and evicts the oldest
// entries beyond the cap.
func (l *Ledger) Prepend(tx Transaction) {
	l.Transactions = append([]Transaction{tx}, l.Transactions...)
	if len(l.Transactions) > TransactionCap {
		l.Transactions = l.Transactions[:TransactionCap]
	}
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := l
	out.Transactions = make([]Transaction, len(l.Transactions))
	copy(out.Transactions, l.Transactions)
	return out
}
