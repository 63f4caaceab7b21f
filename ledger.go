package networth

import (
	"iter"
	"slices"
	"strings"

	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger row.
//
// Amount has no forced sign convention, a negative amount is an expense.
type Transaction struct {
	Date        date.Date
	Amount      decimal.Decimal
	Institution string
}

// NewTransaction is a convenient constructor for a Transaction.
func NewTransaction[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](on date.Date, amount T, institution string) Transaction {
	return Transaction{Date: on, Amount: newDecimal(amount), Institution: institution}
}

// Ledger is the chronological list of transactions uploaded by the user.
//
// Transactions sharing the same date (and even the same institution) are all
// kept, in their source order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns a ledger with transactions sorted by date.
func NewLedger(transactions ...Transaction) *Ledger {
	txs := slices.Clone(transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
	return &Ledger{transactions: txs}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return slices.All(l.transactions)
}

// Institutions returns the sorted list of distinct institutions.
func (l *Ledger) Institutions() []string {
	var names []string
	for _, tx := range l.transactions {
		names = append(names, tx.Institution)
	}
	slices.SortFunc(names, strings.Compare)
	return slices.Compact(names)
}

// Dates returns the sorted list of distinct dates.
func (l *Ledger) Dates() []date.Date {
	var days []date.Date
	for _, tx := range l.transactions {
		days = append(days, tx.Date)
	}
	// transactions are already sorted.
	return slices.Compact(days)
}
