package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/txreport/txreport/internal/model"
)

// ErrEmpty is returned by views that need at least one transaction.
var ErrEmpty = errors.New("empty transaction list")

// Labels are the kind values recognized as credit and debit.
type Labels struct {
	Credit string
	Debit  string
}

// DefaultLabels returns the built-in Crédito/Débito labels.
func DefaultLabels() Labels {
	return Labels{Credit: model.KindCredit, Debit: model.KindDebit}
}

// Counts is the number of credit and debit transactions.
type Counts struct {
	Credit int
	Debit  int
}

// Summary bundles every view.
type Summary struct {
	Balance decimal.Decimal
	Highest model.Transaction
	Counts  Counts
}

// Reporter computes aggregate views over a transaction list. Every call
// recomputes from the full list and never modifies it.
type Reporter struct {
	labels Labels
}

// New creates a Reporter for the given labels.
func New(labels Labels) *Reporter {
	return &Reporter{labels: labels}
}

// Labels returns the labels the Reporter was built with.
func (r *Reporter) Labels() Labels {
	return r.labels
}

// Balance returns the sum of credits minus the sum of debits.
// Transactions of any other kind are ignored.
func (r *Reporter) Balance(txns []model.Transaction) decimal.Decimal {
	credit := decimal.Zero
	debit := decimal.Zero
	for _, txn := range txns {
		switch {
		case txn.IsKind(r.labels.Credit):
			credit = credit.Add(txn.Amount)
		case txn.IsKind(r.labels.Debit):
			debit = debit.Add(txn.Amount)
		}
	}
	return credit.Sub(debit)
}

// Highest returns the transaction with the largest amount regardless of kind.
// On ties the earliest one wins.
func (r *Reporter) Highest(txns []model.Transaction) (model.Transaction, error) {
	if len(txns) == 0 {
		return model.Transaction{}, ErrEmpty
	}
	best := txns[0]
	for _, txn := range txns[1:] {
		if txn.Amount.GreaterThan(best.Amount) {
			best = txn
		}
	}
	return best, nil
}

// Counts returns how many transactions are credits and how many are debits.
func (r *Reporter) Counts(txns []model.Transaction) Counts {
	var c Counts
	for _, txn := range txns {
		switch {
		case txn.IsKind(r.labels.Credit):
			c.Credit++
		case txn.IsKind(r.labels.Debit):
			c.Debit++
		}
	}
	return c
}

// Full computes balance, highest and counts.
func (r *Reporter) Full(txns []model.Transaction) (Summary, error) {
	highest, err := r.Highest(txns)
	if err != nil {
		return Summary{}, fmt.Errorf("full report: %w", err)
	}
	return Summary{
		Balance: r.Balance(txns),
		Highest: highest,
		Counts:  r.Counts(txns),
	}, nil
}

// View names one of the report views.
type View string

const (
	ViewBalance View = "balance"
	ViewHighest View = "highest"
	ViewCounts  View = "counts"
	ViewFull    View = "full"
)

// Views lists every view in menu order.
func Views() []View {
	return []View{ViewBalance, ViewHighest, ViewCounts, ViewFull}
}

// ParseView resolves a view name, ignoring case.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown report %q (want one of balance, highest, counts, full)", s)
}
