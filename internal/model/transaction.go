package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Default transaction kind labels.
const (
	KindCredit = "Crédito"
	KindDebit  = "Débito"
)

// Transaction is one parsed row of a transactions CSV.
type Transaction struct {
	ID     int             // not unique, taken as-is from the file
	Kind   string          // trimmed label, usually KindCredit or KindDebit
	Amount decimal.Decimal // signed
}

// IsKind reports whether the transaction's kind matches label, ignoring case.
func (t Transaction) IsKind(label string) bool {
	return strings.EqualFold(t.Kind, label)
}
