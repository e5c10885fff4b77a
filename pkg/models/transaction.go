package models

import "time"

// Currency is one of the two codes the extractors understand.
type Currency string

const (
	UZS Currency = "UZS"
	USD Currency = "USD"
)

// Type tells whether money left or entered the account.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Transaction is one candidate transaction extracted from a receipt, an SMS
// alert or a statement row. A zero Amount means extraction found no usable
// amount; a valid amount is always strictly positive, the sign lives in Type.
// Callers are expected to drop amount-less candidates before persisting.
type Transaction struct {
	Amount      float64
	Currency    Currency
	Type        Type
	Category    string
	Merchant    string
	Description string
	Card        string
	Date        time.Time
	Raw         string
}

// HasAmount reports whether extraction produced a usable amount.
func (t *Transaction) HasAmount() bool { return t.Amount > 0 }

// HasDate reports whether a recognizable date was found in the source text.
func (t *Transaction) HasDate() bool { return !t.Date.IsZero() }
