// Package settle computes point-to-point transfers that clear a shared
// expense group's net balances.
package settle

import (
	"sort"

	"github.com/shopspring/decimal"
)

// epsilon is one minor currency unit; balances below it count as settled.
var epsilon = decimal.New(1, -2)

// Transfer is a single proposed payment from one participant to another.
// The amount is strictly positive and rounded to two decimal places.
type Transfer struct {
	From   string
	To     string
	Amount decimal.Decimal
}

type party struct {
	name   string
	amount decimal.Decimal
}

// Simplify turns signed net balances (positive = is owed money, negative =
// owes money) into an ordered list of transfers that settles every debt.
// The matching is greedy, largest debtor against largest creditor, which
// keeps the transfer count small without guaranteeing the true minimum —
// exact minimization is a set-partition problem and is deliberately not
// attempted here.
func Simplify(balances map[string]decimal.Decimal) []Transfer {
	var creditors, debtors []party
	for name, bal := range balances {
		switch {
		case bal.GreaterThan(epsilon):
			creditors = append(creditors, party{name, bal})
		case bal.LessThan(epsilon.Neg()):
			debtors = append(debtors, party{name, bal.Neg()})
		}
	}

	sortPartiesDesc(creditors)
	sortPartiesDesc(debtors)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)
		if amount.GreaterThan(epsilon) {
			transfers = append(transfers, Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount.Round(2),
			})
		}
		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)
		if debtors[i].amount.LessThan(epsilon) {
			i++
		}
		if creditors[j].amount.LessThan(epsilon) {
			j++
		}
	}
	return transfers
}

// sortPartiesDesc orders by amount descending; equal amounts fall back to
// the participant name so map iteration order cannot reshuffle the plan
// between runs.
func sortPartiesDesc(parties []party) {
	sort.Slice(parties, func(i, j int) bool {
		if !parties[i].amount.Equal(parties[j].amount) {
			return parties[i].amount.GreaterThan(parties[j].amount)
		}
		return parties[i].name < parties[j].name
	})
}
