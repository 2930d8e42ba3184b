package domain

import "github.com/shopspring/decimal"

// Totals is a net debt position. OwedTo is money owed to the user, OwedBy is
// money the user owes, Net is their difference.
type Totals struct {
	OwedTo decimal.Decimal `json:"owedToTotal"`
	OwedBy decimal.Decimal `json:"owedByTotal"`
	Net    decimal.Decimal `json:"total"`
}

// Add books one amount on the side given by direction.
func (t *Totals) Add(direction Direction, amount decimal.Decimal) {
	switch direction {
	case OwedTo:
		t.OwedTo = t.OwedTo.Add(amount)
	case OwedBy:
		t.OwedBy = t.OwedBy.Add(amount)
	}
	t.Net = t.OwedTo.Sub(t.OwedBy)
}

// SumDebts totals a set of debts. An empty set yields zero totals.
func SumDebts(debts []Debt) Totals {
	var t Totals
	for i := range debts {
		t.Add(debts[i].Direction, debts[i].Amount)
	}
	return t
}

// CounterpartyTotals is the net position against a single debt name.
type CounterpartyTotals struct {
	NameID uint
	Name   string
	Totals
}

// TotalsByName groups debts under the given names, keeping the order of
// names. Names without debts are reported with zero totals; debts whose name
// is not in names are ignored.
func TotalsByName(names []DebtName, debts []Debt) []CounterpartyTotals {
	index := make(map[uint]int, len(names))
	out := make([]CounterpartyTotals, len(names))
	for i, n := range names {
		index[n.ID] = i
		out[i] = CounterpartyTotals{NameID: n.ID, Name: n.Name}
	}

	for i := range debts {
		if pos, ok := index[debts[i].NameID]; ok {
			out[pos].Add(debts[i].Direction, debts[i].Amount)
		}
	}
	return out
}
