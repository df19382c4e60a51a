package ledger

import (
	"strings"

	"finbook-backend/internal/domain/ledger"
)

type Totals struct {
	Credit float64 `json:"credit"`
	Debit  float64 `json:"debit"`
}

func (t Totals) Balance() float64 { return t.Credit - t.Debit }

// Window is an inclusive date range over ISO date strings. An empty bound is
// open. Comparison is lexicographic, which is chronological only for
// zero-padded ISO-8601 dates; malformed stored dates sort where they fall.
type Window struct {
	From string
	To   string
}

func (w Window) Contains(date string) bool {
	if w.From != "" && date < w.From {
		return false
	}
	if w.To != "" && date > w.To {
		return false
	}
	return true
}

// Filter returns the entries inside the window, preserving order.
func Filter(txns []ledger.Transaction, w Window) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txns))
	for _, t := range txns {
		if w.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// Aggregate groups entries inside the window by key and reduces each group to
// credit/debit totals. Pure; empty input yields an empty map.
func Aggregate(txns []ledger.Transaction, key func(ledger.Transaction) string, w Window) map[string]Totals {
	out := make(map[string]Totals)
	for _, t := range txns {
		if !w.Contains(t.Date) {
			continue
		}
		k := key(t)
		acc := out[k]
		acc.Credit += t.Credit
		acc.Debit += t.Debit
		out[k] = acc
	}
	return out
}

func ByAccountName(t ledger.Transaction) string { return t.AccountName }

func ByAccountType(t ledger.Transaction) string { return AccountType(t.AccountName) }

// AccountType is the coarse grouping key: the first space-delimited token of
// the account name.
func AccountType(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

// Line is one ledger row with its running balance.
type Line struct {
	ledger.Transaction
	Balance float64 `json:"balance"`
}

// RunningBalance scans date-sorted entries left to right, accumulating
// credit-debit from zero. The accumulator starts at zero for whatever window
// the caller filtered to: this is a statement for the period, not a balance
// since inception.
func RunningBalance(txns []ledger.Transaction) []Line {
	sorted := make([]ledger.Transaction, len(txns))
	copy(sorted, txns)
	SortChronological(sorted)

	out := make([]Line, 0, len(sorted))
	var bal float64
	for _, t := range sorted {
		bal += t.Credit - t.Debit
		out = append(out, Line{Transaction: t, Balance: bal})
	}
	return out
}
