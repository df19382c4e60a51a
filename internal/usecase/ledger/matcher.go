package ledger

import (
	"sort"
	"strconv"
	"strings"

	"finbook-backend/internal/domain/ledger"
	loandom "finbook-backend/internal/domain/loan"
)

// Matcher selects the ledger entries that belong to one loan account. The only
// implementation today is HeuristicMatcher; an exact-join strategy can replace
// it without touching call sites once transactions carry a real foreign key.
type Matcher interface {
	Match(l *loandom.Loan, txns []ledger.Transaction) []ledger.Transaction
}

// HeuristicMatcher is the legacy matching strategy carried over for
// compatibility with unreconciled historical data. A transaction belongs to a
// loan when ANY of five clauses holds, so matching is approximate: a customer
// name that is a substring of another account's free text will over-match.
type HeuristicMatcher struct{}

func (HeuristicMatcher) Match(l *loandom.Loan, txns []ledger.Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, 0)
	for i := range txns {
		if MatchesLoan(l, &txns[i]) {
			out = append(out, txns[i])
		}
	}
	SortChronological(out)
	return out
}

// MatchesLoan reports whether t belongs to l. Pure OR of five clauses:
// number or rno equal to "{n}" or "{type}-{n}", customer name substring of the
// account name, or "{type}-{n}" / "{type} {n}" substring of the account name.
func MatchesLoan(l *loandom.Loan, t *ledger.Transaction) bool {
	num := strconv.Itoa(l.Number)
	dashed := string(l.LoanType) + "-" + num
	spaced := string(l.LoanType) + " " + num

	if t.Number == num || t.Number == dashed {
		return true
	}
	if t.RNo == num || t.RNo == dashed {
		return true
	}
	if l.CustomerName != "" && strings.Contains(t.AccountName, l.CustomerName) {
		return true
	}
	if strings.Contains(t.AccountName, dashed) {
		return true
	}
	if strings.Contains(t.AccountName, spaced) {
		return true
	}
	return false
}

// SortChronological orders entries ascending by date, ties broken by entry
// time. Dates are zero-padded ISO strings, so lexicographic comparison is
// chronological; the sort is stable.
func SortChronological(txns []ledger.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if txns[i].Date != txns[j].Date {
			return txns[i].Date < txns[j].Date
		}
		return txns[i].EntryTime < txns[j].EntryTime
	})
}
