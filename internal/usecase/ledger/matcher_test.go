package ledger

import (
	"testing"

	"finbook-backend/internal/domain/ledger"
	loandom "finbook-backend/internal/domain/loan"
)

func cdLoan() *loandom.Loan {
	return &loandom.Loan{ID: "l1", LoanType: loandom.TypeCD, Number: 10, CustomerName: "John"}
}

func txn(fields ledger.Transaction) ledger.Transaction { return fields }

// One fixture per clause, built so no other clause fires.
func TestMatchesLoan_EachClauseIndependently(t *testing.T) {
	l := cdLoan()

	cases := []struct {
		name string
		txn  ledger.Transaction
		want bool
	}{
		{"number equals raw number", txn(ledger.Transaction{Number: "10", AccountName: "MISC"}), true},
		{"number equals dashed account", txn(ledger.Transaction{Number: "CD-10", AccountName: "MISC"}), true},
		{"rno equals raw number", txn(ledger.Transaction{RNo: "10", AccountName: "MISC"}), true},
		{"rno equals dashed account", txn(ledger.Transaction{RNo: "CD-10", AccountName: "MISC"}), true},
		{"customer name substring", txn(ledger.Transaction{AccountName: "Mr Johnson account"}), true},
		{"dashed number in account name", txn(ledger.Transaction{AccountName: "loan CD-10 repayment"}), true},
		{"spaced number in account name", txn(ledger.Transaction{AccountName: "loan CD 10 repayment"}), true},
		{"no clause holds", txn(ledger.Transaction{Number: "11", RNo: "CD-11", AccountName: "Mary CD-11"}), false},
		{"partial number is not exact", txn(ledger.Transaction{Number: "100", AccountName: "MISC"}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchesLoan(l, &tc.txn)
			if got != tc.want {
				t.Fatalf("MatchesLoan = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchesLoan_EmptyCustomerNameNeverMatchesByName(t *testing.T) {
	l := cdLoan()
	l.CustomerName = ""
	tx := ledger.Transaction{AccountName: "anything at all"}
	if MatchesLoan(l, &tx) {
		t.Fatal("empty customer name must not substring-match")
	}
}

// Spec scenario: both transactions match via the name clause; the dashed and
// spaced clauses also fire because "CD-10" appears literally.
func TestMatch_NameAndNumberClausesOverlap(t *testing.T) {
	l := cdLoan()
	txns := []ledger.Transaction{
		{ID: "t1", Date: "2024-01-05", AccountName: "CD-10 John", Credit: 1000},
		{ID: "t2", Date: "2024-01-10", AccountName: "CD-10 John", Debit: 400},
	}
	got := HeuristicMatcher{}.Match(l, txns)
	if len(got) != 2 {
		t.Fatalf("matched %d, want 2", len(got))
	}

	// isolate: name-only fixture (no number pattern in the text)
	nameOnly := ledger.Transaction{AccountName: "John savings"}
	if !MatchesLoan(l, &nameOnly) {
		t.Error("name clause alone should match")
	}
	// isolate: number-in-name fixture for a different customer
	noName := ledger.Transaction{AccountName: "CD-10 ledger"}
	if !MatchesLoan(l, &noName) {
		t.Error("dashed clause alone should match")
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	l := cdLoan()
	if got := (HeuristicMatcher{}).Match(l, nil); len(got) != 0 {
		t.Fatalf("empty transaction set: got %d", len(got))
	}
	noHits := []ledger.Transaction{{AccountName: "Mary", Number: "99"}}
	if got := (HeuristicMatcher{}).Match(l, noHits); len(got) != 0 {
		t.Fatalf("loan with no matches: got %d", len(got))
	}
}

func TestMatch_Ordering(t *testing.T) {
	l := cdLoan()
	txns := []ledger.Transaction{
		{ID: "c", Date: "2024-02-01", EntryTime: "2024-02-01T08:00:00Z", AccountName: "John"},
		{ID: "a", Date: "2024-01-01", EntryTime: "2024-01-01T12:00:00Z", AccountName: "John"},
		{ID: "b", Date: "2024-01-01", EntryTime: "2024-01-01T09:00:00Z", AccountName: "John"},
	}
	got := HeuristicMatcher{}.Match(l, txns)
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = [%s %s %s], want %v", got[0].ID, got[1].ID, got[2].ID, want)
		}
	}
}

func TestSortChronological_StableOnFullTies(t *testing.T) {
	txns := []ledger.Transaction{
		{ID: "first", Date: "2024-01-01", EntryTime: "T1"},
		{ID: "second", Date: "2024-01-01", EntryTime: "T1"},
	}
	SortChronological(txns)
	if txns[0].ID != "first" || txns[1].ID != "second" {
		t.Fatalf("tie order changed: %s, %s", txns[0].ID, txns[1].ID)
	}
}
