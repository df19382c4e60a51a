package report

import (
	"context"
	"sort"
	"strings"

	"finbook-backend/internal/config"
	"finbook-backend/internal/domain/audit"
	"finbook-backend/internal/domain/ledger"
	loandom "finbook-backend/internal/domain/loan"
	ledgeruc "finbook-backend/internal/usecase/ledger"
	"finbook-backend/pkg/apperr"
	"finbook-backend/pkg/id"
)

// Usecase assembles every read-only report. Each call loads its own full
// collections and computes in memory; nothing is cached or shared.
type Usecase struct {
	loans   loandom.Repository
	txns    ledger.Repository
	audits  audit.Repository
	matcher ledgeruc.Matcher
	consts  config.ReportConstants
}

func NewUsecase(loans loandom.Repository, txns ledger.Repository, audits audit.Repository, matcher ledgeruc.Matcher, consts config.ReportConstants) *Usecase {
	return &Usecase{loans: loans, txns: txns, audits: audits, matcher: matcher, consts: consts}
}

func (u *Usecase) allTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	txns, err := u.txns.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch transactions", err)
	}
	return txns, nil
}

func (u *Usecase) allLoans(ctx context.Context) ([]loandom.Loan, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch loans", err)
	}
	return loans, nil
}

// Daily builds the single-date cash report. Opening balance is the sum of
// credit-debit over all strictly earlier dates.
func (u *Usecase) Daily(ctx context.Context, date string) (*DailyReport, error) {
	if date == "" {
		return nil, apperr.BadRequest("date parameter is required")
	}
	dayTxns, err := u.txns.ListByDate(ctx, date)
	if err != nil {
		return nil, apperr.Upstream("fetch transactions", err)
	}

	summary := ledgeruc.Aggregate(dayTxns, ledgeruc.ByAccountName, ledgeruc.Window{})
	accountSummary := make([]AccountSummary, 0, len(summary))
	for name, acc := range summary {
		accountSummary = append(accountSummary, AccountSummary{AccountName: name, Credit: acc.Credit, Debit: acc.Debit})
	}
	sort.Slice(accountSummary, func(i, j int) bool {
		return accountSummary[i].AccountName < accountSummary[j].AccountName
	})

	var creditTotal, debitTotal float64
	for _, t := range dayTxns {
		creditTotal += t.Credit
		debitTotal += t.Debit
	}

	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	var opening float64
	for _, t := range all {
		if t.Date < date {
			opening += t.Credit - t.Debit
		}
	}

	closing := opening + creditTotal - debitTotal
	return &DailyReport{
		Date:           date,
		Transactions:   dayTxns,
		AccountSummary: accountSummary,
		CreditTotal:    creditTotal,
		DebitTotal:     debitTotal,
		OpeningBalance: opening,
		ClosingBalance: closing,
		GrandTotal:     closing,
	}, nil
}

func (u *Usecase) Daybook(ctx context.Context, date string) ([]DaybookEntry, error) {
	if date == "" {
		return nil, apperr.BadRequest("date parameter is required")
	}
	dayTxns, err := u.txns.ListByDate(ctx, date)
	if err != nil {
		return nil, apperr.Upstream("fetch transactions", err)
	}
	out := make([]DaybookEntry, 0, len(dayTxns))
	for i, t := range dayTxns {
		num := t.Number
		if num == "" {
			num = t.RNo
		}
		out = append(out, DaybookEntry{
			SN:            i + 1,
			HeadOfAccount: t.AccountName,
			Particulars:   t.Particulars,
			Number:        num,
			Credit:        t.Credit,
			Debit:         t.Debit,
		})
	}
	return out, nil
}

// LedgerAccounts lists per-account totals, optionally narrowed to account
// names containing accountType.
func (u *Usecase) LedgerAccounts(ctx context.Context, accountType string, w ledgeruc.Window) ([]AccountBalance, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]ledger.Transaction, 0, len(all))
	for _, t := range all {
		if accountType != "" && !strings.Contains(t.AccountName, accountType) {
			continue
		}
		filtered = append(filtered, t)
	}
	return toAccountBalances(ledgeruc.Aggregate(filtered, ledgeruc.ByAccountName, w)), nil
}

func toAccountBalances(groups map[string]ledgeruc.Totals) []AccountBalance {
	out := make([]AccountBalance, 0, len(groups))
	for name, acc := range groups {
		out = append(out, AccountBalance{AName: name, Credit: acc.Credit, Debit: acc.Debit, Balance: acc.Balance()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AName < out[j].AName })
	return out
}

func (u *Usecase) LedgerAccountTypes(ctx context.Context, w ledgeruc.Window) ([]AccountTypeBalance, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	groups := ledgeruc.Aggregate(all, ledgeruc.ByAccountType, w)
	out := make([]AccountTypeBalance, 0, len(groups))
	for name, acc := range groups {
		out = append(out, AccountTypeBalance{AccountType: name, Credit: acc.Credit, Debit: acc.Debit, Balance: acc.Balance()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountType < out[j].AccountType })
	return out, nil
}

// LedgerDetails lists one account's entries with a running balance that
// starts at zero for the requested window.
func (u *Usecase) LedgerDetails(ctx context.Context, accountName string, w ledgeruc.Window) ([]DetailRow, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]ledger.Transaction, 0)
	for _, t := range all {
		if accountName != "" && t.AccountName != accountName {
			continue
		}
		if !w.Contains(t.Date) {
			continue
		}
		filtered = append(filtered, t)
	}
	lines := ledgeruc.RunningBalance(filtered)
	out := make([]DetailRow, 0, len(lines))
	for _, l := range lines {
		num := l.Number
		if num == "" {
			num = l.RNo
		}
		out = append(out, DetailRow{
			Date:        l.Date,
			Particulars: l.Particulars,
			Number:      num,
			Credit:      l.Credit,
			Debit:       l.Debit,
			Balance:     l.Balance,
		})
	}
	return out, nil
}

// AccountLedger projects the entries whose number or rno equals accountID.
func (u *Usecase) AccountLedger(ctx context.Context, accountID string) ([]LedgerLine, error) {
	if accountID == "" {
		return nil, apperr.BadRequest("account id is required")
	}
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LedgerLine, 0)
	for _, t := range all {
		if t.Number == accountID || t.RNo == accountID {
			out = append(out, LedgerLine{Date: t.Date, Credit: t.Credit, Debit: t.Debit, Particulars: t.Particulars})
		}
	}
	return out, nil
}

// LoanStatement resolves the loan by id, then applies the matching strategy
// over the full transaction collection.
func (u *Usecase) LoanStatement(ctx context.Context, loanID string) ([]ledger.Transaction, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, apperr.Upstream("fetch loan", err)
	}
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return u.matcher.Match(l, all), nil
}

// ProfitLoss sums the configured income heads as credit-debit and expense
// heads as debit-credit, keeping only positive amounts.
func (u *Usecase) ProfitLoss(ctx context.Context, w ledgeruc.Window) (*ProfitLoss, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := ledgeruc.Filter(all, w)

	sumHead := func(head string, sign float64) float64 {
		var sum float64
		for _, t := range filtered {
			if strings.Contains(strings.ToUpper(t.AccountName), strings.ToUpper(head)) {
				sum += sign * (t.Credit - t.Debit)
			}
		}
		return sum
	}

	incomes := make([]HeadAmount, 0)
	var totalIncomes float64
	for _, head := range u.consts.IncomeAccounts {
		if amt := sumHead(head, 1); amt > 0 {
			incomes = append(incomes, HeadAmount{AccountName: head, Amount: amt})
			totalIncomes += amt
		}
	}
	expenses := make([]HeadAmount, 0)
	var totalExpenses float64
	for _, head := range u.consts.ExpenseAccounts {
		if amt := sumHead(head, -1); amt > 0 {
			expenses = append(expenses, HeadAmount{AccountName: head, Amount: amt})
			totalExpenses += amt
		}
	}

	profit := totalIncomes - totalExpenses
	return &ProfitLoss{
		Incomes:           incomes,
		Expenses:          expenses,
		TotalIncomes:      totalIncomes,
		TotalExpenses:     totalExpenses,
		TotalProfit:       profit,
		ShareValue:        profit * u.consts.ShareValueRate,
		EachPartnerProfit: profit / float64(u.consts.PartnerCount),
	}, nil
}

func (u *Usecase) FinalStatement(ctx context.Context, w ledgeruc.Window) (*FinalStatement, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := ledgeruc.Filter(all, w)

	groups := ledgeruc.Aggregate(filtered, ledgeruc.ByAccountName, ledgeruc.Window{})
	accounts := make([]StatementAccount, 0, len(groups))
	for name, acc := range groups {
		accounts = append(accounts, StatementAccount{Name: name, CBalance: acc.Credit, DBalance: acc.Debit})
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })

	var creditTotal, debitTotal float64
	for _, t := range filtered {
		creditTotal += t.Credit
		debitTotal += t.Debit
	}
	closing := creditTotal - debitTotal
	grand := closing + u.consts.Capital
	return &FinalStatement{
		Accounts:           accounts,
		CreditTotal:        creditTotal,
		DebitTotal:         debitTotal,
		OpeningCashBalance: 0,
		ClosingCashBalance: closing,
		Capital:            u.consts.Capital,
		GrandTotal:         grand,
		ShareValue:         grand / float64(u.consts.PartnerCount),
	}, nil
}

// Business groups loans by partner. Paid figures stay zero until repayments
// are derived from the ledger; the report shape already carries them.
func (u *Usecase) Business(ctx context.Context, w ledgeruc.Window, partnerName string) (*BusinessReport, error) {
	loans, err := u.allLoans(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct{ totalLoan, actualLoan float64 }
	perPartner := map[string]*bucket{}
	filtered := make([]loandom.Loan, 0)
	for _, l := range loans {
		if !w.Contains(l.Date) {
			continue
		}
		if partnerName != "" && l.PartnerName != partnerName {
			continue
		}
		filtered = append(filtered, l)
		name := l.PartnerName
		if name == "" {
			name = "Unknown"
		}
		b := perPartner[name]
		if b == nil {
			b = &bucket{}
			perPartner[name] = b
		}
		b.totalLoan += l.LoanAmount
		b.actualLoan += l.LoanAmount
	}

	totalBusiness := make([]BusinessSummary, 0, len(perPartner))
	for name, b := range perPartner {
		totalBusiness = append(totalBusiness, BusinessSummary{
			PartnerName:    name,
			TotalLoan:      b.totalLoan,
			BalanceWith:    b.totalLoan,
			ActualLoan:     b.actualLoan,
			BalanceWithout: b.actualLoan,
		})
	}
	sort.Slice(totalBusiness, func(i, j int) bool { return totalBusiness[i].PartnerName < totalBusiness[j].PartnerName })

	general := make([]BusinessRow, 0, len(filtered))
	outstanding := make([]OutstandingRow, 0, len(filtered))
	for i := range filtered {
		l := &filtered[i]
		general = append(general, BusinessRow{
			Date: l.Date, Number: l.AccountNumber(), Name: l.CustomerName,
			Loan: l.LoanAmount, Balance: l.LoanAmount,
		})
		outstanding = append(outstanding, OutstandingRow{
			Date: l.Date, DueDate: l.Date, Number: l.AccountNumber(),
			Loan: l.LoanAmount, Balance: l.LoanAmount,
		})
	}

	var md *MDDetails
	if partnerName != "" {
		b := perPartner[partnerName]
		if b == nil {
			b = &bucket{}
		}
		md = &MDDetails{
			Name:          partnerName,
			ActualLoan:    b.actualLoan,
			ActualBalance: b.actualLoan,
			TotalLoan:     b.totalLoan,
			TotalBalance:  b.totalLoan,
		}
	}

	return &BusinessReport{
		TotalBusiness:   totalBusiness,
		GeneralBusiness: general,
		Outstanding:     outstanding,
		MDDetails:       md,
	}, nil
}

// NPA lists loans as at-risk rows with the configured proxy rate applied to
// the loan amount; real delinquency data is not wired yet.
func (u *Usecase) NPA(ctx context.Context, partnerName, aadhaar, name string) ([]NPARow, error) {
	loans, err := u.allLoans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NPARow, 0)
	for i := range loans {
		l := &loans[i]
		if l.ID == "" {
			continue
		}
		if partnerName != "" && l.PartnerName != partnerName {
			continue
		}
		if aadhaar != "" && !strings.Contains(l.Aadhaar, aadhaar) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(l.CustomerName), strings.ToLower(name)) {
			continue
		}
		out = append(out, NPARow{
			ID:          l.ID,
			Date:        l.Date,
			Number:      l.AccountNumber(),
			Name:        l.CustomerName,
			NPAAmount:   l.LoanAmount * u.consts.NPARate,
			Aadhaar:     l.Aadhaar,
			Phone:       l.Phone1,
			IsNPA:       true,
			NPADate:     l.Date,
			LoanType:    string(l.LoanType),
			PartnerName: l.PartnerName,
		})
	}
	return out, nil
}

// NewCustomers deduplicates loans by (name, aadhaar) and reports each
// customer's first loan within the window.
func (u *Usecase) NewCustomers(ctx context.Context, fromDate, toDate, partnerName string) (*NewCustomersReport, error) {
	if fromDate == "" {
		fromDate = u.consts.NewCustomersFrom
	}
	if toDate == "" {
		toDate = today()
	}
	loans, err := u.allLoans(ctx)
	if err != nil {
		return nil, err
	}

	w := ledgeruc.Window{From: fromDate, To: toDate}
	unique := map[string]*NewCustomer{}
	for i := range loans {
		l := &loans[i]
		if !w.Contains(l.Date) {
			continue
		}
		if partnerName != "" && l.PartnerName != partnerName {
			continue
		}
		key := l.CustomerName + "-" + l.Aadhaar
		c := unique[key]
		if c == nil {
			unique[key] = &NewCustomer{
				ID:              l.ID,
				CustomerName:    l.CustomerName,
				FatherName:      l.FatherName,
				Aadhaar:         l.Aadhaar,
				Address:         l.Address,
				Phone1:          l.Phone1,
				Phone2:          l.Phone2,
				FirstLoanDate:   l.Date,
				FirstLoanNumber: l.AccountNumber(),
				FirstLoanAmount: l.LoanAmount,
				TotalLoans:      1,
				TotalLoanAmount: l.LoanAmount,
			}
			continue
		}
		c.TotalLoans++
		c.TotalLoanAmount += l.LoanAmount
		if l.Date < c.FirstLoanDate {
			c.FirstLoanDate = l.Date
			c.FirstLoanNumber = l.AccountNumber()
			c.FirstLoanAmount = l.LoanAmount
		}
	}

	customers := make([]NewCustomer, 0, len(unique))
	for _, c := range unique {
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].FirstLoanDate != customers[j].FirstLoanDate {
			return customers[i].FirstLoanDate < customers[j].FirstLoanDate
		}
		return customers[i].CustomerName < customers[j].CustomerName
	})

	return &NewCustomersReport{
		Customers: customers,
		Total:     len(customers),
		FromDate:  fromDate,
		ToDate:    toDate,
	}, nil
}

func (u *Usecase) PartnerPerformance(ctx context.Context, partnerName, fromDate, toDate string) (*PartnerPerformanceReport, error) {
	if fromDate == "" {
		fromDate = u.consts.PartnerPerformanceFrom
	}
	if toDate == "" {
		toDate = today()
	}
	loans, err := u.allLoans(ctx)
	if err != nil {
		return nil, err
	}

	w := ledgeruc.Window{From: fromDate, To: toDate}
	filtered := make([]loandom.Loan, 0)
	var amount, docCharges float64
	for i := range loans {
		l := loans[i]
		if partnerName != "" && l.PartnerName != partnerName {
			continue
		}
		if !w.Contains(l.Date) {
			continue
		}
		filtered = append(filtered, l)
		amount += l.LoanAmount
		docCharges += l.DocumentCharges
	}

	return &PartnerPerformanceReport{
		PartnerPerformance: PartnerPerformance{
			TotalLoans:      len(filtered),
			TotalLoanAmount: amount,
			Commission:      amount * u.consts.CommissionRate,
			DocumentCharges: docCharges,
		},
		Loans:    filtered,
		FromDate: fromDate,
		ToDate:   toDate,
	}, nil
}

// Capital lists the ledger entries whose account name mentions capital or a
// partner, the closest thing to a capital account the book has.
func (u *Usecase) Capital(ctx context.Context) ([]ledger.Transaction, error) {
	all, err := u.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Transaction, 0)
	for _, t := range all {
		lower := strings.ToLower(t.AccountName)
		if strings.Contains(lower, "capital") || strings.Contains(lower, "partner") {
			out = append(out, t)
		}
	}
	return out, nil
}

type CapitalEntryInput struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Particulars string  `json:"particulars" validate:"required"`
	Credit      float64 `json:"credit" validate:"gte=0"`
	Debit       float64 `json:"debit" validate:"gte=0"`
	UserName    string  `json:"userName" validate:"required"`
	EntryTime   string  `json:"entryTime"`
}

func (u *Usecase) AddCapital(ctx context.Context, in CapitalEntryInput) (*ledger.Transaction, error) {
	t := &ledger.Transaction{
		ID:          id.New(),
		Date:        in.Date,
		AccountName: "Capital - " + in.Particulars,
		Particulars: in.Particulars,
		Credit:      in.Credit,
		Debit:       in.Debit,
		UserName:    in.UserName,
		EntryTime:   in.EntryTime,
	}
	if err := u.txns.Create(ctx, t); err != nil {
		return nil, apperr.Upstream("save capital transaction", err)
	}
	return t, nil
}

func (u *Usecase) Edited(ctx context.Context, w audit.Window) ([]audit.LoanEdit, error) {
	out, err := u.audits.ListEdits(ctx, w)
	if err != nil {
		return nil, apperr.Upstream("fetch edit records", err)
	}
	return out, nil
}

func (u *Usecase) Deleted(ctx context.Context, w audit.Window) ([]audit.LoanDeletion, error) {
	out, err := u.audits.ListDeletions(ctx, w)
	if err != nil {
		return nil, apperr.Upstream("fetch deletion records", err)
	}
	return out, nil
}

// DeletedDaybook lists removed daybook rows. Transactions are insert-only and
// no deletion log exists for them, so the listing is always empty.
func (u *Usecase) DeletedDaybook(ctx context.Context, w audit.Window) ([]DaybookEntry, error) {
	return []DaybookEntry{}, nil
}
