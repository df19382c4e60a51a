package report

import (
	"finbook-backend/internal/domain/ledger"
	loandom "finbook-backend/internal/domain/loan"
)

type AccountSummary struct {
	AccountName string  `json:"accountName"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
}

type DailyReport struct {
	Date           string               `json:"date"`
	Transactions   []ledger.Transaction `json:"transactions"`
	AccountSummary []AccountSummary     `json:"accountSummary"`
	CreditTotal    float64              `json:"creditTotal"`
	DebitTotal     float64              `json:"debitTotal"`
	OpeningBalance float64              `json:"openingBalance"`
	ClosingBalance float64              `json:"closingBalance"`
	GrandTotal     float64              `json:"grandTotal"`
}

type DaybookEntry struct {
	SN            int     `json:"sn"`
	HeadOfAccount string  `json:"headOfAccount"`
	Particulars   string  `json:"particulars"`
	Number        string  `json:"number,omitempty"`
	Credit        float64 `json:"credit"`
	Debit         float64 `json:"debit"`
}

type AccountBalance struct {
	AName   string  `json:"aName"`
	Credit  float64 `json:"credit"`
	Debit   float64 `json:"debit"`
	Balance float64 `json:"balance"`
}

type AccountTypeBalance struct {
	AccountType string  `json:"accountType"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	Balance     float64 `json:"balance"`
}

type DetailRow struct {
	Date        string  `json:"date"`
	Particulars string  `json:"particulars"`
	Number      string  `json:"number,omitempty"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	Balance     float64 `json:"balance"`
}

// LedgerLine is the slim per-account projection used by the account ledger
// and loan statement views.
type LedgerLine struct {
	Date        string  `json:"date"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	Particulars string  `json:"particulars,omitempty"`
	RNo         string  `json:"rno,omitempty"`
}

type HeadAmount struct {
	AccountName string  `json:"accountName"`
	Amount      float64 `json:"amount"`
}

type ProfitLoss struct {
	Incomes           []HeadAmount `json:"incomes"`
	Expenses          []HeadAmount `json:"expenses"`
	TotalIncomes      float64      `json:"totalIncomes"`
	TotalExpenses     float64      `json:"totalExpenses"`
	TotalProfit       float64      `json:"totalProfit"`
	ShareValue        float64      `json:"shareValue"`
	EachPartnerProfit float64      `json:"eachPartnerProfit"`
}

type StatementAccount struct {
	Name     string  `json:"name"`
	CBalance float64 `json:"cBalance"`
	DBalance float64 `json:"dBalance"`
}

type FinalStatement struct {
	Accounts           []StatementAccount `json:"accounts"`
	CreditTotal        float64            `json:"creditTotal"`
	DebitTotal         float64            `json:"debitTotal"`
	OpeningCashBalance float64            `json:"openingCashBalance"`
	ClosingCashBalance float64            `json:"closingCashBalance"`
	Capital            float64            `json:"capital"`
	GrandTotal         float64            `json:"grandTotal"`
	ShareValue         float64            `json:"shareValue"`
}

type BusinessSummary struct {
	PartnerName    string  `json:"partnerName"`
	TotalLoan      float64 `json:"totalLoan"`
	TotalPaid      float64 `json:"totalPaid"`
	BalanceWith    float64 `json:"balanceWith"`
	ActualLoan     float64 `json:"actualLoan"`
	ActualPaid     float64 `json:"actualPaid"`
	BalanceWithout float64 `json:"balanceWithout"`
}

type BusinessRow struct {
	Date    string  `json:"date"`
	Number  string  `json:"number"`
	Name    string  `json:"name,omitempty"`
	Loan    float64 `json:"loan"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

type OutstandingRow struct {
	Date    string  `json:"date"`
	DueDate string  `json:"dueDate"`
	Number  string  `json:"number"`
	Loan    float64 `json:"loan"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
	Days    int     `json:"days"`
}

type MDDetails struct {
	Name          string  `json:"name"`
	ActualLoan    float64 `json:"actualLoan"`
	ActualPaid    float64 `json:"actualPaid"`
	ActualBalance float64 `json:"actualBalance"`
	TotalLoan     float64 `json:"totalLoan"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalBalance  float64 `json:"totalBalance"`
}

type BusinessReport struct {
	TotalBusiness   []BusinessSummary `json:"totalBusiness"`
	GeneralBusiness []BusinessRow     `json:"generalBusiness"`
	Outstanding     []OutstandingRow  `json:"outstanding"`
	MDDetails       *MDDetails        `json:"mdDetails"`
}

type NPARow struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Number      string  `json:"number"`
	Name        string  `json:"name"`
	NPAAmount   float64 `json:"npaAmount"`
	Aadhaar     string  `json:"aadhaar,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	IsNPA       bool    `json:"isNPA"`
	NPADate     string  `json:"npaDate,omitempty"`
	LoanType    string  `json:"loanType"`
	PartnerName string  `json:"partnerName,omitempty"`
}

type NewCustomer struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customerName"`
	FatherName      string  `json:"fatherName,omitempty"`
	Aadhaar         string  `json:"aadhaar,omitempty"`
	Address         string  `json:"address"`
	Phone1          string  `json:"phone1,omitempty"`
	Phone2          string  `json:"phone2,omitempty"`
	FirstLoanDate   string  `json:"firstLoanDate"`
	FirstLoanNumber string  `json:"firstLoanNumber"`
	FirstLoanAmount float64 `json:"firstLoanAmount"`
	TotalLoans      int     `json:"totalLoans"`
	TotalLoanAmount float64 `json:"totalLoanAmount"`
}

type NewCustomersReport struct {
	Customers []NewCustomer `json:"customers"`
	Total     int           `json:"total"`
	FromDate  string        `json:"fromDate"`
	ToDate    string        `json:"toDate"`
}

type PartnerPerformance struct {
	TotalLoans      int     `json:"totalLoans"`
	TotalLoanAmount float64 `json:"totalLoanAmount"`
	TotalPaid       float64 `json:"totalPaid"`
	Commission      float64 `json:"commission"`
	DocumentCharges float64 `json:"documentCharges"`
	Penalty         float64 `json:"penalty"`
}

type PartnerPerformanceReport struct {
	PartnerPerformance PartnerPerformance `json:"partnerPerformance"`
	Loans              []loandom.Loan     `json:"loans"`
	FromDate           string             `json:"fromDate"`
	ToDate             string             `json:"toDate"`
}
