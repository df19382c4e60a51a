package loan

import (
	"context"
	"strconv"
	"strings"
	"time"

	"finbook-backend/internal/domain/audit"
	"finbook-backend/internal/domain/loan"
	"finbook-backend/internal/domain/uow"
	ledgeruc "finbook-backend/internal/usecase/ledger"
	"finbook-backend/pkg/apperr"
	"finbook-backend/pkg/id"
)

type Usecase struct {
	repo         loan.Repository
	installments loan.InstallmentRepository
	uow          uow.UnitOfWork
}

func NewUsecase(r loan.Repository, ir loan.InstallmentRepository, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, installments: ir, uow: u}
}

// List returns loans newest first, optionally narrowed by loan type and/or
// number. A number filter also matches the combined "{type}-{number}" form.
func (u *Usecase) List(ctx context.Context, loanType, number string) ([]loan.Loan, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch loans", err)
	}
	if loanType == "" && number == "" {
		return loans, nil
	}
	out := make([]loan.Loan, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		if loanType != "" && string(l.LoanType) != loanType {
			continue
		}
		if number != "" {
			n := strconv.Itoa(l.Number)
			if n != number && l.AccountNumber() != number {
				continue
			}
		}
		out = append(out, *l)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*loan.Loan, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, apperr.Upstream("fetch loan", err)
	}
	return l, nil
}

// Create persists a new loan. A missing id is allocated; a missing number is
// taken from the type's sequence.
func (u *Usecase) Create(ctx context.Context, l *loan.Loan) (*loan.Loan, error) {
	if !l.LoanType.Valid() {
		return nil, apperr.BadRequest("unknown loan type")
	}
	if l.Date == "" || l.CustomerName == "" {
		return nil, apperr.BadRequest("date and customerName are required")
	}
	if l.LoanAmount <= 0 {
		return nil, apperr.BadRequest("loanAmount must be positive")
	}
	if l.ID == "" {
		l.ID = id.New()
	}
	if l.Number == 0 {
		max, err := u.repo.MaxNumber(ctx, l.LoanType)
		if err != nil {
			return nil, apperr.Upstream("allocate loan number", err)
		}
		l.Number = max + 1
	}
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, apperr.Upstream("save loan", err)
	}
	return l, nil
}

// Update overwrites the loan and records a before/after snapshot in the same
// transaction.
func (u *Usecase) Update(ctx context.Context, loanID string, in *loan.Loan, userName string) (*loan.Loan, error) {
	if !in.LoanType.Valid() {
		return nil, apperr.BadRequest("unknown loan type")
	}
	old, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, apperr.Upstream("fetch loan", err)
	}

	in.ID = old.ID
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Save(ctx, in); err != nil {
			return err
		}
		return r.Audit.CreateEdit(ctx, &audit.LoanEdit{
			LoanID:     old.ID,
			OldDate:    old.Date,
			NewDate:    in.Date,
			OldType:    string(old.LoanType),
			NewType:    string(in.LoanType),
			OldNumber:  old.Number,
			NewNumber:  in.Number,
			OldName:    old.CustomerName,
			NewName:    in.CustomerName,
			OldAadhaar: old.Aadhaar,
			NewAadhaar: in.Aadhaar,
			OldAmount:  old.LoanAmount,
			NewAmount:  in.LoanAmount,
			UserName:   userName,
		})
	})
	if err != nil {
		return nil, apperr.Upstream("update loan", err)
	}
	return in, nil
}

// Delete removes the loan for good, leaving only the deletion snapshot.
func (u *Usecase) Delete(ctx context.Context, loanID, userName string) error {
	old, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("loan not found")
		}
		return apperr.Upstream("fetch loan", err)
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Delete(ctx, old.ID); err != nil {
			return err
		}
		return r.Audit.CreateDeletion(ctx, &audit.LoanDeletion{
			LoanID:   old.ID,
			Date:     old.Date,
			LoanType: string(old.LoanType),
			Number:   old.Number,
			Name:     old.CustomerName,
			Aadhaar:  old.Aadhaar,
			Amount:   old.LoanAmount,
			UserName: userName,
		})
	})
	if err != nil {
		return apperr.Upstream("delete loan", err)
	}
	return nil
}

// NextNumber returns the next free number in the type's sequence.
func (u *Usecase) NextNumber(ctx context.Context, t loan.Type) (int, error) {
	if !t.Valid() {
		return 0, apperr.BadRequest("unknown loan type")
	}
	max, err := u.repo.MaxNumber(ctx, t)
	if err != nil {
		return 0, apperr.Upstream("fetch max loan number", err)
	}
	return max + 1, nil
}

// SearchResult groups a customer's loans by their role in each.
type SearchResult struct {
	RunningLoans []loan.Loan `json:"runningLoans"`
	AsGuarantor1 []loan.Loan `json:"asGuarantor1"`
	AsGuarantor2 []loan.Loan `json:"asGuarantor2"`
	AllLoans     []loan.Loan `json:"allLoans"`
}

// Search finds loans by borrower aadhaar (exact), customer name (substring,
// case-insensitive) and date window, and also reports where the person stood
// as a guarantor.
func (u *Usecase) Search(ctx context.Context, aadhaar, name, fromDate, toDate string) (*SearchResult, error) {
	if aadhaar == "" && name == "" {
		return nil, apperr.BadRequest("aadhaar or name is required")
	}
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch loans", err)
	}

	w := ledgeruc.Window{From: fromDate, To: toDate}
	lowered := strings.ToLower(name)
	matchPerson := func(pName, pAadhaar string) bool {
		if aadhaar != "" {
			return pAadhaar == aadhaar
		}
		return lowered != "" && strings.Contains(strings.ToLower(pName), lowered)
	}

	res := &SearchResult{
		RunningLoans: []loan.Loan{},
		AsGuarantor1: []loan.Loan{},
		AsGuarantor2: []loan.Loan{},
		AllLoans:     []loan.Loan{},
	}
	for i := range loans {
		l := loans[i]
		if !w.Contains(l.Date) {
			continue
		}
		borrower := matchPerson(l.CustomerName, l.Aadhaar)
		if borrower {
			res.RunningLoans = append(res.RunningLoans, l)
		}
		g1 := matchPerson(l.Guarantor1.Name, l.Guarantor1.Aadhaar)
		if g1 {
			res.AsGuarantor1 = append(res.AsGuarantor1, l)
		}
		g2 := matchPerson(l.Guarantor2.Name, l.Guarantor2.Aadhaar)
		if g2 {
			res.AsGuarantor2 = append(res.AsGuarantor2, l)
		}
		if borrower || g1 || g2 {
			res.AllLoans = append(res.AllLoans, l)
		}
	}
	return res, nil
}

// UpdatePhone changes the phone numbers of the loan identified by its
// "{type}-{number}" account number.
func (u *Usecase) UpdatePhone(ctx context.Context, accountNumber, phone1, phone2 string) (*loan.Loan, error) {
	if accountNumber == "" || phone1 == "" {
		return nil, apperr.BadRequest("accountNumber and phone1 are required")
	}
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperr.Upstream("fetch loans", err)
	}
	for i := range loans {
		l := &loans[i]
		if l.AccountNumber() != accountNumber {
			continue
		}
		l.Phone1 = phone1
		if phone2 != "" {
			l.Phone2 = phone2
		}
		if err := u.repo.Save(ctx, l); err != nil {
			return nil, apperr.Upstream("save loan", err)
		}
		return l, nil
	}
	return nil, apperr.NotFound("loan not found")
}

// Installments returns the stored schedule for a loan, generating and
// persisting a flat monthly one on first access for scheduled types.
func (u *Usecase) Installments(ctx context.Context, loanID string) ([]loan.Installment, error) {
	l, err := u.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	items, err := u.installments.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, apperr.Upstream("fetch installments", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	if l.LoanType != loan.TypeSTBD && l.LoanType != loan.TypeHP {
		return []loan.Installment{}, nil
	}
	items, err = generateSchedule(l)
	if err != nil {
		return nil, err
	}
	if err := u.installments.UpsertSchedule(ctx, items); err != nil {
		return nil, apperr.Upstream("save installments", err)
	}
	return items, nil
}

// generateSchedule spreads the loan amount over monthly installments, one per
// 30 days of the period, with the remainder on the last row.
func generateSchedule(l *loan.Loan) ([]loan.Installment, error) {
	start, err := time.Parse("2006-01-02", l.Date)
	if err != nil {
		return nil, apperr.BadRequest("loan has no parseable date")
	}
	months := l.Period / 30
	if months < 1 {
		months = 1
	}
	per := l.LoanAmount / float64(months)
	items := make([]loan.Installment, 0, months)
	var allocated float64
	for i := 1; i <= months; i++ {
		amount := per
		if i == months {
			amount = l.LoanAmount - allocated
		}
		allocated += amount
		items = append(items, loan.Installment{
			LoanID:            l.ID,
			SN:                i,
			DueDate:           start.AddDate(0, i, 0).Format("2006-01-02"),
			InstallmentAmount: amount,
			DueAmount:         amount,
		})
	}
	return items, nil
}
