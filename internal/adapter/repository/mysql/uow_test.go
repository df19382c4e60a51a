package mysql

import (
	"context"
	"errors"
	"testing"

	auditDomain "finbook-backend/internal/domain/audit"
	loanDomain "finbook-backend/internal/domain/loan"
	"finbook-backend/internal/domain/uow"
)

func TestGormUoW_CommitsTogether(t *testing.T) {
	db := openTestDB(t, &loanDomain.Loan{}, &auditDomain.LoanDeletion{})
	ctx := context.Background()

	l := makeLoan(loanDomain.TypeCD, 1, "2024-01-05", "John")
	if err := NewLoanRepository(db).Save(ctx, l); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := NewGormUoW(db).WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Delete(ctx, l.ID); err != nil {
			return err
		}
		return r.Audit.CreateDeletion(ctx, &auditDomain.LoanDeletion{
			LoanID: l.ID, Date: l.Date, LoanType: string(l.LoanType),
			Number: l.Number, Name: l.CustomerName, Amount: l.LoanAmount,
		})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	var loans, snaps int64
	db.Model(&loanDomain.Loan{}).Count(&loans)
	db.Model(&auditDomain.LoanDeletion{}).Count(&snaps)
	if loans != 0 || snaps != 1 {
		t.Errorf("loans = %d snapshots = %d", loans, snaps)
	}
}

func TestGormUoW_RollsBackTogether(t *testing.T) {
	db := openTestDB(t, &loanDomain.Loan{}, &auditDomain.LoanDeletion{})
	ctx := context.Background()

	l := makeLoan(loanDomain.TypeCD, 1, "2024-01-05", "John")
	NewLoanRepository(db).Save(ctx, l)

	boom := errors.New("audit write refused")
	err := NewGormUoW(db).WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Delete(ctx, l.ID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	var loans int64
	db.Model(&loanDomain.Loan{}).Count(&loans)
	if loans != 1 {
		t.Errorf("delete not rolled back, loans = %d", loans)
	}
}
