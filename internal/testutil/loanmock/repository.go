// Package loanmock provides function-backed test doubles for the loan
// repositories; set only the funcs a test needs.
package loanmock

import (
	"context"
	"errors"

	domain "finbook-backend/internal/domain/loan"
)

type Repo struct {
	ListFn      func(ctx context.Context) ([]domain.Loan, error)
	GetByIDFn   func(ctx context.Context, id string) (*domain.Loan, error)
	SaveFn      func(ctx context.Context, l *domain.Loan) error
	DeleteFn    func(ctx context.Context, id string) error
	MaxNumberFn func(ctx context.Context, t domain.Type) (int, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) MaxNumber(ctx context.Context, t domain.Type) (int, error) {
	if m.MaxNumberFn != nil {
		return m.MaxNumberFn(ctx, t)
	}
	return 0, nil
}

type InstallmentRepo struct {
	ListByLoanFn     func(ctx context.Context, loanID string) ([]domain.Installment, error)
	UpsertScheduleFn func(ctx context.Context, items []domain.Installment) error
}

func (m *InstallmentRepo) ListByLoan(ctx context.Context, loanID string) ([]domain.Installment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}

func (m *InstallmentRepo) UpsertSchedule(ctx context.Context, items []domain.Installment) error {
	if m.UpsertScheduleFn != nil {
		return m.UpsertScheduleFn(ctx, items)
	}
	return nil
}
