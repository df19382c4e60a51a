package auditmock

import (
	"context"

	domain "finbook-backend/internal/domain/audit"
)

type Repo struct {
	CreateEditFn     func(ctx context.Context, e *domain.LoanEdit) error
	CreateDeletionFn func(ctx context.Context, d *domain.LoanDeletion) error
	ListEditsFn      func(ctx context.Context, w domain.Window) ([]domain.LoanEdit, error)
	ListDeletionsFn  func(ctx context.Context, w domain.Window) ([]domain.LoanDeletion, error)
}

func (m *Repo) CreateEdit(ctx context.Context, e *domain.LoanEdit) error {
	if m.CreateEditFn != nil {
		return m.CreateEditFn(ctx, e)
	}
	return nil
}

func (m *Repo) CreateDeletion(ctx context.Context, d *domain.LoanDeletion) error {
	if m.CreateDeletionFn != nil {
		return m.CreateDeletionFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListEdits(ctx context.Context, w domain.Window) ([]domain.LoanEdit, error) {
	if m.ListEditsFn != nil {
		return m.ListEditsFn(ctx, w)
	}
	return nil, nil
}

func (m *Repo) ListDeletions(ctx context.Context, w domain.Window) ([]domain.LoanDeletion, error) {
	if m.ListDeletionsFn != nil {
		return m.ListDeletionsFn(ctx, w)
	}
	return nil, nil
}
