package ledgermock

import (
	"context"
	"errors"

	domain "finbook-backend/internal/domain/ledger"
)

type Repo struct {
	ListFn       func(ctx context.Context) ([]domain.Transaction, error)
	ListByDateFn func(ctx context.Context, date string) ([]domain.Transaction, error)
	CreateFn     func(ctx context.Context, t *domain.Transaction) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) ListByDate(ctx context.Context, date string) ([]domain.Transaction, error) {
	if m.ListByDateFn != nil {
		return m.ListByDateFn(ctx, date)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
