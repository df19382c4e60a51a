package partnermock

import (
	"context"
	"errors"

	domain "finbook-backend/internal/domain/partner"
)

type Repo struct {
	ListFn   func(ctx context.Context) ([]domain.Partner, error)
	SaveFn   func(ctx context.Context, p *domain.Partner) error
	DeleteFn func(ctx context.Context, id string) error
}

func (m *Repo) List(ctx context.Context) ([]domain.Partner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Save(ctx context.Context, p *domain.Partner) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
