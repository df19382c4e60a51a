package customermock

import (
	"context"
	"errors"

	domain "finbook-backend/internal/domain/customer"
)

type CustomerRepo struct {
	ListFn          func(ctx context.Context) ([]domain.Customer, error)
	GetByIDFn       func(ctx context.Context, id string) (*domain.Customer, error)
	SaveFn          func(ctx context.Context, c *domain.Customer) error
	DeleteFn        func(ctx context.Context, id string) error
	MaxCustomerIDFn func(ctx context.Context) (int, error)
	SetImageURLFn   func(ctx context.Context, id, url string) error
}

func (m *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *CustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *CustomerRepo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *CustomerRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *CustomerRepo) MaxCustomerID(ctx context.Context) (int, error) {
	if m.MaxCustomerIDFn != nil {
		return m.MaxCustomerIDFn(ctx)
	}
	return 0, nil
}

func (m *CustomerRepo) SetImageURL(ctx context.Context, id, url string) error {
	if m.SetImageURLFn != nil {
		return m.SetImageURLFn(ctx, id, url)
	}
	return nil
}

type GuarantorRepo struct {
	ListFn           func(ctx context.Context) ([]domain.Guarantor, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Guarantor, error)
	SaveFn           func(ctx context.Context, g *domain.Guarantor) error
	DeleteFn         func(ctx context.Context, id string) error
	MaxGuarantorIDFn func(ctx context.Context) (int, error)
	SetImageURLFn    func(ctx context.Context, id, url string) error
}

func (m *GuarantorRepo) List(ctx context.Context) ([]domain.Guarantor, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *GuarantorRepo) GetByID(ctx context.Context, id string) (*domain.Guarantor, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *GuarantorRepo) Save(ctx context.Context, g *domain.Guarantor) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *GuarantorRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *GuarantorRepo) MaxGuarantorID(ctx context.Context) (int, error) {
	if m.MaxGuarantorIDFn != nil {
		return m.MaxGuarantorIDFn(ctx)
	}
	return 0, nil
}

func (m *GuarantorRepo) SetImageURL(ctx context.Context, id, url string) error {
	if m.SetImageURLFn != nil {
		return m.SetImageURLFn(ctx, id, url)
	}
	return nil
}
