package customer

import "context"

type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
	// MaxCustomerID returns the highest allocated sequential id, 0 when none.
	MaxCustomerID(ctx context.Context) (int, error)
	SetImageURL(ctx context.Context, id, url string) error
}

type GuarantorRepository interface {
	List(ctx context.Context) ([]Guarantor, error)
	GetByID(ctx context.Context, id string) (*Guarantor, error)
	Save(ctx context.Context, g *Guarantor) error
	Delete(ctx context.Context, id string) error
	MaxGuarantorID(ctx context.Context) (int, error)
	SetImageURL(ctx context.Context, id, url string) error
}
