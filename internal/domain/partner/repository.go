package partner

import "context"

type Repository interface {
	// List returns all partners, name ascending.
	List(ctx context.Context) ([]Partner, error)
	Save(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id string) error
}
