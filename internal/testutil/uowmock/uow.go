package uowmock

import (
	"context"

	"finbook-backend/internal/domain/uow"
)

// UoW runs the callback against the provided repos with no real transaction.
type UoW struct {
	Repos uow.Repos
	// Err, when set, is returned without invoking fn.
	Err error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m.Repos)
}
