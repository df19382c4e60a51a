package uow

import (
	"context"

	"finbook-backend/internal/domain/audit"
	"finbook-backend/internal/domain/loan"
)

// Repos bundles the repositories that take part in a loan mutation so the
// audit snapshot lands in the same transaction as the change it records.
type Repos struct {
	Loans        loan.Repository
	Installments loan.InstallmentRepository
	Audit        audit.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
