package mysql

import (
	"context"

	"finbook-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// GormUoW runs a callback against repositories bound to one transaction, so a
// loan mutation and its audit snapshot commit or roll back together.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Loans:        NewLoanRepository(tx),
			Installments: NewInstallmentRepository(tx),
			Audit:        NewAuditRepository(tx),
		})
	})
}
