package mysql

import (
	"context"

	ledgerDomain "finbook-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context) ([]ledgerDomain.Transaction, error) {
	var out []ledgerDomain.Transaction
	res := r.db.WithContext(ctx).Order("date DESC, entry_time DESC").Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByDate(ctx context.Context, date string) ([]ledgerDomain.Transaction, error) {
	var out []ledgerDomain.Transaction
	res := r.db.WithContext(ctx).Where("date = ?", date).Order("entry_time ASC, id ASC").Find(&out)
	return out, res.Error
}

// Create is insert-only; the book never rewrites an entry.
func (r *TransactionRepository) Create(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}
