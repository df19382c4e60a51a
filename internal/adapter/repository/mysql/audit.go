package mysql

import (
	"context"
	"time"

	auditDomain "finbook-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) CreateEdit(ctx context.Context, e *auditDomain.LoanEdit) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) CreateDeletion(ctx context.Context, d *auditDomain.LoanDeletion) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *AuditRepository) ListEdits(ctx context.Context, w auditDomain.Window) ([]auditDomain.LoanEdit, error) {
	var out []auditDomain.LoanEdit
	res := windowed(r.db.WithContext(ctx), "edited_at", w).Order("edited_at DESC").Find(&out)
	return out, res.Error
}

func (r *AuditRepository) ListDeletions(ctx context.Context, w auditDomain.Window) ([]auditDomain.LoanDeletion, error) {
	var out []auditDomain.LoanDeletion
	res := windowed(r.db.WithContext(ctx), "deleted_at", w).Order("deleted_at DESC").Find(&out)
	return out, res.Error
}

// windowed narrows a query to the audit window. Month takes the whole
// calendar month; explicit bounds are inclusive of both days.
func windowed(db *gorm.DB, column string, w auditDomain.Window) *gorm.DB {
	if w.Month != "" {
		return db.Where(column+" >= ? AND "+column+" < ?", w.Month+"-01", nextMonth(w.Month)+"-01")
	}
	if w.From != "" {
		db = db.Where(column+" >= ?", w.From)
	}
	if w.To != "" {
		db = db.Where(column+" <= ?", w.To+"T23:59:59")
	}
	return db
}

// nextMonth advances a "YYYY-MM" string by one month. Unparseable input is
// returned as-is, which makes the window match nothing.
func nextMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, 1, 0).Format("2006-01")
}
