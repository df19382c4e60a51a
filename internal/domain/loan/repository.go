package loan

import "context"

type Repository interface {
	// List returns the full collection, newest loan date first.
	List(ctx context.Context) ([]Loan, error)
	GetByID(ctx context.Context, id string) (*Loan, error)
	// Save inserts or overwrites by id.
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, id string) error
	// MaxNumber returns the highest allocated number for a loan type, 0 when none.
	MaxNumber(ctx context.Context, t Type) (int, error)
}

type InstallmentRepository interface {
	ListByLoan(ctx context.Context, loanID string) ([]Installment, error)
	// UpsertSchedule writes rows keyed by (loan_id, sn), overwriting existing ones.
	UpsertSchedule(ctx context.Context, items []Installment) error
}
