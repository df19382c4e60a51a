package audit

import "context"

// Window filters listings by the audit timestamp. From/To are YYYY-MM-DD,
// Month is YYYY-MM; all optional.
type Window struct {
	From  string
	To    string
	Month string
}

type Repository interface {
	CreateEdit(ctx context.Context, e *LoanEdit) error
	CreateDeletion(ctx context.Context, d *LoanDeletion) error
	// ListEdits and ListDeletions return newest first.
	ListEdits(ctx context.Context, w Window) ([]LoanEdit, error)
	ListDeletions(ctx context.Context, w Window) ([]LoanDeletion, error)
}
