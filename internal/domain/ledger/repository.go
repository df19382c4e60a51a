package ledger

import "context"

type Repository interface {
	// List returns the full collection, newest first (date desc, entry time desc).
	List(ctx context.Context) ([]Transaction, error)
	// ListByDate returns one calendar date's entries in entry order.
	ListByDate(ctx context.Context, date string) ([]Transaction, error)
	// Create inserts; ledger entries are never overwritten.
	Create(ctx context.Context, t *Transaction) error
}
