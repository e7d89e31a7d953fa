package loan

import "context"

// Repository reads and replaces the whole loans collection. Updates are
// read-modify-write over the snapshot; the last writer wins for the
// entire collection, not per record.
type Repository interface {
	All(ctx context.Context) ([]Loan, error)
	ReplaceAll(ctx context.Context, loans []Loan) error
}
