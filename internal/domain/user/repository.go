package user

import "context"

// Repository reads and replaces the whole users collection; lookups are
// linear scans over the snapshot, matching the storage model (one JSON
// blob per collection, last-write-wins).
type Repository interface {
	All(ctx context.Context) ([]User, error)
	ReplaceAll(ctx context.Context, users []User) error
}
