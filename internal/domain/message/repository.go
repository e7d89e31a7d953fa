package message

import "context"

// Two parallel stores, one per scope. Membership of a conversation is
// computed by filtering the full list on every read.
type LoanMessageRepository interface {
	All(ctx context.Context) ([]LoanMessage, error)
	ReplaceAll(ctx context.Context, msgs []LoanMessage) error
}

type DirectMessageRepository interface {
	All(ctx context.Context) ([]DirectMessage, error)
	ReplaceAll(ctx context.Context, msgs []DirectMessage) error
}
