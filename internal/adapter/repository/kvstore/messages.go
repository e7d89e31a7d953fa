package kvstore

import (
	"context"

	"loanflow/internal/domain/message"
)

// The two chat scopes keep their own keys and schemas. Do not unify:
// each client filters its own flat list and would break on a merged
// collection.

type LoanMessageRepository struct{ s *Store }

func NewLoanMessageRepository(s *Store) *LoanMessageRepository {
	return &LoanMessageRepository{s: s}
}

func (r *LoanMessageRepository) All(ctx context.Context) ([]message.LoanMessage, error) {
	var msgs []message.LoanMessage
	if _, err := r.s.get(ctx, KeyLoanMessages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *LoanMessageRepository) ReplaceAll(ctx context.Context, msgs []message.LoanMessage) error {
	return r.s.put(ctx, KeyLoanMessages, msgs)
}

type DirectMessageRepository struct{ s *Store }

func NewDirectMessageRepository(s *Store) *DirectMessageRepository {
	return &DirectMessageRepository{s: s}
}

func (r *DirectMessageRepository) All(ctx context.Context) ([]message.DirectMessage, error) {
	var msgs []message.DirectMessage
	if _, err := r.s.get(ctx, KeyDirectMessages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *DirectMessageRepository) ReplaceAll(ctx context.Context, msgs []message.DirectMessage) error {
	return r.s.put(ctx, KeyDirectMessages, msgs)
}
