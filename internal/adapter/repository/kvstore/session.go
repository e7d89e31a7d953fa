package kvstore

import (
	"context"

	"loanflow/internal/domain/user"
)

// SessionRepository holds the single "current user" record under its
// own key, separate from the users collection.
type SessionRepository struct{ s *Store }

func NewSessionRepository(s *Store) *SessionRepository { return &SessionRepository{s: s} }

func (r *SessionRepository) Current(ctx context.Context) (*user.User, error) {
	var u user.User
	ok, err := r.s.get(ctx, KeySession, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *SessionRepository) Set(ctx context.Context, u *user.User) error {
	return r.s.put(ctx, KeySession, u)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.s.delete(ctx, KeySession)
}
