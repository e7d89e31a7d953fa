package kvstore

import (
	"context"

	"loanflow/internal/domain/user"
)

type UserRepository struct{ s *Store }

func NewUserRepository(s *Store) *UserRepository { return &UserRepository{s: s} }

func (r *UserRepository) All(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if _, err := r.s.get(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ReplaceAll(ctx context.Context, users []user.User) error {
	return r.s.put(ctx, KeyUsers, users)
}
