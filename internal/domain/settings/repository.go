package settings

import (
	"context"
	"errors"
)

var ErrLoanTypeNotFound = errors.New("loan type not found")

type Repository interface {
	Get(ctx context.Context) (*SystemSettings, error)
	Replace(ctx context.Context, s *SystemSettings) error
}
