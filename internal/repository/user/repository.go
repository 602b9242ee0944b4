package user

import (
	"context"

	"bookstore-api/internal/domain"
)

// Repository reads stored accounts. Users are read-only in this API; the
// seed tool is the only writer.
type Repository interface {
	All(ctx context.Context) ([]domain.User, error)
	// GetByEmail returns the user with exactly this email, or
	// domain.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ReplaceAll(ctx context.Context, users []domain.User) error
}
