package product

import (
	"context"

	"bookstore-api/internal/domain"
)

// Repository gives whole-collection access to products. Mutations go
// through ReplaceAll: callers load everything, change it and write it back.
type Repository interface {
	All(ctx context.Context) ([]domain.Product, error)
	ReplaceAll(ctx context.Context, products []domain.Product) error
}
