package cart

import (
	"context"

	"bookstore-api/internal/domain"
)

// Repository holds the single shared cart document.
type Repository interface {
	// Get returns the persisted cart, or an empty cart if none was ever
	// saved.
	Get(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}
