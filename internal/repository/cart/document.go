package cart

import (
	"context"
	"io"
	"log"

	"bookstore-api/internal/docstore"
	"bookstore-api/internal/domain"
)

type documentRepo struct {
	store  docstore.Store
	logger *log.Logger
}

// NewDocument returns a Repository backed by the cart collection.
func NewDocument(store docstore.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &documentRepo{store: store, logger: logger}
}

func (r *documentRepo) Get(ctx context.Context) (domain.Cart, error) {
	cart := domain.EmptyCart()
	if err := r.store.Read(ctx, docstore.CollectionCart, &cart); err != nil {
		r.logger.Printf("cart repo: read error=%v", err)
		return domain.EmptyCart(), err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

func (r *documentRepo) Save(ctx context.Context, cart domain.Cart) error {
	if err := r.store.Write(ctx, docstore.CollectionCart, cart); err != nil {
		r.logger.Printf("cart repo: write items=%d error=%v", len(cart.Items), err)
		return err
	}
	return nil
}
