package product

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

// NewDocument returns a Repository backed by the products collection of the
// given document store.
func NewDocument(store docstore.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &documentRepo{store: store, logger: logger}
}

func (r *documentRepo) All(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.store.Read(ctx, docstore.CollectionProducts, &products); err != nil {
		r.logger.Printf("product repo: read error=%v", err)
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (r *documentRepo) ReplaceAll(ctx context.Context, products []domain.Product) error {
	if err := r.store.Write(ctx, docstore.CollectionProducts, products); err != nil {
		r.logger.Printf("product repo: write count=%d error=%v", len(products), err)
		return err
	}
	r.logger.Printf("product repo: wrote count=%d", len(products))
	return nil
}
