package user

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

// NewDocument returns a Repository backed by the users collection.
func NewDocument(store docstore.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &documentRepo{store: store, logger: logger}
}

func (r *documentRepo) All(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Read(ctx, docstore.CollectionUsers, &users); err != nil {
		r.logger.Printf("user repo: read error=%v", err)
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *documentRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *documentRepo) ReplaceAll(ctx context.Context, users []domain.User) error {
	if err := r.store.Write(ctx, docstore.CollectionUsers, users); err != nil {
		r.logger.Printf("user repo: write count=%d error=%v", len(users), err)
		return err
	}
	return nil
}
