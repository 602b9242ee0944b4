package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domain"
	cartrepo "bookstore-api/internal/repository/cart"
	productrepo "bookstore-api/internal/repository/product"
	userrepo "bookstore-api/internal/repository/user"
)

// Options configures the demo data written by Apply.
type Options struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Apply writes a demo catalog, an admin account and an empty cart for
// manual testing. Each collection is seeded only when it is empty, so
// re-running the seeder never clobbers existing data.
func Apply(ctx context.Context, products productrepo.Repository, users userrepo.Repository, carts cartrepo.Repository, opts Options) error {
	if err := seedProducts(ctx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedAdmin(ctx, users, opts); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCart(ctx, carts); err != nil {
		return fmt.Errorf("seed cart: %w", err)
	}
	return nil
}

func seedProducts(ctx context.Context, repo productrepo.Repository) error {
	existing, err := repo.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return repo.ReplaceAll(ctx, demoCatalog())
}

func seedAdmin(ctx context.Context, repo userrepo.Repository, opts Options) error {
	existing, err := repo.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return repo.ReplaceAll(ctx, []domain.User{{
		ID:           "admin-1",
		Email:        opts.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         opts.AdminName,
	}})
}

func seedCart(ctx context.Context, repo cartrepo.Repository) error {
	cart, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) > 0 {
		return nil
	}
	return repo.Save(ctx, domain.EmptyCart())
}

func demoCatalog() []domain.Product {
	now := time.Now()
	discount := func(v float64) *float64 { return &v }
	rating := func(v float64) *float64 { return &v }

	books := []domain.Product{
		{
			ID:          1,
			Title:       "Enigma Otiliei",
			Author:      "George Calinescu",
			ISBN:        "9789734609825",
			Category:    "Fiction",
			Price:       49.90,
			Description: "Roman interbelic despre familia Giurgiuveanu si mostenirea ei.",
			Stock:       14,
			Rating:      rating(4.7),
			ReviewCount: 182,
			Featured:    true,
			Tags:        []string{"clasic", "roman"},
		},
		{
			ID:            2,
			Title:         "Morometii",
			Author:        "Marin Preda",
			ISBN:          "9789734671813",
			Category:      "Fiction",
			Price:         59.90,
			DiscountPrice: discount(44.90),
			Description:   "Destinul familiei Moromete in satul din Campia Dunarii.",
			Stock:         9,
			Rating:        rating(4.8),
			ReviewCount:   240,
			Tags:          []string{"clasic"},
		},
		{
			ID:          3,
			Title:       "Amintiri din copilarie",
			Author:      "Ion Creanga",
			ISBN:        "9789731048529",
			Category:    "Memorii",
			Price:       29.90,
			Description: "Copilaria lui Nica din Humulesti.",
			Stock:       25,
			Rating:      rating(4.9),
			ReviewCount: 305,
			Featured:    true,
		},
		{
			ID:            4,
			Title:         "Istoria romanilor",
			Author:        "Neagu Djuvara",
			ISBN:          "9789735049943",
			Category:      "Istorie",
			Price:         64.90,
			DiscountPrice: discount(54.90),
			Description:   "O scurta istorie ilustrata a romanilor.",
			Stock:         6,
			Rating:        rating(4.6),
			ReviewCount:   98,
		},
		{
			ID:          5,
			Title:       "Poezii",
			Author:      "Mihai Eminescu",
			ISBN:        "9789731052786",
			Category:    "Poezie",
			Price:       34.90,
			Description: "Editie ingrijita a poeziilor antume.",
			Stock:       0,
			Rating:      rating(4.9),
			ReviewCount: 410,
		},
	}

	for i := range books {
		books[i].ImageURL = "/images/book-placeholder.jpg"
		books[i].IsActive = true
		books[i].Specifications.Language = "Romanian"
		books[i].Specifications.Format = "Paperback"
		books[i].CreatedAt = now
		books[i].UpdatedAt = now
		books[i].CreatedBy = "seed"
		if books[i].Tags == nil {
			books[i].Tags = []string{}
		}
	}
	return books
}
