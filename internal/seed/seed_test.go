package seed

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/docstore"
	"bookstore-api/internal/domain"
	cartrepo "bookstore-api/internal/repository/cart"
	productrepo "bookstore-api/internal/repository/product"
	userrepo "bookstore-api/internal/repository/user"
)

func TestApplySeedsEmptyStore(t *testing.T) {
	store := docstore.NewMemoryStore()
	products := productrepo.NewDocument(store, nil)
	users := userrepo.NewDocument(store, nil)
	carts := cartrepo.NewDocument(store, nil)
	ctx := context.Background()

	opts := Options{AdminEmail: "admin@bookstore.test", AdminPassword: "secret", AdminName: "Ana"}
	if err := Apply(ctx, products, users, carts, opts); err != nil {
		t.Fatalf("apply: %v", err)
	}

	catalog, err := products.All(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatalf("expected a seeded catalog")
	}
	for _, p := range catalog {
		if p.ID == 0 || p.Title == "" || !p.IsActive {
			t.Fatalf("incomplete seeded product: %+v", p)
		}
	}

	admin, err := users.GetByEmail(ctx, "admin@bookstore.test")
	if err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("seeded password hash does not verify: %v", err)
	}

	cart, err := carts.Get(ctx)
	if err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if len(cart.Items) != 0 || cart.Items == nil {
		t.Fatalf("expected an empty, non-nil cart, got %+v", cart)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := docstore.NewMemoryStore()
	products := productrepo.NewDocument(store, nil)
	users := userrepo.NewDocument(store, nil)
	carts := cartrepo.NewDocument(store, nil)
	ctx := context.Background()

	if err := products.ReplaceAll(ctx, []domain.Product{{ID: 42, Title: "Existing", IsActive: true}}); err != nil {
		t.Fatalf("pre-seed: %v", err)
	}

	opts := Options{AdminEmail: "admin@bookstore.test", AdminPassword: "secret", AdminName: "Ana"}
	if err := Apply(ctx, products, users, carts, opts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := Apply(ctx, products, users, carts, opts); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	catalog, err := products.All(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(catalog) != 1 || catalog[0].ID != 42 {
		t.Fatalf("existing catalog was clobbered: %+v", catalog)
	}

	all, err := users.All(ctx)
	if err != nil {
		t.Fatalf("load users: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one admin after two runs, got %d", len(all))
	}
}
