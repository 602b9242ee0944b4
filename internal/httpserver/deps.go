package httpserver

import (
	"context"

	"bookstore-api/internal/docstore"
	"bookstore-api/internal/domain"
	authsvc "bookstore-api/internal/service/auth"
	catalogsvc "bookstore-api/internal/service/catalog"
	checkoutsvc "bookstore-api/internal/service/checkout"
	productsvc "bookstore-api/internal/service/product"
)

// AuthService is the admin gate consumed by the login handler and the admin
// middleware.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*authsvc.Identity, string, error)
	Authenticate(header string) (*authsvc.Identity, error)
	RequireRole(id *authsvc.Identity, role string) error
}

// CatalogService answers the public and admin product listings.
type CatalogService interface {
	QueryPublic(ctx context.Context, q catalogsvc.PublicQuery) (*catalogsvc.PublicResult, error)
	QueryAdmin(ctx context.Context, q catalogsvc.AdminQuery) (*catalogsvc.AdminResult, error)
}

// CartService mutates the shared cart.
type CartService interface {
	Get(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, productID int) (*domain.Cart, error)
	Clear(ctx context.Context) (*domain.Cart, error)
}

// ProductService applies admin catalog mutations.
type ProductService interface {
	Create(ctx context.Context, in productsvc.CreateInput, createdBy string) (*domain.Product, error)
	Update(ctx context.Context, id int, in productsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int, permanent bool) error
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

// CheckoutService drives the external payment collaborator. May be nil when
// no gateway is configured; the routes then answer 503.
type CheckoutService interface {
	CreateSession(ctx context.Context) (*checkoutsvc.Session, error)
	SessionStatus(ctx context.Context, sessionID string) (string, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Auth     AuthService
	Catalog  CatalogService
	Cart     CartService
	Products ProductService
	Checkout CheckoutService
	Store    docstore.Store // readiness probe only
}
