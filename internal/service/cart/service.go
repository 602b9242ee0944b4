package cart

import (
	"context"
	"time"

	"bookstore-api/internal/domain"
)

type cartRepo interface {
	Get(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

type productRepo interface {
	All(ctx context.Context) ([]domain.Product, error)
}

// Service maintains the shared cart: one line item per product, quantities
// merged on repeated adds, totals recomputed before every persist.
type Service struct {
	carts    cartRepo
	products productRepo
	now      func() time.Time
}

func New(carts cartRepo, products productRepo) *Service {
	return &Service{carts: carts, products: products, now: time.Now}
}

// Get returns the persisted cart, or an empty one.
func (s *Service) Get(ctx context.Context) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts quantity units of the product into the cart. Only active
// products qualify; an inactive product answers like a missing one. The
// stock check compares against the added quantity alone; merging into an
// existing line does not re-check the merged total.
func (s *Service) AddItem(ctx context.Context, productID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity must be at least 1", "quantity")
	}

	product, err := s.findActiveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &domain.StockError{ProductID: productID, Requested: quantity, Available: product.Stock}
	}

	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Title:     product.Title,
			Author:    product.Author,
			Price:     product.EffectivePrice(),
			ImageURL:  product.ImageURL,
			AddedAt:   s.now(),
		})
	}

	return s.persist(ctx, cart)
}

// RemoveItem drops the line item for productID. Removing an absent product
// is a no-op; the cart comes back unchanged.
func (s *Service) RemoveItem(ctx context.Context, productID int) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	return s.persist(ctx, cart)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) (*domain.Cart, error) {
	cart := domain.EmptyCart()
	return s.persist(ctx, cart)
}

func (s *Service) persist(ctx context.Context, cart domain.Cart) (*domain.Cart, error) {
	cart.Recalculate()
	cart.LastUpdated = s.now()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *Service) findActiveProduct(ctx context.Context, productID int) (*domain.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID && products[i].IsActive {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
