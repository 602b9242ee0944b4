package checkout

import (
	"context"
	"math"
	"strings"

	"bookstore-api/internal/domain"
)

// LineItem is one cart line converted for the payment gateway. Amounts are
// in bani (cents) because gateways bill in minor units.
type LineItem struct {
	Title      string
	Author     string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

// Session is the gateway handle for an in-progress payment attempt.
type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"sessionUrl"`
}

// Gateway is the external payment collaborator. Failures are surfaced as-is;
// there is no retry policy.
type Gateway interface {
	CreateSession(ctx context.Context, totalAmount int64, lines []LineItem) (*Session, error)
	SessionStatus(ctx context.Context, sessionID string) (string, error)
}

type cartRepo interface {
	Get(ctx context.Context) (domain.Cart, error)
}

// Service turns the current cart into a payment session.
type Service struct {
	carts   cartRepo
	gateway Gateway
}

func New(carts cartRepo, gateway Gateway) *Service {
	return &Service{carts: carts, gateway: gateway}
}

// CreateSession builds gateway line items from the cart and asks the
// gateway for a session. An empty cart is rejected before the gateway is
// ever contacted.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.NewValidationError("cart is empty")
	}

	lines := make([]LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, LineItem{
			Title:      it.Title,
			Author:     it.Author,
			ImageURL:   it.ImageURL,
			UnitAmount: toMinorUnits(it.Price),
			Quantity:   int64(it.Quantity),
		})
	}

	return s.gateway.CreateSession(ctx, toMinorUnits(cart.Total), lines)
}

// SessionStatus reports the payment state of a session.
func (s *Service) SessionStatus(ctx context.Context, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", domain.NewValidationError("session id required", "sessionId")
	}
	return s.gateway.SessionStatus(ctx, sessionID)
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
