// Package stripecheckout implements the checkout gateway on Stripe Checkout
// Sessions.
package stripecheckout

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"bookstore-api/internal/service/checkout"
)

const currency = "ron"

// Gateway creates and inspects Stripe Checkout sessions. The API key comes
// from configuration; it is never compiled in.
type Gateway struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func New(apiKey, successURL, cancelURL string) *Gateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Gateway{api: api, successURL: successURL, cancelURL: cancelURL}
}

// CreateSession opens a one-off payment session for the given lines.
func (g *Gateway) CreateSession(ctx context.Context, totalAmount int64, lines []checkout.LineItem) (*checkout.Session, error) {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(line.Title),
			Description: stripe.String(line.Author),
		}
		if line.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{line.ImageURL})
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(line.UnitAmount),
				ProductData: product,
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  items,
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata("cartTotal", fmt.Sprintf("%d", totalAmount))

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create session: %w", err)
	}
	return &checkout.Session{ID: sess.ID, URL: sess.URL}, nil
}

// SessionStatus returns Stripe's payment status for the session, one of
// "paid", "unpaid" or "no_payment_required".
func (g *Gateway) SessionStatus(ctx context.Context, sessionID string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return "", fmt.Errorf("stripe: get session: %w", err)
	}
	return string(sess.PaymentStatus), nil
}
