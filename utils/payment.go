package utils

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"food-delivery-api/models"
)

// Currency used for every checkout session.
const Currency = "usd"

// DeliveryChargeCents is the fixed delivery surcharge appended to every
// checkout session, in minor currency units ($2).
const DeliveryChargeCents = 200

// Gateway creates a hosted payment session for an order and returns the URL
// the customer is redirected to.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, order *models.Order) (string, error)
}

// StripeGateway implements Gateway against the Stripe checkout API.
type StripeGateway struct {
	FrontendURL string
}

// NewStripeGateway sets the Stripe API key and returns a gateway whose
// redirect URLs point at the given frontend.
func NewStripeGateway(secretKey, frontendURL string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{FrontendURL: frontendURL}
}

// BuildLineItems converts order items into checkout line items, one per item
// with its unit price in cents, plus the fixed delivery-charge entry.
func BuildLineItems(items []models.OrderItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items)+1)
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				// Rounded so float prices cannot produce fractional cents.
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(Currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String("Delivery Charges"),
			},
			UnitAmount: stripe.Int64(DeliveryChargeCents),
		},
		Quantity: stripe.Int64(1),
	})

	return lineItems
}

// CreateCheckoutSession opens a hosted checkout session for the order. The
// success and cancel redirects both carry the order id, so the frontend can
// call the verification endpoint with the outcome.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, order *models.Order) (string, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems:  BuildLineItems(order.Items),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&orderId=%s", g.FrontendURL, order.ID.Hex())),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&orderId=%s", g.FrontendURL, order.ID.Hex())),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.URL, nil
}
