package charge

import (
	"context"

	"github.com/stripe/stripe-go/v72"
	chargeapi "github.com/stripe/stripe-go/v72/charge"
)

// StripeProvider captures card payments through Stripe.
type StripeProvider struct {
	currency string
}

// NewStripeProvider configures the Stripe client. The API key comes from
// the caller so it can be loaded from the environment in one place.
func NewStripeProvider(apiKey, currency string) *StripeProvider {
	stripe.Key = apiKey
	if currency == "" {
		currency = string(stripe.CurrencyJPY)
	}
	return &StripeProvider{currency: currency}
}

func (p *StripeProvider) Capture(ctx context.Context, amount int64, source, description string) (string, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(p.currency),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if source != "" {
		if err := params.SetSource(source); err != nil {
			return "", err
		}
	}

	ch, err := chargeapi.New(params)
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}
