package payments

import (
	"context"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/client"

	"github.com/BERSERKRobot/chess-website-v2/internal/config"
)

// stripeGateway talks to Stripe through an injected client. The client is
// built once at process start and reused across requests.
type stripeGateway struct {
	api *client.API
}

// NewGateway builds the Stripe gateway from configuration. With no secret
// key every call fails with ErrGatewayDisabled.
func NewGateway(cfg config.StripeConfig) Gateway {
	if cfg.SecretKey == "" {
		return disabledGateway{}
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeGateway{api: api}
}

// CreateIntent creates a payment intent: usd, automatic payment methods,
// receipt email, and the caller's metadata map.
func (g *stripeGateway) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	piParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	piParams.Context = ctx
	if params.ReceiptEmail != "" {
		piParams.ReceiptEmail = stripe.String(params.ReceiptEmail)
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(piParams)
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

// RetrieveIntent reads an intent by id.
func (g *stripeGateway) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	piParams := &stripe.PaymentIntentParams{}
	piParams.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, piParams)
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

func fromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     pi.Metadata,
	}
}
