// Package payments wraps the Stripe payment-intent API behind a small
// gateway interface so services can be tested without network calls.
package payments

import (
	"context"
	"errors"
)

// ErrGatewayDisabled is returned when no processor secret key was configured.
// The service degrades to guaranteed failures instead of crashing.
var ErrGatewayDisabled = errors.New("payment gateway disabled: no secret key configured")

// Intent is the slice of a processor payment intent this system reads.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	ReceiptEmail string
	Metadata     map[string]string
}

// CreateIntentParams describes one intent creation request. Amount is in
// minor currency units and the currency is always usd.
type CreateIntentParams struct {
	AmountCents  int64
	ReceiptEmail string
	Metadata     map[string]string
}

// Gateway creates and reads payment intents. This system never transitions
// an intent itself; confirmation happens in the processor's hosted UI.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}

type disabledGateway struct{}

func (disabledGateway) CreateIntent(context.Context, CreateIntentParams) (*Intent, error) {
	return nil, ErrGatewayDisabled
}

func (disabledGateway) RetrieveIntent(context.Context, string) (*Intent, error) {
	return nil, ErrGatewayDisabled
}
