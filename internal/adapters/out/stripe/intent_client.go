// internal/adapters/out/stripe/intent_client.go
package stripe

import (
	"context"
	"errors"
	"log"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	paydom "travelia/internal/domain/payment"
)

// IntentClient implements payment.IntentCreator on the Stripe SDK.
type IntentClient struct {
	api *client.API
}

// NewIntentClient builds a client bound to one secret key.
func NewIntentClient(secretKey string) *IntentClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &IntentClient{api: api}
}

// Compile-time check
var _ paydom.IntentCreator = (*IntentClient)(nil)

func (c *IntentClient) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (string, error) {
	if c == nil || c.api == nil {
		return "", errors.New("stripe client is nil")
	}

	params := &stripego.PaymentIntentParams{
		Params:   stripego.Params{Context: ctx},
		Amount:   stripego.Int64(amountCents),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[stripe] payment intent creation failed: %v", err)
		return "", paydom.ErrIntentFailed
	}
	return pi.ClientSecret, nil
}
