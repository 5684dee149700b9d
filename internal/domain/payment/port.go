// internal/domain/payment/port.go
package payment

import (
	"context"
	"errors"
)

var (
	ErrMissingTour  = errors.New("payment: missing tourId")
	ErrIntentFailed = errors.New("payment: intent creation failed")
)

// IntentCreator is the outbound port to the payment processor.
type IntentCreator interface {
	// CreateIntent opens a payment intent and returns its client secret.
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (clientSecret string, err error)
}
