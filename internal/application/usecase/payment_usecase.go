// internal/application/usecase/payment_usecase.go
package usecase

import (
	"context"
	"math"
	"strings"

	paydom "travelia/internal/domain/payment"
	tourdom "travelia/internal/domain/tour"
)

type PaymentUsecase struct {
	tours   tourdom.Repository
	intents paydom.IntentCreator
}

func NewPaymentUsecase(tours tourdom.Repository, intents paydom.IntentCreator) *PaymentUsecase {
	return &PaymentUsecase{tours: tours, intents: intents}
}

// CreateIntent opens a payment intent over a tour's price and returns the
// client secret the client-side SDK needs to confirm the payment.
func (u *PaymentUsecase) CreateIntent(ctx context.Context, tourID, userID string) (string, error) {
	tourID = strings.TrimSpace(tourID)
	if tourID == "" {
		return "", paydom.ErrMissingTour
	}

	t, err := u.tours.GetByID(ctx, tourID)
	if err != nil {
		return "", err
	}

	amountCents := int64(math.Round(t.Price * 100))
	return u.intents.CreateIntent(ctx, amountCents, "usd", map[string]string{
		"tourId": t.ID,
		"userId": userID,
	})
}
