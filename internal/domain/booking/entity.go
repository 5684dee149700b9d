// internal/domain/booking/entity.go
package booking

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("booking not found")

// Booking statuses written by the client's payment flow.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Booking is one reservation document. TourData is a denormalized snapshot of
// the tour at booking time (the client reads price_tour out of it).
type Booking struct {
	ID        string         `firestore:"-" json:"firestoreId"`
	TourID    string         `firestore:"tourId" json:"tourId"`
	UserID    string         `firestore:"userId" json:"userId"`
	Status    string         `firestore:"status" json:"status"`
	TourData  map[string]any `firestore:"tourData" json:"tourData"`
	CreatedAt time.Time      `firestore:"createdAt" json:"createdAt"`
}

// Repository is the outbound port for the bookings collection.
type Repository interface {
	// List returns all bookings, newest first.
	List(ctx context.Context) ([]Booking, error)
}

// Price extracts the booked tour price from the denormalized snapshot.
func (b Booking) Price() float64 {
	switch v := b.TourData["price_tour"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}
