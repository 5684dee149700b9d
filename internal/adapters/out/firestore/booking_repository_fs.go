// internal/adapters/out/firestore/booking_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	bookingdom "travelia/internal/domain/booking"
)

// BookingRepositoryFS is the Firestore implementation of booking.Repository.
// Bookings are written by the client's payment flow; the API only reads them.
type BookingRepositoryFS struct {
	Client *firestore.Client
}

func NewBookingRepositoryFS(client *firestore.Client) *BookingRepositoryFS {
	return &BookingRepositoryFS{Client: client}
}

// Compile-time check
var _ bookingdom.Repository = (*BookingRepositoryFS)(nil)

func (r *BookingRepositoryFS) List(ctx context.Context) ([]bookingdom.Booking, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.Client.Collection("bookings").OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []bookingdom.Booking
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var b bookingdom.Booking
		if err := doc.DataTo(&b); err != nil {
			return nil, err
		}
		b.ID = doc.Ref.ID
		out = append(out, b)
	}
	return out, nil
}
