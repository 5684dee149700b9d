// internal/application/usecase/booking_usecase.go
package usecase

import (
	"context"

	bookingdom "travelia/internal/domain/booking"
)

type BookingUsecase struct {
	bookings bookingdom.Repository
}

func NewBookingUsecase(bookings bookingdom.Repository) *BookingUsecase {
	return &BookingUsecase{bookings: bookings}
}

func (u *BookingUsecase) List(ctx context.Context) ([]bookingdom.Booking, error) {
	return u.bookings.List(ctx)
}

// Stats aggregates the admin dashboard numbers over all bookings.
func (u *BookingUsecase) Stats(ctx context.Context) (bookingdom.Stats, error) {
	all, err := u.bookings.List(ctx)
	if err != nil {
		return bookingdom.Stats{}, err
	}
	return bookingdom.ComputeStats(all), nil
}
