package booking

import (
	"context"

	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
