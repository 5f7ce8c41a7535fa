package booking

import (
	"context"

	"github.com/justconnect/justconnect-api/internal/models"
)

type Repository interface {
	// -------- Professional / Service --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	IsProfessionalAvailable(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (bool, error)

	ReplaceAvailability(
		ctx context.Context,
		professionalID uint,
		weekdays []int,
	) error

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListBookingsForProfessional(
		ctx context.Context,
		professionalID uint,
	) ([]models.Booking, error)
}
