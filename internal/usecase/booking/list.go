package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns the caller's bookings: the professional side when the
// user has a professional profile for that role, the client side otherwise.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID uint,
	role string,
) ([]models.Booking, error) {

	if role == "professional" {
		pro, err := uc.repo.GetProfessionalByUserID(ctx, userID)
		switch {
		case err == nil:
			return uc.repo.ListBookingsForProfessional(ctx, pro.ID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// role without a profile lists the client side
		default:
			return nil, err
		}
	}

	return uc.repo.ListBookingsForClient(ctx, userID)
}
