package payments

import (
	"context"
	"errors"

	"github.com/justconnect/justconnect-api/internal/models"
)

// Disabled stands in when no Mercado Pago credential is configured.
type Disabled struct{}

func (Disabled) CreateBookingPreference(
	ctx context.Context,
	b *models.Booking,
) (*Preference, error) {
	return nil, errors.New("payments are not configured")
}
