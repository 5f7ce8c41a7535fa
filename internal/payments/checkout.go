package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/justconnect/justconnect-api/internal/models"
)

// Preference is the subset of a Mercado Pago checkout preference the API
// exposes to clients.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// Checkout creates payment preferences for bookings.
type Checkout struct {
	prefs preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

// CreateBookingPreference builds a one-item preference priced at the
// professional's rate for the booked service.
func (c *Checkout) CreateBookingPreference(
	ctx context.Context,
	b *models.Booking,
) (*Preference, error) {

	req := preference.Request{
		ExternalReference: fmt.Sprintf("booking-%d", b.ID),
		Items: []preference.ItemRequest{
			{
				Title:     b.Service.Name,
				Quantity:  1,
				UnitPrice: b.Professional.Rate,
			},
		},
	}

	res, err := c.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Preference{
		ID:        res.ID,
		InitPoint: res.InitPoint,
	}, nil
}
