package booking

import (
	"context"
	"time"

	"github.com/justconnect/justconnect-api/internal/audit"
	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/models"
	"github.com/justconnect/justconnect-api/internal/timezone"
)

type CreateBookingInput struct {
	ClientID       uint
	ProfessionalID uint
	Date           string
	Notes          string
}

// Auditor records booking lifecycle events without blocking the request.
type Auditor interface {
	Dispatch(ev audit.Event)
}

type CreateBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateBooking(
	repo domain.Repository,
	audit Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if pro.UserID == in.ClientID {
		return nil, httperr.ErrBusiness("cannot_book_self")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(""))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	available, err := uc.repo.IsProfessionalAvailable(
		ctx,
		pro.ID,
		int(date.Weekday()),
	)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrBusiness("professional_unavailable")
	}

	b := &models.Booking{
		ClientID:       in.ClientID,
		ProfessionalID: pro.ID,
		ServiceID:      pro.ServiceID,
		Date:           date,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
