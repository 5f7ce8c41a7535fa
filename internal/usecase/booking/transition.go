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

// party is the booking side performing a transition.
type party int

const (
	partyNone party = iota
	partyClient
	partyProfessional
)

func partyOf(b *models.Booking, userID uint) party {
	if b.ClientID == userID {
		return partyClient
	}
	if b.Professional.UserID == userID {
		return partyProfessional
	}
	return partyNone
}

// TransitionBooking applies one status-machine action to a booking on
// behalf of a user. Confirm and complete are professional-only; cancel is
// open to both parties.
type TransitionBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewTransitionBooking(
	repo domain.Repository,
	audit Auditor,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionBooking) Confirm(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, userID, bookingID, "booking_confirmed", true, domain.Confirm)
}

func (uc *TransitionBooking) Cancel(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, userID, bookingID, "booking_cancelled", false, domain.Cancel)
}

func (uc *TransitionBooking) Complete(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {
	return uc.apply(ctx, userID, bookingID, "booking_completed", true, domain.Complete)
}

func (uc *TransitionBooking) apply(
	ctx context.Context,
	userID uint,
	bookingID uint,
	action string,
	professionalOnly bool,
	transition func(*models.Booking, time.Time) error,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	p := partyOf(b, userID)
	if p == partyNone {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if professionalOnly && p != partyProfessional {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if err := transition(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
