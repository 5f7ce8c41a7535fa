package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justconnect/justconnect-api/internal/bookingcache"
	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/models"
	"github.com/justconnect/justconnect-api/internal/payments"
	ucbooking "github.com/justconnect/justconnect-api/internal/usecase/booking"
)

// CheckoutProvider creates a payment preference for a booking.
type CheckoutProvider interface {
	CreateBookingPreference(ctx context.Context, b *models.Booking) (*payments.Preference, error)
}

type BookingHandler struct {
	createUC     *ucbooking.CreateBooking
	transitionUC *ucbooking.TransitionBooking
	listUC       *ucbooking.ListBookings
	tracker      *bookingcache.Tracker
	repo         domain.Repository
	checkout     CheckoutProvider
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	transitionUC *ucbooking.TransitionBooking,
	listUC *ucbooking.ListBookings,
	tracker *bookingcache.Tracker,
	repo domain.Repository,
	checkout CheckoutProvider,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
		tracker:      tracker,
		repo:         repo,
		checkout:     checkout,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Notes          string `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "professional_id and date are required")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		ClientID:       id.ID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	h.tracker.Add(id.ID, *b)

	httpresp.Created(c, "booking created", gin.H{"booking": b})
}

func (h *BookingHandler) List(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookings, err := h.listUC.Execute(c.Request.Context(), id.ID, id.Role)
	if err != nil {
		httperr.Internal(c, err, "failed to list bookings")
		return
	}

	h.tracker.Replace(id.ID, bookings)

	httpresp.OK(c, "bookings retrieved", gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.transitionUC.Confirm, "booking confirmed")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.transitionUC.Cancel, "booking cancelled")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.transitionUC.Complete, "booking completed")
}

func (h *BookingHandler) transition(
	c *gin.Context,
	apply func(context.Context, uint, uint) (*models.Booking, error),
	message string,
) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookingID, ok := bookingParamID(c)
	if !ok {
		return
	}

	b, err := apply(c.Request.Context(), id.ID, bookingID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, message, gin.H{"booking": b})
}

func (h *BookingHandler) Summary(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	summary := h.tracker.Snapshot(id.ID)
	httpresp.OK(c, "booking summary", gin.H{"summary": summary})
}

func (h *BookingHandler) ClearNotification(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	h.tracker.ClearNotification(id.ID)
	httpresp.OK(c, "notification cleared", nil)
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookingID, ok := bookingParamID(c)
	if !ok {
		return
	}

	b, err := h.repo.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		httperr.NotFound(c, "booking not found")
		return
	}
	if b.ClientID != id.ID {
		httperr.NotFound(c, "booking not found")
		return
	}

	pref, err := h.checkout.CreateBookingPreference(c.Request.Context(), b)
	if err != nil {
		httperr.Internal(c, err, "failed to create checkout")
		return
	}

	httpresp.Created(c, "checkout created", gin.H{"preference": pref})
}

// --------- Helpers ---------

func bookingParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "booking not found")
		return 0, false
	}
	return uint(id), true
}

func writeBookingError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "booking_not_found", "professional_not_found":
			httperr.NotFound(c, bookingErrorMessage(be.Code))
		case "not_allowed":
			httperr.Forbidden(c, bookingErrorMessage(be.Code))
		default:
			httperr.BadRequest(c, bookingErrorMessage(be.Code))
		}
		return
	}

	httperr.Internal(c, err, "booking operation failed")
}

func bookingErrorMessage(code string) string {
	switch code {
	case "booking_not_found":
		return "booking not found"
	case "professional_not_found":
		return "professional not found"
	case "not_allowed":
		return "only the professional may perform this action"
	case "invalid_state":
		return "booking is not in a state that allows this action"
	case "invalid_date":
		return "date must be formatted as YYYY-MM-DD"
	case "date_in_past":
		return "booking date must not be in the past"
	case "professional_unavailable":
		return "professional is not available on that weekday"
	case "cannot_book_self":
		return "professionals cannot book themselves"
	default:
		return code
	}
}
