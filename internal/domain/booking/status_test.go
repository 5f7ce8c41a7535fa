package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/models"
)

func TestStatusMachine(t *testing.T) {
	cases := []struct {
		name    string
		check   func(booking.Status) error
		current booking.Status
		ok      bool
	}{
		{"confirm pending", booking.CanConfirm, booking.StatusPending, true},
		{"confirm confirmed", booking.CanConfirm, booking.StatusConfirmed, false},
		{"confirm cancelled", booking.CanConfirm, booking.StatusCancelled, false},
		{"confirm completed", booking.CanConfirm, booking.StatusCompleted, false},

		{"cancel pending", booking.CanCancel, booking.StatusPending, true},
		{"cancel confirmed", booking.CanCancel, booking.StatusConfirmed, true},
		{"cancel cancelled", booking.CanCancel, booking.StatusCancelled, false},
		{"cancel completed", booking.CanCancel, booking.StatusCompleted, false},

		{"complete confirmed", booking.CanComplete, booking.StatusConfirmed, true},
		{"complete pending", booking.CanComplete, booking.StatusPending, false},
		{"complete cancelled", booking.CanComplete, booking.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.current)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		})
	}
}

func TestConfirm_SetsTimestamp(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusPending)}
	now := time.Now()

	assert.NoError(t, booking.Confirm(b, now))
	assert.Equal(t, string(booking.StatusConfirmed), b.Status)
	if assert.NotNil(t, b.ConfirmedAt) {
		assert.Equal(t, now, *b.ConfirmedAt)
	}
}

func TestCancel_SetsTimestamp(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusConfirmed)}
	now := time.Now()

	assert.NoError(t, booking.Cancel(b, now))
	assert.Equal(t, string(booking.StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)
}

func TestComplete_RejectsPending(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusPending)}

	err := booking.Complete(b, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(booking.StatusPending), b.Status)
	assert.Nil(t, b.CompletedAt)
}
