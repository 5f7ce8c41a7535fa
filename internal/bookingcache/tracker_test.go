package bookingcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/justconnect/justconnect-api/internal/bookingcache"
	"github.com/justconnect/justconnect-api/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sampleBookings() []models.Booking {
	return []models.Booking{
		{ID: 1, Status: "pending", Date: day("2026-09-07")},   // Monday
		{ID: 2, Status: "confirmed", Date: day("2026-09-08")}, // Tuesday
		{ID: 3, Status: "pending", Date: day("2026-09-14")},   // Monday
		{ID: 4, Status: "cancelled", Date: day("2026-09-11")}, // Friday
	}
}

func sumCounts(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func TestReplace_Aggregates(t *testing.T) {
	tracker := bookingcache.NewTracker()
	list := sampleBookings()

	tracker.Replace(10, list)
	s := tracker.Snapshot(10)

	assert.Equal(t, len(list), s.TotalBookings)
	assert.Equal(t, len(list), sumCounts(s.StatusCount))
	assert.Equal(t, len(list), sumCounts(s.WeekdayCount))

	assert.Equal(t, 2, s.StatusCount["pending"])
	assert.Equal(t, 1, s.StatusCount["confirmed"])
	assert.Equal(t, 1, s.StatusCount["cancelled"])

	assert.Equal(t, 2, s.WeekdayCount["Monday"])
	assert.Equal(t, 1, s.WeekdayCount["Tuesday"])
	assert.Equal(t, 1, s.WeekdayCount["Friday"])

	assert.Nil(t, s.Notification)
}

func TestReplace_EmptyList(t *testing.T) {
	tracker := bookingcache.NewTracker()

	tracker.Replace(10, nil)
	s := tracker.Snapshot(10)

	assert.Zero(t, s.TotalBookings)
	assert.Empty(t, s.Bookings)
	assert.Empty(t, s.StatusCount)
}

func TestAdd_PrependsAndNotifies(t *testing.T) {
	tracker := bookingcache.NewTracker()
	tracker.Replace(10, sampleBookings())

	added := models.Booking{ID: 5, Status: "pending", Date: day("2026-09-09")} // Wednesday
	tracker.Add(10, added)

	s := tracker.Snapshot(10)

	assert.Equal(t, 5, s.TotalBookings)
	assert.Equal(t, uint(5), s.Bookings[0].ID)
	assert.Equal(t, 5, sumCounts(s.StatusCount))
	assert.Equal(t, 3, s.StatusCount["pending"])
	assert.Equal(t, "Wednesday", s.Bookings[0].Weekday)

	if assert.NotNil(t, s.Notification) {
		assert.Equal(t, uint(5), s.Notification.ID)
	}
}

func TestAdd_NotificationSurvivesReplace(t *testing.T) {
	tracker := bookingcache.NewTracker()
	tracker.Replace(10, sampleBookings())

	added := models.Booking{ID: 5, Status: "pending", Date: day("2026-09-09")}
	tracker.Add(10, added)

	// a dashboard refresh reloads the list before the summary is read
	tracker.Replace(10, append(sampleBookings(), added))

	s := tracker.Snapshot(10)
	if assert.NotNil(t, s.Notification) {
		assert.Equal(t, uint(5), s.Notification.ID)
	}

	tracker.ClearNotification(10)
	assert.Nil(t, tracker.Snapshot(10).Notification)
}

func TestAdd_UnknownUserStartsFresh(t *testing.T) {
	tracker := bookingcache.NewTracker()

	tracker.Add(77, models.Booking{ID: 1, Status: "pending", Date: day("2026-09-07")})
	s := tracker.Snapshot(77)

	assert.Equal(t, 1, s.TotalBookings)
	assert.NotNil(t, s.Notification)
}

func TestClearNotification_KeepsList(t *testing.T) {
	tracker := bookingcache.NewTracker()
	tracker.Replace(10, sampleBookings())
	tracker.Add(10, models.Booking{ID: 5, Status: "pending", Date: day("2026-09-09")})

	tracker.ClearNotification(10)
	s := tracker.Snapshot(10)

	assert.Nil(t, s.Notification)
	assert.Equal(t, 5, s.TotalBookings)
}

func TestSnapshot_IsolatedFromTracker(t *testing.T) {
	tracker := bookingcache.NewTracker()
	tracker.Replace(10, sampleBookings())

	s := tracker.Snapshot(10)
	s.StatusCount["pending"] = 99
	s.Bookings[0].Status = "mutated"

	again := tracker.Snapshot(10)
	assert.Equal(t, 2, again.StatusCount["pending"])
	assert.Equal(t, "pending", again.Bookings[0].Status)
}

func TestTracker_UsersAreIndependent(t *testing.T) {
	tracker := bookingcache.NewTracker()
	tracker.Replace(1, sampleBookings())

	s := tracker.Snapshot(2)
	assert.Zero(t, s.TotalBookings)
}
