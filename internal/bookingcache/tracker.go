package bookingcache

import (
	"sync"

	"github.com/justconnect/justconnect-api/internal/models"
)

// Entry is a booking decorated with the weekday label the dashboard groups
// on.
type Entry struct {
	models.Booking
	Weekday string `json:"weekday"`
}

// Summary is the aggregate view of one user's bookings.
type Summary struct {
	Bookings      []Entry        `json:"bookings"`
	TotalBookings int            `json:"total_bookings"`
	StatusCount   map[string]int `json:"status_count"`
	WeekdayCount  map[string]int `json:"weekday_count"`
	Notification  *Entry         `json:"notification"`
}

type state struct {
	entries      []Entry
	statusCount  map[string]int
	weekdayCount map[string]int
	notification *Entry
}

// Tracker keeps per-user booking aggregates in memory. It is an owned,
// injectable container rather than a package-level singleton so tests can
// construct isolated instances. Safe for concurrent handlers.
type Tracker struct {
	mu    sync.RWMutex
	users map[uint]*state
}

func NewTracker() *Tracker {
	return &Tracker{users: make(map[uint]*state)}
}

// Replace swaps a user's list wholesale and recomputes every aggregate in
// one pass. A pending notification survives the swap; only
// ClearNotification ends it.
func (t *Tracker) Replace(userID uint, list []models.Booking) {
	entries := make([]Entry, 0, len(list))
	for _, b := range list {
		entries = append(entries, decorate(b))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := &state{entries: entries}
	if prev, ok := t.users[userID]; ok {
		s.notification = prev.notification
	}
	s.recompute()
	t.users[userID] = s
}

// Add prepends a booking, recomputes the aggregates over the full updated
// list, and records the booking as the pending notification.
func (t *Tracker) Add(userID uint, b models.Booking) {
	entry := decorate(b)

	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.users[userID]
	if !ok {
		s = &state{}
		t.users[userID] = s
	}

	s.entries = append([]Entry{entry}, s.entries...)
	s.recompute()
	s.notification = &entry
}

// ClearNotification clears the pending-notification slot only.
func (t *Tracker) ClearNotification(userID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.users[userID]; ok {
		s.notification = nil
	}
}

// Snapshot returns a copy of the user's summary; callers never share the
// tracker's internal state.
func (t *Tracker) Snapshot(userID uint) Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.users[userID]
	if !ok {
		return Summary{
			Bookings:     []Entry{},
			StatusCount:  map[string]int{},
			WeekdayCount: map[string]int{},
		}
	}

	out := Summary{
		Bookings:      append([]Entry(nil), s.entries...),
		TotalBookings: len(s.entries),
		StatusCount:   copyCounts(s.statusCount),
		WeekdayCount:  copyCounts(s.weekdayCount),
	}
	if s.notification != nil {
		n := *s.notification
		out.Notification = &n
	}
	return out
}

func (s *state) recompute() {
	s.statusCount = make(map[string]int, 4)
	s.weekdayCount = make(map[string]int, 7)
	for _, e := range s.entries {
		s.statusCount[e.Status]++
		s.weekdayCount[e.Weekday]++
	}
}

func decorate(b models.Booking) Entry {
	return Entry{
		Booking: b,
		Weekday: b.Date.Weekday().String(),
	}
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
