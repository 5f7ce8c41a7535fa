package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/audit"
	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/models"
	ucbooking "github.com/justconnect/justconnect-api/internal/usecase/booking"
)

// --------- stubs ---------

type stubRepo struct {
	professionals map[uint]*models.Professional
	bookings      map[uint]*models.Booking
	available     map[int]bool

	created []*models.Booking
	updated []*models.Booking
	nextID  uint

	proByUserErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		professionals: make(map[uint]*models.Professional),
		bookings:      make(map[uint]*models.Booking),
		available:     make(map[int]bool),
		nextID:        100,
	}
}

func (r *stubRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	if pro, ok := r.professionals[id]; ok {
		return pro, nil
	}
	return nil, errors.New("record not found")
}

func (r *stubRepo) GetProfessionalByUserID(_ context.Context, userID uint) (*models.Professional, error) {
	if r.proByUserErr != nil {
		return nil, r.proByUserErr
	}
	for _, pro := range r.professionals {
		if pro.UserID == userID {
			return pro, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	return &models.Service{ID: id, Name: "Plumbing"}, nil
}

func (r *stubRepo) IsProfessionalAvailable(_ context.Context, _ uint, weekday int) (bool, error) {
	return r.available[weekday], nil
}

func (r *stubRepo) ReplaceAvailability(_ context.Context, _ uint, weekdays []int) error {
	r.available = make(map[int]bool)
	for _, wd := range weekdays {
		r.available[wd] = true
	}
	return nil
}

func (r *stubRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = b
	r.created = append(r.created, b)
	return nil
}

func (r *stubRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (r *stubRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	r.updated = append(r.updated, b)
	return nil
}

func (r *stubRepo) ListBookingsForClient(_ context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubRepo) ListBookingsForProfessional(_ context.Context, professionalID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == professionalID {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)

type auditRecorder struct {
	events []audit.Event
}

func (a *auditRecorder) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

// --------- fixtures ---------

const (
	clientUserID = uint(1)
	proUserID    = uint(2)
	proID        = uint(10)
)

func fixtureRepo() *stubRepo {
	repo := newStubRepo()
	repo.professionals[proID] = &models.Professional{
		ID:        proID,
		UserID:    proUserID,
		ServiceID: 3,
		User:      models.User{ID: proUserID, Name: "Pat"},
	}
	for wd := 0; wd < 7; wd++ {
		repo.available[wd] = true
	}
	return repo
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 14).Format("2006-01-02")
}

// --------- create ---------

func TestCreateBooking_Success(t *testing.T) {
	repo := fixtureRepo()
	rec := &auditRecorder{}
	uc := ucbooking.NewCreateBooking(repo, rec)

	b, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       clientUserID,
		ProfessionalID: proID,
		Date:           futureDate(),
		Notes:          "leaky sink",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, clientUserID, b.ClientID)
	assert.Equal(t, proID, b.ProfessionalID)
	assert.Equal(t, uint(3), b.ServiceID)
	assert.Len(t, repo.created, 1)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "booking_created", rec.events[0].Action)
}

func TestCreateBooking_ProfessionalNotFound(t *testing.T) {
	uc := ucbooking.NewCreateBooking(fixtureRepo(), &auditRecorder{})

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       clientUserID,
		ProfessionalID: 999,
		Date:           futureDate(),
	})
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

func TestCreateBooking_SelfBooking(t *testing.T) {
	uc := ucbooking.NewCreateBooking(fixtureRepo(), &auditRecorder{})

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       proUserID,
		ProfessionalID: proID,
		Date:           futureDate(),
	})
	assert.True(t, httperr.IsBusiness(err, "cannot_book_self"))
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	uc := ucbooking.NewCreateBooking(fixtureRepo(), &auditRecorder{})

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       clientUserID,
		ProfessionalID: proID,
		Date:           "12/31/2030",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestCreateBooking_PastDate(t *testing.T) {
	uc := ucbooking.NewCreateBooking(fixtureRepo(), &auditRecorder{})

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       clientUserID,
		ProfessionalID: proID,
		Date:           "2020-01-01",
	})
	assert.True(t, httperr.IsBusiness(err, "date_in_past"))
}

func TestCreateBooking_ProfessionalUnavailable(t *testing.T) {
	repo := fixtureRepo()
	repo.available = map[int]bool{}
	uc := ucbooking.NewCreateBooking(repo, &auditRecorder{})

	_, err := uc.Execute(context.Background(), ucbooking.CreateBookingInput{
		ClientID:       clientUserID,
		ProfessionalID: proID,
		Date:           futureDate(),
	})
	assert.True(t, httperr.IsBusiness(err, "professional_unavailable"))
}

// --------- transitions ---------

func seedBooking(repo *stubRepo, status string) *models.Booking {
	b := &models.Booking{
		ID:             50,
		ClientID:       clientUserID,
		ProfessionalID: proID,
		Professional:   *repo.professionals[proID],
		Status:         status,
	}
	repo.bookings[b.ID] = b
	return b
}

func TestConfirm_ByProfessional(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	rec := &auditRecorder{}
	uc := ucbooking.NewTransitionBooking(repo, rec)

	b, err := uc.Confirm(context.Background(), proUserID, 50)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", b.Status)
	assert.NotNil(t, b.ConfirmedAt)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "booking_confirmed", rec.events[0].Action)
}

func TestConfirm_ByClientForbidden(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewTransitionBooking(repo, &auditRecorder{})

	_, err := uc.Confirm(context.Background(), clientUserID, 50)
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}

func TestCancel_ByClient(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "confirmed")
	uc := ucbooking.NewTransitionBooking(repo, &auditRecorder{})

	b, err := uc.Cancel(context.Background(), clientUserID, 50)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
}

func TestCancel_ByProfessional(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewTransitionBooking(repo, &auditRecorder{})

	b, err := uc.Cancel(context.Background(), proUserID, 50)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewTransitionBooking(repo, &auditRecorder{})

	_, err := uc.Complete(context.Background(), proUserID, 50)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransition_OutsiderSeesNotFound(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewTransitionBooking(repo, &auditRecorder{})

	_, err := uc.Cancel(context.Background(), uint(777), 50)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestTransition_UnknownBooking(t *testing.T) {
	uc := ucbooking.NewTransitionBooking(fixtureRepo(), &auditRecorder{})

	_, err := uc.Confirm(context.Background(), proUserID, 404)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// --------- list ---------

func TestListBookings_ClientSide(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewListBookings(repo)

	list, err := uc.Execute(context.Background(), clientUserID, "user")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListBookings_ProfessionalSide(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewListBookings(repo)

	list, err := uc.Execute(context.Background(), proUserID, "professional")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListBookings_ProfessionalRoleWithoutProfile(t *testing.T) {
	repo := fixtureRepo()
	seedBooking(repo, "pending")
	uc := ucbooking.NewListBookings(repo)

	// professional role but no profile row: only the client side applies
	list, err := uc.Execute(context.Background(), clientUserID, "professional")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListBookings_ProfileLookupFailurePropagates(t *testing.T) {
	repo := fixtureRepo()
	repo.proByUserErr = errors.New("connection refused")
	uc := ucbooking.NewListBookings(repo)

	_, err := uc.Execute(context.Background(), proUserID, "professional")
	assert.EqualError(t, err, "connection refused")
}
