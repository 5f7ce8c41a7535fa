package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/justconnect/justconnect-api/internal/domain/booking"
	"github.com/justconnect/justconnect-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Professional / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *BookingGormRepository) GetProfessionalByUserID(
	ctx context.Context,
	userID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) IsProfessionalAvailable(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Availability{}).
		Where(
			"professional_id = ? AND weekday = ? AND active = ?",
			professionalID, weekday, true,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ReplaceAvailability(
	ctx context.Context,
	professionalID uint,
	weekdays []int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		for _, wd := range weekdays {
			av := models.Availability{
				ProfessionalID: professionalID,
				Weekday:        wd,
				Active:         true,
			}
			if err := tx.Create(&av).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Professional.User").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Professional.User").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("professional_id = ?", professionalID).
		Order("date DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
