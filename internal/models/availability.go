package models

import "time"

// Availability marks a weekday a professional accepts bookings on.
// Weekday follows time.Weekday (0 = Sunday).
type Availability struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index:idx_availability_prof_weekday,unique" json:"professional_id"`
	Weekday        int  `gorm:"index:idx_availability_prof_weekday,unique" json:"weekday"`
	Active         bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
