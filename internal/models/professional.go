package models

import "time"

// Professional is the marketplace-facing profile of a user with the
// "professional" role.
type Professional struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Headline string  `gorm:"size:100" json:"headline"`
	Bio      string  `gorm:"size:500" json:"bio"`
	City     string  `gorm:"size:100" json:"city"`
	Rate     float64 `json:"rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
