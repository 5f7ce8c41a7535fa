package models

import "time"

// Message is one chat message between the two parties of a booking.
type Message struct {
	ID        string `gorm:"size:36;primaryKey" json:"id"`
	BookingID uint   `gorm:"index" json:"booking_id"`

	SenderID   uint   `json:"sender_id"`
	SenderName string `gorm:"size:100" json:"sender_name"`
	Body       string `gorm:"size:1000;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
