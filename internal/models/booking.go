package models

import "time"

// Booking assigns exactly one room to exactly one user. The unique index on
// UserID is the authoritative at-most-one-booking-per-user constraint; the
// service-level pre-check only exists to return a friendly error early.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	RoomID    uint      `gorm:"not null" json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
