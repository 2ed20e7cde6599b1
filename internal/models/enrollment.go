package models

import "time"

// Enrollment is a read-side copy of the registration subsystem's record.
// Rows are created and removed by the registration consumer, never by this
// service's own handlers.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
