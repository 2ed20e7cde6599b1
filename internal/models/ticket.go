package models

import "time"

type TicketStatus string

const (
	TicketStatusPending TicketStatus = "pending"
	TicketStatusPaid    TicketStatus = "paid"
)

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         float64   `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"is_remote"`
	IncludesHotel bool      `gorm:"not null" json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Ticket belongs to an Enrollment, read-only from this service's perspective.
type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	EnrollmentID uint         `gorm:"not null;uniqueIndex" json:"enrollment_id"`
	TicketTypeID uint         `gorm:"not null" json:"ticket_type_id"`
	Status       TicketStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	TicketType *TicketType `gorm:"foreignKey:TicketTypeID" json:"ticket_type,omitempty"`
}

// HotelEligible reports whether this ticket entitles its holder to a hotel
// room: paid, includes hotel accommodation, and not remote-only.
func (t *Ticket) HotelEligible() bool {
	if t.TicketType == nil {
		return false
	}
	return t.Status == TicketStatusPaid && t.TicketType.IncludesHotel && !t.TicketType.IsRemote
}
