package dto

import (
	"time"

	"github.com/evently/hotel-booking-service/internal/models"
)

// RoomResponse mirrors the room attributes exposed alongside a booking.
type RoomResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse is the GET /booking payload: the booking id plus the full
// attributes of the occupied room.
type BookingResponse struct {
	ID   uint         `json:"id"`
	Room RoomResponse `json:"Room"`
}

// BookingIDResponse is the create/update success payload.
type BookingIDResponse struct {
	BookingID uint `json:"bookingId"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{ID: b.ID}
	if b.Room != nil {
		resp.Room = RoomResponse{
			ID:        b.Room.ID,
			Name:      b.Room.Name,
			Capacity:  b.Room.Capacity,
			HotelID:   b.Room.HotelID,
			CreatedAt: b.Room.CreatedAt,
			UpdatedAt: b.Room.UpdatedAt,
		}
	}
	return resp
}
