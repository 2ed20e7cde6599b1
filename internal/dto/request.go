package dto

// BookingRequest is the body of both POST /booking and PUT /booking/:bookingId.
type BookingRequest struct {
	RoomID uint `json:"roomId" validate:"required,min=1"`
}
