package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/evently/hotel-booking-service/internal/models"
	"github.com/evently/hotel-booking-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomCapacityExceeded = errors.New("room is at full capacity")
	ErrAlreadyBooked        = errors.New("user already has a booking")
	ErrBookingForbidden     = errors.New("booking change not allowed")
)

// BookingService allocates hotel rooms to eligible users, at most one booking
// per user. Writes require eligibility (enrollment + paid in-person hotel
// ticket); reads do not.
type BookingService interface {
	GetBooking(ctx context.Context, userID uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID uint) (uint, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (uint, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	eligibility EligibilityService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	eligibility EligibilityService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		eligibility: eligibility,
	}
}

// GetBooking returns the user's booking with its room. Viewing an existing
// booking deliberately skips the ticket checks; eligibility is only enforced
// on writes.
func (s *bookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, roomID uint) (uint, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}

	var bookingID uint
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.createInTx(ctx, tx, userID, roomID)
		if err != nil {
			return err
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}

	var updatedID uint
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.updateInTx(ctx, tx, userID, roomID, bookingID)
		if err != nil {
			return err
		}
		updatedID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updatedID, nil
}

func (s *bookingService) checkEligibility(ctx context.Context, userID uint) error {
	enrollmentID, err := s.eligibility.ResolveEnrollment(ctx, userID)
	if err != nil {
		return err
	}
	return s.eligibility.CheckTicket(ctx, enrollmentID)
}

// createInTx runs the allocation decision inside a transaction that holds a
// row lock on the target room, so the capacity check and the insert are
// atomic with respect to concurrent creates for the same room.
func (s *bookingService) createInTx(ctx context.Context, tx *gorm.DB, userID, roomID uint) (uint, error) {
	room, err := s.lockRoomWithCapacity(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	_, err = s.bookingRepo.FindByUserIDTx(ctx, tx, userID)
	if err == nil {
		return 0, ErrAlreadyBooked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("find booking: %w", err)
	}

	booking := &models.Booking{UserID: userID, RoomID: room.ID}
	if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
		// Two creates for the same user racing on different rooms are not
		// serialized by the room lock; the unique index on user_id is.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrAlreadyBooked
		}
		return 0, fmt.Errorf("create booking: %w", err)
	}
	return booking.ID, nil
}

func (s *bookingService) updateInTx(ctx context.Context, tx *gorm.DB, userID, roomID, bookingID uint) (uint, error) {
	room, err := s.lockRoomWithCapacity(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	booking, err := s.bookingRepo.FindByUserIDTx(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrBookingForbidden
		}
		return 0, fmt.Errorf("find booking: %w", err)
	}
	if booking.ID != bookingID {
		return 0, ErrBookingForbidden
	}
	// Reassigning to the currently occupied room is rejected, not treated as
	// a no-op success.
	if booking.RoomID == room.ID {
		return 0, ErrBookingForbidden
	}

	if err := s.bookingRepo.UpdateRoom(ctx, tx, booking.ID, room.ID); err != nil {
		return 0, fmt.Errorf("update booking room: %w", err)
	}
	return booking.ID, nil
}

// lockRoomWithCapacity locks the room row and rejects it when occupancy has
// reached capacity. A room at exactly full capacity rejects the request.
func (s *bookingService) lockRoomWithCapacity(ctx context.Context, tx *gorm.DB, roomID uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("lock room: %w", err)
	}

	occupied, err := s.bookingRepo.CountByRoom(ctx, tx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("count room occupancy: %w", err)
	}
	if occupied >= int64(room.Capacity) {
		return nil, ErrRoomCapacityExceeded
	}
	return room, nil
}
