package repository

import (
	"context"

	"github.com/evently/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	FindByUserIDTx(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error)
	CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
	UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

// FindByUserID loads the user's booking together with the occupied room.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserIDTx(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CountByRoom derives a room's occupancy from its booking rows. No stored
// counter exists, so the count can never drift from the bookings table.
func (r *bookingRepository) CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
}
