package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/evently/hotel-booking-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEnrollmentNotFound = errors.New("user has no enrollment")
	ErrTicketIneligible   = errors.New("ticket does not grant hotel accommodation")
)

// EligibilityService decides whether a user may book a hotel room: the user
// must be enrolled and hold a paid, in-person ticket whose type includes
// hotel accommodation.
type EligibilityService interface {
	ResolveEnrollment(ctx context.Context, userID uint) (uint, error)
	CheckTicket(ctx context.Context, enrollmentID uint) error
}

type eligibilityService struct {
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
}

func NewEligibilityService(
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
) EligibilityService {
	return &eligibilityService{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

// ResolveEnrollment returns the enrollment id for the user. It must run
// before any other booking validation; without an enrollment the remaining
// checks are meaningless.
func (s *eligibilityService) ResolveEnrollment(ctx context.Context, userID uint) (uint, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrEnrollmentNotFound
		}
		return 0, fmt.Errorf("find enrollment: %w", err)
	}
	return enrollment.ID, nil
}

// CheckTicket fails with ErrTicketIneligible when the enrollment has no
// ticket, the ticket is unpaid, its type excludes hotel accommodation, or its
// type is remote-only. Callers never need to know which condition fired.
func (s *eligibilityService) CheckTicket(ctx context.Context, enrollmentID uint) error {
	ticket, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketIneligible
		}
		return fmt.Errorf("find ticket: %w", err)
	}
	if !ticket.HotelEligible() {
		return ErrTicketIneligible
	}
	return nil
}
