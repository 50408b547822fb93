package application

import (
	"context"
	"errors"
	"time"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

// ErrBookingForbidden is returned when a customer acts on a booking that is
// not theirs.
var ErrBookingForbidden = errors.New("booking does not belong to caller")

// ErrBookingNotCancellable is returned when the booking already reached a
// terminal state.
var ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")

// NewBookingCommandService wires the customer booking use-cases.
func NewBookingCommandService(repo BookingRepository) BookingCommandService {
	return &bookingCommandService{repo: repo}
}

type bookingCommandService struct {
	repo BookingRepository
}

func (s *bookingCommandService) Place(ctx context.Context, cmd PlaceBookingCommand) (*domain.Booking, error) {
	now := time.Now().UTC()
	booking := &domain.Booking{
		VendorID:      cmd.VendorID,
		VendorName:    cmd.VendorName,
		ListingID:     cmd.ListingID,
		ListingTitle:  cmd.ListingTitle,
		CustomerID:    cmd.CustomerID,
		CustomerName:  cmd.CustomerName,
		CustomerPhone: cmd.CustomerPhone,
		EventDate:     cmd.EventDate,
		GuestCount:    cmd.GuestCount,
		Amount:        cmd.Amount,
		Note:          cmd.Note,
		Status:        domain.BookingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return booking, s.repo.Create(ctx, booking)
}

func (s *bookingCommandService) Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != customerID {
		return nil, ErrBookingForbidden
	}
	if !booking.Status.Cancellable() {
		return nil, ErrBookingNotCancellable
	}
	return s.repo.UpdateStatus(ctx, bookingID, domain.BookingCancelled)
}

// NewBookingQueryService wires the customer booking reads.
func NewBookingQueryService(repo BookingRepository) BookingQueryService {
	return &bookingQueryService{repo: repo}
}

type bookingQueryService struct {
	repo BookingRepository
}

func (s *bookingQueryService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.repo.FindByCustomer(ctx, customerID)
}
