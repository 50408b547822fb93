package application

import (
	"context"
	"fmt"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

type bookingService struct {
	repo BookingRepository
}

// NewBookingService wires the vendor-side booking use-cases to a repository.
func NewBookingService(repo BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) List(ctx context.Context, vendorID string, status string) ([]vendordomain.Booking, error) {
	return s.repo.FindByVendor(ctx, vendorID, status)
}

func (s *bookingService) Act(ctx context.Context, vendorID, bookingID string, action string) (*vendordomain.Booking, error) {
	target, ok := vendordomain.ParseBookingAction(action)
	if !ok {
		return nil, fmt.Errorf("unknown booking action: %s", action)
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.VendorID != vendorID {
		return nil, ErrNotOwner
	}
	if !booking.Status.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, bookingID, target)
}

func (s *bookingService) Earnings(ctx context.Context, vendorID string) (*vendordomain.EarningsReport, error) {
	return s.repo.Earnings(ctx, vendorID)
}
