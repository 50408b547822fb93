package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	created  *domain.Booking
	updated  domain.BookingStatus
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = "new-booking"
	r.created = booking
	return nil
}

func (r *stubBookingRepo) FindByCustomer(_ context.Context, customerID string) ([]domain.Booking, error) {
	var result []domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *booking
	return &copied, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	booking.Status = status
	r.updated = status
	copied := *booking
	return &copied, nil
}

func TestPlaceBookingDefaults(t *testing.T) {
	repo := newStubBookingRepo()
	service := NewBookingCommandService(repo)

	booking, err := service.Place(context.Background(), PlaceBookingCommand{
		VendorID:     "v1",
		ListingID:    "l1",
		CustomerID:   "c1",
		CustomerName: "Asha",
		EventDate:    time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Amount:       200000,
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}
	if booking.CreatedAt.IsZero() || !booking.CreatedAt.Equal(booking.UpdatedAt) {
		t.Errorf("timestamps not set together: created=%v updated=%v", booking.CreatedAt, booking.UpdatedAt)
	}
	if repo.created == nil {
		t.Fatal("booking was not persisted")
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.BookingStatus
		customerID string
		caller     string
		wantErr    error
	}{
		{"pending is cancellable", domain.BookingPending, "c1", "c1", nil},
		{"confirmed is cancellable", domain.BookingConfirmed, "c1", "c1", nil},
		{"completed is final", domain.BookingCompleted, "c1", "c1", ErrBookingNotCancellable},
		{"declined is final", domain.BookingDeclined, "c1", "c1", ErrBookingNotCancellable},
		{"already cancelled", domain.BookingCancelled, "c1", "c1", ErrBookingNotCancellable},
		{"wrong customer", domain.BookingPending, "c1", "c2", ErrBookingForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubBookingRepo()
			repo.bookings["b1"] = &domain.Booking{ID: "b1", CustomerID: tt.customerID, Status: tt.status}
			service := NewBookingCommandService(repo)

			booking, err := service.Cancel(context.Background(), "b1", tt.caller)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Cancel() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && booking.Status != domain.BookingCancelled {
				t.Errorf("status = %q, want cancelled", booking.Status)
			}
		})
	}
}

func TestCancelUnknownBooking(t *testing.T) {
	service := NewBookingCommandService(newStubBookingRepo())
	if _, err := service.Cancel(context.Background(), "missing", "c1"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Cancel() error = %v, want ErrNoDocuments", err)
	}
}
