package application

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

type stubVendorBookingRepo struct {
	bookings map[string]*vendordomain.Booking
}

func newStubVendorBookingRepo() *stubVendorBookingRepo {
	return &stubVendorBookingRepo{bookings: make(map[string]*vendordomain.Booking)}
}

func (r *stubVendorBookingRepo) FindByVendor(_ context.Context, vendorID string, status string) ([]vendordomain.Booking, error) {
	var result []vendordomain.Booking
	for _, b := range r.bookings {
		if b.VendorID != vendorID {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (r *stubVendorBookingRepo) FindByID(_ context.Context, id string) (*vendordomain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *booking
	return &copied, nil
}

func (r *stubVendorBookingRepo) UpdateStatus(_ context.Context, id string, status vendordomain.BookingStatus) (*vendordomain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	booking.Status = status
	copied := *booking
	return &copied, nil
}

func (r *stubVendorBookingRepo) Earnings(_ context.Context, vendorID string) (*vendordomain.EarningsReport, error) {
	report := &vendordomain.EarningsReport{}
	for _, b := range r.bookings {
		if b.VendorID == vendorID && (b.Status == vendordomain.BookingConfirmed || b.Status == vendordomain.BookingCompleted) {
			report.TotalAmount += b.Amount
			report.BookingCount++
		}
	}
	return report, nil
}

func TestBookingAct(t *testing.T) {
	tests := []struct {
		name    string
		status  vendordomain.BookingStatus
		caller  string
		action  string
		want    vendordomain.BookingStatus
		wantErr error
	}{
		{"confirm pending", vendordomain.BookingPending, "v1", "confirm", vendordomain.BookingConfirmed, nil},
		{"decline pending", vendordomain.BookingPending, "v1", "decline", vendordomain.BookingDeclined, nil},
		{"complete confirmed", vendordomain.BookingConfirmed, "v1", "complete", vendordomain.BookingCompleted, nil},
		{"complete pending", vendordomain.BookingPending, "v1", "complete", "", ErrInvalidTransition},
		{"confirm completed", vendordomain.BookingCompleted, "v1", "confirm", "", ErrInvalidTransition},
		{"another vendor", vendordomain.BookingPending, "v2", "confirm", "", ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubVendorBookingRepo()
			repo.bookings["b1"] = &vendordomain.Booking{ID: "b1", VendorID: "v1", Status: tt.status}
			service := NewBookingService(repo)

			booking, err := service.Act(context.Background(), tt.caller, "b1", tt.action)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Act() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && booking.Status != tt.want {
				t.Errorf("status = %q, want %q", booking.Status, tt.want)
			}
		})
	}
}

func TestBookingActUnknownAction(t *testing.T) {
	service := NewBookingService(newStubVendorBookingRepo())
	if _, err := service.Act(context.Background(), "v1", "b1", "cancel"); err == nil {
		t.Error("Act() with an unknown action expected an error")
	}
}

func TestBookingListFiltersByStatus(t *testing.T) {
	repo := newStubVendorBookingRepo()
	repo.bookings["b1"] = &vendordomain.Booking{ID: "b1", VendorID: "v1", Status: vendordomain.BookingPending}
	repo.bookings["b2"] = &vendordomain.Booking{ID: "b2", VendorID: "v1", Status: vendordomain.BookingConfirmed}
	repo.bookings["b3"] = &vendordomain.Booking{ID: "b3", VendorID: "v2", Status: vendordomain.BookingPending}
	service := NewBookingService(repo)

	all, err := service.List(context.Background(), "v1", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(all) = %d, want 2", len(all))
	}

	pending, err := service.List(context.Background(), "v1", "pending")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "b1" {
		t.Errorf("pending = %+v, want just b1", pending)
	}
}

func TestBookingEarnings(t *testing.T) {
	repo := newStubVendorBookingRepo()
	repo.bookings["b1"] = &vendordomain.Booking{ID: "b1", VendorID: "v1", Status: vendordomain.BookingCompleted, Amount: 50000}
	repo.bookings["b2"] = &vendordomain.Booking{ID: "b2", VendorID: "v1", Status: vendordomain.BookingConfirmed, Amount: 30000}
	repo.bookings["b3"] = &vendordomain.Booking{ID: "b3", VendorID: "v1", Status: vendordomain.BookingPending, Amount: 99999}
	service := NewBookingService(repo)

	report, err := service.Earnings(context.Background(), "v1")
	if err != nil {
		t.Fatalf("Earnings() error = %v", err)
	}
	if report.TotalAmount != 80000 || report.BookingCount != 2 {
		t.Errorf("report = %+v, want total 80000 over 2 bookings", report)
	}
}
