package public

import (
	"testing"
	"time"
)

func TestCreateBookingRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      createBookingRequest
		wantDate time.Time
		wantErr  bool
	}{
		{
			name: "valid",
			req: createBookingRequest{
				ListingID: "64a1f0c2e8b4a93f10aa0001",
				EventDate: "2026-11-20",
			},
			wantDate: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing listing id",
			req:     createBookingRequest{EventDate: "2026-11-20"},
			wantErr: true,
		},
		{
			name: "malformed listing id",
			req: createBookingRequest{
				ListingID: "not-an-object-id",
				EventDate: "2026-11-20",
			},
			wantErr: true,
		},
		{
			name: "bad date format",
			req: createBookingRequest{
				ListingID: "64a1f0c2e8b4a93f10aa0001",
				EventDate: "20/11/2026",
			},
			wantErr: true,
		},
		{
			name: "negative guest count",
			req: createBookingRequest{
				ListingID:  "64a1f0c2e8b4a93f10aa0001",
				EventDate:  "2026-11-20",
				GuestCount: -5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.wantDate) {
				t.Errorf("validate() date = %v, want %v", got, tt.wantDate)
			}
		})
	}
}

func TestBookingAmount(t *testing.T) {
	tests := []struct {
		name       string
		price      int
		priceUnit  string
		guestCount int
		want       int
	}{
		{"per plate scales with guests", 800, "per_plate", 250, 200000},
		{"per plate without guests", 800, "per_plate", 0, 800},
		{"per event ignores guests", 50000, "per_event", 300, 50000},
		{"per day", 15000, "per_day", 100, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bookingAmount(tt.price, tt.priceUnit, tt.guestCount); got != tt.want {
				t.Errorf("bookingAmount(%d, %q, %d) = %d, want %d", tt.price, tt.priceUnit, tt.guestCount, got, tt.want)
			}
		})
	}
}
