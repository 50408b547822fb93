package domain

import "testing"

func TestBookingStatusCanTransition(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingDeclined, true},
		{BookingPending, BookingCompleted, false},
		{BookingPending, BookingCancelled, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingDeclined, false},
		{BookingConfirmed, BookingPending, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingDeclined, BookingConfirmed, false},
		{BookingCancelled, BookingCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseBookingAction(t *testing.T) {
	tests := []struct {
		action string
		want   BookingStatus
		ok     bool
	}{
		{"confirm", BookingConfirmed, true},
		{"decline", BookingDeclined, true},
		{"complete", BookingCompleted, true},
		{"cancel", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseBookingAction(tt.action)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseBookingAction(%q) = (%q, %v), want (%q, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}
