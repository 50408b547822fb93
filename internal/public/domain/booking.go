package domain

import "time"

// BookingStatus tracks a booking through its lifecycle. Customers create
// pending bookings and may cancel; the vendor context owns the remaining
// transitions.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Cancellable reports whether the customer may still cancel the booking.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Booking represents a customer's request for a listing on an event date.
type Booking struct {
	ID            string
	VendorID      string
	VendorName    string
	ListingID     string
	ListingTitle  string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	EventDate     time.Time
	GuestCount    int
	Amount        int
	Note          string
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
