package domain

import "time"

// BookingStatus tracks a booking through its lifecycle from the vendor side.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransition reports whether a vendor may move a booking to next.
// Customers own cancellation, so it is not reachable from here.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingDeclined
	case BookingConfirmed:
		return next == BookingCompleted
	}
	return false
}

// ParseBookingAction maps a dashboard action verb to the target status.
func ParseBookingAction(action string) (BookingStatus, bool) {
	switch action {
	case "confirm":
		return BookingConfirmed, true
	case "decline":
		return BookingDeclined, true
	case "complete":
		return BookingCompleted, true
	}
	return "", false
}

// Booking is a customer's booking as seen by the managing vendor.
type Booking struct {
	ID            string
	VendorID      string
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
