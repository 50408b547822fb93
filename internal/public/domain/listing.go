package domain

import "time"

// Listing is a bookable service package offered by a vendor.
type Listing struct {
	ID          string
	VendorID    string
	VendorName  string
	Title       string
	Description string
	Price       int
	PriceUnit   string
	Capacity    *int
	Photos      []Photo
	Tags        []string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
