package domain

import "time"

// Review represents an approved, publicly visible customer review.
type Review struct {
	ID           string
	VendorID     string
	VendorName   string
	Category     string
	City         string
	AuthorID     string
	AuthorName   string
	EventMonth   string
	Rating       float64
	Comment      string
	Photos       []Photo
	HelpfulCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
