package domain

// ReviewSummary is the public-facing list view of a review.
type ReviewSummary struct {
	ID           string  `json:"id"`
	VendorID     string  `json:"vendorId"`
	VendorName   string  `json:"vendorName"`
	Category     string  `json:"category,omitempty"`
	City         string  `json:"city,omitempty"`
	EventMonth   string  `json:"eventMonth,omitempty"`
	Rating       float64 `json:"rating"`
	CreatedAt    string  `json:"createdAt"`
	HelpfulCount int     `json:"helpfulCount,omitempty"`
	Excerpt      string  `json:"excerpt,omitempty"`
	Photos       []Photo `json:"photos,omitempty"`
}

// ReviewDetail augments ReviewSummary with the full comment and author info.
type ReviewDetail struct {
	ReviewSummary
	Comment           string `json:"comment"`
	AuthorDisplayName string `json:"authorDisplayName"`
}
