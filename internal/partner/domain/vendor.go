package domain

import "time"

// Vendor aggregates the data a vendor manages through the dashboard.
type Vendor struct {
	ID             string
	OwnerID        string
	Name           string
	Category       Category
	City           City
	Area           string
	About          string
	Phone          Phone
	PriceRange     string
	Tags           TagList
	LogoURL        URL
	PhotoURLs      PhotoURLList
	Social         SocialLinks
	Verified       bool
	ReviewCount    int
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SocialLinks mirrors the structured outbound URLs for the vendor context.
type SocialLinks struct {
	Instagram URL
	Facebook  URL
	YouTube   URL
	Website   URL
}

// NewSocialLinks validates each link, treating empty strings as unset.
func NewSocialLinks(instagram, facebook, youtube, website string) (SocialLinks, error) {
	insta, err := NewURL(instagram)
	if err != nil {
		return SocialLinks{}, err
	}
	fb, err := NewURL(facebook)
	if err != nil {
		return SocialLinks{}, err
	}
	yt, err := NewURL(youtube)
	if err != nil {
		return SocialLinks{}, err
	}
	web, err := NewURL(website)
	if err != nil {
		return SocialLinks{}, err
	}
	return SocialLinks{Instagram: insta, Facebook: fb, YouTube: yt, Website: web}, nil
}

// Listing is a bookable service package from the managing vendor's view.
type Listing struct {
	ID          string
	VendorID    string
	Title       string
	Description string
	Price       Money
	PriceUnit   PriceUnit
	Capacity    *int
	PhotoURLs   PhotoURLList
	Tags        TagList
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Announcement is a short notice a vendor publishes on their profile page.
type Announcement struct {
	ID        string
	VendorID  string
	Title     string
	Body      string
	CreatedAt time.Time
}

// EarningsReport summarizes booking revenue for a vendor.
type EarningsReport struct {
	TotalAmount  int
	BookingCount int
	Months       []MonthlyEarnings
}

// MonthlyEarnings is one month's slice of an EarningsReport.
type MonthlyEarnings struct {
	Month        string
	Amount       int
	BookingCount int
}
