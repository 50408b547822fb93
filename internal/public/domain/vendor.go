package domain

import "time"

// Vendor represents a publicly visible vendor profile.
type Vendor struct {
	ID         string
	Name       string
	Category   string
	City       string
	Area       string
	About      string
	PriceRange string
	Tags       []string
	LogoURL    string
	Photos     []Photo
	Social     SocialLinks
	Verified   bool
	Stats      VendorStats
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SocialLinks defines structured outbound URLs for a vendor.
type SocialLinks struct {
	Instagram string
	Facebook  string
	YouTube   string
	Website   string
}

// VendorStats aggregates review/booking metrics.
type VendorStats struct {
	ReviewCount    int
	AvgRating      *float64
	BookingCount   int
	LastReviewedAt *time.Time
}

// Photo keeps metadata of an uploaded, normalized image. It is embedded
// verbatim in review list/detail payloads.
type Photo struct {
	ID          string    `json:"id"`
	StoredPath  string    `json:"storedPath,omitempty"`
	PublicURL   string    `json:"publicUrl"`
	ContentType string    `json:"contentType,omitempty"`
	ByteSize    int       `json:"byteSize,omitempty"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt,omitempty"`
}
