package public

import (
	"math"
	"time"

	publicdomain "github.com/eventour-app/event-backend/internal/public/domain"
)

type reviewSummaryResponse = publicdomain.ReviewSummary
type reviewDetailResponse = publicdomain.ReviewDetail

type vendorSummaryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	City          string   `json:"city,omitempty"`
	Area          string   `json:"area,omitempty"`
	PriceRange    string   `json:"priceRange,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	LogoURL       string   `json:"logoUrl,omitempty"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	BookingCount  int      `json:"bookingCount,omitempty"`
	Verified      bool     `json:"verified,omitempty"`
	PhotoURLs     []string `json:"photoUrls,omitempty"`
}

type vendorDetailResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Category       string               `json:"category"`
	City           string               `json:"city,omitempty"`
	Area           string               `json:"area,omitempty"`
	About          string               `json:"about,omitempty"`
	PriceRange     string               `json:"priceRange,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
	LogoURL        string               `json:"logoUrl,omitempty"`
	Photos         []publicdomain.Photo `json:"photos,omitempty"`
	Social         vendorSocialPayload  `json:"social"`
	Verified       bool                 `json:"verified"`
	AverageRating  float64              `json:"averageRating"`
	ReviewCount    int                  `json:"reviewCount"`
	BookingCount   int                  `json:"bookingCount,omitempty"`
	LastReviewedAt *time.Time           `json:"lastReviewedAt,omitempty"`
	UpdatedAt      *time.Time           `json:"updatedAt,omitempty"`
}

type vendorSocialPayload struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

type listingResponse struct {
	ID          string               `json:"id"`
	VendorID    string               `json:"vendorId"`
	VendorName  string               `json:"vendorName,omitempty"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Price       int                  `json:"price"`
	PriceUnit   string               `json:"priceUnit"`
	Capacity    *int                 `json:"capacity,omitempty"`
	Photos      []publicdomain.Photo `json:"photos,omitempty"`
	Tags        []string             `json:"tags,omitempty"`
}

type bookingResponse struct {
	ID           string `json:"id"`
	VendorID     string `json:"vendorId"`
	VendorName   string `json:"vendorName,omitempty"`
	ListingID    string `json:"listingId"`
	ListingTitle string `json:"listingTitle,omitempty"`
	EventDate    string `json:"eventDate"`
	GuestCount   int    `json:"guestCount,omitempty"`
	Amount       int    `json:"amount"`
	Note         string `json:"note,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

type vendorListResponse struct {
	Items []vendorSummaryResponse `json:"items"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Total int                     `json:"total"`
}

type reviewListResponse struct {
	Items []reviewSummaryResponse `json:"items"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Total int                     `json:"total"`
}

// buildVendorSummaryResponse converts a vendor read model to its list DTO.
func buildVendorSummaryResponse(vendor publicdomain.Vendor) vendorSummaryResponse {
	avgRating := 0.0
	if vendor.Stats.AvgRating != nil {
		avgRating = math.Round(*vendor.Stats.AvgRating*10) / 10
	}

	photoURLs := make([]string, 0, len(vendor.Photos))
	for _, photo := range vendor.Photos {
		photoURLs = append(photoURLs, photo.PublicURL)
	}

	return vendorSummaryResponse{
		ID:            vendor.ID,
		Name:          vendor.Name,
		Category:      vendor.Category,
		City:          vendor.City,
		Area:          vendor.Area,
		PriceRange:    vendor.PriceRange,
		Tags:          append([]string{}, vendor.Tags...),
		LogoURL:       vendor.LogoURL,
		AverageRating: avgRating,
		ReviewCount:   vendor.Stats.ReviewCount,
		BookingCount:  vendor.Stats.BookingCount,
		Verified:      vendor.Verified,
		PhotoURLs:     photoURLs,
	}
}

// buildVendorDetailResponse converts a vendor read model to its detail DTO.
func buildVendorDetailResponse(vendor publicdomain.Vendor) vendorDetailResponse {
	avgRating := 0.0
	if vendor.Stats.AvgRating != nil {
		avgRating = math.Round(*vendor.Stats.AvgRating*10) / 10
	}

	var updatedAt *time.Time
	if !vendor.UpdatedAt.IsZero() {
		t := vendor.UpdatedAt
		updatedAt = &t
	}

	return vendorDetailResponse{
		ID:         vendor.ID,
		Name:       vendor.Name,
		Category:   vendor.Category,
		City:       vendor.City,
		Area:       vendor.Area,
		About:      vendor.About,
		PriceRange: vendor.PriceRange,
		Tags:       append([]string{}, vendor.Tags...),
		LogoURL:    vendor.LogoURL,
		Photos:     append([]publicdomain.Photo{}, vendor.Photos...),
		Social: vendorSocialPayload{
			Instagram: vendor.Social.Instagram,
			Facebook:  vendor.Social.Facebook,
			YouTube:   vendor.Social.YouTube,
			Website:   vendor.Social.Website,
		},
		Verified:       vendor.Verified,
		AverageRating:  avgRating,
		ReviewCount:    vendor.Stats.ReviewCount,
		BookingCount:   vendor.Stats.BookingCount,
		LastReviewedAt: vendor.Stats.LastReviewedAt,
		UpdatedAt:      updatedAt,
	}
}

// buildListingResponse converts a listing read model to its DTO.
func buildListingResponse(listing publicdomain.Listing) listingResponse {
	return listingResponse{
		ID:          listing.ID,
		VendorID:    listing.VendorID,
		VendorName:  listing.VendorName,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		PriceUnit:   listing.PriceUnit,
		Capacity:    listing.Capacity,
		Photos:      append([]publicdomain.Photo{}, listing.Photos...),
		Tags:        append([]string{}, listing.Tags...),
	}
}

// buildBookingResponse converts a booking to the customer-facing DTO.
func buildBookingResponse(booking publicdomain.Booking) bookingResponse {
	return bookingResponse{
		ID:           booking.ID,
		VendorID:     booking.VendorID,
		VendorName:   booking.VendorName,
		ListingID:    booking.ListingID,
		ListingTitle: booking.ListingTitle,
		EventDate:    booking.EventDate.Format("2006-01-02"),
		GuestCount:   booking.GuestCount,
		Amount:       booking.Amount,
		Note:         booking.Note,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt.Format(time.RFC3339),
	}
}
