package partner

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/partner/application"
	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

type socialLinksPayload struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

type vendorProfileResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	City           string             `json:"city"`
	Area           string             `json:"area,omitempty"`
	About          string             `json:"about,omitempty"`
	Phone          string             `json:"phone"`
	PriceRange     string             `json:"priceRange,omitempty"`
	Tags           []string           `json:"tags"`
	LogoURL        string             `json:"logoUrl,omitempty"`
	PhotoURLs      []string           `json:"photoUrls"`
	Social         socialLinksPayload `json:"social"`
	Verified       bool               `json:"verified"`
	ReviewCount    int                `json:"reviewCount"`
	LastReviewedAt string             `json:"lastReviewedAt,omitempty"`
	CreatedAt      string             `json:"createdAt,omitempty"`
}

func buildVendorProfileResponse(vendor vendordomain.Vendor) vendorProfileResponse {
	resp := vendorProfileResponse{
		ID:          vendor.ID,
		Name:        vendor.Name,
		Category:    vendor.Category.String(),
		City:        vendor.City.String(),
		Area:        vendor.Area,
		About:       vendor.About,
		Phone:       vendor.Phone.String(),
		PriceRange:  vendor.PriceRange,
		Tags:        vendor.Tags.Strings(),
		LogoURL:     vendor.LogoURL.String(),
		PhotoURLs:   vendor.PhotoURLs.Strings(),
		Verified:    vendor.Verified,
		ReviewCount: vendor.ReviewCount,
		Social: socialLinksPayload{
			Instagram: vendor.Social.Instagram.String(),
			Facebook:  vendor.Social.Facebook.String(),
			YouTube:   vendor.Social.YouTube.String(),
			Website:   vendor.Social.Website.String(),
		},
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.PhotoURLs == nil {
		resp.PhotoURLs = []string{}
	}
	if vendor.LastReviewedAt != nil {
		resp.LastReviewedAt = vendor.LastReviewedAt.Format(time.RFC3339)
	}
	if !vendor.CreatedAt.IsZero() {
		resp.CreatedAt = vendor.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

type upsertVendorRequest struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	City       string             `json:"city"`
	Area       string             `json:"area,omitempty"`
	About      string             `json:"about,omitempty"`
	Phone      string             `json:"phone"`
	PriceRange string             `json:"priceRange,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	LogoURL    string             `json:"logoUrl,omitempty"`
	PhotoURLs  []string           `json:"photoUrls,omitempty"`
	Social     socialLinksPayload `json:"social,omitempty"`
}

func (req *upsertVendorRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("name is required")
	}
	category, err := common.RequireCategory(req.Category)
	if err != nil {
		return err
	}
	req.Category = category
	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		return errors.New("city is required")
	}
	req.About = strings.TrimSpace(req.About)
	if utf8.RuneCountInString(req.About) > common.MaxAboutRunes {
		return fmt.Errorf("about must be at most %d characters", common.MaxAboutRunes)
	}
	if len(req.PhotoURLs) > common.MaxVendorPhotoCount {
		return fmt.Errorf("at most %d photos are allowed", common.MaxVendorPhotoCount)
	}
	tags, err := common.NormalizeVendorTags(req.Tags)
	if err != nil {
		return err
	}
	req.Tags = tags
	return nil
}

func (req *upsertVendorRequest) toCommand() application.UpsertVendorCommand {
	return application.UpsertVendorCommand{
		Name:       req.Name,
		Category:   req.Category,
		City:       req.City,
		Area:       strings.TrimSpace(req.Area),
		About:      req.About,
		Phone:      strings.TrimSpace(req.Phone),
		PriceRange: strings.TrimSpace(req.PriceRange),
		Tags:       req.Tags,
		LogoURL:    strings.TrimSpace(req.LogoURL),
		PhotoURLs:  req.PhotoURLs,
		Social: application.SocialLinksCommand{
			Instagram: strings.TrimSpace(req.Social.Instagram),
			Facebook:  strings.TrimSpace(req.Social.Facebook),
			YouTube:   strings.TrimSpace(req.Social.YouTube),
			Website:   strings.TrimSpace(req.Social.Website),
		},
	}
}

type listingResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	PriceUnit   string   `json:"priceUnit"`
	Capacity    *int     `json:"capacity,omitempty"`
	PhotoURLs   []string `json:"photoUrls"`
	Tags        []string `json:"tags"`
	Active      bool     `json:"active"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

func buildListingResponse(listing vendordomain.Listing) listingResponse {
	resp := listingResponse{
		ID:          listing.ID,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price.Int(),
		PriceUnit:   listing.PriceUnit.String(),
		Capacity:    listing.Capacity,
		PhotoURLs:   listing.PhotoURLs.Strings(),
		Tags:        listing.Tags.Strings(),
		Active:      listing.Active,
	}
	if resp.PhotoURLs == nil {
		resp.PhotoURLs = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if !listing.CreatedAt.IsZero() {
		resp.CreatedAt = listing.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

type upsertListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	PriceUnit   string   `json:"priceUnit"`
	Capacity    *int     `json:"capacity,omitempty"`
	PhotoURLs   []string `json:"photoUrls,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func (req *upsertListingRequest) validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return errors.New("title is required")
	}
	if req.Price < 0 {
		return errors.New("price must be >= 0")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must be >= 0")
	}
	if len(req.PhotoURLs) > common.MaxListingPhotoCount {
		return fmt.Errorf("at most %d photos are allowed", common.MaxListingPhotoCount)
	}
	tags, err := common.NormalizeVendorTags(req.Tags)
	if err != nil {
		return err
	}
	req.Tags = tags
	return nil
}

func (req *upsertListingRequest) toCommand() application.UpsertListingCommand {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return application.UpsertListingCommand{
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		PriceUnit:   strings.TrimSpace(req.PriceUnit),
		Capacity:    req.Capacity,
		PhotoURLs:   req.PhotoURLs,
		Tags:        req.Tags,
		Active:      active,
	}
}

type bookingResponse struct {
	ID            string `json:"id"`
	ListingID     string `json:"listingId"`
	ListingTitle  string `json:"listingTitle"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	EventDate     string `json:"eventDate"`
	GuestCount    int    `json:"guestCount,omitempty"`
	Amount        int    `json:"amount"`
	Note          string `json:"note,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

func buildBookingResponse(booking vendordomain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:            booking.ID,
		ListingID:     booking.ListingID,
		ListingTitle:  booking.ListingTitle,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		EventDate:     booking.EventDate.Format("2006-01-02"),
		GuestCount:    booking.GuestCount,
		Amount:        booking.Amount,
		Note:          booking.Note,
		Status:        string(booking.Status),
	}
	if !booking.CreatedAt.IsZero() {
		resp.CreatedAt = booking.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

type monthlyEarningsPayload struct {
	Month        string `json:"month"`
	Amount       int    `json:"amount"`
	BookingCount int    `json:"bookingCount"`
}

type earningsResponse struct {
	TotalAmount  int                      `json:"totalAmount"`
	BookingCount int                      `json:"bookingCount"`
	Months       []monthlyEarningsPayload `json:"months"`
}

func buildEarningsResponse(report vendordomain.EarningsReport) earningsResponse {
	months := make([]monthlyEarningsPayload, 0, len(report.Months))
	for _, month := range report.Months {
		months = append(months, monthlyEarningsPayload{
			Month:        month.Month,
			Amount:       month.Amount,
			BookingCount: month.BookingCount,
		})
	}
	return earningsResponse{
		TotalAmount:  report.TotalAmount,
		BookingCount: report.BookingCount,
		Months:       months,
	}
}

type announcementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func buildAnnouncementResponse(announcement vendordomain.Announcement) announcementResponse {
	resp := announcementResponse{
		ID:    announcement.ID,
		Title: announcement.Title,
		Body:  announcement.Body,
	}
	if !announcement.CreatedAt.IsZero() {
		resp.CreatedAt = announcement.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
