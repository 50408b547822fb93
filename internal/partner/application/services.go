package application

import (
	"context"
	"errors"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

// ErrVendorExists is returned when an owner tries to onboard twice.
var ErrVendorExists = errors.New("vendor profile already exists for this account")

// ErrNotOwner is returned when a vendor acts on a resource they do not own.
var ErrNotOwner = errors.New("resource does not belong to this vendor")

// ErrInvalidTransition is returned for booking actions the status machine
// does not allow.
var ErrInvalidTransition = errors.New("booking status transition not allowed")

// VendorRepository exposes vendor-context operations on vendor profiles.
type VendorRepository interface {
	FindByID(ctx context.Context, id string) (*vendordomain.Vendor, error)
	FindByOwner(ctx context.Context, ownerID string) (*vendordomain.Vendor, error)
	Create(ctx context.Context, vendor *vendordomain.Vendor) error
	Update(ctx context.Context, vendor *vendordomain.Vendor) error
}

// ListingRepository exposes CRUD for a vendor's listings.
type ListingRepository interface {
	FindByVendor(ctx context.Context, vendorID string) ([]vendordomain.Listing, error)
	FindByID(ctx context.Context, id string) (*vendordomain.Listing, error)
	Create(ctx context.Context, listing *vendordomain.Listing) error
	Update(ctx context.Context, listing *vendordomain.Listing) error
}

// BookingRepository exposes vendor-side booking reads and status writes.
type BookingRepository interface {
	FindByVendor(ctx context.Context, vendorID string, status string) ([]vendordomain.Booking, error)
	FindByID(ctx context.Context, id string) (*vendordomain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status vendordomain.BookingStatus) (*vendordomain.Booking, error)
	Earnings(ctx context.Context, vendorID string) (*vendordomain.EarningsReport, error)
}

// AnnouncementRepository persists vendor announcements.
type AnnouncementRepository interface {
	FindByVendor(ctx context.Context, vendorID string) ([]vendordomain.Announcement, error)
	Create(ctx context.Context, announcement *vendordomain.Announcement) error
}

// ProfileService describes vendor onboarding and profile use-cases.
type ProfileService interface {
	Onboard(ctx context.Context, ownerID string, cmd UpsertVendorCommand) (*vendordomain.Vendor, error)
	ByOwner(ctx context.Context, ownerID string) (*vendordomain.Vendor, error)
	Update(ctx context.Context, ownerID string, cmd UpsertVendorCommand) (*vendordomain.Vendor, error)
}

// ListingService describes listing management use-cases.
type ListingService interface {
	List(ctx context.Context, vendorID string) ([]vendordomain.Listing, error)
	Create(ctx context.Context, vendorID string, cmd UpsertListingCommand) (*vendordomain.Listing, error)
	Update(ctx context.Context, vendorID, listingID string, cmd UpsertListingCommand) (*vendordomain.Listing, error)
}

// BookingService describes vendor-side booking use-cases.
type BookingService interface {
	List(ctx context.Context, vendorID string, status string) ([]vendordomain.Booking, error)
	Act(ctx context.Context, vendorID, bookingID string, action string) (*vendordomain.Booking, error)
	Earnings(ctx context.Context, vendorID string) (*vendordomain.EarningsReport, error)
}

// AnnouncementService describes announcement use-cases.
type AnnouncementService interface {
	List(ctx context.Context, vendorID string) ([]vendordomain.Announcement, error)
	Post(ctx context.Context, vendorID string, cmd PostAnnouncementCommand) (*vendordomain.Announcement, error)
}

// UpsertVendorCommand contains inputs for onboarding/updating a vendor.
type UpsertVendorCommand struct {
	Name       string
	Category   string
	City       string
	Area       string
	About      string
	Phone      string
	PriceRange string
	Tags       []string
	LogoURL    string
	PhotoURLs  []string
	Social     SocialLinksCommand
}

// SocialLinksCommand holds outbound links for a vendor.
type SocialLinksCommand struct {
	Instagram string
	Facebook  string
	YouTube   string
	Website   string
}

// UpsertListingCommand contains inputs for listing CRUD.
type UpsertListingCommand struct {
	Title       string
	Description string
	Price       int
	PriceUnit   string
	Capacity    *int
	PhotoURLs   []string
	Tags        []string
	Active      bool
}

// PostAnnouncementCommand contains inputs for a new announcement.
type PostAnnouncementCommand struct {
	Title string
	Body  string
}
