package application

import (
	"context"
	"time"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

// VendorRepository abstracts read access to vendor profiles.
type VendorRepository interface {
	Find(ctx context.Context, filter VendorFilter, paging Paging) ([]domain.Vendor, error)
	FindByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// ListingRepository abstracts read access to service listings.
type ListingRepository interface {
	FindActiveByVendor(ctx context.Context, vendorID string) ([]domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
}

// ReviewRepository handles review reads/writes.
type ReviewRepository interface {
	Find(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	IncrementHelpful(ctx context.Context, reviewID, voterID string, inc bool) (int, error)
}

// BookingRepository handles customer-side booking reads/writes.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// VendorFilter expresses search criteria for vendors.
type VendorFilter struct {
	Category string
	City     string
	Keyword  string
	Tags     []string
}

// ReviewFilter expresses search criteria for reviews.
type ReviewFilter struct {
	VendorID string
	Category string
	City     string
	Keyword  string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
	Sort  string
}

// VendorQueryService describes vendor read use-cases.
type VendorQueryService interface {
	List(ctx context.Context, filter VendorFilter, paging Paging) ([]domain.Vendor, error)
	Detail(ctx context.Context, id string) (*domain.Vendor, error)
}

// ListingQueryService describes listing read use-cases.
type ListingQueryService interface {
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Listing, error)
	Detail(ctx context.Context, id string) (*domain.Listing, error)
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	List(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error)
	Detail(ctx context.Context, id string) (*domain.Review, error)
}

// ReviewCommandService handles review writes.
type ReviewCommandService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error)
	ToggleHelpful(ctx context.Context, reviewID, voterID string, desiredState bool) (int, error)
}

// BookingCommandService handles customer-side booking writes.
type BookingCommandService interface {
	Place(ctx context.Context, cmd PlaceBookingCommand) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
}

// BookingQueryService lists a customer's own bookings.
type BookingQueryService interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}

// SubmitReviewCommand captures validated review input.
type SubmitReviewCommand struct {
	VendorID   string
	VendorName string
	Category   string
	City       string
	AuthorID   string
	AuthorName string
	EventMonth string
	Rating     float64
	Comment    string
	Photos     []domain.Photo
}

// PlaceBookingCommand captures validated booking input.
type PlaceBookingCommand struct {
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
}

// NewReviewCommandService wires the review command use-cases to a repository.
func NewReviewCommandService(repo ReviewRepository) ReviewCommandService {
	return &reviewCommandService{repo: repo}
}

type reviewCommandService struct {
	repo ReviewRepository
}

func (s *reviewCommandService) Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error) {
	now := time.Now().UTC()
	review := &domain.Review{
		VendorID:   cmd.VendorID,
		VendorName: cmd.VendorName,
		Category:   cmd.Category,
		City:       cmd.City,
		AuthorID:   cmd.AuthorID,
		AuthorName: cmd.AuthorName,
		EventMonth: cmd.EventMonth,
		Rating:     cmd.Rating,
		Comment:    cmd.Comment,
		Photos:     append([]domain.Photo{}, cmd.Photos...),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return review, s.repo.Create(ctx, review)
}

func (s *reviewCommandService) ToggleHelpful(ctx context.Context, reviewID, voterID string, desiredState bool) (int, error) {
	return s.repo.IncrementHelpful(ctx, reviewID, voterID, desiredState)
}
