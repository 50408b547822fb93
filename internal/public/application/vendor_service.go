package application

import (
	"context"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

// vendorQueryService is the concrete implementation of VendorQueryService.
type vendorQueryService struct {
	repo VendorRepository
}

// NewVendorQueryService creates a new vendor query service.
func NewVendorQueryService(repo VendorRepository) VendorQueryService {
	return &vendorQueryService{repo: repo}
}

func (s *vendorQueryService) List(ctx context.Context, filter VendorFilter, paging Paging) ([]domain.Vendor, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *vendorQueryService) Detail(ctx context.Context, id string) (*domain.Vendor, error) {
	return s.repo.FindByID(ctx, id)
}

// listingQueryService is the concrete implementation of ListingQueryService.
type listingQueryService struct {
	repo ListingRepository
}

// NewListingQueryService creates a new listing query service.
func NewListingQueryService(repo ListingRepository) ListingQueryService {
	return &listingQueryService{repo: repo}
}

func (s *listingQueryService) ListByVendor(ctx context.Context, vendorID string) ([]domain.Listing, error) {
	return s.repo.FindActiveByVendor(ctx, vendorID)
}

func (s *listingQueryService) Detail(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}
