package application

import (
	"context"
	"errors"
	"strings"
	"time"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

const maxListingPhotos = 10

type listingService struct {
	repo ListingRepository
}

// NewListingService wires the listing management use-cases to a repository.
func NewListingService(repo ListingRepository) ListingService {
	return &listingService{repo: repo}
}

func (s *listingService) List(ctx context.Context, vendorID string) ([]vendordomain.Listing, error) {
	return s.repo.FindByVendor(ctx, vendorID)
}

func (s *listingService) Create(ctx context.Context, vendorID string, cmd UpsertListingCommand) (*vendordomain.Listing, error) {
	listing, err := buildListingFromCommand("", vendorID, cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) Update(ctx context.Context, vendorID, listingID string, cmd UpsertListingCommand) (*vendordomain.Listing, error) {
	existing, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if existing.VendorID != vendorID {
		return nil, ErrNotOwner
	}

	listing, err := buildListingFromCommand(listingID, vendorID, cmd)
	if err != nil {
		return nil, err
	}
	listing.CreatedAt = existing.CreatedAt
	listing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func buildListingFromCommand(id, vendorID string, cmd UpsertListingCommand) (*vendordomain.Listing, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, errors.New("listing title is required")
	}
	price, err := vendordomain.NewMoney(cmd.Price)
	if err != nil {
		return nil, err
	}
	priceUnit, err := vendordomain.NewPriceUnit(cmd.PriceUnit)
	if err != nil {
		return nil, err
	}
	if cmd.Capacity != nil && *cmd.Capacity <= 0 {
		return nil, errors.New("capacity must be positive when given")
	}
	photos, err := vendordomain.NewPhotoURLList(cmd.PhotoURLs, maxListingPhotos)
	if err != nil {
		return nil, err
	}
	tags, err := vendordomain.NewTagList(cmd.Tags)
	if err != nil {
		return nil, err
	}

	return &vendordomain.Listing{
		ID:          id,
		VendorID:    vendorID,
		Title:       title,
		Description: strings.TrimSpace(cmd.Description),
		Price:       price,
		PriceUnit:   priceUnit,
		Capacity:    cmd.Capacity,
		PhotoURLs:   photos,
		Tags:        tags,
		Active:      cmd.Active,
	}, nil
}
