package application

import (
	"context"
	"errors"
	"strings"
	"time"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

const maxVendorPhotos = 10

type profileService struct {
	repo VendorRepository
}

// NewProfileService wires the vendor profile use-cases to a repository.
func NewProfileService(repo VendorRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Onboard(ctx context.Context, ownerID string, cmd UpsertVendorCommand) (*vendordomain.Vendor, error) {
	vendor, err := buildVendorFromCommand("", ownerID, cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *profileService) ByOwner(ctx context.Context, ownerID string) (*vendordomain.Vendor, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *profileService) Update(ctx context.Context, ownerID string, cmd UpsertVendorCommand) (*vendordomain.Vendor, error) {
	existing, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	vendor, err := buildVendorFromCommand(existing.ID, ownerID, cmd)
	if err != nil {
		return nil, err
	}
	vendor.Verified = existing.Verified
	vendor.ReviewCount = existing.ReviewCount
	vendor.LastReviewedAt = existing.LastReviewedAt
	vendor.CreatedAt = existing.CreatedAt
	vendor.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func buildVendorFromCommand(id, ownerID string, cmd UpsertVendorCommand) (*vendordomain.Vendor, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.New("vendor name is required")
	}
	category, err := vendordomain.NewCategory(cmd.Category)
	if err != nil {
		return nil, err
	}
	city, err := vendordomain.NewCity(cmd.City)
	if err != nil {
		return nil, err
	}
	phone, err := vendordomain.NewPhone(cmd.Phone)
	if err != nil {
		return nil, err
	}
	tags, err := vendordomain.NewTagList(cmd.Tags)
	if err != nil {
		return nil, err
	}
	logoURL, err := vendordomain.NewURL(cmd.LogoURL)
	if err != nil {
		return nil, err
	}
	photos, err := vendordomain.NewPhotoURLList(cmd.PhotoURLs, maxVendorPhotos)
	if err != nil {
		return nil, err
	}
	social, err := vendordomain.NewSocialLinks(cmd.Social.Instagram, cmd.Social.Facebook, cmd.Social.YouTube, cmd.Social.Website)
	if err != nil {
		return nil, err
	}

	return &vendordomain.Vendor{
		ID:         id,
		OwnerID:    ownerID,
		Name:       name,
		Category:   category,
		City:       city,
		Area:       strings.TrimSpace(cmd.Area),
		About:      strings.TrimSpace(cmd.About),
		Phone:      phone,
		PriceRange: strings.TrimSpace(cmd.PriceRange),
		Tags:       tags,
		LogoURL:    logoURL,
		PhotoURLs:  photos,
		Social:     social,
	}, nil
}
