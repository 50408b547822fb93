package application

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

type stubVendorRepo struct {
	byOwner map[string]*vendordomain.Vendor
	created *vendordomain.Vendor
	updated *vendordomain.Vendor
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{byOwner: make(map[string]*vendordomain.Vendor)}
}

func (r *stubVendorRepo) FindByID(_ context.Context, id string) (*vendordomain.Vendor, error) {
	for _, vendor := range r.byOwner {
		if vendor.ID == id {
			return vendor, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubVendorRepo) FindByOwner(_ context.Context, ownerID string) (*vendordomain.Vendor, error) {
	vendor, ok := r.byOwner[ownerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *vendor
	return &copied, nil
}

func (r *stubVendorRepo) Create(_ context.Context, vendor *vendordomain.Vendor) error {
	if _, ok := r.byOwner[vendor.OwnerID]; ok {
		return ErrVendorExists
	}
	vendor.ID = "vendor-1"
	r.byOwner[vendor.OwnerID] = vendor
	r.created = vendor
	return nil
}

func (r *stubVendorRepo) Update(_ context.Context, vendor *vendordomain.Vendor) error {
	r.byOwner[vendor.OwnerID] = vendor
	r.updated = vendor
	return nil
}

func validVendorCommand() UpsertVendorCommand {
	return UpsertVendorCommand{
		Name:     "Grand Orchid Banquets",
		Category: "venue",
		City:     "Mumbai",
		Phone:    "+919876543210",
		Tags:     []string{"ac_hall", "premium"},
	}
}

func TestOnboard(t *testing.T) {
	repo := newStubVendorRepo()
	service := NewProfileService(repo)

	vendor, err := service.Onboard(context.Background(), "owner-1", validVendorCommand())
	if err != nil {
		t.Fatalf("Onboard() error = %v", err)
	}
	if vendor.Category.String() != "banquet_hall" {
		t.Errorf("category = %q, want banquet_hall", vendor.Category)
	}
	if vendor.CreatedAt.IsZero() || !vendor.CreatedAt.Equal(vendor.UpdatedAt) {
		t.Errorf("timestamps not set together: %v %v", vendor.CreatedAt, vendor.UpdatedAt)
	}

	if _, err := service.Onboard(context.Background(), "owner-1", validVendorCommand()); !errors.Is(err, ErrVendorExists) {
		t.Errorf("second Onboard() error = %v, want ErrVendorExists", err)
	}
}

func TestOnboardRejectsBadInput(t *testing.T) {
	service := NewProfileService(newStubVendorRepo())

	cmd := validVendorCommand()
	cmd.Category = "florist"
	if _, err := service.Onboard(context.Background(), "owner-1", cmd); err == nil {
		t.Error("unknown category expected an error")
	}

	cmd = validVendorCommand()
	cmd.Name = "   "
	if _, err := service.Onboard(context.Background(), "owner-1", cmd); err == nil {
		t.Error("blank name expected an error")
	}

	cmd = validVendorCommand()
	cmd.Phone = "12"
	if _, err := service.Onboard(context.Background(), "owner-1", cmd); err == nil {
		t.Error("invalid phone expected an error")
	}
}

func TestUpdateKeepsModeration(t *testing.T) {
	repo := newStubVendorRepo()
	service := NewProfileService(repo)

	if _, err := service.Onboard(context.Background(), "owner-1", validVendorCommand()); err != nil {
		t.Fatalf("Onboard() error = %v", err)
	}
	repo.byOwner["owner-1"].Verified = true
	repo.byOwner["owner-1"].ReviewCount = 12

	cmd := validVendorCommand()
	cmd.About = "Serving Mumbai weddings since 2009."
	vendor, err := service.Update(context.Background(), "owner-1", cmd)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !vendor.Verified || vendor.ReviewCount != 12 {
		t.Errorf("moderation fields lost: verified=%v reviewCount=%d", vendor.Verified, vendor.ReviewCount)
	}
	if vendor.About != "Serving Mumbai weddings since 2009." {
		t.Errorf("about = %q", vendor.About)
	}

	if _, err := service.Update(context.Background(), "owner-2", cmd); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update() for an unknown owner error = %v, want ErrNoDocuments", err)
	}
}
