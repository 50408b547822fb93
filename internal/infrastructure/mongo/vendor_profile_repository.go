package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/partner/application"
	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

// VendorProfileRepository is the Mongo implementation of the vendor-context
// profile repository. It shares the vendors collection with the public side.
type VendorProfileRepository struct {
	collection *mongo.Collection
}

// NewVendorProfileRepository binds the vendors collection.
func NewVendorProfileRepository(db *mongo.Database, collectionName string) *VendorProfileRepository {
	return &VendorProfileRepository{collection: db.Collection(collectionName)}
}

// FindByID returns a vendor aggregate rebuilt through its value objects.
func (r *VendorProfileRepository) FindByID(ctx context.Context, id string) (*vendordomain.Vendor, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc VendorDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	vendor, err := mapVendorAccount(doc)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindByOwner returns the vendor profile owned by the given account.
func (r *VendorProfileRepository) FindByOwner(ctx context.Context, ownerID string) (*vendordomain.Vendor, error) {
	var doc VendorDocument
	if err := r.collection.FindOne(ctx, bson.M{"ownerId": strings.TrimSpace(ownerID)}).Decode(&doc); err != nil {
		return nil, err
	}
	vendor, err := mapVendorAccount(doc)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Create inserts a new vendor profile after checking the owner has none yet.
func (r *VendorProfileRepository) Create(ctx context.Context, vendor *vendordomain.Vendor) error {
	ownerID := strings.TrimSpace(vendor.OwnerID)
	if err := r.collection.FindOne(ctx, bson.M{"ownerId": ownerID}).Err(); err == nil {
		return application.ErrVendorExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	payload, err := buildVendorAccountDocument(vendor, nil, true)
	if err != nil {
		return err
	}
	result, err := r.collection.InsertOne(ctx, payload)
	if err != nil {
		return err
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		vendor.ID = objectID.Hex()
	}
	return nil
}

// Update replaces the vendor-managed fields, keeping stats and photo metadata
// of photos that are still referenced.
func (r *VendorProfileRepository) Update(ctx context.Context, vendor *vendordomain.Vendor) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendor.ID))
	if err != nil {
		return err
	}

	var existing VendorDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing); err != nil {
		return err
	}

	update, err := buildVendorAccountDocument(vendor, existing.Photos, false)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

// mapVendorAccount converts a Mongo document into the vendor-context aggregate.
func mapVendorAccount(doc VendorDocument) (vendordomain.Vendor, error) {
	category, err := vendordomain.NewCategory(doc.Category)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	city, err := vendordomain.NewCity(doc.City)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	phone, err := vendordomain.NewPhone(doc.Phone)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	tags, err := vendordomain.NewTagList(doc.Tags)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	logoURL, err := vendordomain.NewURL(doc.LogoURL)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	photos, err := vendordomain.NewPhotoURLList(photoPublicURLs(doc.Photos), 0)
	if err != nil {
		return vendordomain.Vendor{}, err
	}
	social, err := vendordomain.NewSocialLinks(doc.Social.Instagram, doc.Social.Facebook, doc.Social.YouTube, doc.Social.Website)
	if err != nil {
		return vendordomain.Vendor{}, err
	}

	vendor := vendordomain.Vendor{
		ID:             doc.ID.Hex(),
		OwnerID:        doc.OwnerID,
		Name:           doc.Name,
		Category:       category,
		City:           city,
		Area:           doc.Area,
		About:          doc.About,
		Phone:          phone,
		PriceRange:     doc.PriceRange,
		Tags:           tags,
		LogoURL:        logoURL,
		PhotoURLs:      photos,
		Social:         social,
		Verified:       doc.Verified,
		ReviewCount:    doc.Stats.ReviewCount,
		LastReviewedAt: doc.Stats.LastReviewedAt,
	}
	if doc.CreatedAt != nil {
		vendor.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		vendor.UpdatedAt = *doc.UpdatedAt
	}
	return vendor, nil
}

// buildVendorAccountDocument flattens the aggregate's value objects into BSON.
func buildVendorAccountDocument(vendor *vendordomain.Vendor, existingPhotos []PhotoDocument, includeCreated bool) (bson.M, error) {
	if vendor == nil {
		return nil, fmt.Errorf("vendor payload is nil")
	}
	payload := bson.M{
		"ownerId":    strings.TrimSpace(vendor.OwnerID),
		"name":       vendor.Name,
		"category":   vendor.Category.String(),
		"city":       vendor.City.String(),
		"area":       vendor.Area,
		"about":      vendor.About,
		"phone":      vendor.Phone.String(),
		"priceRange": vendor.PriceRange,
		"tags":       vendor.Tags.Strings(),
		"logoURL":    vendor.LogoURL.String(),
		"photos":     reconcilePhotoDocuments(existingPhotos, vendor.PhotoURLs.Strings()),
		"social":     flattenSocialLinks(vendor.Social),
		"updatedAt":  time.Now().UTC(),
	}
	if includeCreated {
		payload["stats"] = VendorStatsDocument{}
		payload["verified"] = false
		payload["createdAt"] = time.Now().UTC()
	}
	return payload, nil
}

// flattenSocialLinks flattens the SocialLinks value object to its embedding.
func flattenSocialLinks(links vendordomain.SocialLinks) VendorSocialDocument {
	return VendorSocialDocument{
		Instagram: links.Instagram.String(),
		Facebook:  links.Facebook.String(),
		YouTube:   links.YouTube.String(),
		Website:   links.Website.String(),
	}
}

func photoPublicURLs(docs []PhotoDocument) []string {
	if len(docs) == 0 {
		return nil
	}
	result := make([]string, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.PublicURL)
	}
	return result
}

// reconcilePhotoDocuments keeps the stored metadata for URLs that are still
// referenced and creates minimal entries for URLs seen for the first time.
func reconcilePhotoDocuments(existing []PhotoDocument, urls []string) []PhotoDocument {
	if len(urls) == 0 {
		return nil
	}
	known := make(map[string]PhotoDocument, len(existing))
	for _, doc := range existing {
		known[doc.PublicURL] = doc
	}

	result := make([]PhotoDocument, 0, len(urls))
	for _, u := range urls {
		if doc, ok := known[u]; ok {
			result = append(result, doc)
			continue
		}
		result = append(result, PhotoDocument{
			ID:         uuid.NewString(),
			PublicURL:  u,
			UploadedAt: time.Now().UTC(),
		})
	}
	return result
}
