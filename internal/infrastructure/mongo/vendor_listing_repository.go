package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

// VendorListingRepository is the Mongo implementation of the vendor-context
// listing repository. Listings carry a denormalized vendor name, so the
// vendors collection is consulted on insert.
type VendorListingRepository struct {
	listings *mongo.Collection
	vendors  *mongo.Collection
}

// NewVendorListingRepository binds the listing and vendor collections.
func NewVendorListingRepository(db *mongo.Database, listingCollection, vendorCollection string) *VendorListingRepository {
	return &VendorListingRepository{
		listings: db.Collection(listingCollection),
		vendors:  db.Collection(vendorCollection),
	}
}

// FindByVendor returns all of the vendor's listings, newest first, including
// inactive ones the public side never sees.
func (r *VendorListingRepository) FindByVendor(ctx context.Context, vendorID string) ([]vendordomain.Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendorID))
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.listings.Find(ctx, bson.M{"vendorId": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]vendordomain.Listing, 0)
	for cursor.Next(ctx) {
		var doc ListingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		listing, err := mapVendorListing(doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, cursor.Err()
}

// FindByID returns a single listing by its identifier.
func (r *VendorListingRepository) FindByID(ctx context.Context, id string) (*vendordomain.Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ListingDocument
	if err := r.listings.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	listing, err := mapVendorListing(doc)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Create inserts a listing with the vendor name denormalized onto it.
func (r *VendorListingRepository) Create(ctx context.Context, listing *vendordomain.Listing) error {
	vendorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(listing.VendorID))
	if err != nil {
		return err
	}

	var vendor VendorDocument
	if err := r.vendors.FindOne(ctx, bson.M{"_id": vendorID}).Decode(&vendor); err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := listing.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	doc := ListingDocument{
		ID:          primitive.NewObjectID(),
		VendorID:    vendorID,
		VendorName:  vendor.Name,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price.Int(),
		PriceUnit:   listing.PriceUnit.String(),
		Capacity:    listing.Capacity,
		Photos:      reconcilePhotoDocuments(nil, listing.PhotoURLs.Strings()),
		Tags:        listing.Tags.Strings(),
		Active:      listing.Active,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	if _, err := r.listings.InsertOne(ctx, doc); err != nil {
		return err
	}
	listing.ID = doc.ID.Hex()
	listing.CreatedAt = doc.CreatedAt
	listing.UpdatedAt = doc.UpdatedAt
	return nil
}

// Update replaces the vendor-managed listing fields.
func (r *VendorListingRepository) Update(ctx context.Context, listing *vendordomain.Listing) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(listing.ID))
	if err != nil {
		return err
	}

	var existing ListingDocument
	if err := r.listings.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing); err != nil {
		return err
	}

	update := bson.M{
		"title":       listing.Title,
		"description": listing.Description,
		"price":       listing.Price.Int(),
		"priceUnit":   listing.PriceUnit.String(),
		"capacity":    listing.Capacity,
		"photos":      reconcilePhotoDocuments(existing.Photos, listing.PhotoURLs.Strings()),
		"tags":        listing.Tags.Strings(),
		"active":      listing.Active,
		"updatedAt":   time.Now().UTC(),
	}
	_, err = r.listings.UpdateByID(ctx, objectID, bson.M{"$set": update})
	return err
}

// mapVendorListing converts a Mongo document into the vendor-context listing.
func mapVendorListing(doc ListingDocument) (vendordomain.Listing, error) {
	price, err := vendordomain.NewMoney(doc.Price)
	if err != nil {
		return vendordomain.Listing{}, err
	}
	priceUnit, err := vendordomain.NewPriceUnit(doc.PriceUnit)
	if err != nil {
		return vendordomain.Listing{}, err
	}
	tags, err := vendordomain.NewTagList(doc.Tags)
	if err != nil {
		return vendordomain.Listing{}, err
	}
	photos, err := vendordomain.NewPhotoURLList(photoPublicURLs(doc.Photos), 0)
	if err != nil {
		return vendordomain.Listing{}, err
	}

	return vendordomain.Listing{
		ID:          doc.ID.Hex(),
		VendorID:    doc.VendorID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Price:       price,
		PriceUnit:   priceUnit,
		Capacity:    doc.Capacity,
		PhotoURLs:   photos,
		Tags:        tags,
		Active:      doc.Active,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}
