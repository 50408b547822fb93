package mongo

import (
	"context"
	"strings"

	"github.com/eventour-app/event-backend/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingRepository implements application.ListingRepository using MongoDB.
type ListingRepository struct {
	collection *mongo.Collection
}

// NewListingRepository creates a new Mongo-backed listing read repository.
func NewListingRepository(db *mongo.Database, collectionName string) *ListingRepository {
	return &ListingRepository{collection: db.Collection(collectionName)}
}

// FindActiveByVendor returns the vendor's currently bookable listings, newest first.
func (r *ListingRepository) FindActiveByVendor(ctx context.Context, vendorID string) ([]domain.Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendorID))
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"vendorId": objectID, "active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]domain.Listing, 0)
	for cursor.Next(ctx) {
		var doc ListingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		listings = append(listings, mapListingDocument(doc))
	}
	return listings, cursor.Err()
}

// FindByID returns a single listing by its identifier.
func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ListingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	listing := mapListingDocument(doc)
	return &listing, nil
}

func mapListingDocument(doc ListingDocument) domain.Listing {
	return domain.Listing{
		ID:          doc.ID.Hex(),
		VendorID:    doc.VendorID.Hex(),
		VendorName:  doc.VendorName,
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		PriceUnit:   doc.PriceUnit,
		Capacity:    doc.Capacity,
		Photos:      mapPhotosFromDocs(doc.Photos),
		Tags:        append([]string{}, doc.Tags...),
		Active:      doc.Active,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
