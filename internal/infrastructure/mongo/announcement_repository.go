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

// AnnouncementRepository persists vendor announcements in MongoDB.
type AnnouncementRepository struct {
	collection *mongo.Collection
}

// NewAnnouncementRepository binds the announcements collection.
func NewAnnouncementRepository(db *mongo.Database, collectionName string) *AnnouncementRepository {
	return &AnnouncementRepository{collection: db.Collection(collectionName)}
}

// FindByVendor returns the vendor's announcements, newest first.
func (r *AnnouncementRepository) FindByVendor(ctx context.Context, vendorID string) ([]vendordomain.Announcement, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendorID))
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"vendorId": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	announcements := make([]vendordomain.Announcement, 0)
	for cursor.Next(ctx) {
		var doc AnnouncementDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		announcements = append(announcements, vendordomain.Announcement{
			ID:        doc.ID.Hex(),
			VendorID:  doc.VendorID.Hex(),
			Title:     doc.Title,
			Body:      doc.Body,
			CreatedAt: doc.CreatedAt,
		})
	}
	return announcements, cursor.Err()
}

// Create inserts an announcement and writes the assigned identifier back.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *vendordomain.Announcement) error {
	vendorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(announcement.VendorID))
	if err != nil {
		return err
	}

	createdAt := announcement.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := AnnouncementDocument{
		ID:        primitive.NewObjectID(),
		VendorID:  vendorID,
		Title:     announcement.Title,
		Body:      announcement.Body,
		CreatedAt: createdAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	announcement.ID = doc.ID.Hex()
	announcement.CreatedAt = doc.CreatedAt
	return nil
}
