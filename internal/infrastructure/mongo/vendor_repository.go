package mongo

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/public/application"
	"github.com/eventour-app/event-backend/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VendorRepository implements application.VendorRepository using MongoDB.
type VendorRepository struct {
	collection *mongo.Collection
}

// NewVendorRepository creates a new Mongo-backed vendor read repository.
func NewVendorRepository(db *mongo.Database, collectionName string) *VendorRepository {
	return &VendorRepository{collection: db.Collection(collectionName)}
}

// Find returns vendor summaries filtered and paginated according to the provided criteria.
func (r *VendorRepository) Find(ctx context.Context, filter application.VendorFilter, paging application.Paging) ([]domain.Vendor, error) {
	mongoFilter := bson.M{}
	if filter.Category != "" {
		mongoFilter["category"] = strings.TrimSpace(filter.Category)
	}
	if filter.City != "" {
		mongoFilter["city"] = strings.TrimSpace(filter.City)
	}
	if len(filter.Tags) > 0 {
		mongoFilter["tags"] = bson.M{"$all": filter.Tags}
	}
	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"area": pattern},
			bson.M{"about": pattern},
		}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vendors := make([]domain.Vendor, 0)
	for cursor.Next(ctx) {
		var doc VendorDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		vendors = append(vendors, mapVendorDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	sortVendors(vendors, paging.Sort)
	return vendors, nil
}

// FindByID returns a single vendor profile by its identifier.
func (r *VendorRepository) FindByID(ctx context.Context, id string) (*domain.Vendor, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc VendorDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	vendor := mapVendorDocument(doc)
	return &vendor, nil
}

func mapVendorDocument(doc VendorDocument) domain.Vendor {
	createdAt := time.Time{}
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}
	updatedAt := time.Time{}
	if doc.UpdatedAt != nil {
		updatedAt = *doc.UpdatedAt
	}

	stats := domain.VendorStats{
		ReviewCount:    doc.Stats.ReviewCount,
		AvgRating:      doc.Stats.AvgRating,
		BookingCount:   doc.Stats.BookingCount,
		LastReviewedAt: doc.Stats.LastReviewedAt,
	}

	return domain.Vendor{
		ID:         doc.ID.Hex(),
		Name:       doc.Name,
		Category:   doc.Category,
		City:       doc.City,
		Area:       doc.Area,
		About:      doc.About,
		PriceRange: doc.PriceRange,
		Tags:       append([]string{}, doc.Tags...),
		LogoURL:    doc.LogoURL,
		Photos:     mapPhotosFromDocs(doc.Photos),
		Social:     mapSocialDocument(doc.Social),
		Verified:   doc.Verified,
		Stats:      stats,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func mapSocialDocument(doc VendorSocialDocument) domain.SocialLinks {
	return domain.SocialLinks{
		Instagram: doc.Instagram,
		Facebook:  doc.Facebook,
		YouTube:   doc.YouTube,
		Website:   doc.Website,
	}
}

// mapPhotosFromDocs restores stored photo metadata as domain photos.
func mapPhotosFromDocs(docs []PhotoDocument) []domain.Photo {
	if len(docs) == 0 {
		return nil
	}
	result := make([]domain.Photo, 0, len(docs))
	for _, doc := range docs {
		result = append(result, domain.Photo{
			ID:          doc.ID,
			StoredPath:  doc.StoredPath,
			PublicURL:   doc.PublicURL,
			ContentType: doc.ContentType,
			ByteSize:    doc.ByteSize,
			Width:       doc.Width,
			Height:      doc.Height,
			UploadedAt:  doc.UploadedAt,
		})
	}
	return result
}

// mapPhotoDocuments converts domain photos to their Mongo embedding.
func mapPhotoDocuments(photos []domain.Photo) []PhotoDocument {
	if len(photos) == 0 {
		return nil
	}
	result := make([]PhotoDocument, 0, len(photos))
	for _, photo := range photos {
		result = append(result, PhotoDocument{
			ID:          photo.ID,
			StoredPath:  photo.StoredPath,
			PublicURL:   photo.PublicURL,
			ContentType: photo.ContentType,
			ByteSize:    photo.ByteSize,
			Width:       photo.Width,
			Height:      photo.Height,
			UploadedAt:  photo.UploadedAt,
		})
	}
	return result
}

func sortVendors(vendors []domain.Vendor, sortKey string) {
	switch sortKey {
	case "rating":
		sort.SliceStable(vendors, func(i, j int) bool {
			return ptrFloat(vendors[i].Stats.AvgRating) > ptrFloat(vendors[j].Stats.AvgRating)
		})
	case "reviews":
		sort.SliceStable(vendors, func(i, j int) bool {
			return vendors[i].Stats.ReviewCount > vendors[j].Stats.ReviewCount
		})
	default:
		sort.SliceStable(vendors, func(i, j int) bool {
			return vendors[i].CreatedAt.After(vendors[j].CreatedAt)
		})
	}
}

func ptrFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return math.Round(*v*10) / 10
}
