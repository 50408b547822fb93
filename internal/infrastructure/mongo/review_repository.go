package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/public/application"
	"github.com/eventour-app/event-backend/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
// It also owns the helpful-vote bookkeeping for each review.
type ReviewRepository struct {
	reviews *mongo.Collection
	votes   *HelpfulVoteRepository
}

// NewReviewRepository binds the review and helpful-vote collections.
func NewReviewRepository(db *mongo.Database, reviewCollection, helpfulCollection string) *ReviewRepository {
	return &ReviewRepository{
		reviews: db.Collection(reviewCollection),
		votes:   NewHelpfulVoteRepository(db, helpfulCollection),
	}
}

// Find returns reviews matching the vendor/category/city/keyword criteria.
func (r *ReviewRepository) Find(ctx context.Context, filter application.ReviewFilter, paging application.Paging) ([]domain.Review, error) {
	mongoFilter := bson.M{}
	andClauses := make([]bson.M, 0)

	if filter.VendorID != "" {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(filter.VendorID))
		if err != nil {
			return nil, err
		}
		mongoFilter["vendorId"] = id
	}
	if filter.Category != "" {
		andClauses = append(andClauses, bson.M{"category": strings.TrimSpace(filter.Category)})
	}
	if filter.City != "" {
		andClauses = append(andClauses, bson.M{"city": strings.TrimSpace(filter.City)})
	}
	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		andClauses = append(andClauses, bson.M{"$or": bson.A{
			bson.M{"comment": pattern},
			bson.M{"vendorName": pattern},
		}})
	}

	if len(andClauses) == 1 {
		for k, v := range andClauses[0] {
			mongoFilter[k] = v
		}
	} else if len(andClauses) > 1 {
		mongoFilter["$and"] = andClauses
	}

	cursor, err := r.reviews.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	return reviews, cursor.Err()
}

// FindByID returns a single review by its identifier.
func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ReviewDocument
	if err := r.reviews.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	review := mapReviewDocument(doc)
	return &review, nil
}

// Create inserts a review and writes the assigned identifier back to the model.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	vendorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.VendorID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := review.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := ReviewDocument{
		ID:           primitive.NewObjectID(),
		VendorID:     vendorID,
		VendorName:   review.VendorName,
		Category:     review.Category,
		City:         review.City,
		AuthorID:     review.AuthorID,
		AuthorName:   review.AuthorName,
		EventMonth:   review.EventMonth,
		Rating:       review.Rating,
		Comment:      review.Comment,
		Photos:       mapPhotoDocuments(review.Photos),
		HelpfulCount: review.HelpfulCount,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	if _, err := r.reviews.InsertOne(ctx, doc); err != nil {
		return err
	}

	review.ID = doc.ID.Hex()
	review.CreatedAt = doc.CreatedAt
	review.UpdatedAt = doc.UpdatedAt
	return nil
}

// IncrementHelpful records the voter's desired helpful state and adjusts the
// counter only when the state actually changed.
func (r *ReviewRepository) IncrementHelpful(ctx context.Context, reviewID, voterID string, inc bool) (int, error) {
	reviewObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(reviewID))
	if err != nil {
		return 0, err
	}

	changed, err := r.votes.Upsert(ctx, reviewObjID, strings.TrimSpace(voterID), inc)
	if err != nil {
		return 0, err
	}

	update := bson.M{}
	if changed {
		delta := 1
		if !inc {
			delta = -1
		}
		update["$inc"] = bson.M{"helpfulCount": delta}
	}

	var updated ReviewDocument
	if len(update) == 0 {
		if err := r.reviews.FindOne(ctx, bson.M{"_id": reviewObjID}).Decode(&updated); err != nil {
			return 0, err
		}
		return updated.HelpfulCount, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.reviews.FindOneAndUpdate(ctx, bson.M{"_id": reviewObjID}, update, opts).Decode(&updated); err != nil {
		return 0, err
	}
	return updated.HelpfulCount, nil
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:           doc.ID.Hex(),
		VendorID:     doc.VendorID.Hex(),
		VendorName:   doc.VendorName,
		Category:     doc.Category,
		City:         doc.City,
		AuthorID:     doc.AuthorID,
		AuthorName:   doc.AuthorName,
		EventMonth:   doc.EventMonth,
		Rating:       doc.Rating,
		Comment:      doc.Comment,
		Photos:       mapPhotosFromDocs(doc.Photos),
		HelpfulCount: doc.HelpfulCount,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
