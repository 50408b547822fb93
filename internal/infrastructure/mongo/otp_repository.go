package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventour-app/event-backend/internal/otp"
)

// OTPChallengeRepository persists pending login challenges in MongoDB.
type OTPChallengeRepository struct {
	collection *mongo.Collection
}

// NewOTPChallengeRepository binds the challenge collection.
func NewOTPChallengeRepository(db *mongo.Database, collectionName string) *OTPChallengeRepository {
	return &OTPChallengeRepository{collection: db.Collection(collectionName)}
}

// Save replaces any pending challenge for the phone number.
func (r *OTPChallengeRepository) Save(ctx context.Context, challenge *otp.Challenge) error {
	filter := bson.M{"phone": challenge.Phone}
	update := bson.M{"$set": bson.M{
		"phone":     challenge.Phone,
		"codeHash":  challenge.CodeHash,
		"attempts":  challenge.Attempts,
		"expiresAt": challenge.ExpiresAt,
		"createdAt": challenge.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByPhone returns the pending challenge for the phone number.
func (r *OTPChallengeRepository) FindByPhone(ctx context.Context, phone string) (*otp.Challenge, error) {
	var doc OTPChallengeDocument
	if err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&doc); err != nil {
		return nil, err
	}
	return &otp.Challenge{
		Phone:     doc.Phone,
		CodeHash:  doc.CodeHash,
		Attempts:  doc.Attempts,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// IncrementAttempts bumps the attempt counter and returns the new value.
func (r *OTPChallengeRepository) IncrementAttempts(ctx context.Context, phone string) (int, error) {
	update := bson.M{"$inc": bson.M{"attempts": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc OTPChallengeDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"phone": phone}, update, opts).Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Attempts, nil
}

// Delete removes the pending challenge for the phone number.
func (r *OTPChallengeRepository) Delete(ctx context.Context, phone string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"phone": phone})
	return err
}

// UserRepository persists accounts keyed by phone number.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository binds the users collection.
func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName)}
}

// UpsertByPhone creates the account on first login and refreshes updatedAt on
// every later one.
func (r *UserRepository) UpsertByPhone(ctx context.Context, phone string) (*otp.User, error) {
	now := time.Now().UTC()
	filter := bson.M{"phone": phone}
	update := bson.M{
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"phone": phone, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc UserDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return &otp.User{
		ID:        doc.ID.Hex(),
		Phone:     doc.Phone,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
