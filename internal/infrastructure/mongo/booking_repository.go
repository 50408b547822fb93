package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository implements application.BookingRepository using MongoDB.
type BookingRepository struct {
	bookings *mongo.Collection
	vendors  *mongo.Collection
}

// NewBookingRepository binds the booking and vendor collections. The vendor
// collection is needed to keep stats.bookingCount in step with new bookings.
func NewBookingRepository(db *mongo.Database, bookingCollection, vendorCollection string) *BookingRepository {
	return &BookingRepository{
		bookings: db.Collection(bookingCollection),
		vendors:  db.Collection(vendorCollection),
	}
}

// Create inserts a booking and bumps the vendor's booking counter.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	vendorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(booking.VendorID))
	if err != nil {
		return err
	}
	listingID, err := primitive.ObjectIDFromHex(strings.TrimSpace(booking.ListingID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := booking.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := booking.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := BookingDocument{
		ID:            primitive.NewObjectID(),
		VendorID:      vendorID,
		VendorName:    booking.VendorName,
		ListingID:     listingID,
		ListingTitle:  booking.ListingTitle,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		EventDate:     booking.EventDate,
		GuestCount:    booking.GuestCount,
		Amount:        booking.Amount,
		Note:          booking.Note,
		Status:        string(booking.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}

	if _, err := r.bookings.InsertOne(ctx, doc); err != nil {
		return err
	}

	booking.ID = doc.ID.Hex()
	booking.CreatedAt = doc.CreatedAt
	booking.UpdatedAt = doc.UpdatedAt

	update := bson.M{
		"$inc": bson.M{"stats.bookingCount": 1},
		"$set": bson.M{"updatedAt": now},
	}
	_, err = r.vendors.UpdateByID(ctx, vendorID, update)
	return err
}

// FindByCustomer returns the customer's bookings, newest first.
func (r *BookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.bookings.Find(ctx, bson.M{"customerId": strings.TrimSpace(customerID)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]domain.Booking, 0)
	for cursor.Next(ctx) {
		var doc BookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, mapBookingDocument(doc))
	}
	return bookings, cursor.Err()
}

// FindByID returns a single booking by its identifier.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc BookingDocument
	if err := r.bookings.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	booking := mapBookingDocument(doc)
	return &booking, nil
}

// UpdateStatus moves a booking to the given status and returns the new state.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": time.Now().UTC(),
	}}

	var doc BookingDocument
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.bookings.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	booking := mapBookingDocument(doc)
	return &booking, nil
}

func mapBookingDocument(doc BookingDocument) domain.Booking {
	return domain.Booking{
		ID:            doc.ID.Hex(),
		VendorID:      doc.VendorID.Hex(),
		VendorName:    doc.VendorName,
		ListingID:     doc.ListingID.Hex(),
		ListingTitle:  doc.ListingTitle,
		CustomerID:    doc.CustomerID,
		CustomerName:  doc.CustomerName,
		CustomerPhone: doc.CustomerPhone,
		EventDate:     doc.EventDate,
		GuestCount:    doc.GuestCount,
		Amount:        doc.Amount,
		Note:          doc.Note,
		Status:        domain.BookingStatus(doc.Status),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
