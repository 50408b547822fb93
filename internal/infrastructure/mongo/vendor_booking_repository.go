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

// VendorBookingRepository is the Mongo implementation of the vendor-context
// booking repository, including the monthly earnings aggregation.
type VendorBookingRepository struct {
	collection *mongo.Collection
}

// NewVendorBookingRepository binds the bookings collection.
func NewVendorBookingRepository(db *mongo.Database, collectionName string) *VendorBookingRepository {
	return &VendorBookingRepository{collection: db.Collection(collectionName)}
}

// FindByVendor returns the vendor's bookings, optionally narrowed to a status,
// newest first.
func (r *VendorBookingRepository) FindByVendor(ctx context.Context, vendorID string, status string) ([]vendordomain.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendorID))
	if err != nil {
		return nil, err
	}

	mongoFilter := bson.M{"vendorId": objectID}
	if status != "" {
		mongoFilter["status"] = strings.TrimSpace(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]vendordomain.Booking, 0)
	for cursor.Next(ctx) {
		var doc BookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, mapVendorBooking(doc))
	}
	return bookings, cursor.Err()
}

// FindByID returns a single booking by its identifier.
func (r *VendorBookingRepository) FindByID(ctx context.Context, id string) (*vendordomain.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc BookingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	booking := mapVendorBooking(doc)
	return &booking, nil
}

// UpdateStatus moves a booking to the given status and returns the new state.
func (r *VendorBookingRepository) UpdateStatus(ctx context.Context, id string, status vendordomain.BookingStatus) (*vendordomain.Booking, error) {
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
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	booking := mapVendorBooking(doc)
	return &booking, nil
}

// Earnings aggregates confirmed and completed bookings per event month.
func (r *VendorBookingRepository) Earnings(ctx context.Context, vendorID string) (*vendordomain.EarningsReport, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(vendorID))
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"vendorId": objectID,
			"status": bson.M{"$in": bson.A{
				string(vendordomain.BookingConfirmed),
				string(vendordomain.BookingCompleted),
			}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$eventDate"}},
			"amount":       bson.M{"$sum": "$amount"},
			"bookingCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	report := &vendordomain.EarningsReport{Months: make([]vendordomain.MonthlyEarnings, 0)}
	for cursor.Next(ctx) {
		var row struct {
			Month        string `bson:"_id"`
			Amount       int    `bson:"amount"`
			BookingCount int    `bson:"bookingCount"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		report.Months = append(report.Months, vendordomain.MonthlyEarnings{
			Month:        row.Month,
			Amount:       row.Amount,
			BookingCount: row.BookingCount,
		})
		report.TotalAmount += row.Amount
		report.BookingCount += row.BookingCount
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func mapVendorBooking(doc BookingDocument) vendordomain.Booking {
	return vendordomain.Booking{
		ID:            doc.ID.Hex(),
		VendorID:      doc.VendorID.Hex(),
		ListingID:     doc.ListingID.Hex(),
		ListingTitle:  doc.ListingTitle,
		CustomerID:    doc.CustomerID,
		CustomerName:  doc.CustomerName,
		CustomerPhone: doc.CustomerPhone,
		EventDate:     doc.EventDate,
		GuestCount:    doc.GuestCount,
		Amount:        doc.Amount,
		Note:          doc.Note,
		Status:        vendordomain.BookingStatus(doc.Status),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
