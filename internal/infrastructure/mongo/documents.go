package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorStatsDocument is the stats sub-document embedded in vendors.
type VendorStatsDocument struct {
	ReviewCount    int        `bson:"reviewCount"`
	AvgRating      *float64   `bson:"avgRating,omitempty"`
	BookingCount   int        `bson:"bookingCount,omitempty"`
	LastReviewedAt *time.Time `bson:"lastReviewedAt,omitempty"`
}

// VendorDocument is the MongoDB schema for a vendor profile.
type VendorDocument struct {
	ID         primitive.ObjectID   `bson:"_id"`
	OwnerID    string               `bson:"ownerId"`
	Name       string               `bson:"name"`
	Category   string               `bson:"category"`
	City       string               `bson:"city,omitempty"`
	Area       string               `bson:"area,omitempty"`
	About      string               `bson:"about,omitempty"`
	Phone      string               `bson:"phone,omitempty"`
	PriceRange string               `bson:"priceRange,omitempty"`
	Tags       []string             `bson:"tags,omitempty"`
	LogoURL    string               `bson:"logoURL,omitempty"`
	Photos     []PhotoDocument      `bson:"photos,omitempty"`
	Social     VendorSocialDocument `bson:"social,omitempty"`
	Verified   bool                 `bson:"verified,omitempty"`
	Stats      VendorStatsDocument  `bson:"stats"`
	CreatedAt  *time.Time           `bson:"createdAt,omitempty"`
	UpdatedAt  *time.Time           `bson:"updatedAt,omitempty"`
}

// VendorSocialDocument holds outbound links embedded in a vendor document.
type VendorSocialDocument struct {
	Instagram string `bson:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty"`
	YouTube   string `bson:"youtube,omitempty"`
	Website   string `bson:"website,omitempty"`
}

// ListingDocument is the MongoDB schema for a bookable service listing.
type ListingDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	VendorID    primitive.ObjectID `bson:"vendorId"`
	VendorName  string             `bson:"vendorName,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       int                `bson:"price"`
	PriceUnit   string             `bson:"priceUnit"`
	Capacity    *int               `bson:"capacity,omitempty"`
	Photos      []PhotoDocument    `bson:"photos,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// BookingDocument is the MongoDB schema for a customer booking.
type BookingDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	VendorID      primitive.ObjectID `bson:"vendorId"`
	VendorName    string             `bson:"vendorName,omitempty"`
	ListingID     primitive.ObjectID `bson:"listingId"`
	ListingTitle  string             `bson:"listingTitle,omitempty"`
	CustomerID    string             `bson:"customerId"`
	CustomerName  string             `bson:"customerName,omitempty"`
	CustomerPhone string             `bson:"customerPhone,omitempty"`
	EventDate     time.Time          `bson:"eventDate"`
	GuestCount    int                `bson:"guestCount,omitempty"`
	Amount        int                `bson:"amount"`
	Note          string             `bson:"note,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// ReviewDocument is the MongoDB schema for a customer review.
type ReviewDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	VendorID     primitive.ObjectID `bson:"vendorId"`
	VendorName   string             `bson:"vendorName"`
	Category     string             `bson:"category,omitempty"`
	City         string             `bson:"city,omitempty"`
	AuthorID     string             `bson:"authorId,omitempty"`
	AuthorName   string             `bson:"authorName,omitempty"`
	EventMonth   string             `bson:"eventMonth,omitempty"`
	Rating       float64            `bson:"rating"`
	Comment      string             `bson:"comment"`
	Photos       []PhotoDocument    `bson:"photos,omitempty"`
	HelpfulCount int                `bson:"helpfulCount,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// PhotoDocument stores the metadata of one normalized, stored image.
type PhotoDocument struct {
	ID          string    `bson:"id"`
	StoredPath  string    `bson:"storedPath"`
	PublicURL   string    `bson:"publicURL"`
	ContentType string    `bson:"contentType"`
	ByteSize    int       `bson:"byteSize,omitempty"`
	Width       int       `bson:"width,omitempty"`
	Height      int       `bson:"height,omitempty"`
	UploadedAt  time.Time `bson:"uploadedAt"`
}

// AnnouncementDocument is the MongoDB schema for a vendor announcement.
type AnnouncementDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	VendorID  primitive.ObjectID `bson:"vendorId"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// OTPChallengeDocument stores one pending phone verification.
type OTPChallengeDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Phone     string             `bson:"phone"`
	CodeHash  string             `bson:"codeHash"`
	Attempts  int                `bson:"attempts"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// UserDocument stores an authenticated account keyed by phone.
type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Phone     string             `bson:"phone"`
	Name      string             `bson:"name,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
