// Command seed fills a MongoDB database with sample vendors, listings,
// bookings and reviews so the API can be exercised locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	envFile          string
	vendorCount      int
	reviewCount      int
	bookingCount     int
	helpfulVoteCount int
	dropCollections  bool
	randomSeed       int64
}

type collections struct {
	vendors             string
	listings            string
	bookings            string
	reviews             string
	helpfulVotes        string
	announcements       string
	users               string
	failedNotifications string
}

type vendorStatsDocument struct {
	ReviewCount    int        `bson:"reviewCount"`
	AvgRating      *float64   `bson:"avgRating,omitempty"`
	BookingCount   int        `bson:"bookingCount,omitempty"`
	LastReviewedAt *time.Time `bson:"lastReviewedAt,omitempty"`
}

type vendorDocument struct {
	ID         primitive.ObjectID  `bson:"_id"`
	OwnerID    string              `bson:"ownerId"`
	Name       string              `bson:"name"`
	Category   string              `bson:"category"`
	City       string              `bson:"city"`
	Area       string              `bson:"area,omitempty"`
	About      string              `bson:"about,omitempty"`
	Phone      string              `bson:"phone,omitempty"`
	PriceRange string              `bson:"priceRange,omitempty"`
	Tags       []string            `bson:"tags,omitempty"`
	LogoURL    string              `bson:"logoURL,omitempty"`
	Photos     []photoDocument     `bson:"photos,omitempty"`
	Social     map[string]string   `bson:"social,omitempty"`
	Verified   bool                `bson:"verified"`
	Stats      vendorStatsDocument `bson:"stats"`
	CreatedAt  time.Time           `bson:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt"`
}

type listingDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	VendorID    primitive.ObjectID `bson:"vendorId"`
	VendorName  string             `bson:"vendorName"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       int                `bson:"price"`
	PriceUnit   string             `bson:"priceUnit"`
	Capacity    *int               `bson:"capacity,omitempty"`
	Photos      []photoDocument    `bson:"photos,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type bookingDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	VendorID      primitive.ObjectID `bson:"vendorId"`
	VendorName    string             `bson:"vendorName"`
	ListingID     primitive.ObjectID `bson:"listingId"`
	ListingTitle  string             `bson:"listingTitle"`
	CustomerID    string             `bson:"customerId"`
	CustomerName  string             `bson:"customerName"`
	CustomerPhone string             `bson:"customerPhone,omitempty"`
	EventDate     time.Time          `bson:"eventDate"`
	GuestCount    int                `bson:"guestCount,omitempty"`
	Amount        int                `bson:"amount"`
	Note          string             `bson:"note,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type reviewDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	VendorID     primitive.ObjectID `bson:"vendorId"`
	VendorName   string             `bson:"vendorName"`
	Category     string             `bson:"category"`
	City         string             `bson:"city"`
	AuthorID     string             `bson:"authorId"`
	AuthorName   string             `bson:"authorName"`
	EventMonth   string             `bson:"eventMonth,omitempty"`
	Rating       float64            `bson:"rating"`
	Comment      string             `bson:"comment"`
	Photos       []photoDocument    `bson:"photos,omitempty"`
	HelpfulCount int                `bson:"helpfulCount"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type photoDocument struct {
	ID          string    `bson:"id"`
	StoredPath  string    `bson:"storedPath"`
	PublicURL   string    `bson:"publicURL"`
	ContentType string    `bson:"contentType"`
	UploadedAt  time.Time `bson:"uploadedAt"`
}

type helpfulVoteDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	ReviewID  primitive.ObjectID `bson:"reviewId"`
	VoterID   string             `bson:"voterId"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Phone     string             `bson:"phone"`
	Name      string             `bson:"name,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type statsAccumulator struct {
	reviewCount  int
	ratingSum    float64
	bookingCount int
	lastReview   time.Time
}

func main() {
	opts := parseFlags()

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			log.Fatalf("failed to load env file %s: %v", opts.envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := collections{
		vendors:             envOrDefault("VENDOR_COLLECTION", "vendors"),
		listings:            envOrDefault("LISTING_COLLECTION", "listings"),
		bookings:            envOrDefault("BOOKING_COLLECTION", "bookings"),
		reviews:             envOrDefault("REVIEW_COLLECTION", "reviews"),
		helpfulVotes:        envOrDefault("HELPFUL_VOTE_COLLECTION", "review_helpful_votes"),
		announcements:       envOrDefault("ANNOUNCEMENT_COLLECTION", "announcements"),
		users:               envOrDefault("USER_COLLECTION", "users"),
		failedNotifications: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "eventour")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cfg)
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	userDocs := generateUsers(rng, 12)
	if err := insertMany(ctx, db.Collection(cfg.users), toAnySlice(userDocs)); err != nil {
		log.Fatalf("failed to insert users: %v", err)
	}

	vendorDocs := generateVendors(rng, opts.vendorCount)
	if err := insertMany(ctx, db.Collection(cfg.vendors), toAnySlice(vendorDocs)); err != nil {
		log.Fatalf("failed to insert vendors: %v", err)
	}

	listingDocs := generateListings(rng, vendorDocs)
	if err := insertMany(ctx, db.Collection(cfg.listings), toAnySlice(listingDocs)); err != nil {
		log.Fatalf("failed to insert listings: %v", err)
	}

	stats := make(map[primitive.ObjectID]*statsAccumulator, len(vendorDocs))

	bookingDocs := generateBookings(rng, listingDocs, userDocs, opts.bookingCount, stats)
	if err := insertMany(ctx, db.Collection(cfg.bookings), toAnySlice(bookingDocs)); err != nil {
		log.Fatalf("failed to insert bookings: %v", err)
	}

	reviewDocs := generateReviews(rng, vendorDocs, userDocs, opts.reviewCount, stats)
	if err := insertMany(ctx, db.Collection(cfg.reviews), toAnySlice(reviewDocs)); err != nil {
		log.Fatalf("failed to insert reviews: %v", err)
	}

	if err := applyStats(ctx, db.Collection(cfg.vendors), stats); err != nil {
		log.Fatalf("failed to update vendor stats: %v", err)
	}

	helpfulDocs := generateHelpfulVotes(rng, reviewDocs, opts.helpfulVoteCount)
	if len(helpfulDocs) > 0 {
		if err := insertMany(ctx, db.Collection(cfg.helpfulVotes), toAnySlice(helpfulDocs)); err != nil {
			log.Fatalf("failed to insert helpful votes: %v", err)
		}
	}

	log.Printf("seed done: users=%d vendors=%d listings=%d bookings=%d reviews=%d helpfulVotes=%d",
		len(userDocs), len(vendorDocs), len(listingDocs), len(bookingDocs), len(reviewDocs), len(helpfulDocs))
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envFile, "env-file", "", "optional .env file to load before reading config")
	flag.IntVar(&opts.vendorCount, "vendors", 12, "number of vendors to generate")
	flag.IntVar(&opts.reviewCount, "reviews", 80, "number of published reviews to generate")
	flag.IntVar(&opts.bookingCount, "bookings", 40, "number of bookings to generate")
	flag.IntVar(&opts.helpfulVoteCount, "helpful", 30, "number of helpful votes to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before inserting")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "random seed for reproducible runs")
	flag.Parse()

	if opts.vendorCount <= 0 {
		log.Fatal("vendors must be at least 1")
	}
	if opts.reviewCount < opts.vendorCount {
		opts.reviewCount = opts.vendorCount
	}
	if opts.bookingCount < 0 {
		opts.bookingCount = 0
	}
	if opts.helpfulVoteCount < 0 {
		opts.helpfulVoteCount = 0
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{
		cfg.vendors, cfg.listings, cfg.bookings, cfg.reviews,
		cfg.helpfulVotes, cfg.announcements, cfg.users, cfg.failedNotifications,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop also errors when the collection does not exist yet.
			log.Printf("WARN: failed to drop collection %s: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	vendorIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("uniq_vendor_owner").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "city", Value: 1}},
			Options: options.Index().SetName("idx_vendor_category_city"),
		},
		{
			Keys:    bson.D{{Key: "stats.avgRating", Value: -1}},
			Options: options.Index().SetName("idx_vendor_avgRating"),
		},
	}
	if _, err := db.Collection(cfg.vendors).Indexes().CreateMany(ctx, vendorIndexes); err != nil {
		return err
	}

	listingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "vendorId", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("idx_listing_vendor_active"),
		},
	}
	if _, err := db.Collection(cfg.listings).Indexes().CreateMany(ctx, listingIndexes); err != nil {
		return err
	}

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "vendorId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_booking_vendor_status"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_booking_customer_created"),
		},
	}
	if _, err := db.Collection(cfg.bookings).Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return err
	}

	reviewIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "vendorId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_review_vendor_created"),
		},
		{
			Keys:    bson.D{{Key: "rating", Value: -1}},
			Options: options.Index().SetName("idx_review_rating"),
		},
	}
	if _, err := db.Collection(cfg.reviews).Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.helpfulVotes).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reviewId", Value: 1}, {Key: "voterId", Value: 1}},
		Options: options.Index().SetName("uniq_helpful_vote").SetUnique(true),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("uniq_user_phone").SetUnique(true),
	}); err != nil {
		return err
	}

	return nil
}

func generateUsers(rng *rand.Rand, count int) []userDocument {
	now := time.Now().UTC()
	docs := make([]userDocument, 0, count)
	for i := 0; i < count; i++ {
		created := now.Add(-time.Duration(rng.Intn(365)) * 24 * time.Hour)
		docs = append(docs, userDocument{
			ID:        primitive.NewObjectID(),
			Phone:     fmt.Sprintf("+9198%08d", rng.Intn(100000000)),
			Name:      customerNames[i%len(customerNames)],
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return docs
}

func generateVendors(rng *rand.Rand, count int) []vendorDocument {
	now := time.Now().UTC()
	docs := make([]vendorDocument, 0, count)

	for i := 0; i < count; i++ {
		category := categories[i%len(categories)]
		name := vendorNamesFor(category)[rng.Intn(len(vendorNamesFor(category)))]
		city := cities[rng.Intn(len(cities))]
		area := areaForCity(city, rng)
		tags := pickUnique(rng, tagOptions, 1+rng.Intn(3))

		created := now.Add(-time.Duration(rng.Intn(365*2)) * 24 * time.Hour)
		docs = append(docs, vendorDocument{
			ID:         primitive.NewObjectID(),
			OwnerID:    primitive.NewObjectID().Hex(),
			Name:       fmt.Sprintf("%s %d", name, i+1),
			Category:   category,
			City:       city,
			Area:       area,
			About:      aboutFragments[rng.Intn(len(aboutFragments))],
			Phone:      fmt.Sprintf("+9197%08d", rng.Intn(100000000)),
			PriceRange: priceRanges[rng.Intn(len(priceRanges))],
			Tags:       tags,
			LogoURL:    placeholderImage(rng, name, "logo"),
			Photos:     generatePhotos(rng, name, 3, created),
			Social: map[string]string{
				"instagram": fmt.Sprintf("https://instagram.com/%s", slugify(name, city)),
			},
			Verified: rng.Intn(3) != 0,
			Stats: vendorStatsDocument{
				ReviewCount: 0,
			},
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return docs
}

func generateListings(rng *rand.Rand, vendors []vendorDocument) []listingDocument {
	now := time.Now().UTC()
	var docs []listingDocument
	for _, vendor := range vendors {
		count := 1 + rng.Intn(3)
		for i := 0; i < count; i++ {
			template := listingTemplates[vendor.Category]
			if len(template) == 0 {
				template = listingTemplates["decorator"]
			}
			title := template[rng.Intn(len(template))]

			priceUnit := "per_event"
			price := 20000 + rng.Intn(200000)
			var capacity *int
			switch vendor.Category {
			case "caterer":
				priceUnit = "per_plate"
				price = 400 + rng.Intn(1600)
			case "banquet_hall":
				cap := 100 + rng.Intn(900)
				capacity = &cap
			case "photographer", "makeup_artist":
				if rng.Intn(2) == 0 {
					priceUnit = "per_day"
				}
			}

			created := now.Add(-time.Duration(rng.Intn(300)) * 24 * time.Hour)
			docs = append(docs, listingDocument{
				ID:          primitive.NewObjectID(),
				VendorID:    vendor.ID,
				VendorName:  vendor.Name,
				Title:       title,
				Description: listingDescriptions[rng.Intn(len(listingDescriptions))],
				Price:       price,
				PriceUnit:   priceUnit,
				Capacity:    capacity,
				Photos:      generatePhotos(rng, title, 2, created),
				Tags:        vendor.Tags,
				Active:      rng.Intn(5) != 0,
				CreatedAt:   created,
				UpdatedAt:   created,
			})
		}
	}
	return docs
}

func generateBookings(rng *rand.Rand, listings []listingDocument, users []userDocument, count int, stats map[primitive.ObjectID]*statsAccumulator) []bookingDocument {
	if count <= 0 || len(listings) == 0 || len(users) == 0 {
		return nil
	}
	now := time.Now().UTC()
	statuses := []string{"pending", "confirmed", "declined", "completed", "cancelled"}
	docs := make([]bookingDocument, 0, count)
	for i := 0; i < count; i++ {
		listing := listings[rng.Intn(len(listings))]
		user := users[rng.Intn(len(users))]
		guests := 0
		amount := listing.Price
		if listing.PriceUnit == "per_plate" {
			guests = 50 + rng.Intn(450)
			amount = listing.Price * guests
		}
		created := now.Add(-time.Duration(rng.Intn(90*24)) * time.Hour)
		docs = append(docs, bookingDocument{
			ID:            primitive.NewObjectID(),
			VendorID:      listing.VendorID,
			VendorName:    listing.VendorName,
			ListingID:     listing.ID,
			ListingTitle:  listing.Title,
			CustomerID:    user.ID.Hex(),
			CustomerName:  user.Name,
			CustomerPhone: user.Phone,
			EventDate:     now.Add(time.Duration(rng.Intn(180*24)) * time.Hour).Truncate(24 * time.Hour),
			GuestCount:    guests,
			Amount:        amount,
			Note:          bookingNotes[rng.Intn(len(bookingNotes))],
			Status:        statuses[rng.Intn(len(statuses))],
			CreatedAt:     created,
			UpdatedAt:     created,
		})

		acc := stats[listing.VendorID]
		if acc == nil {
			acc = &statsAccumulator{}
			stats[listing.VendorID] = acc
		}
		acc.bookingCount++
	}
	return docs
}

func generateReviews(rng *rand.Rand, vendors []vendorDocument, users []userDocument, total int, stats map[primitive.ObjectID]*statsAccumulator) []reviewDocument {
	if total < len(vendors) {
		total = len(vendors)
	}
	counts := distribute(total, len(vendors), 1, 15, rng)
	now := time.Now().UTC()
	var docs []reviewDocument

	for idx, vendor := range vendors {
		for j := 0; j < counts[idx]; j++ {
			user := users[rng.Intn(len(users))]
			rating := float64(5+rng.Intn(6)) / 2 // 2.5 .. 5.0 in half steps
			created := now.Add(-time.Duration(rng.Intn(180*24)) * time.Hour)
			docs = append(docs, reviewDocument{
				ID:           primitive.NewObjectID(),
				VendorID:     vendor.ID,
				VendorName:   vendor.Name,
				Category:     vendor.Category,
				City:         vendor.City,
				AuthorID:     user.ID.Hex(),
				AuthorName:   user.Name,
				EventMonth:   created.AddDate(0, -1, 0).Format("2006-01"),
				Rating:       rating,
				Comment:      reviewComments[rng.Intn(len(reviewComments))],
				Photos:       generatePhotos(rng, vendor.Name, rng.Intn(3), created),
				HelpfulCount: 0,
				CreatedAt:    created,
				UpdatedAt:    created,
			})

			acc := stats[vendor.ID]
			if acc == nil {
				acc = &statsAccumulator{}
				stats[vendor.ID] = acc
			}
			acc.reviewCount++
			acc.ratingSum += rating
			if created.After(acc.lastReview) {
				acc.lastReview = created
			}
		}
	}
	return docs
}

func generateHelpfulVotes(rng *rand.Rand, reviews []reviewDocument, desired int) []helpfulVoteDocument {
	if desired <= 0 || len(reviews) == 0 {
		return nil
	}
	type key struct {
		Review primitive.ObjectID
		Voter  string
	}
	used := make(map[key]struct{})
	var docs []helpfulVoteDocument
	for len(docs) < desired {
		review := reviews[rng.Intn(len(reviews))]
		voter := primitive.NewObjectID().Hex()
		k := key{Review: review.ID, Voter: voter}
		if _, exists := used[k]; exists {
			continue
		}
		used[k] = struct{}{}
		docs = append(docs, helpfulVoteDocument{
			ID:        primitive.NewObjectID(),
			ReviewID:  review.ID,
			VoterID:   voter,
			CreatedAt: time.Now().Add(-time.Duration(rng.Intn(240)) * time.Hour),
		})
	}
	return docs
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func applyStats(ctx context.Context, col *mongo.Collection, stats map[primitive.ObjectID]*statsAccumulator) error {
	now := time.Now().UTC()
	for id, agg := range stats {
		update := bson.M{
			"stats.bookingCount": agg.bookingCount,
			"updatedAt":          now,
		}
		if agg.reviewCount > 0 {
			update["stats.reviewCount"] = agg.reviewCount
			update["stats.avgRating"] = round(agg.ratingSum/float64(agg.reviewCount), 1)
			update["stats.lastReviewedAt"] = agg.lastReview
		}
		if _, err := col.UpdateByID(ctx, id, bson.M{"$set": update}); err != nil {
			return err
		}
	}
	return nil
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func distribute(total, buckets, minPerBucket, maxPerBucket int, rng *rand.Rand) []int {
	if buckets <= 0 {
		return nil
	}
	if maxPerBucket < minPerBucket {
		maxPerBucket = minPerBucket
	}
	counts := make([]int, buckets)
	for i := range counts {
		counts[i] = minPerBucket
	}
	remaining := total - minPerBucket*buckets
	if remaining < 0 {
		remaining = 0
	}
	for remaining > 0 {
		i := rng.Intn(buckets)
		if counts[i] >= maxPerBucket {
			continue
		}
		counts[i]++
		remaining--
	}
	return counts
}

func pickUnique(rng *rand.Rand, source []string, count int) []string {
	if count >= len(source) {
		cp := make([]string, len(source))
		copy(cp, source)
		return cp
	}
	seen := make(map[int]struct{}, count)
	result := make([]string, 0, count)
	for len(result) < count {
		idx := rng.Intn(len(source))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, source[idx])
	}
	return result
}

func vendorNamesFor(category string) []string {
	if names, ok := vendorNames[category]; ok {
		return names
	}
	return vendorNames["decorator"]
}

func areaForCity(city string, rng *rand.Rand) string {
	if areas, ok := areaCandidates[city]; ok && len(areas) > 0 {
		return areas[rng.Intn(len(areas))]
	}
	return ""
}

func placeholderImage(rng *rand.Rand, name, label string) string {
	bg := colorCodes[rng.Intn(len(colorCodes))]
	text := url.QueryEscape(fmt.Sprintf("%s %s", name, label))
	return fmt.Sprintf("https://dummyjson.com/image/400x400/%s/ffffff/?text=%s", bg, text)
}

func generatePhotos(rng *rand.Rand, name string, max int, uploaded time.Time) []photoDocument {
	if max <= 0 {
		return nil
	}
	count := 1 + rng.Intn(max)
	photos := make([]photoDocument, 0, count)
	for i := 0; i < count; i++ {
		id := primitive.NewObjectID().Hex()
		photos = append(photos, photoDocument{
			ID:          id,
			StoredPath:  fmt.Sprintf("servicePhoto/%s.jpg", id),
			PublicURL:   placeholderImage(rng, name, fmt.Sprintf("photo %d", i+1)),
			ContentType: "image/jpeg",
			UploadedAt:  uploaded,
		})
	}
	return photos
}

func round(val float64, precision int) float64 {
	mul := math.Pow(10, float64(precision))
	return math.Round(val*mul) / mul
}

func slugify(parts ...string) string {
	builder := strings.Builder{}
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				builder.WriteRune(r)
			} else if unicode.IsSpace(r) || r == '-' || r == '_' {
				builder.WriteRune('-')
			}
		}
	}
	out := strings.Trim(builder.String(), "-")
	if out == "" {
		return fmt.Sprintf("vendor-%d", time.Now().UnixNano())
	}
	return out
}

var (
	categories = []string{
		"banquet_hall", "caterer", "photographer", "card_designer",
		"priest", "decorator", "makeup_artist", "music",
	}

	vendorNames = map[string][]string{
		"banquet_hall":  {"Grand Orchid Banquets", "Royal Palms Convention", "Lotus Garden Lawns"},
		"caterer":       {"Spice Route Caterers", "Annapurna Catering Co", "Saffron Feast"},
		"photographer":  {"Candid Frames Studio", "Golden Hour Films", "Shutter Stories"},
		"card_designer": {"Inked Invites", "Paper Petals Design", "Mehfil Cards"},
		"priest":        {"Vedic Rituals Services", "Shubh Muhurat Pandits"},
		"decorator":     {"Marigold Decor", "Dream Stage Events", "Floral Canopy"},
		"makeup_artist": {"Blush and Glow Studio", "Bridal Muse Makeup"},
		"music":         {"Baraat Beats", "Sangeet Nights Collective", "DJ Dhamaka"},
	}

	cities = []string{
		"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai", "Pune", "Jaipur", "Kolkata",
	}

	areaCandidates = map[string][]string{
		"Mumbai":    {"Andheri", "Bandra", "Juhu", "Powai"},
		"Delhi":     {"Chattarpur", "Dwarka", "Rohini"},
		"Bengaluru": {"Whitefield", "Indiranagar", "Jayanagar"},
		"Jaipur":    {"Malviya Nagar", "Vaishali Nagar"},
		"Pune":      {"Koregaon Park", "Baner"},
	}

	tagOptions = []string{
		"veg_only", "outdoor", "ac_hall", "home_service", "budget_friendly", "premium", "decor_included",
	}

	priceRanges = []string{"$", "$$", "$$$"}

	aboutFragments = []string{
		"A decade of weddings across the city, from intimate ceremonies to thousand-guest receptions.",
		"Family-run team focused on traditional ceremonies with a modern presentation.",
		"End-to-end planning support with transparent pricing and no hidden charges.",
		"Award-winning crew known for quick turnarounds and generous customization.",
	}

	listingTemplates = map[string][]string{
		"banquet_hall":  {"Grand Ballroom Package", "Lawn and Hall Combo", "Intimate Hall Evening Slot"},
		"caterer":       {"Royal Veg Thali Menu", "Multi-Cuisine Buffet", "Live Counter Premium Menu"},
		"photographer":  {"Wedding Day Candid Package", "Pre-Wedding Shoot", "Full Event Film and Album"},
		"card_designer": {"Letterpress Invite Suite", "Digital Invite Bundle", "Boxed Invitation Set"},
		"priest":        {"Full Wedding Ceremony", "Engagement and Haldi Rituals", "Griha Pravesh Ceremony"},
		"decorator":     {"Floral Mandap Setup", "Reception Stage Decor", "Haldi Backyard Theme"},
		"makeup_artist": {"Bridal HD Makeup", "Engagement Party Makeup", "Family Package"},
		"music":         {"Sangeet Night DJ Set", "Live Band Evening", "Baraat Dhol Troupe"},
	}

	listingDescriptions = []string{
		"Includes setup, on-site coordination and teardown. Customization available on request.",
		"Best suited for evening functions. Advance booking of two weeks recommended.",
		"Price covers a standard crew; larger events are quoted after a call.",
	}

	bookingNotes = []string{
		"", "Need the setup ready by 4 PM.", "Guest count may go up slightly.",
		"Please call before the event to confirm the menu.",
	}

	reviewComments = []string{
		"They handled our reception beautifully, the coordination was flawless and guests kept complimenting the arrangements.",
		"Good value for the price. A couple of small delays during setup but the team recovered quickly.",
		"Extremely professional from the first call to the event day. Would book again for the next family function.",
		"The final result looked better than the reference photos we shared. Communication could be a bit faster.",
		"Average experience. The work itself was fine but we had to follow up repeatedly for the final deliverables.",
	}

	customerNames = []string{
		"Ananya Sharma", "Rahul Verma", "Priya Iyer", "Arjun Mehta", "Sneha Kulkarni",
		"Vikram Singh", "Divya Nair", "Karan Kapoor", "Meera Joshi", "Aditya Rao",
		"Ishita Banerjee", "Rohan Desai",
	}

	colorCodes = []string{"7c3aed", "db2777", "ea580c", "16a34a", "2563eb", "ca8a04"}
)
