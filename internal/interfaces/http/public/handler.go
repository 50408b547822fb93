package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/otp"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger               *log.Logger
	vendorQueries        publicapp.VendorQueryService
	listingQueries       publicapp.ListingQueryService
	reviewQueries        publicapp.ReviewQueryService
	reviewCommands       publicapp.ReviewCommandService
	bookingCommands      publicapp.BookingCommandService
	bookingQueries       publicapp.BookingQueryService
	otpService           *otp.Service
	tokens               common.TokenIssuer
	vendors              *mongo.Collection
	reviews              *mongo.Collection
	failedNotifications  *mongo.Collection
	location             *time.Location
	helpfulCookieSecret  []byte
	helpfulCookieSecure  bool
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger               *log.Logger
	VendorQueries        publicapp.VendorQueryService
	ListingQueries       publicapp.ListingQueryService
	ReviewQueries        publicapp.ReviewQueryService
	ReviewCommands       publicapp.ReviewCommandService
	BookingCommands      publicapp.BookingCommandService
	BookingQueries       publicapp.BookingQueryService
	OTPService           *otp.Service
	Tokens               common.TokenIssuer
	Vendors              *mongo.Collection
	Reviews              *mongo.Collection
	FailedNotifications  *mongo.Collection
	Location             *time.Location
	HelpfulCookieSecret  []byte
	HelpfulCookieSecure  bool
	HTTPClient           *http.Client
	MessengerEndpoint    string
	MessengerDestination string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:               cfg.Logger,
		vendorQueries:        cfg.VendorQueries,
		listingQueries:       cfg.ListingQueries,
		reviewQueries:        cfg.ReviewQueries,
		reviewCommands:       cfg.ReviewCommands,
		bookingCommands:      cfg.BookingCommands,
		bookingQueries:       cfg.BookingQueries,
		otpService:           cfg.OTPService,
		tokens:               cfg.Tokens,
		vendors:              cfg.Vendors,
		reviews:              cfg.Reviews,
		failedNotifications:  cfg.FailedNotifications,
		location:             cfg.Location,
		helpfulCookieSecret:  cfg.HelpfulCookieSecret,
		helpfulCookieSecure:  cfg.HelpfulCookieSecure,
		httpClient:           cfg.HTTPClient,
		messengerEndpoint:    cfg.MessengerEndpoint,
		messengerDestination: cfg.MessengerDestination,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/vendors", h.vendorListHandler())
	r.Get("/vendors/{id}", h.vendorDetailHandler())
	r.Get("/vendors/{id}/listings", h.vendorListingsHandler())
	r.Get("/vendors/{id}/reviews", h.vendorReviewsHandler())
	r.Get("/listings/{id}", h.listingDetailHandler())
	r.Get("/reviews", h.reviewListHandler())
	r.Get("/reviews/{id}", h.reviewDetailHandler())
	r.Post("/reviews/{id}/helpful", h.reviewHelpfulToggleHandler())
	r.With(authMiddleware).Post("/vendors/{id}/reviews", h.reviewCreateHandler())
	r.Post("/auth/otp/request", h.otpRequestHandler())
	r.Post("/auth/otp/verify", h.otpVerifyHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
	r.With(authMiddleware).Post("/bookings", h.bookingCreateHandler())
	r.With(authMiddleware).Get("/bookings", h.bookingListHandler())
	r.With(authMiddleware).Post("/bookings/{id}/cancel", h.bookingCancelHandler())
}
