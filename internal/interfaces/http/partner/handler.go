// Package partner serves the vendor dashboard API mounted under /vendor.
// Every route requires an authenticated owner account.
package partner

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/media"
	"github.com/eventour-app/event-backend/internal/partner/application"
	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
)

// Handler wires dashboard HTTP endpoints to vendor-context services.
type Handler struct {
	logger        *log.Logger
	profiles      application.ProfileService
	listings      application.ListingService
	bookings      application.BookingService
	announcements application.AnnouncementService
	reviewQueries publicapp.ReviewQueryService
	media         *media.Store
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	Profiles      application.ProfileService
	Listings      application.ListingService
	Bookings      application.BookingService
	Announcements application.AnnouncementService
	ReviewQueries publicapp.ReviewQueryService
	Media         *media.Store
}

// NewHandler constructs a dashboard handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		profiles:      cfg.Profiles,
		listings:      cfg.Listings,
		bookings:      cfg.Bookings,
		announcements: cfg.Announcements,
		reviewQueries: cfg.ReviewQueries,
		media:         cfg.Media,
	}
}

// Register mounts all dashboard routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/onboard", h.onboardHandler())
		r.Get("/profile", h.profileHandler())
		r.Patch("/profile", h.profileUpdateHandler())
		r.Post("/uploads", h.uploadHandler())
		r.Get("/listings", h.listingListHandler())
		r.Post("/listings", h.listingCreateHandler())
		r.Patch("/listings/{id}", h.listingUpdateHandler())
		r.Get("/bookings", h.bookingListHandler())
		r.Patch("/bookings/{id}", h.bookingActionHandler())
		r.Get("/earnings", h.earningsHandler())
		r.Get("/reviews", h.reviewListHandler())
		r.Get("/announcements", h.announcementListHandler())
		r.Post("/announcements", h.announcementCreateHandler())
	})
}

// requireVendor resolves the vendor profile owned by the authenticated user.
// Routes other than /onboard are meaningless without one.
func (h *Handler) requireVendor(ctx context.Context, w http.ResponseWriter, r *http.Request) (*vendordomain.Vendor, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok {
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
		return nil, false
	}

	vendor, err := h.profiles.ByOwner(ctx, user.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "no vendor profile exists for this account"})
			return nil, false
		}
		h.logger.Printf("vendor profile lookup failed owner=%s err=%v", user.ID, err)
		common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the vendor profile"})
		return nil, false
	}
	return vendor, true
}
