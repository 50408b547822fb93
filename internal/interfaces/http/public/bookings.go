package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
)

type createBookingRequest struct {
	ListingID  string `json:"listingId"`
	EventDate  string `json:"eventDate"`
	GuestCount int    `json:"guestCount,omitempty"`
	Note       string `json:"note,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (req *createBookingRequest) validate() (time.Time, error) {
	req.ListingID = strings.TrimSpace(req.ListingID)
	if req.ListingID == "" {
		return time.Time{}, errors.New("listing id is required")
	}
	if _, err := primitive.ObjectIDFromHex(req.ListingID); err != nil {
		return time.Time{}, errors.New("listing id is malformed")
	}

	eventDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.EventDate))
	if err != nil {
		return time.Time{}, errors.New("event date must look like 2026-11-20")
	}
	if req.GuestCount < 0 {
		return time.Time{}, errors.New("guest count must be >= 0")
	}
	req.Note = strings.TrimSpace(req.Note)
	req.Phone = strings.TrimSpace(req.Phone)
	return eventDate, nil
}

func (h *Handler) bookingCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		defer r.Body.Close()

		var req createBookingRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}

		eventDate, err := req.validate()
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listing, err := h.listingQueries.Detail(ctx, req.ListingID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "listing not found"})
				return
			}
			h.logger.Printf("listing lookup for booking failed id=%q err=%v", req.ListingID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the listing"})
			return
		}
		if !listing.Active {
			common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "the listing is no longer bookable"})
			return
		}

		phone := req.Phone
		if phone == "" {
			phone = user.Phone
		}

		cmd := publicapp.PlaceBookingCommand{
			VendorID:      listing.VendorID,
			VendorName:    listing.VendorName,
			ListingID:     listing.ID,
			ListingTitle:  listing.Title,
			CustomerID:    user.ID,
			CustomerName:  user.Name,
			CustomerPhone: phone,
			EventDate:     eventDate,
			GuestCount:    req.GuestCount,
			Amount:        bookingAmount(listing.Price, listing.PriceUnit, req.GuestCount),
			Note:          req.Note,
		}

		booking, err := h.bookingCommands.Place(ctx, cmd)
		if err != nil {
			h.logger.Printf("booking save failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to place the booking"})
			return
		}

		go h.notifyBookingPlaced(context.Background(), *booking)

		common.WriteJSON(h.logger, w, http.StatusCreated, buildBookingResponse(*booking))
	}
}

// bookingAmount estimates the booking total. Per-plate listings scale with
// the guest count; everything else is quoted as-is.
func bookingAmount(price int, priceUnit string, guestCount int) int {
	if priceUnit == "per_plate" && guestCount > 0 {
		return price * guestCount
	}
	return price
}

func (h *Handler) bookingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		bookings, err := h.bookingQueries.ListByCustomer(ctx, user.ID)
		if err != nil {
			h.logger.Printf("booking list fetch failed user=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch bookings"})
			return
		}

		items := make([]bookingResponse, 0, len(bookings))
		for _, booking := range bookings {
			items = append(items, buildBookingResponse(booking))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) bookingCancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "booking id is malformed"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		booking, err := h.bookingCommands.Cancel(ctx, idParam, user.ID)
		if err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				http.NotFound(w, r)
			case errors.Is(err, publicapp.ErrBookingForbidden):
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "the booking belongs to another customer"})
			case errors.Is(err, publicapp.ErrBookingNotCancellable):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "the booking can no longer be cancelled"})
			default:
				h.logger.Printf("booking cancel failed id=%s err=%v", idParam, err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to cancel the booking"})
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBookingResponse(*booking))
	}
}
