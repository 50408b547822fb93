package partner

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
	"github.com/eventour-app/event-backend/internal/partner/application"
	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

func (h *Handler) bookingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		status := strings.TrimSpace(r.URL.Query().Get("status"))
		switch vendordomain.BookingStatus(status) {
		case "", vendordomain.BookingPending, vendordomain.BookingConfirmed,
			vendordomain.BookingDeclined, vendordomain.BookingCompleted, vendordomain.BookingCancelled:
		default:
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "unknown booking status"})
			return
		}

		bookings, err := h.bookings.List(ctx, vendor.ID, status)
		if err != nil {
			h.logger.Printf("booking list fetch failed vendor=%s err=%v", vendor.ID, err)
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

type bookingActionRequest struct {
	Action string `json:"action"`
}

func (h *Handler) bookingActionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "booking id is malformed"})
			return
		}

		defer r.Body.Close()

		var req bookingActionRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, 1024))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}
		if _, ok := vendordomain.ParseBookingAction(strings.TrimSpace(req.Action)); !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "action must be confirm, decline or complete"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		booking, err := h.bookings.Act(ctx, vendor.ID, idParam, strings.TrimSpace(req.Action))
		if err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				http.NotFound(w, r)
			case errors.Is(err, application.ErrNotOwner):
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "the booking belongs to another vendor"})
			case errors.Is(err, application.ErrInvalidTransition):
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "the booking cannot move to that status"})
			default:
				h.logger.Printf("booking action failed id=%s err=%v", idParam, err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to update the booking"})
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBookingResponse(*booking))
	}
}

func (h *Handler) earningsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		report, err := h.bookings.Earnings(ctx, vendor.ID)
		if err != nil {
			h.logger.Printf("earnings fetch failed vendor=%s err=%v", vendor.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to compute earnings"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildEarningsResponse(*report))
	}
}
