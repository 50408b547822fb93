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
)

func (h *Handler) listingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		listings, err := h.listings.List(ctx, vendor.ID)
		if err != nil {
			h.logger.Printf("listing list fetch failed vendor=%s err=%v", vendor.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch listings"})
			return
		}

		items := make([]listingResponse, 0, len(listings))
		for _, listing := range listings {
			items = append(items, buildListingResponse(listing))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) listingCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		defer r.Body.Close()

		var req upsertListingRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}
		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		listing, err := h.listings.Create(ctx, vendor.ID, req.toCommand())
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildListingResponse(*listing))
	}
}

func (h *Handler) listingUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "listing id is malformed"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		defer r.Body.Close()

		var req upsertListingRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}
		if err := req.validate(); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		listing, err := h.listings.Update(ctx, vendor.ID, idParam, req.toCommand())
		if err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				http.NotFound(w, r)
			case errors.Is(err, application.ErrNotOwner):
				common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "the listing belongs to another vendor"})
			default:
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildListingResponse(*listing))
	}
}
