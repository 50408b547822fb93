package public

import (
	"context"
	"encoding/json"
	"errors"
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

// reviewListHandler serves the public review feed with optional
// category/city/keyword filters.
func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.ReviewFilter{
			Category: common.CanonicalCategoryCode(query.Get("category")),
			City:     strings.TrimSpace(query.Get("city")),
			Keyword:  strings.TrimSpace(query.Get("keyword")),
		}

		if vendorID := strings.TrimSpace(query.Get("vendorId")); vendorID != "" {
			if _, err := primitive.ObjectIDFromHex(vendorID); err != nil {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is malformed"})
				return
			}
			filter.VendorID = vendorID
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)

		reviews, err := h.reviewQueries.List(ctx, filter, publicapp.Paging{
			Page:  page,
			Limit: limit,
			Sort:  strings.TrimSpace(query.Get("sort")),
		})
		if err != nil {
			h.logger.Printf("review list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch reviews"})
			return
		}

		total := len(reviews)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]reviewSummaryResponse, 0, end-start)
		for _, review := range reviews[start:end] {
			items = append(items, buildReviewSummaryFromDomain(review))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reviewListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) reviewDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "review id is missing"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "review id is malformed"})
			return
		}

		review, err := h.reviewQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				http.NotFound(w, r)
				return
			}
			h.logger.Printf("review detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch the review"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewDetailFromDomain(*review))
	}
}

func (h *Handler) reviewHelpfulToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "review id is missing"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "review id is malformed"})
			return
		}

		payload := struct {
			Helpful *bool `json:"helpful"`
		}{}
		desired := true
		if r.Body != nil {
			defer r.Body.Close()
			decoder := json.NewDecoder(io.LimitReader(r.Body, 1024))
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&payload); err != nil && err != io.EOF {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "request body is malformed"})
				return
			}
		}
		if payload.Helpful != nil {
			desired = *payload.Helpful
		}

		voterID, err := h.ensureHelpfulVoterID(w, r)
		if err != nil {
			h.logger.Printf("helpful voter cookie error: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to process the helpful vote"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		count, err := h.reviewCommands.ToggleHelpful(ctx, idParam, voterID, desired)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				http.NotFound(w, r)
				return
			}
			h.logger.Printf("helpful toggle failed: review=%s voter=%s err=%v", idParam, voterID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to update the helpful count"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"helpfulCount": count,
			"helpful":      desired,
		})
	}
}
