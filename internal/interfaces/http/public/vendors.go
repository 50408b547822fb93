package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
)

func (h *Handler) vendorListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		categoryFilter := common.CanonicalCategoryCode(query.Get("category"))
		cityFilter := strings.TrimSpace(query.Get("city"))
		keyword := strings.TrimSpace(query.Get("keyword"))
		sortKey := strings.TrimSpace(query.Get("sort"))

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)
		if limit <= 0 {
			limit = 10
		}

		filter := publicapp.VendorFilter{
			Category: categoryFilter,
			City:     cityFilter,
			Keyword:  keyword,
			Tags:     query["tags"],
		}
		paging := publicapp.Paging{
			Page:  page,
			Limit: limit,
			Sort:  sortKey,
		}

		vendors, err := h.vendorQueries.List(ctx, filter, paging)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusOK, vendorListResponse{
					Items: []vendorSummaryResponse{},
					Page:  page,
					Limit: limit,
					Total: 0,
				})
				return
			}
			h.logger.Printf("vendor list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch vendors"})
			return
		}

		total := len(vendors)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]vendorSummaryResponse, 0, end-start)
		for _, vendor := range vendors[start:end] {
			items = append(items, buildVendorSummaryResponse(vendor))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, vendorListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) vendorDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is missing"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is malformed"})
			return
		}

		vendor, err := h.vendorQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "vendor not found"})
				return
			}
			h.logger.Printf("vendor detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch the vendor"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVendorDetailResponse(*vendor))
	}
}

func (h *Handler) vendorListingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is malformed"})
			return
		}

		listings, err := h.listingQueries.ListByVendor(ctx, idParam)
		if err != nil {
			h.logger.Printf("vendor listings fetch failed id=%q err=%v", idParam, err)
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

func (h *Handler) vendorReviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is malformed"})
			return
		}

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)

		reviews, err := h.reviewQueries.List(ctx, publicapp.ReviewFilter{VendorID: idParam}, publicapp.Paging{
			Page:  page,
			Limit: limit,
			Sort:  strings.TrimSpace(query.Get("sort")),
		})
		if err != nil {
			h.logger.Printf("vendor reviews fetch failed id=%q err=%v", idParam, err)
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
