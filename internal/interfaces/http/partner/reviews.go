package partner

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
	publicdomain "github.com/eventour-app/event-backend/internal/public/domain"
)

type reviewItemResponse struct {
	ID           string  `json:"id"`
	AuthorName   string  `json:"authorName,omitempty"`
	EventMonth   string  `json:"eventMonth,omitempty"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	HelpfulCount int     `json:"helpfulCount"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

func buildReviewItemResponse(review publicdomain.Review) reviewItemResponse {
	resp := reviewItemResponse{
		ID:           review.ID,
		AuthorName:   review.AuthorName,
		EventMonth:   review.EventMonth,
		Rating:       review.Rating,
		Comment:      review.Comment,
		HelpfulCount: review.HelpfulCount,
	}
	if !review.CreatedAt.IsZero() {
		resp.CreatedAt = review.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// reviewListHandler lets a vendor read the reviews customers left for them.
func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 10)

		reviews, err := h.reviewQueries.List(ctx, publicapp.ReviewFilter{VendorID: vendor.ID}, publicapp.Paging{
			Page:  page,
			Limit: limit,
			Sort:  strings.TrimSpace(query.Get("sort")),
		})
		if err != nil {
			h.logger.Printf("vendor review fetch failed vendor=%s err=%v", vendor.ID, err)
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

		items := make([]reviewItemResponse, 0, end-start)
		for _, review := range reviews[start:end] {
			items = append(items, buildReviewItemResponse(review))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}
