package public

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	publicdomain "github.com/eventour-app/event-backend/internal/public/domain"
)

const anonymousReviewerName = "Eventour customer"

func buildReviewSummaryFromDomain(review publicdomain.Review) reviewSummaryResponse {
	createdAt := ""
	if !review.CreatedAt.IsZero() {
		createdAt = review.CreatedAt.Format(time.RFC3339)
	}

	return reviewSummaryResponse{
		ID:           review.ID,
		VendorID:     review.VendorID,
		VendorName:   review.VendorName,
		Category:     common.CanonicalCategoryCode(review.Category),
		City:         review.City,
		EventMonth:   review.EventMonth,
		Rating:       review.Rating,
		CreatedAt:    createdAt,
		HelpfulCount: review.HelpfulCount,
		Excerpt:      buildExcerpt(review.Comment, review.VendorName),
		Photos:       append([]publicdomain.Photo{}, review.Photos...),
	}
}

func buildReviewDetailFromDomain(review publicdomain.Review) reviewDetailResponse {
	return reviewDetailResponse{
		ReviewSummary:     buildReviewSummaryFromDomain(review),
		Comment:           strings.TrimSpace(review.Comment),
		AuthorDisplayName: reviewerDisplayName(review.AuthorName),
	}
}

// buildExcerpt shortens the comment for list views, falling back to a
// generic line when the comment is empty.
func buildExcerpt(comment, vendorName string) string {
	trimmed := strings.TrimSpace(comment)
	if trimmed != "" {
		runes := []rune(trimmed)
		if len(runes) > 60 {
			trimmed = string(runes[:60]) + "…"
		}
		return trimmed
	}
	return fmt.Sprintf("A recent review of %s.", vendorName)
}

func reviewerDisplayName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		return trimmed
	}
	return anonymousReviewerName
}
