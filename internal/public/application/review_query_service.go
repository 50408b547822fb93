package application

import (
	"context"
	"sort"

	"github.com/eventour-app/event-backend/internal/public/domain"
)

// reviewQueryService implements ReviewQueryService.
type reviewQueryService struct {
	repo ReviewRepository
}

// NewReviewQueryService creates a new ReviewQueryService.
func NewReviewQueryService(repo ReviewRepository) ReviewQueryService {
	return &reviewQueryService{repo: repo}
}

func (s *reviewQueryService) List(ctx context.Context, filter ReviewFilter, paging Paging) ([]domain.Review, error) {
	reviews, err := s.repo.Find(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	sortReviews(reviews, paging.Sort)
	return reviews, nil
}

func (s *reviewQueryService) Detail(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func sortReviews(reviews []domain.Review, sortKey string) {
	switch sortKey {
	case "helpful":
		sort.SliceStable(reviews, func(i, j int) bool {
			if reviews[i].HelpfulCount == reviews[j].HelpfulCount {
				return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
			}
			return reviews[i].HelpfulCount > reviews[j].HelpfulCount
		})
	case "rating":
		sort.SliceStable(reviews, func(i, j int) bool {
			if reviews[i].Rating == reviews[j].Rating {
				return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
			}
			return reviews[i].Rating > reviews[j].Rating
		})
	default:
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		})
	}
}
