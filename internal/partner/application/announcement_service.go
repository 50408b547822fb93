package application

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	vendordomain "github.com/eventour-app/event-backend/internal/partner/domain"
)

const (
	maxAnnouncementTitleRunes = 120
	maxAnnouncementBodyRunes  = 2000
)

type announcementService struct {
	repo AnnouncementRepository
}

// NewAnnouncementService wires the announcement use-cases to a repository.
func NewAnnouncementService(repo AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) List(ctx context.Context, vendorID string) ([]vendordomain.Announcement, error) {
	return s.repo.FindByVendor(ctx, vendorID)
}

func (s *announcementService) Post(ctx context.Context, vendorID string, cmd PostAnnouncementCommand) (*vendordomain.Announcement, error) {
	title := strings.TrimSpace(cmd.Title)
	body := strings.TrimSpace(cmd.Body)
	if title == "" {
		return nil, errors.New("announcement title is required")
	}
	if utf8.RuneCountInString(title) > maxAnnouncementTitleRunes {
		return nil, errors.New("announcement title is too long")
	}
	if body == "" {
		return nil, errors.New("announcement body is required")
	}
	if utf8.RuneCountInString(body) > maxAnnouncementBodyRunes {
		return nil, errors.New("announcement body is too long")
	}

	announcement := &vendordomain.Announcement{
		VendorID:  vendorID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	return announcement, s.repo.Create(ctx, announcement)
}
