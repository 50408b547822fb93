package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/partner/application"
)

func (h *Handler) announcementListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		announcements, err := h.announcements.List(ctx, vendor.ID)
		if err != nil {
			h.logger.Printf("announcement list fetch failed vendor=%s err=%v", vendor.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch announcements"})
			return
		}

		items := make([]announcementResponse, 0, len(announcements))
		for _, announcement := range announcements {
			items = append(items, buildAnnouncementResponse(announcement))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

type postAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *Handler) announcementCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}

		defer r.Body.Close()

		var req postAnnouncementRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}

		announcement, err := h.announcements.Post(ctx, vendor.ID, application.PostAnnouncementCommand{
			Title: req.Title,
			Body:  req.Body,
		})
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildAnnouncementResponse(*announcement))
	}
}
