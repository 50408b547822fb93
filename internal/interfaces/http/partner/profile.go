package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/partner/application"
)

func (h *Handler) onboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		defer r.Body.Close()

		var req upsertVendorRequest
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
		if req.Phone == "" {
			req.Phone = user.Phone
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, err := h.profiles.Onboard(ctx, user.ID, req.toCommand())
		if err != nil {
			if errors.Is(err, application.ErrVendorExists) {
				common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{"error": "a vendor profile already exists for this account"})
				return
			}
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildVendorProfileResponse(*vendor))
	}
}

func (h *Handler) profileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, ok := h.requireVendor(ctx, w, r)
		if !ok {
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildVendorProfileResponse(*vendor))
	}
}

func (h *Handler) profileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		defer r.Body.Close()

		var req upsertVendorRequest
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
		if req.Phone == "" {
			req.Phone = user.Phone
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, err := h.profiles.Update(ctx, user.ID, req.toCommand())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "no vendor profile exists for this account"})
				return
			}
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVendorProfileResponse(*vendor))
	}
}
