package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	"github.com/eventour-app/event-backend/internal/otp"
)

type otpRequestPayload struct {
	Phone string `json:"phone"`
}

type otpVerifyPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type authUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
}

func (h *Handler) otpRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var payload otpRequestPayload
		decoder := json.NewDecoder(io.LimitReader(r.Body, 1024))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.otpService.Request(ctx, payload.Phone); err != nil {
			if errors.Is(err, otp.ErrInvalidPhone) {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "phone number is invalid"})
				return
			}
			h.logger.Printf("otp request failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to send the login code"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "sent"})
	}
}

func (h *Handler) otpVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var payload otpVerifyPayload
		decoder := json.NewDecoder(io.LimitReader(r.Body, 1024))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&payload); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("request body is malformed: %v", err),
			})
			return
		}
		if strings.TrimSpace(payload.Code) == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "code is required"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := h.otpService.Verify(ctx, payload.Phone, payload.Code)
		if err != nil {
			switch {
			case errors.Is(err, otp.ErrInvalidPhone):
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "phone number is invalid"})
			case errors.Is(err, otp.ErrChallengeNotFound):
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "no login code was requested for this number"})
			case errors.Is(err, otp.ErrChallengeExpired):
				common.WriteJSON(h.logger, w, http.StatusGone, map[string]string{"error": "the login code has expired"})
			case errors.Is(err, otp.ErrTooManyAttempts):
				common.WriteJSON(h.logger, w, http.StatusTooManyRequests, map[string]string{"error": "too many attempts, request a new code"})
			case errors.Is(err, otp.ErrCodeMismatch):
				common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "the login code does not match"})
			default:
				h.logger.Printf("otp verify failed: %v", err)
				common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to verify the login code"})
			}
			return
		}

		token, err := h.tokens.Issue(user.ID, user.Name, user.Phone)
		if err != nil {
			h.logger.Printf("token issue failed user=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to issue the login token"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"token": token,
			"user": authUserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Phone: user.Phone,
			},
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication is required"})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user": authUserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Phone: user.Phone,
			},
		})
	}
}
