package public

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
	"github.com/eventour-app/event-backend/internal/public/domain"
)

const (
	helpfulCookieName   = "ev_helpful_voter"
	helpfulCookieTTL    = 180 * 24 * time.Hour
	helpfulCookieMaxAge = int(helpfulCookieTTL / time.Second)

	maxReviewCommentRunes = 2000
)

type createReviewRequest struct {
	Rating     float64              `json:"rating"`
	Comment    string               `json:"comment"`
	EventMonth string               `json:"eventMonth,omitempty"`
	Photos     []reviewPhotoPayload `json:"photos,omitempty"`
}

type reviewPhotoPayload struct {
	ID          string `json:"id"`
	StoredPath  string `json:"storedPath"`
	PublicURL   string `json:"publicUrl"`
	ContentType string `json:"contentType"`
}

type createReviewResponse struct {
	Status string                `json:"status"`
	Review reviewSummaryResponse `json:"review"`
	Detail reviewDetailResponse  `json:"detail"`
}

func (req *createReviewRequest) validate() error {
	if req.Rating < 0 || req.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	req.Rating = math.Round(req.Rating*2) / 2

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return errors.New("comment is required")
	}
	if utf8.RuneCountInString(comment) > maxReviewCommentRunes {
		return fmt.Errorf("comment must be at most %d characters", maxReviewCommentRunes)
	}
	req.Comment = comment

	if month := strings.TrimSpace(req.EventMonth); month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return errors.New("event month must look like 2025-11")
		}
		req.EventMonth = month
	} else {
		req.EventMonth = ""
	}

	if len(req.Photos) > common.MaxReviewPhotoCount {
		return fmt.Errorf("at most %d photos are allowed", common.MaxReviewPhotoCount)
	}
	return nil
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the authenticated user"})
			return
		}

		vendorIDParam := strings.TrimSpace(chi.URLParam(r, "id"))
		vendorObjID, err := primitive.ObjectIDFromHex(vendorIDParam)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "vendor id is malformed"})
			return
		}

		defer r.Body.Close()

		var req createReviewRequest
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

		photos, err := normalizeReviewPhotos(req.Photos, common.MaxReviewPhotoCount)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vendor, err := h.vendorQueries.Detail(ctx, vendorIDParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "vendor not found"})
				return
			}
			h.logger.Printf("vendor lookup for review failed id=%q err=%v", vendorIDParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve the vendor"})
			return
		}

		cmd := publicapp.SubmitReviewCommand{
			VendorID:   vendor.ID,
			VendorName: vendor.Name,
			Category:   vendor.Category,
			City:       vendor.City,
			AuthorID:   user.ID,
			AuthorName: user.Name,
			EventMonth: req.EventMonth,
			Rating:     req.Rating,
			Comment:    req.Comment,
			Photos:     photos,
		}

		created, err := h.reviewCommands.Submit(ctx, cmd)
		if err != nil {
			h.logger.Printf("review save failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to save the review"})
			return
		}

		if err := h.recalculateVendorStats(ctx, vendorObjID); err != nil {
			h.logger.Printf("vendor stats update failed: %v", err)
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, createReviewResponse{
			Status: "ok",
			Review: buildReviewSummaryFromDomain(*created),
			Detail: buildReviewDetailFromDomain(*created),
		})
	}
}

func normalizeReviewPhotos(payloads []reviewPhotoPayload, max int) ([]domain.Photo, error) {
	if len(payloads) == 0 {
		return nil, nil
	}
	result := make([]domain.Photo, 0, len(payloads))
	for _, payload := range payloads {
		id := strings.TrimSpace(payload.ID)
		publicURL := strings.TrimSpace(payload.PublicURL)
		if id == "" {
			return nil, errors.New("photo id is required")
		}
		if publicURL == "" {
			return nil, fmt.Errorf("photo %s is missing its public URL", id)
		}
		storedPath := strings.TrimSpace(payload.StoredPath)
		if storedPath == "" {
			storedPath = id
		}
		result = append(result, domain.Photo{
			ID:          id,
			StoredPath:  storedPath,
			PublicURL:   publicURL,
			ContentType: strings.TrimSpace(payload.ContentType),
			UploadedAt:  time.Now().UTC(),
		})
		if len(result) > max {
			return nil, fmt.Errorf("at most %d photos are allowed", max)
		}
	}
	return result, nil
}

// recalculateVendorStats re-aggregates the vendor's reviews and writes the
// result onto the vendor document.
func (h *Handler) recalculateVendorStats(ctx context.Context, vendorID primitive.ObjectID) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"vendorId": vendorID,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"reviewCount":    bson.M{"$sum": 1},
			"avgRating":      bson.M{"$avg": "$rating"},
			"lastReviewedAt": bson.M{"$max": "$createdAt"},
		}}},
	}

	cursor, err := h.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	update := bson.M{
		"stats.reviewCount":    0,
		"stats.avgRating":      nil,
		"stats.lastReviewedAt": nil,
		"updatedAt":            time.Now().In(h.location),
	}

	if cursor.Next(ctx) {
		var agg struct {
			ReviewCount    int        `bson:"reviewCount"`
			AvgRating      *float64   `bson:"avgRating"`
			LastReviewedAt *time.Time `bson:"lastReviewedAt"`
		}
		if err := cursor.Decode(&agg); err != nil {
			return err
		}
		update["stats.reviewCount"] = agg.ReviewCount
		update["stats.avgRating"] = agg.AvgRating
		update["stats.lastReviewedAt"] = agg.LastReviewedAt
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	_, err = h.vendors.UpdateByID(ctx, vendorID, bson.M{"$set": update})
	return err
}

func (h *Handler) ensureHelpfulVoterID(w http.ResponseWriter, r *http.Request) (string, error) {
	if len(h.helpfulCookieSecret) == 0 {
		return "", errors.New("helpful voter secret not configured")
	}
	if cookie, err := r.Cookie(helpfulCookieName); err == nil {
		if voterID, issuedAt, ok := h.parseHelpfulCookie(cookie.Value); ok && time.Since(issuedAt) < helpfulCookieTTL {
			return voterID, nil
		}
	}
	voterID := primitive.NewObjectID().Hex()
	h.issueHelpfulCookie(w, voterID)
	return voterID, nil
}

func (h *Handler) issueHelpfulCookie(w http.ResponseWriter, voterID string) {
	value := h.signHelpfulCookie(voterID, time.Now().UTC())
	http.SetCookie(w, &http.Cookie{
		Name:     helpfulCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.helpfulCookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   helpfulCookieMaxAge,
	})
}

func (h *Handler) signHelpfulCookie(voterID string, issuedAt time.Time) string {
	payload := fmt.Sprintf("v=%s&ts=%d", voterID, issuedAt.Unix())
	mac := hmac.New(sha256.New, h.helpfulCookieSecret)
	mac.Write([]byte(payload))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return payload + "&sig=" + sig
}

func (h *Handler) parseHelpfulCookie(raw string) (string, time.Time, bool) {
	parts := strings.Split(raw, "&")
	if len(parts) < 3 {
		return "", time.Time{}, false
	}
	values := make(map[string]string, len(parts))
	for _, part := range parts {
		keyValue := strings.SplitN(part, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		values[keyValue[0]] = keyValue[1]
	}
	voterID := values["v"]
	timestamp := values["ts"]
	sig := values["sig"]
	if voterID == "" || timestamp == "" || sig == "" {
		return "", time.Time{}, false
	}

	payload := fmt.Sprintf("v=%s&ts=%s", voterID, timestamp)
	mac := hmac.New(sha256.New, h.helpfulCookieSecret)
	mac.Write([]byte(payload))
	expectedSig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expectedSig), []byte(sig)) {
		return "", time.Time{}, false
	}

	tsInt, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "", time.Time{}, false
	}
	return voterID, time.Unix(tsInt, 0), true
}
