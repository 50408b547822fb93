package partner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/eventour-app/event-backend/internal/imgproc"
	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
)

type uploadResponse struct {
	ID               string `json:"id"`
	StoredPath       string `json:"storedPath"`
	PublicURL        string `json:"publicUrl"`
	ContentType      string `json:"contentType"`
	ByteSize         int    `json:"byteSize"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	Quality          int    `json:"quality,omitempty"`
	CeilingSatisfied bool   `json:"ceilingSatisfied"`
	UploadedAt       string `json:"uploadedAt"`
}

type uploadJSONRequest struct {
	Kind   string `json:"kind"`
	Format string `json:"format,omitempty"`
	// Data carries the image either as a data URL or as plain base64.
	Data string `json:"data"`
}

// uploadHandler accepts an image as multipart/form-data (fields: file, kind,
// format) or as a JSON body with base64 data, normalizes it against the
// per-kind policy and stores the result.
func (h *Handler) uploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Image decode and re-encode can be slow for large uploads, so the
		// usual 5 second budget does not apply here.
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if _, ok := h.requireVendor(ctx, w, r); !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxUploadRequestBody)

		var (
			data       []byte
			kindValue  string
			formatName string
			err        error
		)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			data, kindValue, formatName, err = readMultipartUpload(r)
		} else {
			data, kindValue, formatName, err = readJSONUpload(r)
		}
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		kind, ok := imgproc.ParseKind(kindValue)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "kind must be logo, document or servicePhoto"})
			return
		}
		format, ok := imgproc.ParseFormat(formatName)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "format must be jpeg or png"})
			return
		}

		encoded, err := imgproc.Normalize(data, kind, format)
		if err != nil {
			if errors.Is(err, imgproc.ErrInvalidImage) {
				common.WriteJSON(h.logger, w, http.StatusUnprocessableEntity, map[string]string{"error": "the upload is not a readable image"})
				return
			}
			h.logger.Printf("image normalization failed kind=%s err=%v", kind, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to process the image"})
			return
		}

		asset, err := h.media.Save(encoded, kind)
		if err != nil {
			h.logger.Printf("media save failed kind=%s err=%v", kind, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to store the image"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, uploadResponse{
			ID:               asset.ID,
			StoredPath:       asset.StoredPath,
			PublicURL:        asset.PublicURL,
			ContentType:      asset.ContentType,
			ByteSize:         asset.ByteSize,
			Width:            asset.Width,
			Height:           asset.Height,
			Quality:          encoded.Quality,
			CeilingSatisfied: encoded.CeilingSatisfied,
			UploadedAt:       asset.UploadedAt.Format(time.RFC3339),
		})
	}
}

func readMultipartUpload(r *http.Request) ([]byte, string, string, error) {
	if err := r.ParseMultipartForm(common.MaxUploadRequestBody); err != nil {
		return nil, "", "", fmt.Errorf("multipart body is malformed: %v", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, "", "", errors.New("a file field is required")
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read the upload: %v", err)
	}
	return data, r.FormValue("kind"), r.FormValue("format"), nil
}

func readJSONUpload(r *http.Request) ([]byte, string, string, error) {
	defer r.Body.Close()

	var req uploadJSONRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, "", "", fmt.Errorf("request body is malformed: %v", err)
	}

	raw := strings.TrimSpace(req.Data)
	if raw == "" {
		return nil, "", "", errors.New("data is required")
	}
	if strings.HasPrefix(raw, "data:") {
		comma := strings.IndexByte(raw, ',')
		if comma < 0 {
			return nil, "", "", errors.New("data URL is malformed")
		}
		raw = raw[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", "", errors.New("data must be base64 encoded")
	}
	return data, req.Kind, req.Format, nil
}
