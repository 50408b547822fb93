package public

import (
	"strings"
	"testing"
	"time"
)

func TestCreateReviewRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        createReviewRequest
		wantRating float64
		wantErr    bool
	}{
		{
			name:       "valid",
			req:        createReviewRequest{Rating: 4.5, Comment: "Lovely food and service."},
			wantRating: 4.5,
		},
		{
			name:       "rating rounded to nearest half",
			req:        createReviewRequest{Rating: 4.3, Comment: "Good."},
			wantRating: 4.5,
		},
		{
			name:       "rating rounds down",
			req:        createReviewRequest{Rating: 3.2, Comment: "Okay."},
			wantRating: 3,
		},
		{
			name:    "rating above range",
			req:     createReviewRequest{Rating: 5.5, Comment: "Too good."},
			wantErr: true,
		},
		{
			name:    "negative rating",
			req:     createReviewRequest{Rating: -1, Comment: "Bad."},
			wantErr: true,
		},
		{
			name:    "comment required",
			req:     createReviewRequest{Rating: 4, Comment: "   "},
			wantErr: true,
		},
		{
			name:    "comment too long",
			req:     createReviewRequest{Rating: 4, Comment: strings.Repeat("a", maxReviewCommentRunes+1)},
			wantErr: true,
		},
		{
			name:       "valid event month",
			req:        createReviewRequest{Rating: 4, Comment: "Nice.", EventMonth: "2025-11"},
			wantRating: 4,
		},
		{
			name:    "bad event month",
			req:     createReviewRequest{Rating: 4, Comment: "Nice.", EventMonth: "Nov 2025"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.req.Rating != tt.wantRating {
				t.Errorf("rating = %v, want %v", tt.req.Rating, tt.wantRating)
			}
		})
	}
}

func TestHelpfulCookieRoundTrip(t *testing.T) {
	h := &Handler{helpfulCookieSecret: []byte("test-secret")}

	issuedAt := time.Now().UTC()
	value := h.signHelpfulCookie("voter-123", issuedAt)

	voterID, parsedAt, ok := h.parseHelpfulCookie(value)
	if !ok {
		t.Fatal("parseHelpfulCookie() rejected a freshly signed value")
	}
	if voterID != "voter-123" {
		t.Errorf("voterID = %q, want voter-123", voterID)
	}
	if parsedAt.Unix() != issuedAt.Unix() {
		t.Errorf("issuedAt = %v, want %v", parsedAt.Unix(), issuedAt.Unix())
	}
}

func TestHelpfulCookieRejectsTampering(t *testing.T) {
	h := &Handler{helpfulCookieSecret: []byte("test-secret")}
	value := h.signHelpfulCookie("voter-123", time.Now().UTC())

	tampered := strings.Replace(value, "voter-123", "voter-456", 1)
	if _, _, ok := h.parseHelpfulCookie(tampered); ok {
		t.Error("parseHelpfulCookie() accepted a tampered voter id")
	}

	other := &Handler{helpfulCookieSecret: []byte("different-secret")}
	if _, _, ok := other.parseHelpfulCookie(value); ok {
		t.Error("parseHelpfulCookie() accepted a value signed with another secret")
	}

	if _, _, ok := h.parseHelpfulCookie("garbage"); ok {
		t.Error("parseHelpfulCookie() accepted garbage")
	}
}

func TestNormalizeReviewPhotos(t *testing.T) {
	photos, err := normalizeReviewPhotos([]reviewPhotoPayload{
		{ID: "p1", PublicURL: "/media/servicePhoto/p1.jpg", ContentType: "image/jpeg"},
	}, 5)
	if err != nil {
		t.Fatalf("normalizeReviewPhotos() error = %v", err)
	}
	if len(photos) != 1 || photos[0].StoredPath != "p1" {
		t.Errorf("photos = %+v, want StoredPath to fall back to the id", photos)
	}

	if _, err := normalizeReviewPhotos([]reviewPhotoPayload{{PublicURL: "/x"}}, 5); err == nil {
		t.Error("expected an error for a photo without an id")
	}
	if _, err := normalizeReviewPhotos([]reviewPhotoPayload{{ID: "p1"}}, 5); err == nil {
		t.Error("expected an error for a photo without a public URL")
	}
}
