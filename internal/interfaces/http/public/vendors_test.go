package public

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	publicapp "github.com/eventour-app/event-backend/internal/public/application"
	"github.com/eventour-app/event-backend/internal/public/domain"
)

type stubVendorQueries struct {
	vendors    []domain.Vendor
	err        error
	lastFilter publicapp.VendorFilter
}

func (s *stubVendorQueries) List(_ context.Context, filter publicapp.VendorFilter, _ publicapp.Paging) ([]domain.Vendor, error) {
	s.lastFilter = filter
	return s.vendors, s.err
}

func (s *stubVendorQueries) Detail(_ context.Context, id string) (*domain.Vendor, error) {
	for _, vendor := range s.vendors {
		if vendor.ID == id {
			copied := vendor
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func newTestHandler(queries publicapp.VendorQueryService) *Handler {
	return NewHandler(Config{
		Logger:        log.New(io.Discard, "", 0),
		VendorQueries: queries,
	})
}

func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func testVendors(count int) []domain.Vendor {
	rating := 4.5
	vendors := make([]domain.Vendor, 0, count)
	for i := 0; i < count; i++ {
		vendors = append(vendors, domain.Vendor{
			ID:       string(rune('a' + i)),
			Name:     "Vendor",
			Category: "caterer",
			City:     "Mumbai",
			Stats:    domain.VendorStats{ReviewCount: 3, AvgRating: &rating},
		})
	}
	return vendors
}

func TestVendorListPagination(t *testing.T) {
	queries := &stubVendorQueries{vendors: testVendors(25)}
	router := chi.NewRouter()
	newTestHandler(queries).Register(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodGet, "/vendors?page=2&limit=10&category=venue", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp vendorListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Total != 25 || resp.Page != 2 || resp.Limit != 10 {
		t.Errorf("paging = total %d page %d limit %d, want 25/2/10", resp.Total, resp.Page, resp.Limit)
	}
	if len(resp.Items) != 10 {
		t.Errorf("len(items) = %d, want 10", len(resp.Items))
	}
	if resp.Items[0].AverageRating != 4.5 {
		t.Errorf("averageRating = %v, want 4.5", resp.Items[0].AverageRating)
	}

	// Category aliases are canonicalised before they reach the query layer.
	if queries.lastFilter.Category != "banquet_hall" {
		t.Errorf("filter category = %q, want banquet_hall", queries.lastFilter.Category)
	}
}

func TestVendorListLastPartialPage(t *testing.T) {
	queries := &stubVendorQueries{vendors: testVendors(25)}
	router := chi.NewRouter()
	newTestHandler(queries).Register(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodGet, "/vendors?page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp vendorListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 5 {
		t.Errorf("len(items) = %d, want 5", len(resp.Items))
	}

	// Beyond the data the list is empty but the response stays well-formed.
	req = httptest.NewRequest(http.MethodGet, "/vendors?page=9&limit=10", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 0 || resp.Total != 25 {
		t.Errorf("items = %d total = %d, want 0 and 25", len(resp.Items), resp.Total)
	}
}

func TestVendorDetailNotFound(t *testing.T) {
	queries := &stubVendorQueries{}
	router := chi.NewRouter()
	newTestHandler(queries).Register(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodGet, "/vendors/64a1f0c2e8b4a93f10aa0001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestVendorDetailMalformedID(t *testing.T) {
	router := chi.NewRouter()
	newTestHandler(&stubVendorQueries{}).Register(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodGet, "/vendors/not-an-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
