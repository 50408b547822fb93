package partner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/eventour-app/event-backend/internal/interfaces/http/common"
)

func TestUpsertVendorRequestValidate(t *testing.T) {
	tests := []struct {
		name         string
		req          upsertVendorRequest
		wantCategory string
		wantErr      bool
	}{
		{
			name:         "valid with alias category",
			req:          upsertVendorRequest{Name: "Grand Orchid Banquets", Category: "venue", City: "Mumbai"},
			wantCategory: "banquet_hall",
		},
		{
			name:    "name required",
			req:     upsertVendorRequest{Category: "caterer", City: "Delhi"},
			wantErr: true,
		},
		{
			name:    "city required",
			req:     upsertVendorRequest{Name: "Spice Route", Category: "caterer"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     upsertVendorRequest{Name: "X", Category: "florist", City: "Pune"},
			wantErr: true,
		},
		{
			name:    "unknown tag",
			req:     upsertVendorRequest{Name: "X", Category: "caterer", City: "Pune", Tags: []string{"haunted"}},
			wantErr: true,
		},
		{
			name: "about too long",
			req: upsertVendorRequest{
				Name: "X", Category: "caterer", City: "Pune",
				About: strings.Repeat("a", common.MaxAboutRunes+1),
			},
			wantErr: true,
		},
		{
			name: "too many photos",
			req: upsertVendorRequest{
				Name: "X", Category: "caterer", City: "Pune",
				PhotoURLs: make([]string, common.MaxVendorPhotoCount+1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.req.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", tt.req.Category, tt.wantCategory)
			}
		})
	}
}

func TestUpsertVendorRequestValidateDedupesTags(t *testing.T) {
	req := upsertVendorRequest{
		Name: "X", Category: "caterer", City: "Pune",
		Tags: []string{"veg_only", "veg_only", "premium"},
	}
	if err := req.validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if want := []string{"veg_only", "premium"}; !reflect.DeepEqual(req.Tags, want) {
		t.Errorf("tags = %v, want %v", req.Tags, want)
	}
}

func TestUpsertListingRequestValidate(t *testing.T) {
	capacity := -1
	tests := []struct {
		name    string
		req     upsertListingRequest
		wantErr bool
	}{
		{"valid", upsertListingRequest{Title: "Silver Thali", Price: 800, PriceUnit: "per_plate"}, false},
		{"title required", upsertListingRequest{Price: 800, PriceUnit: "per_plate"}, true},
		{"negative price", upsertListingRequest{Title: "X", Price: -1, PriceUnit: "per_event"}, true},
		{"negative capacity", upsertListingRequest{Title: "X", Price: 1, PriceUnit: "per_event", Capacity: &capacity}, true},
		{"unknown tag", upsertListingRequest{Title: "X", Price: 1, PriceUnit: "per_event", Tags: []string{"bad"}}, true},
		{
			"too many photos",
			upsertListingRequest{Title: "X", Price: 1, PriceUnit: "per_event", PhotoURLs: make([]string, common.MaxListingPhotoCount+1)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpsertListingRequestToCommandActiveDefault(t *testing.T) {
	req := upsertListingRequest{Title: "X", Price: 1, PriceUnit: "per_event"}
	if cmd := req.toCommand(); !cmd.Active {
		t.Error("active should default to true when omitted")
	}

	inactive := false
	req.Active = &inactive
	if cmd := req.toCommand(); cmd.Active {
		t.Error("explicit active=false must be honoured")
	}
}
