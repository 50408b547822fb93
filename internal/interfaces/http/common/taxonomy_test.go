package common

import (
	"reflect"
	"testing"
)

func TestCanonicalCategoryCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"banquet_hall", "banquet_hall"},
		{"Venue", "banquet_hall"},
		{"catering", "caterer"},
		{"PHOTO", "photographer"},
		{"invitations", "card_designer"},
		{"pandit", "priest"},
		{"decor", "decorator"},
		{"mua", "makeup_artist"},
		{"dj", "music"},
		{"  sangeet  ", "music"},
		{"florist", "florist"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalCategoryCode(tt.in); got != tt.want {
			t.Errorf("CanonicalCategoryCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalCategoryCodes(t *testing.T) {
	got := CanonicalCategoryCodes([]string{"venue", "banquet_hall", "", "dj", "band"})
	want := []string{"banquet_hall", "music"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CanonicalCategoryCodes() = %v, want %v", got, want)
	}
}

func TestRequireCategory(t *testing.T) {
	if got, err := RequireCategory("pujari"); err != nil || got != "priest" {
		t.Errorf("RequireCategory(pujari) = (%q, %v), want priest", got, err)
	}
	if _, err := RequireCategory("florist"); err == nil {
		t.Error("RequireCategory(florist) expected an error")
	}
	if _, err := RequireCategory("   "); err == nil {
		t.Error("RequireCategory of blank input expected an error")
	}
}

func TestNormalizeVendorTags(t *testing.T) {
	got, err := NormalizeVendorTags([]string{"veg_only", " outdoor ", "veg_only", ""})
	if err != nil {
		t.Fatalf("NormalizeVendorTags() error = %v", err)
	}
	if want := []string{"veg_only", "outdoor"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeVendorTags() = %v, want %v", got, want)
	}

	if _, err := NormalizeVendorTags([]string{"premium", "cheap"}); err == nil {
		t.Error("NormalizeVendorTags() with an unknown tag expected an error")
	}
}
