package domain

import (
	"reflect"
	"testing"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Category
		wantErr bool
	}{
		{"canonical code", "caterer", "caterer", false},
		{"uppercase", "Photographer", "photographer", false},
		{"venue alias", "venue", "banquet_hall", false},
		{"pandit alias", "pandit", "priest", false},
		{"dj alias", "dj", "music", false},
		{"mua alias", "mua", "makeup_artist", false},
		{"decor alias", "decor", "decorator", false},
		{"unknown", "florist", "", true},
		{"empty", "  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewCategory(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Phone
		wantErr bool
	}{
		{"empty is unset", "", "", false},
		{"plain digits", "9876543210", "9876543210", false},
		{"with plus", "+919876543210", "+919876543210", false},
		{"separators stripped", "+91 98765-43210", "+919876543210", false},
		{"too short", "12345", "", true},
		{"letters", "98765abcde", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPhone(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPhone(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewPriceUnit(t *testing.T) {
	for _, unit := range []string{"per_plate", "per_event", "per_day", "per_hour", "per_piece"} {
		if _, err := NewPriceUnit(unit); err != nil {
			t.Errorf("NewPriceUnit(%q) error = %v", unit, err)
		}
	}
	for _, unit := range []string{"", "per_guest", "hourly"} {
		if _, err := NewPriceUnit(unit); err == nil {
			t.Errorf("NewPriceUnit(%q) expected an error", unit)
		}
	}
}

func TestNewTagList(t *testing.T) {
	got, err := NewTagList([]string{"veg_only", "outdoor", "veg_only"})
	if err != nil {
		t.Fatalf("NewTagList() error = %v", err)
	}
	if want := []string{"veg_only", "outdoor"}; !reflect.DeepEqual(got.Strings(), want) {
		t.Errorf("NewTagList() = %v, want %v (duplicates dropped)", got.Strings(), want)
	}

	if _, err := NewTagList([]string{"outdoor", "haunted"}); err == nil {
		t.Error("NewTagList() with an unknown tag expected an error")
	}

	empty, err := NewTagList(nil)
	if err != nil || empty != nil {
		t.Errorf("NewTagList(nil) = (%v, %v), want (nil, nil)", empty, err)
	}
}

func TestNewPhotoURLList(t *testing.T) {
	urls := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	got, err := NewPhotoURLList(urls, 3)
	if err != nil {
		t.Fatalf("NewPhotoURLList() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}

	if _, err := NewPhotoURLList(urls, 1); err == nil {
		t.Error("NewPhotoURLList() over the limit expected an error")
	}
	if _, err := NewPhotoURLList([]string{"not a url"}, 0); err == nil {
		t.Error("NewPhotoURLList() with a malformed URL expected an error")
	}
}

func TestNewRating(t *testing.T) {
	for _, v := range []float64{0, 2.5, 5} {
		if _, err := NewRating(v); err != nil {
			t.Errorf("NewRating(%v) error = %v", v, err)
		}
	}
	for _, v := range []float64{-0.5, 5.5} {
		if _, err := NewRating(v); err == nil {
			t.Errorf("NewRating(%v) expected an error", v)
		}
	}
}

func TestNewMoney(t *testing.T) {
	if _, err := NewMoney(-1); err == nil {
		t.Error("NewMoney(-1) expected an error")
	}
	if m, err := NewMoney(1500); err != nil || m.Int() != 1500 {
		t.Errorf("NewMoney(1500) = (%v, %v)", m, err)
	}
}
