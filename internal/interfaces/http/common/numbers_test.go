package common

import "testing"

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in       string
		fallback int
		want     int
		ok       bool
	}{
		{"7", 1, 7, true},
		{" 42 ", 1, 42, true},
		{"", 10, 10, false},
		{"0", 10, 10, false},
		{"-3", 10, 10, false},
		{"abc", 10, 10, false},
	}

	for _, tt := range tests {
		got, ok := ParsePositiveInt(tt.in, tt.fallback)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePositiveInt(%q, %d) = (%d, %v), want (%d, %v)", tt.in, tt.fallback, got, ok, tt.want, tt.ok)
		}
	}
}
