package imgproc

import "testing"

func TestPolicyForKnownKinds(t *testing.T) {
	tests := []struct {
		kind       Kind
		maxWidth   int
		maxBytes   int
		desired    int
	}{
		{kind: KindLogo, maxWidth: 512, maxBytes: 50 << 10},
		{kind: KindDocument, maxWidth: 1920, maxBytes: 400 << 10},
		{kind: KindServicePhoto, maxWidth: 1920, maxBytes: 200 << 10, desired: 150 << 10},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			policy := PolicyFor(tt.kind)
			if policy.MaxWidth != tt.maxWidth || policy.MaxHeight != tt.maxWidth {
				t.Errorf("pixel bounds = %dx%d, want %dx%d", policy.MaxWidth, policy.MaxHeight, tt.maxWidth, tt.maxWidth)
			}
			if policy.MaxBytes != tt.maxBytes {
				t.Errorf("MaxBytes = %d, want %d", policy.MaxBytes, tt.maxBytes)
			}
			if policy.DesiredBytes != tt.desired {
				t.Errorf("DesiredBytes = %d, want %d", policy.DesiredBytes, tt.desired)
			}
		})
	}
}

func TestPolicyForUnknownKindFallsBack(t *testing.T) {
	if PolicyFor(Kind(42)) != PolicyFor(KindServicePhoto) {
		t.Error("unknown kind must fall back to the service-photo policy")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"logo", KindLogo, true},
		{" logo ", KindLogo, true},
		{"document", KindDocument, true},
		{"servicePhoto", KindServicePhoto, true},
		{"service_photo", KindServicePhoto, true},
		{"photo", KindServicePhoto, true},
		{"banner", KindServicePhoto, false},
		{"", KindServicePhoto, false},
	}

	for _, tt := range tests {
		kind, ok := ParseKind(tt.in)
		if kind != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = (%v, %v), want (%v, %v)", tt.in, kind, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatAuto, true},
		{"jpeg", FormatJPEG, true},
		{"JPG", FormatJPEG, true},
		{"png", FormatPNG, true},
		{"webp", FormatAuto, false},
	}

	for _, tt := range tests {
		format, ok := ParseFormat(tt.in)
		if format != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = (%v, %v), want (%v, %v)", tt.in, format, ok, tt.want, tt.ok)
		}
	}
}
