package imgproc

import "strings"

// Kind selects the size/format policy applied to an uploaded image.
type Kind int

const (
	// KindServicePhoto covers gallery photos attached to vendors, listings
	// and reviews. It doubles as the fallback policy for unknown kinds.
	KindServicePhoto Kind = iota
	// KindLogo covers vendor logos, which are small and may carry alpha.
	KindLogo
	// KindDocument covers scanned verification documents.
	KindDocument
)

// SizePolicy bounds the pixel dimensions and encoded byte size for a Kind.
// MaxBytes is a hard ceiling; DesiredBytes, when non-zero, is a soft target
// used to avoid over-compressing when the ceiling is easily met.
type SizePolicy struct {
	MaxWidth     int
	MaxHeight    int
	MaxBytes     int
	DesiredBytes int
}

var policies = map[Kind]SizePolicy{
	KindLogo:         {MaxWidth: 512, MaxHeight: 512, MaxBytes: 50 << 10},
	KindDocument:     {MaxWidth: 1920, MaxHeight: 1920, MaxBytes: 400 << 10},
	KindServicePhoto: {MaxWidth: 1920, MaxHeight: 1920, MaxBytes: 200 << 10, DesiredBytes: 150 << 10},
}

// PolicyFor returns the policy for kind. Unknown kinds fall back to the
// service-photo policy rather than failing.
func PolicyFor(kind Kind) SizePolicy {
	if policy, ok := policies[kind]; ok {
		return policy
	}
	return policies[KindServicePhoto]
}

func (k Kind) String() string {
	switch k {
	case KindLogo:
		return "logo"
	case KindDocument:
		return "document"
	default:
		return "servicePhoto"
	}
}

// ParseKind maps a wire value to a Kind. Unknown values are rejected here so
// the defensive PolicyFor fallback only covers programmatic misuse.
func ParseKind(value string) (Kind, bool) {
	switch strings.TrimSpace(value) {
	case "logo":
		return KindLogo, true
	case "document":
		return KindDocument, true
	case "servicePhoto", "service_photo", "photo":
		return KindServicePhoto, true
	}
	return KindServicePhoto, false
}

// Format identifies the output encoding of a normalized image.
type Format int

const (
	// FormatAuto lets Normalize pick the encoding from kind and alpha.
	FormatAuto Format = iota
	FormatJPEG
	FormatPNG
)

// MIMEType returns the media type reported alongside the encoded bytes.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	default:
		return "image/jpeg"
	}
}

// Ext returns the file extension used when the encoded image is stored.
func (f Format) Ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// ParseFormat maps a wire value to an output Format. An empty value selects
// automatic format selection.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return FormatAuto, true
	case "jpeg", "jpg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	}
	return FormatAuto, false
}
