package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	allowedVendorTags = []string{"veg_only", "outdoor", "ac_hall", "home_service", "budget_friendly", "premium", "decor_included"}
	allowedPriceUnits = []string{"per_plate", "per_event", "per_day", "per_hour", "per_piece"}

	phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// Category is a canonical vendor category code.
type Category string

func NewCategory(value string) (Category, error) {
	code := canonicalCategoryCode(value)
	if code == "" {
		return "", fmt.Errorf("category is required")
	}
	if !knownCategory(code) {
		return "", fmt.Errorf("invalid category: %s", value)
	}
	return Category(code), nil
}

func (c Category) String() string {
	return string(c)
}

type City string

func NewCity(value string) (City, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("city is required")
	}
	return City(trimmed), nil
}

func (c City) String() string {
	return string(c)
}

type Phone string

// NewPhone accepts digits with an optional leading plus, 8 to 15 digits.
// Empty input is allowed and yields an unset phone.
func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	compact := strings.NewReplacer(" ", "", "-", "").Replace(trimmed)
	if !phonePattern.MatchString(compact) {
		return "", fmt.Errorf("invalid phone number: %s", value)
	}
	return Phone(compact), nil
}

func (p Phone) String() string {
	return string(p)
}

type Money int

func NewMoney(value int) (Money, error) {
	if value < 0 {
		return 0, fmt.Errorf("money must be >= 0")
	}
	return Money(value), nil
}

func (m Money) Int() int {
	return int(m)
}

type Rating float64

func NewRating(value float64) (Rating, error) {
	if value < 0 || value > 5 {
		return 0, fmt.Errorf("rating must be between 0 and 5")
	}
	return Rating(value), nil
}

func (r Rating) Float64() float64 {
	return float64(r)
}

type PriceUnit string

func NewPriceUnit(value string) (PriceUnit, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("price unit is required")
	}
	for _, allowed := range allowedPriceUnits {
		if allowed == trimmed {
			return PriceUnit(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid price unit: %s", trimmed)
}

func (u PriceUnit) String() string {
	return string(u)
}

type Tag string

func NewTag(value string) (Tag, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("tag is required")
	}
	for _, allowed := range allowedVendorTags {
		if allowed == trimmed {
			return Tag(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid tag: %s", trimmed)
}

type TagList []Tag

func NewTagList(values []string) (TagList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	result := make([]Tag, 0, len(values))
	seen := make(map[Tag]struct{})
	for _, raw := range values {
		tag, err := NewTag(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return TagList(result), nil
}

func (l TagList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

type PhotoURL string

func NewPhotoURL(value string) (PhotoURL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("photo URL is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid photo URL: %w", err)
	}
	return PhotoURL(trimmed), nil
}

func (u PhotoURL) String() string {
	return string(u)
}

type PhotoURLList []PhotoURL

func NewPhotoURLList(values []string, limit int) (PhotoURLList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if limit > 0 && len(values) > limit {
		return nil, fmt.Errorf("photo URLs must be <= %d", limit)
	}
	result := make([]PhotoURL, 0, len(values))
	for _, raw := range values {
		urlValue, err := NewPhotoURL(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, urlValue)
	}
	return PhotoURLList(result), nil
}

func (l PhotoURLList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

func knownCategory(code string) bool {
	switch code {
	case "banquet_hall", "caterer", "photographer", "card_designer", "priest", "decorator", "makeup_artist", "music":
		return true
	}
	return false
}

func canonicalCategoryCode(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "banquet_hall", "banquet", "hall", "venue":
		return "banquet_hall"
	case "caterer", "catering", "food":
		return "caterer"
	case "photographer", "photography", "photo":
		return "photographer"
	case "card_designer", "card_design", "cards", "invitation", "invitations":
		return "card_designer"
	case "priest", "pandit", "pujari":
		return "priest"
	case "decorator", "decoration", "decor":
		return "decorator"
	case "makeup_artist", "makeup", "mua":
		return "makeup_artist"
	case "music", "dj", "band", "sangeet":
		return "music"
	}

	return strings.ToLower(trimmed)
}
