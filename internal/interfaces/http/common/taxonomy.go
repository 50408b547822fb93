package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	AllowedVendorTags = []string{"veg_only", "outdoor", "ac_hall", "home_service", "budget_friendly", "premium", "decor_included"}

	allowedVendorTagSet = makeStringSet(AllowedVendorTags)
)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// CanonicalCategoryCode normalises various aliases into canonical category codes.
func CanonicalCategoryCode(input string) string {
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

// CanonicalCategoryCodes de-duplicates and cleans category codes.
func CanonicalCategoryCodes(codes []string) []string {
	result := make([]string, 0, len(codes))
	seen := make(map[string]struct{})
	for _, code := range codes {
		canonical := CanonicalCategoryCode(code)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result
}

// KnownCategoryCode reports whether the code belongs to the supported set.
func KnownCategoryCode(code string) bool {
	switch code {
	case "banquet_hall", "caterer", "photographer", "card_designer", "priest", "decorator", "makeup_artist", "music":
		return true
	}
	return false
}

// RequireCategory canonicalises a category input and rejects unknown codes.
func RequireCategory(value string) (string, error) {
	code := CanonicalCategoryCode(value)
	if code == "" {
		return "", errors.New("category is required")
	}
	if !KnownCategoryCode(code) {
		return "", fmt.Errorf("invalid category: %s", value)
	}
	return code, nil
}

// NormalizeVendorTags validates vendor tag selections.
func NormalizeVendorTags(tags []string) ([]string, error) {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{})
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := allowedVendorTagSet[tag]; !ok {
			return nil, fmt.Errorf("invalid tag: %s", tag)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result, nil
}
