package util

import (
	"regexp"
	"strings"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

var turkishReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// Slugify produces a URL-safe slug from a post title. Turkish characters
// are transliterated before the ascii pass so "Yapay Zekâ Çağı" stays readable.
func Slugify(title string) string {
	s := turkishReplacer.Replace(title)
	s = strings.ToLower(s)
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SplitTags parses the comma separated tag column into a slice.
func SplitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of SplitTags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func PtrStr(s string) *string {
	return &s
}

func PtrFloat32(f float32) *float32 {
	return &f
}
