package services

import (
	"strings"
	"time"
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// NormalizeSignatureDate canonicalizes free-text signature dates. A 10-char
// input that parses as a calendar date comes back as YYYY-MM-DD, longer
// parseable input as a full ISO datetime. Parse failures pass the trimmed
// text through unchanged; blank input yields an empty string.
func NormalizeSignatureDate(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	if len(t) == 10 {
		if d, err := time.Parse("2006-01-02", t); err == nil {
			return d.Format("2006-01-02")
		}
		return t
	}
	for _, layout := range datetimeLayouts {
		if d, err := time.Parse(layout, t); err == nil {
			return d.Format("2006-01-02T15:04:05")
		}
	}
	return t
}
