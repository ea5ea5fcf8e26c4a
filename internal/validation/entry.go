// Package validation contains input validation helpers shared by handlers and
// services.
package validation

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyText is returned when an entry body is missing or whitespace only.
var ErrEmptyText = errors.New("entry text is required")

// ValidateEntryText checks an entry body. Length is intentionally not capped:
// display truncation is a presentation concern.
func ValidateEntryText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// ParseFeedDate parses a YYYY-MM-DD feed date parameter as a UTC day.
// An empty value means "today".
func ParseFeedDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
