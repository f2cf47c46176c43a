package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// OutputFormat selects how a drift report is rendered.
type OutputFormat string

const (
	// FormatText renders a human-readable listing.
	FormatText OutputFormat = "text"
	// FormatJSON renders a machine-readable document.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a user supplied value into an OutputFormat.
// An empty value selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidOutputFormat, "unsupported output"), "output", s)
	}
}
