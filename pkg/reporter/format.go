package reporter

import (
	"fmt"
	"strings"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText     Format = "text"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatSARIF    Format = "sarif"
	FormatMarkdown Format = "markdown"
)

// allFormats lists formats in help order. Every name has a distinct first
// letter, which ParseFormat relies on for abbreviations.
var allFormats = []Format{FormatText, FormatYAML, FormatJSON, FormatHTML, FormatSARIF, FormatMarkdown}

// ParseFormat parses a format string, returning an error for unknown formats.
// Any non-empty prefix of a format name is accepted ("t", "y", "ht").
func ParseFormat(formatStr string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(formatStr))
	switch name {
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	}

	for _, format := range allFormats {
		if strings.HasPrefix(string(format), name) {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown format %q; valid formats: text, yaml, json, html, sarif, markdown", formatStr)
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON, FormatHTML, FormatSARIF, FormatMarkdown:
		return true
	default:
		return false
	}
}
