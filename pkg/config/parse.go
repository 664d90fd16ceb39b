package config

import (
	"fmt"
	"strings"
)

// ParseColorMode parses a color mode. Empty input means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", s)
	}
}

// ParseSortOrder parses a sort order. Anything starting with "i" (case
// insensitive) selects issue-count; every other value, empty included,
// means none.
func ParseSortOrder(s string) SortOrder {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "i") {
		return SortIssueCount
	}
	return SortNone
}
