package configloader

import (
	"fmt"
	"slices"
	"strings"
)

// EnvPrefix is the prefix for all gosmell environment variables.
const EnvPrefix = "GOSMELL_"

// configKeys maps every config key to its description.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configKeys = map[string]string{
	"output.format":         "Report format: text, yaml, json, html, sarif or markdown",
	"output.color":          "Colorize output: auto, always or never",
	"output.empty-headings": "Show headings for clean examiners: true or false",
	"output.line-numbers":   "Prefix warnings with source and lines: true or false",
	"output.single-line":    "Single-line warnings: true or false",
	"output.wiki-links":     "Append documentation links: true or false",
	"output.sort":           "Examiner order: none or issue-count",
	"output.html-path":      "File written by the html format",
	"output.compact":        "Compact json output: true or false",
	"input.jobs":            "Number of parallel decoders (0 = auto)",
	"input.exclude":         "Comma-separated glob patterns to skip",
	"input.extensions":      "Comma-separated result document extensions",
}

// sliceKeys are the config keys whose environment values are comma-separated lists.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sliceKeys = []string{"input.exclude", "input.extensions"}

// envKey converts an environment variable name to a config key.
// GOSMELL_OUTPUT_EMPTY_HEADINGS -> output.empty-headings
func envKey(name string) string {
	s := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return ""
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// EnvVarName returns the full environment variable name for a config key.
func EnvVarName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// envTransform returns a koanf env transform that maps known GOSMELL_*
// variables to config keys and reports unknown ones through warn.
func envTransform(warn func(string)) func(k, v string) (string, any) {
	return func(k, v string) (string, any) {
		key := envKey(k)
		if _, known := configKeys[key]; !known {
			warn(fmt.Sprintf("unknown environment variable %s; ignored", k))
			return "", nil
		}
		if slices.Contains(sliceKeys, key) {
			return key, parseSliceValue(v)
		}
		return key, v
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(configKeys))
	for key, description := range configKeys {
		vars[EnvVarName(key)] = description
	}
	return vars
}
