// Package config defines core configuration types for gosmell.
// These types are pure data structures; loading and source precedence live in
// internal/configloader.
package config

import "github.com/yaklabco/gosmell/pkg/reporter"

// ColorMode controls when report output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// SortOrder controls the order in which examiners are reported.
type SortOrder string

const (
	// SortNone keeps examiners in the order they were added.
	SortNone SortOrder = "none"
	// SortIssueCount puts the examiners with the most warnings first.
	SortIssueCount SortOrder = "issue-count"
)

// IsValid returns true if the sort order is known.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortIssueCount:
		return true
	default:
		return false
	}
}

// OutputConfig holds the report rendering options.
type OutputConfig struct {
	// Format is the report encoding: text, yaml, json, html, sarif or markdown.
	Format string `koanf:"format" yaml:"format"`

	// Color is auto, always or never.
	Color ColorMode `koanf:"color" yaml:"color"`

	// EmptyHeadings shows a header for examiners without warnings.
	EmptyHeadings bool `koanf:"empty-headings" yaml:"empty-headings"`

	// LineNumbers prefixes every warning with its source and lines.
	LineNumbers bool `koanf:"line-numbers" yaml:"line-numbers"`

	// SingleLine prefixes every warning with its source and first line,
	// folding the warning onto one line. It wins over LineNumbers.
	SingleLine bool `koanf:"single-line" yaml:"single-line"`

	// WikiLinks appends a help link to every warning.
	WikiLinks bool `koanf:"wiki-links" yaml:"wiki-links"`

	// Sort orders examiners before rendering.
	Sort SortOrder `koanf:"sort" yaml:"sort"`

	// HTMLPath is the file the html report is written to.
	HTMLPath string `koanf:"html-path" yaml:"html-path"`

	// Compact disables indentation in the json report.
	Compact bool `koanf:"compact" yaml:"compact"`
}

// InputConfig holds the result document discovery options.
type InputConfig struct {
	// Jobs is the number of parallel decoders (0 = NumCPU).
	Jobs int `koanf:"jobs" yaml:"jobs"`

	// Exclude contains glob patterns for documents to skip.
	Exclude []string `koanf:"exclude" yaml:"exclude,omitempty"`

	// Extensions lists the document extensions to discover.
	Extensions []string `koanf:"extensions" yaml:"extensions,omitempty"`
}

// Config is the root configuration structure for gosmell.
type Config struct {
	Output OutputConfig `koanf:"output" yaml:"output"`
	Input  InputConfig  `koanf:"input"  yaml:"input"`
}

// NewConfig returns a Config with the default settings.
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:      string(reporter.FormatText),
			Color:       ColorAuto,
			LineNumbers: true,
			Sort:        SortNone,
			HTMLPath:    reporter.DefaultHTMLPath,
		},
		Input: InputConfig{
			Jobs: 0,
		},
	}
}
