package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/gosmell/pkg/reporter"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "output.format").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues that were corrected.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err joins all validation errors, or returns nil when the config is valid.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

// Validate checks a configuration and normalizes it in place: abbreviated
// formats and sort orders are expanded and extensions gain a leading dot.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validateOutput(&cfg.Output, result)
	validateInput(&cfg.Input, result)

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

func validateOutput(out *OutputConfig, result *ValidationResult) {
	format, err := reporter.ParseFormat(out.Format)
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Value:   out.Format,
			Message: err.Error(),
		})
	} else {
		out.Format = string(format)
	}

	color, err := ParseColorMode(string(out.Color))
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.color",
			Value:   out.Color,
			Message: err.Error(),
		})
	} else {
		out.Color = color
	}

	out.Sort = ParseSortOrder(string(out.Sort))

	if format == reporter.FormatHTML && strings.TrimSpace(out.HTMLPath) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.html-path",
			Value:   out.HTMLPath,
			Message: "html-path must not be empty for the html format",
		})
	}
}

func validateInput(in *InputConfig, result *ValidationResult) {
	if in.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input.jobs",
			Value:   in.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	for i, pattern := range in.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("input.exclude[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}

	for i, ext := range in.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("input.extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q has no leading dot; using %q", ext, "."+ext),
			})
			in.Extensions[i] = "." + ext
		}
	}
}
