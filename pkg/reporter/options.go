package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// DefaultHTMLPath is where the html renderer writes when no path is set.
const DefaultHTMLPath = "reek.html"

// Default tool information embedded in machine-readable reports.
const (
	defaultToolName = "gosmell"
	defaultToolURI  = "https://github.com/yaklabco/gosmell"
)

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Heading decides which examiner headers are shown.
	// Used by the text, html and markdown renderers.
	Heading HeadingStrategy

	// Location controls the location prefix of each warning line.
	Location LocationFormatter

	// Verbosity controls the body of each warning line.
	Verbosity BodyFormatter

	// SortByIssueCount orders examiners by descending warning count
	// before rendering. Honored by the text, html and markdown renderers.
	SortByIssueCount bool

	// HTMLPath is the file the html renderer writes to.
	HTMLPath string

	// Compact uses compact/minified output where applicable.
	Compact bool

	// ToolName, ToolVersion and ToolURI identify the producer in
	// SARIF output.
	ToolName    string
	ToolVersion string
	ToolURI     string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:    os.Stdout,
		Format:    FormatText,
		Color:     "auto",
		Heading:   HeadingQuiet,
		Location:  LocationDefault,
		Verbosity: VerbositySimple,
		HTMLPath:  DefaultHTMLPath,
		ToolName:  defaultToolName,
		ToolURI:   defaultToolURI,
	}
}

// withDefaults fills every unset field from DefaultOptions.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.Writer == nil {
		o.Writer = defaults.Writer
	}
	if o.Format == "" {
		o.Format = defaults.Format
	}
	if o.Color == "" {
		o.Color = defaults.Color
	}
	if o.Heading == nil {
		o.Heading = defaults.Heading
	}
	if o.Location == nil {
		o.Location = defaults.Location
	}
	if o.Verbosity == nil {
		o.Verbosity = defaults.Verbosity
	}
	if o.HTMLPath == "" {
		o.HTMLPath = defaults.HTMLPath
	}
	if o.ToolName == "" {
		o.ToolName = defaults.ToolName
	}
	if o.ToolURI == "" {
		o.ToolURI = defaults.ToolURI
	}
	return o
}

// warningFormatter composes the configured location and body styles.
func (o Options) warningFormatter() WarningFormatter {
	return NewWarningFormatter(o.Location, o.Verbosity)
}
