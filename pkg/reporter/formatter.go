package reporter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/gosmell/internal/ui/pretty"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// WikiBaseURL is the prefix of every smell help link.
const WikiBaseURL = "https://github.com/troessner/reek/wiki/"

// listIndent prefixes every warning line under an examiner header.
const listIndent = "  "

// WarningFormatter turns one warning into one line of text.
type WarningFormatter interface {
	Format(w smell.Warning) string
}

// LocationFormatter places location information around a formatted body.
// It is independent of how the body itself was produced.
type LocationFormatter interface {
	Decorate(w smell.Warning, body string) string
}

// BodyFormatter produces the location-free part of a warning line.
type BodyFormatter interface {
	Body(w smell.Warning) string
}

// Location is the closed set of location prefix styles.
type Location string

const (
	// LocationBlank emits no location text.
	LocationBlank Location = "blank"
	// LocationDefault prefixes "<source>:<line,line>: ".
	LocationDefault Location = "default"
	// LocationSingleLine prefixes "<source>:<first line>: " and folds the
	// whole warning onto one line, for editor jump-to-error integration.
	LocationSingleLine Location = "single-line"
)

// Compile-time interface checks.
var (
	_ LocationFormatter = LocationDefault
	_ BodyFormatter     = VerbositySimple
	_ WarningFormatter  = (*LineFormatter)(nil)
)

// ParseLocation parses a location style name.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case "", LocationDefault:
		return LocationDefault, nil
	case LocationBlank:
		return LocationBlank, nil
	case LocationSingleLine:
		return LocationSingleLine, nil
	default:
		return "", fmt.Errorf("unknown location style %q; valid: blank, default, single-line", s)
	}
}

// Decorate implements LocationFormatter.
func (l Location) Decorate(w smell.Warning, body string) string {
	switch l {
	case LocationDefault:
		return locationPrefix(w, joinedLines(w)) + body
	case LocationSingleLine:
		return locationPrefix(w, firstLine(w)) + foldLines(body)
	default:
		return body
	}
}

// locationPrefix renders "<source>:<lines>: ", dropping whichever part is unknown.
func locationPrefix(w smell.Warning, lines string) string {
	if !w.HasLocation() {
		return ""
	}
	parts := make([]string, 0, 2)
	if w.Location.Source != "" {
		parts = append(parts, w.Location.Source)
	}
	if lines != "" {
		parts = append(parts, lines)
	}
	return strings.Join(parts, ":") + ": "
}

// locationText renders "<source>:<lines>" without the trailing separator.
func locationText(w smell.Warning) string {
	return strings.TrimSuffix(locationPrefix(w, joinedLines(w)), ": ")
}

func joinedLines(w smell.Warning) string {
	if !w.HasLocation() {
		return ""
	}
	return w.Location.JoinLines(",")
}

func firstLine(w smell.Warning) string {
	if !w.HasLocation() || w.Location.FirstLine() == 0 {
		return ""
	}
	return fmt.Sprint(w.Location.FirstLine())
}

// foldLines joins the non-blank lines of s with single spaces.
func foldLines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var parts []string
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// Verbosity is the closed set of warning body styles.
type Verbosity string

const (
	// VerbositySimple renders "<context> <message> (<smell_type>)".
	VerbositySimple Verbosity = "simple"
	// VerbosityWikiLinks appends " [<help link>]" to the simple body.
	VerbosityWikiLinks Verbosity = "wiki-links"
)

// ParseVerbosity parses a verbosity name.
func ParseVerbosity(s string) (Verbosity, error) {
	switch Verbosity(s) {
	case "", VerbositySimple:
		return VerbositySimple, nil
	case VerbosityWikiLinks:
		return VerbosityWikiLinks, nil
	default:
		return "", fmt.Errorf("unknown verbosity %q; valid: simple, wiki-links", s)
	}
}

// Body implements BodyFormatter.
func (v Verbosity) Body(w smell.Warning) string {
	body := fmt.Sprintf("%s %s (%s)", w.Context, w.Message, w.SmellType)
	if v == VerbosityWikiLinks {
		body += " [" + HelpLink(w.SmellType) + "]"
	}
	return body
}

// LineFormatter composes a LocationFormatter with a BodyFormatter.
// Any location style works with any body style.
type LineFormatter struct {
	Location LocationFormatter
	Body     BodyFormatter
}

// NewWarningFormatter returns a formatter for the given location and body styles.
// Nil arguments fall back to LocationDefault and VerbositySimple.
func NewWarningFormatter(location LocationFormatter, body BodyFormatter) *LineFormatter {
	if location == nil {
		location = LocationDefault
	}
	if body == nil {
		body = VerbositySimple
	}
	return &LineFormatter{Location: location, Body: body}
}

// Format implements WarningFormatter.
func (f *LineFormatter) Format(w smell.Warning) string {
	return f.Location.Decorate(w, f.Body.Body(w))
}

// FormatList formats warnings as an indented, newline-joined block.
func FormatList(warnings []smell.Warning, formatter WarningFormatter) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = listIndent + formatter.Format(w)
	}
	return strings.Join(lines, "\n")
}

// HelpLink returns the wiki page URL documenting smellType.
func HelpLink(smellType string) string {
	return WikiBaseURL + WikiSegment(smellType)
}

// WikiSegment splits smellType before each upper-case letter and joins the
// words with hyphens: "FeatureEnvy" becomes "Feature-Envy".
func WikiSegment(smellType string) string {
	var b strings.Builder
	for i, r := range smellType {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Header renders "<description> -- <N> warning(s)" with the description and
// count in separate accent styles. The plural "s" gets its own span.
func Header(ex smell.Examiner, styles *pretty.Styles) string {
	count := ex.SmellsCount()
	header := styles.Description.Render(ex.Description()+" -- ") +
		styles.Count.Render(fmt.Sprintf("%d warning", count))
	if count != 1 {
		header += styles.Count.Render("s")
	}
	return header
}

// countLabel renders "<N> warning" or "<N> warnings".
func countLabel(count int) string {
	return fmt.Sprintf("%d %s", count, pluralize(count, "warning", "warnings"))
}

// totalLabel renders "<N> total warning" or "<N> total warnings".
func totalLabel(count int) string {
	return fmt.Sprintf("%d total %s", count, pluralize(count, "warning", "warnings"))
}

// pluralize returns singular if count is 1, otherwise plural.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
