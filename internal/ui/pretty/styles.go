// Package pretty provides terminal color styles and detection for CLI output.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles contains the color styles of the text report.
type Styles struct {
	// Examiner header components
	Description Style
	Count       Style

	// Footer styles
	NoWarnings Style
	Warnings   Style
}

// Style wraps text in a single SGR color pair. The text itself passes
// through untouched: tabs are not expanded and newlines stay inside the
// pair, which lipgloss styles do not guarantee.
type Style struct {
	style termenv.Style
}

// Render returns text wrapped in the style's escape sequences, or text
// unchanged when the style carries no color.
func (s Style) Render(text string) string {
	return s.style.Styled(text)
}

// NewStyles creates a new Styles with the given color mode.
//
// Styles use a fixed color profile rather than one detected from the
// output, so the escape sequences depend only on colorEnabled: the basic
// ANSI palette when true, none when false.
func NewStyles(colorEnabled bool) *Styles {
	profile := colorProfile(colorEnabled)
	fg := func(color string) Style {
		return Style{style: profile.String().Foreground(profile.Color(color))}
	}

	return &Styles{
		Description: fg("6"), // Cyan
		Count:       fg("3"), // Yellow
		NoWarnings:  fg("2"), // Green
		Warnings:    fg("1"), // Red
	}
}

// NewRenderer returns a lipgloss renderer with the basic ANSI profile when
// colorEnabled is true and the Ascii profile otherwise.
func NewRenderer(colorEnabled bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(colorProfile(colorEnabled))
	return renderer
}

func colorProfile(colorEnabled bool) termenv.Profile {
	if colorEnabled {
		return termenv.ANSI
	}
	return termenv.Ascii
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
