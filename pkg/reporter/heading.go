package reporter

import (
	"fmt"

	"github.com/yaklabco/gosmell/pkg/smell"
)

// HeadingStrategy decides, per examiner, whether its header line is shown.
type HeadingStrategy interface {
	ShowHeader(ex smell.Examiner) bool
}

// Heading is the closed set of header strategies.
type Heading string

const (
	// HeadingQuiet shows a header only for examiners with warnings.
	HeadingQuiet Heading = "quiet"
	// HeadingVerbose shows a header for every examiner.
	HeadingVerbose Heading = "verbose"
)

// Compile-time interface check.
var _ HeadingStrategy = HeadingQuiet

// ParseHeading parses a heading strategy name.
func ParseHeading(s string) (Heading, error) {
	switch Heading(s) {
	case "", HeadingQuiet:
		return HeadingQuiet, nil
	case HeadingVerbose:
		return HeadingVerbose, nil
	default:
		return "", fmt.Errorf("unknown heading strategy %q; valid: quiet, verbose", s)
	}
}

// ShowHeader implements HeadingStrategy.
func (h Heading) ShowHeader(ex smell.Examiner) bool {
	if h == HeadingVerbose {
		return true
	}
	return ex.Smelly()
}
