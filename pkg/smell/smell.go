// Package smell defines the results handed over by an analysis stage:
// warnings about analyzed source and the examiners that hold them.
// These are pure value types with no knowledge of how they are rendered.
package smell

import (
	"slices"
	"strconv"
	"strings"
)

// Location identifies where in the analyzed source a warning applies.
type Location struct {
	// Source is the file path of the analyzed unit, or "string" for inline input.
	Source string

	// Lines are the 1-based source lines the warning refers to.
	Lines []int
}

// FirstLine returns the first referenced line, or 0 when no lines are known.
func (l Location) FirstLine() int {
	if len(l.Lines) == 0 {
		return 0
	}
	return l.Lines[0]
}

// JoinLines renders the referenced lines separated by sep.
func (l Location) JoinLines(sep string) string {
	parts := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		parts[i] = strconv.Itoa(line)
	}
	return strings.Join(parts, sep)
}

// IsZero reports whether the location carries neither a source nor lines.
func (l Location) IsZero() bool {
	return l.Source == "" && len(l.Lines) == 0
}

// Warning is one detected issue about a location in analyzed source.
// Warnings are never mutated after creation.
type Warning struct {
	// Context names the code scope, e.g. "Foo#bar".
	Context string

	// Message is the human readable description of the issue.
	Message string

	// SmellType is the stable category name, e.g. "FeatureEnvy".
	SmellType string

	// Location is optional; nil means the analysis stage reported none.
	Location *Location
}

// HasLocation reports whether the warning carries a usable location.
func (w Warning) HasLocation() bool {
	return w.Location != nil && !w.Location.IsZero()
}

// Examiner is a read-only view over the analysis result for one unit of source.
type Examiner interface {
	// Description is the display name of the unit, e.g. a file path.
	Description() string

	// Smells returns the warnings in detection order.
	Smells() []Warning

	// SmellsCount returns len(Smells()).
	SmellsCount() int

	// Smelly reports whether SmellsCount() > 0.
	Smelly() bool
}

// Compile-time interface check.
var _ Examiner = (*Examination)(nil)

// Examination is the concrete Examiner built from decoded analysis results.
type Examination struct {
	description string
	smells      []Warning
}

// NewExamination creates an Examination holding a copy of smells.
func NewExamination(description string, smells ...Warning) *Examination {
	return &Examination{
		description: description,
		smells:      slices.Clone(smells),
	}
}

// Description implements Examiner.
func (e *Examination) Description() string {
	return e.description
}

// Smells implements Examiner. The returned slice is a copy.
func (e *Examination) Smells() []Warning {
	return slices.Clone(e.smells)
}

// SmellsCount implements Examiner.
func (e *Examination) SmellsCount() int {
	return len(e.smells)
}

// Smelly implements Examiner.
func (e *Examination) Smelly() bool {
	return len(e.smells) > 0
}
