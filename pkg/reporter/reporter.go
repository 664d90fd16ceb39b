// Package reporter renders smell reports in text, yaml, json, html, sarif
// and markdown.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// Reporter accumulates examiners and renders them in one configured format.
type Reporter struct {
	report   *analysis.Report
	renderer Renderer
}

// New creates a Reporter for the specified options.
func New(opts Options) (*Reporter, error) {
	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	return NewWithRenderer(renderer), nil
}

// NewWithRenderer creates a Reporter that renders through renderer.
func NewWithRenderer(renderer Renderer) *Reporter {
	return &Reporter{
		report:   analysis.NewReport(),
		renderer: renderer,
	}
}

// AddExaminer adds ex to the report. It returns the reporter to allow chaining.
func (r *Reporter) AddExaminer(ex smell.Examiner) *Reporter {
	r.report.AddExaminer(ex)
	return r
}

// HasSmells reports whether any added examiner holds a warning.
func (r *Reporter) HasSmells() bool {
	return r.report.HasSmells()
}

// Smells returns every warning across all examiners, in report order.
func (r *Reporter) Smells() []smell.Warning {
	return r.report.Smells()
}

// TotalSmellCount returns the number of warnings across all examiners.
func (r *Reporter) TotalSmellCount() int {
	return r.report.TotalSmellCount()
}

// Report exposes the accumulated report.
func (r *Reporter) Report() *analysis.Report {
	return r.report
}

// Show renders the accumulated report.
func (r *Reporter) Show(ctx context.Context) error {
	if err := r.renderer.Render(ctx, r.report); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
