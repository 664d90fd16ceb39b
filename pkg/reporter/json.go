package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gosmell/pkg/analysis"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version  string          `json:"version"`
	Warnings []WarningRecord `json:"warnings"`
	Summary  JSONSummary     `json:"summary"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Examiners       int             `json:"examiners"`
	SmellyExaminers int             `json:"smelly_examiners"`
	TotalWarnings   int             `json:"total_warnings"`
	BySmellType     map[string]int  `json:"by_smell_type"`
	ByExaminer      []ExaminerCount `json:"by_examiner"`
}

// ExaminerCount is one examiner's line in the json summary.
type ExaminerCount struct {
	Description string   `json:"description"`
	Count       int      `json:"count"`
	SmellTypes  []string `json:"smell_types,omitempty"`
}

// JSONRenderer formats a report as JSON.
type JSONRenderer struct {
	opts Options
}

// Compile-time interface check.
var _ Renderer = (*JSONRenderer)(nil)

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts.withDefaults()}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildJSONOutput(report)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func buildJSONOutput(report *analysis.Report) *JSONOutput {
	summary := analysis.Summarize(report)

	output := &JSONOutput{
		Version:  analysis.SummaryVersion,
		Warnings: newWarningRecords(report.Smells()),
		Summary: JSONSummary{
			Examiners:       summary.Totals.Examiners,
			SmellyExaminers: summary.Totals.SmellyExaminers,
			TotalWarnings:   summary.Totals.Warnings,
			BySmellType:     make(map[string]int, len(summary.BySmellType)),
			ByExaminer:      make([]ExaminerCount, 0, len(summary.ByExaminer)),
		},
	}

	for _, sta := range summary.BySmellType {
		output.Summary.BySmellType[sta.SmellType] = sta.Count
	}
	for _, ea := range summary.ByExaminer {
		output.Summary.ByExaminer = append(output.Summary.ByExaminer, ExaminerCount(ea))
	}

	return output
}
