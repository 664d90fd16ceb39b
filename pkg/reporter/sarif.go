package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// sarifLevel is the level assigned to every smell; smells are advisory.
const sarifLevel = "warning"

// SARIFRenderer formats a report as SARIF (Static Analysis Results
// Interchange Format) for code scanning integrations.
//
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
type SARIFRenderer struct {
	opts Options
}

// Compile-time interface check.
var _ Renderer = (*SARIFRenderer)(nil)

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{opts: opts.withDefaults()}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) error {
	sarifReport := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(r.opts.ToolName, r.opts.ToolURI)
	if r.opts.ToolVersion != "" {
		run.Tool.Driver.WithVersion(r.opts.ToolVersion)
	}

	warnings := report.Smells()

	// One rule per smell type, in name order.
	ruleSet := make(map[string]struct{})
	fileSet := make(map[string]struct{})
	for _, w := range warnings {
		ruleSet[w.SmellType] = struct{}{}
		if w.HasLocation() && w.Location.Source != "" {
			fileSet[filepath.ToSlash(w.Location.Source)] = struct{}{}
		}
	}

	for _, smellType := range sortedKeys(ruleSet) {
		rule := run.AddRule(smellType)
		rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(smellType))
		rule.WithHelpURI(HelpLink(smellType))
	}

	for _, file := range sortedKeys(fileSet) {
		run.AddDistinctArtifact(file)
	}

	for _, w := range warnings {
		run.AddResult(sarifResult(w))
	}

	sarifReport.AddRun(run)

	if err := sarifReport.PrettyWrite(r.opts.Writer); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

// sarifResult converts one warning. The context is folded into the message
// since SARIF has no dedicated field for it.
func sarifResult(w smell.Warning) *sarif.Result {
	result := sarif.NewRuleResult(w.SmellType).
		WithMessage(sarif.NewTextMessage(w.Context + " " + w.Message)).
		WithLevel(sarifLevel)

	if !w.HasLocation() || w.Location.Source == "" {
		return result
	}

	physicalLocation := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewSimpleArtifactLocation(filepath.ToSlash(w.Location.Source)))

	if first := w.Location.FirstLine(); first > 0 {
		physicalLocation.WithRegion(sarif.NewRegion().WithStartLine(first))
	}

	result.WithLocations([]*sarif.Location{
		sarif.NewLocationWithPhysicalLocation(physicalLocation),
	})

	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
