package reporter

import (
	"bufio"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gosmell/pkg/analysis"
)

const (
	// yamlIndent is the indentation used for yaml output.
	yamlIndent = 2

	// yamlDocumentStart opens every yaml report; an empty report is
	// written inline as "--- []".
	yamlDocumentStart = "---"
)

// YAMLRenderer writes the flattened warnings as a yaml sequence.
// Headings, sorting and color do not apply.
type YAMLRenderer struct {
	opts Options
}

// Compile-time interface check.
var _ Renderer = (*YAMLRenderer)(nil)

// NewYAMLRenderer creates a new yaml renderer.
func NewYAMLRenderer(opts Options) *YAMLRenderer {
	return &YAMLRenderer{opts: opts.withDefaults()}
}

// Render implements Renderer.
func (r *YAMLRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	records := newWarningRecords(report.Smells())
	if len(records) == 0 {
		if _, err := fmt.Fprintln(bw, yamlDocumentStart, "[]"); err != nil {
			return fmt.Errorf("write YAML: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(bw, yamlDocumentStart); err != nil {
		return fmt.Errorf("write YAML: %w", err)
	}

	encoder := yaml.NewEncoder(bw)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close YAML encoder: %w", err)
	}

	return nil
}
