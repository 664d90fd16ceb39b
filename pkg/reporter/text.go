package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gosmell/internal/ui/pretty"
	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// TextRenderer formats a report as styled terminal output.
type TextRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter WarningFormatter
}

// Compile-time interface check.
var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	opts = opts.withDefaults()
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:      opts,
		styles:    pretty.NewStyles(colorEnabled),
		formatter: opts.warningFormatter(),
	}
}

// Render implements Renderer.
//
// Each examiner contributes a block of an optional header followed by its
// indented warning lines. Empty blocks are dropped and the rest are joined
// with newlines. A total line follows only when more than one examiner was
// reported.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.HasSmells() && r.opts.SortByIssueCount {
		report.SortByIssueCount()
	}

	examiners := report.Examiners()
	blocks := make([]string, 0, len(examiners))
	for _, ex := range examiners {
		if block := r.block(ex); block != "" {
			blocks = append(blocks, block)
		}
	}

	if _, err := fmt.Fprint(bw, strings.Join(blocks, "\n")); err != nil {
		return fmt.Errorf("write examiners: %w", err)
	}

	if len(examiners) > 1 {
		if _, err := fmt.Fprint(bw, "\n", r.totalMessage(report)); err != nil {
			return fmt.Errorf("write total: %w", err)
		}
	}

	return nil
}

// block renders one examiner: an optional header and, when smelly, a colon
// followed by the indented warning lines.
func (r *TextRenderer) block(ex smell.Examiner) string {
	var b strings.Builder
	if r.opts.Heading.ShowHeader(ex) {
		b.WriteString(Header(ex, r.styles))
	}
	if ex.Smelly() {
		b.WriteString(":\n")
		b.WriteString(FormatList(ex.Smells(), r.formatter))
	}
	return b.String()
}

// totalMessage renders "<N> total warning(s)\n", green when clean, red
// otherwise. The newline sits inside the color pair.
func (r *TextRenderer) totalMessage(report *analysis.Report) string {
	style := r.styles.NoWarnings
	if report.HasSmells() {
		style = r.styles.Warnings
	}
	return style.Render(totalLabel(report.TotalSmellCount()) + "\n")
}
