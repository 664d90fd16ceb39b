package reporter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// MarkdownRenderer formats a report as a GitHub-flavored markdown document,
// suitable for pull request comments and job summaries.
type MarkdownRenderer struct {
	opts      Options
	formatter WarningFormatter
}

// Compile-time interface check.
var _ Renderer = (*MarkdownRenderer)(nil)

// NewMarkdownRenderer creates a new markdown renderer.
func NewMarkdownRenderer(opts Options) *MarkdownRenderer {
	opts = opts.withDefaults()
	return &MarkdownRenderer{
		opts:      opts,
		formatter: opts.warningFormatter(),
	}
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.HasSmells() && r.opts.SortByIssueCount {
		report.SortByIssueCount()
	}

	md := markdown.NewMarkdown(r.opts.Writer)
	md.H1("Code Smells")
	md.PlainText("")
	md.PlainText(totalLabel(report.TotalSmellCount()))
	md.PlainText("")

	summary := analysis.Summarize(report)
	if len(summary.BySmellType) > 0 {
		rows := make([][]string, 0, len(summary.BySmellType))
		for _, sta := range summary.BySmellType {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](%s)", sta.SmellType, HelpLink(sta.SmellType)),
				strconv.Itoa(sta.Count),
			})
		}
		md.H2("By Smell Type")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Smell Type", "Count"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	for _, ex := range report.Examiners() {
		r.writeExaminer(md, ex)
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func (r *MarkdownRenderer) writeExaminer(md *markdown.Markdown, ex smell.Examiner) {
	if !r.opts.Heading.ShowHeader(ex) {
		return
	}

	md.H2f("%s -- %s", ex.Description(), countLabel(ex.SmellsCount()))
	md.PlainText("")
	if !ex.Smelly() {
		return
	}

	rows := make([][]string, 0, ex.SmellsCount())
	for _, w := range ex.Smells() {
		rows = append(rows, []string{
			escapeMarkdown(r.formatter.Format(w)),
			fmt.Sprintf("[%s](%s)", w.SmellType, HelpLink(w.SmellType)),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Warning", "Smell Type"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeMarkdown escapes characters that would break a table cell.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
