package reporter

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/fsutil"
	"github.com/yaklabco/gosmell/pkg/langdetect"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// htmlSavedMessage confirms that the html report was written.
const htmlSavedMessage = "Html file saved\n"

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

// HTMLData is handed to the html template. It carries everything the
// template needs to reproduce the text report's header and total semantics.
type HTMLData struct {
	Title        string
	Examiners    []HTMLExaminer
	TotalCount   int
	TotalMessage string
	HasSmells    bool
	BySmellType  []analysis.SmellTypeAnalysis
	ByExaminer   []analysis.ExaminerAnalysis
}

// HTMLExaminer is one examiner as seen by the template.
type HTMLExaminer struct {
	Description string
	Language    string
	Count       int
	CountLabel  string
	ShowHeader  bool
	Warnings    []HTMLWarning
}

// HTMLWarning is one warning as seen by the template.
type HTMLWarning struct {
	Context   string
	Message   string
	SmellType string
	Location  string
	Line      string
	HelpURL   string
}

// HTMLRenderer writes the report to an html file and prints a confirmation.
type HTMLRenderer struct {
	opts      Options
	formatter WarningFormatter
}

// Compile-time interface check.
var _ Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer creates a new html renderer.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	opts = opts.withDefaults()
	return &HTMLRenderer{
		opts:      opts,
		formatter: opts.warningFormatter(),
	}
}

// Render implements Renderer. The file at HTMLPath is replaced atomically;
// any I/O failure is returned and no confirmation is printed.
func (r *HTMLRenderer) Render(ctx context.Context, report *analysis.Report) error {
	if report.HasSmells() && r.opts.SortByIssueCount {
		report.SortByIssueCount()
	}

	data := r.BuildData(report)

	err := fsutil.WriteAtomicFunc(ctx, r.opts.HTMLPath, 0, func(w io.Writer) error {
		return htmlTemplate.Execute(w, data)
	})
	if err != nil {
		return fmt.Errorf("write html report %s: %w", r.opts.HTMLPath, err)
	}

	if _, err := io.WriteString(r.opts.Writer, htmlSavedMessage); err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}
	return nil
}

// BuildData assembles the template data for report.
func (r *HTMLRenderer) BuildData(report *analysis.Report) *HTMLData {
	summary := analysis.Summarize(report)

	examiners := report.Examiners()
	data := &HTMLData{
		Title:        "gosmell report",
		Examiners:    make([]HTMLExaminer, 0, len(examiners)),
		TotalCount:   report.TotalSmellCount(),
		TotalMessage: totalLabel(report.TotalSmellCount()),
		HasSmells:    report.HasSmells(),
		BySmellType:  summary.BySmellType,
	}

	// Clean examiners stay out of the breakdown; the heading strategy
	// decides whether they appear at all.
	for _, ea := range summary.ByExaminer {
		if ea.Count > 0 {
			data.ByExaminer = append(data.ByExaminer, ea)
		}
	}

	for _, ex := range examiners {
		data.Examiners = append(data.Examiners, r.examinerData(ex))
	}

	return data
}

func (r *HTMLRenderer) examinerData(ex smell.Examiner) HTMLExaminer {
	smells := ex.Smells()
	he := HTMLExaminer{
		Description: ex.Description(),
		Language:    langdetect.FromPath(ex.Description()),
		Count:       len(smells),
		CountLabel:  countLabel(len(smells)),
		ShowHeader:  r.opts.Heading.ShowHeader(ex),
		Warnings:    make([]HTMLWarning, 0, len(smells)),
	}

	for _, w := range smells {
		hw := HTMLWarning{
			Context:   w.Context,
			Message:   w.Message,
			SmellType: w.SmellType,
			Line:      r.formatter.Format(w),
			HelpURL:   HelpLink(w.SmellType),
		}
		hw.Location = locationText(w)
		he.Warnings = append(he.Warnings, hw)
	}

	return he
}
