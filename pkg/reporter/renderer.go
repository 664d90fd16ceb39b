package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gosmell/pkg/analysis"
)

// Renderer formats an analysis.Report for output.
// Renderers only handle presentation; the report is built by the caller.
type Renderer interface {
	// Render writes the formatted report to the configured output.
	Render(ctx context.Context, report *analysis.Report) error
}

// NewRenderer creates the Renderer for opts.Format.
func NewRenderer(opts Options) (Renderer, error) {
	opts = opts.withDefaults()
	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	switch opts.Format {
	case FormatText:
		return NewTextRenderer(opts), nil
	case FormatYAML:
		return NewYAMLRenderer(opts), nil
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatHTML:
		return NewHTMLRenderer(opts), nil
	case FormatSARIF:
		return NewSARIFRenderer(opts), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}
