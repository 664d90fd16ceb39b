package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/yaklabco/gosmell/internal/configloader"
	"github.com/yaklabco/gosmell/internal/logging"
	"github.com/yaklabco/gosmell/pkg/config"
	"github.com/yaklabco/gosmell/pkg/reporter"
	"github.com/yaklabco/gosmell/pkg/runner"
)

type reportFlags struct {
	format        string
	noColor       bool
	emptyHeadings bool
	lineNumbers   bool
	noLineNumbers bool
	singleLine    bool
	wikiLinks     bool
	sort          string
	htmlPath      string
	compact       bool
	jobs          int
	exclude       []string
	extensions    []string
}

// flagKeys maps command line flags to the config keys they override.
//
//nolint:gochecknoglobals // Read-only lookup table.
var flagKeys = map[string]string{
	"format":         "output.format",
	"color":          "output.color",
	"empty-headings": "output.empty-headings",
	"line-numbers":   "output.line-numbers",
	"single-line":    "output.single-line",
	"wiki-links":     "output.wiki-links",
	"sort":           "output.sort",
	"html-path":      "output.html-path",
	"compact":        "output.compact",
	"jobs":           "input.jobs",
	"exclude":        "input.exclude",
	"extensions":     "input.extensions",
}

func newReportCommand(info BuildInfo) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [paths...]",
		Short: "Report the smells in analysis result documents",
		Long:  reportLongDescription(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, info)
		},
	}

	addReportFlags(cmd, flags)

	return cmd
}

func reportLongDescription() string {
	var b strings.Builder
	b.WriteString(`Report the smells in analysis result documents.

Paths may be result documents or directories, which are searched for .yml,
.yaml and .json files. "-" reads a document from stdin; without paths a piped
stdin is read, otherwise the current directory is searched.

The exit status is 0 when no smells were reported, 2 when smells were
reported and 1 on errors.

Examples:
  gosmell report results.yml              # Colored text report
  gosmell report -n -U results/           # Line numbers and wiki links
  gosmell report -f html results.json     # Write reek.html
  analyzer --format yaml | gosmell report # Read results from stdin

Environment:
`)

	vars := configloader.ListEnvVars()
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(&b, "  %-30s %s\n", name, vars[name])
	}

	return strings.TrimRight(b.String(), "\n")
}

func addReportFlags(cmd *cobra.Command, flags *reportFlags) {
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text",
		"report format: text, yaml, json, html, sarif, markdown")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output (same as --color never)")
	cmd.Flags().BoolVarP(&flags.emptyHeadings, "empty-headings", "V", false,
		"show headings for files without smells")
	cmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", true,
		"prefix warnings with source and line numbers")
	cmd.Flags().BoolVar(&flags.noLineNumbers, "no-line-numbers", false, "omit source and line numbers")
	cmd.Flags().BoolVarP(&flags.singleLine, "single-line", "s", false,
		"prefix warnings with source and first line, one line per warning")
	cmd.Flags().BoolVarP(&flags.wikiLinks, "wiki-links", "U", false, "append a documentation link to every warning")
	cmd.Flags().StringVar(&flags.sort, "sort", "none", "examiner order: none, issue-count")
	cmd.Flags().StringVar(&flags.htmlPath, "html-path", reporter.DefaultHTMLPath, "file written by the html format")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact json output")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel decoders (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns of result documents to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "result document extensions to search for")
}

// flagOverrides collects the flags the user set, keyed by config path.
func flagOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "no-color":
			if f.Value.String() == "true" {
				overrides["output.color"] = string(config.ColorNever)
			}
			return
		case "no-line-numbers":
			if f.Value.String() == "true" {
				overrides["output.line-numbers"] = false
			}
			return
		}

		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			overrides[key] = slice.GetSlice()
			return
		}
		overrides[key] = f.Value.String()
	})

	return overrides
}

func runReport(cmd *cobra.Command, args []string, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Overrides:    flagOverrides(cmd.Flags()),
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	ctx = logging.WithFields(ctx, logging.FieldFormat, cfg.Output.Format)
	logger = logging.FromContext(ctx)
	logger.Debug("configuration resolved",
		logging.FieldColor, cfg.Output.Color,
		logging.FieldSort, cfg.Output.Sort,
		logging.FieldJobs, cfg.Input.Jobs,
	)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Input.Extensions,
		ExcludeGlobs: cfg.Input.Exclude,
		Jobs:         cfg.Input.Jobs,
	}
	stdin := cmd.InOrStdin()
	if readsStdin(args, stdin) {
		runOpts.Paths = []string{runner.StdinPath}
	}
	if slices.Contains(runOpts.Paths, runner.StdinPath) {
		runOpts.Stdin = stdin
	}

	logger.Debug("reading results",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	start := time.Now()
	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	logger.Debug("results decoded",
		logging.FieldDocuments, result.Stats.DocumentsDiscovered,
		logging.FieldExaminers, result.Stats.Examiners,
		logging.FieldSmellyExaminers, result.Stats.SmellyExaminers,
		logging.FieldWarnings, result.Stats.Warnings,
		logging.FieldDuration, time.Since(start),
	)

	rep, err := reporter.New(reportOptions(cfg, info, cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	for _, ex := range result.Examiners() {
		rep.AddExaminer(ex)
	}

	if err := rep.Show(ctx); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if rep.HasSmells() {
		return ErrSmellsFound
	}
	return nil
}

// reportOptions translates the resolved configuration into reporter options.
func reportOptions(cfg *config.Config, info BuildInfo, w io.Writer) reporter.Options {
	heading := reporter.HeadingQuiet
	if cfg.Output.EmptyHeadings {
		heading = reporter.HeadingVerbose
	}

	location := reporter.LocationBlank
	switch {
	case cfg.Output.SingleLine:
		location = reporter.LocationSingleLine
	case cfg.Output.LineNumbers:
		location = reporter.LocationDefault
	}

	verbosity := reporter.VerbositySimple
	if cfg.Output.WikiLinks {
		verbosity = reporter.VerbosityWikiLinks
	}

	return reporter.Options{
		Writer:           w,
		Format:           reporter.Format(cfg.Output.Format),
		Color:            string(cfg.Output.Color),
		Heading:          heading,
		Location:         location,
		Verbosity:        verbosity,
		SortByIssueCount: cfg.Output.Sort == config.SortIssueCount,
		HTMLPath:         cfg.Output.HTMLPath,
		Compact:          cfg.Output.Compact,
		ToolVersion:      info.Version,
	}
}

// readsStdin reports whether results come from stdin: no paths were given
// and stdin is a pipe or a redirected file rather than a terminal.
func readsStdin(args []string, in io.Reader) bool {
	if len(args) > 0 || in == nil {
		return false
	}

	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeNamedPipe != 0 || info.Mode().IsRegular()
}
