package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/gosmell/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gosmell" {
		t.Errorf("expected Use to be 'gosmell', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"report", "init", "config", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q to exist", name)
		}
	}
}

func TestReportCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	reportCmd, _, err := cmd.Find([]string{"report"})
	if err != nil {
		t.Fatalf("report command not found: %v", err)
	}

	flags := map[string]string{
		"format":          "f",
		"no-color":        "",
		"empty-headings":  "V",
		"line-numbers":    "n",
		"no-line-numbers": "",
		"single-line":     "s",
		"wiki-links":      "U",
		"sort":            "",
		"html-path":       "",
		"compact":         "",
		"jobs":            "j",
		"exclude":         "",
		"extensions":      "",
	}

	for name, shorthand := range flags {
		flag := reportCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected flag %q to exist", name)
			continue
		}
		if flag.Shorthand != shorthand {
			t.Errorf("flag %q shorthand = %q, want %q", name, flag.Shorthand, shorthand)
		}
	}
}

func TestReportCommandDefaults(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	reportCmd, _, err := cmd.Find([]string{"report"})
	if err != nil {
		t.Fatalf("report command not found: %v", err)
	}

	defaults := map[string]string{
		"format":       "text",
		"line-numbers": "true",
		"sort":         "none",
		"html-path":    "reek.html",
		"jobs":         "0",
	}

	for name, want := range defaults {
		if got := reportCmd.Flags().Lookup(name).DefValue; got != want {
			t.Errorf("flag %q default = %q, want %q", name, got, want)
		}
	}
}

func TestReportCommandLongListsEnvVars(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	reportCmd, _, err := cmd.Find([]string{"report"})
	if err != nil {
		t.Fatalf("report command not found: %v", err)
	}

	for _, name := range []string{"GOSMELL_OUTPUT_FORMAT", "GOSMELL_OUTPUT_EMPTY_HEADINGS", "GOSMELL_INPUT_JOBS"} {
		if !strings.Contains(reportCmd.Long, name) {
			t.Errorf("expected Long description to mention %s", name)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"smells found", cli.ErrSmellsFound, cli.ExitSmellsFound},
		{"wrapped smells found", fmt.Errorf("report: %w", cli.ErrSmellsFound), cli.ExitSmellsFound},
		{"other error", errors.New("boom"), cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeValues(t *testing.T) {
	t.Parallel()

	if cli.ExitSuccess != 0 || cli.ExitError != 1 || cli.ExitSmellsFound != 2 {
		t.Errorf("unexpected exit codes: success=%d error=%d smells=%d",
			cli.ExitSuccess, cli.ExitError, cli.ExitSmellsFound)
	}
}

func TestReportHelp(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"report", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("report --help: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Usage:", "gosmell report [paths...]", "Flags:", "-f, --format string", "Global Flags:", "--debug"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}
