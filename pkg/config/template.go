package config

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Template formats accepted by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every option with its default value.
	// If false, the options are commented out.
	Full bool

	// Format is the output format: "yaml" or "toml".
	Format string
}

// templateOption documents one configuration key.
type templateOption struct {
	key     string
	comment string
	value   func(*Config) any
}

// templateSection groups options under a top-level key.
type templateSection struct {
	name    string
	options []templateOption
}

//nolint:gochecknoglobals // Read-only lookup table.
var templateSections = []templateSection{
	{name: "output", options: []templateOption{
		{key: "format", comment: "Report format: text, yaml, json, html, sarif or markdown",
			value: func(c *Config) any { return c.Output.Format }},
		{key: "color", comment: "Colorize text output: auto, always or never",
			value: func(c *Config) any { return string(c.Output.Color) }},
		{key: "empty-headings", comment: "Show headings for files without warnings",
			value: func(c *Config) any { return c.Output.EmptyHeadings }},
		{key: "line-numbers", comment: "Prefix warnings with their source and line numbers",
			value: func(c *Config) any { return c.Output.LineNumbers }},
		{key: "single-line", comment: "Prefix warnings with their first line and fold them onto one line",
			value: func(c *Config) any { return c.Output.SingleLine }},
		{key: "wiki-links", comment: "Append a documentation link to every warning",
			value: func(c *Config) any { return c.Output.WikiLinks }},
		{key: "sort", comment: "Examiner order: none or issue-count",
			value: func(c *Config) any { return string(c.Output.Sort) }},
		{key: "html-path", comment: "File written by the html format",
			value: func(c *Config) any { return c.Output.HTMLPath }},
		{key: "compact", comment: "Disable indentation in json output",
			value: func(c *Config) any { return c.Output.Compact }},
	}},
	{name: "input", options: []templateOption{
		{key: "jobs", comment: "Number of parallel decoders (0 = auto)",
			value: func(c *Config) any { return c.Input.Jobs }},
		{key: "exclude", comment: "Glob patterns for result documents to skip",
			value: func(c *Config) any { return c.Input.Exclude }},
		{key: "extensions", comment: "Result document extensions (empty = .yml, .yaml, .json)",
			value: func(c *Config) any { return c.Input.Extensions }},
	}},
}

// GenerateTemplate creates a configuration file template populated with the
// default settings.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = TemplateYAML
	}
	if format != TemplateYAML && format != TemplateTOML {
		return nil, fmt.Errorf("invalid template format %q: must be yaml or toml", opts.Format)
	}

	defaults := NewConfig()
	commentOut := ""
	if !opts.Full {
		commentOut = "# "
	}

	var buf bytes.Buffer
	buf.WriteString("# gosmell configuration\n# See: https://github.com/yaklabco/gosmell\n")

	for _, section := range templateSections {
		buf.WriteByte('\n')
		if format == TemplateTOML {
			fmt.Fprintf(&buf, "%s[%s]\n", commentOut, section.name)
		} else {
			fmt.Fprintf(&buf, "%s%s:\n", commentOut, section.name)
		}

		for _, opt := range section.options {
			value := opt.value(defaults)
			if format == TemplateTOML {
				fmt.Fprintf(&buf, "# %s\n%s%s = %s\n", opt.comment, commentOut, opt.key, tomlValue(value))
			} else {
				fmt.Fprintf(&buf, "  # %s\n%s  %s: %s\n", opt.comment, commentOut, opt.key, yamlValue(value))
			}
		}
	}

	return buf.Bytes(), nil
}

func yamlValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return "[" + strings.Join(val, ", ") + "]"
	default:
		return fmt.Sprint(val)
	}
}

func tomlValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
