package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosmell/pkg/config"
)

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	result := config.Validate(config.NewConfig())
	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())
	assert.NoError(t, result.Err())
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.True(t, config.Validate(nil).Valid())
}

func TestValidate_NormalizesAbbreviations(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Output.Format = "J"
	cfg.Output.Sort = "issues"
	cfg.Output.Color = "ALWAYS"
	cfg.Input.Extensions = []string{"smells", ".yml"}

	result := config.Validate(cfg)
	require.True(t, result.Valid(), result.Err())

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, config.SortIssueCount, cfg.Output.Sort)
	assert.Equal(t, config.ColorAlways, cfg.Output.Color)
	assert.Equal(t, []string{".smells", ".yml"}, cfg.Input.Extensions)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "input.extensions[0]", result.Warnings[0].Field)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "unknown format", mutate: func(c *config.Config) { c.Output.Format = "xml" }, field: "output.format"},
		{name: "unknown color", mutate: func(c *config.Config) { c.Output.Color = "sometimes" }, field: "output.color"},
		{name: "negative jobs", mutate: func(c *config.Config) { c.Input.Jobs = -1 }, field: "input.jobs"},
		{name: "bad glob", mutate: func(c *config.Config) { c.Input.Exclude = []string{"ok/**", "[bad"} }, field: "input.exclude[1]"},
		{
			name: "html without path",
			mutate: func(c *config.Config) {
				c.Output.Format = "html"
				c.Output.HTMLPath = " "
			},
			field: "output.html-path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := config.Validate(cfg)
			require.False(t, result.Valid())
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.field, result.Errors[0].Field)
			assert.ErrorContains(t, result.Err(), tt.field)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Output.Format = "xml"
	cfg.Input.Jobs = -2

	result := config.ValidateWithFile(cfg, ".gosmell.yml")
	require.Len(t, result.Errors, 2)

	err := result.Err()
	assert.ErrorContains(t, err, ".gosmell.yml: output.format")
	assert.ErrorContains(t, err, ".gosmell.yml: input.jobs")
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    config.ColorMode
		wantErr bool
	}{
		{input: "", want: config.ColorAuto},
		{input: "auto", want: config.ColorAuto},
		{input: " Never ", want: config.ColorNever},
		{input: "always", want: config.ColorAlways},
		{input: "yes", wantErr: true},
	}

	for _, tt := range tests {
		got, err := config.ParseColorMode(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.True(t, got.IsValid())
	}
}

func TestParseSortOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  config.SortOrder
	}{
		{input: "", want: config.SortNone},
		{input: "none", want: config.SortNone},
		{input: "n", want: config.SortNone},
		{input: "issue-count", want: config.SortIssueCount},
		{input: "i", want: config.SortIssueCount},
		{input: "Issues", want: config.SortIssueCount},
		{input: "smelliness", want: config.SortNone},
		{input: "alphabetical", want: config.SortNone},
	}

	for _, tt := range tests {
		got := config.ParseSortOrder(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.True(t, got.IsValid())
	}

	assert.False(t, config.SortOrder("random").IsValid())
}
