package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosmell/pkg/config"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Output.Format = "markdown"
	original.Output.Sort = config.SortIssueCount
	original.Input.Exclude = []string{"vendor/**"}

	var buf bytes.Buffer
	require.NoError(t, original.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "empty-headings: false")
	assert.Contains(t, buf.String(), "html-path: reek.html")

	parsed, err := config.FromYAML(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestFromYAML_KeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("output:\n  wiki-links: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Output.WikiLinks)
	assert.True(t, cfg.Output.LineNumbers)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("output: [\n"))
	require.Error(t, err)
}

func TestWriteYAML_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, config.NewConfig().WriteYAML(&buf, "resolved configuration", "source: .gosmell.yml"))
	assert.True(t, strings.HasPrefix(buf.String(),
		"# resolved configuration\n# source: .gosmell.yml\n\noutput:\n"), "got %q", buf.String())

	buf.Reset()
	require.NoError(t, config.NewConfig().WriteYAML(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "output:\n"))
}
