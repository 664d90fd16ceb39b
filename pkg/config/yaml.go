package config

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLIndent is the indentation used when encoding configuration.
const YAMLIndent = 2

// WriteYAML encodes c to w. Each header line is written first as a
// comment, followed by a blank line.
func (c *Config) WriteYAML(w io.Writer, header ...string) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush config: %w", flushErr)
		}
	}()

	for _, line := range header {
		if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if len(header) > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	encoder := yaml.NewEncoder(bw)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// FromYAML parses a configuration from YAML bytes on top of the defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}
