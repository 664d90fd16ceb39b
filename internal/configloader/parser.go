package configloader

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// yamlParser implements koanf.Parser on top of gopkg.in/yaml.v3.
type yamlParser struct{}

// Unmarshal parses YAML bytes into a nested map.
func (yamlParser) Unmarshal(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return out, nil
}

// Marshal serializes a nested map to YAML.
func (yamlParser) Marshal(m map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}

// parserFor chooses the koanf parser for a config file by extension.
func parserFor(path string) koanf.Parser {
	if IsTOMLConfig(path) {
		return toml.Parser()
	}
	return yamlParser{}
}
