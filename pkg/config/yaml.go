package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c FormatCfg) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment
// prepended, used by `markdoc init` to annotate the written file.
func (c FormatCfg) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a FormatCfg from YAML bytes. Fields absent from data
// keep their Go zero value — callers that need defaults for missing keys
// should start from Default() and unmarshal on top of it instead.
func FromYAML(data []byte) (FormatCfg, error) {
	var cfg FormatCfg
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FormatCfg{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// YAMLIndent returns the default YAML indentation width, 2. No package in
// this repository calls it.
func YAMLIndent() int {
	return 2
}
