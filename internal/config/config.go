// Package config loads the optional tuning.yaml that overrides worker
// count, output buffer capacity, and diagnostic tracing, validating it
// against the schema in configs/tuning.schema.json before use.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

type Trace struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"`
}

type Tuning struct {
	ProtocolVersion string `yaml:"protocol_version"`

	Workers                       int `yaml:"workers"`
	OutputBufferCapacity          int `yaml:"output_buffer_capacity"`
	ReversingAnchorLimit          int `yaml:"reversing_anchor_limit"`
	ProgressReportEveryCandidates int `yaml:"progress_report_every_candidates"`

	Trace Trace `yaml:"trace"`
}

// Default returns the tuning values the CLI falls back to when no config
// file is given.
func Default() Tuning {
	return Tuning{
		ProtocolVersion:               "1.0",
		Workers:                       0,
		OutputBufferCapacity:          20_000_000,
		ReversingAnchorLimit:          10,
		ProgressReportEveryCandidates: 50_000_000,
	}
}

// Load reads and validates path, falling back to Default for any field the
// file omits. schemaPath is the JSON Schema to validate the raw YAML
// document against before unmarshaling into Tuning.
func Load(path, schemaPath string) (Tuning, error) {
	t := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}

	if schemaPath != "" {
		if err := validate(raw, schemaPath); err != nil {
			return t, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func validate(raw []byte, schemaPath string) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	// jsonschema validates plain JSON-shaped values (map[string]any with
	// string keys); round-trip through encoding/json to normalize what
	// yaml.v3 produces (map[any]any at nested levels in older releases).
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var normalized any
	if err := json.Unmarshal(asJSON, &normalized); err != nil {
		return err
	}

	schema, err := jsonschema.Compile(filepath.ToSlash(schemaPath))
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}
	return schema.Validate(normalized)
}
