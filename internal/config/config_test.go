package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte(`
protocol_version: "1.0"
workers: 8
output_buffer_capacity: 1000
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	schemaPath := filepath.Join("..", "..", "configs", "tuning.schema.json")
	got, err := Load(path, schemaPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Workers != 8 || got.OutputBufferCapacity != 1000 {
		t.Fatalf("unexpected tuning: %+v", got)
	}
	// Fields absent from the fixture keep their defaults.
	if got.ReversingAnchorLimit != Default().ReversingAnchorLimit {
		t.Fatalf("expected default reversing anchor limit to survive a partial override, got %d", got.ReversingAnchorLimit)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte(`
protocol_version: "1.0"
not_a_real_field: true
`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	schemaPath := filepath.Join("..", "..", "configs", "tuning.schema.json")
	if _, err := Load(path, schemaPath); err == nil {
		t.Fatalf("expected schema validation to reject an unknown field")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestSampleConfigLoadsAndValidates(t *testing.T) {
	schemaPath := filepath.Join("..", "..", "configs", "tuning.schema.json")
	samplePath := filepath.Join("..", "..", "configs", "tuning.yaml")
	got, err := Load(samplePath, schemaPath)
	if err != nil {
		t.Fatalf("the checked-in sample config should load and validate cleanly: %v", err)
	}
	if got.ProtocolVersion != "1.0" {
		t.Fatalf("unexpected protocol version: %q", got.ProtocolVersion)
	}
}
