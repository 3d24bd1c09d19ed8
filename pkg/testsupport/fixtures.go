// Package testsupport carries fixture loaders and golden-file helpers shared
// by the package tests.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	internalParser "github.com/goliatone/go-actorgen/internal/config/parser"
	"github.com/goliatone/go-actorgen/pkg/config"
)

// LoadConfig reads a fixture and parses it into a Config. Testing helpers
// fail the test on error to keep contract tests concise.
func LoadConfig(t *testing.T, path string) config.Config {
	t.Helper()

	cfg, err := LoadConfigFromPath(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// LoadConfigFromPath parses a fixture without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadConfigFromPath(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, errors.New("testsupport: config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("testsupport: read config: %w", err)
	}
	return internalParser.ParseBytes(data)
}

// ParseConfig parses an inline YAML snippet into a Config.
func ParseConfig(t *testing.T, raw string) config.Config {
	t.Helper()

	cfg, err := internalParser.ParseBytes([]byte(raw))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

// CompareGolden diffs want against got and returns a human-readable diff,
// empty when they match.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// WriteGolden writes data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, data []byte) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden loads a golden file's raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	return data
}
