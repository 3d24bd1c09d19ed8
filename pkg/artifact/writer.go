// Package artifact persists a generated document bundle to disk. It is a
// thin adapter around the pure derivation core: the engine never calls it.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/orchestrator"
)

// Fixed relative file names for the generated documents.
const (
	ManifestFile      = "actor.json"
	InputSchemaFile   = "input_schema.json"
	DatasetSchemaFile = "dataset_schema.json"
	OutputSchemaFile  = "output_schema.json"
)

// Writer persists bundles as pretty-printed JSON under a base directory.
type Writer struct {
	dir string
}

// NewWriter constructs a Writer rooted at dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteBundle writes the four documents to their fixed relative paths.
func (w *Writer) WriteBundle(bundle orchestrator.Bundle) error {
	if w.dir == "" {
		return errors.New("artifact: output directory is required")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create output dir: %w", err)
	}

	documents := []struct {
		name string
		doc  *config.Map
	}{
		{ManifestFile, bundle.Manifest},
		{InputSchemaFile, bundle.InputSchema},
		{DatasetSchemaFile, bundle.DatasetSchema},
		{OutputSchemaFile, bundle.OutputSchema},
	}
	for _, entry := range documents {
		if err := writeJSON(filepath.Join(w.dir, entry.name), entry.doc); err != nil {
			return err
		}
	}
	return nil
}

// WriteInput writes the defaults mapping to the caller-chosen INPUT.json
// path.
func (w *Writer) WriteInput(path string, values *config.Map) error {
	if path == "" {
		return errors.New("artifact: input path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("artifact: create input dir: %w", err)
		}
	}
	return writeJSON(path, values)
}

func writeJSON(path string, doc *config.Map) error {
	if doc == nil {
		doc = config.NewMap()
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("artifact: marshal %s: %w", filepath.Base(path), err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", filepath.Base(path), err)
	}
	return nil
}
