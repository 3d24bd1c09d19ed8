package artifact_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-actorgen/pkg/artifact"
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/orchestrator"
	"github.com/goliatone/go-actorgen/pkg/testsupport"
)

func TestWriter_WriteBundle(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
actor:
  name: demo
dataset:
  fields:
    name: {}
`)
	bundle, err := orchestrator.New().Generate(context.Background(), orchestrator.Request{Config: &cfg})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dir := filepath.Join(t.TempDir(), ".actor")
	if err := artifact.NewWriter(dir).WriteBundle(bundle); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	for _, name := range []string{
		artifact.ManifestFile,
		artifact.InputSchemaFile,
		artifact.DatasetSchemaFile,
		artifact.OutputSchemaFile,
	} {
		payload, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.HasSuffix(string(payload), "\n") {
			t.Fatalf("%s should end with a newline", name)
		}
		var decoded map[string]any
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("%s is not valid JSON: %v", name, err)
		}
	}
}

func TestWriter_WriteInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage", "INPUT.json")
	values := config.NewMap().Set("limit", 10).Set("query", "shoes")

	if err := artifact.NewWriter(t.TempDir()).WriteInput(path, values); err != nil {
		t.Fatalf("write input: %v", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	want := "{\n  \"limit\": 10,\n  \"query\": \"shoes\"\n}\n"
	if string(payload) != want {
		t.Fatalf("input mismatch:\nwant %q\ngot  %q", want, payload)
	}
}

func TestWriter_NilDocumentsWriteEmptyObjects(t *testing.T) {
	dir := t.TempDir()
	if err := artifact.NewWriter(dir).WriteBundle(orchestrator.Bundle{}); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, artifact.ManifestFile))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if got := strings.TrimSpace(string(payload)); got != "{}" {
		t.Fatalf("manifest: %q", got)
	}
}

func TestWriter_RequiresDirectory(t *testing.T) {
	if err := artifact.NewWriter("").WriteBundle(orchestrator.Bundle{}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	if err := artifact.NewWriter(t.TempDir()).WriteInput("", config.NewMap()); err == nil {
		t.Fatal("expected an error for a missing input path")
	}
}
