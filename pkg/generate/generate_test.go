package generate_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/generate"
	"github.com/goliatone/go-actorgen/pkg/testsupport"
)

func asJSON(t *testing.T, doc *config.Map) string {
	t.Helper()

	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	return string(payload)
}

// Generators are pure: the same tree must serialize to the same bytes on
// every run.
func TestGenerators_Idempotent(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
actor:
  name: demo
input:
  fields:
    query:
      type: string
    limit:
      type: integer
      default: 10
dataset:
  fields:
    price:
      type: number
  views:
    overview:
      fields: [price]
`)

	first := snapshot(t, cfg)
	second := snapshot(t, cfg)
	if first != second {
		t.Fatalf("generation is not idempotent:\nfirst  %s\nsecond %s", first, second)
	}
}

func snapshot(t *testing.T, cfg config.Config) string {
	t.Helper()

	dataset, _ := generate.DatasetSchema(cfg)
	return asJSON(t, generate.Manifest(cfg)) +
		asJSON(t, generate.InputSchema(cfg)) +
		asJSON(t, dataset) +
		asJSON(t, generate.OutputSchema(cfg)) +
		asJSON(t, generate.Defaults(cfg))
}
