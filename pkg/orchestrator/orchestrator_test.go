package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-actorgen/internal/config/loader"
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/orchestrator"
	"github.com/goliatone/go-actorgen/pkg/testsupport"
)

const scraperConfig = `
actor:
  name: product-scraper
  title: Product Scraper
input:
  fields:
    query:
      type: string
    limit:
      type: integer
      default: 10
  required: [query]
dataset:
  fields:
    name: {}
    price:
      type: number
    photo_url: {}
  views:
    overview:
      fields: [name, price, photo_url]
output:
  title: Scrape Results
`

func TestGenerate_EndToEnd(t *testing.T) {
	cfg := testsupport.ParseConfig(t, scraperConfig)

	bundle, err := orchestrator.New().Generate(context.Background(), orchestrator.Request{Config: &cfg})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bundle.Validation.Valid {
		t.Fatalf("expected a valid config: %v", bundle.Validation.Errors)
	}
	if len(bundle.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", bundle.Warnings)
	}

	if got := bundle.Manifest.GetString("name"); got != "product-scraper" {
		t.Fatalf("manifest name: %q", got)
	}
	if got := bundle.InputSchema.GetString("title"); got != "Product Scraper" {
		t.Fatalf("input title: %q", got)
	}

	price := bundle.DatasetSchema.GetMap("fields").GetMap("price")
	priceJSON, err := json.Marshal(price)
	if err != nil {
		t.Fatalf("marshal price: %v", err)
	}
	if string(priceJSON) != `{"type":["number","null"]}` {
		t.Fatalf("price schema: %s", priceJSON)
	}

	display := bundle.DatasetSchema.GetMap("views").GetMap("overview").GetMap("display")
	priceDisplay, err := json.Marshal(display.GetMap("properties").GetMap("price"))
	if err != nil {
		t.Fatalf("marshal price display: %v", err)
	}
	if string(priceDisplay) != `{"label":"Price","format":"text"}` {
		t.Fatalf("price display: %s", priceDisplay)
	}

	limit, ok := bundle.Defaults.Get("limit")
	if !ok || limit != 10 {
		t.Fatalf("defaults limit: %v (present=%v)", limit, ok)
	}
}

func TestGenerate_FromSource(t *testing.T) {
	files := fstest.MapFS{
		"actor.yaml": &fstest.MapFile{Data: []byte(scraperConfig)},
	}
	gen := orchestrator.New(orchestrator.WithLoader(loader.New(config.LoaderOptions{FileSystem: files})))

	bundle, err := gen.Generate(context.Background(), orchestrator.Request{Source: config.SourceFromFS("actor.yaml")})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := bundle.Manifest.GetString("name"); got != "product-scraper" {
		t.Fatalf("manifest name: %q", got)
	}
}

func TestGenerate_BestEffortOnInvalidConfig(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
dataset:
  fields:
    name: {}
  views:
    overview:
      fields: [name, ghost]
`)

	var warned []string
	gen := orchestrator.New(orchestrator.WithWarnFunc(func(msg string) {
		warned = append(warned, msg)
	}))

	bundle, err := gen.Generate(context.Background(), orchestrator.Request{Config: &cfg})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bundle.Validation.Valid {
		t.Fatal("validation should fail")
	}
	if bundle.DatasetSchema == nil || bundle.Manifest == nil {
		t.Fatal("documents should still be generated")
	}
	if diff := cmp.Diff([]string{`view "overview": skipping unknown field "ghost"`}, warned); diff != "" {
		t.Fatalf("warnings (-want +got):\n%s", diff)
	}
}

func TestGenerate_StrictMode(t *testing.T) {
	cfg := testsupport.ParseConfig(t, "dataset:\n  fields:\n    name: {}\n")

	bundle, err := orchestrator.New(orchestrator.WithStrict()).
		Generate(context.Background(), orchestrator.Request{Config: &cfg})
	if !errors.Is(err, orchestrator.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if bundle.Validation.Valid {
		t.Fatal("bundle should carry the failed validation")
	}
	if bundle.Manifest != nil {
		t.Fatal("strict mode should stop before generating documents")
	}
}

func TestGenerate_RequiresSourceOrConfig(t *testing.T) {
	_, err := orchestrator.New().Generate(context.Background(), orchestrator.Request{})
	if err == nil {
		t.Fatal("expected an error for an empty request")
	}
}

func TestLoadConfig(t *testing.T) {
	files := fstest.MapFS{
		"actor.yaml": &fstest.MapFile{Data: []byte("actor:\n  name: demo\n")},
	}
	gen := orchestrator.New(orchestrator.WithLoader(loader.New(config.LoaderOptions{FileSystem: files})))

	cfg, err := gen.LoadConfig(context.Background(), config.SourceFromFS("actor.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := cfg.Section(config.SectionActor).GetString("name"); got != "demo" {
		t.Fatalf("actor.name: %q", got)
	}
}
