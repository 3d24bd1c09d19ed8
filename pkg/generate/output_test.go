package generate_test

import (
	"testing"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/generate"
	"github.com/goliatone/go-actorgen/pkg/testsupport"
)

func TestOutputSchema_SyntheticResultsProperty(t *testing.T) {
	got := asJSON(t, generate.OutputSchema(config.Config{}))

	want := `{"title":"","description":"","properties":` +
		`{"results":{"type":"string","title":"Results","template":"{{links.datasetItems}}"}}}`
	if got != want {
		t.Fatalf("schema mismatch:\nwant %s\ngot  %s", want, got)
	}
}

func TestOutputSchema_DeclaredProperties(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
output:
  title: Run Results
  description: What the run produced.
  properties:
    report:
      type: string
      title: Report
`)

	doc := generate.OutputSchema(cfg)

	if got := doc.GetString("title"); got != "Run Results" {
		t.Fatalf("title: %q", got)
	}
	properties := doc.GetMap("properties")
	if properties.Has("results") {
		t.Fatal("synthetic property must yield to declared ones")
	}
	if got := properties.GetMap("report").GetString("title"); got != "Report" {
		t.Fatalf("report title: %q", got)
	}
}
