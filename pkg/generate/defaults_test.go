package generate_test

import (
	"testing"

	"github.com/goliatone/go-actorgen/pkg/generate"
	"github.com/goliatone/go-actorgen/pkg/testsupport"
)

func TestDefaults_Precedence(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
input:
  fields:
    limit:
      type: integer
      prefill: 5
      default: 10
    offset:
      type: integer
      prefill: 20
    deep_scrape:
      type: boolean
    retries:
      type: integer
    tags:
      array: true
    query:
      type: string
`)

	got := asJSON(t, generate.Defaults(cfg))

	want := `{"limit":10,"offset":20,"deep_scrape":false,"retries":0,"tags":[]}`
	if got != want {
		t.Fatalf("defaults mismatch:\nwant %s\ngot  %s", want, got)
	}
}

func TestDefaults_StringsGetNoSynthesizedEntry(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
input:
  fields:
    query: {}
    note:
      type: string
`)

	doc := generate.Defaults(cfg)
	if doc.Len() != 0 {
		t.Fatalf("string fields must be omitted: %s", asJSON(t, doc))
	}
}

func TestDefaults_ExplicitBooleanBeatsZero(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
input:
  fields:
    enabled:
      type: boolean
      default: true
`)

	doc := generate.Defaults(cfg)
	value, ok := doc.Get("enabled")
	if !ok || value != true {
		t.Fatalf("enabled: %v (present=%v)", value, ok)
	}
}

func TestDefaults_OverlayWinsLast(t *testing.T) {
	cfg := testsupport.ParseConfig(t, `
input:
  fields:
    limit:
      type: integer
      default: 10
    query:
      type: string
  defaults:
    limit: 50
    query: shoes
`)

	got := asJSON(t, generate.Defaults(cfg))

	want := `{"limit":50,"query":"shoes"}`
	if got != want {
		t.Fatalf("defaults mismatch:\nwant %s\ngot  %s", want, got)
	}
}
