package config_test

import (
	"testing"

	"github.com/goliatone/go-actorgen/pkg/config"
)

func TestSourceFromURL(t *testing.T) {
	src, err := config.SourceFromURL("https://example.com/actor.yaml")
	if err != nil {
		t.Fatalf("valid url rejected: %v", err)
	}
	if src.Kind() != config.SourceKindURL {
		t.Fatalf("kind: %q", src.Kind())
	}
	if src.Location() != "https://example.com/actor.yaml" {
		t.Fatalf("location: %q", src.Location())
	}
}

func TestSourceFromURL_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unparseable", "http://bad url/actor.yaml"},
		{"unsupported scheme", "ftp://example.com/actor.yaml"},
		{"bare path", "actor.yaml"},
		{"missing host", "https:///actor.yaml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.SourceFromURL(tc.raw); err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
		})
	}
}

func TestSourceKinds(t *testing.T) {
	if src := config.SourceFromFile("configs/actor.yaml"); src.Kind() != config.SourceKindFile {
		t.Fatalf("file kind: %q", src.Kind())
	}
	if src := config.SourceFromFS("actor.yaml"); src.Kind() != config.SourceKindFS {
		t.Fatalf("fs kind: %q", src.Kind())
	}
}
