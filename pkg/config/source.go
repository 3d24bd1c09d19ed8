package config

import (
	"fmt"
	"net/url"
)

// A Source names where a configuration document comes from. The loader picks
// its read strategy from the kind: plain file paths in the common case, fs.FS
// entries for embedded or test fixtures, URLs for configs shared outside a
// checkout.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the supported source kinds.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

// SourceFromFile returns a Source for a path on the local filesystem.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: path}
}

// SourceFromFS returns a Source for an entry inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source for an http(s) URL. The URL is validated up
// front so a mistyped location fails before any loading starts.
func SourceFromURL(raw string) (Source, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config: parse source url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("config: source url %q: scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("config: source url %q: missing host", raw)
	}
	return source{kind: SourceKindURL, location: raw}, nil
}
