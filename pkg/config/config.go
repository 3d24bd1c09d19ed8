package config

import "context"

// Config wraps the parsed configuration tree. Sections are optional at every
// level; accessors hand back empty mappings instead of failing so the engine
// can treat absence as a normal state.
type Config struct {
	root *Map
}

// New wraps a parsed root mapping.
func New(root *Map) Config {
	return Config{root: root}
}

// Empty reports whether the configuration has no entries at all.
func (c Config) Empty() bool {
	return c.root.Len() == 0
}

// Root exposes the underlying mapping.
func (c Config) Root() *Map {
	if c.root == nil {
		return &Map{}
	}
	return c.root
}

// Section returns the named top-level section, or an empty mapping when the
// section is absent or not a mapping.
func (c Config) Section(name string) *Map {
	return c.Root().GetMap(name)
}

// Actor, Input, Dataset, and Output name the recognised top-level sections.
const (
	SectionActor   = "actor"
	SectionInput   = "input"
	SectionDataset = "dataset"
	SectionOutput  = "output"
)

// Loader fetches raw configuration documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Parser turns a raw Document into a Config tree.
type Parser interface {
	Parse(doc Document) (Config, error)
}
