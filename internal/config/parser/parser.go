// Package parser decodes raw configuration documents into the ordered
// config tree the engine consumes. YAML is the canonical format; JSON parses
// through the same path since YAML is a superset.
package parser

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-actorgen/pkg/config"
)

// Parser implements config.Parser on top of yaml.v3.
type Parser struct{}

var _ config.Parser = (*Parser)(nil)

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse decodes the document payload into a Config. An empty or null
// document yields an empty Config rather than an error; the validator is
// responsible for rejecting it.
func (p *Parser) Parse(doc config.Document) (config.Config, error) {
	return ParseBytes(doc.Raw())
}

// ParseBytes decodes a raw YAML/JSON payload into a Config.
func ParseBytes(raw []byte) (config.Config, error) {
	if len(raw) == 0 {
		return config.New(config.NewMap()), nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return config.Config{}, fmt.Errorf("config parser: %w", err)
	}

	root := documentRoot(&node)
	if root == nil || root.Kind == 0 || root.Tag == "!!null" {
		return config.New(config.NewMap()), nil
	}
	if root.Kind != yaml.MappingNode {
		return config.Config{}, ErrNotMapping
	}

	var tree config.Map
	if err := root.Decode(&tree); err != nil {
		return config.Config{}, fmt.Errorf("config parser: %w", err)
	}
	return config.New(&tree), nil
}

func documentRoot(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		return node.Content[0]
	}
	return node
}

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("config parser: document root must be a mapping")
