package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping that remembers the order keys were first
// inserted. The generators rely on that order twice: merge semantics across
// field groups follow the source declaration order, and every generated
// document must serialize with stable key order.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered mapping.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Len reports the number of entries. Safe on a nil receiver.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order as a defensive copy.
func (m *Map) Keys() []string {
	if m == nil || len(m.keys) == 0 {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Has reports whether the key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the raw value for key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key, appending the key when it is new and keeping
// its original position otherwise. Returns the receiver for chaining.
func (m *Map) Set(key string, value any) *Map {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// GetMap returns the nested Map stored under key. A missing key or a
// non-mapping value yields an empty Map so section access never fails.
func (m *Map) GetMap(key string) *Map {
	if value, ok := m.Get(key); ok {
		if nested, ok := value.(*Map); ok && nested != nil {
			return nested
		}
	}
	return &Map{}
}

// GetString returns the string stored under key, or "" when absent or not a
// string.
func (m *Map) GetString(key string) string {
	if value, ok := m.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// GetBool returns the boolean stored under key, or false when absent or not
// a boolean.
func (m *Map) GetBool(key string) bool {
	if value, ok := m.Get(key); ok {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return false
}

// GetStrings returns the sequence stored under key filtered to its string
// elements, preserving order.
func (m *Map) GetStrings(key string) []string {
	value, ok := m.Get(key)
	if !ok {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// UnmarshalYAML decodes a YAML mapping node into the Map, preserving the
// document's key order. Nested mappings decode into nested Maps.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := mapFromNode(node)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func mapFromNode(node *yaml.Node) (*Map, error) {
	if node == nil {
		return nil, fmt.Errorf("config: nil yaml node")
	}
	if node.Kind == yaml.AliasNode {
		return mapFromNode(node.Alias)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config: expected mapping at line %d, got %s", node.Line, nodeKindName(node.Kind))
	}

	out := NewMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("config: mapping key at line %d: %w", keyNode.Line, err)
		}
		value, err := valueFromNode(valueNode)
		if err != nil {
			return nil, err
		}
		out.Set(key, value)
	}
	return out, nil
}

func valueFromNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("config: nil yaml node")
	}
	switch node.Kind {
	case yaml.AliasNode:
		return valueFromNode(node.Alias)
	case yaml.MappingNode:
		return mapFromNode(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := valueFromNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("config: scalar at line %d: %w", node.Line, err)
		}
		return value, nil
	}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes entries in insertion order. Nested Maps recurse
// through their own MarshalJSON, so whole document trees keep stable key
// order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		payload, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("config: marshal key %q: %w", key, err)
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
