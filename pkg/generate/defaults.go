package generate

import (
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/fields"
)

// Defaults derives the flat default-value mapping used to seed local test
// input. Per field, an explicit default outranks prefill, which outranks a
// type-based zero value; strings and unrecognised types get no synthesized
// entry at all. The optional input.defaults mapping overlays last as an
// explicit-override escape hatch.
func Defaults(cfg config.Config) *config.Map {
	input := cfg.Section(config.SectionInput)
	declared := input.GetMap("fields")

	out := config.NewMap()
	for _, name := range declared.Keys() {
		decl := fields.NewDeclaration(declared.GetMap(name))
		if value, ok := defaultFor(decl); ok {
			out.Set(name, value)
		}
	}

	overrides := input.GetMap("defaults")
	for _, name := range overrides.Keys() {
		value, _ := overrides.Get(name)
		out.Set(name, value)
	}
	return out
}

func defaultFor(decl fields.Declaration) (any, bool) {
	if value, ok := decl.Attr(fields.AttrDefault); ok {
		return value, true
	}
	if value, ok := decl.Attr(fields.AttrPrefill); ok {
		return value, true
	}

	switch fields.InferType(decl) {
	case fields.TypeBoolean:
		return false, true
	case fields.TypeInteger, fields.TypeNumber:
		return 0, true
	case fields.TypeArray:
		return []any{}, true
	default:
		return nil, false
	}
}
