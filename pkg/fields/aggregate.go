package fields

import "github.com/goliatone/go-actorgen/pkg/config"

// Collection is the aggregated dataset field set: base fields merged with
// every field group in declaration order. Group provenance lives in a side
// table keyed by field name rather than inside the declarations themselves,
// so a marker can never leak into generated documents.
type Collection struct {
	names   []string
	decls   map[string]Declaration
	origins map[string]string
}

// CollectDatasetFields merges dataset.fields with the fields of every group
// in dataset.field_groups. Iteration follows the source declaration order
// exactly and the last writer wins on name collisions, so a group field
// declared after an identically named base field silently replaces it.
func CollectDatasetFields(cfg config.Config) *Collection {
	out := &Collection{
		decls:   make(map[string]Declaration),
		origins: make(map[string]string),
	}

	dataset := cfg.Section(config.SectionDataset)

	base := dataset.GetMap("fields")
	for _, name := range base.Keys() {
		out.set(name, NewDeclaration(base.GetMap(name)), "")
	}

	groups := dataset.GetMap("field_groups")
	for _, groupName := range groups.Keys() {
		group := groups.GetMap(groupName)
		for _, name := range group.Keys() {
			out.set(name, NewDeclaration(group.GetMap(name)), groupName)
		}
	}

	return out
}

func (c *Collection) set(name string, decl Declaration, origin string) {
	if _, ok := c.decls[name]; !ok {
		c.names = append(c.names, name)
	}
	c.decls[name] = decl
	if origin == "" {
		delete(c.origins, name)
	} else {
		c.origins[name] = origin
	}
}

// Names returns the field names in merge order.
func (c *Collection) Names() []string {
	if c == nil || len(c.names) == 0 {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Len reports the number of aggregated fields.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Has reports whether the named field exists in the aggregate.
func (c *Collection) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.decls[name]
	return ok
}

// Get returns the declaration for the named field.
func (c *Collection) Get(name string) (Declaration, bool) {
	if c == nil {
		return Declaration{}, false
	}
	decl, ok := c.decls[name]
	return decl, ok
}

// Origin reports which field group contributed the named field. Base fields
// have no origin.
func (c *Collection) Origin(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	group, ok := c.origins[name]
	return group, ok
}

// GroupRef records one input field's reference to a dataset field group.
type GroupRef struct {
	Field string
	Group string
}

// InputGroupRefs returns, in declaration order, every input field that names
// a dataset field group. Fields with no group reference are omitted.
func InputGroupRefs(cfg config.Config) []GroupRef {
	input := cfg.Section(config.SectionInput).GetMap("fields")

	var out []GroupRef
	for _, name := range input.Keys() {
		decl := NewDeclaration(input.GetMap(name))
		if group, ok := decl.Group(); ok {
			out = append(out, GroupRef{Field: name, Group: group})
		}
	}
	return out
}
