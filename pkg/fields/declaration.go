// Package fields resolves sparse, author-provided field declarations into
// fully-specified descriptors and aggregates dataset fields across reusable
// field groups.
package fields

import "github.com/goliatone/go-actorgen/pkg/config"

// Attribute names recognised on a field declaration. Declarations are sparse:
// any subset of these may be present.
const (
	AttrTitle       = "title"
	AttrDescription = "description"
	AttrDesc        = "desc"
	AttrType        = "type"
	AttrFormat      = "format"
	AttrArray       = "array"
	AttrEditor      = "editor"
	AttrPrefill     = "prefill"
	AttrDefault     = "default"
	AttrMinLength   = "minLength"
	AttrMaxLength   = "maxLength"
	AttrMinimum     = "minimum"
	AttrMaximum     = "maximum"
	AttrEnum        = "enum"
	AttrGroup       = "group"
	AttrLabel       = "label"
	AttrItemType    = "itemType"
	AttrNullable    = "nullable"
)

// Declaration is a read-only view over one field's declared attributes.
// The zero value behaves like an empty declaration.
type Declaration struct {
	attrs *config.Map
}

// NewDeclaration wraps a declaration mapping. A nil mapping yields an empty
// declaration.
func NewDeclaration(attrs *config.Map) Declaration {
	return Declaration{attrs: attrs}
}

// Has reports whether the attribute was explicitly declared.
func (d Declaration) Has(name string) bool {
	return d.attrs.Has(name)
}

// Attr returns the raw attribute value and whether it was declared.
func (d Declaration) Attr(name string) (any, bool) {
	return d.attrs.Get(name)
}

// String returns the attribute as a string, or "" when absent or not a
// string.
func (d Declaration) String(name string) string {
	return d.attrs.GetString(name)
}

// Bool returns the attribute as a boolean, or false when absent or not a
// boolean.
func (d Declaration) Bool(name string) bool {
	return d.attrs.GetBool(name)
}

// Description resolves the declared description, accepting the `desc`
// shorthand.
func (d Declaration) Description() string {
	if d.Has(AttrDescription) {
		return d.String(AttrDescription)
	}
	return d.String(AttrDesc)
}

// Group returns the referenced field-group name, if any.
func (d Declaration) Group() (string, bool) {
	if !d.Has(AttrGroup) {
		return "", false
	}
	name := d.String(AttrGroup)
	if name == "" {
		return "", false
	}
	return name, true
}

// Nullable reports whether the field tolerates null values in the dataset
// schema. Nullability is opt-out: it defaults to true unless the declaration
// sets nullable: false.
func (d Declaration) Nullable() bool {
	if value, ok := d.Attr(AttrNullable); ok {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return true
}
