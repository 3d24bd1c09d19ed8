package fields

import "strings"

// Field type, format, and editor tokens the inference rules resolve to.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"

	FormatText  = "text"
	FormatLink  = "link"
	FormatArray = "array"

	EditorTextfield  = "textfield"
	EditorNumber     = "number"
	EditorCheckbox   = "checkbox"
	EditorStringList = "stringList"
)

// rule pairs a predicate with the value it resolves to. Rules are evaluated
// top to bottom; the first matching predicate wins, which keeps precedence
// auditable in one place instead of nested conditionals.
type rule struct {
	when  func(name string, d Declaration) bool
	value func(name string, d Declaration) string
}

func evalRules(rules []rule, name string, d Declaration) string {
	for _, r := range rules {
		if r.when(name, d) {
			return r.value(name, d)
		}
	}
	return ""
}

func always(string, Declaration) bool { return true }

func hasAttr(attr string) func(string, Declaration) bool {
	return func(_ string, d Declaration) bool { return d.String(attr) != "" }
}

func boolAttr(attr string) func(string, Declaration) bool {
	return func(_ string, d Declaration) bool { return d.Bool(attr) }
}

func attrValue(attr string) func(string, Declaration) string {
	return func(_ string, d Declaration) string { return d.String(attr) }
}

func constant(value string) func(string, Declaration) string {
	return func(string, Declaration) string { return value }
}

func nameSuffix(suffix string) func(string, Declaration) bool {
	return func(name string, _ Declaration) bool { return strings.HasSuffix(name, suffix) }
}

func nameIs(exact string) func(string, Declaration) bool {
	return func(name string, _ Declaration) bool { return name == exact }
}

var typeRules = []rule{
	{when: hasAttr(AttrType), value: attrValue(AttrType)},
	{when: boolAttr(AttrArray), value: constant(TypeArray)},
	{when: always, value: constant(TypeString)},
}

// InferType resolves the declared type: explicit `type` wins, the `array`
// shorthand follows, and everything else is a string.
func InferType(d Declaration) string {
	return evalRules(typeRules, "", d)
}

var formatRules = []rule{
	{when: hasAttr(AttrFormat), value: attrValue(AttrFormat)},
	{when: boolAttr(AttrArray), value: constant(FormatArray)},
	{when: nameSuffix("_url"), value: constant(FormatLink)},
	{when: nameIs("website"), value: constant(FormatLink)},
	{when: nameSuffix("_links"), value: constant(FormatArray)},
	{when: always, value: constant(FormatText)},
}

// InferFormat resolves the display format for a field, falling back on
// naming conventions (`*_url` and `website` render as links, `*_links` as
// arrays) before the plain-text default.
func InferFormat(name string, d Declaration) string {
	return evalRules(formatRules, name, d)
}

func resolvedType(expected string) func(string, Declaration) bool {
	return func(_ string, d Declaration) bool { return InferType(d) == expected }
}

var editorRules = []rule{
	{when: hasAttr(AttrEditor), value: attrValue(AttrEditor)},
	{when: resolvedType(TypeInteger), value: constant(EditorNumber)},
	{when: resolvedType(TypeNumber), value: constant(EditorNumber)},
	{when: resolvedType(TypeBoolean), value: constant(EditorCheckbox)},
	{when: resolvedType(TypeArray), value: constant(EditorStringList)},
	{when: always, value: constant(EditorTextfield)},
}

// InferEditor resolves the input-widget identifier from the explicit
// `editor` attribute or the resolved field type.
func InferEditor(d Declaration) string {
	return evalRules(editorRules, "", d)
}
