package generate

import (
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/fields"
)

// SchemaVersion marks the input schema document shape.
const SchemaVersion = 1

// DefaultInputTitle is used when neither actor.title nor actor.name is
// declared.
const DefaultInputTitle = "Actor Input"

// passthroughAttrs are copied into a property descriptor only when the
// declaration sets them explicitly. Absent attributes stay absent: a field
// with no minimum must not gain a minimum key.
var passthroughAttrs = []string{
	"sectionCaption",
	fields.AttrPrefill,
	fields.AttrDefault,
	fields.AttrMinLength,
	fields.AttrMaxLength,
	fields.AttrMinimum,
	fields.AttrMaximum,
	fields.AttrEnum,
}

// InputSchema emits the strictly-typed input document: one property
// descriptor per declared input field plus the required-field list.
func InputSchema(cfg config.Config) *config.Map {
	input := cfg.Section(config.SectionInput)
	declared := input.GetMap("fields")

	properties := config.NewMap()
	for _, name := range declared.Keys() {
		decl := fields.NewDeclaration(declared.GetMap(name))
		properties.Set(name, inputProperty(name, decl))
	}

	required := input.GetStrings("required")
	if required == nil {
		required = []string{}
	}

	return config.NewMap().
		Set("title", inputTitle(cfg)).
		Set("type", "object").
		Set("schemaVersion", SchemaVersion).
		Set("properties", properties).
		Set("required", required)
}

func inputProperty(name string, decl fields.Declaration) *config.Map {
	title := decl.String(fields.AttrTitle)
	if title == "" {
		title = fields.TitleCase(name)
	}
	fieldType := decl.String(fields.AttrType)
	if fieldType == "" {
		fieldType = fields.TypeString
	}

	prop := config.NewMap().
		Set("title", sanitizeText(title)).
		Set("type", fieldType).
		Set("description", sanitizeText(decl.Description())).
		Set("editor", fields.InferEditor(decl))

	for _, attr := range passthroughAttrs {
		if value, ok := decl.Attr(attr); ok {
			prop.Set(attr, value)
		}
	}
	return prop
}

func inputTitle(cfg config.Config) string {
	actor := cfg.Section(config.SectionActor)
	if title := actor.GetString("title"); title != "" {
		return sanitizeText(title)
	}
	if name := actor.GetString("name"); name != "" {
		return fields.TitleCase(name)
	}
	return DefaultInputTitle
}
