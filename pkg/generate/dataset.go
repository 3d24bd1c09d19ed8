package generate

import (
	"fmt"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/fields"
)

// DefaultViewComponent is the display widget used when a view declares none.
const DefaultViewComponent = "table"

// DefaultItemType is the array element type when a dataset field omits
// itemType.
const DefaultItemType = fields.TypeString

// DatasetSchema emits the dataset fields schema and its display views.
//
// Field types are wrapped into a two-element union with "null" unless the
// declaration opts out with nullable: false; fields injected through groups
// must validate even when absent from a run, so nothing is marked required.
//
// A view field that does not resolve against the aggregated field set is
// skipped with a warning rather than aborting: the validator already
// reported the same fault as a hard error, and a caller who generates
// without validating still gets safe, if incomplete, output.
func DatasetSchema(cfg config.Config) (*config.Map, []string) {
	collection := fields.CollectDatasetFields(cfg)

	fieldSchemas := config.NewMap()
	for _, name := range collection.Names() {
		decl, _ := collection.Get(name)
		fieldSchemas.Set(name, datasetFieldSchema(decl))
	}

	views := config.NewMap()
	var warnings []string
	declared := cfg.Section(config.SectionDataset).GetMap("views")
	for _, viewName := range declared.Keys() {
		view, viewWarnings := datasetView(viewName, declared.GetMap(viewName), collection)
		views.Set(viewName, view)
		warnings = append(warnings, viewWarnings...)
	}

	doc := config.NewMap().
		Set("fields", fieldSchemas).
		Set("views", views)
	return doc, warnings
}

func datasetFieldSchema(decl fields.Declaration) *config.Map {
	fieldType := fields.InferType(decl)

	out := config.NewMap()
	if decl.Nullable() {
		out.Set("type", []any{fieldType, "null"})
	} else {
		out.Set("type", fieldType)
	}

	if fieldType == fields.TypeArray {
		itemType := decl.String(fields.AttrItemType)
		if itemType == "" {
			itemType = DefaultItemType
		}
		out.Set("items", config.NewMap().Set("type", itemType))
	}
	return out
}

func datasetView(name string, view *config.Map, collection *fields.Collection) (*config.Map, []string) {
	title := view.GetString("title")
	if title == "" {
		title = fields.TitleCase(name)
	}
	component := view.GetString("component")
	if component == "" {
		component = DefaultViewComponent
	}

	var warnings []string
	resolved := make([]string, 0, len(view.GetStrings("fields")))
	properties := config.NewMap()
	for _, fieldName := range view.GetStrings("fields") {
		decl, ok := collection.Get(fieldName)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("view %q: skipping unknown field %q", name, fieldName))
			continue
		}
		resolved = append(resolved, fieldName)
		properties.Set(fieldName, config.NewMap().
			Set("label", sanitizeText(displayLabel(fieldName, decl))).
			Set("format", fields.InferFormat(fieldName, decl)))
	}

	out := config.NewMap().
		Set("title", sanitizeText(title)).
		Set("transformation", config.NewMap().Set("fields", resolved)).
		Set("display", config.NewMap().
			Set("component", component).
			Set("properties", properties))
	return out, warnings
}

// displayLabel resolves a displayed field's label: explicit label, then
// explicit title, then the title-cased field name.
func displayLabel(name string, decl fields.Declaration) string {
	if label := decl.String(fields.AttrLabel); label != "" {
		return label
	}
	if title := decl.String(fields.AttrTitle); title != "" {
		return title
	}
	return fields.TitleCase(name)
}
