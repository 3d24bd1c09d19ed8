package generate

import "github.com/goliatone/go-actorgen/pkg/config"

// DatasetItemsTemplate is the templated link the synthetic results property
// points at when the output section declares no properties of its own.
const DatasetItemsTemplate = "{{links.datasetItems}}"

// OutputSchema emits the output document: title, description, and either
// the declared properties or a single synthetic results property pointing at
// the dataset items.
func OutputSchema(cfg config.Config) *config.Map {
	output := cfg.Section(config.SectionOutput)

	properties := output.GetMap("properties")
	if properties.Len() == 0 {
		properties = config.NewMap().Set("results", config.NewMap().
			Set("type", "string").
			Set("title", "Results").
			Set("template", DatasetItemsTemplate))
	}

	return config.NewMap().
		Set("title", sanitizeText(output.GetString("title"))).
		Set("description", sanitizeText(output.GetString("description"))).
		Set("properties", properties)
}
