// Package generate derives the four output documents and the defaults
// mapping from a parsed configuration. Every generator is a pure function:
// no I/O, no shared state, best-effort fallbacks instead of errors.
package generate

import "github.com/goliatone/go-actorgen/pkg/config"

// ManifestFormatVersion marks the manifest document shape.
const ManifestFormatVersion = 1

// Fallbacks applied when the actor section omits identity attributes.
const (
	DefaultActorName = "unnamed-actor"
	DefaultVersion   = "0.1"
	DefaultBuildTag  = "latest"
)

// Relative paths the manifest uses to reference its sibling documents.
const (
	InputSchemaPath   = "./input_schema.json"
	DatasetSchemaPath = "./dataset_schema.json"
	OutputSchemaPath  = "./output_schema.json"
)

// Manifest emits the fixed-shape document describing the package identity
// and the cross-references to the other generated documents.
func Manifest(cfg config.Config) *config.Map {
	actor := cfg.Section(config.SectionActor)

	name := actor.GetString("name")
	if name == "" {
		name = DefaultActorName
	}
	version := actor.GetString("version")
	if version == "" {
		version = DefaultVersion
	}
	buildTag := actor.GetString("build_tag")
	if buildTag == "" {
		buildTag = DefaultBuildTag
	}

	env := actor.GetMap("environment_variables")

	return config.NewMap().
		Set("formatVersion", ManifestFormatVersion).
		Set("name", name).
		Set("version", version).
		Set("buildTag", buildTag).
		Set("environmentVariables", env).
		Set("input", InputSchemaPath).
		Set("output", OutputSchemaPath).
		Set("storages", config.NewMap().Set("dataset", DatasetSchemaPath))
}
