// Package actorgen derives the four deployment documents of an actor
// package (manifest, input schema, dataset schema with display views, and
// output schema) from a single unified configuration document, plus a flat
// default-value mapping for local test input.
package actorgen

import (
	"context"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/orchestrator"
	"github.com/goliatone/go-actorgen/pkg/validate"
)

// Bundle holds the generated documents, the defaults mapping, and the
// validation result of one run.
type Bundle = orchestrator.Bundle

// Request describes the inputs for one generation run.
type Request = orchestrator.Request

// ValidationResult is the accumulated cross-reference check outcome.
type ValidationResult = validate.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to customise the pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the configuration from the given source and derives the
// full document bundle. It is the simplest entry point.
func Generate(ctx context.Context, src config.Source, options ...orchestrator.Option) (Bundle, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: src})
}

// GenerateFromConfig derives the document bundle from an already-parsed
// configuration tree, bypassing the loader stage.
func GenerateFromConfig(ctx context.Context, cfg config.Config, options ...orchestrator.Option) (Bundle, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Config: &cfg})
}

// Validate runs the cross-reference validator on its own, without
// generating documents.
func Validate(cfg config.Config) ValidationResult {
	return validate.Validate(cfg)
}

// WithStrict makes generation fail when validation reports errors.
func WithStrict() orchestrator.Option {
	return orchestrator.WithStrict()
}

// WithWarnFunc forwards generator diagnostics to the supplied sink.
func WithWarnFunc(warn func(string)) orchestrator.Option {
	return orchestrator.WithWarnFunc(warn)
}
