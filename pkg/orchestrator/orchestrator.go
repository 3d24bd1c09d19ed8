// Package orchestrator coordinates the loader → parser → validator →
// generator pipeline. It applies sensible defaults while remaining open to
// dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-actorgen/internal/config/loader"
	internalParser "github.com/goliatone/go-actorgen/internal/config/parser"
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/generate"
	"github.com/goliatone/go-actorgen/pkg/validate"
)

// ErrInvalidConfig is returned from Generate in strict mode when validation
// reports failures. The bundle still carries the validation result.
var ErrInvalidConfig = errors.New("orchestrator: configuration is invalid")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader config.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom document parser.
func WithParser(parser config.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithStrict makes Generate fail when validation reports errors instead of
// leaving the abort decision to the caller.
func WithStrict() Option {
	return func(o *Orchestrator) {
		o.strict = true
	}
}

// WithWarnFunc receives non-fatal diagnostics from the generators, such as
// view fields skipped for dangling references. Defaults to discarding them.
func WithWarnFunc(warn func(string)) Option {
	return func(o *Orchestrator) {
		o.warn = warn
	}
}

// Orchestrator runs the full derivation pipeline from a configuration
// document to the generated document bundle.
type Orchestrator struct {
	loader config.Loader
	parser config.Parser
	strict bool
	warn   func(string)
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(config.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New()
	}
	return o
}

// Request describes the inputs for one generation run.
type Request struct {
	// Source identifies where the configuration document lives. Optional
	// when Config is supplied.
	Source config.Source

	// Config allows callers to bypass loading and parsing when they already
	// hold a parsed tree.
	Config *config.Config
}

// Bundle holds everything one generation run produces. The four documents
// and the defaults mapping serialize to JSON with stable key order.
type Bundle struct {
	Manifest      *config.Map
	InputSchema   *config.Map
	DatasetSchema *config.Map
	OutputSchema  *config.Map
	Defaults      *config.Map
	Validation    validate.Result
	Warnings      []string
}

// Generate resolves the configuration, validates it, and runs the four
// generators plus the default-value deriver. Outside strict mode a failed
// validation does not stop generation: the bundle carries best-effort
// documents alongside the validation result.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Bundle, error) {
	if ctx == nil {
		return Bundle{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Bundle{}, err
	}

	cfg, err := o.resolveConfig(ctx, req)
	if err != nil {
		return Bundle{}, err
	}

	bundle := Bundle{Validation: validate.Validate(cfg)}
	if o.strict && !bundle.Validation.Valid {
		return bundle, ErrInvalidConfig
	}

	bundle.Manifest = generate.Manifest(cfg)
	bundle.InputSchema = generate.InputSchema(cfg)
	bundle.OutputSchema = generate.OutputSchema(cfg)
	bundle.Defaults = generate.Defaults(cfg)

	dataset, warnings := generate.DatasetSchema(cfg)
	bundle.DatasetSchema = dataset
	bundle.Warnings = warnings
	if o.warn != nil {
		for _, warning := range warnings {
			o.warn(warning)
		}
	}

	return bundle, nil
}

// LoadConfig resolves a configuration tree from the source using the
// orchestrator's loader and parser, without generating anything. Callers
// that need the tree itself (the interactive input filler does) use this to
// avoid wiring the loader stack twice.
func (o *Orchestrator) LoadConfig(ctx context.Context, src config.Source) (config.Config, error) {
	if ctx == nil {
		return config.Config{}, errors.New("orchestrator: context is required")
	}
	return o.resolveConfig(ctx, Request{Source: src})
}

func (o *Orchestrator) resolveConfig(ctx context.Context, req Request) (config.Config, error) {
	if req.Config != nil {
		return *req.Config, nil
	}
	if req.Source == nil {
		return config.Config{}, errors.New("orchestrator: source or config is required")
	}

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return config.Config{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	cfg, err := o.parser.Parse(doc)
	if err != nil {
		return config.Config{}, fmt.Errorf("orchestrator: parse document: %w", err)
	}
	return cfg, nil
}
