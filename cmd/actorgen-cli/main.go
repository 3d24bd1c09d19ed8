package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-actorgen/pkg/artifact"
	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/orchestrator"
	"github.com/goliatone/go-actorgen/pkg/prompt"
)

func main() {
	configPath := flag.String("config", "actor.yaml", "configuration document path or URL")
	outDir := flag.String("out", ".actor", "directory for the generated documents")
	inputPath := flag.String("input", "INPUT.json", "path for the derived default input values")
	interactive := flag.Bool("prompt", false, "fill INPUT.json interactively instead of using derived defaults")
	strict := flag.Bool("strict", false, "fail on validation errors instead of generating best-effort output")
	verbose := flag.Bool("verbose", false, "print generator warnings")
	flag.Parse()

	ctx := context.Background()

	src, err := parseSource(*configPath)
	if err != nil {
		log.Fatalf("invalid config source: %v", err)
	}

	options := []orchestrator.Option{}
	if *strict {
		options = append(options, orchestrator.WithStrict())
	}
	if *verbose {
		options = append(options, orchestrator.WithWarnFunc(func(msg string) {
			log.Printf("warning: %s", msg)
		}))
	}

	gen := orchestrator.New(options...)
	bundle, err := gen.Generate(ctx, orchestrator.Request{Source: src})

	for _, msg := range bundle.Validation.Errors {
		fmt.Fprintf(os.Stderr, "validation: %s\n", msg)
	}
	if err != nil {
		log.Fatalf("Failed to generate documents: %v", err)
	}

	writer := artifact.NewWriter(*outDir)
	if err := writer.WriteBundle(bundle); err != nil {
		log.Fatalf("Failed to write documents: %v", err)
	}

	values := bundle.Defaults
	if *interactive {
		cfg, err := gen.LoadConfig(ctx, src)
		if err != nil {
			log.Fatalf("Failed to reload config for prompting: %v", err)
		}
		values, err = prompt.New().Fill(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to collect input values: %v", err)
		}
	}
	if err := writer.WriteInput(*inputPath, values); err != nil {
		log.Fatalf("Failed to write input values: %v", err)
	}

	fmt.Printf("Documents written to %s\n", *outDir)
}

func parseSource(raw string) (config.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("config path is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return config.SourceFromURL(path)
	}
	return config.SourceFromFile(path), nil
}
