// Package prompt fills an INPUT.json value mapping interactively by walking
// the declared input fields and asking for each value on the terminal.
// Derived defaults seed every prompt so pressing enter accepts them.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/fields"
	"github.com/goliatone/go-actorgen/pkg/generate"
)

// Option customises the Filler.
type Option func(*Filler)

// WithDriver swaps the terminal driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		f.driver = driver
	}
}

// Filler walks input field declarations and collects values.
type Filler struct {
	driver PromptDriver
}

// New constructs a Filler with the survey-backed driver unless overridden.
func New(options ...Option) *Filler {
	f := &Filler{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = newSurveyDriver()
	}
	return f
}

// Fill prompts for every declared input field in declaration order and
// returns the collected value mapping. Derived defaults pre-populate the
// prompts; fields the user leaves empty keep their derived default when one
// exists and are omitted otherwise.
func (f *Filler) Fill(ctx context.Context, cfg config.Config) (*config.Map, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}

	declared := cfg.Section(config.SectionInput).GetMap("fields")
	defaults := generate.Defaults(cfg)

	out := config.NewMap()
	for _, name := range declared.Keys() {
		decl := fields.NewDeclaration(declared.GetMap(name))
		seed, hasSeed := defaults.Get(name)

		value, ok, err := f.promptField(ctx, name, decl, seed, hasSeed)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Set(name, value)
		}
	}
	return out, nil
}

func (f *Filler) promptField(ctx context.Context, name string, decl fields.Declaration, seed any, hasSeed bool) (any, bool, error) {
	label := decl.String(fields.AttrTitle)
	if label == "" {
		label = fields.TitleCase(name)
	}
	help := decl.Description()

	if enum := enumOptions(decl); len(enum) > 0 {
		return f.promptEnum(ctx, label, help, enum, seed)
	}

	switch fields.InferEditor(decl) {
	case fields.EditorCheckbox:
		def, _ := seed.(bool)
		value, err := f.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: def, Help: help})
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case fields.EditorNumber:
		return f.promptNumber(ctx, name, label, help, decl, seed, hasSeed)
	case fields.EditorStringList:
		return f.promptList(ctx, label, help, seed)
	default:
		def, _ := seed.(string)
		value, err := f.driver.Input(ctx, InputConfig{Message: label, Default: def, Help: help})
		if err != nil {
			return nil, false, err
		}
		if value == "" && !hasSeed {
			return nil, false, nil
		}
		return value, true, nil
	}
}

func (f *Filler) promptEnum(ctx context.Context, label, help string, options []string, seed any) (any, bool, error) {
	defaultIdx := -1
	if current, ok := seed.(string); ok {
		for i, option := range options {
			if option == current {
				defaultIdx = i
				break
			}
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      options,
		DefaultIndex: defaultIdx,
		Help:         help,
	})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(options) {
		return nil, false, fmt.Errorf("prompt: selection out of range for %s", label)
	}
	return options[idx], true, nil
}

func (f *Filler) promptNumber(ctx context.Context, name, label, help string, decl fields.Declaration, seed any, hasSeed bool) (any, bool, error) {
	def := ""
	if hasSeed {
		def = fmt.Sprint(seed)
	}
	integer := fields.InferType(decl) == fields.TypeInteger

	for {
		raw, err := f.driver.Input(ctx, InputConfig{Message: label, Default: def, Help: help})
		if err != nil {
			return nil, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if hasSeed {
				return seed, true, nil
			}
			return nil, false, nil
		}

		if integer {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err == nil {
				return parsed, true, nil
			}
		} else {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err == nil {
				return parsed, true, nil
			}
		}
		_ = f.driver.Info(ctx, fmt.Sprintf("Invalid %s: expected a number", name))
	}
}

func (f *Filler) promptList(ctx context.Context, label, help string, seed any) (any, bool, error) {
	items := seedList(seed)
	for {
		raw, err := f.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s (empty to finish)", label),
			Help:    help,
		})
		if err != nil {
			return nil, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return items, true, nil
		}
		items = append(items, raw)
	}
}

func seedList(seed any) []any {
	list, ok := seed.([]any)
	if !ok {
		return []any{}
	}
	return append([]any{}, list...)
}

func enumOptions(decl fields.Declaration) []string {
	value, ok := decl.Attr(fields.AttrEnum)
	if !ok {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	return out
}
