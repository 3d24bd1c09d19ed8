// Package validate cross-checks the independently authored sections of a
// configuration: view field lists against the aggregated dataset field set,
// and input group references against the declared field groups.
package validate

import (
	"fmt"

	"github.com/goliatone/go-actorgen/pkg/config"
	"github.com/goliatone/go-actorgen/pkg/fields"
)

// Result is the aggregate validation outcome. Faults accumulate in Errors in
// discovery order; Validate never fails with a Go error, and the decision to
// abort generation belongs to the caller.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate runs every cross-reference check and reports all failures. An
// entirely empty configuration short-circuits with a single error since no
// other check can apply.
func Validate(cfg config.Config) Result {
	if cfg.Empty() {
		return Result{Valid: false, Errors: []string{"configuration is empty"}}
	}

	var errs []string

	if cfg.Section(config.SectionActor).GetString("name") == "" {
		errs = append(errs, "actor.name is required")
	}

	collection := fields.CollectDatasetFields(cfg)
	views := cfg.Section(config.SectionDataset).GetMap("views")
	for _, viewName := range views.Keys() {
		view := views.GetMap(viewName)
		for _, fieldName := range view.GetStrings("fields") {
			if !collection.Has(fieldName) {
				errs = append(errs, fmt.Sprintf("view %q references unknown dataset field %q", viewName, fieldName))
			}
		}
	}

	groups := cfg.Section(config.SectionDataset).GetMap("field_groups")
	for _, ref := range fields.InputGroupRefs(cfg) {
		if !groups.Has(ref.Group) {
			errs = append(errs, fmt.Sprintf("input field %q references unknown field group %q", ref.Field, ref.Group))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
