// Package template implements stencil's template store, inheritance
// resolver, and deterministic renderer.
package template

import (
	"fmt"

	"github.com/colonyops/stencil/pkg/tmpl"
)

// Limits on template definitions.
const (
	MaxIDLength   = 64
	MaxBodyLength = 10 * 1024 * 1024
)

// ProviderDeterministic marks templates whose rendering is pure input-driven
// substitution.
const ProviderDeterministic = "deterministic"

// Definition is a single registered template. Optional sections are pointers
// so the inheritance resolver can tell "absent" from "present but zero": a
// child's present section replaces the parent's wholesale.
type Definition struct {
	ID       string          `yaml:"id" json:"id"`
	Version  string          `yaml:"version" json:"version"`
	Extends  string          `yaml:"extends,omitempty" json:"extends,omitempty"`
	Metadata *Metadata       `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Input    *Schema         `yaml:"input_schema,omitempty" json:"input_schema,omitempty"`
	Output   *OutputSpec     `yaml:"output,omitempty" json:"output,omitempty"`
	Rules    *ValidationSpec `yaml:"validation,omitempty" json:"validation,omitempty"`
	Body     string          `yaml:"body,omitempty" json:"body,omitempty"`
}

// Metadata carries free-form template information.
type Metadata struct {
	Provider    string         `yaml:"provider,omitempty" json:"provider,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string         `yaml:"author,omitempty" json:"author,omitempty"`
	Parameters  map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Tags        []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// OutputSpec declares the shape of rendered output.
type OutputSpec struct {
	// Format is one of the closed output format set (yaml, json, markdown, text).
	Format string `yaml:"format" json:"format"`
	// Structure is a human-readable description of the expected shape.
	Structure string `yaml:"structure,omitempty" json:"structure,omitempty"`
	// Required lists the root-level keys the parsed output must contain.
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`
	// Example holds sample output for documentation.
	Example string `yaml:"example,omitempty" json:"example,omitempty"`
}

// ValidationSpec configures validation applied to generated output.
type ValidationSpec struct {
	// DeterministicOnly requires the template to be deterministic.
	DeterministicOnly bool `yaml:"deterministic_only" json:"deterministic_only"`
	// MinLength and MaxLength bound the rendered text size in bytes.
	MinLength int `yaml:"min_length,omitempty" json:"min_length,omitempty"`
	MaxLength int `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	// Quality overrides item-level quality thresholds.
	Quality *QualityGates `yaml:"quality,omitempty" json:"quality,omitempty"`
	// Structure overrides list-level structural limits.
	Structure *StructureRules `yaml:"structure,omitempty" json:"structure,omitempty"`
}

// QualityGates are per-item quality thresholds a template can override.
type QualityGates struct {
	MaxComplexityPerTask   int  `yaml:"max_complexity_per_task,omitempty" json:"max_complexity_per_task,omitempty"`
	RequireTimeEstimates   bool `yaml:"require_time_estimates" json:"require_time_estimates"`
	RequireSpecificActions bool `yaml:"require_specific_actions" json:"require_specific_actions"`
	MinTaskDetailChars     int  `yaml:"min_task_detail_chars,omitempty" json:"min_task_detail_chars,omitempty"`
	MaxTaskDetailChars     int  `yaml:"max_task_detail_chars,omitempty" json:"max_task_detail_chars,omitempty"`
}

// StructureRules are list-level structural limits a template can override.
type StructureRules struct {
	MaxItems                    int  `yaml:"max_items,omitempty" json:"max_items,omitempty"`
	MinItems                    int  `yaml:"min_items,omitempty" json:"min_items,omitempty"`
	RequireDependencyGraph      bool `yaml:"require_dependency_graph" json:"require_dependency_graph"`
	PreventCircularDependencies bool `yaml:"prevent_circular_dependencies" json:"prevent_circular_dependencies"`
}

// IsDeterministic reports whether rendering is pure input-driven
// substitution: either the provider is "deterministic" or the temperature
// parameter is zero.
func (d *Definition) IsDeterministic() bool {
	if d.Metadata == nil {
		// Absent metadata inherits the deterministic default.
		return true
	}
	if d.Metadata.Provider == ProviderDeterministic || d.Metadata.Provider == "" {
		return true
	}
	if t, ok := d.Metadata.Parameters["temperature"]; ok {
		if f, ok := toFloat(t); ok {
			return f == 0
		}
	}
	return false
}

// Validate checks the definition is well-formed. Templates that only exist
// as inheritance roots may omit a body; everything else is required.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return &DefinitionError{Reason: "id cannot be empty"}
	}
	if len(d.ID) > MaxIDLength {
		return &DefinitionError{ID: d.ID, Reason: fmt.Sprintf("id exceeds %d characters", MaxIDLength)}
	}
	for _, c := range d.ID {
		if !isIDChar(c) {
			return &DefinitionError{ID: d.ID, Reason: fmt.Sprintf("id contains invalid character %q", c)}
		}
	}
	if d.Version == "" {
		return &DefinitionError{ID: d.ID, Reason: "version cannot be empty"}
	}
	if d.Extends == d.ID {
		return &DefinitionError{ID: d.ID, Reason: "template cannot extend itself"}
	}
	if len(d.Body) > MaxBodyLength {
		return &DefinitionError{ID: d.ID, Reason: fmt.Sprintf("body exceeds %d bytes", MaxBodyLength)}
	}
	if d.Body != "" {
		if err := tmpl.Check(d.Body); err != nil {
			return &DefinitionError{ID: d.ID, Reason: err.Error()}
		}
	}
	if err := d.Input.Validate(); err != nil {
		return &DefinitionError{ID: d.ID, Reason: fmt.Sprintf("input schema: %v", err)}
	}
	if d.Rules != nil && d.Rules.DeterministicOnly && !d.IsDeterministic() {
		return &DefinitionError{ID: d.ID, Reason: "deterministic_only template has a non-deterministic provider"}
	}
	return nil
}

func isIDChar(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
