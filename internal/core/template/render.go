package template

import (
	"github.com/colonyops/stencil/pkg/tmpl"
)

// Resolved is the effective template after inheritance resolution. Lineage
// lists the chain of template ids root first.
type Resolved struct {
	Definition Definition
	Lineage    []string
}

// Render validates input against the effective schema, applies declared
// defaults, and expands the body. Identical input always yields identical
// output.
func (r *Resolved) Render(input map[string]any) (string, error) {
	def := &r.Definition
	if def.Body == "" {
		return "", &RenderError{TemplateID: def.ID, Detail: "template has no body"}
	}

	data := input
	if def.Input != nil {
		if err := def.Input.ValidateInput(input); err != nil {
			return "", err
		}
		data = def.Input.ApplyDefaults(input)
	}

	out, err := tmpl.Render(def.Body, data)
	if err != nil {
		return "", &RenderError{TemplateID: def.ID, Detail: err.Error()}
	}

	if def.Rules != nil {
		min, max := def.Rules.MinLength, def.Rules.MaxLength
		if (min > 0 && len(out) < min) || (max > 0 && len(out) > max) {
			return "", &LimitError{TemplateID: def.ID, Length: len(out), Min: min, Max: max}
		}
	}
	return out, nil
}
