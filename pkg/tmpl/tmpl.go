// Package tmpl provides deterministic template rendering for stencil bodies.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// funcs is the closed helper set available to template bodies. Helpers are
// pure string functions; anything clock-, random-, or environment-derived is
// deliberately absent so rendered output stays reproducible.
var funcs = template.FuncMap{
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"capitalize": capitalize,
	"join":       strings.Join,
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Render executes a template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - upper: Uppercase a string
//   - lower: Lowercase a string
//   - capitalize: Uppercase the first character
//   - join: Join a string slice with a separator (e.g., join .tags ", ")
func Render(body string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Check parses a template body without executing it, reporting syntax errors
// and references to helpers outside the closed function set.
func Check(body string) error {
	if _, err := template.New("").Funcs(funcs).Parse(body); err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	return nil
}
