// Package content wraps rendered output in a generated-content record and
// serializes todo lists into the supported output formats.
package content

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/colonyops/stencil/pkg/randid"
)

// ErrUnknownFormat marks a format outside the closed set.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is a supported serialization format.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formats is the closed set of output formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatMarkdown, FormatText}

// ParseFormat validates a format string against the closed set.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Generated is a single generation record: the rendered body plus
// provenance for tracing which template produced it.
type Generated struct {
	ID            string         `yaml:"id" json:"id"`
	TemplateID    string         `yaml:"template_id" json:"template_id"`
	Version       string         `yaml:"template_version" json:"template_version"`
	Format        Format         `yaml:"format" json:"format"`
	Body          string         `yaml:"body" json:"body"`
	Deterministic bool           `yaml:"deterministic" json:"deterministic"`
	CreatedAt     time.Time      `yaml:"created_at" json:"created_at"`
	DurationMS    int64          `yaml:"duration_ms" json:"duration_ms"`
	Metadata      map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// NewGenerated builds a record with a fresh random id. The clock is
// injectable so callers that need reproducible records can pin it.
func NewGenerated(templateID, version string, format Format, body string, now func() time.Time) Generated {
	if now == nil {
		now = time.Now
	}
	return Generated{
		ID:         randid.Generate(8),
		TemplateID: templateID,
		Version:    version,
		Format:     format,
		Body:       body,
		CreatedAt:  now().UTC(),
	}
}
