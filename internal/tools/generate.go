package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/validate"
	"github.com/colonyops/stencil/internal/stencil"
)

// GenerateTool runs the generation pipeline for a named template.
type GenerateTool struct {
	app *stencil.App
}

// NewGenerateTool wraps app's generator as a tool.
func NewGenerateTool(app *stencil.App) *GenerateTool {
	return &GenerateTool{app: app}
}

type generateInput struct {
	TemplateID string         `json:"template_id"`
	Input      map[string]any `json:"input"`
	Format     string         `json:"format,omitempty"`
}

type generateOutput struct {
	ContentID    string           `json:"content_id"`
	TemplateID   string           `json:"template_id"`
	Format       string           `json:"format"`
	Body         string           `json:"body"`
	IsValid      bool             `json:"is_valid"`
	QualityScore float64          `json:"quality_score"`
	Issues       []validate.Issue `json:"issues,omitempty"`
	Suggestions  []string         `json:"suggestions,omitempty"`
}

func (t *GenerateTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "generate",
		Description: "Render a registered template with structured input and validate the resulting todo list.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["template_id", "input"],
			"properties": {
				"template_id": {"type": "string"},
				"input": {"type": "object"},
				"format": {"type": "string", "enum": ["yaml", "json", "markdown", "text"]}
			}
		}`),
		OutputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["content_id", "template_id", "format", "body", "is_valid", "quality_score"],
			"properties": {
				"content_id": {"type": "string"},
				"template_id": {"type": "string"},
				"format": {"type": "string"},
				"body": {"type": "string"},
				"is_valid": {"type": "boolean"},
				"quality_score": {"type": "number"},
				"issues": {"type": "array"},
				"suggestions": {"type": "array"}
			}
		}`),
	}
}

func (t *GenerateTool) Call(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in generateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("generate: decode input: %w", err)
	}
	if in.TemplateID == "" {
		return nil, fmt.Errorf("generate: template_id is required")
	}

	opts := stencil.GenerateOptions{TemplateID: in.TemplateID, Input: in.Input}
	if in.Format != "" {
		format, err := content.ParseFormat(in.Format)
		if err != nil {
			return nil, err
		}
		opts.Format = format
	}

	res, err := t.app.Generator.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	return json.Marshal(generateOutput{
		ContentID:    res.Content.ID,
		TemplateID:   res.Content.TemplateID,
		Format:       string(res.Content.Format),
		Body:         res.Content.Body,
		IsValid:      res.Report.IsValid,
		QualityScore: res.Report.QualityScore,
		Issues:       res.Report.Issues,
		Suggestions:  res.Report.Suggestions,
	})
}
