package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/stencil"
)

// ValidateTool checks an existing todo list document without generating.
type ValidateTool struct {
	app *stencil.App
}

// NewValidateTool wraps app's validator as a tool.
func NewValidateTool(app *stencil.App) *ValidateTool {
	return &ValidateTool{app: app}
}

type validateInput struct {
	Body   string `json:"body"`
	Format string `json:"format,omitempty"`
}

func (t *ValidateTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "validate_todo_list",
		Description: "Parse a todo list document and return the scored validation report.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["body"],
			"properties": {
				"body": {"type": "string"},
				"format": {"type": "string", "enum": ["yaml", "json"]}
			}
		}`),
		OutputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["is_valid", "quality_score", "metrics"],
			"properties": {
				"is_valid": {"type": "boolean"},
				"quality_score": {"type": "number"},
				"issues": {"type": "array"},
				"suggestions": {"type": "array"},
				"metrics": {"type": "object"}
			}
		}`),
	}
}

func (t *ValidateTool) Call(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in validateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("validate_todo_list: decode input: %w", err)
	}
	if in.Body == "" {
		return nil, fmt.Errorf("validate_todo_list: body is required")
	}

	format := content.FormatYAML
	if in.Format != "" {
		var err error
		format, err = content.ParseFormat(in.Format)
		if err != nil {
			return nil, err
		}
	}

	report, err := t.app.Generator.ValidateSource([]byte(in.Body), format)
	if err != nil {
		return nil, err
	}

	return json.Marshal(report)
}
