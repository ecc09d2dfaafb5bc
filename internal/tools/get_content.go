package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/colonyops/stencil/internal/stencil"
)

// GetContentTool fetches a previously generated record by content id.
type GetContentTool struct {
	app *stencil.App
}

// NewGetContentTool wraps app's generation history as a tool.
func NewGetContentTool(app *stencil.App) *GetContentTool {
	return &GetContentTool{app: app}
}

type getContentInput struct {
	ContentID string `json:"content_id"`
}

func (t *GetContentTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "get_content",
		Description: "Fetch a generated content record from this process's history by content id.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["content_id"],
			"properties": {
				"content_id": {"type": "string"}
			}
		}`),
		OutputSchema: json.RawMessage(`{
			"type": "object",
			"required": ["id", "template_id", "format", "body", "created_at"],
			"properties": {
				"id": {"type": "string"},
				"template_id": {"type": "string"},
				"template_version": {"type": "string"},
				"format": {"type": "string"},
				"body": {"type": "string"},
				"created_at": {"type": "string"}
			}
		}`),
	}
}

func (t *GetContentTool) Call(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in getContentInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("get_content: decode input: %w", err)
	}
	if in.ContentID == "" {
		return nil, fmt.Errorf("get_content: content_id is required")
	}

	gen, ok := t.app.History.Get(in.ContentID)
	if !ok {
		return nil, fmt.Errorf("get_content: no record with id %q", in.ContentID)
	}
	return json.Marshal(gen)
}
