package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/stencil/internal/core/config"
	"github.com/colonyops/stencil/internal/core/template"
	"github.com/colonyops/stencil/internal/stencil"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := config.DefaultConfig()
	store := template.NewStore()
	require.NoError(t, store.RegisterBuiltins())
	app := stencil.NewApp(&cfg, store, nil)
	return NewRegistry(NewGenerateTool(app), NewValidateTool(app), NewGetContentTool(app))
}

func TestRegistry(t *testing.T) {
	reg := testRegistry(t)

	specs := reg.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, "generate", specs[0].Name)
	assert.Equal(t, "get_content", specs[1].Name)
	assert.Equal(t, "validate_todo_list", specs[2].Name)

	_, err := reg.Call(context.Background(), "ghost", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestGenerateTool(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	t.Run("generates and reports", func(t *testing.T) {
		raw, err := reg.Call(ctx, "generate", json.RawMessage(`{
			"template_id": "todo_list",
			"input": {
				"title": "Sprint",
				"tasks": [
					{"id": "1", "content": "Implement the parser core", "estimated_hours": 4},
					{"id": "2", "content": "Test the parser end to end", "estimated_hours": 2, "dependencies": ["1"]}
				]
			}
		}`))
		require.NoError(t, err)

		var out generateOutput
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.NotEmpty(t, out.ContentID)
		assert.Equal(t, "todo_list", out.TemplateID)
		assert.Equal(t, "yaml", out.Format)
		assert.True(t, out.IsValid)
		assert.InDelta(t, 100.0, out.QualityScore, 0.001)
		assert.Contains(t, out.Body, "Implement the parser core")
	})

	t.Run("missing template_id", func(t *testing.T) {
		_, err := reg.Call(ctx, "generate", json.RawMessage(`{"input": {}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template_id")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := reg.Call(ctx, "generate", json.RawMessage(`{"template_id": "todo_list", "input": {}, "format": "xml"}`))
		assert.Error(t, err)
	})
}

func TestValidateTool(t *testing.T) {
	reg := testRegistry(t)
	ctx := context.Background()

	t.Run("valid list", func(t *testing.T) {
		in, _ := json.Marshal(map[string]string{
			"body": "todos:\n  - id: \"1\"\n    content: Implement the cache layer\n    estimated_hours: 2\n",
		})
		raw, err := reg.Call(ctx, "validate_todo_list", in)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, true, out["is_valid"])
	})

	t.Run("json format", func(t *testing.T) {
		in, _ := json.Marshal(map[string]string{
			"body":   `{"todos":[{"id":"1","content":"Implement the cache layer","estimated_hours":2}]}`,
			"format": "json",
		})
		raw, err := reg.Call(ctx, "validate_todo_list", in)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"is_valid":true`)
	})

	t.Run("missing body", func(t *testing.T) {
		_, err := reg.Call(ctx, "validate_todo_list", json.RawMessage(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body")
	})
}

func TestGetContentTool(t *testing.T) {
	cfg := config.DefaultConfig()
	store := template.NewStore()
	require.NoError(t, store.RegisterBuiltins())
	app := stencil.NewApp(&cfg, store, nil)
	reg := NewRegistry(NewGenerateTool(app), NewGetContentTool(app))
	ctx := context.Background()

	raw, err := reg.Call(ctx, "generate", json.RawMessage(`{
		"template_id": "todo_list",
		"input": {"title": "Sprint", "tasks": [{"id": "1", "content": "Implement the cache layer", "estimated_hours": 2}]}
	}`))
	require.NoError(t, err)

	var out generateOutput
	require.NoError(t, json.Unmarshal(raw, &out))

	in, _ := json.Marshal(map[string]string{"content_id": out.ContentID})
	rec, err := reg.Call(ctx, "get_content", in)
	require.NoError(t, err)
	assert.Contains(t, string(rec), out.ContentID)
	assert.Contains(t, string(rec), `"template_id":"todo_list"`)

	_, err = reg.Call(ctx, "get_content", json.RawMessage(`{"content_id": "nope"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record")
}
