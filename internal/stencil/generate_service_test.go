package stencil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/stencil/internal/core/config"
	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/quality"
	"github.com/colonyops/stencil/internal/core/template"
	"github.com/colonyops/stencil/internal/core/todo"
)

func testApp(t *testing.T, proxy quality.Proxy) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	store := template.NewStore()
	require.NoError(t, store.RegisterBuiltins())
	return NewApp(&cfg, store, proxy)
}

func sprintInput() map[string]any {
	return map[string]any{
		"title": "Sprint",
		"tasks": []any{
			map[string]any{"id": "1", "content": "Implement the parser core", "estimated_hours": 4.0},
			map[string]any{
				"id":              "2",
				"content":         "Test the parser end to end",
				"estimated_hours": 2.0,
				"dependencies":    []any{"1"},
			},
		},
	}
}

func TestGenerateService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline", func(t *testing.T) {
		app := testApp(t, nil)
		res, err := app.Generator.Generate(ctx, GenerateOptions{
			TemplateID: "todo_list",
			Input:      sprintInput(),
		})
		require.NoError(t, err)

		assert.Equal(t, "todo_list", res.Content.TemplateID)
		assert.Equal(t, content.FormatYAML, res.Content.Format)
		assert.True(t, res.Content.Deterministic)
		require.Len(t, res.List.Todos, 2)
		assert.Equal(t, todo.StatusPending, res.List.Todos[0].Status)

		assert.True(t, res.Report.IsValid)
		assert.InDelta(t, 100.0, res.Report.QualityScore, 0.001)
		assert.Equal(t, []string{"1", "2"}, res.Report.Metrics.CriticalPath)

		rec, ok := app.History.Get(res.Content.ID)
		require.True(t, ok)
		assert.Equal(t, res.Content, rec)
	})

	t.Run("deterministic body across runs", func(t *testing.T) {
		app := testApp(t, nil)
		first, err := app.Generator.Generate(ctx, GenerateOptions{TemplateID: "todo_list", Input: sprintInput()})
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			again, err := app.Generator.Generate(ctx, GenerateOptions{TemplateID: "todo_list", Input: sprintInput()})
			require.NoError(t, err)
			assert.Equal(t, first.Content.Body, again.Content.Body)
			assert.Equal(t, first.Report, again.Report)
			assert.NotEqual(t, first.Content.ID, again.Content.ID)
		}
	})

	t.Run("yaml syntax in content round trips", func(t *testing.T) {
		app := testApp(t, nil)
		res, err := app.Generator.Generate(ctx, GenerateOptions{
			TemplateID: "todo_list",
			Input: map[string]any{
				"title": "Sprint #3",
				"tasks": []any{
					map[string]any{"id": "1", "content": "Implement issue #42 in the parser", "estimated_hours": 4.0},
					map[string]any{"id": "2", "content": "Deploy service: staging first", "estimated_hours": 2.0},
				},
			},
		})
		require.NoError(t, err)
		require.Len(t, res.List.Todos, 2)
		require.NotNil(t, res.List.Metadata)
		assert.Equal(t, "Sprint #3", res.List.Metadata.Title)
		assert.Equal(t, "Implement issue #42 in the parser", res.List.Todos[0].Content)
		assert.Equal(t, "Deploy service: staging first", res.List.Todos[1].Content)
	})

	t.Run("format override reencodes", func(t *testing.T) {
		app := testApp(t, nil)
		res, err := app.Generator.Generate(ctx, GenerateOptions{
			TemplateID: "todo_list",
			Input:      sprintInput(),
			Format:     content.FormatMarkdown,
		})
		require.NoError(t, err)
		assert.Equal(t, content.FormatMarkdown, res.Content.Format)
		assert.Contains(t, res.Content.Body, "# Sprint")
		assert.Contains(t, res.Content.Body, "- [ ] **1** Implement the parser core")
	})

	t.Run("unknown template", func(t *testing.T) {
		app := testApp(t, nil)
		_, err := app.Generator.Generate(ctx, GenerateOptions{TemplateID: "ghost", Input: sprintInput()})
		assert.ErrorIs(t, err, template.ErrNotFound)
	})

	t.Run("schema violation aborts", func(t *testing.T) {
		app := testApp(t, nil)
		_, err := app.Generator.Generate(ctx, GenerateOptions{
			TemplateID: "todo_list",
			Input:      map[string]any{"title": "Sprint"},
		})
		assert.ErrorIs(t, err, template.ErrSchemaViolation)
	})

	t.Run("validation findings do not abort", func(t *testing.T) {
		app := testApp(t, nil)
		res, err := app.Generator.Generate(ctx, GenerateOptions{
			TemplateID: "todo_list",
			Input: map[string]any{
				"title": "Sprint",
				"tasks": []any{
					map[string]any{"id": "1", "content": "Fix stuff"},
				},
			},
		})
		require.NoError(t, err)
		assert.False(t, res.Report.IsValid)
		assert.NotEmpty(t, res.Report.Issues)
	})
}

type verdictProxy struct {
	decision quality.Decision
	gotBody  string
}

func (p *verdictProxy) Review(ctx context.Context, templateID, body string) (quality.Decision, error) {
	p.gotBody = body
	return p.decision, nil
}

func TestGenerateService_QualityProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("reject aborts", func(t *testing.T) {
		proxy := &verdictProxy{decision: quality.Decision{Verdict: quality.VerdictReject, Reason: "too vague"}}
		app := testApp(t, proxy)

		_, err := app.Generator.Generate(ctx, GenerateOptions{TemplateID: "todo_list", Input: sprintInput()})
		require.Error(t, err)
		assert.ErrorIs(t, err, quality.ErrRejected)
		assert.Contains(t, err.Error(), "too vague")
		assert.NotEmpty(t, proxy.gotBody)
	})

	t.Run("modify swaps the body", func(t *testing.T) {
		modified := "todos:\n  - id: \"1\"\n    content: Implement the reviewed task\n    estimated_hours: 1\n"
		proxy := &verdictProxy{decision: quality.Decision{Verdict: quality.VerdictModify, Body: modified}}
		app := testApp(t, proxy)

		res, err := app.Generator.Generate(ctx, GenerateOptions{TemplateID: "todo_list", Input: sprintInput()})
		require.NoError(t, err)
		require.Len(t, res.List.Todos, 1)
		assert.Equal(t, "Implement the reviewed task", res.List.Todos[0].Content)
	})
}

func TestGenerateService_ValidateSource(t *testing.T) {
	app := testApp(t, nil)

	res, err := app.Generator.ValidateSource([]byte("todos:\n  - id: \"1\"\n    content: Implement the cache layer\n    estimated_hours: 2\n"), content.FormatYAML)
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	_, err = app.Generator.ValidateSource([]byte("todos: ["), content.FormatYAML)
	assert.ErrorIs(t, err, todo.ErrParse)

	_, err = app.Generator.ValidateSource([]byte("# list"), content.FormatMarkdown)
	assert.ErrorIs(t, err, content.ErrUnknownFormat)
}
