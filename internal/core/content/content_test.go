package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/stencil/internal/core/todo"
)

func hours(f float64) *float64 { return &f }

func sampleList() *todo.List {
	return &todo.List{
		Version:  "1.0",
		Metadata: &todo.ListMetadata{Title: "Sprint"},
		Todos: []todo.Item{
			{ID: "1", Content: "Implement the parser", Status: todo.StatusCompleted, Priority: todo.PriorityHigh, EstimatedHours: hours(4)},
			{ID: "2", Content: "Test the parser", Status: todo.StatusPending, Priority: todo.PriorityMedium, Dependencies: []string{"1"}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeList(t *testing.T) {
	list := sampleList()

	t.Run("yaml round trips", func(t *testing.T) {
		out, err := EncodeList(list, FormatYAML)
		require.NoError(t, err)

		back, err := todo.ParseYAML([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, list, back)
	})

	t.Run("json round trips", func(t *testing.T) {
		out, err := EncodeList(list, FormatJSON)
		require.NoError(t, err)

		back, err := todo.ParseJSON([]byte(out))
		require.NoError(t, err)
		assert.Equal(t, list, back)
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := EncodeList(list, FormatMarkdown)
		require.NoError(t, err)

		assert.Contains(t, out, "# Sprint")
		assert.Contains(t, out, "- [x] **1** Implement the parser _(high; 4h)_")
		assert.Contains(t, out, "- [ ] **2** Test the parser _(after 1)_")
	})

	t.Run("text", func(t *testing.T) {
		out, err := EncodeList(list, FormatText)
		require.NoError(t, err)

		assert.Contains(t, out, "Sprint\n======")
		assert.Contains(t, out, "1. [completed] Implement the parser (high, 4h)")
		assert.Contains(t, out, "2. [pending] Test the parser (medium)")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := EncodeList(list, Format("xml"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, f := range Formats {
			first, err := EncodeList(list, f)
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, err := EncodeList(list, f)
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		}
	})
}

func TestNewGenerated(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	gen := NewGenerated("todo_list", "1.0.0", FormatYAML, "todos: []\n", func() time.Time { return fixed })

	assert.Len(t, gen.ID, 8)
	assert.Equal(t, "todo_list", gen.TemplateID)
	assert.Equal(t, "1.0.0", gen.Version)
	assert.Equal(t, FormatYAML, gen.Format)
	assert.Equal(t, fixed, gen.CreatedAt)

	other := NewGenerated("todo_list", "1.0.0", FormatYAML, "todos: []\n", nil)
	assert.NotEqual(t, gen.ID, other.ID)
}
