package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `version: "1.0"
metadata:
  title: Sprint
todos:
  - id: "1"
    content: Implement the parser
    status: pending
    priority: high
    estimated_hours: 4
  - id: "2"
    content: Test the parser
    dependencies:
      - "1"
    tags:
      - testing
`

func TestParseYAML(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		list, err := ParseYAML([]byte(sampleYAML))
		require.NoError(t, err)
		require.Len(t, list.Todos, 2)

		assert.Equal(t, "Sprint", list.Metadata.Title)
		assert.Equal(t, "1", list.Todos[0].ID)
		assert.Equal(t, StatusPending, list.Todos[0].Status)
		assert.Equal(t, PriorityHigh, list.Todos[0].Priority)
		require.NotNil(t, list.Todos[0].EstimatedHours)
		assert.Equal(t, 4.0, *list.Todos[0].EstimatedHours)

		// Absent status and priority take their defaults.
		assert.Equal(t, StatusPending, list.Todos[1].Status)
		assert.Equal(t, PriorityMedium, list.Todos[1].Priority)
		assert.Equal(t, []string{"1"}, list.Todos[1].Dependencies)
	})

	t.Run("malformed yaml carries line", func(t *testing.T) {
		_, err := ParseYAML([]byte("todos:\n  - id: \"1\"\n   content: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "yaml", pe.Format)
		assert.Greater(t, pe.Line, 0)
	})

	t.Run("missing todos key", func(t *testing.T) {
		_, err := ParseYAML([]byte("version: \"1.0\"\nitems: []\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := ParseYAML([]byte("todos:\n  - id: \"1\"\n    content: Implement it\n    urgency: max\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("schema mismatches", func(t *testing.T) {
		tests := []struct {
			name  string
			doc   string
			field string
		}{
			{
				name:  "empty id",
				doc:   "todos:\n  - id: \"\"\n    content: Implement it\n",
				field: "todos[0].id",
			},
			{
				name:  "empty content",
				doc:   "todos:\n  - id: \"1\"\n    content: \"\"\n",
				field: "todos[0].content",
			},
			{
				name:  "unknown status",
				doc:   "todos:\n  - id: \"1\"\n    content: Implement it\n    status: paused\n",
				field: "todos[0].status",
			},
			{
				name:  "unknown priority",
				doc:   "todos:\n  - id: \"1\"\n    content: Implement it\n    priority: urgent\n",
				field: "todos[0].priority",
			},
			{
				name:  "negative estimate",
				doc:   "todos:\n  - id: \"1\"\n    content: Implement it\n    estimated_hours: -2\n",
				field: "todos[0].estimated_hours",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseYAML([]byte(tt.doc))
				require.Error(t, err)

				var sm *SchemaMismatchError
				require.ErrorAs(t, err, &sm)
				assert.Equal(t, tt.field, sm.Field)
			})
		}
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		list, err := ParseJSON([]byte(`{"todos":[{"id":"1","content":"Implement the parser","status":"completed"}]}`))
		require.NoError(t, err)
		require.Len(t, list.Todos, 1)
		assert.Equal(t, StatusCompleted, list.Todos[0].Status)
	})

	t.Run("syntax error carries line", func(t *testing.T) {
		_, err := ParseJSON([]byte("{\n  \"todos\": [,]\n}"))
		require.Error(t, err)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "json", pe.Format)
		assert.Equal(t, 2, pe.Line)
	})

	t.Run("missing todos key", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"items":[]}`))
		assert.ErrorIs(t, err, ErrSchemaMismatch)
	})
}

func TestRequireRootKeys(t *testing.T) {
	raw := []byte("version: \"1.0\"\ntodos: []\n")
	assert.NoError(t, RequireRootKeys(raw, []string{"version", "todos"}))

	err := RequireRootKeys(raw, []string{"todos", "metadata"})
	require.Error(t, err)
	var sm *SchemaMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "metadata", sm.Field)
}
