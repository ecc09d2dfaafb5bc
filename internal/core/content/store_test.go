package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	at := func(offset int) func() time.Time {
		return func() time.Time { return base.Add(time.Duration(offset) * time.Minute) }
	}

	s := NewStore()
	first := NewGenerated("todo_list", "1.0.0", FormatYAML, "todos: []\n", at(2))
	second := NewGenerated("todo_list", "1.0.0", FormatJSON, `{"todos":[]}`, at(1))

	assert.True(t, s.Save(first))
	assert.True(t, s.Save(second))
	assert.False(t, s.Save(first), "same id saves only once")
	assert.Equal(t, 2, s.Len())

	got, ok := s.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "oldest first")
	assert.Equal(t, first.ID, records[1].ID)
}
