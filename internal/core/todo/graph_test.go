package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(f float64) *float64 { return &f }

func listOf(items ...Item) *List { return &List{Todos: items} }

func TestNewGraph(t *testing.T) {
	t.Run("missing dependency reported before cycles", func(t *testing.T) {
		list := listOf(
			Item{ID: "1", Content: "Implement a", Dependencies: []string{"9"}},
			Item{ID: "2", Content: "Implement b", Dependencies: []string{"1"}},
			Item{ID: "3", Content: "Implement c", Dependencies: []string{"2"}},
		)
		_, err := NewGraph(list)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingDependency)

		var md *MissingDependencyError
		require.ErrorAs(t, err, &md)
		assert.Equal(t, "1", md.ItemID)
		assert.Equal(t, "9", md.DependencyID)
	})

	t.Run("every dangling reference collected", func(t *testing.T) {
		list := listOf(
			Item{ID: "1", Content: "Implement a", Dependencies: []string{"9"}},
			Item{ID: "2", Content: "Implement b", Dependencies: []string{"8", "1"}},
		)
		_, err := NewGraph(list)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingDependency)
		assert.Contains(t, err.Error(), `"9"`)
		assert.Contains(t, err.Error(), `"8"`)
	})
}

func TestGraph_DetectCycle(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a"},
			Item{ID: "2", Content: "Implement b", Dependencies: []string{"1"}},
			Item{ID: "3", Content: "Implement c", Dependencies: []string{"1", "2"}},
		))
		require.NoError(t, err)
		assert.Nil(t, g.DetectCycle())
	})

	t.Run("three node cycle", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a", Dependencies: []string{"3"}},
			Item{ID: "2", Content: "Implement b", Dependencies: []string{"1"}},
			Item{ID: "3", Content: "Implement c", Dependencies: []string{"2"}},
		))
		require.NoError(t, err)

		cyc := g.DetectCycle()
		require.NotNil(t, cyc)
		assert.ErrorIs(t, cyc, ErrDependencyCycle)
		assert.Equal(t, []string{"1", "3", "2", "1"}, cyc.Path)
	})

	t.Run("self dependency", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a", Dependencies: []string{"1"}},
		))
		require.NoError(t, err)

		cyc := g.DetectCycle()
		require.NotNil(t, cyc)
		assert.Equal(t, []string{"1", "1"}, cyc.Path)
	})

	t.Run("cycle beyond acyclic prefix", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a"},
			Item{ID: "2", Content: "Implement b", Dependencies: []string{"1"}},
			Item{ID: "3", Content: "Implement c", Dependencies: []string{"4"}},
			Item{ID: "4", Content: "Implement d", Dependencies: []string{"3"}},
		))
		require.NoError(t, err)

		cyc := g.DetectCycle()
		require.NotNil(t, cyc)
		assert.Equal(t, []string{"3", "4", "3"}, cyc.Path)
	})
}

func TestGraph_CriticalPath(t *testing.T) {
	t.Run("max weight chain in execution order", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a", EstimatedHours: hours(2)},
			Item{ID: "2", Content: "Implement b", EstimatedHours: hours(8), Dependencies: []string{"1"}},
			Item{ID: "3", Content: "Implement c", EstimatedHours: hours(1), Dependencies: []string{"1"}},
			Item{ID: "4", Content: "Implement d", EstimatedHours: hours(3), Dependencies: []string{"2", "3"}},
		))
		require.NoError(t, err)

		path, total := g.CriticalPath()
		assert.Equal(t, []string{"1", "2", "4"}, path)
		assert.Equal(t, 13.0, total)
	})

	t.Run("missing estimates weigh zero", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a"},
			Item{ID: "2", Content: "Implement b", EstimatedHours: hours(5), Dependencies: []string{"1"}},
		))
		require.NoError(t, err)

		path, total := g.CriticalPath()
		assert.Equal(t, []string{"1", "2"}, path)
		assert.Equal(t, 5.0, total)
	})

	t.Run("ties break toward earlier items", func(t *testing.T) {
		g, err := NewGraph(listOf(
			Item{ID: "1", Content: "Implement a", EstimatedHours: hours(4)},
			Item{ID: "2", Content: "Implement b", EstimatedHours: hours(4)},
			Item{ID: "3", Content: "Implement c", EstimatedHours: hours(2), Dependencies: []string{"1"}},
			Item{ID: "4", Content: "Implement d", EstimatedHours: hours(2), Dependencies: []string{"2"}},
		))
		require.NoError(t, err)

		path, total := g.CriticalPath()
		assert.Equal(t, []string{"1", "3"}, path)
		assert.Equal(t, 6.0, total)
	})

	t.Run("empty list", func(t *testing.T) {
		g, err := NewGraph(listOf())
		require.NoError(t, err)

		path, total := g.CriticalPath()
		assert.Nil(t, path)
		assert.Zero(t, total)
	})
}

func TestItem_ComplexityScore(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
	}{
		{
			name: "plain task",
			item: Item{Content: "Write the release notes"},
			want: 1,
		},
		{
			name: "heavy keyword",
			item: Item{Content: "Refactor the session layer"},
			want: 3,
		},
		{
			name: "keyword plus tech term",
			item: Item{Content: "Optimize database queries"},
			want: 4,
		},
		{
			name: "clauses add up",
			item: Item{Content: "Implement login, logout and session refresh"},
			want: 3,
		},
		{
			name: "fan in bonus",
			item: Item{Content: "Write docs", Dependencies: []string{"1", "2", "3"}},
			want: 2,
		},
		{
			name: "capped at ten",
			item: Item{
				Content:      "Refactor, optimize and migrate the database architecture, analyze api performance and security",
				Dependencies: []string{"1", "2", "3"},
			},
			want: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.ComplexityScore())
		})
	}
}

func TestItem_IsActionable(t *testing.T) {
	verbs := []string{"implement", "write", "fix"}

	assert.True(t, Item{Content: "Implement the cache"}.IsActionable(verbs))
	assert.True(t, Item{Content: "write tests"}.IsActionable(verbs))
	assert.False(t, Item{Content: "The cache"}.IsActionable(verbs))
	assert.False(t, Item{Content: "Stuff"}.IsActionable(verbs))
	assert.False(t, Item{Content: ""}.IsActionable(verbs))
}
