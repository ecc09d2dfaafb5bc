package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]+$`)

	tests := []struct {
		name   string
		length int
	}{
		{"short", 4},
		{"standard", 12},
		{"long", 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := Generate(tt.length)
			assert.Len(t, id, tt.length)
			assert.Regexp(t, pattern, id)
		})
	}

	t.Run("zero and negative lengths", func(t *testing.T) {
		assert.Empty(t, Generate(0))
		assert.Empty(t, Generate(-1))
	})

	t.Run("ids do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := Generate(12)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}
