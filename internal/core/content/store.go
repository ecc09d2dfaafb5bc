package content

import (
	"sort"

	"github.com/colonyops/stencil/pkg/kv"
)

// Store keeps generation records for the lifetime of the process, so tool
// callers can fetch a previous run by content id.
type Store struct {
	records *kv.Store[string, Generated]
}

// NewStore returns an empty record store.
func NewStore() *Store {
	return &Store{records: kv.New[string, Generated]()}
}

// Save records gen, keyed by its content id. Ids are random, so an existing
// entry is never overwritten.
func (s *Store) Save(gen Generated) bool {
	return s.records.SetIfAbsent(gen.ID, gen)
}

// Get returns the record for id.
func (s *Store) Get(id string) (Generated, bool) {
	return s.records.Get(id)
}

// List returns all records ordered oldest first, ties broken by id.
func (s *Store) List() []Generated {
	out := make([]Generated, 0, s.records.Len())
	for _, id := range s.records.Keys() {
		if gen, ok := s.records.Get(id); ok {
			out = append(out, gen)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return s.records.Len()
}
