package template

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/stencil/internal/core/logging"
)

const resolveCacheSize = 256

// Store holds registered template definitions and resolves inheritance
// chains. All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]*Definition
	cache *lru.Cache[string, *Resolved]
	log   zerolog.Logger
}

// NewStore returns an empty store. Built-in templates are not registered
// automatically; call RegisterBuiltins for the stock set.
func NewStore() *Store {
	cache, _ := lru.New[string, *Resolved](resolveCacheSize)
	return &Store{
		byID:  make(map[string]*Definition),
		cache: cache,
		log:   logging.Component("template"),
	}
}

// Register validates and stores a definition. A definition with the same id
// and version as an existing one is rejected with DuplicateError. Registering
// a new version under an existing id replaces the stored definition and
// purges cached resolutions that may have depended on it.
func (s *Store) Register(def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byID[def.ID]; ok && existing.Version == def.Version {
		return &DuplicateError{ID: def.ID, Version: def.Version}
	}
	s.byID[def.ID] = def

	// Any cached resolution could have this definition somewhere in its
	// chain, so drop them all rather than track reverse edges.
	s.cache.Purge()

	s.log.Debug().
		Str("template_id", def.ID).
		Str("version", def.Version).
		Str("extends", def.Extends).
		Msg("template registered")
	return nil
}

// Get returns the registered definition for id, or NotFoundError.
func (s *Store) Get(id string) (*Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return def, nil
}

// List returns all registered definitions in unspecified order.
func (s *Store) List() []*Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Definition, 0, len(s.byID))
	for _, def := range s.byID {
		out = append(out, def)
	}
	return out
}

// Remove deletes the definition for id and purges the resolution cache.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.byID, id)
	s.cache.Purge()
	return nil
}

// Resolve walks the extends chain for id and merges it root-first into a
// single effective template. Resolutions are cached by id and version; the
// cache is purged whenever any definition changes.
func (s *Store) Resolve(id string) (*Resolved, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	key := def.ID + "@" + def.Version
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	chain, err := s.chain(def)
	if err != nil {
		return nil, err
	}

	resolved := merge(chain)
	s.cache.Add(key, resolved)
	return resolved, nil
}

// chain collects the inheritance chain for def ordered root first. The
// caller must hold at least a read lock.
func (s *Store) chain(def *Definition) ([]*Definition, error) {
	var chain []*Definition
	seen := map[string]bool{}
	path := []string{}

	for cur := def; ; {
		if seen[cur.ID] {
			return nil, &InheritanceCycleError{Path: append(path, cur.ID)}
		}
		seen[cur.ID] = true
		path = append(path, cur.ID)
		chain = append([]*Definition{cur}, chain...)

		if cur.Extends == "" {
			return chain, nil
		}
		parent, ok := s.byID[cur.Extends]
		if !ok {
			return nil, &NotFoundError{ID: cur.Extends}
		}
		cur = parent
	}
}

// merge folds a root-first chain into one effective definition. Sections
// override wholesale: a child that declares a section replaces the parent's
// section entirely, lists included.
func merge(chain []*Definition) *Resolved {
	leaf := chain[len(chain)-1]
	eff := Definition{ID: leaf.ID, Version: leaf.Version}
	lineage := make([]string, 0, len(chain))

	for _, def := range chain {
		lineage = append(lineage, def.ID)
		if def.Metadata != nil {
			eff.Metadata = def.Metadata
		}
		if def.Input != nil {
			eff.Input = def.Input
		}
		if def.Output != nil {
			eff.Output = def.Output
		}
		if def.Rules != nil {
			eff.Rules = def.Rules
		}
		if def.Body != "" {
			eff.Body = def.Body
		}
	}

	return &Resolved{Definition: eff, Lineage: lineage}
}
