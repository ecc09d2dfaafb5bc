package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// LoadGlob reads every YAML file matching the doublestar pattern and
// registers it into s. Files are visited in lexical order so registration
// is reproducible across runs.
func (s *Store) LoadGlob(pattern string) (int, error) {
	base, pat := doublestar.SplitPattern(pattern)
	matches, err := doublestar.Glob(os.DirFS(base), pat)
	if err != nil {
		return 0, fmt.Errorf("glob %q: %w", pattern, err)
	}

	loaded := 0
	for _, m := range matches {
		path := filepath.Join(base, m)
		if err := s.LoadFile(path); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// LoadFile reads one YAML template definition and registers it.
func (s *Store) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template %q: %w", path, err)
	}
	def, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("template %q: %w", path, err)
	}
	return s.Register(def)
}

// LoadFS loads every matching template from an fs.FS, used for embedded
// template sets in tests.
func (s *Store) LoadFS(fsys fs.FS, pattern string) (int, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return 0, fmt.Errorf("glob %q: %w", pattern, err)
	}
	loaded := 0
	for _, m := range matches {
		raw, err := fs.ReadFile(fsys, m)
		if err != nil {
			return loaded, fmt.Errorf("read template %q: %w", m, err)
		}
		def, err := Parse(raw)
		if err != nil {
			return loaded, fmt.Errorf("template %q: %w", m, err)
		}
		if err := s.Register(def); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// Parse decodes a YAML template definition. Unknown keys are rejected so a
// misspelled section fails loudly instead of silently disappearing.
func Parse(raw []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, &DefinitionError{Reason: err.Error()}
	}
	return &def, nil
}
