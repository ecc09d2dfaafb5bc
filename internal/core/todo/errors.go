package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse             = errors.New("todo list is not parseable")
	ErrSchemaMismatch    = errors.New("todo list does not match expected schema")
	ErrMissingDependency = errors.New("dependency references unknown item")
	ErrDependencyCycle   = errors.New("dependency graph contains a cycle")
)

// ParseError reports malformed source text that could not be decoded.
type ParseError struct {
	Format string
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s at line %d: %s", e.Format, e.Line, e.Detail)
	}
	return fmt.Sprintf("parse %s: %s", e.Format, e.Detail)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// SchemaMismatchError reports well-formed input whose shape or values do not
// match the todo list schema.
type SchemaMismatchError struct {
	Field  string
	Detail string
}

func (e *SchemaMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema mismatch: %s", e.Detail)
	}
	return fmt.Sprintf("schema mismatch at %s: %s", e.Field, e.Detail)
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// MissingDependencyError reports an item depending on an id that does not
// exist in the list.
type MissingDependencyError struct {
	ItemID       string
	DependencyID string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("item %q depends on unknown item %q", e.ItemID, e.DependencyID)
}

func (e *MissingDependencyError) Unwrap() error { return ErrMissingDependency }

// CycleError reports a dependency cycle. Path lists the item ids along the
// cycle, with the starting id repeated at the end.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrDependencyCycle }
