package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is matching. Rich context lives on the wrapper
// types below, matched via errors.As.
var (
	// ErrNotFound indicates a template identifier is not registered.
	ErrNotFound = errors.New("template not found")
	// ErrDuplicate indicates a template id+version is already registered.
	ErrDuplicate = errors.New("duplicate template")
	// ErrInheritanceCycle indicates an extends chain revisits an identifier.
	ErrInheritanceCycle = errors.New("template inheritance cycle")
	// ErrSchemaViolation indicates input does not satisfy the input schema.
	ErrSchemaViolation = errors.New("input schema violation")
	// ErrRender indicates template body execution failed.
	ErrRender = errors.New("template render failed")
	// ErrLimitExceeded indicates rendered output violates length bounds.
	ErrLimitExceeded = errors.New("rendered output length limit exceeded")
	// ErrInvalidDefinition indicates a definition failed self-validation.
	ErrInvalidDefinition = errors.New("invalid template definition")
)

// NotFoundError reports a lookup miss for a template identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("template %q not found", e.ID) }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateError reports a re-registration of an existing id+version pair.
type DuplicateError struct {
	ID      string
	Version string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("template %q version %s is already registered", e.ID, e.Version)
}
func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// InheritanceCycleError reports a cyclic extends chain. Path holds the full
// walk, ending with the first revisited identifier.
type InheritanceCycleError struct {
	Path []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("template inheritance cycle: %s", strings.Join(e.Path, " -> "))
}
func (e *InheritanceCycleError) Unwrap() error { return ErrInheritanceCycle }

// SchemaViolationError reports an input value that disagrees with the input
// schema. Field is the dotted path to the offending value.
type SchemaViolationError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("input field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}
func (e *SchemaViolationError) Unwrap() error { return ErrSchemaViolation }

// RenderError reports a failed body execution, naming the missing symbol or
// helper in Detail.
type RenderError struct {
	TemplateID string
	Detail     string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render template %q: %s", e.TemplateID, e.Detail)
}
func (e *RenderError) Unwrap() error { return ErrRender }

// LimitError reports rendered output outside the definition's length bounds.
type LimitError struct {
	TemplateID string
	Length     int
	Min        int
	Max        int
}

func (e *LimitError) Error() string {
	if e.Max > 0 && e.Length > e.Max {
		return fmt.Sprintf("template %q: rendered length %d exceeds maximum %d", e.TemplateID, e.Length, e.Max)
	}
	return fmt.Sprintf("template %q: rendered length %d below minimum %d", e.TemplateID, e.Length, e.Min)
}
func (e *LimitError) Unwrap() error { return ErrLimitExceeded }

// DefinitionError reports a definition that failed self-validation.
type DefinitionError struct {
	ID     string
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid template definition: %s", e.Reason)
	}
	return fmt.Sprintf("invalid template definition %q: %s", e.ID, e.Reason)
}
func (e *DefinitionError) Unwrap() error { return ErrInvalidDefinition }
