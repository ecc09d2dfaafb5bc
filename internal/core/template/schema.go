package template

import (
	"fmt"
	"slices"
	"sort"
)

// Schema field types supported by input schemas.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Schema describes a typed constraint on template input. It covers the
// subset of JSON Schema the template definitions actually use: typed
// properties, required fields, enums, array item schemas, string length
// bounds, and numeric bounds.
type Schema struct {
	Type        string             `yaml:"type" json:"type"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Enum        []string           `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     any                `yaml:"default,omitempty" json:"default,omitempty"`
	MinLength   *int               `yaml:"min_length,omitempty" json:"minLength,omitempty"`
	MaxLength   *int               `yaml:"max_length,omitempty" json:"maxLength,omitempty"`
	Minimum     *float64           `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum     *float64           `yaml:"maximum,omitempty" json:"maximum,omitempty"`
}

// ObjectSchema returns an empty permissive object schema.
func ObjectSchema() *Schema {
	return &Schema{Type: TypeObject}
}

// ValidateInput checks input against the schema, returning the first
// violation found in deterministic (sorted field) order.
func (s *Schema) ValidateInput(input map[string]any) error {
	if s == nil {
		return nil
	}
	return s.validateValue("", input)
}

func (s *Schema) validateValue(path string, value any) error {
	switch s.Type {
	case TypeObject, "":
		obj, ok := value.(map[string]any)
		if !ok {
			return &SchemaViolationError{Field: rootedPath(path), Expected: TypeObject, Actual: typeName(value)}
		}
		for _, req := range s.Required {
			if _, present := obj[req]; !present {
				return &SchemaViolationError{Field: joinPath(path, req), Expected: "required field", Actual: "missing"}
			}
		}
		// Walk declared properties in sorted order so the first reported
		// violation is stable across runs.
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			val, present := obj[name]
			if !present {
				continue
			}
			if err := s.Properties[name].validateValue(joinPath(path, name), val); err != nil {
				return err
			}
		}
		return nil

	case TypeArray:
		arr, ok := toSlice(value)
		if !ok {
			return &SchemaViolationError{Field: rootedPath(path), Expected: TypeArray, Actual: typeName(value)}
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validateValue(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
					return err
				}
			}
		}
		return nil

	case TypeString:
		str, ok := value.(string)
		if !ok {
			return &SchemaViolationError{Field: rootedPath(path), Expected: TypeString, Actual: typeName(value)}
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return &SchemaViolationError{
				Field:    rootedPath(path),
				Expected: fmt.Sprintf("one of %v", s.Enum),
				Actual:   fmt.Sprintf("%q", str),
			}
		}
		if s.MinLength != nil && len(str) < *s.MinLength {
			return &SchemaViolationError{
				Field:    rootedPath(path),
				Expected: fmt.Sprintf("at least %d characters", *s.MinLength),
				Actual:   fmt.Sprintf("%d characters", len(str)),
			}
		}
		if s.MaxLength != nil && len(str) > *s.MaxLength {
			return &SchemaViolationError{
				Field:    rootedPath(path),
				Expected: fmt.Sprintf("at most %d characters", *s.MaxLength),
				Actual:   fmt.Sprintf("%d characters", len(str)),
			}
		}
		return nil

	case TypeNumber, TypeInteger:
		num, ok := toFloat(value)
		if !ok {
			return &SchemaViolationError{Field: rootedPath(path), Expected: s.Type, Actual: typeName(value)}
		}
		if s.Type == TypeInteger && num != float64(int64(num)) {
			return &SchemaViolationError{Field: rootedPath(path), Expected: TypeInteger, Actual: TypeNumber}
		}
		if s.Minimum != nil && num < *s.Minimum {
			return &SchemaViolationError{
				Field:    rootedPath(path),
				Expected: fmt.Sprintf(">= %v", *s.Minimum),
				Actual:   fmt.Sprintf("%v", num),
			}
		}
		if s.Maximum != nil && num > *s.Maximum {
			return &SchemaViolationError{
				Field:    rootedPath(path),
				Expected: fmt.Sprintf("<= %v", *s.Maximum),
				Actual:   fmt.Sprintf("%v", num),
			}
		}
		return nil

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return &SchemaViolationError{Field: rootedPath(path), Expected: TypeBoolean, Actual: typeName(value)}
		}
		return nil

	default:
		return &DefinitionError{Reason: fmt.Sprintf("unknown schema type %q at %s", s.Type, rootedPath(path))}
	}
}

// ApplyDefaults returns a copy of input with schema defaults filled in for
// absent properties, recursing through nested objects and array item
// schemas. The input map is never mutated.
func (s *Schema) ApplyDefaults(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	if s == nil {
		return out
	}
	for name, prop := range s.Properties {
		val, present := out[name]
		if !present {
			if prop.Default != nil {
				out[name] = prop.Default
			}
			continue
		}
		out[name] = prop.applyValueDefaults(val)
	}
	return out
}

func (s *Schema) applyValueDefaults(value any) any {
	if s == nil {
		return value
	}
	switch s.Type {
	case TypeObject, "":
		if obj, ok := value.(map[string]any); ok {
			return s.ApplyDefaults(obj)
		}
	case TypeArray:
		if s.Items == nil {
			return value
		}
		if arr, ok := toSlice(value); ok {
			out := make([]any, len(arr))
			for i, item := range arr {
				out[i] = s.Items.applyValueDefaults(item)
			}
			return out
		}
	}
	return value
}

// Validate checks the schema itself is well-formed.
func (s *Schema) Validate() error {
	if s == nil {
		return nil
	}
	switch s.Type {
	case TypeObject, TypeArray, TypeString, TypeNumber, TypeInteger, TypeBoolean, "":
	default:
		return &DefinitionError{Reason: fmt.Sprintf("unknown schema type %q", s.Type)}
	}
	for name, prop := range s.Properties {
		if err := prop.Validate(); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
	}
	if s.Items != nil {
		if err := s.Items.Validate(); err != nil {
			return fmt.Errorf("items: %w", err)
		}
	}
	return nil
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func rootedPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case int, int64, float64, float32, uint, uint64:
		return TypeNumber
	case map[string]any:
		return TypeObject
	case []any, []string:
		return TypeArray
	default:
		return fmt.Sprintf("%T", v)
	}
}

func toSlice(v any) ([]any, bool) {
	switch vv := v.(type) {
	case []any:
		return vv, true
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case float32:
		return float64(vv), true
	case int:
		return float64(vv), true
	case int64:
		return float64(vv), true
	case uint64:
		return float64(vv), true
	default:
		return 0, false
	}
}
