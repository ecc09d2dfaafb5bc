package template

// Builtins returns the stock template set: a shared base carrying the
// default validation rules, and the todo_list template that extends it.
func Builtins() []*Definition {
	return []*Definition{baseTemplate(), todoListTemplate()}
}

// RegisterBuiltins registers the stock templates into s.
func (s *Store) RegisterBuiltins() error {
	for _, def := range Builtins() {
		if err := s.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func baseTemplate() *Definition {
	return &Definition{
		ID:      "base",
		Version: "1.0.0",
		Metadata: &Metadata{
			Provider:    ProviderDeterministic,
			Description: "Shared root template carrying default validation rules",
			Author:      "stencil",
			Parameters:  map[string]any{"temperature": 0.0},
		},
		Rules: &ValidationSpec{
			DeterministicOnly: true,
			Quality: &QualityGates{
				MaxComplexityPerTask:   8,
				RequireTimeEstimates:   true,
				RequireSpecificActions: true,
				MinTaskDetailChars:     10,
				MaxTaskDetailChars:     100,
			},
			Structure: &StructureRules{
				MaxItems:                    50,
				MinItems:                    1,
				RequireDependencyGraph:      true,
				PreventCircularDependencies: true,
			},
		},
	}
}

func todoListTemplate() *Definition {
	return &Definition{
		ID:      "todo_list",
		Version: "1.0.0",
		Extends: "base",
		Metadata: &Metadata{
			Provider:    ProviderDeterministic,
			Description: "Deterministic todo list generation from structured task input",
			Author:      "stencil",
			Parameters:  map[string]any{"temperature": 0.0},
		},
		Input: &Schema{
			Type: TypeObject,
			Required: []string{"title", "tasks"},
			Properties: map[string]*Schema{
				"title": {
					Type:        TypeString,
					Description: "Title of the todo list",
				},
				"description": {
					Type:        TypeString,
					Description: "Optional list description",
					Default:     "",
				},
				"tasks": {
					Type:        TypeArray,
					Description: "Tasks to include, in order",
					Items: &Schema{
						Type:     TypeObject,
						Required: []string{"id", "content"},
						Properties: map[string]*Schema{
							"id":       {Type: TypeString},
							"content":  {Type: TypeString},
							"status":   {Type: TypeString, Enum: []string{"pending", "in_progress", "completed"}, Default: "pending"},
							"priority": {Type: TypeString, Enum: []string{"low", "medium", "high", "critical"}, Default: "medium"},
							// 0 means no estimate, the body omits the line.
							"estimated_hours": {Type: TypeNumber, Default: 0.0},
							"dependencies":    {Type: TypeArray, Items: &Schema{Type: TypeString}, Default: []any{}},
							"tags":            {Type: TypeArray, Items: &Schema{Type: TypeString}, Default: []any{}},
						},
					},
				},
			},
		},
		Output: &OutputSpec{
			Format:    "yaml",
			Structure: "todo list with metadata header and ordered todos",
			Required:  []string{"todos"},
			Example: `version: "1.0"
metadata:
  title: "Example"
todos:
  - id: "1"
    content: "Implement the first task"
    status: pending
    priority: medium
`,
		},
		Body: todoListBody,
	}
}

// Every interpolated scalar is quoted so content containing YAML syntax
// ("#", ": ") survives the round trip intact. Optional task keys are
// guaranteed present by the input schema defaults.
const todoListBody = `version: "1.0"
metadata:
  title: {{printf "%q" .title}}
{{- if .description}}
  description: {{printf "%q" .description}}
{{- end}}
todos:
{{- range .tasks}}
  - id: {{printf "%q" .id}}
    content: {{printf "%q" .content}}
    status: {{.status}}
    priority: {{.priority}}
{{- if .estimated_hours}}
    estimated_hours: {{.estimated_hours}}
{{- end}}
{{- if .dependencies}}
    dependencies:
{{- range .dependencies}}
      - {{printf "%q" .}}
{{- end}}
{{- end}}
{{- if .tags}}
    tags:
{{- range .tags}}
      - {{printf "%q" .}}
{{- end}}
{{- end}}
{{- end}}
`
