package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLineRe = regexp.MustCompile(`line (\d+):`)

// ParseYAML decodes a rendered todo list document. Decoding is strict:
// unknown keys fail with a line-numbered ParseError, and enum fields outside
// their closed sets fail with SchemaMismatchError.
func ParseYAML(raw []byte) (*List, error) {
	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, yamlParseError(err)
	}
	if _, ok := root["todos"]; !ok {
		return nil, &SchemaMismatchError{Field: "todos", Detail: "required key missing"}
	}

	var list List
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, yamlParseError(err)
	}
	if err := checkList(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ParseJSON decodes a JSON todo list document with the same checks as
// ParseYAML.
func ParseJSON(raw []byte) (*List, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, jsonParseError(raw, err)
	}
	if _, ok := root["todos"]; !ok {
		return nil, &SchemaMismatchError{Field: "todos", Detail: "required key missing"}
	}

	var list List
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		return nil, jsonParseError(raw, err)
	}
	if err := checkList(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RequireRootKeys checks the raw document for the presence of the given
// root-level keys, as declared by a template's output section.
func RequireRootKeys(raw []byte, keys []string) error {
	var root map[string]any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return yamlParseError(err)
	}
	for _, key := range keys {
		if _, ok := root[key]; !ok {
			return &SchemaMismatchError{Field: key, Detail: "required key missing"}
		}
	}
	return nil
}

// checkList enforces per-item schema rules after decoding: non-empty ids
// and content, statuses and priorities inside their closed sets, and
// non-negative estimates. Absent status and priority default to pending and
// medium.
func checkList(list *List) error {
	for idx := range list.Todos {
		item := &list.Todos[idx]
		field := func(name string) string { return fmt.Sprintf("todos[%d].%s", idx, name) }

		if item.ID == "" {
			return &SchemaMismatchError{Field: field("id"), Detail: "id cannot be empty"}
		}
		if item.Content == "" {
			return &SchemaMismatchError{Field: field("content"), Detail: "content cannot be empty"}
		}
		if item.Status == "" {
			item.Status = StatusPending
		} else if !ValidStatus(item.Status) {
			return &SchemaMismatchError{
				Field:  field("status"),
				Detail: fmt.Sprintf("%q is not one of %v", item.Status, Statuses),
			}
		}
		if item.Priority == "" {
			item.Priority = PriorityMedium
		} else if !ValidPriority(item.Priority) {
			return &SchemaMismatchError{
				Field:  field("priority"),
				Detail: fmt.Sprintf("%q is not one of %v", item.Priority, Priorities),
			}
		}
		if item.EstimatedHours != nil && *item.EstimatedHours < 0 {
			return &SchemaMismatchError{Field: field("estimated_hours"), Detail: "estimate cannot be negative"}
		}
	}
	return nil
}

func yamlParseError(err error) error {
	line := 0
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return &ParseError{Format: "yaml", Line: line, Detail: err.Error()}
}

func jsonParseError(raw []byte, err error) error {
	line := 0
	if syn, ok := err.(*json.SyntaxError); ok {
		line = 1 + bytes.Count(raw[:syn.Offset], []byte("\n"))
	}
	return &ParseError{Format: "json", Line: line, Detail: err.Error()}
}
