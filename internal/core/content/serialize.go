package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/stencil/internal/core/todo"
)

// EncodeList serializes a todo list into the given format. Output is a pure
// function of the list, with stable field order in every format.
func EncodeList(list *todo.List, format Format) (string, error) {
	switch format {
	case FormatYAML:
		raw, err := yaml.Marshal(list)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(raw), nil
	case FormatJSON:
		raw, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(raw) + "\n", nil
	case FormatMarkdown:
		return encodeMarkdown(list), nil
	case FormatText:
		return encodeText(list), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func checkbox(s todo.Status) string {
	switch s {
	case todo.StatusCompleted:
		return "[x]"
	case todo.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func encodeMarkdown(list *todo.List) string {
	var b strings.Builder
	if list.Metadata != nil && list.Metadata.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", list.Metadata.Title)
	}
	if list.Metadata != nil && list.Metadata.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", list.Metadata.Description)
	}
	for _, item := range list.Todos {
		fmt.Fprintf(&b, "- %s **%s** %s", checkbox(item.Status), item.ID, item.Content)
		var notes []string
		if item.Priority != "" && item.Priority != todo.PriorityMedium {
			notes = append(notes, string(item.Priority))
		}
		if item.EstimatedHours != nil {
			notes = append(notes, fmt.Sprintf("%gh", *item.EstimatedHours))
		}
		if len(item.Dependencies) > 0 {
			notes = append(notes, "after "+strings.Join(item.Dependencies, ", "))
		}
		if len(notes) > 0 {
			fmt.Fprintf(&b, " _(%s)_", strings.Join(notes, "; "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func encodeText(list *todo.List) string {
	var b strings.Builder
	if list.Metadata != nil && list.Metadata.Title != "" {
		fmt.Fprintf(&b, "%s\n%s\n", list.Metadata.Title, strings.Repeat("=", len(list.Metadata.Title)))
	}
	for i, item := range list.Todos {
		fmt.Fprintf(&b, "%d. [%s] %s (%s", i+1, item.Status, item.Content, item.Priority)
		if item.EstimatedHours != nil {
			fmt.Fprintf(&b, ", %gh", *item.EstimatedHours)
		}
		b.WriteString(")\n")
	}
	return b.String()
}
