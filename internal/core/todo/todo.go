// Package todo defines the structured todo list model, its parser, and the
// dependency graph analysis over it.
package todo

import (
	"slices"
	"strings"
)

// Status is an item's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses is the closed set of valid statuses.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Priority is an item's urgency level.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities is the closed set of valid priorities.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Item is a single todo entry.
type Item struct {
	ID             string   `yaml:"id" json:"id"`
	Content        string   `yaml:"content" json:"content"`
	Status         Status   `yaml:"status" json:"status"`
	Priority       Priority `yaml:"priority" json:"priority"`
	EstimatedHours *float64 `yaml:"estimated_hours,omitempty" json:"estimated_hours,omitempty"`
	Dependencies   []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Tags           []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// ListMetadata is the optional header block of a list.
type ListMetadata struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// List is an ordered todo list. Item order is the insertion order of the
// source document and is significant for tie-breaking in graph analysis.
type List struct {
	Version  string        `yaml:"version,omitempty" json:"version,omitempty"`
	Metadata *ListMetadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Todos    []Item        `yaml:"todos" json:"todos"`
}

// ValidStatus reports whether s is in the closed status set.
func ValidStatus(s Status) bool { return slices.Contains(Statuses, s) }

// ValidPriority reports whether p is in the closed priority set.
func ValidPriority(p Priority) bool { return slices.Contains(Priorities, p) }

// IsActionable reports whether the item content starts with one of the
// given action verbs. Matching is case-insensitive on the first word.
func (i Item) IsActionable(verbs []string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(i.Content), " ")
	first = strings.ToLower(strings.Trim(first, ".,:;!?"))
	return slices.Contains(verbs, first)
}

// Complexity keyword sets. Heavier terms indicate work that tends to
// sprawl; tech terms add a smaller bump.
var (
	complexityKeywords = []string{
		"integrate", "refactor", "optimize", "migrate", "analyze",
		"algorithm", "performance", "security", "architecture",
	}
	techTerms = []string{"database", "api", "system"}
)

// ComplexityScore estimates item complexity on a 1..10 scale from content
// keywords, clause structure, and dependency fan-in.
func (i Item) ComplexityScore() int {
	score := 1
	lower := strings.ToLower(i.Content)

	for _, kw := range complexityKeywords {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	for _, term := range techTerms {
		if strings.Contains(lower, term) {
			score++
		}
	}

	// Multi-clause content reads as compound work.
	clauses := strings.Count(lower, " and ") + strings.Count(lower, ",")
	score += clauses

	if len(i.Dependencies) > 2 {
		score++
	}

	if score > 10 {
		return 10
	}
	return score
}
