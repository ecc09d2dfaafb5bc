package validate

import "fmt"

// Severity grades an issue. Errors fail validation, warnings and info do
// not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category groups issues by the check that produced them.
type Category string

const (
	CategoryStructure    Category = "structure"
	CategoryQuality      Category = "quality"
	CategoryDependencies Category = "dependencies"
)

// Issue is a single finding against an item or against the list itself.
// ItemID is empty for list-level findings.
type Issue struct {
	Severity Severity `yaml:"severity" json:"severity"`
	Category Category `yaml:"category" json:"category"`
	ItemID   string   `yaml:"item_id,omitempty" json:"item_id,omitempty"`
	Message  string   `yaml:"message" json:"message"`
}

func (i Issue) String() string {
	if i.ItemID == "" {
		return fmt.Sprintf("[%s/%s] %s", i.Severity, i.Category, i.Message)
	}
	return fmt.Sprintf("[%s/%s] item %s: %s", i.Severity, i.Category, i.ItemID, i.Message)
}

// Metrics summarizes the analyzed list.
type Metrics struct {
	TotalItems          int      `yaml:"total_items" json:"total_items"`
	ActionableItems     int      `yaml:"actionable_items" json:"actionable_items"`
	ItemsWithEstimates  int      `yaml:"items_with_estimates" json:"items_with_estimates"`
	AverageComplexity   float64  `yaml:"average_complexity" json:"average_complexity"`
	TotalEstimatedHours float64  `yaml:"total_estimated_hours" json:"total_estimated_hours"`
	CriticalPath        []string `yaml:"critical_path,omitempty" json:"critical_path,omitempty"`
	CriticalPathHours   float64  `yaml:"critical_path_hours" json:"critical_path_hours"`
}

// Result is a full validation report. QualityScore runs 0 to 100.
type Result struct {
	IsValid      bool     `yaml:"is_valid" json:"is_valid"`
	QualityScore float64  `yaml:"quality_score" json:"quality_score"`
	Issues       []Issue  `yaml:"issues,omitempty" json:"issues,omitempty"`
	Suggestions  []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
	Metrics      Metrics  `yaml:"metrics" json:"metrics"`
}

// Errors returns only the error-severity issues.
func (r *Result) Errors() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			out = append(out, is)
		}
	}
	return out
}
