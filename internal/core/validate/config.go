// Package validate scores todo lists for structural soundness and content
// quality.
package validate

// Default thresholds applied when a config field is zero.
const (
	DefaultMinContentLength = 10
	DefaultMaxContentLength = 100
	DefaultMaxComplexity    = 8
	DefaultMinEstimate      = 0.5
	DefaultMaxEstimate      = 40
	DefaultMaxItems         = 50
	DefaultMinItems         = 1
)

// DefaultActionVerbs is the verb whitelist used for actionability checks.
// Content is actionable when its first word is one of these.
var DefaultActionVerbs = []string{
	"implement", "create", "build", "write", "add", "remove", "update",
	"fix", "test", "deploy", "configure", "setup", "install", "design",
	"develop", "refactor", "optimize", "migrate", "integrate", "debug",
	"analyze", "research", "document", "validate", "verify", "review",
}

// DefaultGenericTerms flag vague task wording.
var DefaultGenericTerms = []string{
	"thing", "stuff", "item", "something", "fix issues", "handle",
}

// DefaultDebtMarkers flag deferred-work markers inside task content.
var DefaultDebtMarkers = []string{"TODO", "FIXME", "HACK", "XXX"}

// Weights splits the quality score across its component checks. The
// defaults sum to 1.
type Weights struct {
	Actionability float64 `yaml:"actionability" json:"actionability"`
	Length        float64 `yaml:"length" json:"length"`
	Complexity    float64 `yaml:"complexity" json:"complexity"`
	Estimates     float64 `yaml:"estimates" json:"estimates"`
	Dependencies  float64 `yaml:"dependencies" json:"dependencies"`
}

// DefaultWeights returns the standard score split.
func DefaultWeights() Weights {
	return Weights{
		Actionability: 0.3,
		Length:        0.2,
		Complexity:    0.2,
		Estimates:     0.2,
		Dependencies:  0.1,
	}
}

// Config tunes the validator. Zero-valued fields take the package defaults
// when normalized.
type Config struct {
	MinContentLength int     `yaml:"min_content_length" json:"min_content_length"`
	MaxContentLength int     `yaml:"max_content_length" json:"max_content_length"`
	MaxComplexity    int     `yaml:"max_complexity" json:"max_complexity"`
	MinEstimate      float64 `yaml:"min_estimate_hours" json:"min_estimate_hours"`
	MaxEstimate      float64 `yaml:"max_estimate_hours" json:"max_estimate_hours"`
	MaxItems         int     `yaml:"max_items" json:"max_items"`
	MinItems         int     `yaml:"min_items" json:"min_items"`

	RequireEstimates       bool `yaml:"require_estimates" json:"require_estimates"`
	RequireSpecificActions bool `yaml:"require_specific_actions" json:"require_specific_actions"`

	ActionVerbs  []string `yaml:"action_verbs,omitempty" json:"action_verbs,omitempty"`
	GenericTerms []string `yaml:"generic_terms,omitempty" json:"generic_terms,omitempty"`
	DebtMarkers  []string `yaml:"debt_markers,omitempty" json:"debt_markers,omitempty"`

	Weights Weights `yaml:"weights" json:"weights"`
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() Config {
	return Config{
		MinContentLength:       DefaultMinContentLength,
		MaxContentLength:       DefaultMaxContentLength,
		MaxComplexity:          DefaultMaxComplexity,
		MinEstimate:            DefaultMinEstimate,
		MaxEstimate:            DefaultMaxEstimate,
		MaxItems:               DefaultMaxItems,
		MinItems:               DefaultMinItems,
		RequireEstimates:       true,
		RequireSpecificActions: true,
		ActionVerbs:            DefaultActionVerbs,
		GenericTerms:           DefaultGenericTerms,
		DebtMarkers:            DefaultDebtMarkers,
		Weights:                DefaultWeights(),
	}
}

// normalized fills zero fields with defaults so partially specified
// overrides behave sensibly.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MinContentLength == 0 {
		c.MinContentLength = d.MinContentLength
	}
	if c.MaxContentLength == 0 {
		c.MaxContentLength = d.MaxContentLength
	}
	if c.MaxComplexity == 0 {
		c.MaxComplexity = d.MaxComplexity
	}
	if c.MinEstimate == 0 {
		c.MinEstimate = d.MinEstimate
	}
	if c.MaxEstimate == 0 {
		c.MaxEstimate = d.MaxEstimate
	}
	if c.MaxItems == 0 {
		c.MaxItems = d.MaxItems
	}
	if c.MinItems == 0 {
		c.MinItems = d.MinItems
	}
	if len(c.ActionVerbs) == 0 {
		c.ActionVerbs = d.ActionVerbs
	}
	if len(c.GenericTerms) == 0 {
		c.GenericTerms = d.GenericTerms
	}
	if len(c.DebtMarkers) == 0 {
		c.DebtMarkers = d.DebtMarkers
	}
	if c.Weights == (Weights{}) {
		c.Weights = d.Weights
	}
	return c
}
