package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/stencil/internal/core/logging"
	"github.com/colonyops/stencil/internal/core/todo"
)

// Validator runs the full structural and quality check suite over a list.
// It never short-circuits: every check runs and every finding lands in the
// report.
type Validator struct {
	cfg Config
	log zerolog.Logger
}

// New returns a validator using cfg, with zero fields defaulted.
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg.normalized(), log: logging.Component("validate")}
}

// ValidateList checks list and returns the scored report. The same list
// always produces the same report.
func (v *Validator) ValidateList(list *todo.List) *Result {
	res := &Result{}
	items := list.Todos

	v.checkStructure(items, res)
	depsOK := v.checkDependencies(list, res)

	counts := struct {
		actionable, lengthOK, complexityOK, estimateOK int
	}{}
	var totalComplexity int
	var totalHours float64

	for _, item := range items {
		actionable := item.IsActionable(v.cfg.ActionVerbs)
		if actionable {
			counts.actionable++
		} else if v.cfg.RequireSpecificActions {
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message:  "content does not start with an action verb",
			})
			res.addSuggestion(fmt.Sprintf("start item %s with an action verb such as %s",
				item.ID, verbExamples(v.cfg.ActionVerbs)))
		}

		n := len(item.Content)
		switch {
		case n < v.cfg.MinContentLength:
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message:  fmt.Sprintf("content is %d characters, minimum is %d", n, v.cfg.MinContentLength),
			})
		case n > v.cfg.MaxContentLength:
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message:  fmt.Sprintf("content is %d characters, maximum is %d", n, v.cfg.MaxContentLength),
			})
		default:
			counts.lengthOK++
		}

		lower := strings.ToLower(item.Content)
		for _, term := range v.cfg.GenericTerms {
			if strings.Contains(lower, term) {
				res.Issues = append(res.Issues, Issue{
					Severity: SeverityWarning,
					Category: CategoryQuality,
					ItemID:   item.ID,
					Message:  fmt.Sprintf("content contains generic term %q", term),
				})
			}
		}
		// Deferred-work markers are a hard failure, not a style nit.
		for _, marker := range v.cfg.DebtMarkers {
			if strings.Contains(item.Content, marker) {
				res.Issues = append(res.Issues, Issue{
					Severity: SeverityError,
					Category: CategoryQuality,
					ItemID:   item.ID,
					Message:  fmt.Sprintf("content contains deferred-work marker %q", marker),
				})
			}
		}

		complexity := item.ComplexityScore()
		totalComplexity += complexity
		if complexity <= v.cfg.MaxComplexity {
			counts.complexityOK++
		} else {
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message:  fmt.Sprintf("complexity %d exceeds maximum %d", complexity, v.cfg.MaxComplexity),
			})
			res.addSuggestion(fmt.Sprintf("split item %s into smaller tasks", item.ID))
		}

		switch {
		case item.EstimatedHours == nil:
			if v.cfg.RequireEstimates {
				res.Issues = append(res.Issues, Issue{
					Severity: SeverityError,
					Category: CategoryQuality,
					ItemID:   item.ID,
					Message:  "missing time estimate",
				})
				res.addSuggestion(fmt.Sprintf("add an estimated_hours value to item %s", item.ID))
			}
		case *item.EstimatedHours > v.cfg.MaxEstimate:
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message: fmt.Sprintf("estimate %.1fh is outside the %.1fh to %.1fh range",
					*item.EstimatedHours, v.cfg.MinEstimate, v.cfg.MaxEstimate),
			})
		case *item.EstimatedHours < v.cfg.MinEstimate:
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityWarning,
				Category: CategoryQuality,
				ItemID:   item.ID,
				Message: fmt.Sprintf("estimate %.1fh is outside the %.1fh to %.1fh range",
					*item.EstimatedHours, v.cfg.MinEstimate, v.cfg.MaxEstimate),
			})
		default:
			counts.estimateOK++
		}

		if item.EstimatedHours != nil {
			totalHours += *item.EstimatedHours
			res.Metrics.ItemsWithEstimates++
		}
	}

	res.Metrics.TotalItems = len(items)
	res.Metrics.ActionableItems = counts.actionable
	res.Metrics.TotalEstimatedHours = totalHours
	if len(items) > 0 {
		res.Metrics.AverageComplexity = float64(totalComplexity) / float64(len(items))
	}

	res.QualityScore = v.score(len(items), counts.actionable, counts.lengthOK,
		counts.complexityOK, counts.estimateOK, depsOK)
	res.IsValid = len(res.Errors()) == 0

	v.log.Debug().
		Int("items", len(items)).
		Int("issues", len(res.Issues)).
		Float64("score", res.QualityScore).
		Bool("valid", res.IsValid).
		Msg("list validated")
	return res
}

// checkStructure enforces list-level counts and id uniqueness.
func (v *Validator) checkStructure(items []todo.Item, res *Result) {
	if len(items) < v.cfg.MinItems {
		res.Issues = append(res.Issues, Issue{
			Severity: SeverityError,
			Category: CategoryStructure,
			Message:  fmt.Sprintf("list has %d items, minimum is %d", len(items), v.cfg.MinItems),
		})
	}
	if len(items) > v.cfg.MaxItems {
		res.Issues = append(res.Issues, Issue{
			Severity: SeverityError,
			Category: CategoryStructure,
			Message:  fmt.Sprintf("list has %d items, maximum is %d", len(items), v.cfg.MaxItems),
		})
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityError,
				Category: CategoryStructure,
				ItemID:   item.ID,
				Message:  fmt.Sprintf("duplicate item id %q", item.ID),
			})
			continue
		}
		seen[item.ID] = true
	}
}

// checkDependencies validates references and acyclicity, filling critical
// path metrics when the graph is sound. It reports whether the graph is
// usable. Every dangling reference surfaces, not just the first.
func (v *Validator) checkDependencies(list *todo.List, res *Result) bool {
	g, err := todo.NewGraph(list)
	if err != nil {
		for _, e := range flattenErrors(err) {
			issue := Issue{
				Severity: SeverityError,
				Category: CategoryDependencies,
				Message:  e.Error(),
			}
			var md *todo.MissingDependencyError
			if errors.As(e, &md) {
				issue.ItemID = md.ItemID
			}
			res.Issues = append(res.Issues, issue)
		}
		return false
	}
	if cyc := g.DetectCycle(); cyc != nil {
		res.Issues = append(res.Issues, Issue{
			Severity: SeverityError,
			Category: CategoryDependencies,
			Message:  cyc.Error(),
		})
		res.addSuggestion(fmt.Sprintf("break the dependency cycle %s", strings.Join(cyc.Path, " -> ")))
		return false
	}

	path, hours := g.CriticalPath()
	res.Metrics.CriticalPath = path
	res.Metrics.CriticalPathHours = hours
	return true
}

// score computes the weighted quality score on a 0 to 100 scale.
func (v *Validator) score(total, actionable, lengthOK, complexityOK, estimateOK int, depsOK bool) float64 {
	if total == 0 {
		return 0
	}
	ratio := func(n int) float64 { return float64(n) / float64(total) }
	deps := 0.0
	if depsOK {
		deps = 1.0
	}
	w := v.cfg.Weights
	raw := w.Actionability*ratio(actionable) +
		w.Length*ratio(lengthOK) +
		w.Complexity*ratio(complexityOK) +
		w.Estimates*ratio(estimateOK) +
		w.Dependencies*deps
	return raw * 100
}

// verbExamples formats up to two verbs for the actionability suggestion.
func verbExamples(verbs []string) string {
	if len(verbs) == 1 {
		return fmt.Sprintf("%q", verbs[0])
	}
	return fmt.Sprintf("%q or %q", verbs[0], verbs[1])
}

// flattenErrors unpacks a joined error into its parts.
func flattenErrors(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

// addSuggestion appends s unless an identical suggestion is already
// present, keeping the report stable and free of repeats.
func (r *Result) addSuggestion(s string) {
	for _, existing := range r.Suggestions {
		if existing == s {
			return
		}
	}
	r.Suggestions = append(r.Suggestions, s)
}
