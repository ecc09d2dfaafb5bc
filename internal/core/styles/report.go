package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/stencil/internal/core/validate"
)

// FormatReport renders a validation result for the terminal.
func FormatReport(res *validate.Result) string {
	var b strings.Builder

	verdict := Success.Render("VALID")
	if !res.IsValid {
		verdict = Error.Render("INVALID")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Title.Render("Validation"),
		verdict,
		scoreStyle(res.QualityScore).Render(fmt.Sprintf("score %.1f/100", res.QualityScore))))

	m := res.Metrics
	b.WriteString(Muted.Render(fmt.Sprintf("  items %d  actionable %d  estimated %d  avg complexity %.1f  total %gh",
		m.TotalItems, m.ActionableItems, m.ItemsWithEstimates, m.AverageComplexity, m.TotalEstimatedHours)))
	b.WriteString("\n")
	if len(m.CriticalPath) > 0 {
		b.WriteString(Muted.Render(fmt.Sprintf("  critical path %s (%gh)",
			strings.Join(m.CriticalPath, " -> "), m.CriticalPathHours)))
		b.WriteString("\n")
	}

	if len(res.Issues) > 0 {
		b.WriteString("\n")
		for _, is := range res.Issues {
			b.WriteString("  " + severityStyle(is.Severity).Render(string(is.Severity)))
			if is.ItemID != "" {
				b.WriteString(Accent.Render(" " + is.ItemID))
			}
			b.WriteString(" " + is.Message + "\n")
		}
	}

	if len(res.Suggestions) > 0 {
		b.WriteString("\n" + Title.Render("Suggestions") + "\n")
		for _, s := range res.Suggestions {
			b.WriteString("  - " + s + "\n")
		}
	}

	return b.String()
}

func severityStyle(s validate.Severity) lipgloss.Style {
	switch s {
	case validate.SeverityError:
		return Error
	case validate.SeverityWarning:
		return Warning
	default:
		return Muted
	}
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return Success
	case score >= 50:
		return Warning
	default:
		return Error
	}
}
