package roadmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/progression"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	"github.com/abhisek/prepdash/internal/ui/components"
	"github.com/abhisek/prepdash/internal/ui/layout"
	"github.com/abhisek/prepdash/internal/ui/theme"
)

// RoadmapScreen shows the tier progression: one card per difficulty
// tier, the current study phase, and the recommended next steps.
type RoadmapScreen struct {
	eval *progression.Evaluation
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New evaluates the progression from the full log and catalog.
func New(log attemptlog.Log, cat *catalog.Catalog) *RoadmapScreen {
	return &RoadmapScreen{eval: progression.Evaluate(log, cat)}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *RoadmapScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).
		Render("Phase: "+phaseLabel(s.eval.Phase))))
	b.WriteString("\n\n")

	for _, tr := range s.eval.Tiers {
		b.WriteString(centered(width, s.renderTier(tr, cw)))
		b.WriteString("\n")
	}

	b.WriteString(centered(width, s.renderNext(cw)))
	b.WriteString("\n")

	return b.String()
}

func (s *RoadmapScreen) renderTier(tr progression.TierReport, cw int) string {
	title := statusStyle(tr.Status).Render(statusMark(tr.Status)) + " " +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(tierLabel(tr.Tier))
	if tr.Tier == s.eval.ActiveTier {
		title += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ← you are here")
	}

	barWidth := cw - 40
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(components.NewProgressBar("Accuracy", tr.Stats.Accuracy*100, true, barWidth).View())
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Coverage", tr.Stats.Coverage, true, barWidth).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d/%d problems solved, %d attempts",
			tr.Stats.Solved, tr.Stats.Total, tr.Stats.Attempts)))
	if len(tr.Stats.TopUnits) > 0 {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"Units: "+strings.Join(tr.Stats.TopUnits, ", ")))
	}

	return theme.Card.Width(cw).Render(b.String())
}

func (s *RoadmapScreen) renderNext(cw int) string {
	var b strings.Builder
	if s.eval.NextUnit != "" {
		b.WriteString("Next unit: " +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(s.eval.NextUnit) + "\n\n")
	}
	for i, rec := range s.eval.Recommendations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + rec)
	}
	if b.Len() == 0 {
		b.WriteString(theme.Hint.Render("Keep practicing to unlock recommendations."))
	}

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Next Steps")
	return theme.Card.Width(cw).Render(header + "\n\n" + b.String())
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func phaseLabel(p progression.Phase) string {
	switch p {
	case progression.PhaseBasic:
		return "Basic consolidation"
	case progression.PhaseStandard:
		return "Standard practice"
	case progression.PhaseAdvanced:
		return "Advanced practice"
	default:
		return string(p)
	}
}

func tierLabel(t catalog.Tier) string {
	switch t {
	case catalog.TierLow:
		return "Low (fundamentals)"
	case catalog.TierMid:
		return "Mid (standard)"
	case catalog.TierHigh:
		return "High (advanced)"
	default:
		return string(t)
	}
}

func statusMark(st progression.Status) string {
	switch st {
	case progression.StatusCompleted:
		return "✅"
	case progression.StatusInProgress:
		return "🔄"
	default:
		return "⬜"
	}
}

func statusStyle(st progression.Status) lipgloss.Style {
	switch st {
	case progression.StatusCompleted:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case progression.StatusInProgress:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
