package report

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/report"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	"github.com/abhisek/prepdash/internal/ui/layout"
	"github.com/abhisek/prepdash/internal/ui/theme"
)

// ReportScreen shows the weekly summary card.
type ReportScreen struct {
	weekly *report.Weekly
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New builds the past-7-days report. weekly stays nil when the week
// holds no attempts.
func New(log attemptlog.Log, cat *catalog.Catalog) *ReportScreen {
	weekly, ok := report.BuildWeekly(log, cat, time.Now())
	if !ok {
		return &ReportScreen{}
	}
	return &ReportScreen{weekly: weekly}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Weekly Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	if s.weekly == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts in the past week.")
	}
	w := s.weekly

	cw := width - 8
	if cw > 64 {
		cw = 64
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Week of %s — %s\n\n",
		w.From.Format("Jan 02"), w.To.Format("Jan 02"))
	fmt.Fprintf(&b, "Study days      %d\n", w.StudyDays)
	fmt.Fprintf(&b, "Problems        %d\n", w.Problems)
	fmt.Fprintf(&b, "Study time      %.0f min\n", w.TotalMinutes)

	accStyle := theme.Correct
	if w.Accuracy < 0.6 {
		accStyle = theme.Incorrect
	}
	b.WriteString("Accuracy        " +
		accStyle.Render(fmt.Sprintf("%.1f%%", w.Accuracy*100)) + "\n")

	if w.TopUnit != "" {
		fmt.Fprintf(&b, "Most practiced  %s (%d times)\n", w.TopUnit, w.TopUnitCount)
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.Verdict) + "\n")
	fmt.Fprintf(&b, "Next week's target: %.0f%%", w.NextTargetPct)

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Weekly Report")
	box := theme.Card.Width(cw).Render(header + "\n\n" + b.String())

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
