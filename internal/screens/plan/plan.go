package plan

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/planner"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	"github.com/abhisek/prepdash/internal/ui/layout"
	"github.com/abhisek/prepdash/internal/ui/theme"
	"github.com/abhisek/prepdash/internal/weakness"
)

// PlanScreen renders the day-by-day study plan. Tab switches between the
// 7-day forward view and the extended calendar (past week replayed, up
// to 28 days ahead).
type PlanScreen struct {
	log      attemptlog.Log
	cat      *catalog.Catalog
	weak     []weakness.RankedUnit
	settings config.Settings

	days     []planner.DayPlan
	extended bool
	selected int
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New builds the basic 7-day plan.
func New(log attemptlog.Log, cat *catalog.Catalog, settings config.Settings) *PlanScreen {
	summary := analytics.Aggregate(log, cat, analytics.Options{
		TimePolicyFactor: settings.TimePolicy.Factor(),
	})
	s := &PlanScreen{
		log:      log,
		cat:      cat,
		weak:     weakness.Rank(summary),
		settings: settings,
	}
	s.rebuild()
	return s
}

func (s *PlanScreen) rebuild() {
	cfg := planner.DefaultConfig(s.settings.DailyLimitMins)
	if s.extended {
		cfg = planner.ExtendedConfig(s.settings.DailyLimitMins)
	}
	s.days = planner.Build(s.log, s.cat, s.weak, s.settings.ExamDate, time.Now(), cfg)
	if s.selected >= len(s.days) {
		s.selected = len(s.days) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *PlanScreen) Init() tea.Cmd {
	return nil
}

func (s *PlanScreen) Title() string {
	if s.extended {
		return "Study Plan (calendar)"
	}
	return "Study Plan"
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "7-day / calendar"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.extended = !s.extended
			s.rebuild()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.days)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *PlanScreen) View(width, height int) string {
	if s.settings.ExamDate.IsZero() {
		return centered(width, theme.Hint.Render(
			"\n\n  No exam date set. Export PREPDASH_EXAM_DATE=YYYY-MM-DD and restart."))
	}
	if len(s.days) == 0 {
		return centered(width, theme.Hint.Render(
			"\n\n  Nothing to plan — the exam has passed or the log is empty."))
	}

	var b strings.Builder
	b.WriteString("\n")

	daysLeft := int(attemptlog.Day(s.settings.ExamDate).
		Sub(attemptlog.Day(time.Now())).Hours() / 24)
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("Exam %s — %d day(s) left",
			s.settings.ExamDate.Format("2006/01/02"), daysLeft))))
	b.WriteString("\n\n")

	// Keep the selected day in view on small terminals.
	visible := (height - 4) / 2
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	today := attemptlog.Day(time.Now())
	for i := start; i < len(s.days) && i < start+visible; i++ {
		day := s.days[i]

		marker := "  "
		if i == s.selected {
			marker = "> "
		}
		dateStr := day.Date.Format("Mon Jan 02")
		if day.Date.Equal(today) {
			dateStr += " (today)"
		}

		head := fmt.Sprintf("%s%s  %d min", marker, dateStr, day.TotalMinutes)
		headStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			headStyle = headStyle.Foreground(theme.Primary).Bold(true)
		}
		if day.Date.Before(today) {
			headStyle = headStyle.Foreground(theme.TextDim)
		}
		b.WriteString(centered(width, headStyle.Render(head)))
		b.WriteString("\n")

		units := make([]string, len(day.Units))
		for j, u := range day.Units {
			units[j] = originStyle(u.Origin).Render(originMark(u.Origin) + " " + u.Name)
		}
		line := "      " + strings.Join(units, "   ")
		if len(day.Units) == 0 {
			line = "      " + theme.Hint.Render("rest day")
		}
		b.WriteString(centered(width, line))
		b.WriteString("\n")
	}

	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func originMark(o planner.Origin) string {
	switch o {
	case planner.OriginReview:
		return "↻"
	case planner.OriginWeakness:
		return "▲"
	case planner.OriginCompleted:
		return "✓"
	default:
		return "·"
	}
}

func originStyle(o planner.Origin) lipgloss.Style {
	switch o {
	case planner.OriginReview:
		return lipgloss.NewStyle().Foreground(theme.Secondary)
	case planner.OriginWeakness:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	case planner.OriginCompleted:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
}
