package dashboard

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
	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/insights"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	"github.com/abhisek/prepdash/internal/ui/components"
	"github.com/abhisek/prepdash/internal/ui/layout"
	"github.com/abhisek/prepdash/internal/ui/theme"
	"github.com/abhisek/prepdash/internal/weakness"
)

// DashboardScreen shows the aggregated practice statistics: overall
// numbers, per-tier progress, the trend forecast, insights, badges, and
// today's recommended menu.
type DashboardScreen struct {
	summary  *analytics.Summary
	menu     []weakness.MenuItem
	insights []insights.Insight
	badges   []insights.Badge
	trend    forecast.Result
	settings config.Settings
	streak   int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New computes the dashboard from the full log and catalog.
func New(log attemptlog.Log, cat *catalog.Catalog, settings config.Settings) *DashboardScreen {
	now := time.Now()
	summary := analytics.Aggregate(log, cat, analytics.Options{
		TimePolicyFactor: settings.TimePolicy.Factor(),
	})

	return &DashboardScreen{
		summary:  summary,
		menu:     weakness.TodayMenu(summary, 3),
		insights: insights.Analyze(summary, settings, now),
		badges:   insights.Badges(summary, now),
		trend: forecast.Forecast(summary.Window.DailyAccuracy(),
			settings.TargetRate, summary.Overall.Accuracy, now),
		settings: settings,
		streak:   log.StreakDays(),
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.summary.Empty() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts recorded yet. Import a practice log to get started.")
	}

	var b strings.Builder
	b.WriteString("\n")

	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	sections := []string{
		s.renderOverall(cw),
		s.renderTiers(cw),
		s.renderMenu(cw),
		s.renderInsights(cw),
	}
	if badges := s.renderBadges(cw); badges != "" {
		sections = append(sections, badges)
	}

	for _, sec := range sections {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sec))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *DashboardScreen) renderOverall(cw int) string {
	o := s.summary.Overall

	var b strings.Builder
	fmt.Fprintf(&b, "Attempts   %d\n", o.Attempts)

	accStyle := theme.Correct
	if o.Accuracy < s.settings.TargetRate {
		accStyle = theme.Incorrect
	}
	b.WriteString("Accuracy   " +
		accStyle.Render(fmt.Sprintf("%.1f%%", o.Accuracy*100)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (target %.0f%%)", s.settings.TargetRate*100)) + "\n")

	if o.AvgTargetSecs > 0 {
		fmt.Fprintf(&b, "Avg time   %.0fs / %.0fs target  (%.0f%% over time)\n",
			o.AvgAnswerSecs, o.AvgTargetSecs, o.TimeOverrunRate*100)
	} else {
		fmt.Fprintf(&b, "Avg time   %.0fs\n", o.AvgAnswerSecs)
	}
	fmt.Fprintf(&b, "Streak     %d day(s)\n", s.streak)

	b.WriteString("Trend      " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(forecast.Describe(s.trend)))

	return card("Overall", b.String(), cw)
}

func (s *DashboardScreen) renderTiers(cw int) string {
	var b strings.Builder
	barWidth := cw - 40
	if barWidth < 10 {
		barWidth = 10
	}

	for i, t := range catalog.Tiers() {
		ts := s.summary.Tiers[t]
		if i > 0 {
			b.WriteString("\n")
		}
		label := fmt.Sprintf("%-5s", tierName(t))
		bar := components.NewProgressBar(label, ts.Accuracy*100, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d solved (%.0f%%)", ts.Solved, ts.Total, ts.Coverage)))
	}

	return card("Tiers", b.String(), cw)
}

func (s *DashboardScreen) renderMenu(cw int) string {
	if len(s.menu) == 0 {
		return card("Today's Menu",
			theme.Hint.Render("Nothing to recommend yet."), cw)
	}

	var b strings.Builder
	for i, item := range s.menu {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s — %d question(s)  ",
			i+1, item.Unit, item.Questions)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("priority %.1f", item.Priority)))
	}

	return card("Today's Menu", b.String(), cw)
}

func (s *DashboardScreen) renderInsights(cw int) string {
	if len(s.insights) == 0 {
		return card("Insights", theme.Hint.Render("All clear."), cw)
	}

	var b strings.Builder
	for i, in := range s.insights {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(priorityStyle(in.Priority).Render(priorityMark(in.Priority)) +
			" " + in.Message)
	}

	return card("Insights", b.String(), cw)
}

func (s *DashboardScreen) renderBadges(cw int) string {
	if len(s.badges) == 0 {
		return ""
	}
	labels := make([]string, len(s.badges))
	for i, badge := range s.badges {
		labels[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("🏅 " + badge.Label)
	}
	return card("Badges", strings.Join(labels, "   "), cw)
}

func card(title, content string, width int) string {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)
	return theme.Card.Width(width).Render(header + "\n\n" + content)
}

func tierName(t catalog.Tier) string {
	switch t {
	case catalog.TierLow:
		return "Low"
	case catalog.TierMid:
		return "Mid"
	case catalog.TierHigh:
		return "High"
	default:
		return string(t)
	}
}

func priorityMark(p insights.Priority) string {
	switch p {
	case insights.PriorityUrgent:
		return "‼"
	case insights.PriorityHigh:
		return "!"
	default:
		return "·"
	}
}

func priorityStyle(p insights.Priority) lipgloss.Style {
	switch p {
	case insights.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case insights.PriorityHigh:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
