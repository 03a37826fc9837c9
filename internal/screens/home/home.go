package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/coach"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	coachscreen "github.com/abhisek/prepdash/internal/screens/coach"
	"github.com/abhisek/prepdash/internal/screens/dashboard"
	"github.com/abhisek/prepdash/internal/screens/plan"
	reportscreen "github.com/abhisek/prepdash/internal/screens/report"
	"github.com/abhisek/prepdash/internal/screens/roadmap"
	"github.com/abhisek/prepdash/internal/ui/components"
	"github.com/abhisek/prepdash/internal/ui/theme"
	"github.com/abhisek/prepdash/internal/weakness"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu     components.Menu
	attempts int
	streak   int
	examDate time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the loaded log and catalog.
func New(log attemptlog.Log, cat *catalog.Catalog, settings config.Settings, coachSvc *coach.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(log, cat, settings)}
			}
		}},
		{Label: "STUDY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: plan.New(log, cat, settings)}
			}
		}},
		{Label: "ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmap.New(log, cat)}
			}
		}},
		{Label: "WEEKLY REPORT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reportscreen.New(log, cat)}
			}
		}},
		{Label: "COACH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: coachscreen.New(coachSvc, buildCoachInput(log, cat, settings)),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		attempts: len(log),
		streak:   log.StreakDays(),
		examDate: settings.ExamDate,
	}
}

// buildCoachInput assembles the coaching context from the full log.
func buildCoachInput(log attemptlog.Log, cat *catalog.Catalog, settings config.Settings) coach.Input {
	now := time.Now()
	summary := analytics.Aggregate(log, cat, analytics.Options{
		TimePolicyFactor: settings.TimePolicy.Factor(),
	})

	daysToExam := 0
	if !settings.ExamDate.IsZero() {
		daysToExam = int(attemptlog.Day(settings.ExamDate).
			Sub(attemptlog.Day(now)).Hours() / 24)
		if daysToExam < 0 {
			daysToExam = 0
		}
	}

	return coach.Input{
		Summary: summary,
		Weak:    weakness.Rank(summary),
		Trend: forecast.Forecast(summary.Window.DailyAccuracy(),
			settings.TargetRate, summary.Overall.Accuracy, now),
		TargetRate: settings.TargetRate,
		StreakDays: log.StreakDays(),
		DaysToExam: daysToExam,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("PREPDASH") + "\n" +
		theme.Subtitle.Render("Adaptive study dashboard")
	sections = append(sections, title)

	stats := fmt.Sprintf("%d attempts logged   •   %d day streak", h.attempts, h.streak)
	if !h.examDate.IsZero() {
		days := int(attemptlog.Day(h.examDate).
			Sub(attemptlog.Day(time.Now())).Hours() / 24)
		if days >= 0 {
			stats += fmt.Sprintf("   •   exam in %d day(s)", days)
		}
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
