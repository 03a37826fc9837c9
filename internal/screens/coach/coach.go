package coach

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdash/internal/coach"
	"github.com/abhisek/prepdash/internal/router"
	"github.com/abhisek/prepdash/internal/screen"
	"github.com/abhisek/prepdash/internal/ui/layout"
	"github.com/abhisek/prepdash/internal/ui/theme"
)

type pollTickMsg time.Time

// CoachScreen requests advice from the coach service and shows a
// spinner until it arrives. The service resolves LLM failures to
// rule-based advice, so the screen always gets something.
type CoachScreen struct {
	service *coach.Service
	input   coach.Input
	advice  *coach.Advice
	spinner spinner.Model
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates the coach screen; the request fires in Init.
func New(service *coach.Service, input coach.Input) *CoachScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &CoachScreen{service: service, input: input, spinner: sp}
}

func (s *CoachScreen) Init() tea.Cmd {
	s.service.RequestAdvice(context.Background(), s.input)
	return tea.Batch(s.spinner.Tick, pollCmd())
}

func (s *CoachScreen) Title() string {
	return "Coach"
}

func (s *CoachScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		if s.advice != nil {
			return s, nil
		}
		if adv, ok := s.service.ConsumeAdvice(); ok {
			s.advice = adv
			return s, nil
		}
		return s, pollCmd()

	case spinner.TickMsg:
		if s.advice != nil {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CoachScreen) View(width, height int) string {
	if s.advice == nil {
		waiting := s.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Thinking...")
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, waiting)
	}

	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.advice.Summary))
	b.WriteString("\n")

	if s.advice.FocusUnit != "" {
		b.WriteString("\nFocus unit: " +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(s.advice.FocusUnit) + "\n")
	}

	if len(s.advice.Tips) > 0 {
		b.WriteString("\n")
		for _, tip := range s.advice.Tips {
			b.WriteString("• " + tip + "\n")
		}
	}

	source := "rule-based advice"
	if s.advice.FromLLM {
		source = "AI coach"
	}
	b.WriteString("\n" + theme.Hint.Render(source))

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("This Week's Advice")
	box := theme.Card.Width(cw).Render(header + "\n\n" + b.String())

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// pollCmd polls for the async advice result.
func pollCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
