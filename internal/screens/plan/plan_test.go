package plan

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/config"
)

func testSettings(examInDays int) config.Settings {
	s := config.Default()
	if examInDays != 0 {
		s.ExamDate = time.Now().AddDate(0, 0, examInDays)
	}
	return s
}

func testLog() attemptlog.Log {
	var log attemptlog.Log
	for i := 1; i <= 5; i++ {
		log = append(log, attemptlog.Entry{
			Date:      time.Now().AddDate(0, 0, -i),
			ProblemID: "S1",
			Result:    attemptlog.ResultIncorrect,
		})
	}
	return log
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "S1", Subject: "math", Unit: "Speed"},
		{ID: "R1", Subject: "math", Unit: "Ratios"},
	})
}

func TestNoExamDateMessage(t *testing.T) {
	s := New(testLog(), testCatalog(), testSettings(0))
	view := s.View(80, 24)
	if !strings.Contains(view, "No exam date set") {
		t.Errorf("expected exam-date hint, got:\n%s", view)
	}
}

func TestBuildsDaysWithExamAhead(t *testing.T) {
	s := New(testLog(), testCatalog(), testSettings(10))
	if len(s.days) == 0 {
		t.Fatal("expected a non-empty plan")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "day(s) left") {
		t.Errorf("expected countdown line, got:\n%s", view)
	}
}

func TestTabTogglesExtendedView(t *testing.T) {
	s := New(testLog(), testCatalog(), testSettings(40))
	basicDays := len(s.days)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PlanScreen)
	if !s.extended {
		t.Fatal("tab should switch to the extended view")
	}
	if len(s.days) <= basicDays {
		t.Errorf("extended plan has %d day(s), want more than %d", len(s.days), basicDays)
	}
	if s.Title() != "Study Plan (calendar)" {
		t.Errorf("title = %q", s.Title())
	}

	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PlanScreen)
	if s.extended {
		t.Error("second tab should switch back")
	}
}

func TestSelectionStaysInBounds(t *testing.T) {
	s := New(testLog(), testCatalog(), testSettings(10))

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s = updated.(*PlanScreen)
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top", s.selected)
	}

	for i := 0; i < 100; i++ {
		updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		s = updated.(*PlanScreen)
	}
	if s.selected != len(s.days)-1 {
		t.Errorf("selected = %d, want last index %d", s.selected, len(s.days)-1)
	}
}
