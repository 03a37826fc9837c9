package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

var today = time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

func weekCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "R1", Unit: "Ratios"},
		{ID: "R2", Unit: "Ratios"},
		{ID: "S1", Unit: "Sets"},
	})
}

func entry(daysAgo int, id string, correct bool, mins float64) attemptlog.Entry {
	res := attemptlog.ResultIncorrect
	if correct {
		res = attemptlog.ResultCorrect
	}
	return attemptlog.Entry{
		Date:      today.AddDate(0, 0, -daysAgo),
		ProblemID: id,
		Result:    res,
		StudyMins: mins,
	}
}

func TestBuildWeekly_EmptyWindow(t *testing.T) {
	// Only an attempt outside the window.
	log := attemptlog.Log{entry(20, "R1", true, 30)}
	if _, ok := BuildWeekly(log, weekCatalog(), today); ok {
		t.Error("a window with no attempts should report not ok")
	}
}

func TestBuildWeekly(t *testing.T) {
	log := attemptlog.Log{
		entry(1, "R1", true, 30),
		entry(1, "R2", false, 20),
		entry(3, "S1", true, 25),
		entry(20, "R1", true, 99), // outside the window
	}
	w, ok := BuildWeekly(log, weekCatalog(), today)
	if !ok {
		t.Fatal("expected a report")
	}
	if w.StudyDays != 2 {
		t.Errorf("study days = %d, want 2", w.StudyDays)
	}
	if w.Problems != 3 {
		t.Errorf("problems = %d, want 3", w.Problems)
	}
	if w.TotalMinutes != 75 {
		t.Errorf("total minutes = %v, want 75", w.TotalMinutes)
	}
	if got := w.Accuracy; got < 0.66 || got > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", got)
	}
	if w.TopUnit != "Ratios" || w.TopUnitCount != 2 {
		t.Errorf("top unit = %q (%d), want Ratios (2)", w.TopUnit, w.TopUnitCount)
	}
}

func TestBuildWeekly_NextTargetCapped(t *testing.T) {
	log := attemptlog.Log{
		entry(1, "R1", true, 10),
		entry(1, "R2", true, 10),
	}
	w, ok := BuildWeekly(log, weekCatalog(), today)
	if !ok {
		t.Fatal("expected a report")
	}
	if w.NextTargetPct != 100 {
		t.Errorf("next target = %v, want capped at 100", w.NextTargetPct)
	}
	if !strings.Contains(w.Verdict, "Excellent") {
		t.Errorf("verdict = %q, want the top band", w.Verdict)
	}
}

func TestRender(t *testing.T) {
	log := attemptlog.Log{entry(1, "R1", true, 30)}
	w, ok := BuildWeekly(log, weekCatalog(), today)
	if !ok {
		t.Fatal("expected a report")
	}
	out := Render(w)
	for _, want := range []string{"Weekly report", "Study days", "Accuracy", "Ratios", "Next week"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}
}
