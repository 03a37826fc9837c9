package planner

import (
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/weakness"
)

var today = time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

func planCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "S1", Subject: "math", Unit: "Speed"},
		{ID: "P1", Subject: "math", Unit: "Probability"},
		{ID: "G1", Subject: "language", Unit: "Grammar"},
		{ID: "R1", Subject: "math", Unit: "Ratios"},
	})
}

func studied(daysAgo int, id string) attemptlog.Entry {
	return attemptlog.Entry{
		Date:      today.AddDate(0, 0, -daysAgo),
		ProblemID: id,
		Result:    attemptlog.ResultCorrect,
	}
}

func ranked(units ...string) []weakness.RankedUnit {
	out := make([]weakness.RankedUnit, len(units))
	for i, u := range units {
		out[i] = weakness.RankedUnit{Unit: u, Score: float64(len(units) - i)}
	}
	return out
}

func findDay(t *testing.T, days []DayPlan, date time.Time) DayPlan {
	t.Helper()
	for _, d := range days {
		if d.Date.Equal(date) {
			return d
		}
	}
	t.Fatalf("no plan for %s", date.Format("2006-01-02"))
	return DayPlan{}
}

func unitsWithOrigin(d DayPlan, o Origin) []string {
	var out []string
	for _, u := range d.Units {
		if u.Origin == o {
			out = append(out, u.Name)
		}
	}
	return out
}

func TestBuild_NilCases(t *testing.T) {
	cat := planCatalog()
	log := attemptlog.Log{studied(1, "S1")}
	exam := today.AddDate(0, 0, 30)

	if got := Build(log, cat, ranked("Speed"), time.Time{}, today, DefaultConfig(60)); got != nil {
		t.Error("zero exam date should produce no plan")
	}
	if got := Build(nil, cat, ranked("Speed"), exam, today, DefaultConfig(60)); got != nil {
		t.Error("empty log should produce no plan")
	}
	if got := Build(log, cat, ranked("Speed"), today, today, DefaultConfig(60)); got != nil {
		t.Error("exam today should produce no plan")
	}
	if got := Build(log, cat, ranked("Speed"), today.AddDate(0, 0, -3), today, DefaultConfig(60)); got != nil {
		t.Error("past exam date should produce no plan")
	}
}

func TestBuild_SpacedReviewOffsets(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 60)
	cfg := DefaultConfig(60)
	cfg.FutureDays = 31

	// Grammar studied today: review is due exactly 1, 3, 7, 14, and 30
	// days out, and on no other offset. With no weak list, only the due
	// days carry work at all.
	log := attemptlog.Log{studied(0, "G1")}
	days := Build(log, cat, nil, exam, today, cfg)

	got := make(map[int]bool)
	for _, d := range days {
		offset := int(d.Date.Sub(today).Hours() / 24)
		reviews := unitsWithOrigin(d, OriginReview)
		if len(reviews) != 1 || reviews[0] != "Grammar" {
			t.Errorf("day +%d: units = %v, want a single Grammar review", offset, d.Units)
		}
		got[offset] = true
	}
	want := map[int]bool{1: true, 3: true, 7: true, 14: true, 30: true}
	for offset := 0; offset <= 30; offset++ {
		if got[offset] != want[offset] {
			t.Errorf("day +%d: review planned = %v, want %v", offset, got[offset], want[offset])
		}
	}
}

func TestBuild_BudgetCap(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 30)
	log := attemptlog.Log{studied(5, "S1")}
	weak := ranked("Speed", "Probability", "Grammar", "Ratios")

	days := Build(log, cat, weak, exam, today, DefaultConfig(60))
	if len(days) == 0 {
		t.Fatal("expected a plan")
	}
	for _, d := range days {
		if d.TotalMinutes > 60 {
			t.Errorf("%s: %d minutes exceeds the 60-minute budget", d.Date.Format("01-02"), d.TotalMinutes)
		}
		if len(d.Units) > 3 {
			t.Errorf("%s: %d units exceed 3 at 20 min each", d.Date.Format("01-02"), len(d.Units))
		}
	}
}

func TestBuild_MinimumGuarantee(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 10)
	log := attemptlog.Log{studied(20, "S1")} // no reviews due in the horizon
	weak := ranked("Probability")

	// A 10-minute budget fits no 20-minute unit, but the day must still
	// carry the top weak unit.
	days := Build(log, cat, weak, exam, today, DefaultConfig(10))
	if len(days) == 0 {
		t.Fatal("expected a plan")
	}
	first := days[0]
	if len(first.Units) != 1 || first.Units[0].Name != "Probability" {
		t.Fatalf("minimum guarantee should force the top weak unit, got %+v", first.Units)
	}
	if first.Units[0].Origin != OriginWeakness {
		t.Errorf("forced unit origin = %s, want weakness", first.Units[0].Origin)
	}
	if first.TotalMinutes != 20 {
		t.Errorf("forced unit minutes = %d, want 20 (may exceed budget)", first.TotalMinutes)
	}
}

func TestBuild_NoDuplicateUnitsPerDay(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 30)
	// Speed studied yesterday -> due for review tomorrow's -1 offset...
	// also first on the weak list, so without dedup it would appear twice.
	log := attemptlog.Log{studied(1, "S1")}
	weak := ranked("Speed", "Probability")

	days := Build(log, cat, weak, exam, today, DefaultConfig(60))
	for _, d := range days {
		seen := make(map[string]bool)
		for _, u := range d.Units {
			if seen[u.Name] {
				t.Errorf("%s: unit %q planned twice", d.Date.Format("01-02"), u.Name)
			}
			seen[u.Name] = true
		}
	}
}

func TestBuild_ReviewsPrecedeWeakness(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 30)
	log := attemptlog.Log{studied(1, "G1")} // Grammar review due today
	weak := ranked("Speed", "Probability")

	days := Build(log, cat, weak, exam, today, DefaultConfig(60))
	d := findDay(t, days, today)
	if len(d.Units) != 3 {
		t.Fatalf("got %d units, want 3", len(d.Units))
	}
	if d.Units[0].Name != "Grammar" || d.Units[0].Origin != OriginReview {
		t.Errorf("first unit = %+v, want Grammar review", d.Units[0])
	}
	if d.Units[1].Name != "Speed" || d.Units[2].Name != "Probability" {
		t.Errorf("weak units out of order: %+v", d.Units[1:])
	}
}

func TestBuild_FutureOriginsAreReviewOrWeakness(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 10)
	log := attemptlog.Log{studied(1, "G1")}
	weak := ranked("Speed", "Probability", "Ratios")

	days := Build(log, cat, weak, exam, today, DefaultConfig(60))
	for _, d := range days {
		for _, u := range d.Units {
			if u.Origin != OriginReview && u.Origin != OriginWeakness {
				t.Errorf("%s: unit %q origin = %q", d.Date.Format("01-02"), u.Name, u.Origin)
			}
		}
	}

	// A review-free day spends the whole budget on the ranked weak list.
	d := findDay(t, days, today.AddDate(0, 0, 1))
	want := []string{"Speed", "Probability", "Ratios"}
	if len(d.Units) != len(want) {
		t.Fatalf("got %d units, want %d", len(d.Units), len(want))
	}
	for i, name := range want {
		if d.Units[i].Name != name || d.Units[i].Origin != OriginWeakness {
			t.Errorf("unit %d = %+v, want %s weakness", i, d.Units[i], name)
		}
	}
}

func TestBuild_HorizonCappedByExam(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 3) // 3 days left -> horizon 4 (today..exam)
	log := attemptlog.Log{studied(1, "S1")}
	weak := ranked("Speed")

	days := Build(log, cat, weak, exam, today, DefaultConfig(60))
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	last := days[len(days)-1]
	if !last.Date.Equal(exam) {
		t.Errorf("last planned day = %s, want exam day", last.Date.Format("2006-01-02"))
	}
}

func TestBuild_SubjectTagging(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 10)
	log := attemptlog.Log{studied(1, "G1")}

	days := Build(log, cat, nil, exam, today, DefaultConfig(60))
	d := findDay(t, days, today)
	if len(d.Units) == 0 {
		t.Fatal("expected Grammar review today")
	}
	if d.Units[0].Subject != "language" {
		t.Errorf("Grammar subject = %q, want language", d.Units[0].Subject)
	}
}

func TestBuild_ExtendedReplaysPast(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 60)
	log := attemptlog.Log{
		{Date: today.AddDate(0, 0, -2), ProblemID: "S1", Result: attemptlog.ResultCorrect, StudyMins: 35},
		{Date: today.AddDate(0, 0, -2), ProblemID: "P1", Result: attemptlog.ResultIncorrect},
	}

	days := Build(log, cat, ranked("Speed"), exam, today, ExtendedConfig(60))

	past := findDay(t, days, today.AddDate(0, 0, -2))
	if len(past.Units) != 2 {
		t.Fatalf("replayed day units = %d, want 2", len(past.Units))
	}
	for _, u := range past.Units {
		if u.Origin != OriginCompleted {
			t.Errorf("past unit %q origin = %s, want completed", u.Name, u.Origin)
		}
	}
	// 35 recorded minutes for Speed, default 20 for the unlogged Probability.
	if past.TotalMinutes != 55 {
		t.Errorf("replayed minutes = %d, want 55", past.TotalMinutes)
	}

	// 7 past days + min(28, 61) future days.
	if len(days) != 7+28 {
		t.Errorf("extended plan spans %d days, want 35", len(days))
	}
}

func TestBuild_SkipsEmptyFutureDays(t *testing.T) {
	cat := planCatalog()
	exam := today.AddDate(0, 0, 30)
	log := attemptlog.Log{studied(1, "S1")}

	days := Build(log, cat, nil, exam, today, DefaultConfig(60))

	// A unit studied yesterday comes due at offsets 1, 3, and 7 from the
	// study day: today, today+2, and today+6. The empty days in between
	// must not be emitted.
	wantOffsets := []int{0, 2, 6}
	if len(days) != len(wantOffsets) {
		t.Fatalf("got %d days, want %d", len(days), len(wantOffsets))
	}
	for i, off := range wantOffsets {
		want := today.AddDate(0, 0, off)
		if !days[i].Date.Equal(want) {
			t.Errorf("day %d = %s, want today+%d", i, days[i].Date.Format("2006-01-02"), off)
		}
		if len(days[i].Units) != 1 || days[i].Units[0].Origin != OriginReview {
			t.Errorf("day %d = %+v, want the single due review", i, days[i].Units)
		}
	}
}
