package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/config"
)

var today = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

func cat() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "W1", Genre: "inference", Unit: "Weakling", TargetTimeSecs: 60},
		{ID: "S1", Genre: "arithmetic", Unit: "Strong", TargetTimeSecs: 60},
	})
}

func attempt(daysAgo int, id string, correct bool, secs float64) attemptlog.Entry {
	res := attemptlog.ResultIncorrect
	if correct {
		res = attemptlog.ResultCorrect
	}
	return attemptlog.Entry{
		Date:       today.AddDate(0, 0, -daysAgo),
		ProblemID:  id,
		Result:     res,
		AnswerSecs: secs,
	}
}

func summarize(log attemptlog.Log) *analytics.Summary {
	return analytics.Aggregate(log, cat(), analytics.Options{})
}

func byCategory(ins []Insight, category string) (Insight, bool) {
	for _, in := range ins {
		if in.Category == category {
			return in, true
		}
	}
	return Insight{}, false
}

func TestAnalyze_EmptyWindow(t *testing.T) {
	if got := Analyze(summarize(nil), config.Default(), today); got != nil {
		t.Errorf("empty window should produce no insights, got %v", got)
	}
}

func TestAnalyze_WeakestUnit(t *testing.T) {
	log := attemptlog.Log{
		attempt(1, "W1", false, 60),
		attempt(1, "W1", false, 60),
		attempt(1, "W1", true, 60),
		attempt(1, "S1", true, 60),
	}
	ins := Analyze(summarize(log), config.Default(), today)
	in, ok := byCategory(ins, "weakness")
	if !ok {
		t.Fatal("expected a weakness insight")
	}
	if in.Priority != PriorityHigh {
		t.Errorf("priority = %s, want high", in.Priority)
	}
	if !strings.Contains(in.Message, "Weakling") {
		t.Errorf("message should name the unit: %q", in.Message)
	}
}

func TestAnalyze_WeakestUnitNeedsAttempts(t *testing.T) {
	// Two misses only: under the 3-attempt floor, no callout.
	log := attemptlog.Log{
		attempt(1, "W1", false, 60),
		attempt(1, "W1", false, 60),
	}
	if _, ok := byCategory(Analyze(summarize(log), config.Default(), today), "weakness"); ok {
		t.Error("a unit with 2 attempts should not be flagged")
	}
}

func TestAnalyze_PaceUrgency(t *testing.T) {
	// Accuracy 25%, target 80%, exam in 10 days: urgent.
	log := attemptlog.Log{
		attempt(1, "S1", true, 60),
		attempt(1, "S1", false, 60),
		attempt(1, "S1", false, 60),
		attempt(1, "S1", false, 60),
	}
	set := config.Default()
	set.ExamDate = today.AddDate(0, 0, 10)

	in, ok := byCategory(Analyze(summarize(log), set, today), "pace")
	if !ok {
		t.Fatal("expected a pace insight")
	}
	if in.Priority != PriorityUrgent {
		t.Errorf("priority = %s, want urgent", in.Priority)
	}
}

func TestAnalyze_PaceAchieved(t *testing.T) {
	log := attemptlog.Log{attempt(1, "S1", true, 60)}
	set := config.Default()
	set.ExamDate = today.AddDate(0, 0, 10)

	in, ok := byCategory(Analyze(summarize(log), set, today), "pace")
	if !ok {
		t.Fatal("expected a pace insight")
	}
	if in.Priority != PriorityLow {
		t.Errorf("priority = %s, want low when target already met", in.Priority)
	}
}

func TestAnalyze_NoPaceWithoutExamDate(t *testing.T) {
	log := attemptlog.Log{attempt(1, "S1", true, 60)}
	if _, ok := byCategory(Analyze(summarize(log), config.Default(), today), "pace"); ok {
		t.Error("no exam date set: pace rule must not fire")
	}
}

func TestAnalyze_WeekOverWeek(t *testing.T) {
	var log attemptlog.Log
	// Last week: 1/5 correct. This week: 5/5 correct.
	for i := 0; i < 5; i++ {
		log = append(log, attempt(10, "S1", i == 0, 60))
		log = append(log, attempt(2, "S1", true, 60))
	}
	in, ok := byCategory(Analyze(summarize(log), config.Default(), today), "trend")
	if !ok {
		t.Fatal("expected a trend insight")
	}
	if !strings.Contains(in.Message, "up") {
		t.Errorf("message should report improvement: %q", in.Message)
	}
}

func TestAnalyze_TimeManagement(t *testing.T) {
	// 80 seconds against a 60-second target.
	log := attemptlog.Log{
		attempt(1, "S1", true, 80),
		attempt(1, "S1", true, 80),
		attempt(1, "S1", true, 80),
	}
	in, ok := byCategory(Analyze(summarize(log), config.Default(), today), "time")
	if !ok {
		t.Fatal("expected a time insight")
	}
	if in.Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium for overruns", in.Priority)
	}
}

func TestAdvice_AccuracyBands(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0.85, "Great accuracy"},
		{0.72, "Almost at the target"},
		{0.4, "Build the base"},
	}
	for _, tc := range cases {
		lines := Advice(tc.rate, 0.8, 0.2, 1)
		if len(lines) == 0 || !strings.Contains(lines[0], tc.want) {
			t.Errorf("rate %v: first line = %v, want prefix %q", tc.rate, lines, tc.want)
		}
	}
}

func TestAdvice_StreakAndTimeLines(t *testing.T) {
	lines := Advice(0.9, 0.8, 0.5, 5)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want accuracy + time + streak", len(lines))
	}
	if !strings.Contains(lines[1], "running long") {
		t.Errorf("time line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "5 days") {
		t.Errorf("streak line = %q", lines[2])
	}
}

func TestBadges(t *testing.T) {
	var log attemptlog.Log
	// 12 fast, correct arithmetic attempts across 3 consecutive days
	// ending yesterday.
	for i := 0; i < 12; i++ {
		log = append(log, attempt(1+i%3, "S1", true, 40))
	}
	badges := Badges(summarize(log), today)

	want := map[string]bool{
		"beginner":         true,
		"streak":           true,
		"genre-arithmetic": true,
		"speedster":        true,
	}
	got := make(map[string]bool)
	for _, b := range badges {
		got[b.ID] = true
	}
	for id := range want {
		if !got[id] {
			t.Errorf("missing badge %q (got %v)", id, badges)
		}
	}
}

func TestBadges_StaleStreakReportsBest(t *testing.T) {
	var log attemptlog.Log
	for i := 0; i < 3; i++ {
		log = append(log, attempt(5+i, "S1", true, 40))
	}
	badges := Badges(summarize(log), today)
	for _, b := range badges {
		if b.ID == "streak" {
			t.Error("a streak ending 5 days ago must not show as live")
		}
	}
	found := false
	for _, b := range badges {
		if b.ID == "last-streak" {
			found = true
		}
	}
	if !found {
		t.Error("expected the best-streak badge")
	}
}
