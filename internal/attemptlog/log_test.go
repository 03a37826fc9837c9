package attemptlog

import (
	"testing"
	"time"
)

func at(d int, hour int, correct bool) Entry {
	res := ResultIncorrect
	if correct {
		res = ResultCorrect
	}
	return Entry{
		Date:   time.Date(2025, 2, 1+d, hour, 30, 0, 0, time.UTC),
		Result: res,
	}
}

func TestDay_NormalizesToMidnightUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	// 08:00 JST on Feb 2 is 23:00 UTC on Feb 1.
	got := Day(time.Date(2025, 2, 2, 8, 0, 0, 0, jst))
	want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day = %s, want %s", got, want)
	}
}

func TestBetween_InclusiveAndOpenBounds(t *testing.T) {
	l := Log{at(0, 9, true), at(1, 9, true), at(2, 9, true)}

	got := l.Between(time.Date(2025, 2, 2, 15, 0, 0, 0, time.UTC), time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 {
		t.Errorf("day-inclusive window returned %d entries, want 1", len(got))
	}

	if got := l.Between(time.Time{}, time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)); len(got) != 2 {
		t.Errorf("open-from window returned %d entries, want 2", len(got))
	}
	if got := l.Between(time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), time.Time{}); len(got) != 2 {
		t.Errorf("open-to window returned %d entries, want 2", len(got))
	}
}

func TestDays_DistinctSorted(t *testing.T) {
	l := Log{at(2, 9, true), at(0, 9, true), at(2, 18, false), at(1, 9, true)}
	days := l.Days()
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Errorf("days not ascending: %v", days)
		}
	}
}

func TestDailyAccuracy(t *testing.T) {
	l := Log{
		at(0, 9, true), at(0, 10, false), // day 0: 50%
		at(1, 9, true), // day 1: 100%
	}
	points := l.DailyAccuracy()
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Accuracy != 0.5 || points[0].Attempts != 2 {
		t.Errorf("day 0 = %+v, want accuracy 0.5 over 2 attempts", points[0])
	}
	if points[1].Accuracy != 1.0 || points[1].Attempts != 1 {
		t.Errorf("day 1 = %+v, want accuracy 1.0 over 1 attempt", points[1])
	}
	if !points[0].Day.Before(points[1].Day) {
		t.Error("points not ascending by day")
	}
}

func TestStreakDays(t *testing.T) {
	cases := []struct {
		name string
		days []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{0}, 1},
		{"consecutive", []int{0, 1, 2}, 3},
		{"broken", []int{0, 1, 3, 4, 5}, 3},
	}
	for _, tc := range cases {
		var l Log
		for _, d := range tc.days {
			l = append(l, at(d, 9, true))
		}
		if got := l.StreakDays(); got != tc.want {
			t.Errorf("%s: StreakDays = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAttemptedIDs(t *testing.T) {
	l := Log{
		{Date: time.Now(), ProblemID: "A"},
		{Date: time.Now(), ProblemID: "A"},
		{Date: time.Now(), ProblemID: ""},
		{Date: time.Now(), ProblemID: "B"},
	}
	ids := l.AttemptedIDs()
	if len(ids) != 2 || !ids["A"] || !ids["B"] {
		t.Errorf("AttemptedIDs = %v, want {A, B}", ids)
	}
}

func TestParseRow(t *testing.T) {
	e, ok := ParseRow(RawRow{
		Date:       "2025/02/01",
		ProblemID:  " P1 ",
		Result:     "〇",
		AnswerSecs: "42.5",
		StudyMins:  "junk",
	})
	if !ok {
		t.Fatal("row with a valid date should parse")
	}
	if !e.Date.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %s", e.Date)
	}
	if e.ProblemID != "P1" {
		t.Errorf("problem ID = %q, want trimmed P1", e.ProblemID)
	}
	if !e.Correct() {
		t.Error("〇 should parse as correct")
	}
	if e.AnswerSecs != 42.5 {
		t.Errorf("answer secs = %v, want 42.5", e.AnswerSecs)
	}
	if e.StudyMins != 0 {
		t.Errorf("non-numeric study minutes = %v, want coerced 0", e.StudyMins)
	}
}

func TestParseRows_DropsBadDates(t *testing.T) {
	log, dropped := ParseRows([]RawRow{
		{Date: "2025-02-01", Result: "correct"},
		{Date: "not a date", Result: "correct"},
		{Date: "", Result: "correct"},
		{Date: "2025-02-02", Result: "✕"},
	})
	if len(log) != 2 || dropped != 2 {
		t.Fatalf("got %d entries, %d dropped; want 2 and 2", len(log), dropped)
	}
	if log[1].Correct() {
		t.Error("✕ should parse as incorrect")
	}
}

func TestParseResult_NegativeTimeCoercedToZero(t *testing.T) {
	e, ok := ParseRow(RawRow{Date: "2025-02-01", AnswerSecs: "-30"})
	if !ok {
		t.Fatal("row should parse")
	}
	if e.AnswerSecs != 0 {
		t.Errorf("negative seconds = %v, want 0", e.AnswerSecs)
	}
}
