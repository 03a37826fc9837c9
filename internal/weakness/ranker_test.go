package weakness

import (
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

func summarize(t *testing.T, cat *catalog.Catalog, entries []attemptlog.Entry) *analytics.Summary {
	t.Helper()
	return analytics.Aggregate(attemptlog.Log(entries), cat, analytics.Options{})
}

func attempts(id string, correct, incorrect int) []attemptlog.Entry {
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	var out []attemptlog.Entry
	for i := 0; i < correct; i++ {
		out = append(out, attemptlog.Entry{Date: date, ProblemID: id, Result: attemptlog.ResultCorrect})
	}
	for i := 0; i < incorrect; i++ {
		out = append(out, attemptlog.Entry{Date: date, ProblemID: id, Result: attemptlog.ResultIncorrect})
	}
	return out
}

func TestRank_VolumeWeighting(t *testing.T) {
	cat := catalog.New([]catalog.Problem{
		{ID: "A1", Unit: "Speed"},
		{ID: "B1", Unit: "Probability"},
	})
	// Speed: 10 attempts at 50% -> score 5.0.
	// Probability: 2 attempts at 0% -> score 2.0.
	var entries []attemptlog.Entry
	entries = append(entries, attempts("A1", 5, 5)...)
	entries = append(entries, attempts("B1", 0, 2)...)

	ranked := Rank(summarize(t, cat, entries))
	if len(ranked) != 2 {
		t.Fatalf("got %d ranked units, want 2", len(ranked))
	}
	if ranked[0].Unit != "Speed" {
		t.Errorf("top unit = %q, want Speed (volume beats pure inaccuracy)", ranked[0].Unit)
	}
	if ranked[0].Score != 5.0 {
		t.Errorf("Speed score = %v, want 5.0", ranked[0].Score)
	}
	if ranked[1].Score != 2.0 {
		t.Errorf("Probability score = %v, want 2.0", ranked[1].Score)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	cat := catalog.New([]catalog.Problem{
		{ID: "A1", Unit: "Alpha"},
		{ID: "B1", Unit: "Beta"},
		{ID: "C1", Unit: "Gamma"},
	})
	// All three: 2 attempts at 50% -> identical scores.
	var entries []attemptlog.Entry
	entries = append(entries, attempts("A1", 1, 1)...)
	entries = append(entries, attempts("B1", 1, 1)...)
	entries = append(entries, attempts("C1", 1, 1)...)

	for run := 0; run < 5; run++ {
		ranked := Rank(summarize(t, cat, entries))
		want := []string{"Alpha", "Beta", "Gamma"}
		for i, name := range want {
			if ranked[i].Unit != name {
				t.Fatalf("run %d: ranked[%d] = %q, want %q (first-attempt order on ties)", run, i, ranked[i].Unit, name)
			}
		}
	}
}

func TestRank_PerfectUnitScoresZero(t *testing.T) {
	cat := catalog.New([]catalog.Problem{{ID: "A1", Unit: "Sets"}})
	ranked := Rank(summarize(t, cat, attempts("A1", 4, 0)))
	if len(ranked) != 1 || ranked[0].Score != 0 {
		t.Errorf("perfect unit should rank with score 0, got %+v", ranked)
	}
}

func TestDisplayPriority(t *testing.T) {
	cases := []struct {
		name string
		us   analytics.UnitStats
		want float64
	}{
		{"zero accuracy, double overrun", analytics.UnitStats{Accuracy: 0, AvgAnswerSecs: 200, AvgTargetSecs: 100}, 3.0},
		{"overrun clipped at 1", analytics.UnitStats{Accuracy: 0.5, AvgAnswerSecs: 500, AvgTargetSecs: 100}, 2.0},
		{"fast answers add nothing", analytics.UnitStats{Accuracy: 0.5, AvgAnswerSecs: 50, AvgTargetSecs: 100}, 1.0},
		{"no target data", analytics.UnitStats{Accuracy: 0.25, AvgAnswerSecs: 90}, 1.5},
	}
	for _, tc := range cases {
		if got := DisplayPriority(&tc.us); got != tc.want {
			t.Errorf("%s: priority = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRecommendedQuestions(t *testing.T) {
	cases := []struct {
		priority float64
		want     int
	}{
		{0, 1},
		{0.2, 1},
		{0.5, 2},
		{1.0, 4},
		{1.25, 5},
		{3.0, 5},
	}
	for _, tc := range cases {
		if got := RecommendedQuestions(tc.priority); got != tc.want {
			t.Errorf("RecommendedQuestions(%v) = %d, want %d", tc.priority, got, tc.want)
		}
	}
}

func TestTodayMenu_FollowsCanonicalOrder(t *testing.T) {
	cat := catalog.New([]catalog.Problem{
		{ID: "A1", Unit: "Speed", TargetTimeSecs: 60},
		{ID: "B1", Unit: "Probability", TargetTimeSecs: 60},
		{ID: "C1", Unit: "Sets", TargetTimeSecs: 60},
	})
	var entries []attemptlog.Entry
	entries = append(entries, attempts("A1", 0, 6)...) // score 6
	entries = append(entries, attempts("B1", 2, 2)...) // score 2
	entries = append(entries, attempts("C1", 4, 0)...) // score 0

	menu := TodayMenu(summarize(t, cat, entries), 2)
	if len(menu) != 2 {
		t.Fatalf("menu size = %d, want 2", len(menu))
	}
	if menu[0].Unit != "Speed" || menu[1].Unit != "Probability" {
		t.Errorf("menu order = %q, %q; want Speed, Probability", menu[0].Unit, menu[1].Unit)
	}
	// Speed: accuracy 0 -> priority 2.0 -> floor(8) clamped to 5.
	if menu[0].Questions != 5 {
		t.Errorf("Speed questions = %d, want 5", menu[0].Questions)
	}
	// Probability: accuracy 0.5 -> priority 1.0 -> 4.
	if menu[1].Questions != 4 {
		t.Errorf("Probability questions = %d, want 4", menu[1].Questions)
	}
}
