package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

func day(d int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "P1", Subject: "math", Genre: "inference", Unit: "Sets", TargetTimeSecs: 60, Tier: catalog.TierLow},
		{ID: "P2", Subject: "math", Genre: "arithmetic", Unit: "Ratios", TargetTimeSecs: 90, Tier: catalog.TierMid},
		{ID: "P3", Subject: "math", Genre: "arithmetic", Unit: "Ratios", TargetTimeSecs: 120, Tier: catalog.TierMid},
	})
}

func entry(d int, id string, correct bool, secs float64) attemptlog.Entry {
	res := attemptlog.ResultIncorrect
	if correct {
		res = attemptlog.ResultCorrect
	}
	return attemptlog.Entry{Date: day(d), ProblemID: id, Result: res, AnswerSecs: secs}
}

func TestAggregate_EmptyLog(t *testing.T) {
	s := Aggregate(nil, testCatalog(), Options{})

	if !s.Empty() {
		t.Fatal("expected empty summary")
	}
	if s.Overall.Accuracy != 0 || s.Overall.TimeOverrunRate != 0 {
		t.Errorf("empty log must produce zero ratios, got %+v", s.Overall)
	}
	for _, tier := range catalog.Tiers() {
		ts := s.Tiers[tier]
		if ts == nil {
			t.Fatalf("tier %s missing from empty summary", tier)
		}
		if ts.Coverage != 0 || ts.Accuracy != 0 {
			t.Errorf("tier %s: expected zero stats, got %+v", tier, ts)
		}
	}
}

func TestAggregate_UnitAndTierStats(t *testing.T) {
	log := attemptlog.Log{
		entry(0, "P1", true, 50),
		entry(0, "P1", false, 70),
		entry(1, "P2", true, 80),
	}
	s := Aggregate(log, testCatalog(), Options{})

	sets := s.Units["Sets"]
	if sets == nil {
		t.Fatal("expected Sets unit stats")
	}
	if sets.Attempts != 2 || sets.Misses != 1 {
		t.Errorf("Sets attempts/misses = %d/%d, want 2/1", sets.Attempts, sets.Misses)
	}
	if sets.Accuracy != 0.5 {
		t.Errorf("Sets accuracy = %v, want 0.5", sets.Accuracy)
	}
	if sets.AvgAnswerSecs != 60 {
		t.Errorf("Sets avg answer = %v, want 60", sets.AvgAnswerSecs)
	}

	low := s.Tiers[catalog.TierLow]
	if low.Solved != 1 || low.Total != 1 {
		t.Errorf("low tier solved/total = %d/%d, want 1/1", low.Solved, low.Total)
	}
	if low.Coverage != 100 {
		t.Errorf("low coverage = %v, want 100", low.Coverage)
	}
	mid := s.Tiers[catalog.TierMid]
	if mid.Solved != 1 || mid.Total != 2 {
		t.Errorf("mid tier solved/total = %d/%d, want 1/2", mid.Solved, mid.Total)
	}
	if mid.Coverage != 50 {
		t.Errorf("mid coverage = %v, want 50", mid.Coverage)
	}
}

func TestAggregate_UnmatchedAttemptsCountOverallOnly(t *testing.T) {
	log := attemptlog.Log{
		entry(0, "P1", true, 30),
		entry(0, "UNKNOWN", false, 500),
	}
	s := Aggregate(log, testCatalog(), Options{})

	if s.Overall.Attempts != 2 {
		t.Errorf("overall attempts = %d, want 2", s.Overall.Attempts)
	}
	if s.Overall.Accuracy != 0.5 {
		t.Errorf("overall accuracy = %v, want 0.5", s.Overall.Accuracy)
	}
	if len(s.Units) != 1 {
		t.Errorf("unit stats should only cover matched attempts, got %d units", len(s.Units))
	}
	// The unmatched attempt has no target time, so it cannot be an overrun.
	if s.Overall.TimeOverrunRate != 0 {
		t.Errorf("overrun rate = %v, want 0", s.Overall.TimeOverrunRate)
	}
}

func TestAggregate_TimeOverrunUsesPolicyFactor(t *testing.T) {
	log := attemptlog.Log{
		entry(0, "P1", true, 55), // target 60; strict target 54 -> overrun
	}

	standard := Aggregate(log, testCatalog(), Options{TimePolicyFactor: 1.0})
	if standard.Overall.TimeOverrunRate != 0 {
		t.Errorf("standard policy overrun = %v, want 0", standard.Overall.TimeOverrunRate)
	}

	strict := Aggregate(log, testCatalog(), Options{TimePolicyFactor: 0.9})
	if strict.Overall.TimeOverrunRate != 1 {
		t.Errorf("strict policy overrun = %v, want 1", strict.Overall.TimeOverrunRate)
	}
}

func TestAggregate_WindowFilter(t *testing.T) {
	log := attemptlog.Log{
		entry(0, "P1", true, 10),
		entry(5, "P2", false, 10),
	}
	s := Aggregate(log, testCatalog(), Options{From: day(3), To: day(9)})

	if s.Overall.Attempts != 1 {
		t.Fatalf("windowed attempts = %d, want 1", s.Overall.Attempts)
	}
	if _, ok := s.Units["Sets"]; ok {
		t.Error("Sets attempt on day 0 should be outside the window")
	}
}

func TestAggregate_MissingTierDefaultsToMid(t *testing.T) {
	cat := catalog.New([]catalog.Problem{
		{ID: "X1", Unit: "Algebra"}, // no tier in the source data
	})
	log := attemptlog.Log{entry(0, "X1", true, 10)}
	s := Aggregate(log, cat, Options{})

	mid := s.Tiers[catalog.TierMid]
	if mid.Attempts != 1 || mid.Solved != 1 {
		t.Errorf("tierless problem should land in mid: %+v", mid)
	}
}

func TestAggregate_NoDivideByZero(t *testing.T) {
	s := Aggregate(attemptlog.Log{}, catalog.New(nil), Options{})
	for _, tier := range catalog.Tiers() {
		if math.IsNaN(s.Tiers[tier].Coverage) || math.IsNaN(s.Tiers[tier].Accuracy) {
			t.Fatalf("tier %s produced NaN", tier)
		}
	}
	if math.IsNaN(s.Overall.Accuracy) || math.IsNaN(s.Overall.AvgAnswerSecs) {
		t.Fatal("overall stats produced NaN")
	}
}
