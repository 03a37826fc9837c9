package progression

import (
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

func tierCatalog() *catalog.Catalog {
	ps := []catalog.Problem{}
	// 10 low problems in two units, 10 mid, 10 high.
	for i := 0; i < 10; i++ {
		unit := "Counting"
		if i >= 5 {
			unit = "Sets"
		}
		ps = append(ps, catalog.Problem{ID: low(i), Unit: unit, Tier: catalog.TierLow})
		ps = append(ps, catalog.Problem{ID: mid(i), Unit: "Ratios", Tier: catalog.TierMid})
		ps = append(ps, catalog.Problem{ID: high(i), Unit: "Inference", Tier: catalog.TierHigh})
	}
	return catalog.New(ps)
}

func low(i int) string  { return "L" + string(rune('0'+i)) }
func mid(i int) string  { return "M" + string(rune('0'+i)) }
func high(i int) string { return "H" + string(rune('0'+i)) }

func solve(id string, correct bool) attemptlog.Entry {
	res := attemptlog.ResultIncorrect
	if correct {
		res = attemptlog.ResultCorrect
	}
	return attemptlog.Entry{
		Date:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ProblemID: id,
		Result:    res,
	}
}

// masterLow covers 8/10 low problems (80% coverage) all correct.
func masterLow() attemptlog.Log {
	var l attemptlog.Log
	for i := 0; i < 8; i++ {
		l = append(l, solve(low(i), true))
	}
	return l
}

func TestEvaluate_FreshLearnerIsBasicPhase(t *testing.T) {
	ev := Evaluate(nil, tierCatalog())
	if ev.Phase != PhaseBasic {
		t.Errorf("phase = %s, want basic", ev.Phase)
	}
	if ev.ActiveTier != catalog.TierLow {
		t.Errorf("active tier = %s, want low", ev.ActiveTier)
	}
	for _, tr := range ev.Tiers {
		if tr.Status != StatusNotStarted {
			t.Errorf("tier %s status = %s, want not_started", tr.Tier, tr.Status)
		}
	}
	if ev.NextUnit == "" {
		t.Error("expected a next unit for a fresh learner")
	}
}

func TestEvaluate_AccuracyAloneDoesNotMaster(t *testing.T) {
	// 3/10 low problems solved perfectly: accuracy 100%, coverage 30%.
	log := attemptlog.Log{solve(low(0), true), solve(low(1), true), solve(low(2), true)}
	ev := Evaluate(log, tierCatalog())
	if ev.Tiers[0].Mastered {
		t.Error("30% coverage must not count as mastery")
	}
	if ev.Phase != PhaseBasic {
		t.Errorf("phase = %s, want basic", ev.Phase)
	}
	if ev.Tiers[0].Status != StatusInProgress {
		t.Errorf("low status = %s, want in_progress", ev.Tiers[0].Status)
	}
}

func TestEvaluate_CoverageAloneDoesNotMaster(t *testing.T) {
	// All 10 low problems attempted but only half correct.
	var log attemptlog.Log
	for i := 0; i < 10; i++ {
		log = append(log, solve(low(i), i%2 == 0))
	}
	ev := Evaluate(log, tierCatalog())
	if ev.Tiers[0].Mastered {
		t.Error("50% accuracy must not count as mastery")
	}
	if ev.Phase != PhaseBasic {
		t.Errorf("phase = %s, want basic", ev.Phase)
	}
}

func TestEvaluate_LowMasteryAdvancesToStandard(t *testing.T) {
	ev := Evaluate(masterLow(), tierCatalog())
	if !ev.Tiers[0].Mastered {
		t.Fatal("80% accuracy and 80% coverage should master the low tier")
	}
	if ev.Phase != PhaseStandard {
		t.Errorf("phase = %s, want standard", ev.Phase)
	}
	if ev.ActiveTier != catalog.TierMid {
		t.Errorf("active tier = %s, want mid", ev.ActiveTier)
	}
	if ev.NextUnit != "Ratios" {
		t.Errorf("next unit = %q, want Ratios", ev.NextUnit)
	}
}

func TestEvaluate_BothTiersMasteredIsAdvanced(t *testing.T) {
	log := masterLow()
	for i := 0; i < 8; i++ {
		log = append(log, solve(mid(i), true))
	}
	ev := Evaluate(log, tierCatalog())
	if ev.Phase != PhaseAdvanced {
		t.Errorf("phase = %s, want advanced", ev.Phase)
	}
	if ev.ActiveTier != "" {
		t.Errorf("active tier = %s, want none", ev.ActiveTier)
	}
	if len(ev.Recommendations) != 3 {
		t.Errorf("advanced phase recommendations = %d, want 3", len(ev.Recommendations))
	}
	// High-tier mastery is reported but does not gate the phase.
	if ev.Tiers[2].Status != StatusNotStarted {
		t.Errorf("high status = %s, want not_started", ev.Tiers[2].Status)
	}
}

func TestEvaluate_FullyAttemptedTierSwitchesToReviewAdvice(t *testing.T) {
	// Every low problem attempted, accuracy 70%: in progress, nothing new
	// to start, so advice shifts to stabilizing accuracy.
	var log attemptlog.Log
	for i := 0; i < 10; i++ {
		log = append(log, solve(low(i), i < 7))
	}
	ev := Evaluate(log, tierCatalog())
	if ev.Phase != PhaseBasic {
		t.Fatalf("phase = %s, want basic", ev.Phase)
	}
	if ev.NextUnit != "" {
		t.Errorf("next unit = %q, want none when the tier is fully attempted", ev.NextUnit)
	}
	if len(ev.Recommendations) == 0 {
		t.Fatal("expected review recommendations")
	}
}

func TestEvaluate_TierOrderIsFixed(t *testing.T) {
	ev := Evaluate(masterLow(), tierCatalog())
	want := []catalog.Tier{catalog.TierLow, catalog.TierMid, catalog.TierHigh}
	if len(ev.Tiers) != len(want) {
		t.Fatalf("got %d tier reports, want %d", len(ev.Tiers), len(want))
	}
	for i, tier := range want {
		if ev.Tiers[i].Tier != tier {
			t.Errorf("tier[%d] = %s, want %s", i, ev.Tiers[i].Tier, tier)
		}
	}
}
