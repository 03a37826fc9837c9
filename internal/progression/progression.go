// Package progression classifies the learner into a study phase from
// per-tier accuracy and coverage, and recommends the next step.
//
// A tier is mastered only when accuracy and coverage both clear their
// thresholds; neither alone advances the phase.
package progression

import (
	"fmt"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

const (
	// MasteryAccuracy is the accuracy threshold for tier mastery.
	MasteryAccuracy = 0.8
	// MasteryCoverage is the coverage threshold (percent) for tier mastery.
	MasteryCoverage = 70.0
)

// Status is the display state of a single tier.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusNotStarted Status = "not_started"
)

// Phase is the learner's current study phase.
type Phase string

const (
	PhaseBasic    Phase = "basic_consolidation"
	PhaseStandard Phase = "standard_practice"
	PhaseAdvanced Phase = "advanced_practice"
)

// TierReport is the roadmap card for one tier.
type TierReport struct {
	Tier     catalog.Tier
	Stats    analytics.TierStats
	Mastered bool
	Status   Status
}

// Evaluation is the full progression result.
type Evaluation struct {
	// Tiers are reported in fixed low → mid → high order.
	Tiers []TierReport
	Phase Phase
	// ActiveTier is the tier the recommendations target. Empty in the
	// advanced phase, where both gating tiers are mastered.
	ActiveTier catalog.Tier
	// NextUnit is the suggested unit to start next, when unsolved
	// problems remain at the active tier.
	NextUnit        string
	Recommendations []string
}

// Evaluate derives the tier reports, phase, and recommendations from the
// attempt log and catalog.
func Evaluate(log attemptlog.Log, cat *catalog.Catalog) *Evaluation {
	summary := analytics.Aggregate(log, cat, analytics.Options{})
	return EvaluateSummary(summary, log, cat)
}

// EvaluateSummary is Evaluate for callers that already aggregated.
func EvaluateSummary(summary *analytics.Summary, log attemptlog.Log, cat *catalog.Catalog) *Evaluation {
	ev := &Evaluation{}

	for _, t := range catalog.Tiers() {
		ts := summary.Tiers[t]
		mastered := isMastered(ts)
		ev.Tiers = append(ev.Tiers, TierReport{
			Tier:     t,
			Stats:    *ts,
			Mastered: mastered,
			Status:   tierStatus(ts, mastered),
		})
	}

	lowMastered := ev.Tiers[0].Mastered
	midMastered := ev.Tiers[1].Mastered

	switch {
	case !lowMastered:
		ev.Phase = PhaseBasic
		ev.ActiveTier = catalog.TierLow
	case !midMastered:
		ev.Phase = PhaseStandard
		ev.ActiveTier = catalog.TierMid
	default:
		ev.Phase = PhaseAdvanced
	}

	ev.recommend(log, cat, summary)
	return ev
}

func isMastered(ts *analytics.TierStats) bool {
	return ts.Accuracy >= MasteryAccuracy && ts.Coverage >= MasteryCoverage
}

func tierStatus(ts *analytics.TierStats, mastered bool) Status {
	switch {
	case mastered:
		return StatusCompleted
	case ts.Attempts > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// recommend fills NextUnit and Recommendations for the active tier. When
// every problem at the tier has been attempted, the advice shifts from
// new material to stabilizing accuracy.
func (ev *Evaluation) recommend(log attemptlog.Log, cat *catalog.Catalog, summary *analytics.Summary) {
	if ev.Phase == PhaseAdvanced {
		ev.Recommendations = []string{
			"Keep working through advanced problems",
			"Push the accuracy of high-tier problems upward",
			"Start trimming your answer times as well",
		}
		return
	}

	tier := ev.ActiveTier
	label := tierLabel(tier)
	coverage := summary.Tiers[tier].Coverage

	unsolved := cat.UnsolvedAt(tier, log.AttemptedIDs())
	if len(unsolved) > 0 {
		top := topUnitsOf(unsolved)
		ev.NextUnit = top
		verb := "Next, take on"
		if tier == catalog.TierLow {
			verb = "Start with"
		}
		ev.Recommendations = []string{
			fmt.Sprintf("%s %q", verb, top),
			fmt.Sprintf("Aim for 80%% accuracy on %s problems", label),
			fmt.Sprintf("Current coverage: %.0f%%", coverage),
		}
		return
	}

	ev.Recommendations = []string{
		fmt.Sprintf("Revisit the %s problems once more", label),
		"Stabilizing accuracy at 80% or better is the goal",
	}
}

// topUnitsOf returns the most frequent unit among the given problems,
// first-seen order breaking ties.
func topUnitsOf(problems []catalog.Problem) string {
	counts := make(map[string]int)
	var order []string
	for _, p := range problems {
		if p.Unit == "" {
			continue
		}
		if _, seen := counts[p.Unit]; !seen {
			order = append(order, p.Unit)
		}
		counts[p.Unit]++
	}
	best := ""
	bestCount := 0
	for _, u := range order {
		if counts[u] > bestCount {
			best = u
			bestCount = counts[u]
		}
	}
	return best
}

func tierLabel(t catalog.Tier) string {
	switch t {
	case catalog.TierLow:
		return "basic"
	case catalog.TierMid:
		return "standard"
	default:
		return "advanced"
	}
}
