// Package insights produces the rule-based analysis cards and coach
// lines shown on the dashboard: weak-spot callouts, pace checks against
// the exam date, week-over-week movement, and time management.
package insights

import (
	"fmt"
	"time"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/config"
)

// Priority orders insights for display.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Insight is one analysis card.
type Insight struct {
	Category string
	Message  string
	Priority Priority
}

// weakUnitMinAttempts filters noise: a unit needs this many attempts
// before it can be called a weakness.
const weakUnitMinAttempts = 3

// Analyze runs every rule over the aggregated window and returns the
// matching insights. An empty window returns nil.
func Analyze(summary *analytics.Summary, set config.Settings, today time.Time) []Insight {
	if summary.Empty() {
		return nil
	}

	var out []Insight
	if in, ok := weakestUnit(summary); ok {
		out = append(out, in)
	}
	if in, ok := pace(summary, set, today); ok {
		out = append(out, in)
	}
	if in, ok := weekOverWeek(summary.Window, today); ok {
		out = append(out, in)
	}
	if in, ok := timeManagement(summary); ok {
		out = append(out, in)
	}
	return out
}

// weakestUnit flags the lowest-accuracy unit below 50%, among units with
// enough attempts to mean something.
func weakestUnit(summary *analytics.Summary) (Insight, bool) {
	var worst *analytics.UnitStats
	for _, name := range summary.UnitOrder {
		us := summary.Units[name]
		if us.Attempts < weakUnitMinAttempts || us.Accuracy >= 0.5 {
			continue
		}
		if worst == nil || us.Accuracy < worst.Accuracy {
			worst = us
		}
	}
	if worst == nil {
		return Insight{}, false
	}
	return Insight{
		Category: "weakness",
		Priority: PriorityHigh,
		Message: fmt.Sprintf("%q is your biggest weakness (%.0f%% accuracy). Drill its basics until the pattern sticks.",
			worst.Unit, worst.Accuracy*100),
	}, true
}

// pace compares the accuracy gap against the days left until the exam.
func pace(summary *analytics.Summary, set config.Settings, today time.Time) (Insight, bool) {
	if set.ExamDate.IsZero() {
		return Insight{}, false
	}
	daysLeft := int(attemptlog.Day(set.ExamDate).Sub(attemptlog.Day(today)).Hours() / 24)
	if daysLeft <= 0 {
		return Insight{}, false
	}

	gap := set.TargetRate - summary.Overall.Accuracy
	switch {
	case gap > 0.2 && daysLeft < 30:
		perDay := gap / float64(daysLeft)
		return Insight{
			Category: "pace",
			Priority: PriorityUrgent,
			Message: fmt.Sprintf("%d days left and %.0f%% of improvement needed — that is %.2f%% per day. Concentrated study recommended.",
				daysLeft, gap*100, perDay*100),
		}, true
	case gap > 0:
		return Insight{
			Category: "pace",
			Priority: PriorityMedium,
			Message: fmt.Sprintf("The target is reachable in the %d days remaining. Hold the current pace and keep patching weaknesses.",
				daysLeft),
		}, true
	default:
		return Insight{
			Category: "pace",
			Priority: PriorityLow,
			Message:  "Target already achieved. Maintain your level and take on harder problems.",
		}, true
	}
}

// weekOverWeek compares the last 7 days against the 7 before. Needs at
// least 10 attempts overall and data in both windows.
func weekOverWeek(window attemptlog.Log, today time.Time) (Insight, bool) {
	if len(window) < 10 {
		return Insight{}, false
	}

	day := attemptlog.Day(today)
	thisWeek := window.Between(day.AddDate(0, 0, -7), day)
	lastWeek := window.Between(day.AddDate(0, 0, -14), day.AddDate(0, 0, -8))
	if len(thisWeek) == 0 || len(lastWeek) == 0 {
		return Insight{}, false
	}

	diff := accuracy(thisWeek) - accuracy(lastWeek)
	switch {
	case diff > 0.05:
		return Insight{
			Category: "trend",
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Accuracy up %.0f%% on last week — keep it rolling.", diff*100),
		}, true
	case diff < -0.05:
		return Insight{
			Category: "trend",
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Accuracy down %.0f%% on last week. A rest may help; fall back to basics for a while.", -diff*100),
		}, true
	}
	return Insight{}, false
}

// timeManagement reads the average overrun against target times.
func timeManagement(summary *analytics.Summary) (Insight, bool) {
	if summary.Overall.AvgTargetSecs == 0 {
		return Insight{}, false
	}
	excess := summary.Overall.AvgAnswerSecs - summary.Overall.AvgTargetSecs
	switch {
	case excess > 10:
		return Insight{
			Category: "time",
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Averaging %.0f seconds over target. Time to shift from accuracy-first to speed.", excess),
		}, true
	case excess < -5:
		return Insight{
			Category: "time",
			Priority: PriorityLow,
			Message:  "Answer speed is fine. Spend the spare seconds double-checking for careless mistakes.",
		}, true
	}
	return Insight{}, false
}

func accuracy(l attemptlog.Log) float64 {
	if len(l) == 0 {
		return 0
	}
	correct := 0
	for _, e := range l {
		if e.Correct() {
			correct++
		}
	}
	return float64(correct) / float64(len(l))
}
