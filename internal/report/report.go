// Package report builds the weekly study report from the last 7 days of
// the attempt log.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

// Weekly is the past-7-days summary.
type Weekly struct {
	From         time.Time
	To           time.Time
	StudyDays    int
	Problems     int
	TotalMinutes float64
	Accuracy     float64
	TopUnit      string
	TopUnitCount int
	Verdict      string
	// NextTargetPct is next week's accuracy goal: this week plus five
	// points, capped at 100.
	NextTargetPct float64
}

// BuildWeekly summarizes the 7 days before today. ok is false when the
// window holds no attempts.
func BuildWeekly(log attemptlog.Log, cat *catalog.Catalog, today time.Time) (*Weekly, bool) {
	to := attemptlog.Day(today)
	from := to.AddDate(0, 0, -7)
	week := log.Between(from, to)
	if len(week) == 0 {
		return nil, false
	}

	w := &Weekly{
		From:      from,
		To:        to,
		StudyDays: len(week.Days()),
		Problems:  len(week),
	}

	correct := 0
	unitCounts := make(map[string]int)
	var unitOrder []string
	for _, e := range week {
		if e.Correct() {
			correct++
		}
		w.TotalMinutes += e.StudyMins
		if unit, ok := lookupUnit(cat, e.ProblemID); ok {
			if _, seen := unitCounts[unit]; !seen {
				unitOrder = append(unitOrder, unit)
			}
			unitCounts[unit]++
		}
	}
	w.Accuracy = float64(correct) / float64(len(week))

	for _, u := range unitOrder {
		if unitCounts[u] > w.TopUnitCount {
			w.TopUnit = u
			w.TopUnitCount = unitCounts[u]
		}
	}

	switch {
	case w.Accuracy >= 0.8:
		w.Verdict = "Excellent — keep this rhythm going."
	case w.Accuracy >= 0.6:
		w.Verdict = "Steady progress. Keep reviews aimed at your weak spots."
	default:
		w.Verdict = "The basics need shoring up. Small, consistent steps."
	}

	w.NextTargetPct = w.Accuracy*100 + 5
	if w.NextTargetPct > 100 {
		w.NextTargetPct = 100
	}

	return w, true
}

// Render formats the weekly report as plain text for the report command
// and clipboard export.
func Render(w *Weekly) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly report %s - %s\n\n",
		w.From.Format("2006/01/02"), w.To.Format("2006/01/02"))
	fmt.Fprintf(&b, "Study days:    %d\n", w.StudyDays)
	fmt.Fprintf(&b, "Problems:      %d\n", w.Problems)
	fmt.Fprintf(&b, "Study time:    %.0f min (%.1f h)\n", w.TotalMinutes, w.TotalMinutes/60)
	fmt.Fprintf(&b, "Accuracy:      %.1f%%\n", w.Accuracy*100)
	if w.TopUnit != "" {
		fmt.Fprintf(&b, "Top unit:      %s (%d problems)\n", w.TopUnit, w.TopUnitCount)
	}
	fmt.Fprintf(&b, "\n%s\n", w.Verdict)
	fmt.Fprintf(&b, "Next week: aim for %.0f%% accuracy.\n", w.NextTargetPct)
	return b.String()
}

func lookupUnit(cat *catalog.Catalog, problemID string) (string, bool) {
	if cat == nil {
		return "", false
	}
	p, ok := cat.Lookup(problemID)
	if !ok || p.Unit == "" {
		return "", false
	}
	return p.Unit, true
}
