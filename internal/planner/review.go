package planner

import (
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

// ReviewIntervals are the forgetting-curve offsets in days. A unit
// studied exactly one of these offsets before a planning day is due for
// review on that day. The schedule is stateless: it is fully derivable
// from the log, at the cost of exact-day matching with no per-item ease
// factors.
var ReviewIntervals = [...]int{1, 3, 7, 14, 30}

// dueUnits returns the deduplicated units due for review on day.
// Ordering is deterministic: intervals are scanned in fixed order and,
// within one past day, units appear in log order.
func dueUnits(log attemptlog.Log, cat *catalog.Catalog, day time.Time) []string {
	seen := make(map[string]bool)
	var due []string
	for _, offset := range ReviewIntervals {
		past := day.AddDate(0, 0, -offset)
		for _, e := range log.OnDay(past) {
			unit, ok := unitOf(cat, e.ProblemID)
			if !ok || seen[unit] {
				continue
			}
			seen[unit] = true
			due = append(due, unit)
		}
	}
	return due
}

// unitOf resolves an attempt's unit through the catalog. Attempts whose
// problem ID is not in the catalog have an unknown unit and are skipped.
func unitOf(cat *catalog.Catalog, problemID string) (string, bool) {
	if cat == nil {
		return "", false
	}
	p, ok := cat.Lookup(problemID)
	if !ok || p.Unit == "" {
		return "", false
	}
	return p.Unit, true
}
