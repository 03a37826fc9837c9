// Package planner builds the day-by-day study plan: spaced reviews first,
// then weak units, packed greedily under the daily time budget.
//
// One implementation serves both the 7-day forward plan and the
// calendar view; horizon length and the include-past flag are
// configuration.
package planner

import (
	"sort"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/weakness"
)

// Origin records why a unit landed on a day.
type Origin string

const (
	OriginReview    Origin = "review"
	OriginWeakness  Origin = "weakness"
	OriginCompleted Origin = "completed"
)

// PlannedUnit is one scheduled (or, for past days, completed) unit.
type PlannedUnit struct {
	Name    string
	Subject string
	Origin  Origin
}

// DayPlan is the plan for a single calendar day.
type DayPlan struct {
	Date  time.Time
	Units []PlannedUnit
	// TotalMinutes stays within the daily limit except on a
	// minimum-guarantee day, where the single forced unit may exceed it.
	TotalMinutes int
}

// Config tunes the planning horizon and budget.
type Config struct {
	// DailyLimitMins is the per-day time budget.
	DailyLimitMins int
	// UnitTimeMins is the fixed cost of one unit (default 20).
	UnitTimeMins int
	// FutureDays caps the future horizon (7 basic, 28 extended); the
	// days remaining until the exam cap it further.
	FutureDays int
	// IncludePast replays the last PastDays days from the log so a
	// continuous calendar can be rendered.
	IncludePast bool
	PastDays    int
}

// DefaultConfig is the basic 7-day forward plan.
func DefaultConfig(dailyLimitMins int) Config {
	return Config{
		DailyLimitMins: dailyLimitMins,
		UnitTimeMins:   20,
		FutureDays:     7,
	}
}

// ExtendedConfig is the calendar variant: last 7 days replayed, up to 28
// future days planned.
func ExtendedConfig(dailyLimitMins int) Config {
	cfg := DefaultConfig(dailyLimitMins)
	cfg.FutureDays = 28
	cfg.IncludePast = true
	cfg.PastDays = 7
	return cfg
}

// Build produces the plan, one DayPlan per calendar day in ascending
// order. It returns nil when there is nothing to plan: no exam date, an
// exam date no longer ahead of today, or an empty log.
func Build(log attemptlog.Log, cat *catalog.Catalog, weak []weakness.RankedUnit, examDate, today time.Time, cfg Config) []DayPlan {
	if examDate.IsZero() || len(log) == 0 {
		return nil
	}
	if cfg.UnitTimeMins <= 0 {
		cfg.UnitTimeMins = 20
	}

	todayDay := attemptlog.Day(today)
	daysLeft := int(attemptlog.Day(examDate).Sub(todayDay).Hours() / 24)
	if daysLeft <= 0 {
		return nil
	}

	horizon := cfg.FutureDays
	if daysLeft+1 < horizon {
		horizon = daysLeft + 1
	}

	subjects := subjectIndex(cat)
	weakNames := weakness.UnitNames(weak)

	var days []DayPlan

	if cfg.IncludePast {
		for i := cfg.PastDays; i >= 1; i-- {
			date := todayDay.AddDate(0, 0, -i)
			days = append(days, replayDay(log, cat, subjects, date, cfg.UnitTimeMins))
		}
	}

	for i := 0; i < horizon; i++ {
		date := todayDay.AddDate(0, 0, i)
		day := packDay(log, cat, subjects, weakNames, date, cfg)
		if len(day.Units) == 0 && !cfg.IncludePast {
			continue
		}
		days = append(days, day)
	}

	if !hasPlannedWork(days) {
		return nil
	}
	return days
}

// packDay fills a future day: due reviews first, then the weak list in
// ranked order, each step deduplicating against units already on the
// day. The step ordering is load-bearing; callers and tests depend on
// this exact precedence.
func packDay(log attemptlog.Log, cat *catalog.Catalog, subjects map[string]string, weakNames []string, date time.Time, cfg Config) DayPlan {
	day := DayPlan{Date: date}
	present := make(map[string]bool)

	add := func(unit string, origin Origin) {
		day.Units = append(day.Units, PlannedUnit{
			Name:    unit,
			Subject: subjects[unit],
			Origin:  origin,
		})
		day.TotalMinutes += cfg.UnitTimeMins
		present[unit] = true
	}
	fits := func() bool {
		return day.TotalMinutes+cfg.UnitTimeMins <= cfg.DailyLimitMins
	}

	for _, unit := range dueUnits(log, cat, date) {
		if !fits() {
			break
		}
		if present[unit] {
			continue
		}
		add(unit, OriginReview)
	}

	for idx := 0; fits() && idx < len(weakNames); idx++ {
		if unit := weakNames[idx]; !present[unit] {
			add(unit, OriginWeakness)
		}
	}

	// Minimum guarantee: a future day never looks empty while
	// remediation work exists. The single forced unit may overshoot the
	// reported budget.
	if len(day.Units) == 0 && len(weakNames) > 0 {
		add(weakNames[0], OriginWeakness)
	}

	return day
}

// replayDay reconstructs a past day from the log: every distinct unit
// studied that day, with recorded study minutes summed (20 per unit when
// nothing was recorded).
func replayDay(log attemptlog.Log, cat *catalog.Catalog, subjects map[string]string, date time.Time, unitTimeMins int) DayPlan {
	day := DayPlan{Date: date}
	minutes := make(map[string]float64)
	var order []string

	for _, e := range log.OnDay(date) {
		unit, ok := unitOf(cat, e.ProblemID)
		if !ok {
			continue
		}
		if _, seen := minutes[unit]; !seen {
			order = append(order, unit)
		}
		minutes[unit] += e.StudyMins
	}

	for _, unit := range order {
		day.Units = append(day.Units, PlannedUnit{
			Name:    unit,
			Subject: subjects[unit],
			Origin:  OriginCompleted,
		})
		m := int(minutes[unit])
		if m == 0 {
			m = unitTimeMins
		}
		day.TotalMinutes += m
	}
	return day
}

// subjectIndex maps each unit to its subject (first catalog occurrence).
func subjectIndex(cat *catalog.Catalog) map[string]string {
	index := make(map[string]string)
	if cat == nil {
		return index
	}
	for _, p := range cat.Problems() {
		if p.Unit == "" {
			continue
		}
		if _, ok := index[p.Unit]; !ok {
			index[p.Unit] = p.Subject
		}
	}
	return index
}

// hasPlannedWork reports whether any day carries at least one unit.
func hasPlannedWork(days []DayPlan) bool {
	for _, d := range days {
		if len(d.Units) > 0 {
			return true
		}
	}
	return false
}

// SortByDate orders a plan ascending by date. Build already returns
// sorted output; this exists for callers that merge plans.
func SortByDate(days []DayPlan) {
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
}
