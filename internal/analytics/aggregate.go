// Package analytics computes per-unit, per-tier, and overall statistics
// from the attempt log joined with the problem catalog. Everything here
// is a pure function of its inputs; downstream components (the weakness
// ranker, the scheduler, the tier progression evaluator) consume the
// Summary it produces.
package analytics

import (
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

// Options configures an aggregation pass.
type Options struct {
	// From/To bound the analysis window on day granularity.
	// Zero values leave that side open.
	From time.Time
	To   time.Time

	// TimePolicyFactor scales target answer times before the overrun
	// comparison (0.9 strict, 1.0 standard, 1.1 lenient). Zero means 1.0.
	TimePolicyFactor float64
}

// UnitStats holds the per-unit aggregate for units with at least one
// catalog-matched attempt.
type UnitStats struct {
	Unit          string
	Attempts      int
	Misses        int
	Accuracy      float64
	AvgAnswerSecs float64
	AvgTargetSecs float64
}

// TierStats holds the per-tier aggregate. Solved counts distinct
// attempted problem IDs; Total counts catalog problems at the tier.
type TierStats struct {
	Tier     catalog.Tier
	Attempts int
	Misses   int
	Solved   int
	Total    int
	Accuracy float64
	// Coverage is solved/total as a percentage, 0 when the tier has no
	// catalog problems.
	Coverage float64
	// TopUnits are up to 5 most frequent units in the catalog at this tier.
	TopUnits []string
}

// GenreStats holds the per-genre aggregate used by badges and insights.
type GenreStats struct {
	Genre    string
	Attempts int
	Misses   int
	Accuracy float64
}

// Overall holds whole-log statistics. Unmatched attempts (problem IDs
// absent from the catalog) count here even though they are excluded from
// unit and tier stats.
type Overall struct {
	Attempts      int
	Accuracy      float64
	AvgAnswerSecs float64
	AvgTargetSecs float64
	// TimeOverrunRate is the fraction of attempts whose answer time
	// exceeded the policy-scaled target. Attempts without a catalog match
	// have no target and never count as overruns.
	TimeOverrunRate float64
}

// Summary is the aggregation output.
type Summary struct {
	Units map[string]*UnitStats
	// UnitOrder lists unit names in first-attempt order. The weakness
	// ranker uses it for stable tie-breaking.
	UnitOrder []string
	Tiers     map[catalog.Tier]*TierStats
	Genres    map[string]*GenreStats
	Overall   Overall
	// Window is the filtered log the summary was computed from.
	Window attemptlog.Log
}

// Empty reports whether the window had no attempts. Every downstream
// component degrades to a "no data" result when this is true.
func (s *Summary) Empty() bool {
	return s.Overall.Attempts == 0
}

// Aggregate joins the attempt log with the catalog on problem ID (left
// join: unmatched attempts keep counting toward overall totals) and
// computes unit, tier, genre, and overall statistics.
func Aggregate(log attemptlog.Log, cat *catalog.Catalog, opts Options) *Summary {
	factor := opts.TimePolicyFactor
	if factor == 0 {
		factor = 1.0
	}

	window := log.Between(opts.From, opts.To)

	s := &Summary{
		Units:  make(map[string]*UnitStats),
		Tiers:  make(map[catalog.Tier]*TierStats),
		Genres: make(map[string]*GenreStats),
		Window: window,
	}

	for _, t := range catalog.Tiers() {
		total := 0
		if cat != nil {
			total = len(cat.ByTier(t))
		}
		ts := &TierStats{Tier: t, Total: total}
		if cat != nil {
			ts.TopUnits = cat.TopUnits(t, 5)
		}
		s.Tiers[t] = ts
	}

	var (
		misses       int
		answerSum    float64
		targetSum    float64
		targetCount  int
		overruns     int
		solvedByTier = map[catalog.Tier]map[string]bool{}
	)

	for _, e := range window {
		s.Overall.Attempts++
		answerSum += e.AnswerSecs
		if !e.Correct() {
			misses++
		}

		var p catalog.Problem
		matched := false
		if cat != nil {
			p, matched = cat.Lookup(e.ProblemID)
		}
		if !matched {
			continue
		}

		target := p.TargetTimeSecs * factor
		targetSum += target
		targetCount++
		if e.AnswerSecs > target {
			overruns++
		}

		if p.Unit != "" {
			us := s.Units[p.Unit]
			if us == nil {
				us = &UnitStats{Unit: p.Unit}
				s.Units[p.Unit] = us
				s.UnitOrder = append(s.UnitOrder, p.Unit)
			}
			us.Attempts++
			us.AvgAnswerSecs += e.AnswerSecs
			us.AvgTargetSecs += target
			if !e.Correct() {
				us.Misses++
			}
		}

		if p.Genre != "" {
			gs := s.Genres[p.Genre]
			if gs == nil {
				gs = &GenreStats{Genre: p.Genre}
				s.Genres[p.Genre] = gs
			}
			gs.Attempts++
			if !e.Correct() {
				gs.Misses++
			}
		}

		ts := s.Tiers[p.Tier]
		ts.Attempts++
		if !e.Correct() {
			ts.Misses++
		}
		if solvedByTier[p.Tier] == nil {
			solvedByTier[p.Tier] = make(map[string]bool)
		}
		solvedByTier[p.Tier][p.ID] = true
	}

	// Finalize ratios. Every division is guarded so an empty window (or
	// an empty tier) degrades to zero instead of NaN.
	if s.Overall.Attempts > 0 {
		n := float64(s.Overall.Attempts)
		s.Overall.Accuracy = (n - float64(misses)) / n
		s.Overall.AvgAnswerSecs = answerSum / n
		s.Overall.TimeOverrunRate = float64(overruns) / n
	}
	if targetCount > 0 {
		s.Overall.AvgTargetSecs = targetSum / float64(targetCount)
	}

	for _, us := range s.Units {
		n := float64(us.Attempts)
		us.Accuracy = (n - float64(us.Misses)) / n
		us.AvgAnswerSecs /= n
		us.AvgTargetSecs /= n
	}

	for _, gs := range s.Genres {
		n := float64(gs.Attempts)
		gs.Accuracy = (n - float64(gs.Misses)) / n
	}

	for t, ts := range s.Tiers {
		ts.Solved = len(solvedByTier[t])
		if ts.Attempts > 0 {
			n := float64(ts.Attempts)
			ts.Accuracy = (n - float64(ts.Misses)) / n
		}
		if ts.Total > 0 {
			ts.Coverage = float64(ts.Solved) / float64(ts.Total) * 100
		}
	}

	return s
}
