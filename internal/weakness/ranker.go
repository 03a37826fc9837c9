// Package weakness scores and orders units by remediation priority.
//
// Two distinct scores exist on purpose: the ranking score weights volume
// (a frequently-missed unit outranks a rarely-attempted one), while the
// display score weights the accuracy gap and time overrun to size the
// recommended daily question count.
package weakness

import (
	"math"
	"sort"

	"github.com/abhisek/prepdash/internal/analytics"
)

// RankedUnit is one entry of the canonical weak list.
type RankedUnit struct {
	Unit     string
	Score    float64
	Accuracy float64
	Attempts int
}

// Rank orders units by descending priority score
// (1 - accuracy) * attempts. The sort is stable: units with equal scores
// keep first-attempt order, so repeated runs over the same log produce
// the same weak list.
func Rank(s *analytics.Summary) []RankedUnit {
	ranked := make([]RankedUnit, 0, len(s.UnitOrder))
	for _, name := range s.UnitOrder {
		us := s.Units[name]
		ranked = append(ranked, RankedUnit{
			Unit:     name,
			Score:    (1 - us.Accuracy) * float64(us.Attempts),
			Accuracy: us.Accuracy,
			Attempts: us.Attempts,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// UnitNames projects a ranked list to unit names, preserving order.
func UnitNames(ranked []RankedUnit) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Unit
	}
	return names
}

// DisplayPriority is the display-oriented score:
// (1 - accuracy) * 2 + clip(avgTime/avgTarget - 1, 0, 1).
// A unit with no target time data gets no overrun component.
func DisplayPriority(us *analytics.UnitStats) float64 {
	p := (1 - us.Accuracy) * 2
	if us.AvgTargetSecs > 0 {
		p += clip(us.AvgAnswerSecs/us.AvgTargetSecs-1, 0, 1)
	}
	return p
}

// RecommendedQuestions converts a display priority into a suggested
// question count for the day, clamped to [1, 5].
func RecommendedQuestions(priority float64) int {
	n := int(math.Floor(priority * 4))
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// MenuItem is one line of the "today's menu" display.
type MenuItem struct {
	Unit      string
	Questions int
	Priority  float64
}

// TodayMenu returns up to n menu items following the canonical weak-list
// ordering, each sized by its display priority.
func TodayMenu(s *analytics.Summary, n int) []MenuItem {
	ranked := Rank(s)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	items := make([]MenuItem, 0, len(ranked))
	for _, r := range ranked {
		p := DisplayPriority(s.Units[r.Unit])
		items = append(items, MenuItem{
			Unit:      r.Unit,
			Questions: RecommendedQuestions(p),
			Priority:  p,
		})
	}
	return items
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
