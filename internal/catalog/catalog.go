package catalog

import "sort"

// Tier is the coarse difficulty bucket for a catalog problem.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// Tiers returns the tiers in progression order. Lower tiers gate the
// learner's phase; all three are always evaluated.
func Tiers() []Tier {
	return []Tier{TierLow, TierMid, TierHigh}
}

// ParseTier maps a raw difficulty label to a Tier. Unknown or missing
// labels default to mid, so a catalog without a difficulty column still
// produces a full tier breakdown.
func ParseTier(s string) Tier {
	switch s {
	case string(TierLow):
		return TierLow
	case string(TierHigh):
		return TierHigh
	default:
		return TierMid
	}
}

// Problem is one row of the problem master. Immutable reference data,
// loaded once per session by the caller.
type Problem struct {
	ID                string
	Subject           string
	Genre             string
	Unit              string
	TargetTimeSecs    float64
	TargetAccuracyPct float64
	Tier              Tier
	FrequencyWeight   int
}

// Catalog is an ordered problem master with an ID index.
// Iteration order is the load order, which downstream components rely on
// for stable tie-breaking.
type Catalog struct {
	problems []Problem
	index    map[string]int
}

// New builds a Catalog from problems. Problems with an empty tier are
// defaulted to mid. Duplicate IDs keep the first occurrence.
func New(problems []Problem) *Catalog {
	c := &Catalog{
		problems: make([]Problem, 0, len(problems)),
		index:    make(map[string]int, len(problems)),
	}
	for _, p := range problems {
		if p.Tier == "" {
			p.Tier = TierMid
		}
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.problems)
		c.problems = append(c.problems, p)
	}
	return c
}

// Len returns the number of problems in the catalog.
func (c *Catalog) Len() int {
	return len(c.problems)
}

// Problems returns all problems in load order.
func (c *Catalog) Problems() []Problem {
	return c.problems
}

// Lookup returns the problem with the given ID.
func (c *Catalog) Lookup(id string) (Problem, bool) {
	i, ok := c.index[id]
	if !ok {
		return Problem{}, false
	}
	return c.problems[i], true
}

// ByTier returns the problems at the given tier, in load order.
func (c *Catalog) ByTier(t Tier) []Problem {
	var out []Problem
	for _, p := range c.problems {
		if p.Tier == t {
			out = append(out, p)
		}
	}
	return out
}

// TopUnits returns up to n unit names at the given tier, ordered by how
// many catalog problems cover each unit (most first). Ties keep catalog
// load order.
func (c *Catalog) TopUnits(t Tier, n int) []string {
	return topUnits(c.ByTier(t), n)
}

// UnsolvedAt returns the problems at the given tier whose IDs do not
// appear in attempted.
func (c *Catalog) UnsolvedAt(t Tier, attempted map[string]bool) []Problem {
	var out []Problem
	for _, p := range c.ByTier(t) {
		if !attempted[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// topUnits counts problems per unit and returns up to n unit names by
// descending count, first-seen order breaking ties.
func topUnits(problems []Problem, n int) []string {
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

	firstSeen := make(map[string]int, len(order))
	for i, u := range order {
		firstSeen[u] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
