package attemptlog

import (
	"sort"
	"time"
)

// Result is the recorded outcome of a single practice attempt.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
)

// Entry is one row of the attempt log. The log is append-only from the
// caller's perspective; nothing here mutates it.
type Entry struct {
	// Date is day-granular; use Day to normalize before comparing.
	Date       time.Time
	ProblemID  string
	Result     Result
	AnswerSecs float64
	MissReason string
	StudyMins  float64
}

// Correct reports whether the attempt was answered correctly.
func (e Entry) Correct() bool {
	return e.Result == ResultCorrect
}

// Day returns the entry's date truncated to midnight UTC.
func (e Entry) Day() time.Time {
	return Day(e.Date)
}

// Day truncates a timestamp to midnight UTC. All day arithmetic in the
// scheduler and forecaster runs on these normalized values.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Log is an ordered slice of attempts.
type Log []Entry

// Between returns the entries with from <= day <= to. A zero bound is
// open on that side.
func (l Log) Between(from, to time.Time) Log {
	var out Log
	for _, e := range l {
		d := e.Day()
		if !from.IsZero() && d.Before(Day(from)) {
			continue
		}
		if !to.IsZero() && d.After(Day(to)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// OnDay returns the entries recorded on the given day.
func (l Log) OnDay(day time.Time) Log {
	d := Day(day)
	var out Log
	for _, e := range l {
		if e.Day().Equal(d) {
			out = append(out, e)
		}
	}
	return out
}

// AttemptedIDs returns the set of distinct problem IDs in the log.
func (l Log) AttemptedIDs() map[string]bool {
	ids := make(map[string]bool, len(l))
	for _, e := range l {
		if e.ProblemID != "" {
			ids[e.ProblemID] = true
		}
	}
	return ids
}

// Days returns the distinct study days in ascending order.
func (l Log) Days() []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, e := range l {
		d := e.Day()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// DayPoint is one point of the daily accuracy series consumed by the
// trend forecaster.
type DayPoint struct {
	Day      time.Time
	Accuracy float64
	Attempts int
}

// DailyAccuracy derives the per-day correct-rate series, ascending by day.
func (l Log) DailyAccuracy() []DayPoint {
	attempts := make(map[time.Time]int)
	correct := make(map[time.Time]int)
	for _, e := range l {
		d := e.Day()
		attempts[d]++
		if e.Correct() {
			correct[d]++
		}
	}

	points := make([]DayPoint, 0, len(attempts))
	for d, n := range attempts {
		points = append(points, DayPoint{
			Day:      d,
			Accuracy: float64(correct[d]) / float64(n),
			Attempts: n,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
	return points
}

// StreakDays returns the length of the most recent run of consecutive
// study days. The run is counted backwards from the latest recorded day;
// it is considered live only if that day is today or yesterday, but the
// length is reported either way.
func (l Log) StreakDays() int {
	days := l.Days()
	if len(days) == 0 {
		return 0
	}
	streak := 1
	last := days[len(days)-1]
	for i := len(days) - 2; i >= 0; i-- {
		if int(last.Sub(days[i]).Hours()/24) == 1 {
			streak++
			last = days[i]
		} else {
			break
		}
	}
	return streak
}
