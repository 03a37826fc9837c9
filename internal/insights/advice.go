package insights

import "fmt"

// Advice returns the rule-based coach lines: one accuracy-band line,
// plus a time line and a streak line when their rules fire. This is the
// offline fallback for the LLM coach.
func Advice(currentRate, targetRate, timeOverrunRate float64, streakDays int) []string {
	var lines []string

	switch {
	case currentRate >= targetRate:
		lines = append(lines, "Great accuracy! Ride the momentum into harder problems.")
	case currentRate >= targetRate-0.1:
		lines = append(lines, "Almost at the target — pinpoint reviews of your weak units will get you there.")
	default:
		lines = append(lines, "Build the base first: rework the units with the lowest accuracy.")
	}

	switch {
	case timeOverrunRate > 0.3:
		lines = append(lines, "Answers are running long. Keep an eye on your solving speed.")
	case timeOverrunRate < 0.1:
		lines = append(lines, "Answer speed is on point — just watch for careless slips.")
	}

	switch {
	case streakDays >= 3:
		lines = append(lines, fmt.Sprintf("%d days studying in a row — habit well and truly formed.", streakDays))
	case streakDays == 0:
		lines = append(lines, "Nothing logged today yet. How about just one problem?")
	}

	return lines
}
