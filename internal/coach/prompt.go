package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/weakness"
)

const systemPrompt = `You are a study coach for an exam-prep learner.
You receive practice statistics and respond with short, specific advice.
Be encouraging but concrete: name units, numbers, and actions.
Never invent statistics that were not provided.`

// buildUserMessage renders the coaching context as a compact plain-text
// block. Only aggregates are sent; individual attempts never leave the
// machine.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall: %d attempts, %.1f%% accuracy (target %.0f%%).\n",
		input.Summary.Overall.Attempts,
		input.Summary.Overall.Accuracy*100,
		input.TargetRate*100)
	if input.Summary.Overall.AvgTargetSecs > 0 {
		fmt.Fprintf(&b, "Average answer time: %.0fs against a %.0fs target.\n",
			input.Summary.Overall.AvgAnswerSecs, input.Summary.Overall.AvgTargetSecs)
	}
	if input.StreakDays > 0 {
		fmt.Fprintf(&b, "Current study streak: %d days.\n", input.StreakDays)
	}
	if input.DaysToExam > 0 {
		fmt.Fprintf(&b, "Days until the exam: %d.\n", input.DaysToExam)
	}

	if len(input.Weak) > 0 {
		b.WriteString("\nWeak units, worst first:\n")
		for i, w := range input.Weak {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %.0f%% accuracy over %d attempts\n",
				w.Unit, w.Accuracy*100, w.Attempts)
		}
	}

	if names := weakNames(input.Weak); len(names) > 0 {
		fmt.Fprintf(&b, "Pick focus_unit from: %s\n", strings.Join(names, ", "))
	}

	if input.Trend.Status != "" {
		fmt.Fprintf(&b, "\nTrend: %s\n", forecast.Describe(input.Trend))
	}

	b.WriteString("\nGive advice for the coming week.")
	return b.String()
}

// weakNames lists the unit names offered to the model as focus candidates.
func weakNames(weak []weakness.RankedUnit) []string {
	names := make([]string, 0, len(weak))
	for _, w := range weak {
		names = append(names, w.Unit)
	}
	return names
}
