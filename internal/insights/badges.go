package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
)

// Badge is an achievement shown in the header.
type Badge struct {
	ID    string
	Label string
}

// Badge thresholds.
const (
	beginnerAttempts    = 10
	genreMasterAttempts = 5
	genreMasterAccuracy = 0.8
	speedsterRatio      = 0.8
)

// Badges evaluates every achievement rule against the window.
func Badges(summary *analytics.Summary, today time.Time) []Badge {
	var badges []Badge

	if summary.Overall.Attempts >= beginnerAttempts {
		badges = append(badges, Badge{ID: "beginner", Label: "Getting started"})
	}

	if streak := summary.Window.StreakDays(); streak > 0 {
		days := summary.Window.Days()
		last := days[len(days)-1]
		gap := int(attemptlog.Day(today).Sub(last).Hours() / 24)
		if gap <= 1 {
			badges = append(badges, Badge{ID: "streak", Label: fmt.Sprintf("%d-day streak", streak)})
		} else {
			badges = append(badges, Badge{ID: "last-streak", Label: fmt.Sprintf("Best streak: %d days", streak)})
		}
	}

	// Genre mastery, in a fixed order for stable display.
	genres := make([]string, 0, len(summary.Genres))
	for g := range summary.Genres {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	for _, g := range genres {
		gs := summary.Genres[g]
		if gs.Attempts >= genreMasterAttempts && gs.Accuracy >= genreMasterAccuracy {
			badges = append(badges, Badge{ID: "genre-" + g, Label: g + " master"})
		}
	}

	if summary.Overall.Attempts >= beginnerAttempts &&
		summary.Overall.Accuracy >= genreMasterAccuracy &&
		summary.Overall.AvgTargetSecs > 0 &&
		summary.Overall.AvgAnswerSecs <= summary.Overall.AvgTargetSecs*speedsterRatio {
		badges = append(badges, Badge{ID: "speedster", Label: "Speedster"})
	}

	return badges
}
