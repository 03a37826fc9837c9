package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/config"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Problem{
		{ID: "S1", Subject: "math", Unit: "Speed", Tier: catalog.TierLow},
		{ID: "R1", Subject: "math", Unit: "Ratios", Tier: catalog.TierMid},
	})
}

func attempts(n int, id string, result attemptlog.Result) attemptlog.Log {
	var log attemptlog.Log
	for i := 0; i < n; i++ {
		log = append(log, attemptlog.Entry{
			Date:      time.Now().AddDate(0, 0, -(i % 3)),
			ProblemID: id,
			Result:    result,
		})
	}
	return log
}

func TestEmptyLogShowsHint(t *testing.T) {
	s := New(nil, testCatalog(), config.Default())
	view := s.View(80, 24)
	if !strings.Contains(view, "No attempts recorded yet") {
		t.Errorf("expected empty-state hint, got:\n%s", view)
	}
}

func TestViewShowsWeakUnitInMenu(t *testing.T) {
	log := append(attempts(6, "S1", attemptlog.ResultIncorrect),
		attempts(4, "R1", attemptlog.ResultCorrect)...)

	s := New(log, testCatalog(), config.Default())
	view := s.View(100, 40)

	if !strings.Contains(view, "Speed") {
		t.Errorf("menu should name the weak unit, got:\n%s", view)
	}
	if !strings.Contains(view, "Attempts   10") {
		t.Errorf("expected the overall attempt count, got:\n%s", view)
	}
}

func TestMenuCapsAtThreeItems(t *testing.T) {
	log := attempts(5, "S1", attemptlog.ResultIncorrect)
	s := New(log, testCatalog(), config.Default())
	if len(s.menu) > 3 {
		t.Errorf("menu has %d items, want at most 3", len(s.menu))
	}
}
