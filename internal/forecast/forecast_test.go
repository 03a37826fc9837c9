package forecast

import (
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
)

var anchor = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func series(vals ...float64) []attemptlog.DayPoint {
	out := make([]attemptlog.DayPoint, len(vals))
	for i, v := range vals {
		out[i] = attemptlog.DayPoint{Day: anchor.AddDate(0, 0, i), Accuracy: v}
	}
	return out
}

func TestForecast_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = 0.5
		}
		r := Forecast(series(vals...), 0.8, 0.5, anchor)
		if r.Status != StatusInsufficientData {
			t.Errorf("%d days: status = %s, want insufficient_data", n, r.Status)
		}
	}
}

func TestForecast_FlatSeries(t *testing.T) {
	r := Forecast(series(0.6, 0.6, 0.6, 0.6), 0.8, 0.6, anchor)
	if r.Status != StatusFlat {
		t.Errorf("status = %s, want flat", r.Status)
	}
}

func TestForecast_AchievedBeatsDecliningTrend(t *testing.T) {
	// Overall rate already at target; the declining trend must not demote
	// the result to no_improvement.
	r := Forecast(series(0.95, 0.9, 0.85, 0.8), 0.8, 0.85, anchor)
	if r.Status != StatusAchieved {
		t.Errorf("status = %s, want achieved", r.Status)
	}
}

func TestForecast_NoImprovement(t *testing.T) {
	r := Forecast(series(0.7, 0.6, 0.5, 0.4), 0.8, 0.55, anchor)
	if r.Status != StatusNoImprovement {
		t.Errorf("status = %s, want no_improvement", r.Status)
	}
	if r.Slope >= 0 {
		t.Errorf("slope = %v, want negative", r.Slope)
	}
}

func TestForecast_PredictedDate(t *testing.T) {
	// Perfect line: y = 0.4 + 0.05x. Target 0.8 is hit at x = 8;
	// 8 - 3 = 5 days past the last sample.
	r := Forecast(series(0.4, 0.45, 0.5, 0.55), 0.8, 0.55, anchor)
	if r.Status != StatusPredictedDate {
		t.Fatalf("status = %s, want predicted_date", r.Status)
	}
	want := anchor.AddDate(0, 0, 5)
	if !r.Date.Equal(want) {
		t.Errorf("date = %s, want %s", r.Date.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestForecast_Imminent(t *testing.T) {
	// Trend crosses the target within the observed range but the window
	// accuracy still sits below it.
	r := Forecast(series(0.5, 0.7, 0.85, 0.9), 0.8, 0.74, anchor)
	if r.Status != StatusImminent {
		t.Errorf("status = %s, want imminent", r.Status)
	}
}

func TestForecast_FarFuture(t *testing.T) {
	// Rising, but at 0.0012/day the 0.5 gap needs far more than a year.
	r := Forecast(series(0.30, 0.3012, 0.3024, 0.3036), 0.8, 0.302, anchor)
	if r.Status != StatusFarFuture {
		t.Errorf("status = %s, want far_future", r.Status)
	}
}

func TestFitLine(t *testing.T) {
	slope, intercept := fitLine([]float64{0.2, 0.3, 0.4, 0.5})
	if !approx(slope, 0.1) || !approx(intercept, 0.2) {
		t.Errorf("fit = (%v, %v), want (0.1, 0.2)", slope, intercept)
	}

	slope, intercept = fitLine([]float64{0.7})
	if slope != 0 || intercept != 0.7 {
		t.Errorf("single point fit = (%v, %v), want (0, 0.7)", slope, intercept)
	}
}

func TestGap(t *testing.T) {
	if g := Gap(0.6, 0.8); !approx(g, 0.2) {
		t.Errorf("Gap(0.6, 0.8) = %v, want 0.2", g)
	}
	if g := Gap(0.9, 0.8); g != 0 {
		t.Errorf("Gap above target = %v, want 0", g)
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
