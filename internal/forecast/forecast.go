// Package forecast fits a linear trend to the daily accuracy series and
// projects when the target rate will be reached. The regression is a
// cheap, explainable trend signal, not a statistical model — the guard
// rails (minimum sample, zero variance) matter more than the fit.
package forecast

import (
	"math"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
)

// Status classifies the forecast outcome.
type Status string

const (
	// StatusInsufficientData: fewer than MinDays distinct study days.
	StatusInsufficientData Status = "insufficient_data"
	// StatusFlat: the accuracy series has zero variance.
	StatusFlat Status = "flat"
	// StatusAchieved: the current overall rate already meets the target.
	StatusAchieved Status = "achieved"
	// StatusNoImprovement: the fitted slope is flat or declining.
	StatusNoImprovement Status = "no_improvement"
	// StatusImminent: the trend projects the target as already passed.
	StatusImminent Status = "imminent"
	// StatusFarFuture: more than a year out at the current pace.
	StatusFarFuture Status = "far_future"
	// StatusPredictedDate: a concrete date; see Result.Date.
	StatusPredictedDate Status = "predicted_date"
)

// MinDays is the minimum number of distinct study days for a forecast.
const MinDays = 3

// slopeFloor below which a trend counts as no improvement.
const slopeFloor = 0.001

// Result is the forecast outcome. Date is set only for
// StatusPredictedDate.
type Result struct {
	Status    Status
	Date      time.Time
	Slope     float64
	Intercept float64
}

// Forecast projects the goal-achievement date from the daily accuracy
// series. currentRate is the overall accuracy of the analysis window,
// checked against the target before the trend is consulted: a learner
// already at target reports achieved even on a declining trend.
func Forecast(series []attemptlog.DayPoint, targetRate, currentRate float64, today time.Time) Result {
	if len(series) < MinDays {
		return Result{Status: StatusInsufficientData}
	}

	ys := make([]float64, len(series))
	for i, p := range series {
		ys[i] = p.Accuracy
	}
	if variance(ys) == 0 {
		return Result{Status: StatusFlat}
	}

	slope, intercept := fitLine(ys)
	res := Result{Slope: slope, Intercept: intercept}

	if currentRate >= targetRate {
		res.Status = StatusAchieved
		return res
	}
	if slope <= slopeFloor {
		res.Status = StatusNoImprovement
		return res
	}

	dayNeeded := (targetRate - intercept) / slope
	daysRemaining := dayNeeded - float64(len(series)-1)

	switch {
	case daysRemaining <= 0:
		res.Status = StatusImminent
	case daysRemaining > 365:
		res.Status = StatusFarFuture
	default:
		res.Status = StatusPredictedDate
		res.Date = attemptlog.Day(today).AddDate(0, 0, int(daysRemaining))
	}
	return res
}

// fitLine runs ordinary least squares over integer day indices 0..n-1.
func fitLine(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func variance(ys []float64) float64 {
	n := float64(len(ys))
	var sum float64
	for _, y := range ys {
		sum += y
	}
	mean := sum / n
	var v float64
	for _, y := range ys {
		v += (y - mean) * (y - mean)
	}
	return v / n
}

// Describe renders a short human-readable label for a result.
func Describe(r Result) string {
	switch r.Status {
	case StatusInsufficientData:
		return "Not enough data — at least 3 study days needed"
	case StatusFlat:
		return "No change — accuracy has been constant"
	case StatusAchieved:
		return "Target achieved"
	case StatusNoImprovement:
		return "No improvement trend — review your study method"
	case StatusImminent:
		return "About to reach the target"
	case StatusFarFuture:
		return "Over a year away at this pace — speed up"
	case StatusPredictedDate:
		return "Predicted: " + r.Date.Format("2006/01/02")
	default:
		return string(r.Status)
	}
}

// Gap returns how far the current rate is below the target, floored at 0.
func Gap(currentRate, targetRate float64) float64 {
	return math.Max(0, targetRate-currentRate)
}
