// Package config holds the caller-supplied study settings. The source
// dashboard kept these in long-lived session globals; here they are an
// explicit value threaded through every call — nothing in the core reads
// ambient state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimePolicy scales target answer times for the overrun comparison.
type TimePolicy string

const (
	PolicyStrict   TimePolicy = "strict"
	PolicyStandard TimePolicy = "standard"
	PolicyLenient  TimePolicy = "lenient"
)

// Factor returns the multiplier applied to target answer times.
func (p TimePolicy) Factor() float64 {
	switch p {
	case PolicyStrict:
		return 0.9
	case PolicyLenient:
		return 1.1
	default:
		return 1.0
	}
}

// Settings is the full study configuration.
type Settings struct {
	// TargetRate is the goal accuracy in [0, 1].
	TargetRate float64
	// DailyLimitMins is the per-day study budget in minutes.
	DailyLimitMins int
	// ExamDate is the exam day; zero means not set.
	ExamDate time.Time
	// TimePolicy selects strict/standard/lenient target times.
	TimePolicy TimePolicy
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		TargetRate:     0.8,
		DailyLimitMins: 60,
		TimePolicy:     PolicyStandard,
	}
}

// FromEnv builds Settings from PREPDASH_* environment variables, falling
// back to defaults for unset or malformed values.
func FromEnv() Settings {
	s := Default()

	if v := os.Getenv("PREPDASH_TARGET_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			s.TargetRate = f
		}
	}
	if v := os.Getenv("PREPDASH_DAILY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.DailyLimitMins = n
		}
	}
	if v := os.Getenv("PREPDASH_EXAM_DATE"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			s.ExamDate = t
		}
	}
	if v := os.Getenv("PREPDASH_TIME_POLICY"); v != "" {
		switch TimePolicy(v) {
		case PolicyStrict, PolicyStandard, PolicyLenient:
			s.TimePolicy = TimePolicy(v)
		}
	}

	return s
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.TargetRate <= 0 || s.TargetRate > 1 {
		return fmt.Errorf("target rate must be in (0, 1], got %v", s.TargetRate)
	}
	if s.DailyLimitMins < 10 || s.DailyLimitMins > 180 {
		return fmt.Errorf("daily limit must be 10-180 minutes, got %d", s.DailyLimitMins)
	}
	switch s.TimePolicy {
	case PolicyStrict, PolicyStandard, PolicyLenient:
	default:
		return fmt.Errorf("unknown time policy: %q", s.TimePolicy)
	}
	return nil
}
