package config

import (
	"testing"
	"time"
)

func TestTimePolicyFactor(t *testing.T) {
	cases := []struct {
		policy TimePolicy
		want   float64
	}{
		{PolicyStrict, 0.9},
		{PolicyStandard, 1.0},
		{PolicyLenient, 1.1},
		{TimePolicy("unknown"), 1.0},
	}
	for _, tc := range cases {
		if got := tc.policy.Factor(); got != tc.want {
			t.Errorf("%s.Factor() = %v, want %v", tc.policy, got, tc.want)
		}
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"zero target", func(s *Settings) { s.TargetRate = 0 }, true},
		{"target above 1", func(s *Settings) { s.TargetRate = 1.2 }, true},
		{"target exactly 1", func(s *Settings) { s.TargetRate = 1 }, false},
		{"limit too low", func(s *Settings) { s.DailyLimitMins = 5 }, true},
		{"limit too high", func(s *Settings) { s.DailyLimitMins = 300 }, true},
		{"limit at floor", func(s *Settings) { s.DailyLimitMins = 10 }, false},
		{"bad policy", func(s *Settings) { s.TimePolicy = "brutal" }, true},
	}
	for _, tc := range cases {
		s := Default()
		tc.mutate(&s)
		err := s.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PREPDASH_TARGET_RATE", "0.9")
	t.Setenv("PREPDASH_DAILY_MINUTES", "90")
	t.Setenv("PREPDASH_EXAM_DATE", "2025-11-03")
	t.Setenv("PREPDASH_TIME_POLICY", "strict")

	s := FromEnv()
	if s.TargetRate != 0.9 {
		t.Errorf("target rate = %v, want 0.9", s.TargetRate)
	}
	if s.DailyLimitMins != 90 {
		t.Errorf("daily minutes = %d, want 90", s.DailyLimitMins)
	}
	want := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	if !s.ExamDate.Equal(want) {
		t.Errorf("exam date = %s, want %s", s.ExamDate, want)
	}
	if s.TimePolicy != PolicyStrict {
		t.Errorf("policy = %s, want strict", s.TimePolicy)
	}
}

func TestFromEnv_MalformedFallsBack(t *testing.T) {
	t.Setenv("PREPDASH_TARGET_RATE", "2.5")
	t.Setenv("PREPDASH_DAILY_MINUTES", "soon")
	t.Setenv("PREPDASH_EXAM_DATE", "tomorrow")
	t.Setenv("PREPDASH_TIME_POLICY", "brutal")

	s := FromEnv()
	d := Default()
	if s.TargetRate != d.TargetRate || s.DailyLimitMins != d.DailyLimitMins ||
		!s.ExamDate.IsZero() || s.TimePolicy != d.TimePolicy {
		t.Errorf("malformed env should fall back to defaults, got %+v", s)
	}
}
