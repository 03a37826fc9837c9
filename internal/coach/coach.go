// Package coach produces personalized study advice. With an LLM provider
// configured it asks for schema-validated advice grounded in the
// aggregated statistics; without one it falls back to the rule-based
// lines, so the advice surface always renders.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/insights"
	"github.com/abhisek/prepdash/internal/llm"
	"github.com/abhisek/prepdash/internal/weakness"
)

// Input is the coaching context assembled by the caller.
type Input struct {
	Summary    *analytics.Summary
	Weak       []weakness.RankedUnit
	Trend      forecast.Result
	TargetRate float64
	StreakDays int
	DaysToExam int
}

// Advice is the coach's answer.
type Advice struct {
	Summary   string
	FocusUnit string
	Tips      []string
	// FromLLM is false when the rule-based fallback produced the advice.
	FromLLM bool
}

// Config tunes LLM generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings used by the app.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.3}
}

// Service generates advice asynchronously for the TUI, or synchronously
// via Generate for the CLI. provider may be nil.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Advice
	err     error
	ready   bool
}

// NewService creates a coach service. A nil provider selects the
// rule-based fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces advice synchronously.
func (s *Service) Generate(ctx context.Context, input Input) (*Advice, error) {
	if s.provider == nil {
		return Fallback(input), nil
	}

	ctx = llm.WithPurpose(ctx, "coach")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach generation: %w", err)
	}

	var out struct {
		Summary   string   `json:"summary"`
		FocusUnit string   `json:"focus_unit"`
		Tips      []string `json:"tips"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach response: %w", err)
	}

	return &Advice{
		Summary:   out.Summary,
		FocusUnit: out.FocusUnit,
		Tips:      out.Tips,
		FromLLM:   true,
	}, nil
}

// RequestAdvice starts async generation. Only one request is in-flight
// at a time — new requests replace pending ones. A failed LLM call
// resolves to the fallback rather than an empty screen.
func (s *Service) RequestAdvice(ctx context.Context, input Input) {
	go func() {
		advice, err := s.Generate(ctx, input)
		if err != nil {
			advice = Fallback(input)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = advice
		s.err = err
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice if one is ready, clearing the
// slot. Returns (nil, false) while generation is still running.
func (s *Service) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	advice := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return advice, advice != nil
}

// Fallback derives advice from the rule-based lines.
func Fallback(input Input) *Advice {
	var current, overrun float64
	if input.Summary != nil {
		current = input.Summary.Overall.Accuracy
		overrun = input.Summary.Overall.TimeOverrunRate
	}
	lines := insights.Advice(current, input.TargetRate, overrun, input.StreakDays)

	adv := &Advice{Tips: lines}
	if len(lines) > 0 {
		adv.Summary = lines[0]
		adv.Tips = lines[1:]
	}
	if len(input.Weak) > 0 {
		adv.FocusUnit = input.Weak[0].Unit
	}
	return adv
}
