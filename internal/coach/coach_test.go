package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/llm"
	"github.com/abhisek/prepdash/internal/weakness"
)

func testInput() Input {
	return Input{
		Summary: &analytics.Summary{
			Overall: analytics.Overall{
				Attempts:        40,
				Accuracy:        0.65,
				AvgAnswerSecs:   70,
				AvgTargetSecs:   60,
				TimeOverrunRate: 0.4,
			},
		},
		Weak: []weakness.RankedUnit{
			{Unit: "Speed", Accuracy: 0.4, Attempts: 10},
			{Unit: "Sets", Accuracy: 0.6, Attempts: 8},
		},
		Trend:      forecast.Result{Status: forecast.StatusNoImprovement},
		TargetRate: 0.8,
		StreakDays: 4,
		DaysToExam: 21,
	}
}

func TestGenerate_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Solid base, pace up.","focus_unit":"Speed","tips":["Drill Speed basics","Time every answer"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	adv, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !adv.FromLLM {
		t.Error("expected LLM-sourced advice")
	}
	if adv.FocusUnit != "Speed" || len(adv.Tips) != 2 {
		t.Errorf("advice = %+v", adv)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != AdviceSchema {
		t.Error("request should carry the advice schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Speed") {
		t.Error("prompt should list the weak units")
	}
	if !strings.Contains(req.Messages[0].Content, "65.0%") {
		t.Errorf("prompt should carry the accuracy:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_NilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	adv, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if adv.FromLLM {
		t.Error("nil provider must use the fallback")
	}
	if adv.FocusUnit != "Speed" {
		t.Errorf("fallback focus = %q, want top weak unit", adv.FocusUnit)
	}
	if adv.Summary == "" {
		t.Error("fallback should carry a summary line")
	}
}

func TestRequestAdvice_FailureResolvesToFallback(t *testing.T) {
	// Empty mock queue: Generate errors, Request must still deliver.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	svc.RequestAdvice(context.Background(), testInput())

	deadline := time.After(2 * time.Second)
	for {
		if adv, ok := svc.ConsumeAdvice(); ok {
			if adv.FromLLM {
				t.Error("failed LLM call should resolve to fallback advice")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("advice never arrived")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestConsumeAdvice_ClearsSlot(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	svc.RequestAdvice(context.Background(), testInput())

	deadline := time.After(2 * time.Second)
	for {
		if _, ok := svc.ConsumeAdvice(); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("advice never arrived")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if _, ok := svc.ConsumeAdvice(); ok {
		t.Error("second consume should find nothing")
	}
}

func TestFallback_EmptySummary(t *testing.T) {
	adv := Fallback(Input{TargetRate: 0.8})
	if adv == nil || adv.Summary == "" {
		t.Fatal("fallback must always produce something to show")
	}
}
