package dataio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

func TestReadAttempts(t *testing.T) {
	in := strings.NewReader(
		"date,problem_id,result,answer_secs,miss_reason,study_mins\n" +
			"2025-08-01,P1,correct,42.5,,30\n" +
			"garbage,P2,correct,10,,\n" +
			"2025/08/02,P3,〇,,,\n")

	res, err := ReadAttempts(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.Log) != 2 || res.Dropped != 1 {
		t.Fatalf("got %d entries, %d dropped; want 2 and 1", len(res.Log), res.Dropped)
	}
	e := res.Log[0]
	if e.ProblemID != "P1" || !e.Correct() || e.AnswerSecs != 42.5 || e.StudyMins != 30 {
		t.Errorf("first entry = %+v", e)
	}
	if !res.Log[1].Correct() {
		t.Error("〇 mark should read as correct")
	}
}

func TestReadAttempts_ColumnOrderIndependent(t *testing.T) {
	in := strings.NewReader(
		"Result,Date,Problem_ID\ncorrect,2025-08-01,P9\n")
	res, err := ReadAttempts(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(res.Log) != 1 || res.Log[0].ProblemID != "P9" {
		t.Errorf("log = %+v", res.Log)
	}
}

func TestWriteAttemptsRoundTrip(t *testing.T) {
	log := attemptlog.Log{
		{
			Date:       time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			ProblemID:  "P1",
			Result:     attemptlog.ResultIncorrect,
			AnswerSecs: 90,
			MissReason: "careless",
			StudyMins:  20,
		},
	}

	var buf bytes.Buffer
	if err := WriteAttempts(&buf, log); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := ReadAttempts(&buf)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if len(res.Log) != 1 || res.Dropped != 0 {
		t.Fatalf("round trip lost rows: %+v", res)
	}
	got := res.Log[0]
	if got.ProblemID != "P1" || got.Correct() || got.AnswerSecs != 90 ||
		got.MissReason != "careless" || got.StudyMins != 20 {
		t.Errorf("round trip entry = %+v", got)
	}
	if !got.Date.Equal(log[0].Date) {
		t.Errorf("date = %s, want %s", got.Date, log[0].Date)
	}
}

func TestReadCatalog(t *testing.T) {
	in := strings.NewReader(
		"problem_id,subject,genre,unit,target_time_secs,target_accuracy_pct,tier,frequency_weight\n" +
			"A1,math,inference,Sets,60,80,low,3\n" +
			",math,,,,,,\n" + // no ID: skipped
			"A2,math,arithmetic,Ratios,90,,unknown,\n")

	cat, err := ReadCatalog(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("catalog len = %d, want 2", cat.Len())
	}
	p, _ := cat.Lookup("A1")
	if p.Unit != "Sets" || p.TargetTimeSecs != 60 || p.Tier != catalog.TierLow || p.FrequencyWeight != 3 {
		t.Errorf("A1 = %+v", p)
	}
	p, _ = cat.Lookup("A2")
	if p.Tier != catalog.TierMid {
		t.Errorf("unknown tier should default to mid, got %s", p.Tier)
	}
}

func TestReadAttempts_EmptyFile(t *testing.T) {
	if _, err := ReadAttempts(strings.NewReader("")); err == nil {
		t.Error("empty csv should error")
	}
}
