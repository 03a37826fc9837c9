// Package dataio reads and writes the CSV interchange format for the
// attempt log and the problem master. Column layouts follow the
// spreadsheet exports the data originates from; header names are matched
// case-insensitively so hand-edited files still load.
package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
)

// ImportResult summarizes one attempt-log import.
type ImportResult struct {
	Log     attemptlog.Log
	Dropped int
}

// ReadAttempts parses an attempt-log CSV. Expected columns: date,
// problem_id, result, answer_secs, miss_reason, study_mins. Rows with an
// unparseable date are dropped and counted, not fatal.
func ReadAttempts(r io.Reader) (ImportResult, error) {
	records, header, err := readAll(r)
	if err != nil {
		return ImportResult{}, err
	}

	col := indexColumns(header)
	rows := make([]attemptlog.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, attemptlog.RawRow{
			Date:       field(rec, col, "date"),
			ProblemID:  field(rec, col, "problem_id"),
			Result:     field(rec, col, "result"),
			AnswerSecs: field(rec, col, "answer_secs"),
			MissReason: field(rec, col, "miss_reason"),
			StudyMins:  field(rec, col, "study_mins"),
		})
	}

	log, dropped := attemptlog.ParseRows(rows)
	return ImportResult{Log: log, Dropped: dropped}, nil
}

// WriteAttempts renders the log in the same column layout ReadAttempts
// expects, so an export can be re-imported unchanged.
func WriteAttempts(w io.Writer, log attemptlog.Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "problem_id", "result", "answer_secs", "miss_reason", "study_mins"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range log {
		result := "incorrect"
		if e.Correct() {
			result = "correct"
		}
		rec := []string{
			e.Day().Format("2006-01-02"),
			e.ProblemID,
			result,
			formatFloat(e.AnswerSecs),
			e.MissReason,
			formatFloat(e.StudyMins),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write attempt row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCatalog parses a problem-master CSV. Expected columns: problem_id,
// subject, genre, unit, target_time_secs, target_accuracy_pct, tier,
// frequency_weight. Missing numeric fields coerce to 0; missing tiers
// default to mid.
func ReadCatalog(r io.Reader) (*catalog.Catalog, error) {
	records, header, err := readAll(r)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header)
	problems := make([]catalog.Problem, 0, len(records))
	for _, rec := range records {
		id := strings.TrimSpace(field(rec, col, "problem_id"))
		if id == "" {
			continue
		}
		problems = append(problems, catalog.Problem{
			ID:                id,
			Subject:           strings.TrimSpace(field(rec, col, "subject")),
			Genre:             strings.TrimSpace(field(rec, col, "genre")),
			Unit:              strings.TrimSpace(field(rec, col, "unit")),
			TargetTimeSecs:    parseFloat(field(rec, col, "target_time_secs")),
			TargetAccuracyPct: parseFloat(field(rec, col, "target_accuracy_pct")),
			Tier:              catalog.ParseTier(strings.TrimSpace(field(rec, col, "tier"))),
			FrequencyWeight:   int(parseFloat(field(rec, col, "frequency_weight"))),
		})
	}
	return catalog.New(problems), nil
}

// readAll reads the CSV, splitting off the header row. Records with the
// wrong field count are tolerated; missing fields read as empty.
func readAll(r io.Reader) ([][]string, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty csv")
	}
	return all[1:], all[0], nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func field(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
