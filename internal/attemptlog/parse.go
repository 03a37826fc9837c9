package attemptlog

import (
	"strconv"
	"strings"
	"time"
)

// Accepted date layouts for raw log rows, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
}

// RawRow is an attempt log row before coercion, as read from CSV or a
// spreadsheet export.
type RawRow struct {
	Date       string
	ProblemID  string
	Result     string
	AnswerSecs string
	MissReason string
	StudyMins  string
}

// ParseRow coerces a raw row into an Entry. Rows with an unparseable
// date are dropped (ok=false); non-numeric time fields are coerced to 0
// so downstream components can assume clean numeric types.
func ParseRow(row RawRow) (Entry, bool) {
	date, ok := parseDate(row.Date)
	if !ok {
		return Entry{}, false
	}

	return Entry{
		Date:       date,
		ProblemID:  strings.TrimSpace(row.ProblemID),
		Result:     parseResult(row.Result),
		AnswerSecs: parseNonNegative(row.AnswerSecs),
		MissReason: strings.TrimSpace(row.MissReason),
		StudyMins:  parseNonNegative(row.StudyMins),
	}, true
}

// ParseRows coerces a batch of raw rows, dropping the malformed ones and
// reporting how many were dropped.
func ParseRows(rows []RawRow) (Log, int) {
	var log Log
	dropped := 0
	for _, r := range rows {
		e, ok := ParseRow(r)
		if !ok {
			dropped++
			continue
		}
		log = append(log, e)
	}
	return log, dropped
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}

// parseResult normalizes the result column. Spreadsheet exports may
// carry 〇/✕ marks instead of words.
func parseResult(s string) Result {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "correct", "true", "1", "o", "〇", "○":
		return ResultCorrect
	default:
		return ResultIncorrect
	}
}

func parseNonNegative(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
