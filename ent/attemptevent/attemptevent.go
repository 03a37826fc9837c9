// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptedOn holds the string denoting the attempted_on field in the database.
	FieldAttemptedOn = "attempted_on"
	// FieldProblemID holds the string denoting the problem_id field in the database.
	FieldProblemID = "problem_id"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldAnswerSecs holds the string denoting the answer_secs field in the database.
	FieldAnswerSecs = "answer_secs"
	// FieldMissReason holds the string denoting the miss_reason field in the database.
	FieldMissReason = "miss_reason"
	// FieldStudyMins holds the string denoting the study_mins field in the database.
	FieldStudyMins = "study_mins"
	// FieldImportBatch holds the string denoting the import_batch field in the database.
	FieldImportBatch = "import_batch"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptedOn,
	FieldProblemID,
	FieldCorrect,
	FieldAnswerSecs,
	FieldMissReason,
	FieldStudyMins,
	FieldImportBatch,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultAnswerSecs holds the default value on creation for the "answer_secs" field.
	DefaultAnswerSecs float64
	// DefaultMissReason holds the default value on creation for the "miss_reason" field.
	DefaultMissReason string
	// DefaultStudyMins holds the default value on creation for the "study_mins" field.
	DefaultStudyMins float64
	// DefaultImportBatch holds the default value on creation for the "import_batch" field.
	DefaultImportBatch string
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptedOn orders the results by the attempted_on field.
func ByAttemptedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedOn, opts...).ToFunc()
}

// ByProblemID orders the results by the problem_id field.
func ByProblemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemID, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByAnswerSecs orders the results by the answer_secs field.
func ByAnswerSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerSecs, opts...).ToFunc()
}

// ByMissReason orders the results by the miss_reason field.
func ByMissReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissReason, opts...).ToFunc()
}

// ByStudyMins orders the results by the study_mins field.
func ByStudyMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyMins, opts...).ToFunc()
}

// ByImportBatch orders the results by the import_batch field.
func ByImportBatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportBatch, opts...).ToFunc()
}
