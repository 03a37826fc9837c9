// Code generated by ent, DO NOT EDIT.

package problem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the problem type in the database.
	Label = "problem"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProblemID holds the string denoting the problem_id field in the database.
	FieldProblemID = "problem_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGenre holds the string denoting the genre field in the database.
	FieldGenre = "genre"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldTargetTimeSecs holds the string denoting the target_time_secs field in the database.
	FieldTargetTimeSecs = "target_time_secs"
	// FieldTargetAccuracyPct holds the string denoting the target_accuracy_pct field in the database.
	FieldTargetAccuracyPct = "target_accuracy_pct"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldFrequencyWeight holds the string denoting the frequency_weight field in the database.
	FieldFrequencyWeight = "frequency_weight"
	// Table holds the table name of the problem in the database.
	Table = "problems"
)

// Columns holds all SQL columns for problem fields.
var Columns = []string{
	FieldID,
	FieldProblemID,
	FieldSubject,
	FieldGenre,
	FieldUnit,
	FieldTargetTimeSecs,
	FieldTargetAccuracyPct,
	FieldTier,
	FieldFrequencyWeight,
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
	// ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	ProblemIDValidator func(string) error
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultGenre holds the default value on creation for the "genre" field.
	DefaultGenre string
	// DefaultUnit holds the default value on creation for the "unit" field.
	DefaultUnit string
	// DefaultTargetTimeSecs holds the default value on creation for the "target_time_secs" field.
	DefaultTargetTimeSecs float64
	// DefaultTargetAccuracyPct holds the default value on creation for the "target_accuracy_pct" field.
	DefaultTargetAccuracyPct float64
	// DefaultTier holds the default value on creation for the "tier" field.
	DefaultTier string
	// DefaultFrequencyWeight holds the default value on creation for the "frequency_weight" field.
	DefaultFrequencyWeight int
)

// OrderOption defines the ordering options for the Problem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProblemID orders the results by the problem_id field.
func ByProblemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGenre orders the results by the genre field.
func ByGenre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenre, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByTargetTimeSecs orders the results by the target_time_secs field.
func ByTargetTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetTimeSecs, opts...).ToFunc()
}

// ByTargetAccuracyPct orders the results by the target_accuracy_pct field.
func ByTargetAccuracyPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAccuracyPct, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByFrequencyWeight orders the results by the frequency_weight field.
func ByFrequencyWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequencyWeight, opts...).ToFunc()
}
