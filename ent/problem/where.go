// Code generated by ent, DO NOT EDIT.

package problem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdash/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldID, id))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldProblemID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSubject, v))
}

// Genre applies equality check predicate on the "genre" field. It's identical to GenreEQ.
func Genre(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGenre, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldUnit, v))
}

// TargetTimeSecs applies equality check predicate on the "target_time_secs" field. It's identical to TargetTimeSecsEQ.
func TargetTimeSecs(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTargetTimeSecs, v))
}

// TargetAccuracyPct applies equality check predicate on the "target_accuracy_pct" field. It's identical to TargetAccuracyPctEQ.
func TargetAccuracyPct(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTargetAccuracyPct, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTier, v))
}

// FrequencyWeight applies equality check predicate on the "frequency_weight" field. It's identical to FrequencyWeightEQ.
func FrequencyWeight(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldFrequencyWeight, v))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldProblemID, vs...))
}

// ProblemIDGT applies the GT predicate on the "problem_id" field.
func ProblemIDGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldProblemID, v))
}

// ProblemIDGTE applies the GTE predicate on the "problem_id" field.
func ProblemIDGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldProblemID, v))
}

// ProblemIDLT applies the LT predicate on the "problem_id" field.
func ProblemIDLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldProblemID, v))
}

// ProblemIDLTE applies the LTE predicate on the "problem_id" field.
func ProblemIDLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldProblemID, v))
}

// ProblemIDContains applies the Contains predicate on the "problem_id" field.
func ProblemIDContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldProblemID, v))
}

// ProblemIDHasPrefix applies the HasPrefix predicate on the "problem_id" field.
func ProblemIDHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldProblemID, v))
}

// ProblemIDHasSuffix applies the HasSuffix predicate on the "problem_id" field.
func ProblemIDHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldProblemID, v))
}

// ProblemIDEqualFold applies the EqualFold predicate on the "problem_id" field.
func ProblemIDEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldProblemID, v))
}

// ProblemIDContainsFold applies the ContainsFold predicate on the "problem_id" field.
func ProblemIDContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldProblemID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldSubject, v))
}

// GenreEQ applies the EQ predicate on the "genre" field.
func GenreEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGenre, v))
}

// GenreNEQ applies the NEQ predicate on the "genre" field.
func GenreNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldGenre, v))
}

// GenreIn applies the In predicate on the "genre" field.
func GenreIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldGenre, vs...))
}

// GenreNotIn applies the NotIn predicate on the "genre" field.
func GenreNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldGenre, vs...))
}

// GenreGT applies the GT predicate on the "genre" field.
func GenreGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldGenre, v))
}

// GenreGTE applies the GTE predicate on the "genre" field.
func GenreGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldGenre, v))
}

// GenreLT applies the LT predicate on the "genre" field.
func GenreLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldGenre, v))
}

// GenreLTE applies the LTE predicate on the "genre" field.
func GenreLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldGenre, v))
}

// GenreContains applies the Contains predicate on the "genre" field.
func GenreContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldGenre, v))
}

// GenreHasPrefix applies the HasPrefix predicate on the "genre" field.
func GenreHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldGenre, v))
}

// GenreHasSuffix applies the HasSuffix predicate on the "genre" field.
func GenreHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldGenre, v))
}

// GenreEqualFold applies the EqualFold predicate on the "genre" field.
func GenreEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldGenre, v))
}

// GenreContainsFold applies the ContainsFold predicate on the "genre" field.
func GenreContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldGenre, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldUnit, v))
}

// TargetTimeSecsEQ applies the EQ predicate on the "target_time_secs" field.
func TargetTimeSecsEQ(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTargetTimeSecs, v))
}

// TargetTimeSecsNEQ applies the NEQ predicate on the "target_time_secs" field.
func TargetTimeSecsNEQ(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldTargetTimeSecs, v))
}

// TargetTimeSecsIn applies the In predicate on the "target_time_secs" field.
func TargetTimeSecsIn(vs ...float64) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldTargetTimeSecs, vs...))
}

// TargetTimeSecsNotIn applies the NotIn predicate on the "target_time_secs" field.
func TargetTimeSecsNotIn(vs ...float64) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldTargetTimeSecs, vs...))
}

// TargetTimeSecsGT applies the GT predicate on the "target_time_secs" field.
func TargetTimeSecsGT(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldTargetTimeSecs, v))
}

// TargetTimeSecsGTE applies the GTE predicate on the "target_time_secs" field.
func TargetTimeSecsGTE(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldTargetTimeSecs, v))
}

// TargetTimeSecsLT applies the LT predicate on the "target_time_secs" field.
func TargetTimeSecsLT(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldTargetTimeSecs, v))
}

// TargetTimeSecsLTE applies the LTE predicate on the "target_time_secs" field.
func TargetTimeSecsLTE(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldTargetTimeSecs, v))
}

// TargetAccuracyPctEQ applies the EQ predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctEQ(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTargetAccuracyPct, v))
}

// TargetAccuracyPctNEQ applies the NEQ predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctNEQ(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldTargetAccuracyPct, v))
}

// TargetAccuracyPctIn applies the In predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctIn(vs ...float64) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldTargetAccuracyPct, vs...))
}

// TargetAccuracyPctNotIn applies the NotIn predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctNotIn(vs ...float64) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldTargetAccuracyPct, vs...))
}

// TargetAccuracyPctGT applies the GT predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctGT(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldTargetAccuracyPct, v))
}

// TargetAccuracyPctGTE applies the GTE predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctGTE(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldTargetAccuracyPct, v))
}

// TargetAccuracyPctLT applies the LT predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctLT(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldTargetAccuracyPct, v))
}

// TargetAccuracyPctLTE applies the LTE predicate on the "target_accuracy_pct" field.
func TargetAccuracyPctLTE(v float64) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldTargetAccuracyPct, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldTier, v))
}

// FrequencyWeightEQ applies the EQ predicate on the "frequency_weight" field.
func FrequencyWeightEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldFrequencyWeight, v))
}

// FrequencyWeightNEQ applies the NEQ predicate on the "frequency_weight" field.
func FrequencyWeightNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldFrequencyWeight, v))
}

// FrequencyWeightIn applies the In predicate on the "frequency_weight" field.
func FrequencyWeightIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldFrequencyWeight, vs...))
}

// FrequencyWeightNotIn applies the NotIn predicate on the "frequency_weight" field.
func FrequencyWeightNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldFrequencyWeight, vs...))
}

// FrequencyWeightGT applies the GT predicate on the "frequency_weight" field.
func FrequencyWeightGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldFrequencyWeight, v))
}

// FrequencyWeightGTE applies the GTE predicate on the "frequency_weight" field.
func FrequencyWeightGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldFrequencyWeight, v))
}

// FrequencyWeightLT applies the LT predicate on the "frequency_weight" field.
func FrequencyWeightLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldFrequencyWeight, v))
}

// FrequencyWeightLTE applies the LTE predicate on the "frequency_weight" field.
func FrequencyWeightLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldFrequencyWeight, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.NotPredicates(p))
}
