// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepdash/ent/attemptevent"
	"github.com/abhisek/prepdash/ent/llmrequestevent"
	"github.com/abhisek/prepdash/ent/problem"
	"github.com/abhisek/prepdash/ent/schema"
	"github.com/abhisek/prepdash/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAnswerSecs is the schema descriptor for answer_secs field.
	attempteventDescAnswerSecs := attempteventFields[3].Descriptor()
	// attemptevent.DefaultAnswerSecs holds the default value on creation for the answer_secs field.
	attemptevent.DefaultAnswerSecs = attempteventDescAnswerSecs.Default.(float64)
	// attempteventDescMissReason is the schema descriptor for miss_reason field.
	attempteventDescMissReason := attempteventFields[4].Descriptor()
	// attemptevent.DefaultMissReason holds the default value on creation for the miss_reason field.
	attemptevent.DefaultMissReason = attempteventDescMissReason.Default.(string)
	// attempteventDescStudyMins is the schema descriptor for study_mins field.
	attempteventDescStudyMins := attempteventFields[5].Descriptor()
	// attemptevent.DefaultStudyMins holds the default value on creation for the study_mins field.
	attemptevent.DefaultStudyMins = attempteventDescStudyMins.Default.(float64)
	// attempteventDescImportBatch is the schema descriptor for import_batch field.
	attempteventDescImportBatch := attempteventFields[6].Descriptor()
	// attemptevent.DefaultImportBatch holds the default value on creation for the import_batch field.
	attemptevent.DefaultImportBatch = attempteventDescImportBatch.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	problemFields := schema.Problem{}.Fields()
	_ = problemFields
	// problemDescProblemID is the schema descriptor for problem_id field.
	problemDescProblemID := problemFields[0].Descriptor()
	// problem.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	problem.ProblemIDValidator = problemDescProblemID.Validators[0].(func(string) error)
	// problemDescSubject is the schema descriptor for subject field.
	problemDescSubject := problemFields[1].Descriptor()
	// problem.DefaultSubject holds the default value on creation for the subject field.
	problem.DefaultSubject = problemDescSubject.Default.(string)
	// problemDescGenre is the schema descriptor for genre field.
	problemDescGenre := problemFields[2].Descriptor()
	// problem.DefaultGenre holds the default value on creation for the genre field.
	problem.DefaultGenre = problemDescGenre.Default.(string)
	// problemDescUnit is the schema descriptor for unit field.
	problemDescUnit := problemFields[3].Descriptor()
	// problem.DefaultUnit holds the default value on creation for the unit field.
	problem.DefaultUnit = problemDescUnit.Default.(string)
	// problemDescTargetTimeSecs is the schema descriptor for target_time_secs field.
	problemDescTargetTimeSecs := problemFields[4].Descriptor()
	// problem.DefaultTargetTimeSecs holds the default value on creation for the target_time_secs field.
	problem.DefaultTargetTimeSecs = problemDescTargetTimeSecs.Default.(float64)
	// problemDescTargetAccuracyPct is the schema descriptor for target_accuracy_pct field.
	problemDescTargetAccuracyPct := problemFields[5].Descriptor()
	// problem.DefaultTargetAccuracyPct holds the default value on creation for the target_accuracy_pct field.
	problem.DefaultTargetAccuracyPct = problemDescTargetAccuracyPct.Default.(float64)
	// problemDescTier is the schema descriptor for tier field.
	problemDescTier := problemFields[6].Descriptor()
	// problem.DefaultTier holds the default value on creation for the tier field.
	problem.DefaultTier = problemDescTier.Default.(string)
	// problemDescFrequencyWeight is the schema descriptor for frequency_weight field.
	problemDescFrequencyWeight := problemFields[7].Descriptor()
	// problem.DefaultFrequencyWeight holds the default value on creation for the frequency_weight field.
	problem.DefaultFrequencyWeight = problemDescFrequencyWeight.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
