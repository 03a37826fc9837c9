package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single practice attempt. The attempt log is
// append-only; analytics replay it rather than mutating aggregates.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("attempted_on").
			Comment("Study day, normalized to midnight UTC"),
		field.String("problem_id").
			Comment("Links to Problem; may be absent from the catalog"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("answer_secs").
			Default(0).
			Comment("Seconds spent answering"),
		field.String("miss_reason").
			Default("").
			Comment("Free-form reason recorded for an incorrect answer"),
		field.Float("study_mins").
			Default(0).
			Comment("Minutes of study logged with this attempt"),
		field.String("import_batch").
			Default("").
			Comment("UUID of the CSV import that created this row, empty for manual entries"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempted_on"),
		index.Fields("problem_id"),
		index.Fields("correct"),
	}
}
