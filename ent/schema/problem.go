package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Problem is one row of the problem master: immutable reference data
// describing a catalog problem and its targets.
type Problem struct {
	ent.Schema
}

func (Problem) Fields() []ent.Field {
	return []ent.Field{
		field.String("problem_id").
			Unique().
			NotEmpty().
			Comment("External problem identifier used by the attempt log"),
		field.String("subject").
			Default("").
			Comment("Subject the problem belongs to"),
		field.String("genre").
			Default("").
			Comment("Broad genre, e.g. inference or arithmetic"),
		field.String("unit").
			Default("").
			Comment("Teaching unit; the grain of planning and ranking"),
		field.Float("target_time_secs").
			Default(0).
			Comment("Target answer time in seconds"),
		field.Float("target_accuracy_pct").
			Default(0).
			Comment("Target accuracy in percent"),
		field.String("tier").
			Default("mid").
			Comment("Difficulty tier: low, mid, or high"),
		field.Int("frequency_weight").
			Default(0).
			Comment("How often this problem appears on past exams"),
	}
}

func (Problem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id"),
		index.Fields("unit"),
		index.Fields("tier"),
	}
}
