package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records one completed flashcard or test run.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.Int("upload_id").
			Optional().
			Nillable(),
		field.Enum("mode").
			Values("flashcards", "test"),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Only set for graded test runs"),
		field.Int("total_questions").
			NonNegative(),
		field.Int("time_spent_secs").
			Default(0).
			NonNegative(),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upload", Upload.Type).
			Ref("study_sessions").
			Field("upload_id").
			Unique(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "completed_at"),
	}
}
