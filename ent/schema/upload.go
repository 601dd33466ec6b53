package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Upload is a file a signed-in user submitted for question generation.
type Upload struct {
	ent.Schema
}

func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Original file name"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Owner; null for anonymous uploads"),
		field.Int64("file_size").
			Optional().
			Nillable(),
		field.String("file_type").
			Optional().
			Nillable().
			Comment("MIME type as reported by the client"),
		field.String("blob_key").
			Optional().
			Nillable().
			Comment("Object key of the stored file"),
		field.Bool("processed").
			Default(false).
			Comment("Set once the generated questions are stored"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Upload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
		edge.To("study_sessions", StudySession.Type),
	}
}

func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
