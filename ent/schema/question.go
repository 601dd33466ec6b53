package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Question is a generated question stored against its upload.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("upload_id"),
		field.Text("text").
			StorageKey("question").
			NotEmpty(),
		field.Text("answer").
			NotEmpty(),
		field.JSON("options", []string{}).
			Optional(),
		field.String("type").
			Default("multiple_choice"),
		field.String("difficulty").
			Default("medium"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upload", Upload.Type).
			Ref("questions").
			Field("upload_id").
			Unique().
			Required(),
	}
}
