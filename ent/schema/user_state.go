package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserState persists the full per-user aggregate as a JSON document.
// The engine treats this row as an opaque blob; derived metrics are
// never stored here.
type UserState struct {
	ent.Schema
}

func (UserState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			Comment("Stable user key, one row per user"),
		field.JSON("data", map[string]any{}).
			Comment("Full UserState aggregate as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the row was first written"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last successful save"),
	}
}

func (UserState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("updated_at"),
	}
}
