package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Plan tier key (50, 100, 500)"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("description").
			Optional().
			Comment("Short marketing description"),
		field.Float("monthly_price").
			Min(0).
			Comment("Base monthly price in BRL"),
		field.JSON("features", []string{}).
			Optional().
			Comment("Feature bullet list"),
		field.Bool("free").
			Default(false).
			Comment("Whether the plan is free"),
		field.Bool("active").
			Default(true).
			Comment("Inactive plans are hidden from pricing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
		index.Fields("active"),
	}
}
