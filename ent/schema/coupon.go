package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Coupon holds the schema definition for the Coupon entity.
// A coupon is never hard-deleted once it has usage history; retirement
// clears the active flag instead.
type Coupon struct {
	ent.Schema
}

// Fields of the Coupon.
func (Coupon) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Unique().
			NotEmpty().
			MaxLen(20).
			Comment("Normalized upper-case alphanumeric code"),
		field.String("description").
			Optional().
			Comment("Human readable description shown at checkout"),
		field.Enum("discount_type").
			Values("percentage", "fixed").
			Comment("Discount kind"),
		field.Float("discount_value").
			Comment("Percent (0-100) for percentage, BRL amount for fixed"),
		field.Enum("audience").
			Values("professionals", "patients", "all").
			Default("all").
			Comment("Caller category the coupon is restricted to"),
		field.Time("valid_from").
			Default(time.Now).
			Comment("Start of the validity window"),
		field.Time("valid_until").
			Optional().
			Nillable().
			Comment("End of the validity window, inclusive"),
		field.Int("max_uses").
			Optional().
			Nillable().
			Positive().
			Comment("Usage cap, unlimited when unset"),
		field.Int("current_uses").
			Default(0).
			NonNegative().
			Comment("Successful redemptions, incremented atomically"),
		field.Bool("active").
			Default(true).
			Comment("Retired coupons stay in place for audit history"),
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

// Edges of the Coupon.
func (Coupon) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("coupons").
			Unique().
			Comment("Issuing professional, absent for platform coupons"),
	}
}

// Indexes of the Coupon.
func (Coupon) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
		index.Fields("active"),
		index.Fields("valid_until"),
	}
}
