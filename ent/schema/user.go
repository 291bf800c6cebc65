package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.Enum("role").
			Values("patient", "professional", "admin").
			Default("patient").
			Comment("User role, also the coupon audience the user belongs to"),
		field.String("plan_key").
			Optional().
			Comment("Current plan key in {tier}-{cycle} format, empty on free tier"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID, set on first checkout"),
		field.Bool("email_verified").
			Default(false).
			Comment("Whether email is verified"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("coupons", Coupon.Type).
			Comment("Coupons issued by this professional"),
		edge.To("subscriptions", Subscription.Type).
			Comment("Billing subscriptions"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
