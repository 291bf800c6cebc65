package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Comment("Acting user, zero for system events"),
		field.String("action").
			NotEmpty().
			Comment("Event name, e.g. coupon.redeemed"),
		field.String("resource").
			Optional().
			Comment("Affected resource identifier"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Event details"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Event timestamp"),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
