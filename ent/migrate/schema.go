// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "resource", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
		},
	}
	// CouponsColumns holds the columns for the "coupons" table.
	CouponsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "discount_type", Type: field.TypeEnum, Enums: []string{"percentage", "fixed"}},
		{Name: "discount_value", Type: field.TypeFloat64},
		{Name: "audience", Type: field.TypeEnum, Enums: []string{"professionals", "patients", "all"}, Default: "all"},
		{Name: "valid_from", Type: field.TypeTime},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "current_uses", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_coupons", Type: field.TypeInt, Nullable: true},
	}
	// CouponsTable holds the schema information for the "coupons" table.
	CouponsTable = &schema.Table{
		Name:       "coupons",
		Columns:    CouponsColumns,
		PrimaryKey: []*schema.Column{CouponsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "coupons_users_coupons",
				Columns:    []*schema.Column{CouponsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "coupon_code",
				Unique:  true,
				Columns: []*schema.Column{CouponsColumns[1]},
			},
			{
				Name:    "coupon_active",
				Unique:  false,
				Columns: []*schema.Column{CouponsColumns[10]},
			},
			{
				Name:    "coupon_valid_until",
				Unique:  false,
				Columns: []*schema.Column{CouponsColumns[7]},
			},
		},
	}
	// PlansColumns holds the columns for the "plans" table.
	PlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "monthly_price", Type: field.TypeFloat64},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "free", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlansTable holds the schema information for the "plans" table.
	PlansTable = &schema.Table{
		Name:       "plans",
		Columns:    PlansColumns,
		PrimaryKey: []*schema.Column{PlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plan_key",
				Unique:  true,
				Columns: []*schema.Column{PlansColumns[1]},
			},
			{
				Name:    "plan_active",
				Unique:  false,
				Columns: []*schema.Column{PlansColumns[7]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "canceled", "past_due", "unpaid", "trialing"}, Default: "active"},
		{Name: "coupon_code", Type: field.TypeString, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "current_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_at_period_end", Type: field.TypeBool, Default: false},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[11]},
			},
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[4]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "professional", "admin"}, Default: "patient"},
		{Name: "plan_key", Type: field.TypeString, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CouponsTable,
		PlansTable,
		SubscriptionsTable,
		UsersTable,
	}
)

func init() {
	CouponsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
