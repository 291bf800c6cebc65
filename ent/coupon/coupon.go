// Code generated by ent, DO NOT EDIT.

package coupon

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the coupon type in the database.
	Label = "coupon"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDiscountType holds the string denoting the discount_type field in the database.
	FieldDiscountType = "discount_type"
	// FieldDiscountValue holds the string denoting the discount_value field in the database.
	FieldDiscountValue = "discount_value"
	// FieldAudience holds the string denoting the audience field in the database.
	FieldAudience = "audience"
	// FieldValidFrom holds the string denoting the valid_from field in the database.
	FieldValidFrom = "valid_from"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldMaxUses holds the string denoting the max_uses field in the database.
	FieldMaxUses = "max_uses"
	// FieldCurrentUses holds the string denoting the current_uses field in the database.
	FieldCurrentUses = "current_uses"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the coupon in the database.
	Table = "coupons"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "coupons"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_coupons"
)

// Columns holds all SQL columns for coupon fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldDescription,
	FieldDiscountType,
	FieldDiscountValue,
	FieldAudience,
	FieldValidFrom,
	FieldValidUntil,
	FieldMaxUses,
	FieldCurrentUses,
	FieldActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "coupons"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_coupons",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DefaultValidFrom holds the default value on creation for the "valid_from" field.
	DefaultValidFrom func() time.Time
	// MaxUsesValidator is a validator for the "max_uses" field. It is called by the builders before save.
	MaxUsesValidator func(int) error
	// DefaultCurrentUses holds the default value on creation for the "current_uses" field.
	DefaultCurrentUses int
	// CurrentUsesValidator is a validator for the "current_uses" field. It is called by the builders before save.
	CurrentUsesValidator func(int) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DiscountType defines the type for the "discount_type" enum field.
type DiscountType string

// DiscountType values.
const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (dt DiscountType) String() string {
	return string(dt)
}

// DiscountTypeValidator is a validator for the "discount_type" field enum values. It is called by the builders before save.
func DiscountTypeValidator(dt DiscountType) error {
	switch dt {
	case DiscountTypePercentage, DiscountTypeFixed:
		return nil
	default:
		return fmt.Errorf("coupon: invalid enum value for discount_type field: %q", dt)
	}
}

// Audience defines the type for the "audience" enum field.
type Audience string

// AudienceAll is the default value of the Audience enum.
const DefaultAudience = AudienceAll

// Audience values.
const (
	AudienceProfessionals Audience = "professionals"
	AudiencePatients      Audience = "patients"
	AudienceAll           Audience = "all"
)

func (a Audience) String() string {
	return string(a)
}

// AudienceValidator is a validator for the "audience" field enum values. It is called by the builders before save.
func AudienceValidator(a Audience) error {
	switch a {
	case AudienceProfessionals, AudiencePatients, AudienceAll:
		return nil
	default:
		return fmt.Errorf("coupon: invalid enum value for audience field: %q", a)
	}
}

// OrderOption defines the ordering options for the Coupon queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDiscountType orders the results by the discount_type field.
func ByDiscountType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountType, opts...).ToFunc()
}

// ByDiscountValue orders the results by the discount_value field.
func ByDiscountValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountValue, opts...).ToFunc()
}

// ByAudience orders the results by the audience field.
func ByAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudience, opts...).ToFunc()
}

// ByValidFrom orders the results by the valid_from field.
func ByValidFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidFrom, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// ByMaxUses orders the results by the max_uses field.
func ByMaxUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxUses, opts...).ToFunc()
}

// ByCurrentUses orders the results by the current_uses field.
func ByCurrentUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentUses, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
