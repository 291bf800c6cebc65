// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/predicate"
	"github.com/vivasaude/vivasaude/ent/user"
)

// CouponUpdate is the builder for updating Coupon entities.
type CouponUpdate struct {
	config
	hooks    []Hook
	mutation *CouponMutation
}

// Where appends a list predicates to the CouponUpdate builder.
func (_u *CouponUpdate) Where(ps ...predicate.Coupon) *CouponUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *CouponUpdate) SetCode(v string) *CouponUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableCode(v *string) *CouponUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CouponUpdate) SetDescription(v string) *CouponUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableDescription(v *string) *CouponUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CouponUpdate) ClearDescription() *CouponUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDiscountType sets the "discount_type" field.
func (_u *CouponUpdate) SetDiscountType(v coupon.DiscountType) *CouponUpdate {
	_u.mutation.SetDiscountType(v)
	return _u
}

// SetNillableDiscountType sets the "discount_type" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableDiscountType(v *coupon.DiscountType) *CouponUpdate {
	if v != nil {
		_u.SetDiscountType(*v)
	}
	return _u
}

// SetDiscountValue sets the "discount_value" field.
func (_u *CouponUpdate) SetDiscountValue(v float64) *CouponUpdate {
	_u.mutation.ResetDiscountValue()
	_u.mutation.SetDiscountValue(v)
	return _u
}

// SetNillableDiscountValue sets the "discount_value" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableDiscountValue(v *float64) *CouponUpdate {
	if v != nil {
		_u.SetDiscountValue(*v)
	}
	return _u
}

// AddDiscountValue adds value to the "discount_value" field.
func (_u *CouponUpdate) AddDiscountValue(v float64) *CouponUpdate {
	_u.mutation.AddDiscountValue(v)
	return _u
}

// SetAudience sets the "audience" field.
func (_u *CouponUpdate) SetAudience(v coupon.Audience) *CouponUpdate {
	_u.mutation.SetAudience(v)
	return _u
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableAudience(v *coupon.Audience) *CouponUpdate {
	if v != nil {
		_u.SetAudience(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *CouponUpdate) SetValidFrom(v time.Time) *CouponUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableValidFrom(v *time.Time) *CouponUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *CouponUpdate) SetValidUntil(v time.Time) *CouponUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableValidUntil(v *time.Time) *CouponUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *CouponUpdate) ClearValidUntil() *CouponUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *CouponUpdate) SetMaxUses(v int) *CouponUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableMaxUses(v *int) *CouponUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *CouponUpdate) AddMaxUses(v int) *CouponUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *CouponUpdate) ClearMaxUses() *CouponUpdate {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *CouponUpdate) SetCurrentUses(v int) *CouponUpdate {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableCurrentUses(v *int) *CouponUpdate {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *CouponUpdate) AddCurrentUses(v int) *CouponUpdate {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CouponUpdate) SetActive(v bool) *CouponUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CouponUpdate) SetNillableActive(v *bool) *CouponUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CouponUpdate) SetUpdatedAt(v time.Time) *CouponUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *CouponUpdate) SetOwnerID(id int) *CouponUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *CouponUpdate) SetNillableOwnerID(id *int) *CouponUpdate {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CouponUpdate) SetOwner(v *User) *CouponUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the CouponMutation object of the builder.
func (_u *CouponUpdate) Mutation() *CouponMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CouponUpdate) ClearOwner() *CouponUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CouponUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouponUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CouponUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouponUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CouponUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := coupon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouponUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := coupon.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Coupon.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountType(); ok {
		if err := coupon.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`ent: validator failed for field "Coupon.discount_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Audience(); ok {
		if err := coupon.AudienceValidator(v); err != nil {
			return &ValidationError{Name: "audience", err: fmt.Errorf(`ent: validator failed for field "Coupon.audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxUses(); ok {
		if err := coupon.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.max_uses": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentUses(); ok {
		if err := coupon.CurrentUsesValidator(v); err != nil {
			return &ValidationError{Name: "current_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.current_uses": %w`, err)}
		}
	}
	return nil
}

func (_u *CouponUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coupon.Table, coupon.Columns, sqlgraph.NewFieldSpec(coupon.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(coupon.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(coupon.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(coupon.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DiscountType(); ok {
		_spec.SetField(coupon.FieldDiscountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscountValue(); ok {
		_spec.SetField(coupon.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountValue(); ok {
		_spec.AddField(coupon.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Audience(); ok {
		_spec.SetField(coupon.FieldAudience, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(coupon.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(coupon.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(coupon.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(coupon.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(coupon.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(coupon.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(coupon.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(coupon.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(coupon.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(coupon.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coupon.OwnerTable,
			Columns: []string{coupon.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coupon.OwnerTable,
			Columns: []string{coupon.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coupon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CouponUpdateOne is the builder for updating a single Coupon entity.
type CouponUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CouponMutation
}

// SetCode sets the "code" field.
func (_u *CouponUpdateOne) SetCode(v string) *CouponUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableCode(v *string) *CouponUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CouponUpdateOne) SetDescription(v string) *CouponUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableDescription(v *string) *CouponUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CouponUpdateOne) ClearDescription() *CouponUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDiscountType sets the "discount_type" field.
func (_u *CouponUpdateOne) SetDiscountType(v coupon.DiscountType) *CouponUpdateOne {
	_u.mutation.SetDiscountType(v)
	return _u
}

// SetNillableDiscountType sets the "discount_type" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableDiscountType(v *coupon.DiscountType) *CouponUpdateOne {
	if v != nil {
		_u.SetDiscountType(*v)
	}
	return _u
}

// SetDiscountValue sets the "discount_value" field.
func (_u *CouponUpdateOne) SetDiscountValue(v float64) *CouponUpdateOne {
	_u.mutation.ResetDiscountValue()
	_u.mutation.SetDiscountValue(v)
	return _u
}

// SetNillableDiscountValue sets the "discount_value" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableDiscountValue(v *float64) *CouponUpdateOne {
	if v != nil {
		_u.SetDiscountValue(*v)
	}
	return _u
}

// AddDiscountValue adds value to the "discount_value" field.
func (_u *CouponUpdateOne) AddDiscountValue(v float64) *CouponUpdateOne {
	_u.mutation.AddDiscountValue(v)
	return _u
}

// SetAudience sets the "audience" field.
func (_u *CouponUpdateOne) SetAudience(v coupon.Audience) *CouponUpdateOne {
	_u.mutation.SetAudience(v)
	return _u
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableAudience(v *coupon.Audience) *CouponUpdateOne {
	if v != nil {
		_u.SetAudience(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *CouponUpdateOne) SetValidFrom(v time.Time) *CouponUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableValidFrom(v *time.Time) *CouponUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *CouponUpdateOne) SetValidUntil(v time.Time) *CouponUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableValidUntil(v *time.Time) *CouponUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *CouponUpdateOne) ClearValidUntil() *CouponUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *CouponUpdateOne) SetMaxUses(v int) *CouponUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableMaxUses(v *int) *CouponUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *CouponUpdateOne) AddMaxUses(v int) *CouponUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// ClearMaxUses clears the value of the "max_uses" field.
func (_u *CouponUpdateOne) ClearMaxUses() *CouponUpdateOne {
	_u.mutation.ClearMaxUses()
	return _u
}

// SetCurrentUses sets the "current_uses" field.
func (_u *CouponUpdateOne) SetCurrentUses(v int) *CouponUpdateOne {
	_u.mutation.ResetCurrentUses()
	_u.mutation.SetCurrentUses(v)
	return _u
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableCurrentUses(v *int) *CouponUpdateOne {
	if v != nil {
		_u.SetCurrentUses(*v)
	}
	return _u
}

// AddCurrentUses adds value to the "current_uses" field.
func (_u *CouponUpdateOne) AddCurrentUses(v int) *CouponUpdateOne {
	_u.mutation.AddCurrentUses(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CouponUpdateOne) SetActive(v bool) *CouponUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableActive(v *bool) *CouponUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CouponUpdateOne) SetUpdatedAt(v time.Time) *CouponUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *CouponUpdateOne) SetOwnerID(id int) *CouponUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_u *CouponUpdateOne) SetNillableOwnerID(id *int) *CouponUpdateOne {
	if id != nil {
		_u = _u.SetOwnerID(*id)
	}
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *CouponUpdateOne) SetOwner(v *User) *CouponUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the CouponMutation object of the builder.
func (_u *CouponUpdateOne) Mutation() *CouponMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *CouponUpdateOne) ClearOwner() *CouponUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the CouponUpdate builder.
func (_u *CouponUpdateOne) Where(ps ...predicate.Coupon) *CouponUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CouponUpdateOne) Select(field string, fields ...string) *CouponUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Coupon entity.
func (_u *CouponUpdateOne) Save(ctx context.Context) (*Coupon, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouponUpdateOne) SaveX(ctx context.Context) *Coupon {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CouponUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouponUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CouponUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := coupon.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouponUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := coupon.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Coupon.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountType(); ok {
		if err := coupon.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`ent: validator failed for field "Coupon.discount_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Audience(); ok {
		if err := coupon.AudienceValidator(v); err != nil {
			return &ValidationError{Name: "audience", err: fmt.Errorf(`ent: validator failed for field "Coupon.audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxUses(); ok {
		if err := coupon.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.max_uses": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentUses(); ok {
		if err := coupon.CurrentUsesValidator(v); err != nil {
			return &ValidationError{Name: "current_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.current_uses": %w`, err)}
		}
	}
	return nil
}

func (_u *CouponUpdateOne) sqlSave(ctx context.Context) (_node *Coupon, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coupon.Table, coupon.Columns, sqlgraph.NewFieldSpec(coupon.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Coupon.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coupon.FieldID)
		for _, f := range fields {
			if !coupon.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coupon.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(coupon.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(coupon.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(coupon.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DiscountType(); ok {
		_spec.SetField(coupon.FieldDiscountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscountValue(); ok {
		_spec.SetField(coupon.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountValue(); ok {
		_spec.AddField(coupon.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Audience(); ok {
		_spec.SetField(coupon.FieldAudience, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(coupon.FieldValidFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(coupon.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(coupon.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(coupon.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(coupon.FieldMaxUses, field.TypeInt, value)
	}
	if _u.mutation.MaxUsesCleared() {
		_spec.ClearField(coupon.FieldMaxUses, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentUses(); ok {
		_spec.SetField(coupon.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentUses(); ok {
		_spec.AddField(coupon.FieldCurrentUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(coupon.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(coupon.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coupon.OwnerTable,
			Columns: []string{coupon.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coupon.OwnerTable,
			Columns: []string{coupon.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Coupon{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coupon.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
