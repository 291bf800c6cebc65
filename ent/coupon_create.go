// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vivasaude/vivasaude/ent/coupon"
	"github.com/vivasaude/vivasaude/ent/user"
)

// CouponCreate is the builder for creating a Coupon entity.
type CouponCreate struct {
	config
	mutation *CouponMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *CouponCreate) SetCode(v string) *CouponCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CouponCreate) SetDescription(v string) *CouponCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CouponCreate) SetNillableDescription(v *string) *CouponCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDiscountType sets the "discount_type" field.
func (_c *CouponCreate) SetDiscountType(v coupon.DiscountType) *CouponCreate {
	_c.mutation.SetDiscountType(v)
	return _c
}

// SetDiscountValue sets the "discount_value" field.
func (_c *CouponCreate) SetDiscountValue(v float64) *CouponCreate {
	_c.mutation.SetDiscountValue(v)
	return _c
}

// SetAudience sets the "audience" field.
func (_c *CouponCreate) SetAudience(v coupon.Audience) *CouponCreate {
	_c.mutation.SetAudience(v)
	return _c
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_c *CouponCreate) SetNillableAudience(v *coupon.Audience) *CouponCreate {
	if v != nil {
		_c.SetAudience(*v)
	}
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *CouponCreate) SetValidFrom(v time.Time) *CouponCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *CouponCreate) SetNillableValidFrom(v *time.Time) *CouponCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *CouponCreate) SetValidUntil(v time.Time) *CouponCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *CouponCreate) SetNillableValidUntil(v *time.Time) *CouponCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *CouponCreate) SetMaxUses(v int) *CouponCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *CouponCreate) SetNillableMaxUses(v *int) *CouponCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetCurrentUses sets the "current_uses" field.
func (_c *CouponCreate) SetCurrentUses(v int) *CouponCreate {
	_c.mutation.SetCurrentUses(v)
	return _c
}

// SetNillableCurrentUses sets the "current_uses" field if the given value is not nil.
func (_c *CouponCreate) SetNillableCurrentUses(v *int) *CouponCreate {
	if v != nil {
		_c.SetCurrentUses(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *CouponCreate) SetActive(v bool) *CouponCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *CouponCreate) SetNillableActive(v *bool) *CouponCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CouponCreate) SetCreatedAt(v time.Time) *CouponCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CouponCreate) SetNillableCreatedAt(v *time.Time) *CouponCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CouponCreate) SetUpdatedAt(v time.Time) *CouponCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CouponCreate) SetNillableUpdatedAt(v *time.Time) *CouponCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *CouponCreate) SetOwnerID(id int) *CouponCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetNillableOwnerID sets the "owner" edge to the User entity by ID if the given value is not nil.
func (_c *CouponCreate) SetNillableOwnerID(id *int) *CouponCreate {
	if id != nil {
		_c = _c.SetOwnerID(*id)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *CouponCreate) SetOwner(v *User) *CouponCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the CouponMutation object of the builder.
func (_c *CouponCreate) Mutation() *CouponMutation {
	return _c.mutation
}

// Save creates the Coupon in the database.
func (_c *CouponCreate) Save(ctx context.Context) (*Coupon, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CouponCreate) SaveX(ctx context.Context) *Coupon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouponCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouponCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CouponCreate) defaults() {
	if _, ok := _c.mutation.Audience(); !ok {
		v := coupon.DefaultAudience
		_c.mutation.SetAudience(v)
	}
	if _, ok := _c.mutation.ValidFrom(); !ok {
		v := coupon.DefaultValidFrom()
		_c.mutation.SetValidFrom(v)
	}
	if _, ok := _c.mutation.CurrentUses(); !ok {
		v := coupon.DefaultCurrentUses
		_c.mutation.SetCurrentUses(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := coupon.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coupon.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := coupon.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CouponCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Coupon.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := coupon.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Coupon.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountType(); !ok {
		return &ValidationError{Name: "discount_type", err: errors.New(`ent: missing required field "Coupon.discount_type"`)}
	}
	if v, ok := _c.mutation.DiscountType(); ok {
		if err := coupon.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`ent: validator failed for field "Coupon.discount_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountValue(); !ok {
		return &ValidationError{Name: "discount_value", err: errors.New(`ent: missing required field "Coupon.discount_value"`)}
	}
	if _, ok := _c.mutation.Audience(); !ok {
		return &ValidationError{Name: "audience", err: errors.New(`ent: missing required field "Coupon.audience"`)}
	}
	if v, ok := _c.mutation.Audience(); ok {
		if err := coupon.AudienceValidator(v); err != nil {
			return &ValidationError{Name: "audience", err: fmt.Errorf(`ent: validator failed for field "Coupon.audience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidFrom(); !ok {
		return &ValidationError{Name: "valid_from", err: errors.New(`ent: missing required field "Coupon.valid_from"`)}
	}
	if v, ok := _c.mutation.MaxUses(); ok {
		if err := coupon.MaxUsesValidator(v); err != nil {
			return &ValidationError{Name: "max_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.max_uses": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentUses(); !ok {
		return &ValidationError{Name: "current_uses", err: errors.New(`ent: missing required field "Coupon.current_uses"`)}
	}
	if v, ok := _c.mutation.CurrentUses(); ok {
		if err := coupon.CurrentUsesValidator(v); err != nil {
			return &ValidationError{Name: "current_uses", err: fmt.Errorf(`ent: validator failed for field "Coupon.current_uses": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Coupon.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Coupon.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Coupon.updated_at"`)}
	}
	return nil
}

func (_c *CouponCreate) sqlSave(ctx context.Context) (*Coupon, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CouponCreate) createSpec() (*Coupon, *sqlgraph.CreateSpec) {
	var (
		_node = &Coupon{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coupon.Table, sqlgraph.NewFieldSpec(coupon.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(coupon.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(coupon.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DiscountType(); ok {
		_spec.SetField(coupon.FieldDiscountType, field.TypeEnum, value)
		_node.DiscountType = value
	}
	if value, ok := _c.mutation.DiscountValue(); ok {
		_spec.SetField(coupon.FieldDiscountValue, field.TypeFloat64, value)
		_node.DiscountValue = value
	}
	if value, ok := _c.mutation.Audience(); ok {
		_spec.SetField(coupon.FieldAudience, field.TypeEnum, value)
		_node.Audience = value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(coupon.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(coupon.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(coupon.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = &value
	}
	if value, ok := _c.mutation.CurrentUses(); ok {
		_spec.SetField(coupon.FieldCurrentUses, field.TypeInt, value)
		_node.CurrentUses = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(coupon.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coupon.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(coupon.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.user_coupons = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CouponCreateBulk is the builder for creating many Coupon entities in bulk.
type CouponCreateBulk struct {
	config
	err      error
	builders []*CouponCreate
}

// Save creates the Coupon entities in the database.
func (_c *CouponCreateBulk) Save(ctx context.Context) ([]*Coupon, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Coupon, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CouponMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CouponCreateBulk) SaveX(ctx context.Context) []*Coupon {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouponCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouponCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
