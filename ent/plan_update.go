// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vivasaude/vivasaude/ent/plan"
	"github.com/vivasaude/vivasaude/ent/predicate"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *PlanUpdate) SetKey(v string) *PlanUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableKey(v *string) *PlanUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdate) SetName(v string) *PlanUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanUpdate) SetDescription(v string) *PlanUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDescription(v *string) *PlanUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PlanUpdate) ClearDescription() *PlanUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMonthlyPrice sets the "monthly_price" field.
func (_u *PlanUpdate) SetMonthlyPrice(v float64) *PlanUpdate {
	_u.mutation.ResetMonthlyPrice()
	_u.mutation.SetMonthlyPrice(v)
	return _u
}

// SetNillableMonthlyPrice sets the "monthly_price" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableMonthlyPrice(v *float64) *PlanUpdate {
	if v != nil {
		_u.SetMonthlyPrice(*v)
	}
	return _u
}

// AddMonthlyPrice adds value to the "monthly_price" field.
func (_u *PlanUpdate) AddMonthlyPrice(v float64) *PlanUpdate {
	_u.mutation.AddMonthlyPrice(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *PlanUpdate) SetFeatures(v []string) *PlanUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *PlanUpdate) AppendFeatures(v []string) *PlanUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *PlanUpdate) ClearFeatures() *PlanUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetFree sets the "free" field.
func (_u *PlanUpdate) SetFree(v bool) *PlanUpdate {
	_u.mutation.SetFree(v)
	return _u
}

// SetNillableFree sets the "free" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableFree(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetFree(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PlanUpdate) SetActive(v bool) *PlanUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableActive(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdate) SetUpdatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := plan.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Plan.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyPrice(); ok {
		if err := plan.MonthlyPriceValidator(v); err != nil {
			return &ValidationError{Name: "monthly_price", err: fmt.Errorf(`ent: validator failed for field "Plan.monthly_price": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(plan.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(plan.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MonthlyPrice(); ok {
		_spec.SetField(plan.FieldMonthlyPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyPrice(); ok {
		_spec.AddField(plan.FieldMonthlyPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(plan.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(plan.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Free(); ok {
		_spec.SetField(plan.FieldFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(plan.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetKey sets the "key" field.
func (_u *PlanUpdateOne) SetKey(v string) *PlanUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableKey(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdateOne) SetName(v string) *PlanUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PlanUpdateOne) SetDescription(v string) *PlanUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDescription(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PlanUpdateOne) ClearDescription() *PlanUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMonthlyPrice sets the "monthly_price" field.
func (_u *PlanUpdateOne) SetMonthlyPrice(v float64) *PlanUpdateOne {
	_u.mutation.ResetMonthlyPrice()
	_u.mutation.SetMonthlyPrice(v)
	return _u
}

// SetNillableMonthlyPrice sets the "monthly_price" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableMonthlyPrice(v *float64) *PlanUpdateOne {
	if v != nil {
		_u.SetMonthlyPrice(*v)
	}
	return _u
}

// AddMonthlyPrice adds value to the "monthly_price" field.
func (_u *PlanUpdateOne) AddMonthlyPrice(v float64) *PlanUpdateOne {
	_u.mutation.AddMonthlyPrice(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *PlanUpdateOne) SetFeatures(v []string) *PlanUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *PlanUpdateOne) AppendFeatures(v []string) *PlanUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *PlanUpdateOne) ClearFeatures() *PlanUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetFree sets the "free" field.
func (_u *PlanUpdateOne) SetFree(v bool) *PlanUpdateOne {
	_u.mutation.SetFree(v)
	return _u
}

// SetNillableFree sets the "free" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableFree(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetFree(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PlanUpdateOne) SetActive(v bool) *PlanUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableActive(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanUpdateOne) SetUpdatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := plan.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Plan.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyPrice(); ok {
		if err := plan.MonthlyPriceValidator(v); err != nil {
			return &ValidationError{Name: "monthly_price", err: fmt.Errorf(`ent: validator failed for field "Plan.monthly_price": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(plan.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(plan.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MonthlyPrice(); ok {
		_spec.SetField(plan.FieldMonthlyPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyPrice(); ok {
		_spec.AddField(plan.FieldMonthlyPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(plan.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(plan.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Free(); ok {
		_spec.SetField(plan.FieldFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(plan.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
