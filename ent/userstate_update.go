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
	"github.com/careercompass/compass/ent/predicate"
	"github.com/careercompass/compass/ent/userstate"
)

// UserStateUpdate is the builder for updating UserState entities.
type UserStateUpdate struct {
	config
	hooks    []Hook
	mutation *UserStateMutation
}

// Where appends a list predicates to the UserStateUpdate builder.
func (_u *UserStateUpdate) Where(ps ...predicate.UserState) *UserStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *UserStateUpdate) SetData(v map[string]interface{}) *UserStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserStateUpdate) SetUpdatedAt(v time.Time) *UserStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserStateMutation object of the builder.
func (_u *UserStateUpdate) Mutation() *UserStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstate.Table, userstate.Columns, sqlgraph.NewFieldSpec(userstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(userstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserStateUpdateOne is the builder for updating a single UserState entity.
type UserStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserStateMutation
}

// SetData sets the "data" field.
func (_u *UserStateUpdateOne) SetData(v map[string]interface{}) *UserStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserStateUpdateOne) SetUpdatedAt(v time.Time) *UserStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserStateMutation object of the builder.
func (_u *UserStateUpdateOne) Mutation() *UserStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserStateUpdate builder.
func (_u *UserStateUpdateOne) Where(ps ...predicate.UserState) *UserStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserStateUpdateOne) Select(field string, fields ...string) *UserStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserState entity.
func (_u *UserStateUpdateOne) Save(ctx context.Context) (*UserState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStateUpdateOne) SaveX(ctx context.Context) *UserState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserStateUpdateOne) sqlSave(ctx context.Context) (_node *UserState, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstate.Table, userstate.Columns, sqlgraph.NewFieldSpec(userstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userstate.FieldID)
		for _, f := range fields {
			if !userstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userstate.FieldID {
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
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(userstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
