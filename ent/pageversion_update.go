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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
)

// PageVersionUpdate is the builder for updating PageVersion entities.
type PageVersionUpdate struct {
	config
	hooks    []Hook
	mutation *PageVersionMutation
}

// Where appends a list predicates to the PageVersionUpdate builder.
func (_u *PageVersionUpdate) Where(ps ...predicate.PageVersion) *PageVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHTML sets the "html" field.
func (_u *PageVersionUpdate) SetHTML(v string) *PageVersionUpdate {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableHTML(v *string) *PageVersionUpdate {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// ClearHTML clears the value of the "html" field.
func (_u *PageVersionUpdate) ClearHTML() *PageVersionUpdate {
	_u.mutation.ClearHTML()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PageVersionUpdate) SetDescription(v string) *PageVersionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableDescription(v *string) *PageVersionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PageVersionUpdate) ClearDescription() *PageVersionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSource sets the "source" field.
func (_u *PageVersionUpdate) SetSource(v pageversion.Source) *PageVersionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableSource(v *pageversion.Source) *PageVersionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *PageVersionUpdate) SetIsPinned(v bool) *PageVersionUpdate {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableIsPinned(v *bool) *PageVersionUpdate {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *PageVersionUpdate) SetIsReleased(v bool) *PageVersionUpdate {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableIsReleased(v *bool) *PageVersionUpdate {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *PageVersionUpdate) SetPayloadPrunedAt(v time.Time) *PageVersionUpdate {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillablePayloadPrunedAt(v *time.Time) *PageVersionUpdate {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *PageVersionUpdate) ClearPayloadPrunedAt() *PageVersionUpdate {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *PageVersionUpdate) SetReleasedAt(v time.Time) *PageVersionUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableReleasedAt(v *time.Time) *PageVersionUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *PageVersionUpdate) ClearReleasedAt() *PageVersionUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *PageVersionUpdate) SetFallbackUsed(v bool) *PageVersionUpdate {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *PageVersionUpdate) SetNillableFallbackUsed(v *bool) *PageVersionUpdate {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the PageVersionMutation object of the builder.
func (_u *PageVersionUpdate) Mutation() *PageVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageVersionUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := pageversion.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PageVersion.source": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PageVersion.page"`)
	}
	return nil
}

func (_u *PageVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageversion.Table, pageversion.Columns, sqlgraph.NewFieldSpec(pageversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(pageversion.FieldHTML, field.TypeString, value)
	}
	if _u.mutation.HTMLCleared() {
		_spec.ClearField(pageversion.FieldHTML, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pageversion.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pageversion.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pageversion.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(pageversion.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(pageversion.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(pageversion.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(pageversion.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(pageversion.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(pageversion.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(pageversion.FieldFallbackUsed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageVersionUpdateOne is the builder for updating a single PageVersion entity.
type PageVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageVersionMutation
}

// SetHTML sets the "html" field.
func (_u *PageVersionUpdateOne) SetHTML(v string) *PageVersionUpdateOne {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableHTML(v *string) *PageVersionUpdateOne {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// ClearHTML clears the value of the "html" field.
func (_u *PageVersionUpdateOne) ClearHTML() *PageVersionUpdateOne {
	_u.mutation.ClearHTML()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PageVersionUpdateOne) SetDescription(v string) *PageVersionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableDescription(v *string) *PageVersionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PageVersionUpdateOne) ClearDescription() *PageVersionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSource sets the "source" field.
func (_u *PageVersionUpdateOne) SetSource(v pageversion.Source) *PageVersionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableSource(v *pageversion.Source) *PageVersionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *PageVersionUpdateOne) SetIsPinned(v bool) *PageVersionUpdateOne {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableIsPinned(v *bool) *PageVersionUpdateOne {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *PageVersionUpdateOne) SetIsReleased(v bool) *PageVersionUpdateOne {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableIsReleased(v *bool) *PageVersionUpdateOne {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *PageVersionUpdateOne) SetPayloadPrunedAt(v time.Time) *PageVersionUpdateOne {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillablePayloadPrunedAt(v *time.Time) *PageVersionUpdateOne {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *PageVersionUpdateOne) ClearPayloadPrunedAt() *PageVersionUpdateOne {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *PageVersionUpdateOne) SetReleasedAt(v time.Time) *PageVersionUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableReleasedAt(v *time.Time) *PageVersionUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *PageVersionUpdateOne) ClearReleasedAt() *PageVersionUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *PageVersionUpdateOne) SetFallbackUsed(v bool) *PageVersionUpdateOne {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *PageVersionUpdateOne) SetNillableFallbackUsed(v *bool) *PageVersionUpdateOne {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the PageVersionMutation object of the builder.
func (_u *PageVersionUpdateOne) Mutation() *PageVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PageVersionUpdate builder.
func (_u *PageVersionUpdateOne) Where(ps ...predicate.PageVersion) *PageVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageVersionUpdateOne) Select(field string, fields ...string) *PageVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PageVersion entity.
func (_u *PageVersionUpdateOne) Save(ctx context.Context) (*PageVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageVersionUpdateOne) SaveX(ctx context.Context) *PageVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := pageversion.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PageVersion.source": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PageVersion.page"`)
	}
	return nil
}

func (_u *PageVersionUpdateOne) sqlSave(ctx context.Context) (_node *PageVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageversion.Table, pageversion.Columns, sqlgraph.NewFieldSpec(pageversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageversion.FieldID)
		for _, f := range fields {
			if !pageversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageversion.FieldID {
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
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(pageversion.FieldHTML, field.TypeString, value)
	}
	if _u.mutation.HTMLCleared() {
		_spec.ClearField(pageversion.FieldHTML, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pageversion.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(pageversion.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pageversion.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(pageversion.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(pageversion.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(pageversion.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(pageversion.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(pageversion.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(pageversion.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(pageversion.FieldFallbackUsed, field.TypeBool, value)
	}
	_node = &PageVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
