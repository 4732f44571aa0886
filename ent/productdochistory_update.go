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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
)

// ProductDocHistoryUpdate is the builder for updating ProductDocHistory entities.
type ProductDocHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ProductDocHistoryMutation
}

// Where appends a list predicates to the ProductDocHistoryUpdate builder.
func (_u *ProductDocHistoryUpdate) Where(ps ...predicate.ProductDocHistory) *ProductDocHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *ProductDocHistoryUpdate) SetContent(v string) *ProductDocHistoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableContent(v *string) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ProductDocHistoryUpdate) ClearContent() *ProductDocHistoryUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ProductDocHistoryUpdate) SetStructured(v map[string]interface{}) *ProductDocHistoryUpdate {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *ProductDocHistoryUpdate) ClearStructured() *ProductDocHistoryUpdate {
	_u.mutation.ClearStructured()
	return _u
}

// SetSource sets the "source" field.
func (_u *ProductDocHistoryUpdate) SetSource(v productdochistory.Source) *ProductDocHistoryUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableSource(v *productdochistory.Source) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetChangeSummary sets the "change_summary" field.
func (_u *ProductDocHistoryUpdate) SetChangeSummary(v string) *ProductDocHistoryUpdate {
	_u.mutation.SetChangeSummary(v)
	return _u
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableChangeSummary(v *string) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetChangeSummary(*v)
	}
	return _u
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (_u *ProductDocHistoryUpdate) ClearChangeSummary() *ProductDocHistoryUpdate {
	_u.mutation.ClearChangeSummary()
	return _u
}

// SetAffectedPages sets the "affected_pages" field.
func (_u *ProductDocHistoryUpdate) SetAffectedPages(v []string) *ProductDocHistoryUpdate {
	_u.mutation.SetAffectedPages(v)
	return _u
}

// AppendAffectedPages appends value to the "affected_pages" field.
func (_u *ProductDocHistoryUpdate) AppendAffectedPages(v []string) *ProductDocHistoryUpdate {
	_u.mutation.AppendAffectedPages(v)
	return _u
}

// ClearAffectedPages clears the value of the "affected_pages" field.
func (_u *ProductDocHistoryUpdate) ClearAffectedPages() *ProductDocHistoryUpdate {
	_u.mutation.ClearAffectedPages()
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *ProductDocHistoryUpdate) SetIsPinned(v bool) *ProductDocHistoryUpdate {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableIsPinned(v *bool) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *ProductDocHistoryUpdate) SetIsReleased(v bool) *ProductDocHistoryUpdate {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableIsReleased(v *bool) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *ProductDocHistoryUpdate) SetPayloadPrunedAt(v time.Time) *ProductDocHistoryUpdate {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillablePayloadPrunedAt(v *time.Time) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *ProductDocHistoryUpdate) ClearPayloadPrunedAt() *ProductDocHistoryUpdate {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ProductDocHistoryUpdate) SetReleasedAt(v time.Time) *ProductDocHistoryUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ProductDocHistoryUpdate) SetNillableReleasedAt(v *time.Time) *ProductDocHistoryUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ProductDocHistoryUpdate) ClearReleasedAt() *ProductDocHistoryUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ProductDocHistoryMutation object of the builder.
func (_u *ProductDocHistoryUpdate) Mutation() *ProductDocHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductDocHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductDocHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductDocHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductDocHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductDocHistoryUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := productdochistory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProductDocHistory.source": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductDocHistory.doc"`)
	}
	return nil
}

func (_u *ProductDocHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productdochistory.Table, productdochistory.Columns, sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(productdochistory.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(productdochistory.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(productdochistory.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(productdochistory.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(productdochistory.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangeSummary(); ok {
		_spec.SetField(productdochistory.FieldChangeSummary, field.TypeString, value)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(productdochistory.FieldChangeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedPages(); ok {
		_spec.SetField(productdochistory.FieldAffectedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productdochistory.FieldAffectedPages, value)
		})
	}
	if _u.mutation.AffectedPagesCleared() {
		_spec.ClearField(productdochistory.FieldAffectedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(productdochistory.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(productdochistory.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(productdochistory.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(productdochistory.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(productdochistory.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(productdochistory.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productdochistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductDocHistoryUpdateOne is the builder for updating a single ProductDocHistory entity.
type ProductDocHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductDocHistoryMutation
}

// SetContent sets the "content" field.
func (_u *ProductDocHistoryUpdateOne) SetContent(v string) *ProductDocHistoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableContent(v *string) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ProductDocHistoryUpdateOne) ClearContent() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ProductDocHistoryUpdateOne) SetStructured(v map[string]interface{}) *ProductDocHistoryUpdateOne {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *ProductDocHistoryUpdateOne) ClearStructured() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearStructured()
	return _u
}

// SetSource sets the "source" field.
func (_u *ProductDocHistoryUpdateOne) SetSource(v productdochistory.Source) *ProductDocHistoryUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableSource(v *productdochistory.Source) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetChangeSummary sets the "change_summary" field.
func (_u *ProductDocHistoryUpdateOne) SetChangeSummary(v string) *ProductDocHistoryUpdateOne {
	_u.mutation.SetChangeSummary(v)
	return _u
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableChangeSummary(v *string) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetChangeSummary(*v)
	}
	return _u
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (_u *ProductDocHistoryUpdateOne) ClearChangeSummary() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearChangeSummary()
	return _u
}

// SetAffectedPages sets the "affected_pages" field.
func (_u *ProductDocHistoryUpdateOne) SetAffectedPages(v []string) *ProductDocHistoryUpdateOne {
	_u.mutation.SetAffectedPages(v)
	return _u
}

// AppendAffectedPages appends value to the "affected_pages" field.
func (_u *ProductDocHistoryUpdateOne) AppendAffectedPages(v []string) *ProductDocHistoryUpdateOne {
	_u.mutation.AppendAffectedPages(v)
	return _u
}

// ClearAffectedPages clears the value of the "affected_pages" field.
func (_u *ProductDocHistoryUpdateOne) ClearAffectedPages() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearAffectedPages()
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *ProductDocHistoryUpdateOne) SetIsPinned(v bool) *ProductDocHistoryUpdateOne {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableIsPinned(v *bool) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *ProductDocHistoryUpdateOne) SetIsReleased(v bool) *ProductDocHistoryUpdateOne {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableIsReleased(v *bool) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *ProductDocHistoryUpdateOne) SetPayloadPrunedAt(v time.Time) *ProductDocHistoryUpdateOne {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillablePayloadPrunedAt(v *time.Time) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *ProductDocHistoryUpdateOne) ClearPayloadPrunedAt() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ProductDocHistoryUpdateOne) SetReleasedAt(v time.Time) *ProductDocHistoryUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ProductDocHistoryUpdateOne) SetNillableReleasedAt(v *time.Time) *ProductDocHistoryUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ProductDocHistoryUpdateOne) ClearReleasedAt() *ProductDocHistoryUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ProductDocHistoryMutation object of the builder.
func (_u *ProductDocHistoryUpdateOne) Mutation() *ProductDocHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductDocHistoryUpdate builder.
func (_u *ProductDocHistoryUpdateOne) Where(ps ...predicate.ProductDocHistory) *ProductDocHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductDocHistoryUpdateOne) Select(field string, fields ...string) *ProductDocHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductDocHistory entity.
func (_u *ProductDocHistoryUpdateOne) Save(ctx context.Context) (*ProductDocHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductDocHistoryUpdateOne) SaveX(ctx context.Context) *ProductDocHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductDocHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductDocHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductDocHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := productdochistory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProductDocHistory.source": %w`, err)}
		}
	}
	if _u.mutation.DocCleared() && len(_u.mutation.DocIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductDocHistory.doc"`)
	}
	return nil
}

func (_u *ProductDocHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ProductDocHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productdochistory.Table, productdochistory.Columns, sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductDocHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productdochistory.FieldID)
		for _, f := range fields {
			if !productdochistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productdochistory.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(productdochistory.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(productdochistory.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(productdochistory.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(productdochistory.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(productdochistory.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangeSummary(); ok {
		_spec.SetField(productdochistory.FieldChangeSummary, field.TypeString, value)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(productdochistory.FieldChangeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedPages(); ok {
		_spec.SetField(productdochistory.FieldAffectedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productdochistory.FieldAffectedPages, value)
		})
	}
	if _u.mutation.AffectedPagesCleared() {
		_spec.ClearField(productdochistory.FieldAffectedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(productdochistory.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(productdochistory.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(productdochistory.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(productdochistory.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(productdochistory.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(productdochistory.FieldReleasedAt, field.TypeTime)
	}
	_node = &ProductDocHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productdochistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
