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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
)

// ProjectSnapshotUpdate is the builder for updating ProjectSnapshot entities.
type ProjectSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectSnapshotMutation
}

// Where appends a list predicates to the ProjectSnapshotUpdate builder.
func (_u *ProjectSnapshotUpdate) Where(ps ...predicate.ProjectSnapshot) *ProjectSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *ProjectSnapshotUpdate) SetSource(v projectsnapshot.Source) *ProjectSnapshotUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableSource(v *projectsnapshot.Source) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ProjectSnapshotUpdate) SetLabel(v string) *ProjectSnapshotUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableLabel(v *string) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ProjectSnapshotUpdate) ClearLabel() *ProjectSnapshotUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetDocContent sets the "doc_content" field.
func (_u *ProjectSnapshotUpdate) SetDocContent(v string) *ProjectSnapshotUpdate {
	_u.mutation.SetDocContent(v)
	return _u
}

// SetNillableDocContent sets the "doc_content" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableDocContent(v *string) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetDocContent(*v)
	}
	return _u
}

// ClearDocContent clears the value of the "doc_content" field.
func (_u *ProjectSnapshotUpdate) ClearDocContent() *ProjectSnapshotUpdate {
	_u.mutation.ClearDocContent()
	return _u
}

// SetDocStructured sets the "doc_structured" field.
func (_u *ProjectSnapshotUpdate) SetDocStructured(v map[string]interface{}) *ProjectSnapshotUpdate {
	_u.mutation.SetDocStructured(v)
	return _u
}

// ClearDocStructured clears the value of the "doc_structured" field.
func (_u *ProjectSnapshotUpdate) ClearDocStructured() *ProjectSnapshotUpdate {
	_u.mutation.ClearDocStructured()
	return _u
}

// SetDocVersion sets the "doc_version" field.
func (_u *ProjectSnapshotUpdate) SetDocVersion(v int) *ProjectSnapshotUpdate {
	_u.mutation.ResetDocVersion()
	_u.mutation.SetDocVersion(v)
	return _u
}

// SetNillableDocVersion sets the "doc_version" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableDocVersion(v *int) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetDocVersion(*v)
	}
	return _u
}

// AddDocVersion adds value to the "doc_version" field.
func (_u *ProjectSnapshotUpdate) AddDocVersion(v int) *ProjectSnapshotUpdate {
	_u.mutation.AddDocVersion(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *ProjectSnapshotUpdate) SetPages(v []map[string]interface{}) *ProjectSnapshotUpdate {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *ProjectSnapshotUpdate) AppendPages(v []map[string]interface{}) *ProjectSnapshotUpdate {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ProjectSnapshotUpdate) ClearPages() *ProjectSnapshotUpdate {
	_u.mutation.ClearPages()
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *ProjectSnapshotUpdate) SetIsPinned(v bool) *ProjectSnapshotUpdate {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableIsPinned(v *bool) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *ProjectSnapshotUpdate) SetIsReleased(v bool) *ProjectSnapshotUpdate {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableIsReleased(v *bool) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *ProjectSnapshotUpdate) SetPayloadPrunedAt(v time.Time) *ProjectSnapshotUpdate {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillablePayloadPrunedAt(v *time.Time) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *ProjectSnapshotUpdate) ClearPayloadPrunedAt() *ProjectSnapshotUpdate {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ProjectSnapshotUpdate) SetReleasedAt(v time.Time) *ProjectSnapshotUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ProjectSnapshotUpdate) SetNillableReleasedAt(v *time.Time) *ProjectSnapshotUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ProjectSnapshotUpdate) ClearReleasedAt() *ProjectSnapshotUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ProjectSnapshotMutation object of the builder.
func (_u *ProjectSnapshotUpdate) Mutation() *ProjectSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := projectsnapshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProjectSnapshot.source": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectSnapshot.session"`)
	}
	return nil
}

func (_u *ProjectSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectsnapshot.Table, projectsnapshot.Columns, sqlgraph.NewFieldSpec(projectsnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(projectsnapshot.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(projectsnapshot.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(projectsnapshot.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.DocContent(); ok {
		_spec.SetField(projectsnapshot.FieldDocContent, field.TypeString, value)
	}
	if _u.mutation.DocContentCleared() {
		_spec.ClearField(projectsnapshot.FieldDocContent, field.TypeString)
	}
	if value, ok := _u.mutation.DocStructured(); ok {
		_spec.SetField(projectsnapshot.FieldDocStructured, field.TypeJSON, value)
	}
	if _u.mutation.DocStructuredCleared() {
		_spec.ClearField(projectsnapshot.FieldDocStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocVersion(); ok {
		_spec.SetField(projectsnapshot.FieldDocVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocVersion(); ok {
		_spec.AddField(projectsnapshot.FieldDocVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(projectsnapshot.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectsnapshot.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(projectsnapshot.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(projectsnapshot.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(projectsnapshot.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(projectsnapshot.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(projectsnapshot.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(projectsnapshot.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(projectsnapshot.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectSnapshotUpdateOne is the builder for updating a single ProjectSnapshot entity.
type ProjectSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectSnapshotMutation
}

// SetSource sets the "source" field.
func (_u *ProjectSnapshotUpdateOne) SetSource(v projectsnapshot.Source) *ProjectSnapshotUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableSource(v *projectsnapshot.Source) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ProjectSnapshotUpdateOne) SetLabel(v string) *ProjectSnapshotUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableLabel(v *string) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ProjectSnapshotUpdateOne) ClearLabel() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetDocContent sets the "doc_content" field.
func (_u *ProjectSnapshotUpdateOne) SetDocContent(v string) *ProjectSnapshotUpdateOne {
	_u.mutation.SetDocContent(v)
	return _u
}

// SetNillableDocContent sets the "doc_content" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableDocContent(v *string) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetDocContent(*v)
	}
	return _u
}

// ClearDocContent clears the value of the "doc_content" field.
func (_u *ProjectSnapshotUpdateOne) ClearDocContent() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearDocContent()
	return _u
}

// SetDocStructured sets the "doc_structured" field.
func (_u *ProjectSnapshotUpdateOne) SetDocStructured(v map[string]interface{}) *ProjectSnapshotUpdateOne {
	_u.mutation.SetDocStructured(v)
	return _u
}

// ClearDocStructured clears the value of the "doc_structured" field.
func (_u *ProjectSnapshotUpdateOne) ClearDocStructured() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearDocStructured()
	return _u
}

// SetDocVersion sets the "doc_version" field.
func (_u *ProjectSnapshotUpdateOne) SetDocVersion(v int) *ProjectSnapshotUpdateOne {
	_u.mutation.ResetDocVersion()
	_u.mutation.SetDocVersion(v)
	return _u
}

// SetNillableDocVersion sets the "doc_version" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableDocVersion(v *int) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetDocVersion(*v)
	}
	return _u
}

// AddDocVersion adds value to the "doc_version" field.
func (_u *ProjectSnapshotUpdateOne) AddDocVersion(v int) *ProjectSnapshotUpdateOne {
	_u.mutation.AddDocVersion(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *ProjectSnapshotUpdateOne) SetPages(v []map[string]interface{}) *ProjectSnapshotUpdateOne {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *ProjectSnapshotUpdateOne) AppendPages(v []map[string]interface{}) *ProjectSnapshotUpdateOne {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ProjectSnapshotUpdateOne) ClearPages() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// SetIsPinned sets the "is_pinned" field.
func (_u *ProjectSnapshotUpdateOne) SetIsPinned(v bool) *ProjectSnapshotUpdateOne {
	_u.mutation.SetIsPinned(v)
	return _u
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableIsPinned(v *bool) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetIsPinned(*v)
	}
	return _u
}

// SetIsReleased sets the "is_released" field.
func (_u *ProjectSnapshotUpdateOne) SetIsReleased(v bool) *ProjectSnapshotUpdateOne {
	_u.mutation.SetIsReleased(v)
	return _u
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableIsReleased(v *bool) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetIsReleased(*v)
	}
	return _u
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_u *ProjectSnapshotUpdateOne) SetPayloadPrunedAt(v time.Time) *ProjectSnapshotUpdateOne {
	_u.mutation.SetPayloadPrunedAt(v)
	return _u
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillablePayloadPrunedAt(v *time.Time) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetPayloadPrunedAt(*v)
	}
	return _u
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (_u *ProjectSnapshotUpdateOne) ClearPayloadPrunedAt() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearPayloadPrunedAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ProjectSnapshotUpdateOne) SetReleasedAt(v time.Time) *ProjectSnapshotUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ProjectSnapshotUpdateOne) SetNillableReleasedAt(v *time.Time) *ProjectSnapshotUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ProjectSnapshotUpdateOne) ClearReleasedAt() *ProjectSnapshotUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ProjectSnapshotMutation object of the builder.
func (_u *ProjectSnapshotUpdateOne) Mutation() *ProjectSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectSnapshotUpdate builder.
func (_u *ProjectSnapshotUpdateOne) Where(ps ...predicate.ProjectSnapshot) *ProjectSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectSnapshotUpdateOne) Select(field string, fields ...string) *ProjectSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectSnapshot entity.
func (_u *ProjectSnapshotUpdateOne) Save(ctx context.Context) (*ProjectSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectSnapshotUpdateOne) SaveX(ctx context.Context) *ProjectSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := projectsnapshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProjectSnapshot.source": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectSnapshot.session"`)
	}
	return nil
}

func (_u *ProjectSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProjectSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectsnapshot.Table, projectsnapshot.Columns, sqlgraph.NewFieldSpec(projectsnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectsnapshot.FieldID)
		for _, f := range fields {
			if !projectsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectsnapshot.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(projectsnapshot.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(projectsnapshot.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(projectsnapshot.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.DocContent(); ok {
		_spec.SetField(projectsnapshot.FieldDocContent, field.TypeString, value)
	}
	if _u.mutation.DocContentCleared() {
		_spec.ClearField(projectsnapshot.FieldDocContent, field.TypeString)
	}
	if value, ok := _u.mutation.DocStructured(); ok {
		_spec.SetField(projectsnapshot.FieldDocStructured, field.TypeJSON, value)
	}
	if _u.mutation.DocStructuredCleared() {
		_spec.ClearField(projectsnapshot.FieldDocStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocVersion(); ok {
		_spec.SetField(projectsnapshot.FieldDocVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocVersion(); ok {
		_spec.AddField(projectsnapshot.FieldDocVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(projectsnapshot.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectsnapshot.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(projectsnapshot.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPinned(); ok {
		_spec.SetField(projectsnapshot.FieldIsPinned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsReleased(); ok {
		_spec.SetField(projectsnapshot.FieldIsReleased, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(projectsnapshot.FieldPayloadPrunedAt, field.TypeTime, value)
	}
	if _u.mutation.PayloadPrunedAtCleared() {
		_spec.ClearField(projectsnapshot.FieldPayloadPrunedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(projectsnapshot.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(projectsnapshot.FieldReleasedAt, field.TypeTime)
	}
	_node = &ProjectSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
