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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
)

// ProductDocUpdate is the builder for updating ProductDoc entities.
type ProductDocUpdate struct {
	config
	hooks    []Hook
	mutation *ProductDocMutation
}

// Where appends a list predicates to the ProductDocUpdate builder.
func (_u *ProductDocUpdate) Where(ps ...predicate.ProductDoc) *ProductDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *ProductDocUpdate) SetContent(v string) *ProductDocUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProductDocUpdate) SetNillableContent(v *string) *ProductDocUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ProductDocUpdate) SetStructured(v map[string]interface{}) *ProductDocUpdate {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *ProductDocUpdate) ClearStructured() *ProductDocUpdate {
	_u.mutation.ClearStructured()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProductDocUpdate) SetVersion(v int) *ProductDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProductDocUpdate) SetNillableVersion(v *int) *ProductDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProductDocUpdate) AddVersion(v int) *ProductDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProductDocUpdate) SetStatus(v productdoc.Status) *ProductDocUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductDocUpdate) SetNillableStatus(v *productdoc.Status) *ProductDocUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPendingRegenerationPages sets the "pending_regeneration_pages" field.
func (_u *ProductDocUpdate) SetPendingRegenerationPages(v []string) *ProductDocUpdate {
	_u.mutation.SetPendingRegenerationPages(v)
	return _u
}

// AppendPendingRegenerationPages appends value to the "pending_regeneration_pages" field.
func (_u *ProductDocUpdate) AppendPendingRegenerationPages(v []string) *ProductDocUpdate {
	_u.mutation.AppendPendingRegenerationPages(v)
	return _u
}

// ClearPendingRegenerationPages clears the value of the "pending_regeneration_pages" field.
func (_u *ProductDocUpdate) ClearPendingRegenerationPages() *ProductDocUpdate {
	_u.mutation.ClearPendingRegenerationPages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductDocUpdate) SetUpdatedAt(v time.Time) *ProductDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "histories" edge to the ProductDocHistory entity by IDs.
func (_u *ProductDocUpdate) AddHistoryIDs(ids ...string) *ProductDocUpdate {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the ProductDocHistory entity.
func (_u *ProductDocUpdate) AddHistories(v ...*ProductDocHistory) *ProductDocUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the ProductDocMutation object of the builder.
func (_u *ProductDocUpdate) Mutation() *ProductDocMutation {
	return _u.mutation
}

// ClearHistories clears all "histories" edges to the ProductDocHistory entity.
func (_u *ProductDocUpdate) ClearHistories() *ProductDocUpdate {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to ProductDocHistory entities by IDs.
func (_u *ProductDocUpdate) RemoveHistoryIDs(ids ...string) *ProductDocUpdate {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to ProductDocHistory entities.
func (_u *ProductDocUpdate) RemoveHistories(v ...*ProductDocHistory) *ProductDocUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := productdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductDocUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := productdoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductDoc.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductDoc.session"`)
	}
	return nil
}

func (_u *ProductDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productdoc.Table, productdoc.Columns, sqlgraph.NewFieldSpec(productdoc.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(productdoc.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(productdoc.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(productdoc.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(productdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(productdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productdoc.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PendingRegenerationPages(); ok {
		_spec.SetField(productdoc.FieldPendingRegenerationPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingRegenerationPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productdoc.FieldPendingRegenerationPages, value)
		})
	}
	if _u.mutation.PendingRegenerationPagesCleared() {
		_spec.ClearField(productdoc.FieldPendingRegenerationPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(productdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductDocUpdateOne is the builder for updating a single ProductDoc entity.
type ProductDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductDocMutation
}

// SetContent sets the "content" field.
func (_u *ProductDocUpdateOne) SetContent(v string) *ProductDocUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProductDocUpdateOne) SetNillableContent(v *string) *ProductDocUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetStructured sets the "structured" field.
func (_u *ProductDocUpdateOne) SetStructured(v map[string]interface{}) *ProductDocUpdateOne {
	_u.mutation.SetStructured(v)
	return _u
}

// ClearStructured clears the value of the "structured" field.
func (_u *ProductDocUpdateOne) ClearStructured() *ProductDocUpdateOne {
	_u.mutation.ClearStructured()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProductDocUpdateOne) SetVersion(v int) *ProductDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProductDocUpdateOne) SetNillableVersion(v *int) *ProductDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProductDocUpdateOne) AddVersion(v int) *ProductDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProductDocUpdateOne) SetStatus(v productdoc.Status) *ProductDocUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductDocUpdateOne) SetNillableStatus(v *productdoc.Status) *ProductDocUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPendingRegenerationPages sets the "pending_regeneration_pages" field.
func (_u *ProductDocUpdateOne) SetPendingRegenerationPages(v []string) *ProductDocUpdateOne {
	_u.mutation.SetPendingRegenerationPages(v)
	return _u
}

// AppendPendingRegenerationPages appends value to the "pending_regeneration_pages" field.
func (_u *ProductDocUpdateOne) AppendPendingRegenerationPages(v []string) *ProductDocUpdateOne {
	_u.mutation.AppendPendingRegenerationPages(v)
	return _u
}

// ClearPendingRegenerationPages clears the value of the "pending_regeneration_pages" field.
func (_u *ProductDocUpdateOne) ClearPendingRegenerationPages() *ProductDocUpdateOne {
	_u.mutation.ClearPendingRegenerationPages()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductDocUpdateOne) SetUpdatedAt(v time.Time) *ProductDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "histories" edge to the ProductDocHistory entity by IDs.
func (_u *ProductDocUpdateOne) AddHistoryIDs(ids ...string) *ProductDocUpdateOne {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the ProductDocHistory entity.
func (_u *ProductDocUpdateOne) AddHistories(v ...*ProductDocHistory) *ProductDocUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the ProductDocMutation object of the builder.
func (_u *ProductDocUpdateOne) Mutation() *ProductDocMutation {
	return _u.mutation
}

// ClearHistories clears all "histories" edges to the ProductDocHistory entity.
func (_u *ProductDocUpdateOne) ClearHistories() *ProductDocUpdateOne {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to ProductDocHistory entities by IDs.
func (_u *ProductDocUpdateOne) RemoveHistoryIDs(ids ...string) *ProductDocUpdateOne {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to ProductDocHistory entities.
func (_u *ProductDocUpdateOne) RemoveHistories(v ...*ProductDocHistory) *ProductDocUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the ProductDocUpdate builder.
func (_u *ProductDocUpdateOne) Where(ps ...predicate.ProductDoc) *ProductDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductDocUpdateOne) Select(field string, fields ...string) *ProductDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductDoc entity.
func (_u *ProductDocUpdateOne) Save(ctx context.Context) (*ProductDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductDocUpdateOne) SaveX(ctx context.Context) *ProductDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := productdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductDocUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := productdoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductDoc.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductDoc.session"`)
	}
	return nil
}

func (_u *ProductDocUpdateOne) sqlSave(ctx context.Context) (_node *ProductDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productdoc.Table, productdoc.Columns, sqlgraph.NewFieldSpec(productdoc.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productdoc.FieldID)
		for _, f := range fields {
			if !productdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productdoc.FieldID {
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
		_spec.SetField(productdoc.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Structured(); ok {
		_spec.SetField(productdoc.FieldStructured, field.TypeJSON, value)
	}
	if _u.mutation.StructuredCleared() {
		_spec.ClearField(productdoc.FieldStructured, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(productdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(productdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productdoc.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PendingRegenerationPages(); ok {
		_spec.SetField(productdoc.FieldPendingRegenerationPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingRegenerationPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productdoc.FieldPendingRegenerationPages, value)
		})
	}
	if _u.mutation.PendingRegenerationPagesCleared() {
		_spec.ClearField(productdoc.FieldPendingRegenerationPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(productdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   productdoc.HistoriesTable,
			Columns: []string{productdoc.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProductDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
