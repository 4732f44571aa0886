// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
)

// ProductDocHistoryCreate is the builder for creating a ProductDocHistory entity.
type ProductDocHistoryCreate struct {
	config
	mutation *ProductDocHistoryMutation
	hooks    []Hook
}

// SetDocID sets the "doc_id" field.
func (_c *ProductDocHistoryCreate) SetDocID(v string) *ProductDocHistoryCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProductDocHistoryCreate) SetVersion(v int) *ProductDocHistoryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ProductDocHistoryCreate) SetContent(v string) *ProductDocHistoryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableContent(v *string) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetStructured sets the "structured" field.
func (_c *ProductDocHistoryCreate) SetStructured(v map[string]interface{}) *ProductDocHistoryCreate {
	_c.mutation.SetStructured(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ProductDocHistoryCreate) SetSource(v productdochistory.Source) *ProductDocHistoryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableSource(v *productdochistory.Source) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetChangeSummary sets the "change_summary" field.
func (_c *ProductDocHistoryCreate) SetChangeSummary(v string) *ProductDocHistoryCreate {
	_c.mutation.SetChangeSummary(v)
	return _c
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableChangeSummary(v *string) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetChangeSummary(*v)
	}
	return _c
}

// SetAffectedPages sets the "affected_pages" field.
func (_c *ProductDocHistoryCreate) SetAffectedPages(v []string) *ProductDocHistoryCreate {
	_c.mutation.SetAffectedPages(v)
	return _c
}

// SetIsPinned sets the "is_pinned" field.
func (_c *ProductDocHistoryCreate) SetIsPinned(v bool) *ProductDocHistoryCreate {
	_c.mutation.SetIsPinned(v)
	return _c
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableIsPinned(v *bool) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetIsPinned(*v)
	}
	return _c
}

// SetIsReleased sets the "is_released" field.
func (_c *ProductDocHistoryCreate) SetIsReleased(v bool) *ProductDocHistoryCreate {
	_c.mutation.SetIsReleased(v)
	return _c
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableIsReleased(v *bool) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetIsReleased(*v)
	}
	return _c
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_c *ProductDocHistoryCreate) SetPayloadPrunedAt(v time.Time) *ProductDocHistoryCreate {
	_c.mutation.SetPayloadPrunedAt(v)
	return _c
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillablePayloadPrunedAt(v *time.Time) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetPayloadPrunedAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *ProductDocHistoryCreate) SetReleasedAt(v time.Time) *ProductDocHistoryCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableReleasedAt(v *time.Time) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductDocHistoryCreate) SetCreatedAt(v time.Time) *ProductDocHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductDocHistoryCreate) SetNillableCreatedAt(v *time.Time) *ProductDocHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductDocHistoryCreate) SetID(v string) *ProductDocHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDoc sets the "doc" edge to the ProductDoc entity.
func (_c *ProductDocHistoryCreate) SetDoc(v *ProductDoc) *ProductDocHistoryCreate {
	return _c.SetDocID(v.ID)
}

// Mutation returns the ProductDocHistoryMutation object of the builder.
func (_c *ProductDocHistoryCreate) Mutation() *ProductDocHistoryMutation {
	return _c.mutation
}

// Save creates the ProductDocHistory in the database.
func (_c *ProductDocHistoryCreate) Save(ctx context.Context) (*ProductDocHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductDocHistoryCreate) SaveX(ctx context.Context) *ProductDocHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductDocHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductDocHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductDocHistoryCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := productdochistory.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		v := productdochistory.DefaultIsPinned
		_c.mutation.SetIsPinned(v)
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		v := productdochistory.DefaultIsReleased
		_c.mutation.SetIsReleased(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productdochistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductDocHistoryCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "ProductDocHistory.doc_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProductDocHistory.version"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ProductDocHistory.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := productdochistory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProductDocHistory.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		return &ValidationError{Name: "is_pinned", err: errors.New(`ent: missing required field "ProductDocHistory.is_pinned"`)}
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		return &ValidationError{Name: "is_released", err: errors.New(`ent: missing required field "ProductDocHistory.is_released"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductDocHistory.created_at"`)}
	}
	if len(_c.mutation.DocIDs()) == 0 {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required edge "ProductDocHistory.doc"`)}
	}
	return nil
}

func (_c *ProductDocHistoryCreate) sqlSave(ctx context.Context) (*ProductDocHistory, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProductDocHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductDocHistoryCreate) createSpec() (*ProductDocHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductDocHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productdochistory.Table, sqlgraph.NewFieldSpec(productdochistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(productdochistory.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(productdochistory.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Structured(); ok {
		_spec.SetField(productdochistory.FieldStructured, field.TypeJSON, value)
		_node.Structured = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(productdochistory.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ChangeSummary(); ok {
		_spec.SetField(productdochistory.FieldChangeSummary, field.TypeString, value)
		_node.ChangeSummary = value
	}
	if value, ok := _c.mutation.AffectedPages(); ok {
		_spec.SetField(productdochistory.FieldAffectedPages, field.TypeJSON, value)
		_node.AffectedPages = value
	}
	if value, ok := _c.mutation.IsPinned(); ok {
		_spec.SetField(productdochistory.FieldIsPinned, field.TypeBool, value)
		_node.IsPinned = value
	}
	if value, ok := _c.mutation.IsReleased(); ok {
		_spec.SetField(productdochistory.FieldIsReleased, field.TypeBool, value)
		_node.IsReleased = value
	}
	if value, ok := _c.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(productdochistory.FieldPayloadPrunedAt, field.TypeTime, value)
		_node.PayloadPrunedAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(productdochistory.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productdochistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productdochistory.DocTable,
			Columns: []string{productdochistory.DocColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdoc.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductDocHistoryCreateBulk is the builder for creating many ProductDocHistory entities in bulk.
type ProductDocHistoryCreateBulk struct {
	config
	err      error
	builders []*ProductDocHistoryCreate
}

// Save creates the ProductDocHistory entities in the database.
func (_c *ProductDocHistoryCreateBulk) Save(ctx context.Context) ([]*ProductDocHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductDocHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductDocHistoryMutation)
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
func (_c *ProductDocHistoryCreateBulk) SaveX(ctx context.Context) []*ProductDocHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductDocHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductDocHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
