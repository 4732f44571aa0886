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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// ProductDocCreate is the builder for creating a ProductDoc entity.
type ProductDocCreate struct {
	config
	mutation *ProductDocMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ProductDocCreate) SetSessionID(v string) *ProductDocCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ProductDocCreate) SetContent(v string) *ProductDocCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetStructured sets the "structured" field.
func (_c *ProductDocCreate) SetStructured(v map[string]interface{}) *ProductDocCreate {
	_c.mutation.SetStructured(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProductDocCreate) SetVersion(v int) *ProductDocCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProductDocCreate) SetNillableVersion(v *int) *ProductDocCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProductDocCreate) SetStatus(v productdoc.Status) *ProductDocCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProductDocCreate) SetNillableStatus(v *productdoc.Status) *ProductDocCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPendingRegenerationPages sets the "pending_regeneration_pages" field.
func (_c *ProductDocCreate) SetPendingRegenerationPages(v []string) *ProductDocCreate {
	_c.mutation.SetPendingRegenerationPages(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductDocCreate) SetCreatedAt(v time.Time) *ProductDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductDocCreate) SetNillableCreatedAt(v *time.Time) *ProductDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductDocCreate) SetUpdatedAt(v time.Time) *ProductDocCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductDocCreate) SetNillableUpdatedAt(v *time.Time) *ProductDocCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductDocCreate) SetID(v string) *ProductDocCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ProductDocCreate) SetSession(v *Session) *ProductDocCreate {
	return _c.SetSessionID(v.ID)
}

// AddHistoryIDs adds the "histories" edge to the ProductDocHistory entity by IDs.
func (_c *ProductDocCreate) AddHistoryIDs(ids ...string) *ProductDocCreate {
	_c.mutation.AddHistoryIDs(ids...)
	return _c
}

// AddHistories adds the "histories" edges to the ProductDocHistory entity.
func (_c *ProductDocCreate) AddHistories(v ...*ProductDocHistory) *ProductDocCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHistoryIDs(ids...)
}

// Mutation returns the ProductDocMutation object of the builder.
func (_c *ProductDocCreate) Mutation() *ProductDocMutation {
	return _c.mutation
}

// Save creates the ProductDoc in the database.
func (_c *ProductDocCreate) Save(ctx context.Context) (*ProductDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductDocCreate) SaveX(ctx context.Context) *ProductDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductDocCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := productdoc.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := productdoc.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productdoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := productdoc.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductDocCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProductDoc.session_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ProductDoc.content"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProductDoc.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProductDoc.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := productdoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductDoc.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductDoc.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProductDoc.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ProductDoc.session"`)}
	}
	return nil
}

func (_c *ProductDocCreate) sqlSave(ctx context.Context) (*ProductDoc, error) {
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
			return nil, fmt.Errorf("unexpected ProductDoc.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductDocCreate) createSpec() (*ProductDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productdoc.Table, sqlgraph.NewFieldSpec(productdoc.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(productdoc.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Structured(); ok {
		_spec.SetField(productdoc.FieldStructured, field.TypeJSON, value)
		_node.Structured = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(productdoc.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(productdoc.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PendingRegenerationPages(); ok {
		_spec.SetField(productdoc.FieldPendingRegenerationPages, field.TypeJSON, value)
		_node.PendingRegenerationPages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productdoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(productdoc.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   productdoc.SessionTable,
			Columns: []string{productdoc.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HistoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductDocCreateBulk is the builder for creating many ProductDoc entities in bulk.
type ProductDocCreateBulk struct {
	config
	err      error
	builders []*ProductDocCreate
}

// Save creates the ProductDoc entities in the database.
func (_c *ProductDocCreateBulk) Save(ctx context.Context) ([]*ProductDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductDocMutation)
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
func (_c *ProductDocCreateBulk) SaveX(ctx context.Context) []*ProductDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
