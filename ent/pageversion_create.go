// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
)

// PageVersionCreate is the builder for creating a PageVersion entity.
type PageVersionCreate struct {
	config
	mutation *PageVersionMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *PageVersionCreate) SetPageID(v string) *PageVersionCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PageVersionCreate) SetVersion(v int) *PageVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetHTML sets the "html" field.
func (_c *PageVersionCreate) SetHTML(v string) *PageVersionCreate {
	_c.mutation.SetHTML(v)
	return _c
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableHTML(v *string) *PageVersionCreate {
	if v != nil {
		_c.SetHTML(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *PageVersionCreate) SetDescription(v string) *PageVersionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableDescription(v *string) *PageVersionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *PageVersionCreate) SetSource(v pageversion.Source) *PageVersionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableSource(v *pageversion.Source) *PageVersionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetIsPinned sets the "is_pinned" field.
func (_c *PageVersionCreate) SetIsPinned(v bool) *PageVersionCreate {
	_c.mutation.SetIsPinned(v)
	return _c
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableIsPinned(v *bool) *PageVersionCreate {
	if v != nil {
		_c.SetIsPinned(*v)
	}
	return _c
}

// SetIsReleased sets the "is_released" field.
func (_c *PageVersionCreate) SetIsReleased(v bool) *PageVersionCreate {
	_c.mutation.SetIsReleased(v)
	return _c
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableIsReleased(v *bool) *PageVersionCreate {
	if v != nil {
		_c.SetIsReleased(*v)
	}
	return _c
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_c *PageVersionCreate) SetPayloadPrunedAt(v time.Time) *PageVersionCreate {
	_c.mutation.SetPayloadPrunedAt(v)
	return _c
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillablePayloadPrunedAt(v *time.Time) *PageVersionCreate {
	if v != nil {
		_c.SetPayloadPrunedAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *PageVersionCreate) SetReleasedAt(v time.Time) *PageVersionCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableReleasedAt(v *time.Time) *PageVersionCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetFallbackUsed sets the "fallback_used" field.
func (_c *PageVersionCreate) SetFallbackUsed(v bool) *PageVersionCreate {
	_c.mutation.SetFallbackUsed(v)
	return _c
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableFallbackUsed(v *bool) *PageVersionCreate {
	if v != nil {
		_c.SetFallbackUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PageVersionCreate) SetCreatedAt(v time.Time) *PageVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PageVersionCreate) SetNillableCreatedAt(v *time.Time) *PageVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PageVersionCreate) SetID(v string) *PageVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPage sets the "page" edge to the Page entity.
func (_c *PageVersionCreate) SetPage(v *Page) *PageVersionCreate {
	return _c.SetPageID(v.ID)
}

// Mutation returns the PageVersionMutation object of the builder.
func (_c *PageVersionCreate) Mutation() *PageVersionMutation {
	return _c.mutation
}

// Save creates the PageVersion in the database.
func (_c *PageVersionCreate) Save(ctx context.Context) (*PageVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageVersionCreate) SaveX(ctx context.Context) *PageVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageVersionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := pageversion.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		v := pageversion.DefaultIsPinned
		_c.mutation.SetIsPinned(v)
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		v := pageversion.DefaultIsReleased
		_c.mutation.SetIsReleased(v)
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		v := pageversion.DefaultFallbackUsed
		_c.mutation.SetFallbackUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pageversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageVersionCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "PageVersion.page_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PageVersion.version"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "PageVersion.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := pageversion.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PageVersion.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		return &ValidationError{Name: "is_pinned", err: errors.New(`ent: missing required field "PageVersion.is_pinned"`)}
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		return &ValidationError{Name: "is_released", err: errors.New(`ent: missing required field "PageVersion.is_released"`)}
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		return &ValidationError{Name: "fallback_used", err: errors.New(`ent: missing required field "PageVersion.fallback_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PageVersion.created_at"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "PageVersion.page"`)}
	}
	return nil
}

func (_c *PageVersionCreate) sqlSave(ctx context.Context) (*PageVersion, error) {
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
			return nil, fmt.Errorf("unexpected PageVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PageVersionCreate) createSpec() (*PageVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &PageVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pageversion.Table, sqlgraph.NewFieldSpec(pageversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(pageversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.HTML(); ok {
		_spec.SetField(pageversion.FieldHTML, field.TypeString, value)
		_node.HTML = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(pageversion.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(pageversion.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.IsPinned(); ok {
		_spec.SetField(pageversion.FieldIsPinned, field.TypeBool, value)
		_node.IsPinned = value
	}
	if value, ok := _c.mutation.IsReleased(); ok {
		_spec.SetField(pageversion.FieldIsReleased, field.TypeBool, value)
		_node.IsReleased = value
	}
	if value, ok := _c.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(pageversion.FieldPayloadPrunedAt, field.TypeTime, value)
		_node.PayloadPrunedAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(pageversion.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.FallbackUsed(); ok {
		_spec.SetField(pageversion.FieldFallbackUsed, field.TypeBool, value)
		_node.FallbackUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pageversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pageversion.PageTable,
			Columns: []string{pageversion.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PageVersionCreateBulk is the builder for creating many PageVersion entities in bulk.
type PageVersionCreateBulk struct {
	config
	err      error
	builders []*PageVersionCreate
}

// Save creates the PageVersion entities in the database.
func (_c *PageVersionCreateBulk) Save(ctx context.Context) ([]*PageVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PageVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageVersionMutation)
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
func (_c *PageVersionCreateBulk) SaveX(ctx context.Context) []*PageVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
