// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// ProjectSnapshotCreate is the builder for creating a ProjectSnapshot entity.
type ProjectSnapshotCreate struct {
	config
	mutation *ProjectSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ProjectSnapshotCreate) SetSessionID(v string) *ProjectSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSnapshotNumber sets the "snapshot_number" field.
func (_c *ProjectSnapshotCreate) SetSnapshotNumber(v int) *ProjectSnapshotCreate {
	_c.mutation.SetSnapshotNumber(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ProjectSnapshotCreate) SetSource(v projectsnapshot.Source) *ProjectSnapshotCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableSource(v *projectsnapshot.Source) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *ProjectSnapshotCreate) SetLabel(v string) *ProjectSnapshotCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableLabel(v *string) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetDocContent sets the "doc_content" field.
func (_c *ProjectSnapshotCreate) SetDocContent(v string) *ProjectSnapshotCreate {
	_c.mutation.SetDocContent(v)
	return _c
}

// SetNillableDocContent sets the "doc_content" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableDocContent(v *string) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetDocContent(*v)
	}
	return _c
}

// SetDocStructured sets the "doc_structured" field.
func (_c *ProjectSnapshotCreate) SetDocStructured(v map[string]interface{}) *ProjectSnapshotCreate {
	_c.mutation.SetDocStructured(v)
	return _c
}

// SetDocVersion sets the "doc_version" field.
func (_c *ProjectSnapshotCreate) SetDocVersion(v int) *ProjectSnapshotCreate {
	_c.mutation.SetDocVersion(v)
	return _c
}

// SetNillableDocVersion sets the "doc_version" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableDocVersion(v *int) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetDocVersion(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ProjectSnapshotCreate) SetPages(v []map[string]interface{}) *ProjectSnapshotCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetIsPinned sets the "is_pinned" field.
func (_c *ProjectSnapshotCreate) SetIsPinned(v bool) *ProjectSnapshotCreate {
	_c.mutation.SetIsPinned(v)
	return _c
}

// SetNillableIsPinned sets the "is_pinned" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableIsPinned(v *bool) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetIsPinned(*v)
	}
	return _c
}

// SetIsReleased sets the "is_released" field.
func (_c *ProjectSnapshotCreate) SetIsReleased(v bool) *ProjectSnapshotCreate {
	_c.mutation.SetIsReleased(v)
	return _c
}

// SetNillableIsReleased sets the "is_released" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableIsReleased(v *bool) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetIsReleased(*v)
	}
	return _c
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (_c *ProjectSnapshotCreate) SetPayloadPrunedAt(v time.Time) *ProjectSnapshotCreate {
	_c.mutation.SetPayloadPrunedAt(v)
	return _c
}

// SetNillablePayloadPrunedAt sets the "payload_pruned_at" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillablePayloadPrunedAt(v *time.Time) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetPayloadPrunedAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *ProjectSnapshotCreate) SetReleasedAt(v time.Time) *ProjectSnapshotCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableReleasedAt(v *time.Time) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectSnapshotCreate) SetCreatedAt(v time.Time) *ProjectSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ProjectSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectSnapshotCreate) SetID(v string) *ProjectSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ProjectSnapshotCreate) SetSession(v *Session) *ProjectSnapshotCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ProjectSnapshotMutation object of the builder.
func (_c *ProjectSnapshotCreate) Mutation() *ProjectSnapshotMutation {
	return _c.mutation
}

// Save creates the ProjectSnapshot in the database.
func (_c *ProjectSnapshotCreate) Save(ctx context.Context) (*ProjectSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectSnapshotCreate) SaveX(ctx context.Context) *ProjectSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := projectsnapshot.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.DocVersion(); !ok {
		v := projectsnapshot.DefaultDocVersion
		_c.mutation.SetDocVersion(v)
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		v := projectsnapshot.DefaultIsPinned
		_c.mutation.SetIsPinned(v)
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		v := projectsnapshot.DefaultIsReleased
		_c.mutation.SetIsReleased(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProjectSnapshot.session_id"`)}
	}
	if _, ok := _c.mutation.SnapshotNumber(); !ok {
		return &ValidationError{Name: "snapshot_number", err: errors.New(`ent: missing required field "ProjectSnapshot.snapshot_number"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ProjectSnapshot.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := projectsnapshot.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ProjectSnapshot.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocVersion(); !ok {
		return &ValidationError{Name: "doc_version", err: errors.New(`ent: missing required field "ProjectSnapshot.doc_version"`)}
	}
	if _, ok := _c.mutation.IsPinned(); !ok {
		return &ValidationError{Name: "is_pinned", err: errors.New(`ent: missing required field "ProjectSnapshot.is_pinned"`)}
	}
	if _, ok := _c.mutation.IsReleased(); !ok {
		return &ValidationError{Name: "is_released", err: errors.New(`ent: missing required field "ProjectSnapshot.is_released"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectSnapshot.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ProjectSnapshot.session"`)}
	}
	return nil
}

func (_c *ProjectSnapshotCreate) sqlSave(ctx context.Context) (*ProjectSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected ProjectSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectSnapshotCreate) createSpec() (*ProjectSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectsnapshot.Table, sqlgraph.NewFieldSpec(projectsnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SnapshotNumber(); ok {
		_spec.SetField(projectsnapshot.FieldSnapshotNumber, field.TypeInt, value)
		_node.SnapshotNumber = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(projectsnapshot.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(projectsnapshot.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.DocContent(); ok {
		_spec.SetField(projectsnapshot.FieldDocContent, field.TypeString, value)
		_node.DocContent = &value
	}
	if value, ok := _c.mutation.DocStructured(); ok {
		_spec.SetField(projectsnapshot.FieldDocStructured, field.TypeJSON, value)
		_node.DocStructured = value
	}
	if value, ok := _c.mutation.DocVersion(); ok {
		_spec.SetField(projectsnapshot.FieldDocVersion, field.TypeInt, value)
		_node.DocVersion = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(projectsnapshot.FieldPages, field.TypeJSON, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.IsPinned(); ok {
		_spec.SetField(projectsnapshot.FieldIsPinned, field.TypeBool, value)
		_node.IsPinned = value
	}
	if value, ok := _c.mutation.IsReleased(); ok {
		_spec.SetField(projectsnapshot.FieldIsReleased, field.TypeBool, value)
		_node.IsReleased = value
	}
	if value, ok := _c.mutation.PayloadPrunedAt(); ok {
		_spec.SetField(projectsnapshot.FieldPayloadPrunedAt, field.TypeTime, value)
		_node.PayloadPrunedAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(projectsnapshot.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectsnapshot.SessionTable,
			Columns: []string{projectsnapshot.SessionColumn},
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
	return _node, _spec
}

// ProjectSnapshotCreateBulk is the builder for creating many ProjectSnapshot entities in bulk.
type ProjectSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProjectSnapshotCreate
}

// Save creates the ProjectSnapshot entities in the database.
func (_c *ProjectSnapshotCreateBulk) Save(ctx context.Context) ([]*ProjectSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectSnapshotMutation)
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
func (_c *ProjectSnapshotCreateBulk) SaveX(ctx context.Context) []*ProjectSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
