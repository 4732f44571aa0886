// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RunCreate) SetSessionID(v string) *RunCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *RunCreate) SetParentRunID(v string) *RunCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableParentRunID(v *string) *RunCreate {
	if v != nil {
		_c.SetParentRunID(*v)
	}
	return _c
}

// SetTriggerSource sets the "trigger_source" field.
func (_c *RunCreate) SetTriggerSource(v string) *RunCreate {
	_c.mutation.SetTriggerSource(v)
	return _c
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_c *RunCreate) SetNillableTriggerSource(v *string) *RunCreate {
	if v != nil {
		_c.SetTriggerSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputMessage sets the "input_message" field.
func (_c *RunCreate) SetInputMessage(v string) *RunCreate {
	_c.mutation.SetInputMessage(v)
	return _c
}

// SetNillableInputMessage sets the "input_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableInputMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetInputMessage(*v)
	}
	return _c
}

// SetResumePayload sets the "resume_payload" field.
func (_c *RunCreate) SetResumePayload(v map[string]interface{}) *RunCreate {
	_c.mutation.SetResumePayload(v)
	return _c
}

// SetCheckpointThread sets the "checkpoint_thread" field.
func (_c *RunCreate) SetCheckpointThread(v string) *RunCreate {
	_c.mutation.SetCheckpointThread(v)
	return _c
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (_c *RunCreate) SetCheckpointNs(v string) *RunCreate {
	_c.mutation.SetCheckpointNs(v)
	return _c
}

// SetNillableCheckpointNs sets the "checkpoint_ns" field if the given value is not nil.
func (_c *RunCreate) SetNillableCheckpointNs(v *string) *RunCreate {
	if v != nil {
		_c.SetCheckpointNs(*v)
	}
	return _c
}

// SetLatestError sets the "latest_error" field.
func (_c *RunCreate) SetLatestError(v string) *RunCreate {
	_c.mutation.SetLatestError(v)
	return _c
}

// SetNillableLatestError sets the "latest_error" field if the given value is not nil.
func (_c *RunCreate) SetNillableLatestError(v *string) *RunCreate {
	if v != nil {
		_c.SetLatestError(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *RunCreate) SetMetrics(v map[string]interface{}) *RunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunCreate) SetFinishedAt(v time.Time) *RunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableFinishedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStateChangedAt sets the "state_changed_at" field.
func (_c *RunCreate) SetStateChangedAt(v time.Time) *RunCreate {
	_c.mutation.SetStateChangedAt(v)
	return _c
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStateChangedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStateChangedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *RunCreate) SetSession(v *Session) *RunCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.TriggerSource(); !ok {
		v := run.DefaultTriggerSource
		_c.mutation.SetTriggerSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.StateChangedAt(); !ok {
		v := run.DefaultStateChangedAt()
		_c.mutation.SetStateChangedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Run.session_id"`)}
	}
	if _, ok := _c.mutation.TriggerSource(); !ok {
		return &ValidationError{Name: "trigger_source", err: errors.New(`ent: missing required field "Run.trigger_source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CheckpointThread(); !ok {
		return &ValidationError{Name: "checkpoint_thread", err: errors.New(`ent: missing required field "Run.checkpoint_thread"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.StateChangedAt(); !ok {
		return &ValidationError{Name: "state_changed_at", err: errors.New(`ent: missing required field "Run.state_changed_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Run.session"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeString, value)
		_node.ParentRunID = &value
	}
	if value, ok := _c.mutation.TriggerSource(); ok {
		_spec.SetField(run.FieldTriggerSource, field.TypeString, value)
		_node.TriggerSource = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputMessage(); ok {
		_spec.SetField(run.FieldInputMessage, field.TypeString, value)
		_node.InputMessage = value
	}
	if value, ok := _c.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
		_node.ResumePayload = value
	}
	if value, ok := _c.mutation.CheckpointThread(); ok {
		_spec.SetField(run.FieldCheckpointThread, field.TypeString, value)
		_node.CheckpointThread = value
	}
	if value, ok := _c.mutation.CheckpointNs(); ok {
		_spec.SetField(run.FieldCheckpointNs, field.TypeString, value)
		_node.CheckpointNs = value
	}
	if value, ok := _c.mutation.LatestError(); ok {
		_spec.SetField(run.FieldLatestError, field.TypeString, value)
		_node.LatestError = &value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.StateChangedAt(); ok {
		_spec.SetField(run.FieldStateChangedAt, field.TypeTime, value)
		_node.StateChangedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.SessionTable,
			Columns: []string{run.SessionColumn},
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

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
