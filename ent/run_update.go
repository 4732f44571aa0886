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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentRunID sets the "parent_run_id" field.
func (_u *RunUpdate) SetParentRunID(v string) *RunUpdate {
	_u.mutation.SetParentRunID(v)
	return _u
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableParentRunID(v *string) *RunUpdate {
	if v != nil {
		_u.SetParentRunID(*v)
	}
	return _u
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (_u *RunUpdate) ClearParentRunID() *RunUpdate {
	_u.mutation.ClearParentRunID()
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *RunUpdate) SetTriggerSource(v string) *RunUpdate {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTriggerSource(v *string) *RunUpdate {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputMessage sets the "input_message" field.
func (_u *RunUpdate) SetInputMessage(v string) *RunUpdate {
	_u.mutation.SetInputMessage(v)
	return _u
}

// SetNillableInputMessage sets the "input_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableInputMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetInputMessage(*v)
	}
	return _u
}

// ClearInputMessage clears the value of the "input_message" field.
func (_u *RunUpdate) ClearInputMessage() *RunUpdate {
	_u.mutation.ClearInputMessage()
	return _u
}

// SetResumePayload sets the "resume_payload" field.
func (_u *RunUpdate) SetResumePayload(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetResumePayload(v)
	return _u
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (_u *RunUpdate) ClearResumePayload() *RunUpdate {
	_u.mutation.ClearResumePayload()
	return _u
}

// SetCheckpointThread sets the "checkpoint_thread" field.
func (_u *RunUpdate) SetCheckpointThread(v string) *RunUpdate {
	_u.mutation.SetCheckpointThread(v)
	return _u
}

// SetNillableCheckpointThread sets the "checkpoint_thread" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCheckpointThread(v *string) *RunUpdate {
	if v != nil {
		_u.SetCheckpointThread(*v)
	}
	return _u
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (_u *RunUpdate) SetCheckpointNs(v string) *RunUpdate {
	_u.mutation.SetCheckpointNs(v)
	return _u
}

// SetNillableCheckpointNs sets the "checkpoint_ns" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCheckpointNs(v *string) *RunUpdate {
	if v != nil {
		_u.SetCheckpointNs(*v)
	}
	return _u
}

// ClearCheckpointNs clears the value of the "checkpoint_ns" field.
func (_u *RunUpdate) ClearCheckpointNs() *RunUpdate {
	_u.mutation.ClearCheckpointNs()
	return _u
}

// SetLatestError sets the "latest_error" field.
func (_u *RunUpdate) SetLatestError(v string) *RunUpdate {
	_u.mutation.SetLatestError(v)
	return _u
}

// SetNillableLatestError sets the "latest_error" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLatestError(v *string) *RunUpdate {
	if v != nil {
		_u.SetLatestError(*v)
	}
	return _u
}

// ClearLatestError clears the value of the "latest_error" field.
func (_u *RunUpdate) ClearLatestError() *RunUpdate {
	_u.mutation.ClearLatestError()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunUpdate) SetMetrics(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunUpdate) ClearMetrics() *RunUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdate) SetFinishedAt(v time.Time) *RunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFinishedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdate) ClearFinishedAt() *RunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStateChangedAt sets the "state_changed_at" field.
func (_u *RunUpdate) SetStateChangedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStateChangedAt(v)
	return _u
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStateChangedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStateChangedAt(*v)
	}
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.session"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeString, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(run.FieldTriggerSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputMessage(); ok {
		_spec.SetField(run.FieldInputMessage, field.TypeString, value)
	}
	if _u.mutation.InputMessageCleared() {
		_spec.ClearField(run.FieldInputMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResumePayloadCleared() {
		_spec.ClearField(run.FieldResumePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckpointThread(); ok {
		_spec.SetField(run.FieldCheckpointThread, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointNs(); ok {
		_spec.SetField(run.FieldCheckpointNs, field.TypeString, value)
	}
	if _u.mutation.CheckpointNsCleared() {
		_spec.ClearField(run.FieldCheckpointNs, field.TypeString)
	}
	if value, ok := _u.mutation.LatestError(); ok {
		_spec.SetField(run.FieldLatestError, field.TypeString, value)
	}
	if _u.mutation.LatestErrorCleared() {
		_spec.ClearField(run.FieldLatestError, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(run.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StateChangedAt(); ok {
		_spec.SetField(run.FieldStateChangedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetParentRunID sets the "parent_run_id" field.
func (_u *RunUpdateOne) SetParentRunID(v string) *RunUpdateOne {
	_u.mutation.SetParentRunID(v)
	return _u
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableParentRunID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetParentRunID(*v)
	}
	return _u
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (_u *RunUpdateOne) ClearParentRunID() *RunUpdateOne {
	_u.mutation.ClearParentRunID()
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *RunUpdateOne) SetTriggerSource(v string) *RunUpdateOne {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTriggerSource(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputMessage sets the "input_message" field.
func (_u *RunUpdateOne) SetInputMessage(v string) *RunUpdateOne {
	_u.mutation.SetInputMessage(v)
	return _u
}

// SetNillableInputMessage sets the "input_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableInputMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetInputMessage(*v)
	}
	return _u
}

// ClearInputMessage clears the value of the "input_message" field.
func (_u *RunUpdateOne) ClearInputMessage() *RunUpdateOne {
	_u.mutation.ClearInputMessage()
	return _u
}

// SetResumePayload sets the "resume_payload" field.
func (_u *RunUpdateOne) SetResumePayload(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetResumePayload(v)
	return _u
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (_u *RunUpdateOne) ClearResumePayload() *RunUpdateOne {
	_u.mutation.ClearResumePayload()
	return _u
}

// SetCheckpointThread sets the "checkpoint_thread" field.
func (_u *RunUpdateOne) SetCheckpointThread(v string) *RunUpdateOne {
	_u.mutation.SetCheckpointThread(v)
	return _u
}

// SetNillableCheckpointThread sets the "checkpoint_thread" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCheckpointThread(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCheckpointThread(*v)
	}
	return _u
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (_u *RunUpdateOne) SetCheckpointNs(v string) *RunUpdateOne {
	_u.mutation.SetCheckpointNs(v)
	return _u
}

// SetNillableCheckpointNs sets the "checkpoint_ns" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCheckpointNs(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCheckpointNs(*v)
	}
	return _u
}

// ClearCheckpointNs clears the value of the "checkpoint_ns" field.
func (_u *RunUpdateOne) ClearCheckpointNs() *RunUpdateOne {
	_u.mutation.ClearCheckpointNs()
	return _u
}

// SetLatestError sets the "latest_error" field.
func (_u *RunUpdateOne) SetLatestError(v string) *RunUpdateOne {
	_u.mutation.SetLatestError(v)
	return _u
}

// SetNillableLatestError sets the "latest_error" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLatestError(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLatestError(*v)
	}
	return _u
}

// ClearLatestError clears the value of the "latest_error" field.
func (_u *RunUpdateOne) ClearLatestError() *RunUpdateOne {
	_u.mutation.ClearLatestError()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunUpdateOne) SetMetrics(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunUpdateOne) ClearMetrics() *RunUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdateOne) SetFinishedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFinishedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdateOne) ClearFinishedAt() *RunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStateChangedAt sets the "state_changed_at" field.
func (_u *RunUpdateOne) SetStateChangedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStateChangedAt(v)
	return _u
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStateChangedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStateChangedAt(*v)
	}
	return _u
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.session"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.ParentRunID(); ok {
		_spec.SetField(run.FieldParentRunID, field.TypeString, value)
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(run.FieldParentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(run.FieldTriggerSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputMessage(); ok {
		_spec.SetField(run.FieldInputMessage, field.TypeString, value)
	}
	if _u.mutation.InputMessageCleared() {
		_spec.ClearField(run.FieldInputMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResumePayload(); ok {
		_spec.SetField(run.FieldResumePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResumePayloadCleared() {
		_spec.ClearField(run.FieldResumePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.CheckpointThread(); ok {
		_spec.SetField(run.FieldCheckpointThread, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointNs(); ok {
		_spec.SetField(run.FieldCheckpointNs, field.TypeString, value)
	}
	if _u.mutation.CheckpointNsCleared() {
		_spec.ClearField(run.FieldCheckpointNs, field.TypeString)
	}
	if value, ok := _u.mutation.LatestError(); ok {
		_spec.SetField(run.FieldLatestError, field.TypeString, value)
	}
	if _u.mutation.LatestErrorCleared() {
		_spec.ClearField(run.FieldLatestError, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(run.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(run.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StateChangedAt(); ok {
		_spec.SetField(run.FieldStateChangedAt, field.TypeTime, value)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
