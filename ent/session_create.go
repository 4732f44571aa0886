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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/sessionevent"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *SessionCreate) SetTitle(v string) *SessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTitle(v *string) *SessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetProductType sets the "product_type" field.
func (_c *SessionCreate) SetProductType(v string) *SessionCreate {
	_c.mutation.SetProductType(v)
	return _c
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProductType(v *string) *SessionCreate {
	if v != nil {
		_c.SetProductType(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *SessionCreate) SetComplexity(v string) *SessionCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *SessionCreate) SetNillableComplexity(v *string) *SessionCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *SessionCreate) SetSkillID(v string) *SessionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSkillID(v *string) *SessionCreate {
	if v != nil {
		_c.SetSkillID(*v)
	}
	return _c
}

// SetDocTier sets the "doc_tier" field.
func (_c *SessionCreate) SetDocTier(v string) *SessionCreate {
	_c.mutation.SetDocTier(v)
	return _c
}

// SetNillableDocTier sets the "doc_tier" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDocTier(v *string) *SessionCreate {
	if v != nil {
		_c.SetDocTier(*v)
	}
	return _c
}

// SetGraphState sets the "graph_state" field.
func (_c *SessionCreate) SetGraphState(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetGraphState(v)
	return _c
}

// SetBuildStatus sets the "build_status" field.
func (_c *SessionCreate) SetBuildStatus(v session.BuildStatus) *SessionCreate {
	_c.mutation.SetBuildStatus(v)
	return _c
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableBuildStatus(v *session.BuildStatus) *SessionCreate {
	if v != nil {
		_c.SetBuildStatus(*v)
	}
	return _c
}

// SetBuildArtifacts sets the "build_artifacts" field.
func (_c *SessionCreate) SetBuildArtifacts(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetBuildArtifacts(v)
	return _c
}

// SetAestheticScores sets the "aesthetic_scores" field.
func (_c *SessionCreate) SetAestheticScores(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetAestheticScores(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *SessionCreate) AddRunIDs(ids ...string) *SessionCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *SessionCreate) AddRuns(v ...*Run) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// SetProductDocID sets the "product_doc" edge to the ProductDoc entity by ID.
func (_c *SessionCreate) SetProductDocID(id string) *SessionCreate {
	_c.mutation.SetProductDocID(id)
	return _c
}

// SetNillableProductDocID sets the "product_doc" edge to the ProductDoc entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableProductDocID(id *string) *SessionCreate {
	if id != nil {
		_c = _c.SetProductDocID(*id)
	}
	return _c
}

// SetProductDoc sets the "product_doc" edge to the ProductDoc entity.
func (_c *SessionCreate) SetProductDoc(v *ProductDoc) *SessionCreate {
	return _c.SetProductDocID(v.ID)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_c *SessionCreate) AddPageIDs(ids ...string) *SessionCreate {
	_c.mutation.AddPageIDs(ids...)
	return _c
}

// AddPages adds the "pages" edges to the Page entity.
func (_c *SessionCreate) AddPages(v ...*Page) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPageIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the ProjectSnapshot entity by IDs.
func (_c *SessionCreate) AddSnapshotIDs(ids ...string) *SessionCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the ProjectSnapshot entity.
func (_c *SessionCreate) AddSnapshots(v ...*ProjectSnapshot) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_c *SessionCreate) AddPlanIDs(ids ...string) *SessionCreate {
	_c.mutation.AddPlanIDs(ids...)
	return _c
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_c *SessionCreate) AddPlans(v ...*Plan) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlanIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_c *SessionCreate) AddEventIDs(ids ...int) *SessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_c *SessionCreate) AddEvents(v ...*SessionEvent) *SessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.BuildStatus(); !ok {
		v := session.DefaultBuildStatus
		_c.mutation.SetBuildStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.BuildStatus(); !ok {
		return &ValidationError{Name: "build_status", err: errors.New(`ent: missing required field "Session.build_status"`)}
	}
	if v, ok := _c.mutation.BuildStatus(); ok {
		if err := session.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Session.build_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ProductType(); ok {
		_spec.SetField(session.FieldProductType, field.TypeString, value)
		_node.ProductType = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(session.FieldComplexity, field.TypeString, value)
		_node.Complexity = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(session.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.DocTier(); ok {
		_spec.SetField(session.FieldDocTier, field.TypeString, value)
		_node.DocTier = value
	}
	if value, ok := _c.mutation.GraphState(); ok {
		_spec.SetField(session.FieldGraphState, field.TypeJSON, value)
		_node.GraphState = value
	}
	if value, ok := _c.mutation.BuildStatus(); ok {
		_spec.SetField(session.FieldBuildStatus, field.TypeEnum, value)
		_node.BuildStatus = value
	}
	if value, ok := _c.mutation.BuildArtifacts(); ok {
		_spec.SetField(session.FieldBuildArtifacts, field.TypeJSON, value)
		_node.BuildArtifacts = value
	}
	if value, ok := _c.mutation.AestheticScores(); ok {
		_spec.SetField(session.FieldAestheticScores, field.TypeJSON, value)
		_node.AestheticScores = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.RunsTable,
			Columns: []string{session.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductDocIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ProductDocTable,
			Columns: []string{session.ProductDocColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productdoc.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.PagesTable,
			Columns: []string{session.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.SnapshotsTable,
			Columns: []string{session.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectsnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.PlansTable,
			Columns: []string{session.PlansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
