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
	"github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/sessionevent"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdate) ClearTitle() *SessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *SessionUpdate) SetProductType(v string) *SessionUpdate {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProductType(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *SessionUpdate) ClearProductType() *SessionUpdate {
	_u.mutation.ClearProductType()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *SessionUpdate) SetComplexity(v string) *SessionUpdate {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableComplexity(v *string) *SessionUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *SessionUpdate) ClearComplexity() *SessionUpdate {
	_u.mutation.ClearComplexity()
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *SessionUpdate) SetSkillID(v string) *SessionUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSkillID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// ClearSkillID clears the value of the "skill_id" field.
func (_u *SessionUpdate) ClearSkillID() *SessionUpdate {
	_u.mutation.ClearSkillID()
	return _u
}

// SetDocTier sets the "doc_tier" field.
func (_u *SessionUpdate) SetDocTier(v string) *SessionUpdate {
	_u.mutation.SetDocTier(v)
	return _u
}

// SetNillableDocTier sets the "doc_tier" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDocTier(v *string) *SessionUpdate {
	if v != nil {
		_u.SetDocTier(*v)
	}
	return _u
}

// ClearDocTier clears the value of the "doc_tier" field.
func (_u *SessionUpdate) ClearDocTier() *SessionUpdate {
	_u.mutation.ClearDocTier()
	return _u
}

// SetGraphState sets the "graph_state" field.
func (_u *SessionUpdate) SetGraphState(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetGraphState(v)
	return _u
}

// ClearGraphState clears the value of the "graph_state" field.
func (_u *SessionUpdate) ClearGraphState() *SessionUpdate {
	_u.mutation.ClearGraphState()
	return _u
}

// SetBuildStatus sets the "build_status" field.
func (_u *SessionUpdate) SetBuildStatus(v session.BuildStatus) *SessionUpdate {
	_u.mutation.SetBuildStatus(v)
	return _u
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableBuildStatus(v *session.BuildStatus) *SessionUpdate {
	if v != nil {
		_u.SetBuildStatus(*v)
	}
	return _u
}

// SetBuildArtifacts sets the "build_artifacts" field.
func (_u *SessionUpdate) SetBuildArtifacts(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetBuildArtifacts(v)
	return _u
}

// ClearBuildArtifacts clears the value of the "build_artifacts" field.
func (_u *SessionUpdate) ClearBuildArtifacts() *SessionUpdate {
	_u.mutation.ClearBuildArtifacts()
	return _u
}

// SetAestheticScores sets the "aesthetic_scores" field.
func (_u *SessionUpdate) SetAestheticScores(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetAestheticScores(v)
	return _u
}

// ClearAestheticScores clears the value of the "aesthetic_scores" field.
func (_u *SessionUpdate) ClearAestheticScores() *SessionUpdate {
	_u.mutation.ClearAestheticScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SessionUpdate) AddRunIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SessionUpdate) AddRuns(v ...*Run) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// SetProductDocID sets the "product_doc" edge to the ProductDoc entity by ID.
func (_u *SessionUpdate) SetProductDocID(id string) *SessionUpdate {
	_u.mutation.SetProductDocID(id)
	return _u
}

// SetNillableProductDocID sets the "product_doc" edge to the ProductDoc entity by ID if the given value is not nil.
func (_u *SessionUpdate) SetNillableProductDocID(id *string) *SessionUpdate {
	if id != nil {
		_u = _u.SetProductDocID(*id)
	}
	return _u
}

// SetProductDoc sets the "product_doc" edge to the ProductDoc entity.
func (_u *SessionUpdate) SetProductDoc(v *ProductDoc) *SessionUpdate {
	return _u.SetProductDocID(v.ID)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *SessionUpdate) AddPageIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *SessionUpdate) AddPages(v ...*Page) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the ProjectSnapshot entity by IDs.
func (_u *SessionUpdate) AddSnapshotIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the ProjectSnapshot entity.
func (_u *SessionUpdate) AddSnapshots(v ...*ProjectSnapshot) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_u *SessionUpdate) AddPlanIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddPlanIDs(ids...)
	return _u
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_u *SessionUpdate) AddPlans(v ...*Plan) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *SessionUpdate) AddEventIDs(ids ...int) *SessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *SessionUpdate) AddEvents(v ...*SessionEvent) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SessionUpdate) ClearRuns() *SessionUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SessionUpdate) RemoveRunIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SessionUpdate) RemoveRuns(v ...*Run) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearProductDoc clears the "product_doc" edge to the ProductDoc entity.
func (_u *SessionUpdate) ClearProductDoc() *SessionUpdate {
	_u.mutation.ClearProductDoc()
	return _u
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *SessionUpdate) ClearPages() *SessionUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *SessionUpdate) RemovePageIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *SessionUpdate) RemovePages(v ...*Page) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the ProjectSnapshot entity.
func (_u *SessionUpdate) ClearSnapshots() *SessionUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to ProjectSnapshot entities by IDs.
func (_u *SessionUpdate) RemoveSnapshotIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to ProjectSnapshot entities.
func (_u *SessionUpdate) RemoveSnapshots(v ...*ProjectSnapshot) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearPlans clears all "plans" edges to the Plan entity.
func (_u *SessionUpdate) ClearPlans() *SessionUpdate {
	_u.mutation.ClearPlans()
	return _u
}

// RemovePlanIDs removes the "plans" edge to Plan entities by IDs.
func (_u *SessionUpdate) RemovePlanIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemovePlanIDs(ids...)
	return _u
}

// RemovePlans removes "plans" edges to Plan entities.
func (_u *SessionUpdate) RemovePlans(v ...*Plan) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanIDs(ids...)
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *SessionUpdate) ClearEvents() *SessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *SessionUpdate) RemoveEventIDs(ids ...int) *SessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *SessionUpdate) RemoveEvents(v ...*SessionEvent) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.BuildStatus(); ok {
		if err := session.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Session.build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(session.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(session.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(session.FieldComplexity, field.TypeString, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(session.FieldComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(session.FieldSkillID, field.TypeString, value)
	}
	if _u.mutation.SkillIDCleared() {
		_spec.ClearField(session.FieldSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.DocTier(); ok {
		_spec.SetField(session.FieldDocTier, field.TypeString, value)
	}
	if _u.mutation.DocTierCleared() {
		_spec.ClearField(session.FieldDocTier, field.TypeString)
	}
	if value, ok := _u.mutation.GraphState(); ok {
		_spec.SetField(session.FieldGraphState, field.TypeJSON, value)
	}
	if _u.mutation.GraphStateCleared() {
		_spec.ClearField(session.FieldGraphState, field.TypeJSON)
	}
	if value, ok := _u.mutation.BuildStatus(); ok {
		_spec.SetField(session.FieldBuildStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuildArtifacts(); ok {
		_spec.SetField(session.FieldBuildArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.BuildArtifactsCleared() {
		_spec.ClearField(session.FieldBuildArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.AestheticScores(); ok {
		_spec.SetField(session.FieldAestheticScores, field.TypeJSON, value)
	}
	if _u.mutation.AestheticScoresCleared() {
		_spec.ClearField(session.FieldAestheticScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductDocCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductDocIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlansIDs(); len(nodes) > 0 && !_u.mutation.PlansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlansIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdateOne) ClearTitle() *SessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *SessionUpdateOne) SetProductType(v string) *SessionUpdateOne {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProductType(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *SessionUpdateOne) ClearProductType() *SessionUpdateOne {
	_u.mutation.ClearProductType()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *SessionUpdateOne) SetComplexity(v string) *SessionUpdateOne {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableComplexity(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *SessionUpdateOne) ClearComplexity() *SessionUpdateOne {
	_u.mutation.ClearComplexity()
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *SessionUpdateOne) SetSkillID(v string) *SessionUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSkillID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// ClearSkillID clears the value of the "skill_id" field.
func (_u *SessionUpdateOne) ClearSkillID() *SessionUpdateOne {
	_u.mutation.ClearSkillID()
	return _u
}

// SetDocTier sets the "doc_tier" field.
func (_u *SessionUpdateOne) SetDocTier(v string) *SessionUpdateOne {
	_u.mutation.SetDocTier(v)
	return _u
}

// SetNillableDocTier sets the "doc_tier" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDocTier(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetDocTier(*v)
	}
	return _u
}

// ClearDocTier clears the value of the "doc_tier" field.
func (_u *SessionUpdateOne) ClearDocTier() *SessionUpdateOne {
	_u.mutation.ClearDocTier()
	return _u
}

// SetGraphState sets the "graph_state" field.
func (_u *SessionUpdateOne) SetGraphState(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetGraphState(v)
	return _u
}

// ClearGraphState clears the value of the "graph_state" field.
func (_u *SessionUpdateOne) ClearGraphState() *SessionUpdateOne {
	_u.mutation.ClearGraphState()
	return _u
}

// SetBuildStatus sets the "build_status" field.
func (_u *SessionUpdateOne) SetBuildStatus(v session.BuildStatus) *SessionUpdateOne {
	_u.mutation.SetBuildStatus(v)
	return _u
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBuildStatus(v *session.BuildStatus) *SessionUpdateOne {
	if v != nil {
		_u.SetBuildStatus(*v)
	}
	return _u
}

// SetBuildArtifacts sets the "build_artifacts" field.
func (_u *SessionUpdateOne) SetBuildArtifacts(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetBuildArtifacts(v)
	return _u
}

// ClearBuildArtifacts clears the value of the "build_artifacts" field.
func (_u *SessionUpdateOne) ClearBuildArtifacts() *SessionUpdateOne {
	_u.mutation.ClearBuildArtifacts()
	return _u
}

// SetAestheticScores sets the "aesthetic_scores" field.
func (_u *SessionUpdateOne) SetAestheticScores(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetAestheticScores(v)
	return _u
}

// ClearAestheticScores clears the value of the "aesthetic_scores" field.
func (_u *SessionUpdateOne) ClearAestheticScores() *SessionUpdateOne {
	_u.mutation.ClearAestheticScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *SessionUpdateOne) AddRunIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *SessionUpdateOne) AddRuns(v ...*Run) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// SetProductDocID sets the "product_doc" edge to the ProductDoc entity by ID.
func (_u *SessionUpdateOne) SetProductDocID(id string) *SessionUpdateOne {
	_u.mutation.SetProductDocID(id)
	return _u
}

// SetNillableProductDocID sets the "product_doc" edge to the ProductDoc entity by ID if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProductDocID(id *string) *SessionUpdateOne {
	if id != nil {
		_u = _u.SetProductDocID(*id)
	}
	return _u
}

// SetProductDoc sets the "product_doc" edge to the ProductDoc entity.
func (_u *SessionUpdateOne) SetProductDoc(v *ProductDoc) *SessionUpdateOne {
	return _u.SetProductDocID(v.ID)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *SessionUpdateOne) AddPageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *SessionUpdateOne) AddPages(v ...*Page) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the ProjectSnapshot entity by IDs.
func (_u *SessionUpdateOne) AddSnapshotIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the ProjectSnapshot entity.
func (_u *SessionUpdateOne) AddSnapshots(v ...*ProjectSnapshot) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddPlanIDs adds the "plans" edge to the Plan entity by IDs.
func (_u *SessionUpdateOne) AddPlanIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddPlanIDs(ids...)
	return _u
}

// AddPlans adds the "plans" edges to the Plan entity.
func (_u *SessionUpdateOne) AddPlans(v ...*Plan) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlanIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *SessionUpdateOne) AddEventIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *SessionUpdateOne) AddEvents(v ...*SessionEvent) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *SessionUpdateOne) ClearRuns() *SessionUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *SessionUpdateOne) RemoveRunIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *SessionUpdateOne) RemoveRuns(v ...*Run) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearProductDoc clears the "product_doc" edge to the ProductDoc entity.
func (_u *SessionUpdateOne) ClearProductDoc() *SessionUpdateOne {
	_u.mutation.ClearProductDoc()
	return _u
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *SessionUpdateOne) ClearPages() *SessionUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *SessionUpdateOne) RemovePageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *SessionUpdateOne) RemovePages(v ...*Page) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the ProjectSnapshot entity.
func (_u *SessionUpdateOne) ClearSnapshots() *SessionUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to ProjectSnapshot entities by IDs.
func (_u *SessionUpdateOne) RemoveSnapshotIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to ProjectSnapshot entities.
func (_u *SessionUpdateOne) RemoveSnapshots(v ...*ProjectSnapshot) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearPlans clears all "plans" edges to the Plan entity.
func (_u *SessionUpdateOne) ClearPlans() *SessionUpdateOne {
	_u.mutation.ClearPlans()
	return _u
}

// RemovePlanIDs removes the "plans" edge to Plan entities by IDs.
func (_u *SessionUpdateOne) RemovePlanIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemovePlanIDs(ids...)
	return _u
}

// RemovePlans removes "plans" edges to Plan entities.
func (_u *SessionUpdateOne) RemovePlans(v ...*Plan) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlanIDs(ids...)
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *SessionUpdateOne) ClearEvents() *SessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *SessionUpdateOne) RemoveEventIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *SessionUpdateOne) RemoveEvents(v ...*SessionEvent) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.BuildStatus(); ok {
		if err := session.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Session.build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(session.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(session.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(session.FieldComplexity, field.TypeString, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(session.FieldComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(session.FieldSkillID, field.TypeString, value)
	}
	if _u.mutation.SkillIDCleared() {
		_spec.ClearField(session.FieldSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.DocTier(); ok {
		_spec.SetField(session.FieldDocTier, field.TypeString, value)
	}
	if _u.mutation.DocTierCleared() {
		_spec.ClearField(session.FieldDocTier, field.TypeString)
	}
	if value, ok := _u.mutation.GraphState(); ok {
		_spec.SetField(session.FieldGraphState, field.TypeJSON, value)
	}
	if _u.mutation.GraphStateCleared() {
		_spec.ClearField(session.FieldGraphState, field.TypeJSON)
	}
	if value, ok := _u.mutation.BuildStatus(); ok {
		_spec.SetField(session.FieldBuildStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuildArtifacts(); ok {
		_spec.SetField(session.FieldBuildArtifacts, field.TypeJSON, value)
	}
	if _u.mutation.BuildArtifactsCleared() {
		_spec.ClearField(session.FieldBuildArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.AestheticScores(); ok {
		_spec.SetField(session.FieldAestheticScores, field.TypeJSON, value)
	}
	if _u.mutation.AestheticScoresCleared() {
		_spec.ClearField(session.FieldAestheticScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductDocCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductDocIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PlansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlansIDs(); len(nodes) > 0 && !_u.mutation.PlansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlansIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
