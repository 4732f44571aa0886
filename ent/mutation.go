// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/predicate"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/sessionevent"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePage              = "Page"
	TypePageVersion       = "PageVersion"
	TypePlan              = "Plan"
	TypeProductDoc        = "ProductDoc"
	TypeProductDocHistory = "ProductDocHistory"
	TypeProjectSnapshot   = "ProjectSnapshot"
	TypeRun               = "Run"
	TypeSession           = "Session"
	TypeSessionEvent      = "SessionEvent"
	TypeTask              = "Task"
)

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	slug               *string
	title              *string
	description        *string
	order_index        *int
	addorder_index     *int
	current_version_id *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	versions           map[string]struct{}
	removedversions    map[string]struct{}
	clearedversions    bool
	done               bool
	oldValue           func(context.Context) (*Page, error)
	predicates         []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id string) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Page entities.
func (m *PageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PageMutation) ResetSessionID() {
	m.session = nil
}

// SetSlug sets the "slug" field.
func (m *PageMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PageMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *PageMutation) ResetSlug() {
	m.slug = nil
}

// SetTitle sets the "title" field.
func (m *PageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PageMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *PageMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PageMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PageMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[page.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PageMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[page.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PageMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, page.FieldDescription)
}

// SetOrderIndex sets the "order_index" field.
func (m *PageMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *PageMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *PageMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *PageMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *PageMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *PageMutation) SetCurrentVersionID(s string) {
	m.current_version_id = &s
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *PageMutation) CurrentVersionID() (r string, exists bool) {
	v := m.current_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldCurrentVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *PageMutation) ClearCurrentVersionID() {
	m.current_version_id = nil
	m.clearedFields[page.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *PageMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[page.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *PageMutation) ResetCurrentVersionID() {
	m.current_version_id = nil
	delete(m.clearedFields, page.FieldCurrentVersionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *PageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[page.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *PageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddVersionIDs adds the "versions" edge to the PageVersion entity by ids.
func (m *PageMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the PageVersion entity.
func (m *PageMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the PageVersion entity was cleared.
func (m *PageMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the PageVersion entity by IDs.
func (m *PageMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the PageVersion entity.
func (m *PageMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *PageMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *PageMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, page.FieldSessionID)
	}
	if m.slug != nil {
		fields = append(fields, page.FieldSlug)
	}
	if m.title != nil {
		fields = append(fields, page.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, page.FieldDescription)
	}
	if m.order_index != nil {
		fields = append(fields, page.FieldOrderIndex)
	}
	if m.current_version_id != nil {
		fields = append(fields, page.FieldCurrentVersionID)
	}
	if m.created_at != nil {
		fields = append(fields, page.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, page.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldSessionID:
		return m.SessionID()
	case page.FieldSlug:
		return m.Slug()
	case page.FieldTitle:
		return m.Title()
	case page.FieldDescription:
		return m.Description()
	case page.FieldOrderIndex:
		return m.OrderIndex()
	case page.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case page.FieldCreatedAt:
		return m.CreatedAt()
	case page.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldSessionID:
		return m.OldSessionID(ctx)
	case page.FieldSlug:
		return m.OldSlug(ctx)
	case page.FieldTitle:
		return m.OldTitle(ctx)
	case page.FieldDescription:
		return m.OldDescription(ctx)
	case page.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case page.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case page.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case page.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case page.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case page.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case page.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case page.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case page.FieldCurrentVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case page.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case page.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, page.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case page.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case page.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(page.FieldDescription) {
		fields = append(fields, page.FieldDescription)
	}
	if m.FieldCleared(page.FieldCurrentVersionID) {
		fields = append(fields, page.FieldCurrentVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	switch name {
	case page.FieldDescription:
		m.ClearDescription()
		return nil
	case page.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	}
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldSessionID:
		m.ResetSessionID()
		return nil
	case page.FieldSlug:
		m.ResetSlug()
		return nil
	case page.FieldTitle:
		m.ResetTitle()
		return nil
	case page.FieldDescription:
		m.ResetDescription()
		return nil
	case page.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case page.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case page.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case page.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, page.EdgeSession)
	}
	if m.versions != nil {
		edges = append(edges, page.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case page.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedversions != nil {
		edges = append(edges, page.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, page.EdgeSession)
	}
	if m.clearedversions {
		edges = append(edges, page.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	switch name {
	case page.EdgeSession:
		return m.clearedsession
	case page.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	switch name {
	case page.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	switch name {
	case page.EdgeSession:
		m.ResetSession()
		return nil
	case page.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Page edge %s", name)
}

// PageVersionMutation represents an operation that mutates the PageVersion nodes in the graph.
type PageVersionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	version           *int
	addversion        *int
	html              *string
	description       *string
	source            *pageversion.Source
	is_pinned         *bool
	is_released       *bool
	payload_pruned_at *time.Time
	released_at       *time.Time
	fallback_used     *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	page              *string
	clearedpage       bool
	done              bool
	oldValue          func(context.Context) (*PageVersion, error)
	predicates        []predicate.PageVersion
}

var _ ent.Mutation = (*PageVersionMutation)(nil)

// pageversionOption allows management of the mutation configuration using functional options.
type pageversionOption func(*PageVersionMutation)

// newPageVersionMutation creates new mutation for the PageVersion entity.
func newPageVersionMutation(c config, op Op, opts ...pageversionOption) *PageVersionMutation {
	m := &PageVersionMutation{
		config:        c,
		op:            op,
		typ:           TypePageVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageVersionID sets the ID field of the mutation.
func withPageVersionID(id string) pageversionOption {
	return func(m *PageVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *PageVersion
		)
		m.oldValue = func(ctx context.Context) (*PageVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PageVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPageVersion sets the old PageVersion of the mutation.
func withPageVersion(node *PageVersion) pageversionOption {
	return func(m *PageVersionMutation) {
		m.oldValue = func(context.Context) (*PageVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PageVersion entities.
func (m *PageVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PageVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *PageVersionMutation) SetPageID(s string) {
	m.page = &s
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *PageVersionMutation) PageID() (r string, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldPageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *PageVersionMutation) ResetPageID() {
	m.page = nil
}

// SetVersion sets the "version" field.
func (m *PageVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PageVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PageVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PageVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PageVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetHTML sets the "html" field.
func (m *PageVersionMutation) SetHTML(s string) {
	m.html = &s
}

// HTML returns the value of the "html" field in the mutation.
func (m *PageVersionMutation) HTML() (r string, exists bool) {
	v := m.html
	if v == nil {
		return
	}
	return *v, true
}

// OldHTML returns the old "html" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldHTML(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTML: %w", err)
	}
	return oldValue.HTML, nil
}

// ClearHTML clears the value of the "html" field.
func (m *PageVersionMutation) ClearHTML() {
	m.html = nil
	m.clearedFields[pageversion.FieldHTML] = struct{}{}
}

// HTMLCleared returns if the "html" field was cleared in this mutation.
func (m *PageVersionMutation) HTMLCleared() bool {
	_, ok := m.clearedFields[pageversion.FieldHTML]
	return ok
}

// ResetHTML resets all changes to the "html" field.
func (m *PageVersionMutation) ResetHTML() {
	m.html = nil
	delete(m.clearedFields, pageversion.FieldHTML)
}

// SetDescription sets the "description" field.
func (m *PageVersionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PageVersionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PageVersionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pageversion.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PageVersionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pageversion.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PageVersionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pageversion.FieldDescription)
}

// SetSource sets the "source" field.
func (m *PageVersionMutation) SetSource(pa pageversion.Source) {
	m.source = &pa
}

// Source returns the value of the "source" field in the mutation.
func (m *PageVersionMutation) Source() (r pageversion.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldSource(ctx context.Context) (v pageversion.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PageVersionMutation) ResetSource() {
	m.source = nil
}

// SetIsPinned sets the "is_pinned" field.
func (m *PageVersionMutation) SetIsPinned(b bool) {
	m.is_pinned = &b
}

// IsPinned returns the value of the "is_pinned" field in the mutation.
func (m *PageVersionMutation) IsPinned() (r bool, exists bool) {
	v := m.is_pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPinned returns the old "is_pinned" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldIsPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPinned: %w", err)
	}
	return oldValue.IsPinned, nil
}

// ResetIsPinned resets all changes to the "is_pinned" field.
func (m *PageVersionMutation) ResetIsPinned() {
	m.is_pinned = nil
}

// SetIsReleased sets the "is_released" field.
func (m *PageVersionMutation) SetIsReleased(b bool) {
	m.is_released = &b
}

// IsReleased returns the value of the "is_released" field in the mutation.
func (m *PageVersionMutation) IsReleased() (r bool, exists bool) {
	v := m.is_released
	if v == nil {
		return
	}
	return *v, true
}

// OldIsReleased returns the old "is_released" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldIsReleased(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsReleased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsReleased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsReleased: %w", err)
	}
	return oldValue.IsReleased, nil
}

// ResetIsReleased resets all changes to the "is_released" field.
func (m *PageVersionMutation) ResetIsReleased() {
	m.is_released = nil
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (m *PageVersionMutation) SetPayloadPrunedAt(t time.Time) {
	m.payload_pruned_at = &t
}

// PayloadPrunedAt returns the value of the "payload_pruned_at" field in the mutation.
func (m *PageVersionMutation) PayloadPrunedAt() (r time.Time, exists bool) {
	v := m.payload_pruned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadPrunedAt returns the old "payload_pruned_at" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldPayloadPrunedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadPrunedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadPrunedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadPrunedAt: %w", err)
	}
	return oldValue.PayloadPrunedAt, nil
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (m *PageVersionMutation) ClearPayloadPrunedAt() {
	m.payload_pruned_at = nil
	m.clearedFields[pageversion.FieldPayloadPrunedAt] = struct{}{}
}

// PayloadPrunedAtCleared returns if the "payload_pruned_at" field was cleared in this mutation.
func (m *PageVersionMutation) PayloadPrunedAtCleared() bool {
	_, ok := m.clearedFields[pageversion.FieldPayloadPrunedAt]
	return ok
}

// ResetPayloadPrunedAt resets all changes to the "payload_pruned_at" field.
func (m *PageVersionMutation) ResetPayloadPrunedAt() {
	m.payload_pruned_at = nil
	delete(m.clearedFields, pageversion.FieldPayloadPrunedAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *PageVersionMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *PageVersionMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *PageVersionMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[pageversion.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *PageVersionMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[pageversion.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *PageVersionMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, pageversion.FieldReleasedAt)
}

// SetFallbackUsed sets the "fallback_used" field.
func (m *PageVersionMutation) SetFallbackUsed(b bool) {
	m.fallback_used = &b
}

// FallbackUsed returns the value of the "fallback_used" field in the mutation.
func (m *PageVersionMutation) FallbackUsed() (r bool, exists bool) {
	v := m.fallback_used
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackUsed returns the old "fallback_used" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldFallbackUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackUsed: %w", err)
	}
	return oldValue.FallbackUsed, nil
}

// ResetFallbackUsed resets all changes to the "fallback_used" field.
func (m *PageVersionMutation) ResetFallbackUsed() {
	m.fallback_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PageVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PageVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PageVersion entity.
// If the PageVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PageVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPage clears the "page" edge to the Page entity.
func (m *PageVersionMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[pageversion.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the Page entity was cleared.
func (m *PageVersionMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *PageVersionMutation) PageIDs() (ids []string) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *PageVersionMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// Where appends a list predicates to the PageVersionMutation builder.
func (m *PageVersionMutation) Where(ps ...predicate.PageVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PageVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PageVersion).
func (m *PageVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageVersionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.page != nil {
		fields = append(fields, pageversion.FieldPageID)
	}
	if m.version != nil {
		fields = append(fields, pageversion.FieldVersion)
	}
	if m.html != nil {
		fields = append(fields, pageversion.FieldHTML)
	}
	if m.description != nil {
		fields = append(fields, pageversion.FieldDescription)
	}
	if m.source != nil {
		fields = append(fields, pageversion.FieldSource)
	}
	if m.is_pinned != nil {
		fields = append(fields, pageversion.FieldIsPinned)
	}
	if m.is_released != nil {
		fields = append(fields, pageversion.FieldIsReleased)
	}
	if m.payload_pruned_at != nil {
		fields = append(fields, pageversion.FieldPayloadPrunedAt)
	}
	if m.released_at != nil {
		fields = append(fields, pageversion.FieldReleasedAt)
	}
	if m.fallback_used != nil {
		fields = append(fields, pageversion.FieldFallbackUsed)
	}
	if m.created_at != nil {
		fields = append(fields, pageversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pageversion.FieldPageID:
		return m.PageID()
	case pageversion.FieldVersion:
		return m.Version()
	case pageversion.FieldHTML:
		return m.HTML()
	case pageversion.FieldDescription:
		return m.Description()
	case pageversion.FieldSource:
		return m.Source()
	case pageversion.FieldIsPinned:
		return m.IsPinned()
	case pageversion.FieldIsReleased:
		return m.IsReleased()
	case pageversion.FieldPayloadPrunedAt:
		return m.PayloadPrunedAt()
	case pageversion.FieldReleasedAt:
		return m.ReleasedAt()
	case pageversion.FieldFallbackUsed:
		return m.FallbackUsed()
	case pageversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pageversion.FieldPageID:
		return m.OldPageID(ctx)
	case pageversion.FieldVersion:
		return m.OldVersion(ctx)
	case pageversion.FieldHTML:
		return m.OldHTML(ctx)
	case pageversion.FieldDescription:
		return m.OldDescription(ctx)
	case pageversion.FieldSource:
		return m.OldSource(ctx)
	case pageversion.FieldIsPinned:
		return m.OldIsPinned(ctx)
	case pageversion.FieldIsReleased:
		return m.OldIsReleased(ctx)
	case pageversion.FieldPayloadPrunedAt:
		return m.OldPayloadPrunedAt(ctx)
	case pageversion.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case pageversion.FieldFallbackUsed:
		return m.OldFallbackUsed(ctx)
	case pageversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PageVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pageversion.FieldPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case pageversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case pageversion.FieldHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTML(v)
		return nil
	case pageversion.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pageversion.FieldSource:
		v, ok := value.(pageversion.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case pageversion.FieldIsPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPinned(v)
		return nil
	case pageversion.FieldIsReleased:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsReleased(v)
		return nil
	case pageversion.FieldPayloadPrunedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadPrunedAt(v)
		return nil
	case pageversion.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case pageversion.FieldFallbackUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackUsed(v)
		return nil
	case pageversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PageVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, pageversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pageversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pageversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PageVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pageversion.FieldHTML) {
		fields = append(fields, pageversion.FieldHTML)
	}
	if m.FieldCleared(pageversion.FieldDescription) {
		fields = append(fields, pageversion.FieldDescription)
	}
	if m.FieldCleared(pageversion.FieldPayloadPrunedAt) {
		fields = append(fields, pageversion.FieldPayloadPrunedAt)
	}
	if m.FieldCleared(pageversion.FieldReleasedAt) {
		fields = append(fields, pageversion.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageVersionMutation) ClearField(name string) error {
	switch name {
	case pageversion.FieldHTML:
		m.ClearHTML()
		return nil
	case pageversion.FieldDescription:
		m.ClearDescription()
		return nil
	case pageversion.FieldPayloadPrunedAt:
		m.ClearPayloadPrunedAt()
		return nil
	case pageversion.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown PageVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageVersionMutation) ResetField(name string) error {
	switch name {
	case pageversion.FieldPageID:
		m.ResetPageID()
		return nil
	case pageversion.FieldVersion:
		m.ResetVersion()
		return nil
	case pageversion.FieldHTML:
		m.ResetHTML()
		return nil
	case pageversion.FieldDescription:
		m.ResetDescription()
		return nil
	case pageversion.FieldSource:
		m.ResetSource()
		return nil
	case pageversion.FieldIsPinned:
		m.ResetIsPinned()
		return nil
	case pageversion.FieldIsReleased:
		m.ResetIsReleased()
		return nil
	case pageversion.FieldPayloadPrunedAt:
		m.ResetPayloadPrunedAt()
		return nil
	case pageversion.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case pageversion.FieldFallbackUsed:
		m.ResetFallbackUsed()
		return nil
	case pageversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PageVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.page != nil {
		edges = append(edges, pageversion.EdgePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pageversion.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpage {
		edges = append(edges, pageversion.EdgePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case pageversion.EdgePage:
		return m.clearedpage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageVersionMutation) ClearEdge(name string) error {
	switch name {
	case pageversion.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown PageVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageVersionMutation) ResetEdge(name string) error {
	switch name {
	case pageversion.EdgePage:
		m.ResetPage()
		return nil
	}
	return fmt.Errorf("unknown PageVersion edge %s", name)
}

// PlanMutation represents an operation that mutates the Plan nodes in the graph.
type PlanMutation struct {
	config
	op             Op
	typ            string
	id             *string
	goal           *string
	status         *plan.Status
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	tasks          map[string]struct{}
	removedtasks   map[string]struct{}
	clearedtasks   bool
	done           bool
	oldValue       func(context.Context) (*Plan, error)
	predicates     []predicate.Plan
}

var _ ent.Mutation = (*PlanMutation)(nil)

// planOption allows management of the mutation configuration using functional options.
type planOption func(*PlanMutation)

// newPlanMutation creates new mutation for the Plan entity.
func newPlanMutation(c config, op Op, opts ...planOption) *PlanMutation {
	m := &PlanMutation{
		config:        c,
		op:            op,
		typ:           TypePlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanID sets the ID field of the mutation.
func withPlanID(id string) planOption {
	return func(m *PlanMutation) {
		var (
			err   error
			once  sync.Once
			value *Plan
		)
		m.oldValue = func(ctx context.Context) (*Plan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlan sets the old Plan of the mutation.
func withPlan(node *Plan) planOption {
	return func(m *PlanMutation) {
		m.oldValue = func(context.Context) (*Plan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plan entities.
func (m *PlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PlanMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PlanMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PlanMutation) ResetSessionID() {
	m.session = nil
}

// SetGoal sets the "goal" field.
func (m *PlanMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *PlanMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *PlanMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *PlanMutation) SetStatus(pl plan.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanMutation) Status() (r plan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldStatus(ctx context.Context) (v plan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Plan entity.
// If the Plan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *PlanMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[plan.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *PlanMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *PlanMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *PlanMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *PlanMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *PlanMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *PlanMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *PlanMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *PlanMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *PlanMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *PlanMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the PlanMutation builder.
func (m *PlanMutation) Where(ps ...predicate.Plan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plan).
func (m *PlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, plan.FieldSessionID)
	}
	if m.goal != nil {
		fields = append(fields, plan.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, plan.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, plan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plan.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plan.FieldSessionID:
		return m.SessionID()
	case plan.FieldGoal:
		return m.Goal()
	case plan.FieldStatus:
		return m.Status()
	case plan.FieldCreatedAt:
		return m.CreatedAt()
	case plan.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plan.FieldSessionID:
		return m.OldSessionID(ctx)
	case plan.FieldGoal:
		return m.OldGoal(ctx)
	case plan.FieldStatus:
		return m.OldStatus(ctx)
	case plan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Plan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plan.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case plan.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case plan.FieldStatus:
		v, ok := value.(plan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Plan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Plan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanMutation) ResetField(name string) error {
	switch name {
	case plan.FieldSessionID:
		m.ResetSessionID()
		return nil
	case plan.FieldGoal:
		m.ResetGoal()
		return nil
	case plan.FieldStatus:
		m.ResetStatus()
		return nil
	case plan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Plan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, plan.EdgeSession)
	}
	if m.tasks != nil {
		edges = append(edges, plan.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case plan.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtasks != nil {
		edges = append(edges, plan.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plan.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, plan.EdgeSession)
	}
	if m.clearedtasks {
		edges = append(edges, plan.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanMutation) EdgeCleared(name string) bool {
	switch name {
	case plan.EdgeSession:
		return m.clearedsession
	case plan.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanMutation) ClearEdge(name string) error {
	switch name {
	case plan.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Plan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanMutation) ResetEdge(name string) error {
	switch name {
	case plan.EdgeSession:
		m.ResetSession()
		return nil
	case plan.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Plan edge %s", name)
}

// ProductDocMutation represents an operation that mutates the ProductDoc nodes in the graph.
type ProductDocMutation struct {
	config
	op                               Op
	typ                              string
	id                               *string
	content                          *string
	structured                       *map[string]interface{}
	version                          *int
	addversion                       *int
	status                           *productdoc.Status
	pending_regeneration_pages       *[]string
	appendpending_regeneration_pages []string
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	session                          *string
	clearedsession                   bool
	histories                        map[string]struct{}
	removedhistories                 map[string]struct{}
	clearedhistories                 bool
	done                             bool
	oldValue                         func(context.Context) (*ProductDoc, error)
	predicates                       []predicate.ProductDoc
}

var _ ent.Mutation = (*ProductDocMutation)(nil)

// productdocOption allows management of the mutation configuration using functional options.
type productdocOption func(*ProductDocMutation)

// newProductDocMutation creates new mutation for the ProductDoc entity.
func newProductDocMutation(c config, op Op, opts ...productdocOption) *ProductDocMutation {
	m := &ProductDocMutation{
		config:        c,
		op:            op,
		typ:           TypeProductDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductDocID sets the ID field of the mutation.
func withProductDocID(id string) productdocOption {
	return func(m *ProductDocMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductDoc
		)
		m.oldValue = func(ctx context.Context) (*ProductDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductDoc sets the old ProductDoc of the mutation.
func withProductDoc(node *ProductDoc) productdocOption {
	return func(m *ProductDocMutation) {
		m.oldValue = func(context.Context) (*ProductDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductDoc entities.
func (m *ProductDocMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductDocMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductDocMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProductDocMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProductDocMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProductDocMutation) ResetSessionID() {
	m.session = nil
}

// SetContent sets the "content" field.
func (m *ProductDocMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ProductDocMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ProductDocMutation) ResetContent() {
	m.content = nil
}

// SetStructured sets the "structured" field.
func (m *ProductDocMutation) SetStructured(value map[string]interface{}) {
	m.structured = &value
}

// Structured returns the value of the "structured" field in the mutation.
func (m *ProductDocMutation) Structured() (r map[string]interface{}, exists bool) {
	v := m.structured
	if v == nil {
		return
	}
	return *v, true
}

// OldStructured returns the old "structured" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldStructured(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructured: %w", err)
	}
	return oldValue.Structured, nil
}

// ClearStructured clears the value of the "structured" field.
func (m *ProductDocMutation) ClearStructured() {
	m.structured = nil
	m.clearedFields[productdoc.FieldStructured] = struct{}{}
}

// StructuredCleared returns if the "structured" field was cleared in this mutation.
func (m *ProductDocMutation) StructuredCleared() bool {
	_, ok := m.clearedFields[productdoc.FieldStructured]
	return ok
}

// ResetStructured resets all changes to the "structured" field.
func (m *ProductDocMutation) ResetStructured() {
	m.structured = nil
	delete(m.clearedFields, productdoc.FieldStructured)
}

// SetVersion sets the "version" field.
func (m *ProductDocMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProductDocMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProductDocMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProductDocMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProductDocMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *ProductDocMutation) SetStatus(pr productdoc.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProductDocMutation) Status() (r productdoc.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldStatus(ctx context.Context) (v productdoc.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProductDocMutation) ResetStatus() {
	m.status = nil
}

// SetPendingRegenerationPages sets the "pending_regeneration_pages" field.
func (m *ProductDocMutation) SetPendingRegenerationPages(s []string) {
	m.pending_regeneration_pages = &s
	m.appendpending_regeneration_pages = nil
}

// PendingRegenerationPages returns the value of the "pending_regeneration_pages" field in the mutation.
func (m *ProductDocMutation) PendingRegenerationPages() (r []string, exists bool) {
	v := m.pending_regeneration_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingRegenerationPages returns the old "pending_regeneration_pages" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldPendingRegenerationPages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingRegenerationPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingRegenerationPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingRegenerationPages: %w", err)
	}
	return oldValue.PendingRegenerationPages, nil
}

// AppendPendingRegenerationPages adds s to the "pending_regeneration_pages" field.
func (m *ProductDocMutation) AppendPendingRegenerationPages(s []string) {
	m.appendpending_regeneration_pages = append(m.appendpending_regeneration_pages, s...)
}

// AppendedPendingRegenerationPages returns the list of values that were appended to the "pending_regeneration_pages" field in this mutation.
func (m *ProductDocMutation) AppendedPendingRegenerationPages() ([]string, bool) {
	if len(m.appendpending_regeneration_pages) == 0 {
		return nil, false
	}
	return m.appendpending_regeneration_pages, true
}

// ClearPendingRegenerationPages clears the value of the "pending_regeneration_pages" field.
func (m *ProductDocMutation) ClearPendingRegenerationPages() {
	m.pending_regeneration_pages = nil
	m.appendpending_regeneration_pages = nil
	m.clearedFields[productdoc.FieldPendingRegenerationPages] = struct{}{}
}

// PendingRegenerationPagesCleared returns if the "pending_regeneration_pages" field was cleared in this mutation.
func (m *ProductDocMutation) PendingRegenerationPagesCleared() bool {
	_, ok := m.clearedFields[productdoc.FieldPendingRegenerationPages]
	return ok
}

// ResetPendingRegenerationPages resets all changes to the "pending_regeneration_pages" field.
func (m *ProductDocMutation) ResetPendingRegenerationPages() {
	m.pending_regeneration_pages = nil
	m.appendpending_regeneration_pages = nil
	delete(m.clearedFields, productdoc.FieldPendingRegenerationPages)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductDocMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductDocMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProductDoc entity.
// If the ProductDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductDocMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ProductDocMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[productdoc.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ProductDocMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ProductDocMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ProductDocMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddHistoryIDs adds the "histories" edge to the ProductDocHistory entity by ids.
func (m *ProductDocMutation) AddHistoryIDs(ids ...string) {
	if m.histories == nil {
		m.histories = make(map[string]struct{})
	}
	for i := range ids {
		m.histories[ids[i]] = struct{}{}
	}
}

// ClearHistories clears the "histories" edge to the ProductDocHistory entity.
func (m *ProductDocMutation) ClearHistories() {
	m.clearedhistories = true
}

// HistoriesCleared reports if the "histories" edge to the ProductDocHistory entity was cleared.
func (m *ProductDocMutation) HistoriesCleared() bool {
	return m.clearedhistories
}

// RemoveHistoryIDs removes the "histories" edge to the ProductDocHistory entity by IDs.
func (m *ProductDocMutation) RemoveHistoryIDs(ids ...string) {
	if m.removedhistories == nil {
		m.removedhistories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.histories, ids[i])
		m.removedhistories[ids[i]] = struct{}{}
	}
}

// RemovedHistories returns the removed IDs of the "histories" edge to the ProductDocHistory entity.
func (m *ProductDocMutation) RemovedHistoriesIDs() (ids []string) {
	for id := range m.removedhistories {
		ids = append(ids, id)
	}
	return
}

// HistoriesIDs returns the "histories" edge IDs in the mutation.
func (m *ProductDocMutation) HistoriesIDs() (ids []string) {
	for id := range m.histories {
		ids = append(ids, id)
	}
	return
}

// ResetHistories resets all changes to the "histories" edge.
func (m *ProductDocMutation) ResetHistories() {
	m.histories = nil
	m.clearedhistories = false
	m.removedhistories = nil
}

// Where appends a list predicates to the ProductDocMutation builder.
func (m *ProductDocMutation) Where(ps ...predicate.ProductDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductDoc).
func (m *ProductDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductDocMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, productdoc.FieldSessionID)
	}
	if m.content != nil {
		fields = append(fields, productdoc.FieldContent)
	}
	if m.structured != nil {
		fields = append(fields, productdoc.FieldStructured)
	}
	if m.version != nil {
		fields = append(fields, productdoc.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, productdoc.FieldStatus)
	}
	if m.pending_regeneration_pages != nil {
		fields = append(fields, productdoc.FieldPendingRegenerationPages)
	}
	if m.created_at != nil {
		fields = append(fields, productdoc.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, productdoc.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productdoc.FieldSessionID:
		return m.SessionID()
	case productdoc.FieldContent:
		return m.Content()
	case productdoc.FieldStructured:
		return m.Structured()
	case productdoc.FieldVersion:
		return m.Version()
	case productdoc.FieldStatus:
		return m.Status()
	case productdoc.FieldPendingRegenerationPages:
		return m.PendingRegenerationPages()
	case productdoc.FieldCreatedAt:
		return m.CreatedAt()
	case productdoc.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productdoc.FieldSessionID:
		return m.OldSessionID(ctx)
	case productdoc.FieldContent:
		return m.OldContent(ctx)
	case productdoc.FieldStructured:
		return m.OldStructured(ctx)
	case productdoc.FieldVersion:
		return m.OldVersion(ctx)
	case productdoc.FieldStatus:
		return m.OldStatus(ctx)
	case productdoc.FieldPendingRegenerationPages:
		return m.OldPendingRegenerationPages(ctx)
	case productdoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case productdoc.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productdoc.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case productdoc.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case productdoc.FieldStructured:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructured(v)
		return nil
	case productdoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case productdoc.FieldStatus:
		v, ok := value.(productdoc.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case productdoc.FieldPendingRegenerationPages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingRegenerationPages(v)
		return nil
	case productdoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case productdoc.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductDocMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, productdoc.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case productdoc.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case productdoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProductDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductDocMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productdoc.FieldStructured) {
		fields = append(fields, productdoc.FieldStructured)
	}
	if m.FieldCleared(productdoc.FieldPendingRegenerationPages) {
		fields = append(fields, productdoc.FieldPendingRegenerationPages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductDocMutation) ClearField(name string) error {
	switch name {
	case productdoc.FieldStructured:
		m.ClearStructured()
		return nil
	case productdoc.FieldPendingRegenerationPages:
		m.ClearPendingRegenerationPages()
		return nil
	}
	return fmt.Errorf("unknown ProductDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductDocMutation) ResetField(name string) error {
	switch name {
	case productdoc.FieldSessionID:
		m.ResetSessionID()
		return nil
	case productdoc.FieldContent:
		m.ResetContent()
		return nil
	case productdoc.FieldStructured:
		m.ResetStructured()
		return nil
	case productdoc.FieldVersion:
		m.ResetVersion()
		return nil
	case productdoc.FieldStatus:
		m.ResetStatus()
		return nil
	case productdoc.FieldPendingRegenerationPages:
		m.ResetPendingRegenerationPages()
		return nil
	case productdoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case productdoc.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, productdoc.EdgeSession)
	}
	if m.histories != nil {
		edges = append(edges, productdoc.EdgeHistories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductDocMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case productdoc.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case productdoc.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.histories))
		for id := range m.histories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhistories != nil {
		edges = append(edges, productdoc.EdgeHistories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductDocMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case productdoc.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.removedhistories))
		for id := range m.removedhistories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, productdoc.EdgeSession)
	}
	if m.clearedhistories {
		edges = append(edges, productdoc.EdgeHistories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductDocMutation) EdgeCleared(name string) bool {
	switch name {
	case productdoc.EdgeSession:
		return m.clearedsession
	case productdoc.EdgeHistories:
		return m.clearedhistories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductDocMutation) ClearEdge(name string) error {
	switch name {
	case productdoc.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ProductDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductDocMutation) ResetEdge(name string) error {
	switch name {
	case productdoc.EdgeSession:
		m.ResetSession()
		return nil
	case productdoc.EdgeHistories:
		m.ResetHistories()
		return nil
	}
	return fmt.Errorf("unknown ProductDoc edge %s", name)
}

// ProductDocHistoryMutation represents an operation that mutates the ProductDocHistory nodes in the graph.
type ProductDocHistoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	version              *int
	addversion           *int
	content              *string
	structured           *map[string]interface{}
	source               *productdochistory.Source
	change_summary       *string
	affected_pages       *[]string
	appendaffected_pages []string
	is_pinned            *bool
	is_released          *bool
	payload_pruned_at    *time.Time
	released_at          *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	doc                  *string
	cleareddoc           bool
	done                 bool
	oldValue             func(context.Context) (*ProductDocHistory, error)
	predicates           []predicate.ProductDocHistory
}

var _ ent.Mutation = (*ProductDocHistoryMutation)(nil)

// productdochistoryOption allows management of the mutation configuration using functional options.
type productdochistoryOption func(*ProductDocHistoryMutation)

// newProductDocHistoryMutation creates new mutation for the ProductDocHistory entity.
func newProductDocHistoryMutation(c config, op Op, opts ...productdochistoryOption) *ProductDocHistoryMutation {
	m := &ProductDocHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeProductDocHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductDocHistoryID sets the ID field of the mutation.
func withProductDocHistoryID(id string) productdochistoryOption {
	return func(m *ProductDocHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductDocHistory
		)
		m.oldValue = func(ctx context.Context) (*ProductDocHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductDocHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductDocHistory sets the old ProductDocHistory of the mutation.
func withProductDocHistory(node *ProductDocHistory) productdochistoryOption {
	return func(m *ProductDocHistoryMutation) {
		m.oldValue = func(context.Context) (*ProductDocHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductDocHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductDocHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductDocHistory entities.
func (m *ProductDocHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductDocHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductDocHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductDocHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *ProductDocHistoryMutation) SetDocID(s string) {
	m.doc = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *ProductDocHistoryMutation) DocID() (r string, exists bool) {
	v := m.doc
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *ProductDocHistoryMutation) ResetDocID() {
	m.doc = nil
}

// SetVersion sets the "version" field.
func (m *ProductDocHistoryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProductDocHistoryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProductDocHistoryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProductDocHistoryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProductDocHistoryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetContent sets the "content" field.
func (m *ProductDocHistoryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ProductDocHistoryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *ProductDocHistoryMutation) ClearContent() {
	m.content = nil
	m.clearedFields[productdochistory.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) ContentCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *ProductDocHistoryMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, productdochistory.FieldContent)
}

// SetStructured sets the "structured" field.
func (m *ProductDocHistoryMutation) SetStructured(value map[string]interface{}) {
	m.structured = &value
}

// Structured returns the value of the "structured" field in the mutation.
func (m *ProductDocHistoryMutation) Structured() (r map[string]interface{}, exists bool) {
	v := m.structured
	if v == nil {
		return
	}
	return *v, true
}

// OldStructured returns the old "structured" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldStructured(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructured: %w", err)
	}
	return oldValue.Structured, nil
}

// ClearStructured clears the value of the "structured" field.
func (m *ProductDocHistoryMutation) ClearStructured() {
	m.structured = nil
	m.clearedFields[productdochistory.FieldStructured] = struct{}{}
}

// StructuredCleared returns if the "structured" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) StructuredCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldStructured]
	return ok
}

// ResetStructured resets all changes to the "structured" field.
func (m *ProductDocHistoryMutation) ResetStructured() {
	m.structured = nil
	delete(m.clearedFields, productdochistory.FieldStructured)
}

// SetSource sets the "source" field.
func (m *ProductDocHistoryMutation) SetSource(pr productdochistory.Source) {
	m.source = &pr
}

// Source returns the value of the "source" field in the mutation.
func (m *ProductDocHistoryMutation) Source() (r productdochistory.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldSource(ctx context.Context) (v productdochistory.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ProductDocHistoryMutation) ResetSource() {
	m.source = nil
}

// SetChangeSummary sets the "change_summary" field.
func (m *ProductDocHistoryMutation) SetChangeSummary(s string) {
	m.change_summary = &s
}

// ChangeSummary returns the value of the "change_summary" field in the mutation.
func (m *ProductDocHistoryMutation) ChangeSummary() (r string, exists bool) {
	v := m.change_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeSummary returns the old "change_summary" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldChangeSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeSummary: %w", err)
	}
	return oldValue.ChangeSummary, nil
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (m *ProductDocHistoryMutation) ClearChangeSummary() {
	m.change_summary = nil
	m.clearedFields[productdochistory.FieldChangeSummary] = struct{}{}
}

// ChangeSummaryCleared returns if the "change_summary" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) ChangeSummaryCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldChangeSummary]
	return ok
}

// ResetChangeSummary resets all changes to the "change_summary" field.
func (m *ProductDocHistoryMutation) ResetChangeSummary() {
	m.change_summary = nil
	delete(m.clearedFields, productdochistory.FieldChangeSummary)
}

// SetAffectedPages sets the "affected_pages" field.
func (m *ProductDocHistoryMutation) SetAffectedPages(s []string) {
	m.affected_pages = &s
	m.appendaffected_pages = nil
}

// AffectedPages returns the value of the "affected_pages" field in the mutation.
func (m *ProductDocHistoryMutation) AffectedPages() (r []string, exists bool) {
	v := m.affected_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedPages returns the old "affected_pages" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldAffectedPages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedPages: %w", err)
	}
	return oldValue.AffectedPages, nil
}

// AppendAffectedPages adds s to the "affected_pages" field.
func (m *ProductDocHistoryMutation) AppendAffectedPages(s []string) {
	m.appendaffected_pages = append(m.appendaffected_pages, s...)
}

// AppendedAffectedPages returns the list of values that were appended to the "affected_pages" field in this mutation.
func (m *ProductDocHistoryMutation) AppendedAffectedPages() ([]string, bool) {
	if len(m.appendaffected_pages) == 0 {
		return nil, false
	}
	return m.appendaffected_pages, true
}

// ClearAffectedPages clears the value of the "affected_pages" field.
func (m *ProductDocHistoryMutation) ClearAffectedPages() {
	m.affected_pages = nil
	m.appendaffected_pages = nil
	m.clearedFields[productdochistory.FieldAffectedPages] = struct{}{}
}

// AffectedPagesCleared returns if the "affected_pages" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) AffectedPagesCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldAffectedPages]
	return ok
}

// ResetAffectedPages resets all changes to the "affected_pages" field.
func (m *ProductDocHistoryMutation) ResetAffectedPages() {
	m.affected_pages = nil
	m.appendaffected_pages = nil
	delete(m.clearedFields, productdochistory.FieldAffectedPages)
}

// SetIsPinned sets the "is_pinned" field.
func (m *ProductDocHistoryMutation) SetIsPinned(b bool) {
	m.is_pinned = &b
}

// IsPinned returns the value of the "is_pinned" field in the mutation.
func (m *ProductDocHistoryMutation) IsPinned() (r bool, exists bool) {
	v := m.is_pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPinned returns the old "is_pinned" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldIsPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPinned: %w", err)
	}
	return oldValue.IsPinned, nil
}

// ResetIsPinned resets all changes to the "is_pinned" field.
func (m *ProductDocHistoryMutation) ResetIsPinned() {
	m.is_pinned = nil
}

// SetIsReleased sets the "is_released" field.
func (m *ProductDocHistoryMutation) SetIsReleased(b bool) {
	m.is_released = &b
}

// IsReleased returns the value of the "is_released" field in the mutation.
func (m *ProductDocHistoryMutation) IsReleased() (r bool, exists bool) {
	v := m.is_released
	if v == nil {
		return
	}
	return *v, true
}

// OldIsReleased returns the old "is_released" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldIsReleased(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsReleased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsReleased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsReleased: %w", err)
	}
	return oldValue.IsReleased, nil
}

// ResetIsReleased resets all changes to the "is_released" field.
func (m *ProductDocHistoryMutation) ResetIsReleased() {
	m.is_released = nil
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (m *ProductDocHistoryMutation) SetPayloadPrunedAt(t time.Time) {
	m.payload_pruned_at = &t
}

// PayloadPrunedAt returns the value of the "payload_pruned_at" field in the mutation.
func (m *ProductDocHistoryMutation) PayloadPrunedAt() (r time.Time, exists bool) {
	v := m.payload_pruned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadPrunedAt returns the old "payload_pruned_at" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldPayloadPrunedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadPrunedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadPrunedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadPrunedAt: %w", err)
	}
	return oldValue.PayloadPrunedAt, nil
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (m *ProductDocHistoryMutation) ClearPayloadPrunedAt() {
	m.payload_pruned_at = nil
	m.clearedFields[productdochistory.FieldPayloadPrunedAt] = struct{}{}
}

// PayloadPrunedAtCleared returns if the "payload_pruned_at" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) PayloadPrunedAtCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldPayloadPrunedAt]
	return ok
}

// ResetPayloadPrunedAt resets all changes to the "payload_pruned_at" field.
func (m *ProductDocHistoryMutation) ResetPayloadPrunedAt() {
	m.payload_pruned_at = nil
	delete(m.clearedFields, productdochistory.FieldPayloadPrunedAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *ProductDocHistoryMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ProductDocHistoryMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ProductDocHistoryMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[productdochistory.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ProductDocHistoryMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[productdochistory.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ProductDocHistoryMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, productdochistory.FieldReleasedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductDocHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductDocHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductDocHistory entity.
// If the ProductDocHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductDocHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductDocHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDoc clears the "doc" edge to the ProductDoc entity.
func (m *ProductDocHistoryMutation) ClearDoc() {
	m.cleareddoc = true
	m.clearedFields[productdochistory.FieldDocID] = struct{}{}
}

// DocCleared reports if the "doc" edge to the ProductDoc entity was cleared.
func (m *ProductDocHistoryMutation) DocCleared() bool {
	return m.cleareddoc
}

// DocIDs returns the "doc" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocID instead. It exists only for internal usage by the builders.
func (m *ProductDocHistoryMutation) DocIDs() (ids []string) {
	if id := m.doc; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoc resets all changes to the "doc" edge.
func (m *ProductDocHistoryMutation) ResetDoc() {
	m.doc = nil
	m.cleareddoc = false
}

// Where appends a list predicates to the ProductDocHistoryMutation builder.
func (m *ProductDocHistoryMutation) Where(ps ...predicate.ProductDocHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductDocHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductDocHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductDocHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductDocHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductDocHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductDocHistory).
func (m *ProductDocHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductDocHistoryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.doc != nil {
		fields = append(fields, productdochistory.FieldDocID)
	}
	if m.version != nil {
		fields = append(fields, productdochistory.FieldVersion)
	}
	if m.content != nil {
		fields = append(fields, productdochistory.FieldContent)
	}
	if m.structured != nil {
		fields = append(fields, productdochistory.FieldStructured)
	}
	if m.source != nil {
		fields = append(fields, productdochistory.FieldSource)
	}
	if m.change_summary != nil {
		fields = append(fields, productdochistory.FieldChangeSummary)
	}
	if m.affected_pages != nil {
		fields = append(fields, productdochistory.FieldAffectedPages)
	}
	if m.is_pinned != nil {
		fields = append(fields, productdochistory.FieldIsPinned)
	}
	if m.is_released != nil {
		fields = append(fields, productdochistory.FieldIsReleased)
	}
	if m.payload_pruned_at != nil {
		fields = append(fields, productdochistory.FieldPayloadPrunedAt)
	}
	if m.released_at != nil {
		fields = append(fields, productdochistory.FieldReleasedAt)
	}
	if m.created_at != nil {
		fields = append(fields, productdochistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductDocHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productdochistory.FieldDocID:
		return m.DocID()
	case productdochistory.FieldVersion:
		return m.Version()
	case productdochistory.FieldContent:
		return m.Content()
	case productdochistory.FieldStructured:
		return m.Structured()
	case productdochistory.FieldSource:
		return m.Source()
	case productdochistory.FieldChangeSummary:
		return m.ChangeSummary()
	case productdochistory.FieldAffectedPages:
		return m.AffectedPages()
	case productdochistory.FieldIsPinned:
		return m.IsPinned()
	case productdochistory.FieldIsReleased:
		return m.IsReleased()
	case productdochistory.FieldPayloadPrunedAt:
		return m.PayloadPrunedAt()
	case productdochistory.FieldReleasedAt:
		return m.ReleasedAt()
	case productdochistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductDocHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productdochistory.FieldDocID:
		return m.OldDocID(ctx)
	case productdochistory.FieldVersion:
		return m.OldVersion(ctx)
	case productdochistory.FieldContent:
		return m.OldContent(ctx)
	case productdochistory.FieldStructured:
		return m.OldStructured(ctx)
	case productdochistory.FieldSource:
		return m.OldSource(ctx)
	case productdochistory.FieldChangeSummary:
		return m.OldChangeSummary(ctx)
	case productdochistory.FieldAffectedPages:
		return m.OldAffectedPages(ctx)
	case productdochistory.FieldIsPinned:
		return m.OldIsPinned(ctx)
	case productdochistory.FieldIsReleased:
		return m.OldIsReleased(ctx)
	case productdochistory.FieldPayloadPrunedAt:
		return m.OldPayloadPrunedAt(ctx)
	case productdochistory.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case productdochistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductDocHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductDocHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productdochistory.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case productdochistory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case productdochistory.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case productdochistory.FieldStructured:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructured(v)
		return nil
	case productdochistory.FieldSource:
		v, ok := value.(productdochistory.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case productdochistory.FieldChangeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeSummary(v)
		return nil
	case productdochistory.FieldAffectedPages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedPages(v)
		return nil
	case productdochistory.FieldIsPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPinned(v)
		return nil
	case productdochistory.FieldIsReleased:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsReleased(v)
		return nil
	case productdochistory.FieldPayloadPrunedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadPrunedAt(v)
		return nil
	case productdochistory.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case productdochistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductDocHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, productdochistory.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductDocHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case productdochistory.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductDocHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case productdochistory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductDocHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productdochistory.FieldContent) {
		fields = append(fields, productdochistory.FieldContent)
	}
	if m.FieldCleared(productdochistory.FieldStructured) {
		fields = append(fields, productdochistory.FieldStructured)
	}
	if m.FieldCleared(productdochistory.FieldChangeSummary) {
		fields = append(fields, productdochistory.FieldChangeSummary)
	}
	if m.FieldCleared(productdochistory.FieldAffectedPages) {
		fields = append(fields, productdochistory.FieldAffectedPages)
	}
	if m.FieldCleared(productdochistory.FieldPayloadPrunedAt) {
		fields = append(fields, productdochistory.FieldPayloadPrunedAt)
	}
	if m.FieldCleared(productdochistory.FieldReleasedAt) {
		fields = append(fields, productdochistory.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductDocHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductDocHistoryMutation) ClearField(name string) error {
	switch name {
	case productdochistory.FieldContent:
		m.ClearContent()
		return nil
	case productdochistory.FieldStructured:
		m.ClearStructured()
		return nil
	case productdochistory.FieldChangeSummary:
		m.ClearChangeSummary()
		return nil
	case productdochistory.FieldAffectedPages:
		m.ClearAffectedPages()
		return nil
	case productdochistory.FieldPayloadPrunedAt:
		m.ClearPayloadPrunedAt()
		return nil
	case productdochistory.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductDocHistoryMutation) ResetField(name string) error {
	switch name {
	case productdochistory.FieldDocID:
		m.ResetDocID()
		return nil
	case productdochistory.FieldVersion:
		m.ResetVersion()
		return nil
	case productdochistory.FieldContent:
		m.ResetContent()
		return nil
	case productdochistory.FieldStructured:
		m.ResetStructured()
		return nil
	case productdochistory.FieldSource:
		m.ResetSource()
		return nil
	case productdochistory.FieldChangeSummary:
		m.ResetChangeSummary()
		return nil
	case productdochistory.FieldAffectedPages:
		m.ResetAffectedPages()
		return nil
	case productdochistory.FieldIsPinned:
		m.ResetIsPinned()
		return nil
	case productdochistory.FieldIsReleased:
		m.ResetIsReleased()
		return nil
	case productdochistory.FieldPayloadPrunedAt:
		m.ResetPayloadPrunedAt()
		return nil
	case productdochistory.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case productdochistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductDocHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.doc != nil {
		edges = append(edges, productdochistory.EdgeDoc)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductDocHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case productdochistory.EdgeDoc:
		if id := m.doc; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductDocHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductDocHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductDocHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddoc {
		edges = append(edges, productdochistory.EdgeDoc)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductDocHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case productdochistory.EdgeDoc:
		return m.cleareddoc
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductDocHistoryMutation) ClearEdge(name string) error {
	switch name {
	case productdochistory.EdgeDoc:
		m.ClearDoc()
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductDocHistoryMutation) ResetEdge(name string) error {
	switch name {
	case productdochistory.EdgeDoc:
		m.ResetDoc()
		return nil
	}
	return fmt.Errorf("unknown ProductDocHistory edge %s", name)
}

// ProjectSnapshotMutation represents an operation that mutates the ProjectSnapshot nodes in the graph.
type ProjectSnapshotMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	snapshot_number    *int
	addsnapshot_number *int
	source             *projectsnapshot.Source
	label              *string
	doc_content        *string
	doc_structured     *map[string]interface{}
	doc_version        *int
	adddoc_version     *int
	pages              *[]map[string]interface{}
	appendpages        []map[string]interface{}
	is_pinned          *bool
	is_released        *bool
	payload_pruned_at  *time.Time
	released_at        *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*ProjectSnapshot, error)
	predicates         []predicate.ProjectSnapshot
}

var _ ent.Mutation = (*ProjectSnapshotMutation)(nil)

// projectsnapshotOption allows management of the mutation configuration using functional options.
type projectsnapshotOption func(*ProjectSnapshotMutation)

// newProjectSnapshotMutation creates new mutation for the ProjectSnapshot entity.
func newProjectSnapshotMutation(c config, op Op, opts ...projectsnapshotOption) *ProjectSnapshotMutation {
	m := &ProjectSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectSnapshotID sets the ID field of the mutation.
func withProjectSnapshotID(id string) projectsnapshotOption {
	return func(m *ProjectSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ProjectSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectSnapshot sets the old ProjectSnapshot of the mutation.
func withProjectSnapshot(node *ProjectSnapshot) projectsnapshotOption {
	return func(m *ProjectSnapshotMutation) {
		m.oldValue = func(context.Context) (*ProjectSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectSnapshot entities.
func (m *ProjectSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProjectSnapshotMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProjectSnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProjectSnapshotMutation) ResetSessionID() {
	m.session = nil
}

// SetSnapshotNumber sets the "snapshot_number" field.
func (m *ProjectSnapshotMutation) SetSnapshotNumber(i int) {
	m.snapshot_number = &i
	m.addsnapshot_number = nil
}

// SnapshotNumber returns the value of the "snapshot_number" field in the mutation.
func (m *ProjectSnapshotMutation) SnapshotNumber() (r int, exists bool) {
	v := m.snapshot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotNumber returns the old "snapshot_number" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldSnapshotNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotNumber: %w", err)
	}
	return oldValue.SnapshotNumber, nil
}

// AddSnapshotNumber adds i to the "snapshot_number" field.
func (m *ProjectSnapshotMutation) AddSnapshotNumber(i int) {
	if m.addsnapshot_number != nil {
		*m.addsnapshot_number += i
	} else {
		m.addsnapshot_number = &i
	}
}

// AddedSnapshotNumber returns the value that was added to the "snapshot_number" field in this mutation.
func (m *ProjectSnapshotMutation) AddedSnapshotNumber() (r int, exists bool) {
	v := m.addsnapshot_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSnapshotNumber resets all changes to the "snapshot_number" field.
func (m *ProjectSnapshotMutation) ResetSnapshotNumber() {
	m.snapshot_number = nil
	m.addsnapshot_number = nil
}

// SetSource sets the "source" field.
func (m *ProjectSnapshotMutation) SetSource(pr projectsnapshot.Source) {
	m.source = &pr
}

// Source returns the value of the "source" field in the mutation.
func (m *ProjectSnapshotMutation) Source() (r projectsnapshot.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldSource(ctx context.Context) (v projectsnapshot.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ProjectSnapshotMutation) ResetSource() {
	m.source = nil
}

// SetLabel sets the "label" field.
func (m *ProjectSnapshotMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ProjectSnapshotMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *ProjectSnapshotMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[projectsnapshot.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) LabelCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *ProjectSnapshotMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, projectsnapshot.FieldLabel)
}

// SetDocContent sets the "doc_content" field.
func (m *ProjectSnapshotMutation) SetDocContent(s string) {
	m.doc_content = &s
}

// DocContent returns the value of the "doc_content" field in the mutation.
func (m *ProjectSnapshotMutation) DocContent() (r string, exists bool) {
	v := m.doc_content
	if v == nil {
		return
	}
	return *v, true
}

// OldDocContent returns the old "doc_content" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldDocContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocContent: %w", err)
	}
	return oldValue.DocContent, nil
}

// ClearDocContent clears the value of the "doc_content" field.
func (m *ProjectSnapshotMutation) ClearDocContent() {
	m.doc_content = nil
	m.clearedFields[projectsnapshot.FieldDocContent] = struct{}{}
}

// DocContentCleared returns if the "doc_content" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) DocContentCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldDocContent]
	return ok
}

// ResetDocContent resets all changes to the "doc_content" field.
func (m *ProjectSnapshotMutation) ResetDocContent() {
	m.doc_content = nil
	delete(m.clearedFields, projectsnapshot.FieldDocContent)
}

// SetDocStructured sets the "doc_structured" field.
func (m *ProjectSnapshotMutation) SetDocStructured(value map[string]interface{}) {
	m.doc_structured = &value
}

// DocStructured returns the value of the "doc_structured" field in the mutation.
func (m *ProjectSnapshotMutation) DocStructured() (r map[string]interface{}, exists bool) {
	v := m.doc_structured
	if v == nil {
		return
	}
	return *v, true
}

// OldDocStructured returns the old "doc_structured" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldDocStructured(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocStructured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocStructured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocStructured: %w", err)
	}
	return oldValue.DocStructured, nil
}

// ClearDocStructured clears the value of the "doc_structured" field.
func (m *ProjectSnapshotMutation) ClearDocStructured() {
	m.doc_structured = nil
	m.clearedFields[projectsnapshot.FieldDocStructured] = struct{}{}
}

// DocStructuredCleared returns if the "doc_structured" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) DocStructuredCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldDocStructured]
	return ok
}

// ResetDocStructured resets all changes to the "doc_structured" field.
func (m *ProjectSnapshotMutation) ResetDocStructured() {
	m.doc_structured = nil
	delete(m.clearedFields, projectsnapshot.FieldDocStructured)
}

// SetDocVersion sets the "doc_version" field.
func (m *ProjectSnapshotMutation) SetDocVersion(i int) {
	m.doc_version = &i
	m.adddoc_version = nil
}

// DocVersion returns the value of the "doc_version" field in the mutation.
func (m *ProjectSnapshotMutation) DocVersion() (r int, exists bool) {
	v := m.doc_version
	if v == nil {
		return
	}
	return *v, true
}

// OldDocVersion returns the old "doc_version" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldDocVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocVersion: %w", err)
	}
	return oldValue.DocVersion, nil
}

// AddDocVersion adds i to the "doc_version" field.
func (m *ProjectSnapshotMutation) AddDocVersion(i int) {
	if m.adddoc_version != nil {
		*m.adddoc_version += i
	} else {
		m.adddoc_version = &i
	}
}

// AddedDocVersion returns the value that was added to the "doc_version" field in this mutation.
func (m *ProjectSnapshotMutation) AddedDocVersion() (r int, exists bool) {
	v := m.adddoc_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocVersion resets all changes to the "doc_version" field.
func (m *ProjectSnapshotMutation) ResetDocVersion() {
	m.doc_version = nil
	m.adddoc_version = nil
}

// SetPages sets the "pages" field.
func (m *ProjectSnapshotMutation) SetPages(value []map[string]interface{}) {
	m.pages = &value
	m.appendpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ProjectSnapshotMutation) Pages() (r []map[string]interface{}, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldPages(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AppendPages adds value to the "pages" field.
func (m *ProjectSnapshotMutation) AppendPages(value []map[string]interface{}) {
	m.appendpages = append(m.appendpages, value...)
}

// AppendedPages returns the list of values that were appended to the "pages" field in this mutation.
func (m *ProjectSnapshotMutation) AppendedPages() ([]map[string]interface{}, bool) {
	if len(m.appendpages) == 0 {
		return nil, false
	}
	return m.appendpages, true
}

// ClearPages clears the value of the "pages" field.
func (m *ProjectSnapshotMutation) ClearPages() {
	m.pages = nil
	m.appendpages = nil
	m.clearedFields[projectsnapshot.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) PagesCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *ProjectSnapshotMutation) ResetPages() {
	m.pages = nil
	m.appendpages = nil
	delete(m.clearedFields, projectsnapshot.FieldPages)
}

// SetIsPinned sets the "is_pinned" field.
func (m *ProjectSnapshotMutation) SetIsPinned(b bool) {
	m.is_pinned = &b
}

// IsPinned returns the value of the "is_pinned" field in the mutation.
func (m *ProjectSnapshotMutation) IsPinned() (r bool, exists bool) {
	v := m.is_pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPinned returns the old "is_pinned" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldIsPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPinned: %w", err)
	}
	return oldValue.IsPinned, nil
}

// ResetIsPinned resets all changes to the "is_pinned" field.
func (m *ProjectSnapshotMutation) ResetIsPinned() {
	m.is_pinned = nil
}

// SetIsReleased sets the "is_released" field.
func (m *ProjectSnapshotMutation) SetIsReleased(b bool) {
	m.is_released = &b
}

// IsReleased returns the value of the "is_released" field in the mutation.
func (m *ProjectSnapshotMutation) IsReleased() (r bool, exists bool) {
	v := m.is_released
	if v == nil {
		return
	}
	return *v, true
}

// OldIsReleased returns the old "is_released" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldIsReleased(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsReleased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsReleased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsReleased: %w", err)
	}
	return oldValue.IsReleased, nil
}

// ResetIsReleased resets all changes to the "is_released" field.
func (m *ProjectSnapshotMutation) ResetIsReleased() {
	m.is_released = nil
}

// SetPayloadPrunedAt sets the "payload_pruned_at" field.
func (m *ProjectSnapshotMutation) SetPayloadPrunedAt(t time.Time) {
	m.payload_pruned_at = &t
}

// PayloadPrunedAt returns the value of the "payload_pruned_at" field in the mutation.
func (m *ProjectSnapshotMutation) PayloadPrunedAt() (r time.Time, exists bool) {
	v := m.payload_pruned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadPrunedAt returns the old "payload_pruned_at" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldPayloadPrunedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadPrunedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadPrunedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadPrunedAt: %w", err)
	}
	return oldValue.PayloadPrunedAt, nil
}

// ClearPayloadPrunedAt clears the value of the "payload_pruned_at" field.
func (m *ProjectSnapshotMutation) ClearPayloadPrunedAt() {
	m.payload_pruned_at = nil
	m.clearedFields[projectsnapshot.FieldPayloadPrunedAt] = struct{}{}
}

// PayloadPrunedAtCleared returns if the "payload_pruned_at" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) PayloadPrunedAtCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldPayloadPrunedAt]
	return ok
}

// ResetPayloadPrunedAt resets all changes to the "payload_pruned_at" field.
func (m *ProjectSnapshotMutation) ResetPayloadPrunedAt() {
	m.payload_pruned_at = nil
	delete(m.clearedFields, projectsnapshot.FieldPayloadPrunedAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *ProjectSnapshotMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ProjectSnapshotMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ProjectSnapshotMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[projectsnapshot.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ProjectSnapshotMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[projectsnapshot.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ProjectSnapshotMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, projectsnapshot.FieldReleasedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectSnapshot entity.
// If the ProjectSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ProjectSnapshotMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[projectsnapshot.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ProjectSnapshotMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ProjectSnapshotMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ProjectSnapshotMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ProjectSnapshotMutation builder.
func (m *ProjectSnapshotMutation) Where(ps ...predicate.ProjectSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectSnapshot).
func (m *ProjectSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, projectsnapshot.FieldSessionID)
	}
	if m.snapshot_number != nil {
		fields = append(fields, projectsnapshot.FieldSnapshotNumber)
	}
	if m.source != nil {
		fields = append(fields, projectsnapshot.FieldSource)
	}
	if m.label != nil {
		fields = append(fields, projectsnapshot.FieldLabel)
	}
	if m.doc_content != nil {
		fields = append(fields, projectsnapshot.FieldDocContent)
	}
	if m.doc_structured != nil {
		fields = append(fields, projectsnapshot.FieldDocStructured)
	}
	if m.doc_version != nil {
		fields = append(fields, projectsnapshot.FieldDocVersion)
	}
	if m.pages != nil {
		fields = append(fields, projectsnapshot.FieldPages)
	}
	if m.is_pinned != nil {
		fields = append(fields, projectsnapshot.FieldIsPinned)
	}
	if m.is_released != nil {
		fields = append(fields, projectsnapshot.FieldIsReleased)
	}
	if m.payload_pruned_at != nil {
		fields = append(fields, projectsnapshot.FieldPayloadPrunedAt)
	}
	if m.released_at != nil {
		fields = append(fields, projectsnapshot.FieldReleasedAt)
	}
	if m.created_at != nil {
		fields = append(fields, projectsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectsnapshot.FieldSessionID:
		return m.SessionID()
	case projectsnapshot.FieldSnapshotNumber:
		return m.SnapshotNumber()
	case projectsnapshot.FieldSource:
		return m.Source()
	case projectsnapshot.FieldLabel:
		return m.Label()
	case projectsnapshot.FieldDocContent:
		return m.DocContent()
	case projectsnapshot.FieldDocStructured:
		return m.DocStructured()
	case projectsnapshot.FieldDocVersion:
		return m.DocVersion()
	case projectsnapshot.FieldPages:
		return m.Pages()
	case projectsnapshot.FieldIsPinned:
		return m.IsPinned()
	case projectsnapshot.FieldIsReleased:
		return m.IsReleased()
	case projectsnapshot.FieldPayloadPrunedAt:
		return m.PayloadPrunedAt()
	case projectsnapshot.FieldReleasedAt:
		return m.ReleasedAt()
	case projectsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectsnapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case projectsnapshot.FieldSnapshotNumber:
		return m.OldSnapshotNumber(ctx)
	case projectsnapshot.FieldSource:
		return m.OldSource(ctx)
	case projectsnapshot.FieldLabel:
		return m.OldLabel(ctx)
	case projectsnapshot.FieldDocContent:
		return m.OldDocContent(ctx)
	case projectsnapshot.FieldDocStructured:
		return m.OldDocStructured(ctx)
	case projectsnapshot.FieldDocVersion:
		return m.OldDocVersion(ctx)
	case projectsnapshot.FieldPages:
		return m.OldPages(ctx)
	case projectsnapshot.FieldIsPinned:
		return m.OldIsPinned(ctx)
	case projectsnapshot.FieldIsReleased:
		return m.OldIsReleased(ctx)
	case projectsnapshot.FieldPayloadPrunedAt:
		return m.OldPayloadPrunedAt(ctx)
	case projectsnapshot.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case projectsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectsnapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case projectsnapshot.FieldSnapshotNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotNumber(v)
		return nil
	case projectsnapshot.FieldSource:
		v, ok := value.(projectsnapshot.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case projectsnapshot.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case projectsnapshot.FieldDocContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocContent(v)
		return nil
	case projectsnapshot.FieldDocStructured:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocStructured(v)
		return nil
	case projectsnapshot.FieldDocVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocVersion(v)
		return nil
	case projectsnapshot.FieldPages:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case projectsnapshot.FieldIsPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPinned(v)
		return nil
	case projectsnapshot.FieldIsReleased:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsReleased(v)
		return nil
	case projectsnapshot.FieldPayloadPrunedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadPrunedAt(v)
		return nil
	case projectsnapshot.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case projectsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsnapshot_number != nil {
		fields = append(fields, projectsnapshot.FieldSnapshotNumber)
	}
	if m.adddoc_version != nil {
		fields = append(fields, projectsnapshot.FieldDocVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case projectsnapshot.FieldSnapshotNumber:
		return m.AddedSnapshotNumber()
	case projectsnapshot.FieldDocVersion:
		return m.AddedDocVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case projectsnapshot.FieldSnapshotNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSnapshotNumber(v)
		return nil
	case projectsnapshot.FieldDocVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectsnapshot.FieldLabel) {
		fields = append(fields, projectsnapshot.FieldLabel)
	}
	if m.FieldCleared(projectsnapshot.FieldDocContent) {
		fields = append(fields, projectsnapshot.FieldDocContent)
	}
	if m.FieldCleared(projectsnapshot.FieldDocStructured) {
		fields = append(fields, projectsnapshot.FieldDocStructured)
	}
	if m.FieldCleared(projectsnapshot.FieldPages) {
		fields = append(fields, projectsnapshot.FieldPages)
	}
	if m.FieldCleared(projectsnapshot.FieldPayloadPrunedAt) {
		fields = append(fields, projectsnapshot.FieldPayloadPrunedAt)
	}
	if m.FieldCleared(projectsnapshot.FieldReleasedAt) {
		fields = append(fields, projectsnapshot.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectSnapshotMutation) ClearField(name string) error {
	switch name {
	case projectsnapshot.FieldLabel:
		m.ClearLabel()
		return nil
	case projectsnapshot.FieldDocContent:
		m.ClearDocContent()
		return nil
	case projectsnapshot.FieldDocStructured:
		m.ClearDocStructured()
		return nil
	case projectsnapshot.FieldPages:
		m.ClearPages()
		return nil
	case projectsnapshot.FieldPayloadPrunedAt:
		m.ClearPayloadPrunedAt()
		return nil
	case projectsnapshot.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectSnapshotMutation) ResetField(name string) error {
	switch name {
	case projectsnapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case projectsnapshot.FieldSnapshotNumber:
		m.ResetSnapshotNumber()
		return nil
	case projectsnapshot.FieldSource:
		m.ResetSource()
		return nil
	case projectsnapshot.FieldLabel:
		m.ResetLabel()
		return nil
	case projectsnapshot.FieldDocContent:
		m.ResetDocContent()
		return nil
	case projectsnapshot.FieldDocStructured:
		m.ResetDocStructured()
		return nil
	case projectsnapshot.FieldDocVersion:
		m.ResetDocVersion()
		return nil
	case projectsnapshot.FieldPages:
		m.ResetPages()
		return nil
	case projectsnapshot.FieldIsPinned:
		m.ResetIsPinned()
		return nil
	case projectsnapshot.FieldIsReleased:
		m.ResetIsReleased()
		return nil
	case projectsnapshot.FieldPayloadPrunedAt:
		m.ResetPayloadPrunedAt()
		return nil
	case projectsnapshot.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case projectsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, projectsnapshot.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectsnapshot.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, projectsnapshot.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case projectsnapshot.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case projectsnapshot.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case projectsnapshot.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ProjectSnapshot edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	parent_run_id     *string
	trigger_source    *string
	status            *run.Status
	input_message     *string
	resume_payload    *map[string]interface{}
	checkpoint_thread *string
	checkpoint_ns     *string
	latest_error      *string
	metrics           *map[string]interface{}
	created_at        *time.Time
	started_at        *time.Time
	finished_at       *time.Time
	state_changed_at  *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*Run, error)
	predicates        []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RunMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RunMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RunMutation) ResetSessionID() {
	m.session = nil
}

// SetParentRunID sets the "parent_run_id" field.
func (m *RunMutation) SetParentRunID(s string) {
	m.parent_run_id = &s
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *RunMutation) ParentRunID() (r string, exists bool) {
	v := m.parent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldParentRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (m *RunMutation) ClearParentRunID() {
	m.parent_run_id = nil
	m.clearedFields[run.FieldParentRunID] = struct{}{}
}

// ParentRunIDCleared returns if the "parent_run_id" field was cleared in this mutation.
func (m *RunMutation) ParentRunIDCleared() bool {
	_, ok := m.clearedFields[run.FieldParentRunID]
	return ok
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *RunMutation) ResetParentRunID() {
	m.parent_run_id = nil
	delete(m.clearedFields, run.FieldParentRunID)
}

// SetTriggerSource sets the "trigger_source" field.
func (m *RunMutation) SetTriggerSource(s string) {
	m.trigger_source = &s
}

// TriggerSource returns the value of the "trigger_source" field in the mutation.
func (m *RunMutation) TriggerSource() (r string, exists bool) {
	v := m.trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSource returns the old "trigger_source" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTriggerSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSource: %w", err)
	}
	return oldValue.TriggerSource, nil
}

// ResetTriggerSource resets all changes to the "trigger_source" field.
func (m *RunMutation) ResetTriggerSource() {
	m.trigger_source = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetInputMessage sets the "input_message" field.
func (m *RunMutation) SetInputMessage(s string) {
	m.input_message = &s
}

// InputMessage returns the value of the "input_message" field in the mutation.
func (m *RunMutation) InputMessage() (r string, exists bool) {
	v := m.input_message
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMessage returns the old "input_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInputMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMessage: %w", err)
	}
	return oldValue.InputMessage, nil
}

// ClearInputMessage clears the value of the "input_message" field.
func (m *RunMutation) ClearInputMessage() {
	m.input_message = nil
	m.clearedFields[run.FieldInputMessage] = struct{}{}
}

// InputMessageCleared returns if the "input_message" field was cleared in this mutation.
func (m *RunMutation) InputMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldInputMessage]
	return ok
}

// ResetInputMessage resets all changes to the "input_message" field.
func (m *RunMutation) ResetInputMessage() {
	m.input_message = nil
	delete(m.clearedFields, run.FieldInputMessage)
}

// SetResumePayload sets the "resume_payload" field.
func (m *RunMutation) SetResumePayload(value map[string]interface{}) {
	m.resume_payload = &value
}

// ResumePayload returns the value of the "resume_payload" field in the mutation.
func (m *RunMutation) ResumePayload() (r map[string]interface{}, exists bool) {
	v := m.resume_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResumePayload returns the old "resume_payload" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldResumePayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumePayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumePayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumePayload: %w", err)
	}
	return oldValue.ResumePayload, nil
}

// ClearResumePayload clears the value of the "resume_payload" field.
func (m *RunMutation) ClearResumePayload() {
	m.resume_payload = nil
	m.clearedFields[run.FieldResumePayload] = struct{}{}
}

// ResumePayloadCleared returns if the "resume_payload" field was cleared in this mutation.
func (m *RunMutation) ResumePayloadCleared() bool {
	_, ok := m.clearedFields[run.FieldResumePayload]
	return ok
}

// ResetResumePayload resets all changes to the "resume_payload" field.
func (m *RunMutation) ResetResumePayload() {
	m.resume_payload = nil
	delete(m.clearedFields, run.FieldResumePayload)
}

// SetCheckpointThread sets the "checkpoint_thread" field.
func (m *RunMutation) SetCheckpointThread(s string) {
	m.checkpoint_thread = &s
}

// CheckpointThread returns the value of the "checkpoint_thread" field in the mutation.
func (m *RunMutation) CheckpointThread() (r string, exists bool) {
	v := m.checkpoint_thread
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointThread returns the old "checkpoint_thread" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCheckpointThread(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointThread is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointThread requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointThread: %w", err)
	}
	return oldValue.CheckpointThread, nil
}

// ResetCheckpointThread resets all changes to the "checkpoint_thread" field.
func (m *RunMutation) ResetCheckpointThread() {
	m.checkpoint_thread = nil
}

// SetCheckpointNs sets the "checkpoint_ns" field.
func (m *RunMutation) SetCheckpointNs(s string) {
	m.checkpoint_ns = &s
}

// CheckpointNs returns the value of the "checkpoint_ns" field in the mutation.
func (m *RunMutation) CheckpointNs() (r string, exists bool) {
	v := m.checkpoint_ns
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointNs returns the old "checkpoint_ns" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCheckpointNs(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointNs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointNs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointNs: %w", err)
	}
	return oldValue.CheckpointNs, nil
}

// ClearCheckpointNs clears the value of the "checkpoint_ns" field.
func (m *RunMutation) ClearCheckpointNs() {
	m.checkpoint_ns = nil
	m.clearedFields[run.FieldCheckpointNs] = struct{}{}
}

// CheckpointNsCleared returns if the "checkpoint_ns" field was cleared in this mutation.
func (m *RunMutation) CheckpointNsCleared() bool {
	_, ok := m.clearedFields[run.FieldCheckpointNs]
	return ok
}

// ResetCheckpointNs resets all changes to the "checkpoint_ns" field.
func (m *RunMutation) ResetCheckpointNs() {
	m.checkpoint_ns = nil
	delete(m.clearedFields, run.FieldCheckpointNs)
}

// SetLatestError sets the "latest_error" field.
func (m *RunMutation) SetLatestError(s string) {
	m.latest_error = &s
}

// LatestError returns the value of the "latest_error" field in the mutation.
func (m *RunMutation) LatestError() (r string, exists bool) {
	v := m.latest_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestError returns the old "latest_error" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLatestError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestError: %w", err)
	}
	return oldValue.LatestError, nil
}

// ClearLatestError clears the value of the "latest_error" field.
func (m *RunMutation) ClearLatestError() {
	m.latest_error = nil
	m.clearedFields[run.FieldLatestError] = struct{}{}
}

// LatestErrorCleared returns if the "latest_error" field was cleared in this mutation.
func (m *RunMutation) LatestErrorCleared() bool {
	_, ok := m.clearedFields[run.FieldLatestError]
	return ok
}

// ResetLatestError resets all changes to the "latest_error" field.
func (m *RunMutation) ResetLatestError() {
	m.latest_error = nil
	delete(m.clearedFields, run.FieldLatestError)
}

// SetMetrics sets the "metrics" field.
func (m *RunMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *RunMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *RunMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[run.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *RunMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[run.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *RunMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, run.FieldMetrics)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[run.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, run.FieldFinishedAt)
}

// SetStateChangedAt sets the "state_changed_at" field.
func (m *RunMutation) SetStateChangedAt(t time.Time) {
	m.state_changed_at = &t
}

// StateChangedAt returns the value of the "state_changed_at" field in the mutation.
func (m *RunMutation) StateChangedAt() (r time.Time, exists bool) {
	v := m.state_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStateChangedAt returns the old "state_changed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStateChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateChangedAt: %w", err)
	}
	return oldValue.StateChangedAt, nil
}

// ResetStateChangedAt resets all changes to the "state_changed_at" field.
func (m *RunMutation) ResetStateChangedAt() {
	m.state_changed_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *RunMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[run.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *RunMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RunMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.session != nil {
		fields = append(fields, run.FieldSessionID)
	}
	if m.parent_run_id != nil {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.trigger_source != nil {
		fields = append(fields, run.FieldTriggerSource)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.input_message != nil {
		fields = append(fields, run.FieldInputMessage)
	}
	if m.resume_payload != nil {
		fields = append(fields, run.FieldResumePayload)
	}
	if m.checkpoint_thread != nil {
		fields = append(fields, run.FieldCheckpointThread)
	}
	if m.checkpoint_ns != nil {
		fields = append(fields, run.FieldCheckpointNs)
	}
	if m.latest_error != nil {
		fields = append(fields, run.FieldLatestError)
	}
	if m.metrics != nil {
		fields = append(fields, run.FieldMetrics)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.state_changed_at != nil {
		fields = append(fields, run.FieldStateChangedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldSessionID:
		return m.SessionID()
	case run.FieldParentRunID:
		return m.ParentRunID()
	case run.FieldTriggerSource:
		return m.TriggerSource()
	case run.FieldStatus:
		return m.Status()
	case run.FieldInputMessage:
		return m.InputMessage()
	case run.FieldResumePayload:
		return m.ResumePayload()
	case run.FieldCheckpointThread:
		return m.CheckpointThread()
	case run.FieldCheckpointNs:
		return m.CheckpointNs()
	case run.FieldLatestError:
		return m.LatestError()
	case run.FieldMetrics:
		return m.Metrics()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldFinishedAt:
		return m.FinishedAt()
	case run.FieldStateChangedAt:
		return m.StateChangedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldSessionID:
		return m.OldSessionID(ctx)
	case run.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case run.FieldTriggerSource:
		return m.OldTriggerSource(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldInputMessage:
		return m.OldInputMessage(ctx)
	case run.FieldResumePayload:
		return m.OldResumePayload(ctx)
	case run.FieldCheckpointThread:
		return m.OldCheckpointThread(ctx)
	case run.FieldCheckpointNs:
		return m.OldCheckpointNs(ctx)
	case run.FieldLatestError:
		return m.OldLatestError(ctx)
	case run.FieldMetrics:
		return m.OldMetrics(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case run.FieldStateChangedAt:
		return m.OldStateChangedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case run.FieldParentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case run.FieldTriggerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSource(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldInputMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMessage(v)
		return nil
	case run.FieldResumePayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumePayload(v)
		return nil
	case run.FieldCheckpointThread:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointThread(v)
		return nil
	case run.FieldCheckpointNs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointNs(v)
		return nil
	case run.FieldLatestError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestError(v)
		return nil
	case run.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case run.FieldStateChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateChangedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldParentRunID) {
		fields = append(fields, run.FieldParentRunID)
	}
	if m.FieldCleared(run.FieldInputMessage) {
		fields = append(fields, run.FieldInputMessage)
	}
	if m.FieldCleared(run.FieldResumePayload) {
		fields = append(fields, run.FieldResumePayload)
	}
	if m.FieldCleared(run.FieldCheckpointNs) {
		fields = append(fields, run.FieldCheckpointNs)
	}
	if m.FieldCleared(run.FieldLatestError) {
		fields = append(fields, run.FieldLatestError)
	}
	if m.FieldCleared(run.FieldMetrics) {
		fields = append(fields, run.FieldMetrics)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldFinishedAt) {
		fields = append(fields, run.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldParentRunID:
		m.ClearParentRunID()
		return nil
	case run.FieldInputMessage:
		m.ClearInputMessage()
		return nil
	case run.FieldResumePayload:
		m.ClearResumePayload()
		return nil
	case run.FieldCheckpointNs:
		m.ClearCheckpointNs()
		return nil
	case run.FieldLatestError:
		m.ClearLatestError()
		return nil
	case run.FieldMetrics:
		m.ClearMetrics()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldSessionID:
		m.ResetSessionID()
		return nil
	case run.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case run.FieldTriggerSource:
		m.ResetTriggerSource()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldInputMessage:
		m.ResetInputMessage()
		return nil
	case run.FieldResumePayload:
		m.ResetResumePayload()
		return nil
	case run.FieldCheckpointThread:
		m.ResetCheckpointThread()
		return nil
	case run.FieldCheckpointNs:
		m.ResetCheckpointNs()
		return nil
	case run.FieldLatestError:
		m.ResetLatestError()
		return nil
	case run.FieldMetrics:
		m.ResetMetrics()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case run.FieldStateChangedAt:
		m.ResetStateChangedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, run.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, run.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	product_type       *string
	complexity         *string
	skill_id           *string
	doc_tier           *string
	graph_state        *map[string]interface{}
	build_status       *session.BuildStatus
	build_artifacts    *map[string]interface{}
	aesthetic_scores   *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	runs               map[string]struct{}
	removedruns        map[string]struct{}
	clearedruns        bool
	product_doc        *string
	clearedproduct_doc bool
	pages              map[string]struct{}
	removedpages       map[string]struct{}
	clearedpages       bool
	snapshots          map[string]struct{}
	removedsnapshots   map[string]struct{}
	clearedsnapshots   bool
	plans              map[string]struct{}
	removedplans       map[string]struct{}
	clearedplans       bool
	events             map[int]struct{}
	removedevents      map[int]struct{}
	clearedevents      bool
	done               bool
	oldValue           func(context.Context) (*Session, error)
	predicates         []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[session.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[session.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, session.FieldTitle)
}

// SetProductType sets the "product_type" field.
func (m *SessionMutation) SetProductType(s string) {
	m.product_type = &s
}

// ProductType returns the value of the "product_type" field in the mutation.
func (m *SessionMutation) ProductType() (r string, exists bool) {
	v := m.product_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProductType returns the old "product_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProductType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductType: %w", err)
	}
	return oldValue.ProductType, nil
}

// ClearProductType clears the value of the "product_type" field.
func (m *SessionMutation) ClearProductType() {
	m.product_type = nil
	m.clearedFields[session.FieldProductType] = struct{}{}
}

// ProductTypeCleared returns if the "product_type" field was cleared in this mutation.
func (m *SessionMutation) ProductTypeCleared() bool {
	_, ok := m.clearedFields[session.FieldProductType]
	return ok
}

// ResetProductType resets all changes to the "product_type" field.
func (m *SessionMutation) ResetProductType() {
	m.product_type = nil
	delete(m.clearedFields, session.FieldProductType)
}

// SetComplexity sets the "complexity" field.
func (m *SessionMutation) SetComplexity(s string) {
	m.complexity = &s
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *SessionMutation) Complexity() (r string, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// ClearComplexity clears the value of the "complexity" field.
func (m *SessionMutation) ClearComplexity() {
	m.complexity = nil
	m.clearedFields[session.FieldComplexity] = struct{}{}
}

// ComplexityCleared returns if the "complexity" field was cleared in this mutation.
func (m *SessionMutation) ComplexityCleared() bool {
	_, ok := m.clearedFields[session.FieldComplexity]
	return ok
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *SessionMutation) ResetComplexity() {
	m.complexity = nil
	delete(m.clearedFields, session.FieldComplexity)
}

// SetSkillID sets the "skill_id" field.
func (m *SessionMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *SessionMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ClearSkillID clears the value of the "skill_id" field.
func (m *SessionMutation) ClearSkillID() {
	m.skill_id = nil
	m.clearedFields[session.FieldSkillID] = struct{}{}
}

// SkillIDCleared returns if the "skill_id" field was cleared in this mutation.
func (m *SessionMutation) SkillIDCleared() bool {
	_, ok := m.clearedFields[session.FieldSkillID]
	return ok
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *SessionMutation) ResetSkillID() {
	m.skill_id = nil
	delete(m.clearedFields, session.FieldSkillID)
}

// SetDocTier sets the "doc_tier" field.
func (m *SessionMutation) SetDocTier(s string) {
	m.doc_tier = &s
}

// DocTier returns the value of the "doc_tier" field in the mutation.
func (m *SessionMutation) DocTier() (r string, exists bool) {
	v := m.doc_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldDocTier returns the old "doc_tier" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDocTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocTier: %w", err)
	}
	return oldValue.DocTier, nil
}

// ClearDocTier clears the value of the "doc_tier" field.
func (m *SessionMutation) ClearDocTier() {
	m.doc_tier = nil
	m.clearedFields[session.FieldDocTier] = struct{}{}
}

// DocTierCleared returns if the "doc_tier" field was cleared in this mutation.
func (m *SessionMutation) DocTierCleared() bool {
	_, ok := m.clearedFields[session.FieldDocTier]
	return ok
}

// ResetDocTier resets all changes to the "doc_tier" field.
func (m *SessionMutation) ResetDocTier() {
	m.doc_tier = nil
	delete(m.clearedFields, session.FieldDocTier)
}

// SetGraphState sets the "graph_state" field.
func (m *SessionMutation) SetGraphState(value map[string]interface{}) {
	m.graph_state = &value
}

// GraphState returns the value of the "graph_state" field in the mutation.
func (m *SessionMutation) GraphState() (r map[string]interface{}, exists bool) {
	v := m.graph_state
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphState returns the old "graph_state" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGraphState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphState: %w", err)
	}
	return oldValue.GraphState, nil
}

// ClearGraphState clears the value of the "graph_state" field.
func (m *SessionMutation) ClearGraphState() {
	m.graph_state = nil
	m.clearedFields[session.FieldGraphState] = struct{}{}
}

// GraphStateCleared returns if the "graph_state" field was cleared in this mutation.
func (m *SessionMutation) GraphStateCleared() bool {
	_, ok := m.clearedFields[session.FieldGraphState]
	return ok
}

// ResetGraphState resets all changes to the "graph_state" field.
func (m *SessionMutation) ResetGraphState() {
	m.graph_state = nil
	delete(m.clearedFields, session.FieldGraphState)
}

// SetBuildStatus sets the "build_status" field.
func (m *SessionMutation) SetBuildStatus(ss session.BuildStatus) {
	m.build_status = &ss
}

// BuildStatus returns the value of the "build_status" field in the mutation.
func (m *SessionMutation) BuildStatus() (r session.BuildStatus, exists bool) {
	v := m.build_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildStatus returns the old "build_status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBuildStatus(ctx context.Context) (v session.BuildStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildStatus: %w", err)
	}
	return oldValue.BuildStatus, nil
}

// ResetBuildStatus resets all changes to the "build_status" field.
func (m *SessionMutation) ResetBuildStatus() {
	m.build_status = nil
}

// SetBuildArtifacts sets the "build_artifacts" field.
func (m *SessionMutation) SetBuildArtifacts(value map[string]interface{}) {
	m.build_artifacts = &value
}

// BuildArtifacts returns the value of the "build_artifacts" field in the mutation.
func (m *SessionMutation) BuildArtifacts() (r map[string]interface{}, exists bool) {
	v := m.build_artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildArtifacts returns the old "build_artifacts" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBuildArtifacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildArtifacts: %w", err)
	}
	return oldValue.BuildArtifacts, nil
}

// ClearBuildArtifacts clears the value of the "build_artifacts" field.
func (m *SessionMutation) ClearBuildArtifacts() {
	m.build_artifacts = nil
	m.clearedFields[session.FieldBuildArtifacts] = struct{}{}
}

// BuildArtifactsCleared returns if the "build_artifacts" field was cleared in this mutation.
func (m *SessionMutation) BuildArtifactsCleared() bool {
	_, ok := m.clearedFields[session.FieldBuildArtifacts]
	return ok
}

// ResetBuildArtifacts resets all changes to the "build_artifacts" field.
func (m *SessionMutation) ResetBuildArtifacts() {
	m.build_artifacts = nil
	delete(m.clearedFields, session.FieldBuildArtifacts)
}

// SetAestheticScores sets the "aesthetic_scores" field.
func (m *SessionMutation) SetAestheticScores(value map[string]interface{}) {
	m.aesthetic_scores = &value
}

// AestheticScores returns the value of the "aesthetic_scores" field in the mutation.
func (m *SessionMutation) AestheticScores() (r map[string]interface{}, exists bool) {
	v := m.aesthetic_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldAestheticScores returns the old "aesthetic_scores" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAestheticScores(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAestheticScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAestheticScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAestheticScores: %w", err)
	}
	return oldValue.AestheticScores, nil
}

// ClearAestheticScores clears the value of the "aesthetic_scores" field.
func (m *SessionMutation) ClearAestheticScores() {
	m.aesthetic_scores = nil
	m.clearedFields[session.FieldAestheticScores] = struct{}{}
}

// AestheticScoresCleared returns if the "aesthetic_scores" field was cleared in this mutation.
func (m *SessionMutation) AestheticScoresCleared() bool {
	_, ok := m.clearedFields[session.FieldAestheticScores]
	return ok
}

// ResetAestheticScores resets all changes to the "aesthetic_scores" field.
func (m *SessionMutation) ResetAestheticScores() {
	m.aesthetic_scores = nil
	delete(m.clearedFields, session.FieldAestheticScores)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *SessionMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *SessionMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *SessionMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *SessionMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *SessionMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SessionMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SessionMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// SetProductDocID sets the "product_doc" edge to the ProductDoc entity by id.
func (m *SessionMutation) SetProductDocID(id string) {
	m.product_doc = &id
}

// ClearProductDoc clears the "product_doc" edge to the ProductDoc entity.
func (m *SessionMutation) ClearProductDoc() {
	m.clearedproduct_doc = true
}

// ProductDocCleared reports if the "product_doc" edge to the ProductDoc entity was cleared.
func (m *SessionMutation) ProductDocCleared() bool {
	return m.clearedproduct_doc
}

// ProductDocID returns the "product_doc" edge ID in the mutation.
func (m *SessionMutation) ProductDocID() (id string, exists bool) {
	if m.product_doc != nil {
		return *m.product_doc, true
	}
	return
}

// ProductDocIDs returns the "product_doc" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductDocID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) ProductDocIDs() (ids []string) {
	if id := m.product_doc; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProductDoc resets all changes to the "product_doc" edge.
func (m *SessionMutation) ResetProductDoc() {
	m.product_doc = nil
	m.clearedproduct_doc = false
}

// AddPageIDs adds the "pages" edge to the Page entity by ids.
func (m *SessionMutation) AddPageIDs(ids ...string) {
	if m.pages == nil {
		m.pages = make(map[string]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the Page entity.
func (m *SessionMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the Page entity was cleared.
func (m *SessionMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the Page entity by IDs.
func (m *SessionMutation) RemovePageIDs(ids ...string) {
	if m.removedpages == nil {
		m.removedpages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the Page entity.
func (m *SessionMutation) RemovedPagesIDs() (ids []string) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *SessionMutation) PagesIDs() (ids []string) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *SessionMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the ProjectSnapshot entity by ids.
func (m *SessionMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the ProjectSnapshot entity.
func (m *SessionMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the ProjectSnapshot entity was cleared.
func (m *SessionMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the ProjectSnapshot entity by IDs.
func (m *SessionMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the ProjectSnapshot entity.
func (m *SessionMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *SessionMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *SessionMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddPlanIDs adds the "plans" edge to the Plan entity by ids.
func (m *SessionMutation) AddPlanIDs(ids ...string) {
	if m.plans == nil {
		m.plans = make(map[string]struct{})
	}
	for i := range ids {
		m.plans[ids[i]] = struct{}{}
	}
}

// ClearPlans clears the "plans" edge to the Plan entity.
func (m *SessionMutation) ClearPlans() {
	m.clearedplans = true
}

// PlansCleared reports if the "plans" edge to the Plan entity was cleared.
func (m *SessionMutation) PlansCleared() bool {
	return m.clearedplans
}

// RemovePlanIDs removes the "plans" edge to the Plan entity by IDs.
func (m *SessionMutation) RemovePlanIDs(ids ...string) {
	if m.removedplans == nil {
		m.removedplans = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.plans, ids[i])
		m.removedplans[ids[i]] = struct{}{}
	}
}

// RemovedPlans returns the removed IDs of the "plans" edge to the Plan entity.
func (m *SessionMutation) RemovedPlansIDs() (ids []string) {
	for id := range m.removedplans {
		ids = append(ids, id)
	}
	return
}

// PlansIDs returns the "plans" edge IDs in the mutation.
func (m *SessionMutation) PlansIDs() (ids []string) {
	for id := range m.plans {
		ids = append(ids, id)
	}
	return
}

// ResetPlans resets all changes to the "plans" edge.
func (m *SessionMutation) ResetPlans() {
	m.plans = nil
	m.clearedplans = false
	m.removedplans = nil
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SessionEvent entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SessionEvent entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SessionEvent entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SessionEvent entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.product_type != nil {
		fields = append(fields, session.FieldProductType)
	}
	if m.complexity != nil {
		fields = append(fields, session.FieldComplexity)
	}
	if m.skill_id != nil {
		fields = append(fields, session.FieldSkillID)
	}
	if m.doc_tier != nil {
		fields = append(fields, session.FieldDocTier)
	}
	if m.graph_state != nil {
		fields = append(fields, session.FieldGraphState)
	}
	if m.build_status != nil {
		fields = append(fields, session.FieldBuildStatus)
	}
	if m.build_artifacts != nil {
		fields = append(fields, session.FieldBuildArtifacts)
	}
	if m.aesthetic_scores != nil {
		fields = append(fields, session.FieldAestheticScores)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTitle:
		return m.Title()
	case session.FieldProductType:
		return m.ProductType()
	case session.FieldComplexity:
		return m.Complexity()
	case session.FieldSkillID:
		return m.SkillID()
	case session.FieldDocTier:
		return m.DocTier()
	case session.FieldGraphState:
		return m.GraphState()
	case session.FieldBuildStatus:
		return m.BuildStatus()
	case session.FieldBuildArtifacts:
		return m.BuildArtifacts()
	case session.FieldAestheticScores:
		return m.AestheticScores()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldProductType:
		return m.OldProductType(ctx)
	case session.FieldComplexity:
		return m.OldComplexity(ctx)
	case session.FieldSkillID:
		return m.OldSkillID(ctx)
	case session.FieldDocTier:
		return m.OldDocTier(ctx)
	case session.FieldGraphState:
		return m.OldGraphState(ctx)
	case session.FieldBuildStatus:
		return m.OldBuildStatus(ctx)
	case session.FieldBuildArtifacts:
		return m.OldBuildArtifacts(ctx)
	case session.FieldAestheticScores:
		return m.OldAestheticScores(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldProductType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductType(v)
		return nil
	case session.FieldComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	case session.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case session.FieldDocTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocTier(v)
		return nil
	case session.FieldGraphState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphState(v)
		return nil
	case session.FieldBuildStatus:
		v, ok := value.(session.BuildStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildStatus(v)
		return nil
	case session.FieldBuildArtifacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildArtifacts(v)
		return nil
	case session.FieldAestheticScores:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAestheticScores(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldTitle) {
		fields = append(fields, session.FieldTitle)
	}
	if m.FieldCleared(session.FieldProductType) {
		fields = append(fields, session.FieldProductType)
	}
	if m.FieldCleared(session.FieldComplexity) {
		fields = append(fields, session.FieldComplexity)
	}
	if m.FieldCleared(session.FieldSkillID) {
		fields = append(fields, session.FieldSkillID)
	}
	if m.FieldCleared(session.FieldDocTier) {
		fields = append(fields, session.FieldDocTier)
	}
	if m.FieldCleared(session.FieldGraphState) {
		fields = append(fields, session.FieldGraphState)
	}
	if m.FieldCleared(session.FieldBuildArtifacts) {
		fields = append(fields, session.FieldBuildArtifacts)
	}
	if m.FieldCleared(session.FieldAestheticScores) {
		fields = append(fields, session.FieldAestheticScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldTitle:
		m.ClearTitle()
		return nil
	case session.FieldProductType:
		m.ClearProductType()
		return nil
	case session.FieldComplexity:
		m.ClearComplexity()
		return nil
	case session.FieldSkillID:
		m.ClearSkillID()
		return nil
	case session.FieldDocTier:
		m.ClearDocTier()
		return nil
	case session.FieldGraphState:
		m.ClearGraphState()
		return nil
	case session.FieldBuildArtifacts:
		m.ClearBuildArtifacts()
		return nil
	case session.FieldAestheticScores:
		m.ClearAestheticScores()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldProductType:
		m.ResetProductType()
		return nil
	case session.FieldComplexity:
		m.ResetComplexity()
		return nil
	case session.FieldSkillID:
		m.ResetSkillID()
		return nil
	case session.FieldDocTier:
		m.ResetDocTier()
		return nil
	case session.FieldGraphState:
		m.ResetGraphState()
		return nil
	case session.FieldBuildStatus:
		m.ResetBuildStatus()
		return nil
	case session.FieldBuildArtifacts:
		m.ResetBuildArtifacts()
		return nil
	case session.FieldAestheticScores:
		m.ResetAestheticScores()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.runs != nil {
		edges = append(edges, session.EdgeRuns)
	}
	if m.product_doc != nil {
		edges = append(edges, session.EdgeProductDoc)
	}
	if m.pages != nil {
		edges = append(edges, session.EdgePages)
	}
	if m.snapshots != nil {
		edges = append(edges, session.EdgeSnapshots)
	}
	if m.plans != nil {
		edges = append(edges, session.EdgePlans)
	}
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeProductDoc:
		if id := m.product_doc; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case session.EdgePlans:
		ids := make([]ent.Value, 0, len(m.plans))
		for id := range m.plans {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedruns != nil {
		edges = append(edges, session.EdgeRuns)
	}
	if m.removedpages != nil {
		edges = append(edges, session.EdgePages)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, session.EdgeSnapshots)
	}
	if m.removedplans != nil {
		edges = append(edges, session.EdgePlans)
	}
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case session.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case session.EdgePlans:
		ids := make([]ent.Value, 0, len(m.removedplans))
		for id := range m.removedplans {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedruns {
		edges = append(edges, session.EdgeRuns)
	}
	if m.clearedproduct_doc {
		edges = append(edges, session.EdgeProductDoc)
	}
	if m.clearedpages {
		edges = append(edges, session.EdgePages)
	}
	if m.clearedsnapshots {
		edges = append(edges, session.EdgeSnapshots)
	}
	if m.clearedplans {
		edges = append(edges, session.EdgePlans)
	}
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeRuns:
		return m.clearedruns
	case session.EdgeProductDoc:
		return m.clearedproduct_doc
	case session.EdgePages:
		return m.clearedpages
	case session.EdgeSnapshots:
		return m.clearedsnapshots
	case session.EdgePlans:
		return m.clearedplans
	case session.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeProductDoc:
		m.ClearProductDoc()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeRuns:
		m.ResetRuns()
		return nil
	case session.EdgeProductDoc:
		m.ResetProductDoc()
		return nil
	case session.EdgePages:
		m.ResetPages()
		return nil
	case session.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case session.EdgePlans:
		m.ResetPlans()
		return nil
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	seq            *int64
	addseq         *int64
	run_id         *string
	event_id       *string
	_type          *string
	payload        *map[string]interface{}
	source         *sessionevent.Source
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionEvent, error)
	predicates     []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *SessionEventMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *SessionEventMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *SessionEventMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *SessionEventMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *SessionEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRunID sets the "run_id" field.
func (m *SessionEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SessionEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *SessionEventMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[sessionevent.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *SessionEventMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SessionEventMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, sessionevent.FieldRunID)
}

// SetEventID sets the "event_id" field.
func (m *SessionEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *SessionEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *SessionEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetType sets the "type" field.
func (m *SessionEventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SessionEventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SessionEventMutation) ResetType() {
	m._type = nil
}

// SetPayload sets the "payload" field.
func (m *SessionEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SessionEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *SessionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[sessionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *SessionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *SessionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, sessionevent.FieldPayload)
}

// SetSource sets the "source" field.
func (m *SessionEventMutation) SetSource(s sessionevent.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SessionEventMutation) Source() (r sessionevent.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSource(ctx context.Context) (v sessionevent.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SessionEventMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	if m.run_id != nil {
		fields = append(fields, sessionevent.FieldRunID)
	}
	if m.event_id != nil {
		fields = append(fields, sessionevent.FieldEventID)
	}
	if m._type != nil {
		fields = append(fields, sessionevent.FieldType)
	}
	if m.payload != nil {
		fields = append(fields, sessionevent.FieldPayload)
	}
	if m.source != nil {
		fields = append(fields, sessionevent.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, sessionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldSeq:
		return m.Seq()
	case sessionevent.FieldRunID:
		return m.RunID()
	case sessionevent.FieldEventID:
		return m.EventID()
	case sessionevent.FieldType:
		return m.GetType()
	case sessionevent.FieldPayload:
		return m.Payload()
	case sessionevent.FieldSource:
		return m.Source()
	case sessionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldSeq:
		return m.OldSeq(ctx)
	case sessionevent.FieldRunID:
		return m.OldRunID(ctx)
	case sessionevent.FieldEventID:
		return m.OldEventID(ctx)
	case sessionevent.FieldType:
		return m.OldType(ctx)
	case sessionevent.FieldPayload:
		return m.OldPayload(ctx)
	case sessionevent.FieldSource:
		return m.OldSource(ctx)
	case sessionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case sessionevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sessionevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case sessionevent.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case sessionevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case sessionevent.FieldSource:
		v, ok := value.(sessionevent.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case sessionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldRunID) {
		fields = append(fields, sessionevent.FieldRunID)
	}
	if m.FieldCleared(sessionevent.FieldPayload) {
		fields = append(fields, sessionevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldRunID:
		m.ClearRunID()
		return nil
	case sessionevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldSeq:
		m.ResetSeq()
		return nil
	case sessionevent.FieldRunID:
		m.ResetRunID()
		return nil
	case sessionevent.FieldEventID:
		m.ResetEventID()
		return nil
	case sessionevent.FieldType:
		m.ResetType()
		return nil
	case sessionevent.FieldPayload:
		m.ResetPayload()
		return nil
	case sessionevent.FieldSource:
		m.ResetSource()
		return nil
	case sessionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	description      *string
	agent_type       *string
	status           *task.Status
	progress         *int
	addprogress      *int
	depends_on       *[]string
	appenddepends_on []string
	can_parallel     *bool
	retry_count      *int
	addretry_count   *int
	error_message    *string
	result           *map[string]interface{}
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	plan             *string
	clearedplan      bool
	done             bool
	oldValue         func(context.Context) (*Task, error)
	predicates       []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanID sets the "plan_id" field.
func (m *TaskMutation) SetPlanID(s string) {
	m.plan = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *TaskMutation) PlanID() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *TaskMutation) ResetPlanID() {
	m.plan = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetAgentType sets the "agent_type" field.
func (m *TaskMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *TaskMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *TaskMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[task.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[task.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, task.FieldDependsOn)
}

// SetCanParallel sets the "can_parallel" field.
func (m *TaskMutation) SetCanParallel(b bool) {
	m.can_parallel = &b
}

// CanParallel returns the value of the "can_parallel" field in the mutation.
func (m *TaskMutation) CanParallel() (r bool, exists bool) {
	v := m.can_parallel
	if v == nil {
		return
	}
	return *v, true
}

// OldCanParallel returns the old "can_parallel" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCanParallel(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanParallel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanParallel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanParallel: %w", err)
	}
	return oldValue.CanParallel, nil
}

// ResetCanParallel resets all changes to the "can_parallel" field.
func (m *TaskMutation) ResetCanParallel() {
	m.can_parallel = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (m *TaskMutation) ClearPlan() {
	m.clearedplan = true
	m.clearedFields[task.FieldPlanID] = struct{}{}
}

// PlanCleared reports if the "plan" edge to the Plan entity was cleared.
func (m *TaskMutation) PlanCleared() bool {
	return m.clearedplan
}

// PlanIDs returns the "plan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) PlanIDs() (ids []string) {
	if id := m.plan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlan resets all changes to the "plan" edge.
func (m *TaskMutation) ResetPlan() {
	m.plan = nil
	m.clearedplan = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.plan != nil {
		fields = append(fields, task.FieldPlanID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.agent_type != nil {
		fields = append(fields, task.FieldAgentType)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.can_parallel != nil {
		fields = append(fields, task.FieldCanParallel)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPlanID:
		return m.PlanID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldAgentType:
		return m.AgentType()
	case task.FieldStatus:
		return m.Status()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldCanParallel:
		return m.CanParallel()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldResult:
		return m.Result()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldPlanID:
		return m.OldPlanID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldAgentType:
		return m.OldAgentType(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldCanParallel:
		return m.OldCanParallel(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldCanParallel:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanParallel(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldDependsOn) {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldPlanID:
		m.ResetPlanID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldAgentType:
		m.ResetAgentType()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldCanParallel:
		m.ResetCanParallel()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plan != nil {
		edges = append(edges, task.EdgePlan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgePlan:
		if id := m.plan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplan {
		edges = append(edges, task.EdgePlan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgePlan:
		return m.clearedplan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgePlan:
		m.ClearPlan()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgePlan:
		m.ResetPlan()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
