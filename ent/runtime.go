// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/TheSmartAz/instant-coffee-sub001/ent/page"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/pageversion"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/plan"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/productdochistory"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/projectsnapshot"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/run"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/schema"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/session"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/sessionevent"
	"github.com/TheSmartAz/instant-coffee-sub001/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescSlug is the schema descriptor for slug field.
	pageDescSlug := pageFields[2].Descriptor()
	// page.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	page.SlugValidator = pageDescSlug.Validators[0].(func(string) error)
	// pageDescOrderIndex is the schema descriptor for order_index field.
	pageDescOrderIndex := pageFields[5].Descriptor()
	// page.DefaultOrderIndex holds the default value on creation for the order_index field.
	page.DefaultOrderIndex = pageDescOrderIndex.Default.(int)
	// pageDescCreatedAt is the schema descriptor for created_at field.
	pageDescCreatedAt := pageFields[7].Descriptor()
	// page.DefaultCreatedAt holds the default value on creation for the created_at field.
	page.DefaultCreatedAt = pageDescCreatedAt.Default.(func() time.Time)
	// pageDescUpdatedAt is the schema descriptor for updated_at field.
	pageDescUpdatedAt := pageFields[8].Descriptor()
	// page.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	page.DefaultUpdatedAt = pageDescUpdatedAt.Default.(func() time.Time)
	// page.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	page.UpdateDefaultUpdatedAt = pageDescUpdatedAt.UpdateDefault.(func() time.Time)
	pageversionFields := schema.PageVersion{}.Fields()
	_ = pageversionFields
	// pageversionDescIsPinned is the schema descriptor for is_pinned field.
	pageversionDescIsPinned := pageversionFields[6].Descriptor()
	// pageversion.DefaultIsPinned holds the default value on creation for the is_pinned field.
	pageversion.DefaultIsPinned = pageversionDescIsPinned.Default.(bool)
	// pageversionDescIsReleased is the schema descriptor for is_released field.
	pageversionDescIsReleased := pageversionFields[7].Descriptor()
	// pageversion.DefaultIsReleased holds the default value on creation for the is_released field.
	pageversion.DefaultIsReleased = pageversionDescIsReleased.Default.(bool)
	// pageversionDescFallbackUsed is the schema descriptor for fallback_used field.
	pageversionDescFallbackUsed := pageversionFields[10].Descriptor()
	// pageversion.DefaultFallbackUsed holds the default value on creation for the fallback_used field.
	pageversion.DefaultFallbackUsed = pageversionDescFallbackUsed.Default.(bool)
	// pageversionDescCreatedAt is the schema descriptor for created_at field.
	pageversionDescCreatedAt := pageversionFields[11].Descriptor()
	// pageversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	pageversion.DefaultCreatedAt = pageversionDescCreatedAt.Default.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[4].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[5].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	productdocFields := schema.ProductDoc{}.Fields()
	_ = productdocFields
	// productdocDescVersion is the schema descriptor for version field.
	productdocDescVersion := productdocFields[4].Descriptor()
	// productdoc.DefaultVersion holds the default value on creation for the version field.
	productdoc.DefaultVersion = productdocDescVersion.Default.(int)
	// productdocDescCreatedAt is the schema descriptor for created_at field.
	productdocDescCreatedAt := productdocFields[7].Descriptor()
	// productdoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	productdoc.DefaultCreatedAt = productdocDescCreatedAt.Default.(func() time.Time)
	// productdocDescUpdatedAt is the schema descriptor for updated_at field.
	productdocDescUpdatedAt := productdocFields[8].Descriptor()
	// productdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	productdoc.DefaultUpdatedAt = productdocDescUpdatedAt.Default.(func() time.Time)
	// productdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	productdoc.UpdateDefaultUpdatedAt = productdocDescUpdatedAt.UpdateDefault.(func() time.Time)
	productdochistoryFields := schema.ProductDocHistory{}.Fields()
	_ = productdochistoryFields
	// productdochistoryDescIsPinned is the schema descriptor for is_pinned field.
	productdochistoryDescIsPinned := productdochistoryFields[8].Descriptor()
	// productdochistory.DefaultIsPinned holds the default value on creation for the is_pinned field.
	productdochistory.DefaultIsPinned = productdochistoryDescIsPinned.Default.(bool)
	// productdochistoryDescIsReleased is the schema descriptor for is_released field.
	productdochistoryDescIsReleased := productdochistoryFields[9].Descriptor()
	// productdochistory.DefaultIsReleased holds the default value on creation for the is_released field.
	productdochistory.DefaultIsReleased = productdochistoryDescIsReleased.Default.(bool)
	// productdochistoryDescCreatedAt is the schema descriptor for created_at field.
	productdochistoryDescCreatedAt := productdochistoryFields[12].Descriptor()
	// productdochistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	productdochistory.DefaultCreatedAt = productdochistoryDescCreatedAt.Default.(func() time.Time)
	projectsnapshotFields := schema.ProjectSnapshot{}.Fields()
	_ = projectsnapshotFields
	// projectsnapshotDescDocVersion is the schema descriptor for doc_version field.
	projectsnapshotDescDocVersion := projectsnapshotFields[7].Descriptor()
	// projectsnapshot.DefaultDocVersion holds the default value on creation for the doc_version field.
	projectsnapshot.DefaultDocVersion = projectsnapshotDescDocVersion.Default.(int)
	// projectsnapshotDescIsPinned is the schema descriptor for is_pinned field.
	projectsnapshotDescIsPinned := projectsnapshotFields[9].Descriptor()
	// projectsnapshot.DefaultIsPinned holds the default value on creation for the is_pinned field.
	projectsnapshot.DefaultIsPinned = projectsnapshotDescIsPinned.Default.(bool)
	// projectsnapshotDescIsReleased is the schema descriptor for is_released field.
	projectsnapshotDescIsReleased := projectsnapshotFields[10].Descriptor()
	// projectsnapshot.DefaultIsReleased holds the default value on creation for the is_released field.
	projectsnapshot.DefaultIsReleased = projectsnapshotDescIsReleased.Default.(bool)
	// projectsnapshotDescCreatedAt is the schema descriptor for created_at field.
	projectsnapshotDescCreatedAt := projectsnapshotFields[13].Descriptor()
	// projectsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectsnapshot.DefaultCreatedAt = projectsnapshotDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescTriggerSource is the schema descriptor for trigger_source field.
	runDescTriggerSource := runFields[3].Descriptor()
	// run.DefaultTriggerSource holds the default value on creation for the trigger_source field.
	run.DefaultTriggerSource = runDescTriggerSource.Default.(string)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[11].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescStateChangedAt is the schema descriptor for state_changed_at field.
	runDescStateChangedAt := runFields[14].Descriptor()
	// run.DefaultStateChangedAt holds the default value on creation for the state_changed_at field.
	run.DefaultStateChangedAt = runDescStateChangedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[10].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[11].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescCreatedAt is the schema descriptor for created_at field.
	sessioneventDescCreatedAt := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionevent.DefaultCreatedAt = sessioneventDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[6].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// taskDescCanParallel is the schema descriptor for can_parallel field.
	taskDescCanParallel := taskFields[8].Descriptor()
	// task.DefaultCanParallel holds the default value on creation for the can_parallel field.
	task.DefaultCanParallel = taskDescCanParallel.Default.(bool)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[9].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
