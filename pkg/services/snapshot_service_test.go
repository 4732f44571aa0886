package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

type snapshotFixture struct {
	docs      *ProductDocService
	pages     *PageService
	snapshots *SnapshotService
	sessionID string
}

func newSnapshotFixture(t *testing.T, retention *config.RetentionConfig) snapshotFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)

	docs := NewProductDocService(client.Client, retention)
	pages := NewPageService(client.Client, retention)
	return snapshotFixture{
		docs:      docs,
		pages:     pages,
		snapshots: NewSnapshotService(client.Client, retention, docs, pages),
		sessionID: session.ID,
	}
}

func TestCreateSnapshot_CapturesDocAndPages(t *testing.T) {
	f := newSnapshotFixture(t, nil)
	ctx := context.Background()

	_, err := f.docs.CreateDoc(ctx, f.sessionID, "the doc", nil)
	require.NoError(t, err)
	page, err := f.pages.CreatePage(ctx, models.CreatePageRequest{SessionID: f.sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)
	_, err = f.pages.CreateVersion(ctx, page.ID, "<html>home</html>", "", "auto", false)
	require.NoError(t, err)

	snap, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "first")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.SnapshotNumber)
	require.NotNil(t, snap.DocContent)
	assert.Equal(t, "the doc", *snap.DocContent)
	require.Len(t, snap.Pages, 1)
	assert.Equal(t, "index", snap.Pages[0]["slug"])
	assert.Equal(t, "<html>home</html>", snap.Pages[0]["html"])

	second, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
	require.NoError(t, err)
	assert.Equal(t, 2, second.SnapshotNumber)

	_, err = f.snapshots.CreateSnapshot(ctx, f.sessionID, "wizard", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "source", ve.Field)
}

func TestCreateSnapshot_EmptySession(t *testing.T) {
	f := newSnapshotFixture(t, nil)

	snap, err := f.snapshots.CreateSnapshot(context.Background(), f.sessionID, "auto", "")
	require.NoError(t, err)
	assert.Nil(t, snap.DocContent)
	assert.Empty(t, snap.Pages)
}

func TestRollbackToSnapshot(t *testing.T) {
	f := newSnapshotFixture(t, nil)
	ctx := context.Background()

	_, err := f.docs.CreateDoc(ctx, f.sessionID, "doc v1", nil)
	require.NoError(t, err)
	page, err := f.pages.CreatePage(ctx, models.CreatePageRequest{SessionID: f.sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)
	_, err = f.pages.CreateVersion(ctx, page.ID, "<html>old</html>", "", "auto", false)
	require.NoError(t, err)

	snap, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "before edits")
	require.NoError(t, err)

	// Drift away from the captured state.
	_, _, err = f.docs.UpdateDoc(ctx, f.sessionID, models.UpdateProductDocRequest{Content: "doc v2"})
	require.NoError(t, err)
	_, err = f.pages.CreateVersion(ctx, page.ID, "<html>new</html>", "", "auto", false)
	require.NoError(t, err)

	after, err := f.snapshots.RollbackToSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "rollback", string(after.Source))
	assert.Greater(t, after.SnapshotNumber, snap.SnapshotNumber)

	doc, err := f.docs.GetBySession(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, "doc v1", doc.Content)

	current, err := f.pages.GetCurrent(ctx, page.ID)
	require.NoError(t, err)
	require.NotNil(t, current.HTML)
	assert.Equal(t, "<html>old</html>", *current.HTML)
	assert.Equal(t, "rollback", string(current.Source))
}

func TestRollbackToSnapshot_RestoresDeletedPage(t *testing.T) {
	f := newSnapshotFixture(t, nil)
	ctx := context.Background()

	_, err := f.docs.CreateDoc(ctx, f.sessionID, "doc", nil)
	require.NoError(t, err)
	page, err := f.pages.CreatePage(ctx, models.CreatePageRequest{SessionID: f.sessionID, Slug: "about", Title: "About", OrderIndex: 3})
	require.NoError(t, err)
	_, err = f.pages.CreateVersion(ctx, page.ID, "<html>about</html>", "", "auto", false)
	require.NoError(t, err)

	snap, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
	require.NoError(t, err)

	// Simulate the page going away: rollback recreates it from the copy.
	require.NoError(t, f.snapshots.client.Page.DeleteOneID(page.ID).Exec(ctx))

	_, err = f.snapshots.RollbackToSnapshot(ctx, snap.ID)
	require.NoError(t, err)

	restored, err := f.pages.GetBySlug(ctx, f.sessionID, "about")
	require.NoError(t, err)
	assert.Equal(t, "About", restored.Title)
	assert.Equal(t, 3, restored.OrderIndex)

	current, err := f.pages.GetCurrent(ctx, restored.ID)
	require.NoError(t, err)
	require.NotNil(t, current.HTML)
	assert.Equal(t, "<html>about</html>", *current.HTML)
}

func TestRollbackToSnapshot_ReleasedFails(t *testing.T) {
	f := newSnapshotFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 1})
	ctx := context.Background()

	_, err := f.docs.CreateDoc(ctx, f.sessionID, "doc", nil)
	require.NoError(t, err)

	first, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
	require.NoError(t, err)

	released, err := f.snapshots.GetSnapshot(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, released.IsReleased)
	assert.Nil(t, released.DocContent)

	_, err = f.snapshots.RollbackToSnapshot(ctx, first.ID)
	assert.ErrorIs(t, err, ErrVersionReleased)
}

func TestPinSnapshot_Cap(t *testing.T) {
	f := newSnapshotFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 5})
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		time.Sleep(5 * time.Millisecond)
		snap, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
		require.NoError(t, err)
		ids = append(ids, snap.ID)
	}

	_, err := f.snapshots.PinSnapshot(ctx, ids[0], true)
	require.NoError(t, err)
	_, err = f.snapshots.PinSnapshot(ctx, ids[1], true)
	require.NoError(t, err)

	_, err = f.snapshots.PinSnapshot(ctx, ids[2], true)
	require.True(t, IsPinnedLimit(err))
	var pl *PinnedLimitError
	require.ErrorAs(t, err, &pl)
	assert.ElementsMatch(t, []string{ids[0], ids[1]}, pl.CurrentPinned)

	unpinned, err := f.snapshots.GetSnapshot(ctx, ids[2])
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
}

func TestSnapshotRetention_FailureKeepsCommittedSnapshot(t *testing.T) {
	f := newSnapshotFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2})
	ctx := context.Background()

	_, err := f.docs.CreateDoc(ctx, f.sessionID, "the doc", nil)
	require.NoError(t, err)
	snap, err := f.snapshots.CreateSnapshot(ctx, f.sessionID, "auto", "")
	require.NoError(t, err)

	// A retention pass that cannot open its transaction is logged and
	// dropped; the snapshot committed just before it stays intact.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	f.snapshots.runSnapshotRetention(cancelled, f.sessionID)

	kept, err := f.snapshots.GetSnapshot(ctx, snap.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsReleased)
	require.NotNil(t, kept.DocContent)
	assert.Equal(t, "the doc", *kept.DocContent)
}
