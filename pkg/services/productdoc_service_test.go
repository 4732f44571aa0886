package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdoc "github.com/TheSmartAz/instant-coffee-sub001/ent/productdoc"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func newDocFixture(t *testing.T, retention *config.RetentionConfig) (*ProductDocService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)

	return NewProductDocService(client.Client, retention), session.ID
}

func TestCreateDoc(t *testing.T) {
	docs, sessionID := newDocFixture(t, nil)
	ctx := context.Background()

	doc, err := docs.CreateDoc(ctx, sessionID, "# Landing page", map[string]interface{}{"pages": []interface{}{"index"}})
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, entdoc.StatusDraft, doc.Status)

	history, err := docs.ListHistory(ctx, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Version)

	_, err = docs.CreateDoc(ctx, sessionID, "again", nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateDoc_Validation(t *testing.T) {
	docs, sessionID := newDocFixture(t, nil)
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, "", "content", nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "session_id", ve.Field)

	_, err = docs.CreateDoc(ctx, sessionID, "", nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)

	_, err = docs.CreateDoc(ctx, "missing", "content", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDoc_VersionsAndMerge(t *testing.T) {
	docs, sessionID := newDocFixture(t, nil)
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, sessionID, "v1 content", map[string]interface{}{
		"style": map[string]interface{}{"primary": "#111", "font": "Inter"},
	})
	require.NoError(t, err)

	updated, history, err := docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{
		Content: "v2 content",
		Structured: map[string]interface{}{
			"style": map[string]interface{}{"primary": "#222"},
		},
		ChangeSummary: "darker palette",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "v2 content", updated.Content)
	assert.Equal(t, 2, history.Version)
	assert.Equal(t, "darker palette", history.ChangeSummary)

	// Nested keys merge; untouched siblings survive.
	style := updated.Structured["style"].(map[string]interface{})
	assert.Equal(t, "#222", style["primary"])
	assert.Equal(t, "Inter", style["font"])

	// Empty content keeps the previous text but still bumps the version.
	updated, _, err = docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{
		Structured: map[string]interface{}{"notes": "keep"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Version)
	assert.Equal(t, "v2 content", updated.Content)
}

func TestUpdateDoc_InvalidSource(t *testing.T) {
	docs, sessionID := newDocFixture(t, nil)
	ctx := context.Background()

	_, _, err := docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{Content: "x", Source: "wizard"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "source", ve.Field)
}

func TestDocTransitions(t *testing.T) {
	docs, sessionID := newDocFixture(t, nil)
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, sessionID, "content", nil)
	require.NoError(t, err)

	// draft -> outdated is not allowed.
	_, err = docs.MarkOutdated(ctx, sessionID)
	assert.True(t, IsStateConflict(err))

	confirmed, err := docs.Confirm(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entdoc.StatusConfirmed, confirmed.Status)

	// Confirming twice is a no-op.
	confirmed, err = docs.Confirm(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entdoc.StatusConfirmed, confirmed.Status)

	outdated, err := docs.MarkOutdated(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entdoc.StatusOutdated, outdated.Status)

	reconfirmed, err := docs.Confirm(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entdoc.StatusConfirmed, reconfirmed.Status)
}

func TestHistoryRetention_ReleasesOldAutoRevisions(t *testing.T) {
	docs, sessionID := newDocFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2})
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, sessionID, "v1", nil)
	require.NoError(t, err)
	for _, content := range []string{"v2", "v3"} {
		time.Sleep(5 * time.Millisecond)
		_, _, err = docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{Content: content})
		require.NoError(t, err)
	}

	history, err := docs.ListHistory(ctx, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Newest first: v3 and v2 kept, v1 released with payload pruned.
	assert.False(t, history[0].IsReleased)
	assert.False(t, history[1].IsReleased)
	assert.True(t, history[2].IsReleased)
	assert.Nil(t, history[2].Content)
	assert.NotNil(t, history[2].ReleasedAt)
	assert.NotNil(t, history[2].PayloadPrunedAt)
}

func TestHistoryRetention_FailureKeepsCommittedRevision(t *testing.T) {
	docs, sessionID := newDocFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2})
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, sessionID, "v1", nil)
	require.NoError(t, err)
	updated, history, err := docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{Content: "v2"})
	require.NoError(t, err)
	require.Equal(t, 2, history.Version)

	// A retention pass that cannot open its transaction is logged and
	// dropped; the revision committed just before it stays readable.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	docs.runHistoryRetention(cancelled, updated.ID)

	rows, err := docs.ListHistory(ctx, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].IsReleased)
	require.NotNil(t, rows[0].Content)
	assert.Equal(t, "v2", *rows[0].Content)
}

func TestPinHistory_CapAndUnrelease(t *testing.T) {
	docs, sessionID := newDocFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 1})
	ctx := context.Background()

	_, err := docs.CreateDoc(ctx, sessionID, "v1", nil)
	require.NoError(t, err)
	for _, content := range []string{"v2", "v3"} {
		time.Sleep(5 * time.Millisecond)
		_, _, err = docs.UpdateDoc(ctx, sessionID, models.UpdateProductDocRequest{Content: content})
		require.NoError(t, err)
	}

	history, err := docs.ListHistory(ctx, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	oldest := history[2]
	require.True(t, oldest.IsReleased)

	// Pinning a released row keeps it and clears the release flag. The
	// pruned payload does not come back.
	pinned, err := docs.PinHistory(ctx, oldest.ID, true)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	refreshed, err := docs.ListHistory(ctx, sessionID, 10)
	require.NoError(t, err)
	assert.False(t, refreshed[2].IsReleased)
	assert.Nil(t, refreshed[2].Content)

	// Cap is two: third pin fails with the occupying ids.
	_, err = docs.PinHistory(ctx, history[1].ID, true)
	require.NoError(t, err)

	_, err = docs.PinHistory(ctx, history[0].ID, true)
	require.True(t, IsPinnedLimit(err))
	var pl *PinnedLimitError
	require.ErrorAs(t, err, &pl)
	assert.Equal(t, 2, pl.Limit)
	assert.Len(t, pl.CurrentPinned, 2)

	// Unpinning frees a slot.
	_, err = docs.PinHistory(ctx, history[1].ID, false)
	require.NoError(t, err)
	_, err = docs.PinHistory(ctx, history[0].ID, true)
	assert.NoError(t, err)
}
