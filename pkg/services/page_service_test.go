package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
	testdb "github.com/TheSmartAz/instant-coffee-sub001/test/database"
)

func newPageFixture(t *testing.T, retention *config.RetentionConfig) (*PageService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	sessions := NewSessionService(client.Client)
	session, err := sessions.CreateSession(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)

	return NewPageService(client.Client, retention), session.ID
}

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"About Us", "about-us"},
		{"  pricing  ", "pricing"},
		{"FAQ_page", "faq-page"},
		{"a--b---c", "a-b-c"},
		{"-index-", "index"},
	}
	for _, tc := range cases {
		got, err := NormalizeSlug(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"", "   ", "---", "page!", "über", "this-slug-is-way-too-long-to-pass-the-length-cap-check"} {
		_, err := NormalizeSlug(bad)
		assert.Error(t, err, bad)
	}
}

func TestCreatePage(t *testing.T) {
	pages, sessionID := newPageFixture(t, nil)
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{
		SessionID: sessionID,
		Slug:      "About Us",
		Title:     "About",
	})
	require.NoError(t, err)
	assert.Equal(t, "about-us", page.Slug)

	// Slug is unique per session.
	_, err = pages.CreatePage(ctx, models.CreatePageRequest{
		SessionID: sessionID,
		Slug:      "about-us",
		Title:     "Duplicate",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	found, err := pages.GetBySlug(ctx, sessionID, "about-us")
	require.NoError(t, err)
	assert.Equal(t, page.ID, found.ID)
}

func TestCreateVersion_NumbersAndCurrent(t *testing.T) {
	pages, sessionID := newPageFixture(t, nil)
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{SessionID: sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)

	v1, err := pages.CreateVersion(ctx, page.ID, "<html>v1</html>", "initial", "auto", false)
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)

	v2, err := pages.CreateVersion(ctx, page.ID, "<html>v2</html>", "", "auto", true)
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	assert.True(t, v2.FallbackUsed)

	current, err := pages.GetCurrent(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, current.ID)

	_, err = pages.CreateVersion(ctx, page.ID, "<html/>", "", "wizard", false)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "source", ve.Field)

	_, err = pages.CreateVersion(ctx, "missing", "<html/>", "", "auto", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersionRetention_ReleasedPreviewFails(t *testing.T) {
	pages, sessionID := newPageFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2})
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{SessionID: sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)

	for _, html := range []string{"<html>v1</html>", "<html>v2</html>", "<html>v3</html>"} {
		time.Sleep(5 * time.Millisecond)
		_, err = pages.CreateVersion(ctx, page.ID, html, "", "auto", false)
		require.NoError(t, err)
	}

	versions, err := pages.ListVersions(ctx, page.ID, 10)
	require.NoError(t, err)
	require.Len(t, versions, 3)

	oldest := versions[2]
	assert.True(t, oldest.IsReleased)
	assert.Nil(t, oldest.HTML)

	_, err = pages.PreviewVersion(ctx, page.ID, oldest.ID)
	assert.ErrorIs(t, err, ErrVersionReleased)

	kept, err := pages.PreviewVersion(ctx, page.ID, versions[0].ID)
	require.NoError(t, err)
	require.NotNil(t, kept.HTML)
	assert.Equal(t, "<html>v3</html>", *kept.HTML)
}

func TestPinVersion_Cap(t *testing.T) {
	pages, sessionID := newPageFixture(t, &config.RetentionConfig{MaxPinned: 1, MaxAuto: 5})
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{SessionID: sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)

	v1, err := pages.CreateVersion(ctx, page.ID, "<html>v1</html>", "", "auto", false)
	require.NoError(t, err)
	v2, err := pages.CreateVersion(ctx, page.ID, "<html>v2</html>", "", "auto", false)
	require.NoError(t, err)

	_, err = pages.PinVersion(ctx, v1.ID, true)
	require.NoError(t, err)

	_, err = pages.PinVersion(ctx, v2.ID, true)
	require.True(t, IsPinnedLimit(err))

	// Re-pinning an already pinned version does not trip the cap.
	pinned, err := pages.PinVersion(ctx, v1.ID, true)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)
}

func TestBuildPreview_InlinesCSS(t *testing.T) {
	pages, sessionID := newPageFixture(t, nil)
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{SessionID: sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)
	_, err = pages.CreateVersion(ctx, page.ID, "<html><head><title>x</title></head><body/></html>", "", "auto", false)
	require.NoError(t, err)

	_, html, err := pages.BuildPreview(ctx, page.ID, ":root { --primary: #111; }")
	require.NoError(t, err)
	assert.Contains(t, html, "<style>")
	assert.Less(t, strings.Index(html, "<style>"), strings.Index(html, "</head>"))
}

func TestInlineCSS(t *testing.T) {
	out := InlineCSS("<html><head></head><body/></html>", "body{}")
	assert.Contains(t, out, "<style>\nbody{}\n</style></head>")

	// No head close tag: prepend.
	out = InlineCSS("<div/>", "body{}")
	assert.True(t, strings.HasPrefix(out, "<style>"))

	assert.Equal(t, "<div/>", InlineCSS("<div/>", ""))
}

func TestVersionRetention_FailureKeepsCommittedVersion(t *testing.T) {
	pages, sessionID := newPageFixture(t, &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2})
	ctx := context.Background()

	page, err := pages.CreatePage(ctx, models.CreatePageRequest{SessionID: sessionID, Slug: "index", Title: "Home"})
	require.NoError(t, err)
	version, err := pages.CreateVersion(ctx, page.ID, "<html>v1</html>", "", "auto", false)
	require.NoError(t, err)

	// A retention pass that cannot open its transaction is logged and
	// dropped; the version committed just before it stays intact.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	pages.runVersionRetention(cancelled, page.ID)

	kept, err := pages.PreviewVersion(ctx, page.ID, version.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsReleased)
	require.NotNil(t, kept.HTML)
	assert.Equal(t, "<html>v1</html>", *kept.HTML)
}
