package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/appdata"
	"github.com/TheSmartAz/instant-coffee-sub001/pkg/models"
)

func TestParsePageBullets(t *testing.T) {
	content := `# Overview
A small shop site.

# Audience
- shoppers who should not parse as pages

# Pages
- index - Home - main landing page
* about - About
- contact
not a bullet
`
	pages := parsePageBullets(content)
	require.Len(t, pages, 3)

	first := pages[0].(map[string]interface{})
	assert.Equal(t, "index", first["slug"])
	assert.Equal(t, "Home", first["title"])
	assert.Equal(t, "main landing page", first["purpose"])

	second := pages[1].(map[string]interface{})
	assert.Equal(t, "about", second["slug"])
	assert.Equal(t, "About", second["title"])
	_, ok := second["purpose"]
	assert.False(t, ok)

	third := pages[2].(map[string]interface{})
	assert.Equal(t, "contact", third["slug"])
}

func TestParsePageBullets_NoPagesSection(t *testing.T) {
	assert.Empty(t, parsePageBullets("# Overview\n- just bullets\n"))
	assert.Empty(t, parsePageBullets(""))
}

func TestParseJSONObject(t *testing.T) {
	out := parseJSONObject("Here you go:\n```json\n{\"color\": \"#fff\", \"radius\": \"4px\"}\n```\nEnjoy!")
	require.NotNil(t, out)
	assert.Equal(t, "#fff", out["color"])
	assert.Equal(t, "4px", out["radius"])

	assert.Nil(t, parseJSONObject("no json here"))
	assert.Nil(t, parseJSONObject("{broken"))
	assert.Nil(t, parseJSONObject("{\"truncated\": "))
	assert.Nil(t, parseJSONObject("{}"))
}

func TestTokensToCSS(t *testing.T) {
	css := tokensToCSS(map[string]interface{}{
		"color_primary": "#123456",
		"spacing_unit":  "8px",
	})
	assert.True(t, strings.HasPrefix(css, ":root {"))
	assert.True(t, strings.HasSuffix(css, "}"))
	assert.Contains(t, css, "--color-primary: #123456;")
	assert.Contains(t, css, "--spacing-unit: 8px;")

	assert.Empty(t, tokensToCSS(nil))
}

func TestPlannedPages(t *testing.T) {
	state := &models.GraphState{
		ProductDoc: map[string]interface{}{
			"structured": map[string]interface{}{
				"pages": []interface{}{
					map[string]interface{}{"slug": "index", "title": "Home", "purpose": "landing"},
					map[string]interface{}{"slug": "about"},
					map[string]interface{}{"title": "no slug, skipped"},
					"not an object",
				},
			},
		},
	}

	specs := plannedPages(state)
	require.Len(t, specs, 2)
	assert.Equal(t, pageSpec{slug: "index", title: "Home", purpose: "landing"}, specs[0])
	// Missing title falls back to the slug.
	assert.Equal(t, "about", specs[1].title)
}

func TestPlannedPages_DefaultsToIndex(t *testing.T) {
	specs := plannedPages(&models.GraphState{})
	require.Len(t, specs, 1)
	assert.Equal(t, "index", specs[0].slug)
	assert.Equal(t, "Home", specs[0].title)
}

func TestTableSpecs(t *testing.T) {
	specs := tableSpecs(map[string]interface{}{
		"products": map[string]interface{}{
			"name":  "text",
			"price": "real",
		},
		"bad": "not a column map",
	})
	require.Len(t, specs, 1)
	assert.Equal(t, "products", specs[0].Name)
	assert.ElementsMatch(t, []appdata.ColumnSpec{
		{Name: "name", Type: "text"},
		{Name: "price", Type: "real"},
	}, specs[0].Columns)
}
