package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
)

// items helper: index 0 is the newest, matching the descending order
// planRetention expects.
func retentionFixture(specs ...retentionItem) []retentionItem {
	base := time.Now().UTC()
	for i := range specs {
		if specs[i].ID == "" {
			specs[i].ID = fmt.Sprintf("v%d", len(specs)-i)
		}
		specs[i].CreatedAt = base.Add(-time.Duration(i) * time.Minute)
	}
	return specs
}

func TestPlanRetention_KeepsNewestAuto(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2}
	items := retentionFixture(
		retentionItem{ID: "v4", Source: "auto"},
		retentionItem{ID: "v3", Source: "auto"},
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "auto"},
	)

	plan := planRetention(items, cfg)
	assert.ElementsMatch(t, []string{"v2", "v1"}, plan.Release)
	assert.Empty(t, plan.Unrelease)
}

func TestPlanRetention_PinnedSurviveBeyondAutoWindow(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 1}
	items := retentionFixture(
		retentionItem{ID: "v3", Source: "auto"},
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "auto", IsPinned: true},
	)

	plan := planRetention(items, cfg)
	assert.Equal(t, []string{"v2"}, plan.Release)
}

func TestPlanRetention_ManualUnpinnedReleased(t *testing.T) {
	cfg := config.DefaultRetentionConfig()
	items := retentionFixture(
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "manual"},
	)

	plan := planRetention(items, cfg)
	assert.Equal(t, []string{"v1"}, plan.Release)
}

func TestPlanRetention_NewestChildAlwaysKept(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 1}
	items := retentionFixture(
		retentionItem{ID: "v3", Source: "rollback"},
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "manual"},
	)

	plan := planRetention(items, cfg)
	assert.Equal(t, []string{"v1"}, plan.Release)
}

func TestPlanRetention_UnreleasesKeptItems(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 1}
	items := retentionFixture(
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "manual", IsPinned: true, IsReleased: true},
	)

	plan := planRetention(items, cfg)
	assert.Empty(t, plan.Release)
	assert.Equal(t, []string{"v1"}, plan.Unrelease)
}

func TestPlanRetention_IdempotentOnStableSet(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 2}
	items := retentionFixture(
		retentionItem{ID: "v3", Source: "auto"},
		retentionItem{ID: "v2", Source: "auto"},
		retentionItem{ID: "v1", Source: "auto", IsReleased: true},
	)

	plan := planRetention(items, cfg)
	assert.Empty(t, plan.Release)
	assert.Empty(t, plan.Unrelease)
}

func TestCheckPinLimit(t *testing.T) {
	cfg := &config.RetentionConfig{MaxPinned: 2, MaxAuto: 5}

	assert.NoError(t, checkPinLimit([]string{"a"}, cfg))

	err := checkPinLimit([]string{"a", "b"}, cfg)
	require.True(t, IsPinnedLimit(err))

	var pl *PinnedLimitError
	require.ErrorAs(t, err, &pl)
	assert.Equal(t, 2, pl.Limit)
	assert.Equal(t, []string{"a", "b"}, pl.CurrentPinned)
}

func TestMergeDeep(t *testing.T) {
	dst := map[string]interface{}{
		"name": "coffee",
		"style": map[string]interface{}{
			"primary": "#111",
			"font":    "Inter",
		},
		"pages": []interface{}{"index"},
	}
	src := map[string]interface{}{
		"style": map[string]interface{}{
			"primary": "#222",
		},
		"pages": []interface{}{"index", "about"},
	}

	out := mergeDeep(dst, src)

	assert.Equal(t, "coffee", out["name"])
	style := out["style"].(map[string]interface{})
	assert.Equal(t, "#222", style["primary"])
	assert.Equal(t, "Inter", style["font"])
	// Arrays overwrite wholesale.
	assert.Equal(t, []interface{}{"index", "about"}, out["pages"])

	// Inputs are not mutated.
	assert.Equal(t, "#111", dst["style"].(map[string]interface{})["primary"])
}
