package services

import (
	"time"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/config"
)

// retentionItem is the type-agnostic view of one versioned child row
// (product-doc history, page version, or project snapshot).
type retentionItem struct {
	ID         string
	Source     string
	IsPinned   bool
	IsReleased bool
	CreatedAt  time.Time
}

// retentionPlan lists the ids whose release flag must change. Releasing
// nulls payload columns; un-releasing restores bookkeeping only and can
// arise solely from racing pins.
type retentionPlan struct {
	Release   []string
	Unrelease []string
}

// planRetention computes which children to release for one parent. Items
// must be ordered by descending creation. Kept: up to MaxPinned pinned
// children, up to MaxAuto children with source=auto, and always the
// newest child — a manual edit or rollback replay must not be pruned by
// the very append that created it. Everything else is released.
func planRetention(items []retentionItem, cfg *config.RetentionConfig) retentionPlan {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}

	keep := make(map[string]bool, len(items))
	if len(items) > 0 {
		keep[items[0].ID] = true
	}
	pinned, auto := 0, 0
	for _, item := range items {
		if item.IsPinned && pinned < cfg.MaxPinned {
			keep[item.ID] = true
			pinned++
		}
		if item.Source == "auto" && auto < cfg.MaxAuto {
			keep[item.ID] = true
			auto++
		}
	}

	var plan retentionPlan
	for _, item := range items {
		switch {
		case !keep[item.ID] && !item.IsReleased:
			plan.Release = append(plan.Release, item.ID)
		case keep[item.ID] && item.IsReleased:
			plan.Unrelease = append(plan.Unrelease, item.ID)
		}
	}
	return plan
}

// checkPinLimit fails with a pinned-limit error when pinning one more
// child would exceed the cap. currentPinned lists the occupying ids.
func checkPinLimit(currentPinned []string, cfg *config.RetentionConfig) error {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	if len(currentPinned) >= cfg.MaxPinned {
		return &PinnedLimitError{Limit: cfg.MaxPinned, CurrentPinned: currentPinned}
	}
	return nil
}
