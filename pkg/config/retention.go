package config

// RetentionConfig controls the shared pin/auto retention policy applied to
// product-doc histories, page versions, and project snapshots.
type RetentionConfig struct {
	// MaxPinned is the hard cap of pinned children per parent. Exceeding
	// it fails with a pinned-limit error; retention never releases pins.
	MaxPinned int `yaml:"max_pinned"`

	// MaxAuto is how many source=auto children stay un-released per parent.
	MaxAuto int `yaml:"max_auto"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		MaxPinned: 2,
		MaxAuto:   5,
	}
}
