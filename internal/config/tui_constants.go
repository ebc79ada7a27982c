package config

// Layout constants.
const (
	// PanelWidth is the preferred width of the timer panel.
	PanelWidth = 48

	// MinPanelWidth is the narrowest panel before lines are truncated.
	MinPanelWidth = 24

	// ProgressWidth is the default progress bar width.
	ProgressWidth = 36

	// CompactModeThreshold drops the subtitle and big clock below this width.
	CompactModeThreshold = 50

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Display limits.
const (
	// MaxHistoryRows limits the session log lines shown under the timer.
	MaxHistoryRows = 4
)
