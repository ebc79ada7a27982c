package config

import "time"

// Timer cadence.
const (
	TickInterval   = time.Second
	LongBreakEvery = 4
)

// Application settings.
const (
	AppName          = "pomo"
	SettingsFileName = "settings.yaml"
	ReportPrefix     = "pomo_session_"
	DefaultTheme     = "default"
	DefaultLocale    = "en"
)

// Session log. The shared-cache memory DSN lives only as long as the process.
const (
	SessionDSN = "file:pomo_session?mode=memory&cache=shared&_foreign_keys=on"
)
