package config

import "time"

// populated via -ldflags at build time
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)

// StartedAt marks process start for uptime reporting.
var StartedAt = time.Now()
