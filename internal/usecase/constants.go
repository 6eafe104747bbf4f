package usecase

import "time"

const (
	// DefaultStatusCacheTTL is how long quick statuses stay cached. Short
	// on purpose: the cache trades freshness for list-view latency only.
	DefaultStatusCacheTTL = 30 * time.Second

	// BypassWarning is the single informational warning appended when a
	// privileged caller skips validation.
	BypassWarning = "credit validation bypassed by privileged override"
)
