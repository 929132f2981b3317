package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent chapter-advance requests. A client that double-fires the
// advance call after a victory gets the same next-chapter session both
// times instead of two.

import "golang.org/x/sync/singleflight"

// AdvanceGroup deduplicates chapter-advance requests keyed by the
// session's join code.
var AdvanceGroup singleflight.Group
