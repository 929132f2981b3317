package keys

import "strings"

// ChapterKey produces the canonical form of a chapter identifier.
// Behavior: trims, lower-cases and replaces spaces with underscores.
// Config lookups and session records always store the canonical form,
// so hand-edited config files may use any casing.
func ChapterKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}
