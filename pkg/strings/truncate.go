package strings

import (
	"strings"
)

// DefaultCellMaxLen is the widest value a table cell shows before it is cut.
const DefaultCellMaxLen = 100

// MinTruncateLen is the smallest maxLen TruncateCell honours; it leaves room
// for one character plus "...".
const MinTruncateLen = 4

// TruncateCell flattens s onto one line and cuts it to at most maxLen runes,
// ending with "..." when something was dropped. Runs of whitespace, including
// newlines from wrapped OS error messages, collapse into a single space.
func TruncateCell(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
