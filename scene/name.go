package scene

import "unicode/utf8"

// MaxNameLen is the longest layer name in bytes. Longer names are cut.
const MaxNameLen = 127

// truncateName cuts s to MaxNameLen bytes without splitting a rune.
func truncateName(s string) string {
	if len(s) <= MaxNameLen {
		return s
	}
	n := MaxNameLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
