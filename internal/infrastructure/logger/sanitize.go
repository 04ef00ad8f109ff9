package logger

import (
	"fmt"
	"strings"
)

// maxFieldLen bounds a single sanitized value; fetch-tool stderr can run to
// thousands of lines.
const maxFieldLen = 512

// SanitizeForLog escapes control characters in chat text, URLs and process
// output before they reach the log. Newlines, tabs, NUL and ANSI escapes are
// written as visible escapes so a user cannot forge log lines. Unicode text is
// kept as is. Values longer than maxFieldLen runes are clipped with a marker.
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	n := 0
	for i, r := range s {
		if n == maxFieldLen {
			result.WriteString(fmt.Sprintf("...(%d bytes clipped)", len(s)-i))
			break
		}
		n++

		switch r {
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		case '\x00':
			result.WriteString("\\x00")
		default:
			if r < 32 || r == 127 {
				result.WriteString(fmt.Sprintf("\\x%02x", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
