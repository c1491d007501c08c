package tg

import (
	"strings"
)

// Telegram counts message length in UTF-16 code units.
const maxMessageLength = 4096

// splitMessage cuts text into parts that fit one message, breaking at line
// ends where possible and inside a line only when the line alone is too long.
func splitMessage(text string, limit int) []string {
	if utf16Len(text) <= limit {
		return []string{text}
	}

	var (
		parts []string
		cur   strings.Builder
		size  int
	)
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
		}
		cur.Reset()
		size = 0
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf16Len(line)
		if size+n > limit {
			flush()
		}
		for n > limit {
			head, tail := cutUTF16(line, limit)
			parts = append(parts, head)
			line, n = tail, utf16Len(tail)
		}
		cur.WriteString(line)
		size += n
	}
	flush()

	for i, p := range parts {
		parts[i] = strings.TrimRight(p, "\n")
	}
	return parts
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// cutUTF16 returns the longest prefix of s within limit units and the rest.
func cutUTF16(s string, limit int) (string, string) {
	n := 0
	for i, r := range s {
		u := runeUnits(r)
		if n+u > limit {
			return s[:i], s[i:]
		}
		n += u
	}
	return s, ""
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
