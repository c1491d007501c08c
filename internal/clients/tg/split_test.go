package tg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnShortText_ShouldSendOnePart(t *testing.T) {
	assert.Equal(t, []string{"hello\nworld"}, splitMessage("hello\nworld", maxMessageLength))
}

func Test_OnLongList_ShouldSplitAtLineEnds(t *testing.T) {
	rows := make([]string, 0, 300)
	for i := 1; i <= 300; i++ {
		rows = append(rows, fmt.Sprintf("#%d 2024-05-15 🍔 Food -₹200.00 · lunch with the team", i))
	}
	text := strings.Join(rows, "\n")
	require.Greater(t, utf16Len(text), maxMessageLength)

	parts := splitMessage(text, maxMessageLength)

	require.Greater(t, len(parts), 1)
	var got []string
	for _, p := range parts {
		assert.LessOrEqual(t, utf16Len(p), maxMessageLength)
		got = append(got, strings.Split(p, "\n")...)
	}
	assert.Equal(t, rows, got)
}

func Test_OnOversizedLine_ShouldCutInsideIt(t *testing.T) {
	line := strings.Repeat("🍔", 5)

	parts := splitMessage("ok\n"+line, 4)

	assert.Equal(t, []string{"ok", "🍔🍔", "🍔🍔", "🍔"}, parts)
}

func Test_utf16Len_ShouldCountAstralRunesTwice(t *testing.T) {
	assert.Equal(t, 1, utf16Len("₹"))
	assert.Equal(t, 2, utf16Len("🍔"))
}
