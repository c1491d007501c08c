package messages

import (
	"strconv"
	"strings"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	cmd = text
	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		cmd, arg = split[0], strings.TrimSpace(split[1])
	}

	// group chats address commands as /cmd@botname
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), arg
}

// looksLikeDate tells a YYYY-MM-DD argument from the first word of a
// description.
func looksLikeDate(s string) bool {
	return len(s) == len("2006-01-02") && s[4] == '-' && s[7] == '-'
}

// parseID accepts only server-assigned IDs.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func rest(fields []string, from int) string {
	if from >= len(fields) {
		return ""
	}
	return strings.Join(fields[from:], " ")
}
