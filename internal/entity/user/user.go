package user

import (
	"strings"
)

// User is the authenticated account of a chat session. It is never
// persisted on the client side.
type User struct {
	ID           int64
	FullName     string
	Email        string
	ProfileImage string
}

func (u User) FirstName() string {
	fields := strings.Fields(u.FullName)
	if len(fields) == 0 {
		return "User"
	}
	return fields[0]
}

func (u User) Initial() string {
	for _, r := range u.FirstName() {
		return strings.ToUpper(string(r))
	}
	return ""
}
