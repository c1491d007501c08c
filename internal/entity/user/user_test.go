package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FirstName(t *testing.T) {
	assert.Equal(t, "Asha", User{FullName: "Asha Rao"}.FirstName())
	assert.Equal(t, "User", User{FullName: "  "}.FirstName())
	assert.Equal(t, "U", User{}.Initial())
	assert.Equal(t, "É", User{FullName: "élodie"}.Initial())
}
