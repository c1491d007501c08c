package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lookup_ShouldReturnKnownDescriptor(t *testing.T) {
	desc := Lookup(Expense, "food")
	assert.Equal(t, "Food", desc.Label)
	assert.Equal(t, "🍔", desc.Icon)
}

func Test_Lookup_ShouldFallBackToDomainDefault(t *testing.T) {
	assert.Equal(t, Descriptor{Value: "other", Label: "Other", Icon: "🧩"}, Lookup(Income, "lottery"))
	assert.Equal(t, Descriptor{Value: "other", Label: "Other", Icon: "🧾"}, Lookup(Expense, "salary"))
	assert.Equal(t, Descriptor{Value: "other", Label: "Other", Icon: "🎯"}, Lookup(Goal, ""))
}

func Test_Lookup_SameCodeDiffersByDomain(t *testing.T) {
	assert.Equal(t, "Investment", Lookup(Income, "investment").Label)
	assert.Equal(t, "Investment", Lookup(Goal, "investment").Label)
	assert.Equal(t, "Other", Lookup(Expense, "investment").Label)
}

func Test_Valid(t *testing.T) {
	assert.True(t, Valid(Goal, "new_car"))
	assert.False(t, Valid(Income, "new_car"))
	assert.False(t, Valid(Domain("unknown"), "other"))
}

func Test_List_ShouldNotExposeRegistry(t *testing.T) {
	list := List(Expense)
	list[0].Label = "changed"
	assert.Equal(t, "Food", Lookup(Expense, "food").Label)
	assert.Len(t, List(Income), 5)
	assert.Len(t, List(Goal), 9)
}
