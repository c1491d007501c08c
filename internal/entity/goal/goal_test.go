package goal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_Progress_OverTargetIsClampedOnlyForTheBar(t *testing.T) {
	g := Goal{Target: decimal.NewFromInt(500), Saved: decimal.NewFromInt(600)}

	assert.True(t, decimal.RequireFromString("1.2").Equal(g.Progress()))
	assert.True(t, decimal.NewFromInt(1).Equal(g.BarFraction()))
	assert.Equal(t, "120", g.Percent().String())
	assert.Equal(t, "██████████", Bar(g.BarFraction(), 10))
}

func Test_Progress_Partial(t *testing.T) {
	g := Goal{Target: decimal.NewFromInt(400), Saved: decimal.NewFromInt(100)}

	assert.True(t, decimal.RequireFromString("0.25").Equal(g.BarFraction()))
	assert.Equal(t, "25", g.Percent().String())
	assert.Equal(t, "██░░░░░░", Bar(g.BarFraction(), 8))
}

func Test_Progress_ZeroTarget(t *testing.T) {
	g := Goal{Saved: decimal.NewFromInt(10)}

	assert.True(t, g.Progress().IsZero())
	assert.Equal(t, "░░░░", Bar(g.BarFraction(), 4))
}

func Test_CategoryDescriptor_DefaultsToGoalOther(t *testing.T) {
	assert.Equal(t, "🎯", Goal{Category: "food"}.CategoryDescriptor().Icon)
	assert.Equal(t, "💍", Goal{Category: "wedding"}.CategoryDescriptor().Icon)
}
