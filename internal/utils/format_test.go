package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_FormatMoney(t *testing.T) {
	assert.Equal(t, "₹1000.00", FormatMoney(decimal.NewFromInt(1000)))
	assert.Equal(t, "₹0.30", FormatMoney(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))))
	assert.Equal(t, "-₹12.35", FormatMoney(decimal.RequireFromString("-12.345")))
}

func Test_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]int64{1, 2}, 3))
}
