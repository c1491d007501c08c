package transaction

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-tracker/internal/entity/calendar"
)

func Test_ParseAmount(t *testing.T) {
	cases := map[string]string{
		"12":     "12",
		"12.5":   "12.5",
		"12,34":  "12.34",
		" 0.01 ": "0.01",
		"7.100":  "7.1",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), in)
	}
}

func Test_ParseAmount_ShouldRejectInvalidInput(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-5", "1.234", "12..3"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func Test_ParseAmount_ShouldRejectExponentAndHugeNumbers(t *testing.T) {
	for _, in := range []string{"1e5", "1E5", "1e3000000", "+5", "5.", ".5", strings.Repeat("9", 13), "1." + strings.Repeat("0", 13)} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}

	got, err := ParseAmount(strings.Repeat("9", 12) + ".99")
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99", got.String())
}

func Test_ParseType(t *testing.T) {
	typ, err := ParseType(" Income ")
	require.NoError(t, err)
	assert.Equal(t, Income, typ)

	_, err = ParseType("transfer")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func Test_Validate(t *testing.T) {
	ok := Transaction{
		ID:     1,
		Type:   Expense,
		Amount: decimal.NewFromInt(10),
		Date:   calendar.New(2024, 1, 1, time.UTC),
	}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Amount = decimal.Zero
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAmount)

	bad = ok
	bad.Type = "gift"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidType)

	bad = ok
	bad.Date = calendar.Date{}
	assert.ErrorIs(t, bad.Validate(), calendar.ErrInvalidDate)
}

func Test_CategoryDescriptor_UsesTypeDomain(t *testing.T) {
	assert.Equal(t, "🧩", Transaction{Type: Income, Category: "food"}.CategoryDescriptor().Icon)
	assert.Equal(t, "🍔", Transaction{Type: Expense, Category: "food"}.CategoryDescriptor().Icon)
}

func Test_SortNewestFirst(t *testing.T) {
	txs := []Transaction{
		{ID: 1, Date: calendar.New(2024, 1, 1, time.UTC)},
		{ID: 2, Date: calendar.New(2024, 3, 1, time.UTC)},
		{ID: 3, Date: calendar.New(2024, 1, 1, time.UTC)},
	}
	SortNewestFirst(txs)
	assert.Equal(t, []int64{2, 1, 3}, []int64{txs[0].ID, txs[1].ID, txs[2].ID})
}
