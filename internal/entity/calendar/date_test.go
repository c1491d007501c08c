package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_DateOnlyKeepsCalendarDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	d, err := Parse("2024-01-01", ny)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.String())
	assert.Equal(t, ny, d.Location())
}

func Test_Parse_DateTimeIsConvertedToViewerZone(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	ny := time.FixedZone("EST", -5*3600)

	d, err := Parse("2024-03-10T20:00:00.000Z", kolkata)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", d.String())

	d, err = Parse("2024-03-10T02:00:00Z", ny)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())
}

func Test_Parse_ShouldRejectGarbage(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2024-13-01", "01.02.2024"} {
		_, err := Parse(s, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func Test_Between_IsInclusive(t *testing.T) {
	from := New(2024, 5, 1, time.UTC)
	to := New(2024, 5, 7, time.UTC)

	assert.True(t, New(2024, 5, 1, time.UTC).Between(from, to))
	assert.True(t, New(2024, 5, 7, time.UTC).Between(from, to))
	assert.False(t, New(2024, 4, 30, time.UTC).Between(from, to))
	assert.False(t, New(2024, 5, 8, time.UTC).Between(from, to))
}

func Test_Today_UsesViewerZone(t *testing.T) {
	instant := time.Date(2024, 6, 30, 22, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*3600)

	assert.Equal(t, "2024-07-01", Today(instant, tokyo).String())
	assert.Equal(t, "2024-07-01", Today(instant, tokyo).BeginningOfMonth().String())
	assert.Equal(t, "2024-06-30", Today(instant, time.UTC).String())
}
