package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 9, d.Day())

	_, err = ParseDate("09-03-2026")
	require.Error(t, err)
	_, err = ParseDate("2026-13-01")
	require.Error(t, err)

	// kosong = hari ini, jam 00:00
	today, err := ParseDate("")
	require.NoError(t, err)
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 30, c.Minute())

	_, err = ParseClock("9.30")
	require.Error(t, err)
	_, err = ParseClock("25:00")
	require.Error(t, err)
}

func TestCombineDateClock(t *testing.T) {
	date, err := ParseDate("2026-03-09")
	require.NoError(t, err)
	clock, err := ParseClock("14:45")
	require.NoError(t, err)

	at := CombineDateClock(date, clock)
	assert.Equal(t, 2026, at.Year())
	assert.Equal(t, 9, at.Day())
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 45, at.Minute())
	assert.Zero(t, at.Second())
}
