package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(morning, nextDay))
}

func TestMonthGrid_Is42CellsMondayFirst(t *testing.T) {
	today := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// March 2026 starts on a Sunday, so the grid leads with six February days.
	grid := MonthGrid(2026, time.March, today)
	require.Len(t, grid, 42)

	assert.Equal(t, time.Monday, grid[0].Date.Weekday())
	assert.Equal(t, 23, grid[0].Date.Day())
	assert.Equal(t, time.February, grid[0].Date.Month())
	assert.False(t, grid[0].InMonth)

	assert.Equal(t, 1, grid[6].Date.Day())
	assert.Equal(t, time.March, grid[6].Date.Month())
	assert.True(t, grid[6].InMonth)
}

func TestMonthGrid_MonthStartingOnMonday(t *testing.T) {
	today := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// June 2026 starts on a Monday: no leading cells from May.
	grid := MonthGrid(2026, time.June, today)
	require.Len(t, grid, 42)

	assert.Equal(t, 1, grid[0].Date.Day())
	assert.Equal(t, time.June, grid[0].Date.Month())
	assert.True(t, grid[0].InMonth)

	// 30 June days, then 12 July days pad the tail
	assert.Equal(t, time.July, grid[30].Date.Month())
	assert.False(t, grid[30].InMonth)
}

func TestMonthGrid_MarksToday(t *testing.T) {
	today := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	grid := MonthGrid(2026, time.March, today)

	var marked []time.Time
	for _, day := range grid {
		if day.IsToday {
			marked = append(marked, day.Date)
		}
	}
	require.Len(t, marked, 1)
	assert.True(t, SameDay(today, marked[0]))
}

func TestFormatDay(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Saturday, 14 March 2026", FormatDay(date))
}
