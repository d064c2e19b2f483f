// Package calendar contains the pure date arithmetic behind the month view.
package calendar

import "time"

// gridCells is the fixed month grid size: 6 rows of 7 days.
const gridCells = 42

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MonthGrid builds the 42-cell Monday-first grid for the given month,
// padded with trailing days of the previous month and leading days of the
// next one. today marks the IsToday cell.
func MonthGrid(year int, month time.Month, today time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())

	// Monday becomes column 0.
	lead := (int(first.Weekday()) + 6) % 7

	grid := make([]Day, 0, gridCells)
	for offset := -lead; len(grid) < gridCells; offset++ {
		date := first.AddDate(0, 0, offset)
		grid = append(grid, Day{
			Date:    date,
			InMonth: date.Month() == month && date.Year() == year,
			IsToday: SameDay(date, today),
		})
	}
	return grid
}

// FormatDay renders a date the way the task views print it, e.g.
// "Saturday, 14 March 2026".
func FormatDay(date time.Time) string {
	return date.Format("Monday, 2 January 2006")
}
