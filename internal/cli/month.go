package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/calendar"
)

func (a *App) month(args []string) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if len(args) > 0 {
		parsed, err := time.Parse("2006-01", args[0])
		if err != nil {
			fmt.Println("Usage: month [yyyy-mm]")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	grid := calendar.MonthGrid(year, month, now)
	tasks := a.controller.Tasks()

	fmt.Printf("%s %d\n", month, year)
	fmt.Println("  Mon   Tue   Wed   Thu   Fri   Sat   Sun")
	for i, day := range grid {
		count := 0
		for _, task := range tasks {
			if calendar.SameDay(task.Date, day.Date) {
				count++
			}
		}

		var cell string
		switch {
		case !day.InMonth:
			cell = fmt.Sprintf(" %3s ", "·")
		case day.IsToday:
			cell = fmt.Sprintf("[%3d]", day.Date.Day())
		case count > 0:
			cell = fmt.Sprintf("%4d*", day.Date.Day())
		default:
			cell = fmt.Sprintf("%4d ", day.Date.Day())
		}

		fmt.Print(" ", cell)
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
}
