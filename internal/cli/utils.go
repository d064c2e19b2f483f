package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/calendar"
	"github.com/dmitrijs2005/daykeeper/internal/models"
)

const dueDateLayout = "2006-01-02"

// parseDueDate accepts a YYYY-MM-DD day; an empty input selects the fallback.
func parseDueDate(input string, fallback time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback, nil
	}
	parsed, err := time.ParseInLocation(dueDateLayout, input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a date like 2026-03-14: %w", err)
	}
	return parsed, nil
}

// parsePriority accepts a priority name or its first letter; empty selects
// MEDIUM.
func parsePriority(input string) (models.Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "", "M", "MEDIUM":
		return models.PriorityMedium, nil
	case "L", "LOW":
		return models.PriorityLow, nil
	case "H", "HIGH":
		return models.PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q (low, medium or high)", input)
}

// parseCategory accepts a category name; empty selects OTHER.
func parseCategory(input string) (models.Category, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "", "OTHER":
		return models.CategoryOther, nil
	case "WORK":
		return models.CategoryWork, nil
	case "PERSONAL":
		return models.CategoryPersonal, nil
	case "SHOPPING":
		return models.CategoryShopping, nil
	case "HEALTH":
		return models.CategoryHealth, nil
	}
	return "", fmt.Errorf("unknown category %q (work, personal, shopping, health or other)", input)
}

func formatTask(task models.Task) string {
	mark := " "
	if task.IsCompleted {
		mark = "x"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s  %s  %s/%s  %s",
		mark, task.Id, calendar.FormatDay(task.Date), task.Priority, task.Category, task.Title))
	if task.Description != "" {
		sb.WriteString(fmt.Sprintf("\n      %s", task.Description))
	}
	for _, sub := range task.Subtasks {
		subMark := " "
		if sub.IsCompleted {
			subMark = "x"
		}
		sb.WriteString(fmt.Sprintf("\n      [%s] %s", subMark, sub.Title))
	}
	return sb.String()
}
