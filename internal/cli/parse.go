package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/daykeeper/internal/ai"
	"github.com/dmitrijs2005/daykeeper/internal/models"
)

func (a *App) parse(ctx context.Context) {
	if !a.parser.Enabled() {
		fmt.Println("AI parsing is disabled (no API key configured). Use 'add' instead.")
		return
	}

	input, err := GetSimpleText(a.reader, "Describe the task in your own words", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if input == "" {
		fmt.Println("Nothing to parse")
		return
	}

	parsed, err := a.parser.ParseTask(ctx, input, time.Now())
	if err != nil {
		fmt.Println("Could not parse the task:", err)
		fmt.Println("Use 'add' to enter it manually.")
		return
	}

	task := taskFromParsed(parsed)

	fmt.Println(formatTask(task))
	answer, err := GetSimpleText(a.reader, "Save this task? (y/n)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if answer != "y" && answer != "yes" {
		fmt.Println("Discarded")
		return
	}

	if err := a.controller.SaveTask(ctx, task); err != nil {
		fmt.Println("Could not save task:", err)
		return
	}
	fmt.Println("Saved", task.Id)
}

func (a *App) suggest(ctx context.Context) {
	if !a.parser.Enabled() {
		fmt.Println("AI suggestions are disabled (no API key configured).")
		return
	}

	title, err := GetSimpleText(a.reader, "Task title to break down", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if title == "" {
		fmt.Println("Nothing to suggest for")
		return
	}

	subtasks, err := a.parser.SuggestSubtasks(ctx, title)
	if err != nil {
		fmt.Println("Could not get suggestions:", err)
		return
	}
	if len(subtasks) == 0 {
		fmt.Println("No suggestions")
		return
	}

	for _, s := range subtasks {
		fmt.Println(" -", s)
	}
}

// taskFromParsed converts a model guess into a task, falling back to safe
// defaults for fields the model omitted or got wrong.
func taskFromParsed(parsed *ai.ParsedTask) models.Task {
	date, err := parseDueDate(parsed.Date, time.Now())
	if err != nil {
		date = time.Now()
	}
	priority, err := parsePriority(parsed.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}
	category, err := parseCategory(parsed.Category)
	if err != nil {
		category = models.CategoryOther
	}

	task := models.Task{
		Id:          uuid.NewString(),
		Title:       parsed.Title,
		Description: parsed.Description,
		Date:        date,
		Priority:    priority,
		Category:    category,
	}
	for _, title := range parsed.SuggestedSubtasks {
		task.Subtasks = append(task.Subtasks, models.SubTask{
			Id:    uuid.NewString(),
			Title: title,
		})
	}
	return task
}
