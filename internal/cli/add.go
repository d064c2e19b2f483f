package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/daykeeper/internal/models"
)

func (a *App) add(ctx context.Context) {
	task := models.Task{
		Id:   uuid.NewString(),
		Date: time.Now(),
	}
	if !a.promptTask(&task) {
		return
	}

	if err := a.controller.SaveTask(ctx, task); err != nil {
		fmt.Println("Could not save task:", err)
		return
	}
	fmt.Println("Saved", task.Id)
}

func (a *App) edit(ctx context.Context, id string) {
	var task *models.Task
	for _, t := range a.controller.Tasks() {
		if t.Id == id {
			copied := t
			task = &copied
			break
		}
	}
	if task == nil {
		fmt.Println("No task with id", id)
		return
	}

	fmt.Println(formatTask(*task))
	fmt.Println("Press Enter to keep the current value.")
	if !a.promptTask(task) {
		return
	}

	if err := a.controller.SaveTask(ctx, *task); err != nil {
		fmt.Println("Could not save task:", err)
		return
	}
	fmt.Println("Saved", task.Id)
}

// promptTask fills task from interactive input. Existing field values act as
// defaults so the same flow serves both add and edit. Returns false when the
// input is unusable.
func (a *App) promptTask(task *models.Task) bool {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	if title != "" {
		task.Title = title
	}
	if task.Title == "" {
		fmt.Println("Title must not be empty")
		return false
	}

	description, err := GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	if description != "" {
		task.Description = description
	}

	dateInput, err := GetSimpleText(a.reader, "Due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	date, err := parseDueDate(dateInput, task.Date)
	if err != nil {
		fmt.Println(err)
		return false
	}
	task.Date = date

	priorityInput, err := GetSimpleText(a.reader, "Priority (low/medium/high)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	if priorityInput != "" || task.Priority == "" {
		priority, err := parsePriority(priorityInput)
		if err != nil {
			fmt.Println(err)
			return false
		}
		task.Priority = priority
	}

	categoryInput, err := GetSimpleText(a.reader, "Category (work/personal/shopping/health/other)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	if categoryInput != "" || task.Category == "" {
		category, err := parseCategory(categoryInput)
		if err != nil {
			fmt.Println(err)
			return false
		}
		task.Category = category
	}

	lines, err := GetLines(a.reader, "Subtasks, one per line (optional)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return false
	}
	for _, line := range lines {
		task.Subtasks = append(task.Subtasks, models.SubTask{
			Id:    uuid.NewString(),
			Title: line,
		})
	}

	return true
}
