package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) list() {
	tasks := a.controller.Visible()
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return
	}
	for _, task := range tasks {
		fmt.Println(formatTask(task))
	}
}

func (a *App) filter(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: filter <work|personal|shopping|health|other|all>")
		return
	}
	if strings.EqualFold(args[0], "all") {
		a.controller.SetCategoryFilter("")
		fmt.Println("Filter cleared")
		return
	}
	category, err := parseCategory(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	a.controller.SetCategoryFilter(category)
	fmt.Println("Showing only", strings.ToLower(string(category)), "tasks")
}

func (a *App) search(args []string) {
	query := strings.Join(args, " ")
	a.controller.SetSearchQuery(query)
	if query == "" {
		fmt.Println("Search cleared")
	} else {
		fmt.Printf("Searching for %q\n", query)
	}
}

func (a *App) done(ctx context.Context, id string) {
	if !a.hasTask(id) {
		fmt.Println("No task with id", id)
		return
	}
	if err := a.controller.ToggleComplete(ctx, id); err != nil {
		fmt.Println("Could not update task:", err)
		return
	}
	for _, task := range a.controller.Tasks() {
		if task.Id == id {
			fmt.Println(formatTask(task))
			return
		}
	}
}

func (a *App) delete(ctx context.Context, ids []string) {
	for _, id := range ids {
		if !a.hasTask(id) {
			fmt.Println("No task with id", id)
			return
		}
	}

	var err error
	if len(ids) == 1 {
		err = a.controller.DeleteTask(ctx, ids[0])
	} else {
		err = a.controller.DeleteTasks(ctx, ids)
	}
	if err != nil {
		fmt.Println("Could not delete:", err)
		return
	}
	fmt.Printf("Deleted %d task(s)\n", len(ids))
}

func (a *App) hasTask(id string) bool {
	for _, task := range a.controller.Tasks() {
		if task.Id == id {
			return true
		}
	}
	return false
}
