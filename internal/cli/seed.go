package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/daykeeper/internal/models"
)

// seed inserts a small set of demo tasks spread around the current day so a
// fresh database has something to show in list and month views.
func (a *App) seed(ctx context.Context) {
	now := time.Now()

	demos := []models.Task{
		{
			Title:       "Finish the quarterly report",
			Description: "Gather numbers from the team and send to management",
			Date:        now,
			Priority:    models.PriorityHigh,
			Category:    models.CategoryWork,
			Subtasks: []models.SubTask{
				{Id: uuid.NewString(), Title: "Collect sales figures"},
				{Id: uuid.NewString(), Title: "Write the summary"},
				{Id: uuid.NewString(), Title: "Proofread"},
			},
		},
		{
			Title:    "Buy groceries",
			Date:     now,
			Priority: models.PriorityMedium,
			Category: models.CategoryShopping,
			Subtasks: []models.SubTask{
				{Id: uuid.NewString(), Title: "Milk"},
				{Id: uuid.NewString(), Title: "Bread"},
				{Id: uuid.NewString(), Title: "Coffee"},
			},
		},
		{
			Title:       "Morning run",
			Description: "5 km around the park",
			Date:        now.AddDate(0, 0, 1),
			Priority:    models.PriorityLow,
			Category:    models.CategoryHealth,
		},
		{
			Title:       "Call the dentist",
			Description: "Reschedule the checkup",
			Date:        now.AddDate(0, 0, 2),
			Priority:    models.PriorityMedium,
			Category:    models.CategoryHealth,
		},
		{
			Title:       "Plan the weekend trip",
			Date:        now.AddDate(0, 0, 4),
			Priority:    models.PriorityLow,
			Category:    models.CategoryPersonal,
			IsCompleted: false,
		},
		{
			Title:       "Submit expense report",
			Date:        now.AddDate(0, 0, -2),
			Priority:    models.PriorityHigh,
			Category:    models.CategoryWork,
			IsCompleted: true,
		},
	}

	for _, task := range demos {
		task.Id = uuid.NewString()
		if err := a.controller.SaveTask(ctx, task); err != nil {
			fmt.Println("Could not seed demo data:", err)
			return
		}
	}

	fmt.Printf("Added %d demo tasks\n", len(demos))
}
