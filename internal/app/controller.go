// Package app holds the in-memory application state: the task list, derived
// filtered/sorted views, the session, and optimistic updates with rollback.
//
// Mutations follow the optimistic pattern: the tentative change is applied to
// the in-memory list first, then confirmed with the store; on failure the
// tentative state is discarded by re-reading the authoritative list.
package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/calendar"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/dmitrijs2005/daykeeper/internal/services"
)

// SessionState is the authentication state held by the application layer.
// The store itself is stateless with respect to sessions.
type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Controller owns the in-memory task list and the session. The mutex guards
// the list because the notification sweep reads it from another goroutine;
// store calls themselves stay single-writer.
type Controller struct {
	mu    sync.Mutex
	tasks []models.Task
	user  *models.User

	filterCategory models.Category // empty means all
	searchQuery    string

	taskSvc services.TaskService
	userSvc services.UserService
	log     logging.Logger
}

// NewController constructs a Controller over the given services.
func NewController(taskSvc services.TaskService, userSvc services.UserService, log logging.Logger) *Controller {
	return &Controller{taskSvc: taskSvc, userSvc: userSvc, log: log}
}

// Load replaces the in-memory list with the authoritative store contents.
func (c *Controller) Load(ctx context.Context) {
	tasks := c.taskSvc.List(ctx)
	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()
}

// Tasks returns a snapshot copy of the in-memory list.
func (c *Controller) Tasks() []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// SetCategoryFilter narrows Visible to one category; empty clears the filter.
func (c *Controller) SetCategoryFilter(category models.Category) {
	c.mu.Lock()
	c.filterCategory = category
	c.mu.Unlock()
}

// SetSearchQuery narrows Visible to tasks whose title or description
// contains the query, case-insensitively. Empty clears it.
func (c *Controller) SetSearchQuery(query string) {
	c.mu.Lock()
	c.searchQuery = strings.TrimSpace(query)
	c.mu.Unlock()
}

func priorityRank(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func matchesQuery(task models.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(task.Title), q) ||
		strings.Contains(strings.ToLower(task.Description), q)
}

// Visible derives the filtered view, sorted by due date ascending and by
// priority (high first) within a day.
func (c *Controller) Visible() []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Task, 0, len(c.tasks))
	for _, task := range c.tasks {
		if c.filterCategory != "" && task.Category != c.filterCategory {
			continue
		}
		if !matchesQuery(task, c.searchQuery) {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !calendar.SameDay(out[i].Date, out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}

// DueToday returns incomplete tasks whose due date falls on the given day.
func (c *Controller) DueToday(now time.Time) []models.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due []models.Task
	for _, task := range c.tasks {
		if !task.IsCompleted && calendar.SameDay(task.Date, now) {
			due = append(due, task)
		}
	}
	return due
}

// SaveTask upserts a task optimistically.
func (c *Controller) SaveTask(ctx context.Context, task models.Task) error {
	c.mu.Lock()
	replaced := false
	for i := range c.tasks {
		if c.tasks[i].Id == task.Id {
			c.tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		c.tasks = append(c.tasks, task)
	}
	c.mu.Unlock()

	if err := c.taskSvc.Save(ctx, &task); err != nil {
		c.Load(ctx)
		return err
	}
	return nil
}

// DeleteTask removes a task optimistically.
func (c *Controller) DeleteTask(ctx context.Context, id string) error {
	c.removeFromMemory(id)

	if err := c.taskSvc.Delete(ctx, id); err != nil {
		c.Load(ctx)
		return err
	}
	return nil
}

// DeleteTasks removes a set of tasks optimistically; the store call is
// all-or-nothing, so on failure the full original list comes back.
func (c *Controller) DeleteTasks(ctx context.Context, ids []string) error {
	for _, id := range ids {
		c.removeFromMemory(id)
	}

	if err := c.taskSvc.DeleteBatch(ctx, ids); err != nil {
		c.Load(ctx)
		return err
	}
	return nil
}

// ToggleComplete flips a task's completion flag optimistically.
func (c *Controller) ToggleComplete(ctx context.Context, id string) error {
	c.mu.Lock()
	current := false
	for i := range c.tasks {
		if c.tasks[i].Id == id {
			current = c.tasks[i].IsCompleted
			c.tasks[i].IsCompleted = !current
			break
		}
	}
	c.mu.Unlock()

	if err := c.taskSvc.ToggleComplete(ctx, id, current); err != nil {
		c.Load(ctx)
		return err
	}
	return nil
}

func (c *Controller) removeFromMemory(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.tasks {
		if c.tasks[i].Id == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

// Login authenticates and opens the session.
func (c *Controller) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := c.userSvc.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return user, nil
}

// Register creates an account and opens the session for it.
func (c *Controller) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := c.userSvc.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return user, nil
}

// Logout closes the session.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
}

// CurrentUser returns the authenticated user, or nil.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// State reports the session state machine's current state.
func (c *Controller) State() SessionState {
	if c.CurrentUser() != nil {
		return SessionAuthenticated
	}
	return SessionAnonymous
}
