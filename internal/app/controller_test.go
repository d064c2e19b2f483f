package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/common"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskService keeps tasks in a map and can be told to fail mutations,
// standing in for the store during rollback tests.
type fakeTaskService struct {
	byID map[string]models.Task
	fail bool
}

func newFakeTaskService(tasks ...models.Task) *fakeTaskService {
	f := &fakeTaskService{byID: make(map[string]models.Task)}
	for _, task := range tasks {
		f.byID[task.Id] = task
	}
	return f
}

var errStore = errors.New("store failure")

func (f *fakeTaskService) List(ctx context.Context) []models.Task {
	out := make([]models.Task, 0, len(f.byID))
	for _, task := range f.byID {
		out = append(out, task)
	}
	return out
}

func (f *fakeTaskService) Save(ctx context.Context, task *models.Task) error {
	if f.fail {
		return errStore
	}
	f.byID[task.Id] = *task
	return nil
}

func (f *fakeTaskService) Delete(ctx context.Context, id string) error {
	if f.fail {
		return errStore
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTaskService) DeleteBatch(ctx context.Context, ids []string) error {
	if f.fail {
		return errStore
	}
	for _, id := range ids {
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeTaskService) ToggleComplete(ctx context.Context, id string, currentStatus bool) error {
	if f.fail {
		return errStore
	}
	task, ok := f.byID[id]
	if !ok {
		return nil
	}
	task.IsCompleted = !currentStatus
	f.byID[id] = task
	return nil
}

type fakeUserService struct {
	users map[string]string // email -> password
}

func (f *fakeUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, common.ErrEmailTaken
	}
	f.users[email] = password
	return &models.User{Id: "u-" + email, Name: name, Email: email}, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if pw, ok := f.users[email]; !ok || pw != password {
		return nil, common.ErrInvalidCredentials
	}
	return &models.User{Id: "u-" + email, Email: email}, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func task(id string, day int, priority models.Priority, category models.Category) models.Task {
	return models.Task{
		Id:       id,
		Title:    "task " + id,
		Date:     time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		Priority: priority,
		Category: category,
	}
}

func newController(svc *fakeTaskService) *Controller {
	c := NewController(svc, &fakeUserService{users: map[string]string{}}, testLogger())
	c.Load(context.Background())
	return c
}

func TestVisible_FilterAndSort(t *testing.T) {
	svc := newFakeTaskService(
		task("late-low", 20, models.PriorityLow, models.CategoryWork),
		task("early-med", 10, models.PriorityMedium, models.CategoryWork),
		task("early-high", 10, models.PriorityHigh, models.CategoryWork),
		task("personal", 5, models.PriorityHigh, models.CategoryPersonal),
	)
	c := newController(svc)

	c.SetCategoryFilter(models.CategoryWork)
	got := c.Visible()
	require.Len(t, got, 3)
	assert.Equal(t, "early-high", got[0].Id)
	assert.Equal(t, "early-med", got[1].Id)
	assert.Equal(t, "late-low", got[2].Id)

	c.SetCategoryFilter("")
	assert.Len(t, c.Visible(), 4)
}

func TestVisible_SearchQuery(t *testing.T) {
	a := task("a", 1, models.PriorityLow, models.CategoryWork)
	a.Title = "Prepare slides"
	b := task("b", 2, models.PriorityLow, models.CategoryWork)
	b.Description = "buy sliced bread"
	c0 := task("c", 3, models.PriorityLow, models.CategoryWork)

	c := newController(newFakeTaskService(a, b, c0))
	c.SetSearchQuery("SLI")

	got := c.Visible()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Id)
	assert.Equal(t, "b", got[1].Id)
}

func TestSaveTask_OptimisticAndConfirmed(t *testing.T) {
	svc := newFakeTaskService()
	c := newController(svc)

	err := c.SaveTask(context.Background(), task("t1", 1, models.PriorityLow, models.CategoryOther))
	require.NoError(t, err)
	assert.Len(t, c.Tasks(), 1)
	assert.Len(t, svc.byID, 1)
}

func TestSaveTask_RollbackOnFailure(t *testing.T) {
	svc := newFakeTaskService(task("existing", 1, models.PriorityLow, models.CategoryOther))
	c := newController(svc)
	svc.fail = true

	err := c.SaveTask(context.Background(), task("t2", 2, models.PriorityLow, models.CategoryOther))
	require.ErrorIs(t, err, errStore)

	// tentative insert discarded, authoritative list restored
	got := c.Tasks()
	require.Len(t, got, 1)
	assert.Equal(t, "existing", got[0].Id)
}

func TestDeleteTasks_RollbackRestoresAll(t *testing.T) {
	svc := newFakeTaskService(
		task("a", 1, models.PriorityLow, models.CategoryOther),
		task("b", 2, models.PriorityLow, models.CategoryOther),
		task("c", 3, models.PriorityLow, models.CategoryOther),
	)
	c := newController(svc)
	svc.fail = true

	err := c.DeleteTasks(context.Background(), []string{"a", "b"})
	require.ErrorIs(t, err, errStore)
	assert.Len(t, c.Tasks(), 3)
}

func TestToggleComplete_UsesInMemoryStatus(t *testing.T) {
	svc := newFakeTaskService(task("t1", 1, models.PriorityLow, models.CategoryOther))
	c := newController(svc)

	require.NoError(t, c.ToggleComplete(context.Background(), "t1"))
	assert.True(t, c.Tasks()[0].IsCompleted)
	assert.True(t, svc.byID["t1"].IsCompleted)

	require.NoError(t, c.ToggleComplete(context.Background(), "t1"))
	assert.False(t, c.Tasks()[0].IsCompleted)
}

func TestDueToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	due := task("due", 10, models.PriorityLow, models.CategoryOther)
	done := task("done", 10, models.PriorityLow, models.CategoryOther)
	done.IsCompleted = true
	later := task("later", 11, models.PriorityLow, models.CategoryOther)

	c := newController(newFakeTaskService(due, done, later))

	got := c.DueToday(now)
	require.Len(t, got, 1)
	assert.Equal(t, "due", got[0].Id)
}

func TestSessionStateMachine(t *testing.T) {
	c := newController(newFakeTaskService())
	ctx := context.Background()

	assert.Equal(t, SessionAnonymous, c.State())

	_, err := c.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, SessionAuthenticated, c.State())
	require.NotNil(t, c.CurrentUser())

	c.Logout()
	assert.Equal(t, SessionAnonymous, c.State())
	assert.Nil(t, c.CurrentUser())

	_, err = c.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, SessionAnonymous, c.State())

	_, err = c.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, SessionAuthenticated, c.State())
}
