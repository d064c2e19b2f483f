package tasks

import (
	"context"

	"github.com/dmitrijs2005/daykeeper/internal/models"
)

// Repository describes CRUD operations for Task rows.
// Implementations are backed by the local SQLite image.
type Repository interface {
	// GetAll returns every stored task. No ordering is guaranteed; ordering
	// is the caller's responsibility. A row whose subtasks blob cannot be
	// decoded is returned with an empty checklist instead of failing the scan.
	GetAll(ctx context.Context) ([]models.Task, error)

	// Save upserts a task by Id: a point lookup decides between an UPDATE of
	// all mutable fields and an INSERT of the full record.
	Save(ctx context.Context, task *models.Task) error

	// DeleteByID removes a task. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error

	// DeleteBatch removes every listed id, reusing one prepared statement
	// across the batch. Run it on a transactional handle when atomicity
	// across the batch is required.
	DeleteBatch(ctx context.Context, ids []string) error

	// SetCompleted flips only the completion flag, leaving every other
	// column untouched.
	SetCompleted(ctx context.Context, id string, done bool) error
}
