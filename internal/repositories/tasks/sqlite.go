package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/dbx"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

// GetAll lists all tasks in storage order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	query := `SELECT id, title, description, date, is_completed, priority, category, subtasks FROM tasks`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	result := make([]models.Task, 0)
	for rows.Next() {
		task, err := r.scanTask(ctx, rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) scanTask(ctx context.Context, rows *sql.Rows) (*models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
		date        string
		completed   int
		subtasks    sql.NullString
	)
	if err := rows.Scan(&task.Id, &task.Title, &description, &date, &completed,
		&task.Priority, &task.Category, &subtasks); err != nil {
		return nil, fmt.Errorf("failed to scan task row: %w", err)
	}

	task.Description = description.String
	task.IsCompleted = completed != 0

	parsed, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task date %q: %w", date, err)
	}
	task.Date = parsed

	// A corrupt subtasks blob degrades to an empty checklist for this row
	// only; the rest of the scan proceeds.
	decoded, err := models.DecodeSubtasks(subtasks.String)
	if err != nil {
		r.log.Warn(ctx, "undecodable subtasks blob, defaulting to empty", "id", task.Id, "error", err)
		decoded = []models.SubTask{}
	}
	task.Subtasks = decoded

	return &task, nil
}

// Save upserts a task by id: a point lookup by primary key, then either an
// UPDATE of all mutable fields or an INSERT of the full record. The check and
// the write are not atomic against concurrent writers; the store targets a
// single writer.
func (r *SQLiteRepository) Save(ctx context.Context, task *models.Task) error {
	blob, err := models.EncodeSubtasks(task.Subtasks)
	if err != nil {
		return fmt.Errorf("failed to encode subtasks: %w", err)
	}

	var existing string
	err = r.db.QueryRowContext(ctx, `SELECT id FROM tasks WHERE id = ?`, task.Id).Scan(&existing)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check task existence: %w", err)
	}

	// The offset is kept in the stored string so the calendar day survives a
	// save/load cycle for non-UTC dates.
	date := task.Date.Format(time.RFC3339Nano)
	completed := 0
	if task.IsCompleted {
		completed = 1
	}

	if exists {
		_, err = r.db.ExecContext(ctx, `
			UPDATE tasks SET
				title = ?,
				description = ?,
				date = ?,
				is_completed = ?,
				priority = ?,
				category = ?,
				subtasks = ?
			WHERE id = ?`,
			task.Title, task.Description, date, completed, task.Priority, task.Category, blob, task.Id)
	} else {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO tasks (id, title, description, date, is_completed, priority, category, subtasks)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.Id, task.Title, task.Description, date, completed, task.Priority, task.Category, blob)
	}
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// DeleteByID removes a task by primary key. Absent ids are not an error.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteBatch removes every listed id with one prepared statement reused
// across the batch. An empty list is a successful no-op.
func (r *SQLiteRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	stmt, err := r.db.PrepareContext(ctx, `DELETE FROM tasks WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch delete: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return fmt.Errorf("failed to delete task %s: %w", id, err)
		}
	}
	return nil
}

// SetCompleted updates the completion flag without rewriting the record.
func (r *SQLiteRepository) SetCompleted(ctx context.Context, id string, done bool) error {
	completed := 0
	if done {
		completed = 1
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE tasks SET is_completed = ? WHERE id = ?`, completed, id); err != nil {
		return fmt.Errorf("failed to update completion flag: %w", err)
	}
	return nil
}
