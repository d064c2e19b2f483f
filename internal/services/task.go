// Package services contains the application services of DayKeeper. Services
// own the database handle, run repository operations (transactionally where
// needed) and trigger the durable persist after every mutation.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/daykeeper/internal/dbx"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/dmitrijs2005/daykeeper/internal/repositories/tasks"
)

// Persister writes the current database image to its durable slot. Failures
// are handled (logged) by the implementation and never surface here.
type Persister interface {
	Persist(ctx context.Context)
}

// TaskService defines task CRUD as consumed by the application layer.
//
// Contract:
//   - List: full scan; returns an empty slice on read error, never fails.
//   - Save: upsert by id; one durable persist after the write.
//   - Delete: idempotent delete by id; one durable persist.
//   - DeleteBatch: transactional all-or-nothing removal; one durable persist
//     after commit, none after rollback.
//   - ToggleComplete: flips the completion flag given the caller-known
//     current status; one durable persist.
type TaskService interface {
	List(ctx context.Context) []models.Task
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, ids []string) error
	ToggleComplete(ctx context.Context, id string, currentStatus bool) error
}

type taskService struct {
	db        *sql.DB
	persister Persister
	log       logging.Logger
}

// NewTaskService constructs a TaskService over the given DB handle and
// durable persister.
func NewTaskService(db *sql.DB, persister Persister, log logging.Logger) TaskService {
	return &taskService{db: db, persister: persister, log: log}
}

func (s *taskService) repo(db dbx.DBTX) tasks.Repository {
	return tasks.NewSQLiteRepository(db, s.log)
}

func (s *taskService) List(ctx context.Context) []models.Task {
	result, err := s.repo(s.db).GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "task scan failed, returning empty list", "error", err)
		return []models.Task{}
	}
	return result
}

func (s *taskService) Save(ctx context.Context, task *models.Task) error {
	if err := s.repo(s.db).Save(ctx, task); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.repo(s.db).DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}

func (s *taskService) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).DeleteBatch(ctx, ids)
	})
	if err != nil {
		// rolled back; the caller must re-read the list, not assume partial success
		return fmt.Errorf("bulk delete failed: %w", err)
	}

	s.persister.Persist(ctx)
	return nil
}

func (s *taskService) ToggleComplete(ctx context.Context, id string, currentStatus bool) error {
	if err := s.repo(s.db).SetCompleted(ctx, id, !currentStatus); err != nil {
		return fmt.Errorf("error toggling task: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}
