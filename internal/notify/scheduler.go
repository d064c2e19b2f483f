package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/robfig/cron/v3"
)

// TaskSource yields the incomplete tasks due on the given day. The
// application controller implements it over its in-memory snapshot.
type TaskSource interface {
	DueToday(now time.Time) []models.Task
}

// Scheduler periodically sweeps the task source and sends one reminder per
// task id per session.
type Scheduler struct {
	cron     *cron.Cron
	source   TaskSource
	notifier Notifier
	log      logging.Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewScheduler constructs a Scheduler; call Start to begin sweeping.
func NewScheduler(source TaskSource, notifier Notifier, log logging.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		source:   source,
		notifier: notifier,
		log:      log,
		notified: make(map[string]struct{}),
	}
}

// Start runs an immediate sweep and then schedules one every interval.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	s.Sweep(time.Now())

	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), func() {
		s.Sweep(time.Now())
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the sweep loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep notifies once per session about every incomplete task due on the
// given day.
func (s *Scheduler) Sweep(now time.Time) {
	for _, task := range s.source.DueToday(now) {
		s.mu.Lock()
		_, seen := s.notified[task.Id]
		if !seen {
			s.notified[task.Id] = struct{}{}
		}
		s.mu.Unlock()

		if seen {
			continue
		}
		s.log.Debug(context.Background(), "sending due-today reminder", "id", task.Id)
		s.notifier.Send("Task reminder", "Due today: "+task.Title)
	}
}
