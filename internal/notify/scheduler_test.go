package notify

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	tasks []models.Task
}

func (s *staticSource) DueToday(now time.Time) []models.Task {
	return s.tasks
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingNotifier) Send(title, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, body)
}

func (r *recordingNotifier) bodies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sent...)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSweep_NotifiesOncePerTaskPerSession(t *testing.T) {
	source := &staticSource{tasks: []models.Task{
		{Id: "a", Title: "pay rent"},
		{Id: "b", Title: "call the dentist"},
	}}
	rec := &recordingNotifier{}
	s := NewScheduler(source, rec, testLogger())

	now := time.Now()
	s.Sweep(now)
	s.Sweep(now)

	got := rec.bodies()
	require.Len(t, got, 2)
	assert.Contains(t, got, "Due today: pay rent")
	assert.Contains(t, got, "Due today: call the dentist")
}

func TestSweep_PicksUpNewTasks(t *testing.T) {
	source := &staticSource{tasks: []models.Task{{Id: "a", Title: "pay rent"}}}
	rec := &recordingNotifier{}
	s := NewScheduler(source, rec, testLogger())

	now := time.Now()
	s.Sweep(now)
	source.tasks = append(source.tasks, models.Task{Id: "b", Title: "water the plants"})
	s.Sweep(now)

	assert.Len(t, rec.bodies(), 2)
}

func TestStart_RejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler(&staticSource{}, &recordingNotifier{}, testLogger())
	require.Error(t, s.Start(0))
}

func TestStartStop(t *testing.T) {
	source := &staticSource{tasks: []models.Task{{Id: "a", Title: "pay rent"}}}
	rec := &recordingNotifier{}
	s := NewScheduler(source, rec, testLogger())

	require.NoError(t, s.Start(time.Hour))
	defer s.Stop()

	// the immediate sweep fires on Start
	assert.Len(t, rec.bodies(), 1)
}
