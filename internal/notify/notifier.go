// Package notify delivers optional desktop reminders for tasks due today.
package notify

import (
	"context"
	"os/exec"

	"github.com/dmitrijs2005/daykeeper/internal/logging"
)

// Notifier sends a fire-and-forget notification. Implementations never
// return errors; delivery is best effort.
type Notifier interface {
	Send(title, body string)
}

// DesktopNotifier shells out to notify-send. When the binary is missing or
// delivery fails it silently no-ops; reminders are a convenience, not state.
type DesktopNotifier struct {
	log logging.Logger
}

func NewDesktopNotifier(log logging.Logger) *DesktopNotifier {
	return &DesktopNotifier{log: log}
}

func (n *DesktopNotifier) Send(title, body string) {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return
	}
	if err := exec.Command(path, title, body).Run(); err != nil {
		n.log.Debug(context.Background(), "notification delivery failed", "error", err)
	}
}

// NopNotifier discards every notification. Used when reminders are disabled.
type NopNotifier struct{}

func (NopNotifier) Send(title, body string) {}
