// Package cli implements the interactive DayKeeper shell: a REPL over the
// application controller, with optional AI-assisted task entry and desktop
// reminders.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/daykeeper/internal/ai"
	"github.com/dmitrijs2005/daykeeper/internal/app"
	"github.com/dmitrijs2005/daykeeper/internal/config"
	"github.com/dmitrijs2005/daykeeper/internal/filex"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/notify"
	"github.com/dmitrijs2005/daykeeper/internal/services"
	"github.com/dmitrijs2005/daykeeper/internal/storage"
)

const dataDirName = ".daykeeper"

type App struct {
	config     *config.Config
	store      *storage.Store
	controller *app.Controller
	parser     *ai.Client
	scheduler  *notify.Scheduler
	reader     *bufio.Reader
	log        logging.Logger
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	dataDir := c.DataDir
	var err error
	if dataDir == "" {
		dataDir, err = filex.EnsureHomeSubDir(dataDirName)
	} else {
		dataDir, err = filex.EnsureDir(dataDir)
	}
	if err != nil {
		return nil, err
	}

	slot := storage.NewFileSlot(filepath.Join(dataDir, "planner.slot"))
	store, err := storage.Open(ctx, dataDir, slot, log)
	if err != nil {
		return nil, err
	}

	taskSvc := services.NewTaskService(store.DB(), store, log)
	userSvc := services.NewUserService(store.DB(), store, log)

	controller := app.NewController(taskSvc, userSvc, log)
	controller.Load(ctx)

	var notifier notify.Notifier = notify.NopNotifier{}
	if c.NotificationsEnabled {
		notifier = notify.NewDesktopNotifier(log)
	}

	return &App{
		config:     c,
		store:      store,
		controller: controller,
		parser:     ai.NewClient(c.AIAPIKey, c.AIModel),
		scheduler:  notify.NewScheduler(controller, notifier, log),
		reader:     bufio.NewReader(os.Stdin),
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if a.config.NotificationsEnabled {
		if err := a.scheduler.Start(a.config.NotifyInterval); err != nil {
			a.log.Warn(ctx, "reminder scheduler not started", "error", err)
		} else {
			defer a.scheduler.Stop()
		}
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.State() == app.SessionAuthenticated
}
