package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/daykeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for the working image and durable slot
//	-i int      reminder sweep interval in seconds (default from Config)
//	-q          disable desktop notifications
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	notifyInterval := fs.Int("i", int(cfg.NotifyInterval.Seconds()), "reminder interval (in seconds)")
	quiet := fs.Bool("q", !cfg.NotificationsEnabled, "disable desktop notifications")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotifyInterval = time.Duration(*notifyInterval) * time.Second
	cfg.NotificationsEnabled = !*quiet
}
