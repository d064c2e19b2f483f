// Package storage owns the embedded SQLite database image and its durable
// copy. The live image is a working file private to the process; after every
// mutation the full image is exported and written to a durable slot, and at
// startup the slot (if present) seeds the working file.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/daykeeper/internal/common"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const workFileName = "planner.db"

// Store is the process-wide handle to the database image. It is constructed
// explicitly by the composition root and passed to all consumers; there is no
// module-level singleton.
type Store struct {
	db       *sql.DB
	workPath string
	slot     Slot
	log      logging.Logger
}

// Open constructs a Store over the given data directory and durable slot and
// initializes it. Any failure wraps common.ErrInitialization.
func Open(ctx context.Context, dataDir string, slot Slot, log logging.Logger) (*Store, error) {
	s := &Store{
		workPath: filepath.Join(dataDir, workFileName),
		slot:     slot,
		log:      log,
	}
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Init restores the durable image (if any), opens the engine and applies
// migrations. Calling Init on an already-initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	restored, err := s.restore()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInitialization, err)
	}

	db, err := sql.Open("sqlite", s.workPath)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInitialization, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", common.ErrInitialization, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", common.ErrInitialization, err)
	}

	s.db = db

	// A durable image must exist after first run.
	if !restored {
		s.Persist(ctx)
	}
	return nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// restore seeds the working file from the durable slot. It reports whether a
// previously persisted image was found.
func (s *Store) restore() (bool, error) {
	data, err := s.slot.Read()
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := os.WriteFile(s.workPath, data, 0o660); err != nil {
		return false, fmt.Errorf("seed working image: %w", err)
	}
	return true, nil
}

// DB exposes the underlying handle for repositories and transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Export returns the full database image as a byte sequence. A consistent
// snapshot is taken with VACUUM INTO, so concurrent readers of the working
// file never see a torn image.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	snap := s.workPath + ".snapshot"
	_ = os.Remove(snap)
	defer os.Remove(snap)

	// VACUUM INTO does not accept bound parameters in all drivers.
	quoted := strings.ReplaceAll(snap, "'", "''")
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", quoted)); err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}

	data, err := os.ReadFile(snap)
	if err != nil {
		return nil, fmt.Errorf("read image snapshot: %w", err)
	}
	return data, nil
}

// Persist exports the image and writes it to the durable slot. Failures are
// logged, never returned: the in-memory state stays correct for the running
// session, and losing the durable copy is preferable to crashing the caller.
func (s *Store) Persist(ctx context.Context) {
	data, err := s.Export(ctx)
	if err != nil {
		s.log.Warn(ctx, "image export failed, durable copy not updated", "error", err)
		return
	}
	if err := s.slot.Write(data); err != nil {
		s.log.Warn(ctx, "durable write failed, in-memory state still valid", "error", err)
	}
}

// Close releases the underlying engine handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
