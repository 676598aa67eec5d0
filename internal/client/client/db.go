package client

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/aiwallpaper/internal/client/migrations"
	"github.com/dmitrijs2005/aiwallpaper/internal/client/repositories/kv"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

var gooseMu sync.Mutex

// RunMigrations applies the embedded migrations. Goose keeps its base FS and
// dialect in package globals, hence the lock.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// OpenDatabase opens the SQLite file at dsn and migrates it.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitDatabase opens the profile database and returns its key/value store.
func InitDatabase(ctx context.Context, dsn string) (*kv.SQLiteRepository, error) {
	db, err := OpenDatabase(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return kv.NewSQLiteRepository(db), nil
}

// OpenSessionStore opens the session-scoped store. An empty path selects a
// process-lifetime memory store. The returned close function is never nil.
func OpenSessionStore(ctx context.Context, path string) (kv.Repository, func() error, error) {
	if path == "" {
		return kv.NewMemoryRepository(), func() error { return nil }, nil
	}

	repo, err := InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.DB().Close, nil
}
