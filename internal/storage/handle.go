package storage

import (
	"fmt"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Handle owns the single connection to the on-disk SQLite file. It is
// constructed once at process start and shared by every repository; the
// first DB call opens the file lazily, Close releases it, and a DB call
// after Close opens a fresh connection.
//
// SQLite enforces foreign keys per connection, so the DSN switches them on;
// all cascade deletes depend on that. The pool is capped at one connection,
// which serializes writers through the engine itself.
type Handle struct {
	mu   sync.Mutex
	path string
	db   *gorm.DB
}

// NewHandle returns a handle for the database file at path. The file is not
// touched until the first DB call.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// DB returns the live connection, opening the file (and creating it if
// absent) on first use.
func (h *Handle) DB() (*gorm.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	dsn := h.path + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", h.path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	h.db = db
	return h.db, nil
}

// Path returns the database file path the handle was built with.
func (h *Handle) Path() string {
	return h.path
}

// Close releases the connection. The handle stays usable: the next DB call
// reopens the file.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	h.db = nil
	return nil
}
