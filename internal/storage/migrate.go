package storage

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SchemaVersion is the version the migrator brings a database up to.
const SchemaVersion = 2

const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100) NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const schemaMigrationsDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER NOT NULL
)`

const storesDDL = `
CREATE TABLE IF NOT EXISTS stores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	location TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
)`

const productsDDL = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	store_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	price REAL NOT NULL DEFAULT 0,
	quantity INTEGER NOT NULL DEFAULT 0,
	category TEXT,
	image_url TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (store_id) REFERENCES stores (id) ON DELETE CASCADE
)`

const transactionsDDL = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id INTEGER NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('in', 'out', 'adjustment')),
	quantity INTEGER NOT NULL,
	price REAL,
	notes TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE
)`

const categoriesDDL = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	store_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (store_id) REFERENCES stores (id) ON DELETE CASCADE,
	UNIQUE (store_id, name)
)`

// migration is one ordered schema step. Steps run inside a transaction and
// the recorded version advances with each applied step.
type migration struct {
	version int
	name    string
	run     func(m *Migrator, tx *gorm.DB) error
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial schema",
		run: func(m *Migrator, tx *gorm.DB) error {
			return createStoreTables(tx)
		},
	},
	{
		version: 2,
		name:    "rebuild user-scoped store tables",
		run: func(m *Migrator, tx *gorm.DB) error {
			stale, err := m.legacySchema(tx)
			if err != nil {
				return err
			}
			if stale {
				// Destructive by design: legacy installs predate the
				// version row, and this app has no backup expectation.
				m.log.Warn("stale schema detected, dropping store tables",
					zap.Int("target_version", 2))
				for _, table := range []string{"stores", "products", "transactions", "categories"} {
					if err := tx.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
						return fmt.Errorf("failed to drop table %s: %w", table, err)
					}
				}
			}
			return createStoreTables(tx)
		},
	},
}

// Migrator brings the relational schema up to SchemaVersion. It must run to
// completion before any repository touches the database; a failed run is
// fatal to startup.
type Migrator struct {
	handle *Handle
	log    *zap.Logger
}

// NewMigrator creates a migrator over the given handle.
func NewMigrator(handle *Handle, log *zap.Logger) *Migrator {
	return &Migrator{handle: handle, log: log}
}

// Run applies every outstanding migration step in order. It is idempotent;
// a database already at SchemaVersion is left untouched.
func (m *Migrator) Run() error {
	db, err := m.handle.DB()
	if err != nil {
		return err
	}

	// The users table never carries breaking changes, so it is created up
	// front together with the version bookkeeping.
	if err := db.Exec(usersDDL).Error; err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	if err := db.Exec(schemaMigrationsDDL).Error; err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	version, err := m.currentVersion(db)
	if err != nil {
		return err
	}

	for _, step := range migrations {
		if step.version <= version {
			continue
		}
		m.log.Info("applying migration",
			zap.Int("version", step.version),
			zap.String("name", step.name))
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.run(m, tx); err != nil {
				return err
			}
			return setVersion(tx, step.version)
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", step.version, step.name, err)
		}
	}

	return nil
}

func createStoreTables(tx *gorm.DB) error {
	for _, ddl := range []string{storesDDL, productsDDL, transactionsDDL, categoriesDDL} {
		if err := tx.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// legacySchema reports whether the live tables predate the user-scoped
// schema: stores without a user_id column, or products still carrying the
// dropped sku/cost/min_quantity triple.
func (m *Migrator) legacySchema(tx *gorm.DB) (bool, error) {
	storeCols, err := tableColumns(tx, "stores")
	if err != nil {
		return false, err
	}
	if len(storeCols) > 0 && !hasColumn(storeCols, "user_id") {
		return true, nil
	}

	productCols, err := tableColumns(tx, "products")
	if err != nil {
		return false, err
	}
	for _, deprecated := range []string{"sku", "cost", "min_quantity"} {
		if hasColumn(productCols, deprecated) {
			return true, nil
		}
	}
	return false, nil
}

type columnInfo struct {
	Name string
}

// tableColumns returns the live column set of a table, empty if the table
// does not exist.
func tableColumns(tx *gorm.DB, table string) ([]columnInfo, error) {
	var cols []columnInfo
	if err := tx.Raw("PRAGMA table_info(" + table + ")").Scan(&cols).Error; err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	return cols, nil
}

func hasColumn(cols []columnInfo, name string) bool {
	for _, c := range cols {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (m *Migrator) currentVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("SELECT version FROM schema_migrations LIMIT 1").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func setVersion(tx *gorm.DB, version int) error {
	res := tx.Exec("UPDATE schema_migrations SET version = ?", version)
	if res.Error != nil {
		return fmt.Errorf("failed to record schema version: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version).Error; err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}
	return nil
}
