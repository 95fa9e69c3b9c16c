// Package prefs is a small string-keyed preference store for app-wide
// flags and blobs. It lives in its own SQLite file and shares nothing with
// the relational inventory store, in particular no transaction scope.
package prefs

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Well-known preference keys.
const (
	KeyAppState    = "app_state"
	KeyFirstLaunch = "first_launch"
	KeyInstallID   = "install_id"
)

// DefaultKeys lists every key the app itself writes; the reset flow clears
// exactly these.
var DefaultKeys = []string{KeyAppState, KeyFirstLaunch, KeyInstallID}

// Preference is one row of the store: a key and a JSON-encoded value.
type Preference struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Store is a persistent string-keyed map with JSON-serialized values.
type Store struct {
	db *gorm.DB
}

// Open opens (and if absent creates) the preference file at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preference store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the backing file.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access preference store connection: %w", err)
	}
	return sqlDB.Close()
}

// Get reads and decodes the value under key. A missing key or a value that
// no longer decodes into T reads as absent, not as an error; only storage
// failures are reported.
func Get[T any](s *Store, key string) (T, bool, error) {
	var zero T

	var pref Preference
	if err := s.db.First(&pref, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal([]byte(pref.Value), &value); err != nil {
		// Lenient read: a corrupt or stale-shaped value is treated as if
		// the key were never set.
		return zero, false, nil
	}
	return value, true, nil
}

// Set encodes value as JSON and upserts it under key.
func Set[T any](s *Store, key string, value T) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %s: %w", key, err)
	}

	pref := Preference{Key: key, Value: string(encoded), UpdatedAt: time.Now()}
	err = s.db.Save(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. Removing an absent key succeeds.
func (s *Store) Remove(key string) error {
	if err := s.db.Delete(&Preference{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove preference %s: %w", key, err)
	}
	return nil
}

// Clear deletes every listed key in one statement.
func (s *Store) Clear(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.Delete(&Preference{}, "key IN ?", keys).Error; err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}
