package repositories

import (
	"fmt"
	"strings"
	"time"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	handle *storage.Handle
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(handle *storage.Handle) *GORMUserRepository {
	return &GORMUserRepository{handle: handle}
}

// Create inserts a new user. The name is stored trimmed; a duplicate name
// violates the unique index and the engine error is surfaced unchanged.
func (r *GORMUserRepository) Create(user *models.User) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	user.Name = strings.TrimSpace(user.Name)
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id, returning nil (not an error) when absent.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByName retrieves a user by trimmed name, returning nil when absent.
func (r *GORMUserRepository) GetByName(name string) (*models.User, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.First(&user, "name = ?", strings.TrimSpace(name)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by name %q: %w", name, err)
	}
	return &user, nil
}

// GetAll retrieves all users, newest first.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := db.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// Update applies the non-nil fields of the partial update. updated_at is
// refreshed even when no field is set.
func (r *GORMUserRepository) Update(id uint, update models.UserUpdate) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}

	values := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		values["name"] = strings.TrimSpace(*update.Name)
	}

	res := db.Model(&models.User{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a user; the database cascade removes its stores and
// everything under them.
func (r *GORMUserRepository) Delete(id uint) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	res := db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll removes every user, cascading through the whole relational
// store. Used by the reset-app flow.
func (r *GORMUserRepository) DeleteAll() error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to delete all users: %w", err)
	}
	return nil
}

// FindOrCreate looks a user up by trimmed name and creates one when absent.
// Writes are serialized through the single connection, so two calls with
// the same name cannot race into duplicates.
func (r *GORMUserRepository) FindOrCreate(name string) (*models.User, error) {
	existing, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := models.User{Name: strings.TrimSpace(name)}
	if err := r.Create(&user); err != nil {
		return nil, err
	}

	created, err := r.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("user %d vanished after create: %w", user.ID, ErrNotFound)
	}
	return created, nil
}
