package services_test

import (
	"path/filepath"
	"testing"

	"gudang/internal/models"
	"gudang/internal/prefs"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByName(name string) (*models.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(id uint, update models.UserUpdate) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUserRepository) FindOrCreate(name string) (*models.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(id uint) (*models.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByUser(userID uint) ([]models.Store, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetAll() ([]models.Store, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) Update(id uint, update models.StoreUpdate) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func openTestPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOnboardingService_Complete(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockStores := new(MockStoreRepository)
	prefStore := openTestPrefs(t)
	service := services.NewOnboardingService(mockUsers, mockStores, prefStore, zap.NewNop())

	alice := &models.User{ID: 1, Name: "Alice"}
	mockUsers.On("FindOrCreate", "Alice").Return(alice, nil).Once()
	mockStores.On("Create", mock.MatchedBy(func(s *models.Store) bool {
		return s.UserID == 1 && s.Name == "Alice's Shop"
	})).Return(nil).Once()

	user, store, err := service.Complete("  Alice ", models.Store{Name: "Alice's Shop", Type: "Grocery", Location: "NYC"})
	require.NoError(t, err)
	assert.Equal(t, alice, user)
	assert.Equal(t, uint(1), store.UserID)

	// Onboarding flips the first-launch flag off.
	first, present, err := prefs.Get[bool](prefStore, prefs.KeyFirstLaunch)
	require.NoError(t, err)
	assert.True(t, present)
	assert.False(t, first)

	mockUsers.AssertExpectations(t)
	mockStores.AssertExpectations(t)
}

func TestOnboardingService_EmptyNameRejected(t *testing.T) {
	service := services.NewOnboardingService(new(MockUserRepository), new(MockStoreRepository), openTestPrefs(t), zap.NewNop())

	_, _, err := service.Complete("   ", models.Store{Name: "Shop", Type: "Grocery", Location: "NYC"})
	assert.Error(t, err)
}

func TestOnboardingService_InvalidStoreRejected(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewOnboardingService(mockUsers, new(MockStoreRepository), openTestPrefs(t), zap.NewNop())

	mockUsers.On("FindOrCreate", "Alice").Return(&models.User{ID: 1, Name: "Alice"}, nil).Once()

	// Missing type and location must fail validation before any store write.
	_, _, err := service.Complete("Alice", models.Store{Name: "Shop"})
	assert.Error(t, err)
	mockUsers.AssertExpectations(t)
}
