package services_test

import (
	"testing"

	"gudang/internal/prefs"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppService_FirstLaunchDefaultsTrue(t *testing.T) {
	service := services.NewAppService(new(MockUserRepository), openTestPrefs(t), zap.NewNop())

	first, err := service.FirstLaunch()
	require.NoError(t, err)
	assert.True(t, first, "an unset flag reads as first launch")
}

func TestAppService_InstallIDIsStable(t *testing.T) {
	service := services.NewAppService(new(MockUserRepository), openTestPrefs(t), zap.NewNop())

	id1, err := service.InstallID()
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := service.InstallID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestAppService_ResetWipesBothStores(t *testing.T) {
	mockUsers := new(MockUserRepository)
	prefStore := openTestPrefs(t)
	service := services.NewAppService(mockUsers, prefStore, zap.NewNop())

	require.NoError(t, prefs.Set(prefStore, prefs.KeyFirstLaunch, false))
	require.NoError(t, prefs.Set(prefStore, prefs.KeyAppState, "blob"))
	mockUsers.On("DeleteAll").Return(nil).Once()

	require.NoError(t, service.Reset())

	first, err := service.FirstLaunch()
	require.NoError(t, err)
	assert.True(t, first, "reset must restore the first-launch state")

	_, present, err := prefs.Get[string](prefStore, prefs.KeyAppState)
	require.NoError(t, err)
	assert.False(t, present)

	mockUsers.AssertExpectations(t)
}
