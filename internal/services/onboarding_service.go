package services

import (
	"fmt"
	"strings"

	"gudang/internal/models"
	"gudang/internal/prefs"
	"gudang/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// OnboardingService handles the first-run flow: pick a name, create the
// first store, and clear the first-launch flag.
type OnboardingService struct {
	users    repositories.UserRepository
	stores   repositories.StoreRepository
	prefs    *prefs.Store
	validate *validator.Validate
	log      *zap.Logger
}

// NewOnboardingService creates a new OnboardingService.
func NewOnboardingService(users repositories.UserRepository, stores repositories.StoreRepository, prefStore *prefs.Store, log *zap.Logger) *OnboardingService {
	return &OnboardingService{
		users:    users,
		stores:   stores,
		prefs:    prefStore,
		validate: validator.New(),
		log:      log,
	}
}

// Complete runs the onboarding flow: find or create the user by name,
// create their store, and mark the first launch as done. Calling it again
// with the same name reuses the existing user.
func (s *OnboardingService) Complete(userName string, store models.Store) (*models.User, *models.Store, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, nil, fmt.Errorf("user name must not be empty")
	}

	user, err := s.users.FindOrCreate(userName)
	if err != nil {
		return nil, nil, err
	}

	store.UserID = user.ID
	if err := s.validate.Struct(&store); err != nil {
		return nil, nil, fmt.Errorf("invalid store: %w", err)
	}
	if err := s.stores.Create(&store); err != nil {
		return nil, nil, err
	}

	if err := prefs.Set(s.prefs, prefs.KeyFirstLaunch, false); err != nil {
		return nil, nil, err
	}

	s.log.Info("onboarding completed",
		zap.Uint("user_id", user.ID),
		zap.Uint("store_id", store.ID),
		zap.String("store", store.Name))
	return user, &store, nil
}
