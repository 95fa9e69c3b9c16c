package services

import (
	"gudang/internal/prefs"
	"gudang/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppService handles app-wide state: the first-launch flag, the install
// identifier, and the reset flow.
type AppService struct {
	users repositories.UserRepository
	prefs *prefs.Store
	log   *zap.Logger
}

// NewAppService creates a new AppService.
func NewAppService(users repositories.UserRepository, prefStore *prefs.Store, log *zap.Logger) *AppService {
	return &AppService{users: users, prefs: prefStore, log: log}
}

// FirstLaunch reports whether onboarding has not completed yet. An unset
// flag reads as first launch.
func (s *AppService) FirstLaunch() (bool, error) {
	first, present, err := prefs.Get[bool](s.prefs, prefs.KeyFirstLaunch)
	if err != nil {
		return false, err
	}
	if !present {
		return true, nil
	}
	return first, nil
}

// InstallID returns the stable identifier of this installation, generating
// and persisting one on first use.
func (s *AppService) InstallID() (string, error) {
	id, present, err := prefs.Get[string](s.prefs, prefs.KeyInstallID)
	if err != nil {
		return "", err
	}
	if present && id != "" {
		return id, nil
	}

	id = uuid.New().String()
	if err := prefs.Set(s.prefs, prefs.KeyInstallID, id); err != nil {
		return "", err
	}
	return id, nil
}

// Reset wipes the app back to its first-launch state: every preference key
// is cleared, the first-launch flag is set, and all relational rows go
// through the users cascade so nothing stale survives.
func (s *AppService) Reset() error {
	if err := s.prefs.Clear(prefs.DefaultKeys); err != nil {
		return err
	}
	if err := prefs.Set(s.prefs, prefs.KeyFirstLaunch, true); err != nil {
		return err
	}
	if err := s.users.DeleteAll(); err != nil {
		return err
	}
	s.log.Info("app reset to first-launch state")
	return nil
}
