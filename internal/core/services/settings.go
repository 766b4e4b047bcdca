package services

import (
	"fmt"

	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driven"
	"github.com/custodia-labs/charforge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyInterfaceMode  = "interface.mode"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unrecognised stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		backend = defaults.Storage.Backend
	}

	mode := domain.InterfaceMode(s.configStore.GetString(keyInterfaceMode))
	if !mode.IsValid() {
		mode = defaults.Interface.Mode
	}

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: backend,
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
		Interface: domain.InterfaceSettings{
			Mode: mode,
		},
	}, nil
}

// Save persists application settings. Every value is validated first and
// then written in one step, so a failure leaves the stored settings unchanged.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidBackend, settings.Storage.Backend)
	}
	if !settings.Interface.Mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidInterface, settings.Interface.Mode)
	}

	err := s.configStore.SetMany(map[string]any{
		keyStorageBackend: settings.Storage.Backend.String(),
		keyStorageDataDir: settings.Storage.DataDir,
		keyInterfaceMode:  settings.Interface.Mode.String(),
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetStorageBackend updates the storage backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidBackend, backend)
	}
	if err := s.configStore.Set(keyStorageBackend, backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	return nil
}

// SetInterface updates the default front end.
func (s *SettingsService) SetInterface(mode domain.InterfaceMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidInterface, mode)
	}
	if err := s.configStore.Set(keyInterfaceMode, mode.String()); err != nil {
		return fmt.Errorf("save interface mode: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
