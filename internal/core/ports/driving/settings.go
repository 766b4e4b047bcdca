package driving

import "github.com/custodia-labs/charforge/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStorageBackend updates the storage backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetInterface updates the default front end.
	SetInterface(mode domain.InterfaceMode) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
