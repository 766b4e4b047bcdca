package domain

const unknownDescription = "Unknown"

// StorageBackend selects where finalized characters are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists characters to a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps characters for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// AllStorageBackends returns every recognised backend in display order.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// InterfaceMode selects the front end used by the create command.
type InterfaceMode string

// Available interface modes.
const (
	// InterfaceConsole is the line-oriented prompt and menu.
	InterfaceConsole InterfaceMode = "console"

	// InterfaceTUI is the full-screen terminal UI.
	InterfaceTUI InterfaceMode = "tui"
)

// AllInterfaceModes returns every recognised mode in display order.
func AllInterfaceModes() []InterfaceMode {
	return []InterfaceMode{InterfaceConsole, InterfaceTUI}
}

// IsValid returns true if the mode is recognised.
func (m InterfaceMode) IsValid() bool {
	return m == InterfaceConsole || m == InterfaceTUI
}

// String returns the string representation.
func (m InterfaceMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m InterfaceMode) Description() string {
	switch m {
	case InterfaceConsole:
		return "Console (line prompts)"
	case InterfaceTUI:
		return "TUI (full screen)"
	default:
		return unknownDescription
	}
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the store used for finalized characters.
	Backend StorageBackend

	// DataDir is the SQLite data directory. Empty means the default location.
	DataDir string
}

// InterfaceSettings holds front end configuration.
type InterfaceSettings struct {
	// Mode is the default front end for the create command.
	Mode InterfaceMode
}

// AppSettings is the complete user-configurable settings.
type AppSettings struct {
	Storage   StorageSettings
	Interface InterfaceSettings
}

// DefaultAppSettings returns settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Interface: InterfaceSettings{
			Mode: InterfaceConsole,
		},
	}
}
