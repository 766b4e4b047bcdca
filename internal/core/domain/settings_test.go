package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  StorageBackend
		expected bool
	}{
		{"sqlite is valid", StorageSQLite, true},
		{"memory is valid", StorageMemory, true},
		{"empty is invalid", StorageBackend(""), false},
		{"postgres is invalid", StorageBackend("postgres"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestStorageBackend_Description(t *testing.T) {
	assert.Equal(t, "SQLite (persistent)", StorageSQLite.Description())
	assert.Equal(t, "Memory (discarded on exit)", StorageMemory.Description())
	assert.Equal(t, "Unknown", StorageBackend("x").Description())
}

func TestInterfaceMode_IsValid(t *testing.T) {
	assert.True(t, InterfaceConsole.IsValid())
	assert.True(t, InterfaceTUI.IsValid())
	assert.False(t, InterfaceMode("gui").IsValid())
}

func TestInterfaceMode_Description(t *testing.T) {
	assert.Equal(t, "Console (line prompts)", InterfaceConsole.Description())
	assert.Equal(t, "TUI (full screen)", InterfaceTUI.Description())
	assert.Equal(t, "Unknown", InterfaceMode("").Description())
}

func TestAllStorageBackends_AreValid(t *testing.T) {
	for _, b := range AllStorageBackends() {
		assert.True(t, b.IsValid(), b)
	}
}

func TestAllInterfaceModes_AreValid(t *testing.T) {
	for _, m := range AllInterfaceModes() {
		assert.True(t, m.IsValid(), m)
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, StorageSQLite, s.Storage.Backend)
	assert.Empty(t, s.Storage.DataDir)
	assert.Equal(t, InterfaceConsole, s.Interface.Mode)
}
