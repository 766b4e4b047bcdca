package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_MenuShortcuts(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     rune
	}{
		{"view", km.View, '1'},
		{"finalize", km.Finalize, '2'},
		{"exit", km.Exit, '3'},
		{"exit alias", km.Exit, 'q'},
		{"down", km.Down, 'j'},
		{"up", km.Up, 'k'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}}
			assert.True(t, key.Matches(msg, tt.binding))
		})
	}
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "ctrl+c")
	assert.Contains(t, keys, "esc")
}

func TestKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.FormHelp(), 2)
	assert.Len(t, km.MenuHelp(), 6)
}
