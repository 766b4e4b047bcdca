package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldInput(t *testing.T) {
	f := NewFieldInput(nil, "Name", "letters only")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
	assert.Equal(t, "Name", f.Label())
	assert.True(t, f.Focused())
	assert.Empty(t, f.Value())
}

func TestFieldInput_Init(t *testing.T) {
	f := NewFieldInput(nil, "Name", "")

	assert.NotNil(t, f.Init())
}

func TestFieldInput_Update_TypesRunes(t *testing.T) {
	f := NewFieldInput(nil, "Name", "")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Jane")})

	assert.Equal(t, "Jane", f.Value())
}

func TestFieldInput_SetValue(t *testing.T) {
	f := NewFieldInput(nil, "Age", "")

	f.SetValue("30")

	assert.Equal(t, "30", f.Value())
}

func TestFieldInput_Reconfigure(t *testing.T) {
	f := NewFieldInput(nil, "Name", "")
	f.SetValue("Jane")

	f.Reconfigure("Age", "whole number")

	assert.Equal(t, "Age", f.Label())
	assert.Empty(t, f.Value())
}

func TestFieldInput_View(t *testing.T) {
	f := NewFieldInput(nil, "Eye Color", "")

	assert.Contains(t, f.View(), "Eye Color")
}
