// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/styles"
)

// FieldInput wraps a bubbles textinput with a label for one form field.
type FieldInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewFieldInput creates a focused input with the given label and placeholder.
func NewFieldInput(s *styles.Styles, label, placeholder string) *FieldInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30

	return &FieldInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the input.
func (f *FieldInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FieldInput) Update(msg tea.Msg) (*FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and input side by side.
func (f *FieldInput) View() string {
	label := f.styles.Label.Render(f.label + ": ")
	field := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (f *FieldInput) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *FieldInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Label returns the field label.
func (f *FieldInput) Label() string {
	return f.label
}

// Reconfigure switches the input to another field and clears it.
func (f *FieldInput) Reconfigure(label, placeholder string) {
	f.label = label
	f.textinput.Placeholder = placeholder
	f.textinput.Reset()
}

// Focused returns whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.textinput.Focused()
}
