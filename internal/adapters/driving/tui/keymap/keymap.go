// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application without finalizing.
	Quit key.Binding

	// Submit accepts the current field or menu item.
	Submit key.Binding

	// Up moves the menu cursor up.
	Up key.Binding

	// Down moves the menu cursor down.
	Down key.Binding

	// View shows the character sheet (menu option 1).
	View key.Binding

	// Finalize confirms the character (menu option 2).
	Finalize key.Binding

	// Exit leaves without finalizing (menu option 3).
	Exit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		View: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "view"),
		),
		Finalize: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "finalize"),
		),
		Exit: key.NewBinding(
			key.WithKeys("3", "q"),
			key.WithHelp("3/q", "exit"),
		),
	}
}

// FormHelp returns the bindings shown while filling in fields.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// MenuHelp returns the bindings shown on the menu.
func (k *KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.View, k.Finalize, k.Exit}
}
