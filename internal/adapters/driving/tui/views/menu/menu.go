// Package menu provides the view/finalize/exit menu for the TUI.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charforge/internal/adapters/driving/console"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label  string
	Choice string
}

// View represents the character menu.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		items: []Item{
			{Label: "View Character Information", Choice: console.ChoiceView},
			{Label: "Confirm and Finalize Character", Choice: console.ChoiceFinalize},
			{Label: "Exit", Choice: console.ChoiceExit},
		},
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case key.Matches(keyMsg, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
		return v, nil

	case key.Matches(keyMsg, v.keymap.Submit):
		return v, selectCmd(v.items[v.selected].Choice)

	case key.Matches(keyMsg, v.keymap.View):
		v.selected = 0
		return v, selectCmd(console.ChoiceView)

	case key.Matches(keyMsg, v.keymap.Finalize):
		v.selected = 1
		return v, selectCmd(console.ChoiceFinalize)

	case key.Matches(keyMsg, v.keymap.Exit):
		v.selected = 2
		return v, selectCmd(console.ChoiceExit)
	}

	return v, nil
}

func selectCmd(choice string) tea.Cmd {
	return func() tea.Msg {
		return messages.MenuSelected{Choice: choice}
	}
}

// View renders the menu.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Character Creation Menu"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Choice+". "+item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [1-3] Choose  [esc] Quit"))

	return b.String()
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
