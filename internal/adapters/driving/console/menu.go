package console

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/logger"
)

// MenuPrompt is shown after the menu options.
const MenuPrompt = "Select an option (1-3): "

// Menu choices.
const (
	ChoiceView     = "1"
	ChoiceFinalize = "2"
	ChoiceExit     = "3"
)

// MenuState is a state of the menu loop.
type MenuState int

// Menu states. Finalized and Exited are terminal.
const (
	StateRunning MenuState = iota
	StateViewingInfo
	StateFinalized
	StateExited
)

// String returns the string representation of the state.
func (s MenuState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateViewingInfo:
		return "viewing_info"
	case StateFinalized:
		return "finalized"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the loop stops in this state.
func (s MenuState) IsTerminal() bool {
	return s == StateFinalized || s == StateExited
}

// FinalizeFunc is called when the user confirms the character, before
// anything is printed. An error leaves the menu running so the user can
// retry or exit.
type FinalizeFunc func(ctx context.Context, person domain.Person) error

// Menu is the view/finalize/exit loop over a created person.
type Menu struct {
	person     domain.Person
	prompter   *Prompter
	out        io.Writer
	onFinalize FinalizeFunc
	state      MenuState
}

// NewMenu creates a menu in the Running state. onFinalize may be nil.
func NewMenu(person domain.Person, prompter *Prompter, out io.Writer, onFinalize FinalizeFunc) *Menu {
	return &Menu{
		person:     person,
		prompter:   prompter,
		out:        out,
		onFinalize: onFinalize,
		state:      StateRunning,
	}
}

// State returns the current state.
func (m *Menu) State() MenuState {
	return m.state
}

// Step applies one menu choice and returns the resulting state.
// Terminal states absorb further choices.
func (m *Menu) Step(ctx context.Context, choice string) MenuState {
	if m.state.IsTerminal() {
		return m.state
	}

	from := m.state
	switch choice {
	case ChoiceView:
		m.state = StateViewingInfo
		DisplayInfo(m.out, m.person)
		m.state = StateRunning

	case ChoiceFinalize:
		// The hook runs first so a failed save never prints the finalized sheet.
		if m.onFinalize != nil {
			if err := m.onFinalize(ctx, m.person); err != nil {
				fmt.Fprintf(m.out, "\nCould not finalize character: %v\n", err)
				return m.state
			}
		}
		fmt.Fprintln(m.out, "\n--- Character Finalized ---")
		DisplayInfo(m.out, m.person)
		fmt.Fprintln(m.out, "Thank you for creating your character!")
		m.state = StateFinalized

	case ChoiceExit:
		fmt.Fprintln(m.out, "\nExiting character creation. Goodbye!")
		m.state = StateExited

	default:
		fmt.Fprintln(m.out, "Invalid choice. Please select a valid option (1-3).")
	}

	logger.Debug("menu %q: %s -> %s", choice, from, m.state)
	return m.state
}

// Run shows the menu and applies choices until a terminal state is reached.
// It returns domain.ErrInputClosed if input ends first, or the context error
// if ctx is cancelled between iterations.
func (m *Menu) Run(ctx context.Context) (MenuState, error) {
	for !m.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return m.state, err
		}

		DisplayMenu(m.out)
		choice, err := m.prompter.Line(MenuPrompt)
		if err != nil {
			return m.state, err
		}
		m.Step(ctx, choice)
	}
	return m.state, nil
}
