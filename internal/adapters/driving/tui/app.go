package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/charforge/internal/adapters/driving/console"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/components/sheet"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/logger"
)

// stage is the part of the flow the app is showing.
type stage int

const (
	stageForm stage = iota
	stageMenu
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	formView *form.View
	menuView *menu.View

	stage stage

	// state follows the same menu state machine as the console flow.
	state console.MenuState

	person    domain.Person
	character *domain.Character
	showSheet bool
	notice    string

	// finalizing is set while a save is in flight. Input is ignored until
	// FinalizeCompleted arrives so the character is saved at most once.
	finalizing bool

	// err holds the last error that occurred.
	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		keymap:   km,
		formView: form.NewView(s),
		menuView: menu.NewView(s, km),
		stage:    stageForm,
		state:    console.StateRunning,
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("charforge - Character Creation"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.finalizing {
			return a, nil
		}
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		switch a.stage {
		case stageForm:
			a.formView, cmd = a.formView.Update(msg)
		case stageMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		}
		return a, cmd

	case messages.DraftCompleted:
		person, err := a.ports.Character.Create(a.ctx, msg.Draft)
		if err != nil {
			a.err = err
			return a, tea.Quit
		}
		a.person = person
		a.stage = stageMenu
		return a, nil

	case messages.MenuSelected:
		return a, a.choose(msg.Choice)

	case messages.FinalizeCompleted:
		a.finalizing = false
		if msg.Err != nil {
			a.notice = fmt.Sprintf("Could not finalize character: %v", msg.Err)
			return a, nil
		}
		a.character = msg.Character
		a.state = console.StateFinalized
		a.notice = "Thank you for creating your character!"
		return a, tea.Quit

	default:
		if a.stage == stageForm {
			a.formView, cmd = a.formView.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// choose applies a menu choice. Terminal states and a pending save ignore
// further choices.
func (a *App) choose(choice string) tea.Cmd {
	if a.state.IsTerminal() || a.person == nil || a.finalizing {
		return nil
	}
	logger.Debug("tui menu %q in state %s", choice, a.state)

	switch choice {
	case console.ChoiceView:
		a.showSheet = true
		a.notice = ""
		return nil

	case console.ChoiceFinalize:
		a.showSheet = true
		a.finalizing = true
		a.notice = "Saving character..."
		person := a.person
		ctx := a.ctx
		return func() tea.Msg {
			character, err := a.ports.Character.Finalize(ctx, person)
			return messages.FinalizeCompleted{Character: character, Err: err}
		}

	case console.ChoiceExit:
		a.state = console.StateExited
		a.notice = "Exiting character creation. Goodbye!"
		return tea.Quit
	}

	a.notice = "Invalid choice. Please select a valid option (1-3)."
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("<-------- Character Creation -------->"))
	b.WriteString("\n\n")

	switch a.stage {
	case stageForm:
		b.WriteString(a.formView.View())
	case stageMenu:
		if a.showSheet && a.person != nil {
			b.WriteString(sheet.Render(a.styles, a.person))
			b.WriteString("\n\n")
		}
		b.WriteString(a.menuView.View())
	}

	if a.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Normal.Render(a.notice))
	}
	if a.err != nil {
		b.WriteString("\n\n")
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

// State returns the menu state. It stays Running if the user quit before
// choosing Finalize or Exit.
func (a *App) State() console.MenuState {
	return a.state
}

// Person returns the created person, or nil if the form was not completed.
func (a *App) Person() domain.Person {
	return a.person
}

// Character returns the saved record once finalized.
func (a *App) Character() *domain.Character {
	return a.character
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Run starts a Bubbletea program for the app and blocks until it exits.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) (*App, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	model, err := tea.NewProgram(app.WithContext(ctx), opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}
	final, ok := model.(*App)
	if !ok {
		return nil, fmt.Errorf("TUI error: unexpected model %T", model)
	}
	return final, final.err
}
