package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/charforge/internal/adapters/driving/console"
	"github.com/custodia-labs/charforge/internal/adapters/driving/tui"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/logger"
)

var createTUI bool

// stdinIsTerminal reports whether the process stdin is a terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new character",
	Long: `Create a new character interactively.

You are asked for a name (letters only), an age (a whole number, 0 or more),
an eye colour and a hair colour. Invalid answers are asked again. Then
choose from the menu:

  1 - View Character Information
  2 - Confirm and Finalize Character (saves it)
  3 - Exit

Use --tui, or 'charforge settings interface tui', for the full-screen form.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createTUI, "tui", false, "use the full-screen terminal UI")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	if characterService == nil {
		return errCharacterServiceMissing
	}

	if useTUI() {
		return runCreateTUI(cmd)
	}
	return runCreateConsole(cmd)
}

// useTUI reports whether the flag or the interface setting selects the TUI.
func useTUI() bool {
	if createTUI {
		return true
	}
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading interface setting: %v", err)
		return false
	}
	return settings.Interface.Mode == domain.InterfaceTUI
}

func runCreateConsole(cmd *cobra.Command) error {
	in := cmd.InOrStdin()

	session := console.NewSession(characterService, in, cmd.OutOrStdout())
	session.SetEcho(!isTerminal(in))

	outcome, err := session.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("character creation: %w", err)
	}
	logger.Debug("session ended in state %s", outcome.State)
	return nil
}

func runCreateTUI(cmd *cobra.Command) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("the TUI needs an interactive terminal; run without --tui to read answers from stdin")
	}

	app, err := tui.NewApp(&tui.Ports{Character: characterService})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	final, err := tui.Run(cmd.Context(), app, tea.WithAltScreen())
	if err != nil {
		return err
	}

	printTUIOutcome(cmd.OutOrStdout(), final)
	return nil
}

// printTUIOutcome repeats the result on the normal screen once the alternate
// screen is gone.
func printTUIOutcome(w io.Writer, app *tui.App) {
	switch app.State() {
	case console.StateFinalized:
		fmt.Fprintln(w, "--- Character Finalized ---")
		console.DisplayInfo(w, app.Person())
		if c := app.Character(); c != nil {
			fmt.Fprintf(w, "Character ID: %s\n", c.ID)
		}
		fmt.Fprintln(w, "Thank you for creating your character!")
	case console.StateExited:
		fmt.Fprintln(w, "Exiting character creation. Goodbye!")
	default:
		fmt.Fprintln(w, "Character creation cancelled.")
	}
}

// isTerminal reports whether r is a terminal. Answers typed on a terminal
// are already visible, so only piped input is echoed.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
