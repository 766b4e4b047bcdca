package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where characters are stored and which front end
'charforge create' uses.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [sqlite|memory]",
	Short: "Set the storage backend",
	Long: `Set where finalized characters are kept.

Available backends:
  sqlite - SQLite database in the data directory (persistent)
  memory - In-memory store (lost when the command exits)

Without an argument you are asked to choose.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsStorage,
}

var settingsInterfaceCmd = &cobra.Command{
	Use:   "interface [console|tui]",
	Short: "Set the default front end",
	Long: `Set the front end used by 'charforge create'.

Available modes:
  console - Line prompts on stdin/stdout
  tui     - Full-screen terminal UI

Without an argument you are asked to choose.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsInterface,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	settingsCmd.AddCommand(settingsInterfaceCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.Backend == domain.StorageSQLite {
		dataDir := settings.Storage.DataDir
		if dataDir == "" {
			dataDir = "(default)"
		}
		cmd.Printf("  Data directory: %s\n", dataDir)
	}
	cmd.Println()

	cmd.Println("[Interface]")
	cmd.Printf("  Mode: %s\n", settings.Interface.Mode.Description())

	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	backends := domain.AllStorageBackends()
	var backend domain.StorageBackend
	if len(args) == 1 {
		backend = domain.StorageBackend(strings.ToLower(strings.TrimSpace(args[0])))
	} else {
		cmd.Println("Select Storage Backend")
		cmd.Println("----------------------")
		for i, b := range backends {
			cmd.Printf("  %d. %s\n", i+1, b.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(backends), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		backend = backends[idx-1]
	}

	if err := settingsService.SetStorageBackend(backend); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}

	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	if backend == domain.StorageMemory {
		cmd.Println("\nNote: characters finalized with this backend are not kept between runs.")
	}
	return nil
}

func runSettingsInterface(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	modes := domain.AllInterfaceModes()
	var mode domain.InterfaceMode
	if len(args) == 1 {
		mode = domain.InterfaceMode(strings.ToLower(strings.TrimSpace(args[0])))
	} else {
		cmd.Println("Select Interface")
		cmd.Println("----------------")
		for i, m := range modes {
			cmd.Printf("  %d. %s\n", i+1, m.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(modes), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		mode = modes[idx-1]
	}

	if err := settingsService.SetInterface(mode); err != nil {
		return fmt.Errorf("failed to set interface: %w", err)
	}

	cmd.Printf("Interface set to: %s\n", mode.Description())
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n') //nolint:errcheck // a partial line at EOF is still used
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
