// Package cli provides the cobra command tree for charforge.
// It is a driving adapter: commands call the driving ports and never touch
// storage directly.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charforge/internal/core/ports/driving"
	"github.com/custodia-labs/charforge/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services holds the driving ports the commands use.
type Services struct {
	Character driving.CharacterService
	Settings  driving.SettingsService
}

// ServiceFactory builds the services once the persistent flags are parsed.
// The returned cleanup function releases resources such as open databases.
type ServiceFactory func(configDir string) (*Services, func(), error)

var (
	characterService driving.CharacterService
	settingsService  driving.SettingsService

	serviceFactory ServiceFactory
	cleanup        func()
)

var rootCmd = &cobra.Command{
	Use:   "charforge",
	Short: "Create and keep track of characters",
	Long: `charforge walks you through creating a character: a name, an age,
an eye colour and a hair colour. Every answer is checked and asked again
until it is valid. Finalized characters are saved so you can list, show
or delete them later.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.charforge, \":memory:\" keeps settings in memory)")
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		characterService = nil
		settingsService = nil
		return
	}
	characterService = s.Character
	settingsService = s.Settings
}

// SetServiceFactory registers a factory that builds the services after flag
// parsing, so --config-dir can take effect.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

func bootstrap(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceFactory == nil {
		return nil
	}
	services, closeFn, err := serviceFactory(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	cleanup = closeFn
	logger.Debug("services ready (config dir %q)", configDir)
	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

var errCharacterServiceMissing = errors.New("character service not configured")

var errSettingsServiceMissing = errors.New("settings service not configured")
