// Command charforge creates characters interactively and keeps the
// finalized ones.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/custodia-labs/charforge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/charforge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charforge/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/charforge/internal/adapters/driving/cli"
	"github.com/custodia-labs/charforge/internal/core/domain"
	"github.com/custodia-labs/charforge/internal/core/ports/driven"
	"github.com/custodia-labs/charforge/internal/core/services"
	"github.com/custodia-labs/charforge/internal/logger"
)

// memoryConfigDir selects the in-memory config store.
const memoryConfigDir = ":memory:"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cli.SetServiceFactory(buildServices)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the config store, the character store chosen by the
// settings, and the services on top of them.
func buildServices(configDir string) (*cli.Services, func(), error) {
	var configStore driven.ConfigStore
	if configDir == memoryConfigDir {
		configStore = memory.NewConfigStore()
	} else {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}
	logger.Debug("config store: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	characterStore, closeFn, err := openCharacterStore(settings, configDir)
	if err != nil {
		return nil, nil, err
	}

	return &cli.Services{
		Character: services.NewCharacterService(characterStore),
		Settings:  settingsService,
	}, closeFn, nil
}

func openCharacterStore(settings *domain.AppSettings, configDir string) (driven.CharacterStore, func(), error) {
	switch settings.Storage.Backend {
	case domain.StorageMemory:
		logger.Debug("character store: memory")
		return memory.NewCharacterStore(), func() {}, nil

	default:
		dataDir := settings.Storage.DataDir
		if dataDir == "" && configDir != "" && configDir != memoryConfigDir {
			dataDir = filepath.Join(configDir, "data")
		}

		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening character database: %w", err)
		}
		logger.Debug("character store: %s", store.Path())

		return store.CharacterStore(), func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing database: %v", err)
			}
		}, nil
	}
}
