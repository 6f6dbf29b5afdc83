// Command museo collects Harvard Art Museums catalog data into SQLite and
// runs analytical queries over it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/museo/internal/adapters/driven/config/file"
	"github.com/custodia-labs/museo/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/museo/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/museo/internal/adapters/driving/cli"
	"github.com/custodia-labs/museo/internal/connectors/harvard"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/core/services"
	"github.com/custodia-labs/museo/internal/logger"
	"github.com/custodia-labs/museo/internal/normalisers/artifact"
	"github.com/custodia-labs/museo/internal/querycatalog"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := wire(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// wire builds the adapters and services and hands them to the CLI.
func wire() error {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config file unavailable, settings will not be saved: %v", err)
		configStore = envConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	client, err := newCatalogClient(harvard.ConfigFromSettings(*settings))
	if err != nil {
		return fmt.Errorf("creating catalog client: %w", err)
	}

	store, err := sqlite.NewArtifactStore(settings.Storage.DataDir, settings.Storage.FileName)
	if err != nil {
		return fmt.Errorf("opening artifact store: %w", err)
	}

	collectionService := services.NewCollectionService(
		client, artifact.NewNormaliser(), store, settings.Fetch.PageSize,
	)
	queryService := services.NewQueryService(querycatalog.Default(), store)

	cli.SetVersion(version)
	cli.SetCollectionService(collectionService)
	cli.SetQueryService(queryService)
	cli.SetSettingsService(settingsService)
	return nil
}

// newCatalogClient builds the catalog client. An unusable base URL is
// reported and replaced by the default endpoint so that config commands
// can still repair it.
func newCatalogClient(cfg harvard.Config) (*harvard.Client, error) {
	client, err := harvard.NewClient(cfg)
	if err == nil || !errors.Is(err, harvard.ErrInvalidBaseURL) {
		return client, err
	}
	logger.Error("%v; using %s until api.base_url is fixed", err, domain.DefaultBaseURL)
	cfg.BaseURL = domain.DefaultBaseURL
	return harvard.NewClient(cfg)
}

// envConfigStore returns an in-memory store seeded from the environment
// overrides the file store would apply.
func envConfigStore() *memory.ConfigStore {
	store := memory.NewConfigStore()
	for env, key := range file.EnvOverrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			_ = store.Set(key, v)
		}
	}
	return store
}
