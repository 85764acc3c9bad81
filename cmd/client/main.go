package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/client"
	"github.com/MKhiriev/go-pet-walker/internal/config"
	"github.com/MKhiriev/go-pet-walker/internal/download"
	"github.com/MKhiriev/go-pet-walker/internal/location"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/internal/tui"
	"github.com/MKhiriev/go-pet-walker/internal/viewmodel"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-pet-walker", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("go-pet-walker", cfg.Log.File)

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Err(cerr).Msg("close local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, log)
	downloads := download.NewManager(services.FileService, cfg.Downloads.Dir, log)

	source := location.NewCachedSource(location.NewSource(cfg.Location, cfg.Adapter.RequestTimeout), storages.Preferences, log)
	observer := location.NewObserver(source, cfg.Location.PollInterval, log)

	ui := tui.New(services, downloads, observer, viewmodel.Options{PageSize: cfg.Paging.PageSize, Logger: log}, log)

	return client.NewApp(ui, log).Run(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
