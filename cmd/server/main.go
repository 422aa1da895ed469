package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/adapter"
	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/handler"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/metrics"
	"github.com/MKhiriev/spotted-relay/internal/server"
	"github.com/MKhiriev/spotted-relay/internal/service"
	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/workers"
	"github.com/MKhiriev/spotted-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("spotted-relay").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("spotted-relay", cfg.App.LogLevel)
	log.Info().Str("env", cfg.App.Env).Str("storage", cfg.Storage.Driver).Str("mail", cfg.Mail.Driver).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mailRelay, err := adapter.NewMailRelay(cfg.Mail, log)
	if err != nil {
		closeStorages(storages, cfg, log)
		log.Fatal().Err(err).Msg("error creating mail relay")
	}

	appMetrics := metrics.New()
	services := service.NewServices(storages, mailRelay, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg, appMetrics, log)
	if err != nil {
		closeStorages(storages, cfg, log)
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var bgWorkers []workers.Worker
	if storages.UploadSweeper != nil {
		bgWorkers = append(bgWorkers, workers.NewUploadSweeper(storages.UploadSweeper, cfg.Upload.SweepInterval, cfg.Upload.StaleAfter, log))
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(bgWorkers...), cfg.Server, log, storages)
	if err != nil {
		closeStorages(storages, cfg, log)
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func closeStorages(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := storages.Close(ctx); err != nil {
		log.Err(err).Msg("error closing storages")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
