package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/adapter"
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/handler"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/server"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/internal/workers"
	"github.com/MKhiriev/go-travel-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-travel-journal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("storage", cfg.Storage.Backend).Str("sessions", cfg.Session.Backend).Msg("received configs")

	baas, err := adapter.NewBaaSAdapter(cfg.BaaS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	storages, err := store.NewStorages(context.Background(), cfg, baas, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	bus := synchronizer.NewBus(log)
	defer bus.Close()

	var relay *synchronizer.RedisRelay
	if storages.Redis != nil {
		relay = synchronizer.NewRedisRelay(storages.Redis, cfg.Redis.EventsChannel, bus, log)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, baas, bus, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, bus, synchronizer.NewProfileStore(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, relay, cfg, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
