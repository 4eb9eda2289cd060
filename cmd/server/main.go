// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/echosell-api/internal/config"
	handler "github.com/MKhiriev/echosell-api/internal/handler/http"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/server"
	"github.com/MKhiriev/echosell-api/internal/service"
	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/internal/workers"
)

const keepaliveInterval = time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("echosell-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)
	handlers := handler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewKeepalive("postgres", storages.PingDB, keepaliveInterval, log),
		workers.NewKeepalive("redis", storages.PingCache, keepaliveInterval, log),
	)
	background.Run()

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
