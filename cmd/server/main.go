package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/handler"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/server"
	"github.com/MKhiriev/go-fort-note/internal/service"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WriteTo(os.Stderr)

	flags := config.BindFlags(pflag.CommandLine)
	pflag.Parse()

	log := logger.NewLogger("fortnote-server")
	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("storage_backend", backendName(cfg.Storage.DSN)).
		Msg("received configs")

	storage, err := store.NewStorage(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer storage.Close()

	services, err := service.NewServices(storage, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// backendName keeps credentials in a postgres DSN out of the log.
func backendName(dsn string) string {
	kind, _ := store.BackendFor(dsn)
	return kind
}
