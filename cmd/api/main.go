package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/broker"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/config"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/database"
	httpHandlers "github.com/ANIKETSHETTY47/telemetry-gateway/internal/http"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/service"
	"github.com/ANIKETSHETTY47/telemetry-gateway/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	var publisher service.CommandPublisher
	if cfg.MQTT.Enabled {
		client, err := broker.Connect(cfg.MQTT)
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect failed")
		}
		defer client.Close()
		publisher = client
	}

	svcs := service.New(db, publisher)
	app := httpHandlers.NewApp()
	httpHandlers.Register(app, svcs, cfg)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.ListenAddr()).Bool("mqtt", cfg.MQTT.Enabled).Msg("api listening")
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.Error().Err(err).Msg("server exit")
	}
}
