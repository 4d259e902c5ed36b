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
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/service"
)

const ingestTimeout = 5 * time.Second

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

	client, err := broker.Connect(cfg.MQTT)
	if err != nil {
		log.Fatal().Err(err).Msg("mqtt connect failed")
	}
	defer client.Close()

	// the ingestor only stores readings, it never publishes commands
	svcs := service.New(db, nil)

	handler := func(topic string, payload []byte) {
		msgCtx, cancel := context.WithTimeout(ctx, ingestTimeout)
		defer cancel()

		r, err := svcs.Readings.Ingest(msgCtx, topic, payload)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("ingest failed")
			return
		}
		log.Debug().Str("device_id", r.DeviceID).Int64("id", r.ID).Msg("reading ingested")
	}

	if err := client.Subscribe(cfg.MQTT.ReadingsTopic, handler); err != nil {
		log.Fatal().Err(err).Msg("subscribe failed")
	}

	log.Info().Str("topic", cfg.MQTT.ReadingsTopic).Msg("ingestor running; Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("ingestor stopped")
}
