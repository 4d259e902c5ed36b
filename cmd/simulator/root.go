package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/broker"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/config"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
)

const (
	modeHTTP = "http"
	modeMQTT = "mqtt"
)

type options struct {
	device   string
	count    int
	interval time.Duration
	mode     string
	url      string
	apiKey   string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "simulator",
		Short: "Emit fake device telemetry",
		Long: `Generates readings for one device, with energy counters that only grow,
and sends them to the gateway over HTTP or to the MQTT broker the ingestor listens on.

Examples:
  simulator --device esp32-01 --count 20 --interval 1s
  simulator --mode mqtt --count 0`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.device, "device", "esp32-sim-01", "device id to report as")
	f.IntVar(&opts.count, "count", 10, "number of readings to send, 0 runs until interrupted")
	f.DurationVar(&opts.interval, "interval", 2*time.Second, "delay between readings")
	f.StringVar(&opts.mode, "mode", modeHTTP, "transport: http or mqtt")
	f.StringVar(&opts.url, "url", "", "gateway base url (default http://localhost:$PORT)")
	f.StringVar(&opts.apiKey, "api-key", "", "x-api-key value (default $API_KEY)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every reading")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	if err := logger.Setup(level, true); err != nil {
		return err
	}

	if opts.count < 0 {
		return fmt.Errorf("--count must be >= 0, got %d", opts.count)
	}
	if opts.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", opts.interval)
	}

	var s sink
	switch opts.mode {
	case modeHTTP:
		url := opts.url
		if url == "" {
			url = "http://localhost:" + cfg.Port
		}
		apiKey := opts.apiKey
		if !cmd.Flags().Changed("api-key") {
			apiKey = cfg.APIKey
		}
		s = newHTTPSink(url, apiKey)
	case modeMQTT:
		topic, err := broker.ReadingTopic(cfg.MQTT.ReadingsTopic, opts.device)
		if err != nil {
			return err
		}
		mqttCfg := cfg.MQTT
		mqttCfg.ClientID += "-sim-" + opts.device
		client, err := broker.Connect(mqttCfg)
		if err != nil {
			return err
		}
		log.Info().Str("topic", topic).Msg("publishing readings")
		s = &mqttSink{client: client, topic: topic}
	default:
		return fmt.Errorf("unknown --mode %q, want http or mqtt", opts.mode)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return simulate(ctx, s, newGenerator(opts.device, time.Now().UnixNano()), opts.count, opts.interval)
}

// simulate sends count readings, or runs until ctx ends when count is 0.
// A failed send is logged and the loop carries on.
func simulate(ctx context.Context, s sink, gen *generator, count int, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for count == 0 || sent < count {
		r := gen.Next()
		if err := s.Send(ctx, r); err != nil {
			log.Error().Err(err).Str("device_id", *r.DeviceID).Msg("send failed")
		} else {
			log.Debug().Str("device_id", *r.DeviceID).Float64("energy1", *r.Energy1).Msg("reading sent")
		}
		sent++

		if count != 0 && sent == count {
			break
		}

		select {
		case <-ctx.Done():
			log.Info().Int("sent", sent).Msg("simulation interrupted")
			return nil
		case <-ticker.C:
		}
	}

	log.Info().Int("sent", sent).Msg("simulation done")
	return nil
}
