package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/broker"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

const sendTimeout = 5 * time.Second

type sink interface {
	Send(ctx context.Context, r domain.NewReading) error
	Close()
}

type httpSink struct {
	client *resty.Client
}

func newHTTPSink(baseURL, apiKey string) *httpSink {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("x-api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(sendTimeout)

	return &httpSink{client: client}
}

func (s *httpSink) Send(ctx context.Context, r domain.NewReading) error {
	var saved domain.Reading
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(r).
		SetResult(&saved).
		Post("/api/data")
	if err != nil {
		return fmt.Errorf("post reading: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("post reading: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}

	log.Debug().Int64("reading_id", saved.ID).Str("device_id", saved.DeviceID).Msg("reading stored")
	return nil
}

func (s *httpSink) Close() {}

type mqttPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close()
}

// mqttSink publishes on the topic derived from the ingestor subscription,
// see broker.ReadingTopic.
type mqttSink struct {
	client mqttPublisher
	topic  string
}

func (s *mqttSink) Send(ctx context.Context, r domain.NewReading) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return s.client.Publish(ctx, s.topic, payload)
}

func (s *mqttSink) Close() { s.client.Close() }
