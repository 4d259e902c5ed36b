package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/config"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

const (
	qosAtLeastOnce    byte = 1
	disconnectQuiesce uint = 250
	connectTimeout         = 10 * time.Second
)

var (
	ErrPublishTimeout  = errors.New("mqtt publish timed out")
	ErrAmbiguousFilter = errors.New("topic filter cannot be turned into a publish topic")
)

// MessageHandler receives every message delivered on a subscription.
type MessageHandler func(topic string, payload []byte)

type Client struct {
	client        mqtt.Client
	commandsTopic string
}

func Connect(cfg config.MQTTConfig) (*Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Msg("mqtt connection lost")
		}).
		SetOnConnectHandler(func(_ mqtt.Client) {
			log.Info().Str("broker", cfg.Broker).Msg("mqtt connected")
		})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return &Client{client: client, commandsTopic: cfg.CommandsTopic}, nil
}

func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	cb := func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	}
	if token := c.client.Subscribe(topic, qosAtLeastOnce, cb); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", topic, token.Error())
	}
	return nil
}

// Publish sends payload and waits for the broker ack or ctx, whichever comes first.
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	token := c.client.Publish(topic, qosAtLeastOnce, false, payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt publish %s: %w", topic, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrPublishTimeout, topic, ctx.Err())
	}
}

// PublishCommand sends cmd as JSON to the device's command topic.
func (c *Client) PublishCommand(ctx context.Context, cmd domain.Command) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode command %d: %w", cmd.ID, err)
	}
	return c.Publish(ctx, CommandTopic(c.commandsTopic, cmd.DeviceID), payload)
}

func (c *Client) Close() {
	c.client.Disconnect(disconnectQuiesce)
}

// CommandTopic fills the device id into a pattern such as devices/%s/commands.
func CommandTopic(pattern, deviceID string) string {
	return fmt.Sprintf(pattern, deviceID)
}

// ReadingTopic turns the ingestor's subscription filter into the topic a
// device publishes on: a single-level "+" becomes the device id. A filter
// without wildcards is used as is.
func ReadingTopic(filter, deviceID string) (string, error) {
	levels := strings.Split(filter, "/")
	plus := 0
	for i, level := range levels {
		switch level {
		case "+":
			plus++
			levels[i] = deviceID
		case "#":
			return "", fmt.Errorf("%w: %q", ErrAmbiguousFilter, filter)
		}
	}
	if plus > 1 {
		return "", fmt.Errorf("%w: %q", ErrAmbiguousFilter, filter)
	}
	return strings.Join(levels, "/"), nil
}
