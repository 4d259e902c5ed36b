package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

type fakeToken struct {
	mqtt.Token
	done chan struct{}
	err  error
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }
func (t *fakeToken) Error() error          { return t.err }

func completedToken(err error) *fakeToken {
	done := make(chan struct{})
	close(done)
	return &fakeToken{done: done, err: err}
}

type publishCall struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mqtt.Client
	token *fakeToken
	calls []publishCall
}

func (f *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	f.calls = append(f.calls, publishCall{topic: topic, qos: qos, payload: payload.([]byte)})
	return f.token
}

func TestClient_PublishCommand(t *testing.T) {
	fc := &fakeClient{token: completedToken(nil)}
	c := &Client{client: fc, commandsTopic: "devices/%s/commands"}

	cmd := domain.Command{ID: 9, DeviceID: "esp32-01", CommandType: "relay_on", Parameters: domain.Parameters{"relay": 1}, Status: domain.CommandPending}
	require.NoError(t, c.PublishCommand(context.Background(), cmd))

	require.Len(t, fc.calls, 1)
	assert.Equal(t, "devices/esp32-01/commands", fc.calls[0].topic)
	assert.Equal(t, qosAtLeastOnce, fc.calls[0].qos)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(fc.calls[0].payload, &sent))
	assert.Equal(t, float64(9), sent["id"])
	assert.Equal(t, "relay_on", sent["command_type"])
	assert.Equal(t, "pending", sent["status"])
}

func TestClient_Publish_BrokerError(t *testing.T) {
	fc := &fakeClient{token: completedToken(errors.New("not connected"))}
	c := &Client{client: fc}

	err := c.Publish(context.Background(), "devices/x/commands", []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestClient_Publish_ContextDone(t *testing.T) {
	fc := &fakeClient{token: &fakeToken{done: make(chan struct{})}}
	c := &Client{client: fc}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.Publish(ctx, "devices/x/commands", []byte("{}"))
	assert.ErrorIs(t, err, ErrPublishTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "devices/esp32-01/commands", CommandTopic("devices/%s/commands", "esp32-01"))
}

func TestReadingTopic(t *testing.T) {
	tests := []struct {
		filter  string
		want    string
		wantErr bool
	}{
		{"devices/+/readings", "devices/esp32-01/readings", false},
		{"home/meters/+", "home/meters/esp32-01", false},
		{"telemetry/in", "telemetry/in", false},
		{"devices/#", "", true},
		{"+/devices/+", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := ReadingTopic(tt.filter, "esp32-01")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmbiguousFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
