//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

type ReadingService interface {
	Latest(ctx context.Context, deviceID string) (domain.Reading, error)
	Save(ctx context.Context, in domain.NewReading) (domain.Reading, error)
	// Ingest stores a reading received from the broker on topic.
	Ingest(ctx context.Context, topic string, payload []byte) (domain.Reading, error)
}

type CommandService interface {
	Enqueue(ctx context.Context, in domain.NewCommand) (domain.Command, error)
	Pending(ctx context.Context, deviceID string) ([]domain.Command, error)
	Confirm(ctx context.Context, in domain.CommandConfirmation) error
}

type HouseService interface {
	Register(ctx context.Context, in domain.NewHouse) (domain.House, error)
	Overview(ctx context.Context, deviceID string) (domain.HouseOverview, error)
}

// CommandPublisher pushes a freshly queued command to the device.
type CommandPublisher interface {
	PublishCommand(ctx context.Context, cmd domain.Command) error
}
