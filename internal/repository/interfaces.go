//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

// ReadingRepository reads and appends rows of device_data.
type ReadingRepository interface {
	// Latest returns domain.ErrNotFound when the device has no reading.
	Latest(ctx context.Context, deviceID string) (domain.Reading, error)
	// Insert stores r and returns the row with its generated id and timestamp.
	Insert(ctx context.Context, r domain.Reading) (domain.Reading, error)
}

// CommandRepository manages the device_commands queue.
type CommandRepository interface {
	Insert(ctx context.Context, c domain.NewCommand) (domain.Command, error)
	// Pending lists queued commands oldest first; an empty deviceID lists all devices.
	Pending(ctx context.Context, deviceID string) ([]domain.Command, error)
	// MarkExecuted returns domain.ErrNotFound when no pending command matches.
	MarkExecuted(ctx context.Context, deviceID string, commandID int64) error
}

// HouseRepository keeps the device to house registry.
type HouseRepository interface {
	// Insert returns domain.ErrAlreadyExists when the device already has a house.
	Insert(ctx context.Context, h domain.NewHouse) (domain.House, error)
	Get(ctx context.Context, deviceID string) (domain.House, error)
}
