package service

import (
	"context"
	"time"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/repository"
)

// defaultPublishTimeout bounds the broker ack wait so a reconnecting client cannot
// hold the request open.
const defaultPublishTimeout = 3 * time.Second

type commandService struct {
	repo           repository.CommandRepository
	publisher      CommandPublisher
	publishTimeout time.Duration
}

func NewCommandService(repo repository.CommandRepository, publisher CommandPublisher) CommandService {
	return &commandService{repo: repo, publisher: publisher, publishTimeout: defaultPublishTimeout}
}

// Enqueue stores the command first; pushing it to the broker is best effort
// since devices also poll the queue.
func (s *commandService) Enqueue(ctx context.Context, in domain.NewCommand) (domain.Command, error) {
	if err := in.Validate(); err != nil {
		return domain.Command{}, err
	}

	cmd, err := s.repo.Insert(ctx, in)
	if err != nil {
		return domain.Command{}, err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("device_id", cmd.DeviceID).
		Str("command_type", cmd.CommandType).
		Int64("command_id", cmd.ID).
		Msg("command queued")

	if s.publisher != nil {
		pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()

		if err := s.publisher.PublishCommand(pubCtx, cmd); err != nil {
			log.Warn().Err(err).Int64("command_id", cmd.ID).Msg("command not published, device will pick it up on poll")
		}
	}

	return cmd, nil
}

func (s *commandService) Pending(ctx context.Context, deviceID string) ([]domain.Command, error) {
	return s.repo.Pending(ctx, deviceID)
}

func (s *commandService) Confirm(ctx context.Context, in domain.CommandConfirmation) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.repo.MarkExecuted(ctx, in.DeviceID, in.CommandID)
}
