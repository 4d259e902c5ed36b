package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/repository"
)

type readingService struct {
	repo repository.ReadingRepository
}

func NewReadingService(repo repository.ReadingRepository) ReadingService {
	return &readingService{repo: repo}
}

func (s *readingService) Latest(ctx context.Context, deviceID string) (domain.Reading, error) {
	return s.repo.Latest(ctx, deviceID)
}

func (s *readingService) Save(ctx context.Context, in domain.NewReading) (domain.Reading, error) {
	if err := in.Validate(); err != nil {
		return domain.Reading{}, err
	}

	saved, err := s.repo.Insert(ctx, in.Reading())
	if err != nil {
		return domain.Reading{}, err
	}

	logger.FromContext(ctx).Info().
		Str("device_id", saved.DeviceID).
		Int64("reading_id", saved.ID).
		Msg("reading saved")

	return saved, nil
}

// Ingest accepts the same body as the HTTP insert. Devices that leave out
// device_id get the one named in the topic.
func (s *readingService) Ingest(ctx context.Context, topic string, payload []byte) (domain.Reading, error) {
	var in domain.NewReading
	if err := json.Unmarshal(payload, &in); err != nil {
		return domain.Reading{}, fmt.Errorf("%w: decode payload from %s: %w", domain.ErrInvalidReading, topic, err)
	}

	if in.DeviceID == nil || *in.DeviceID == "" {
		if id := deviceIDFromTopic(topic); id != "" {
			in.DeviceID = &id
		}
	}

	return s.Save(ctx, in)
}

// deviceIDFromTopic returns the segment following "devices" in topics shaped
// like devices/<id>/readings.
func deviceIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "devices" {
			return parts[i+1]
		}
	}
	return ""
}
