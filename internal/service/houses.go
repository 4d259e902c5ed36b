package service

import (
	"context"
	"errors"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/repository"
)

type houseService struct {
	houses   repository.HouseRepository
	readings repository.ReadingRepository
}

func NewHouseService(houses repository.HouseRepository, readings repository.ReadingRepository) HouseService {
	return &houseService{houses: houses, readings: readings}
}

func (s *houseService) Register(ctx context.Context, in domain.NewHouse) (domain.House, error) {
	if err := in.Validate(); err != nil {
		return domain.House{}, err
	}

	house, err := s.houses.Insert(ctx, in)
	if err != nil {
		return domain.House{}, err
	}

	logger.FromContext(ctx).Info().
		Str("device_id", house.DeviceID).
		Int64("house_id", house.ID).
		Msg("house registered")

	return house, nil
}

// Overview returns the house and, when the device has reported, its newest reading.
func (s *houseService) Overview(ctx context.Context, deviceID string) (domain.HouseOverview, error) {
	house, err := s.houses.Get(ctx, deviceID)
	if err != nil {
		return domain.HouseOverview{}, err
	}

	out := domain.HouseOverview{House: house}

	latest, err := s.readings.Latest(ctx, deviceID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return domain.HouseOverview{}, err
	default:
		out.LatestReading = &latest
	}

	return out, nil
}
