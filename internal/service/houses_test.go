package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/mock"
)

func newHouseServiceWithMocks(t *testing.T) (HouseService, *mock.MockHouseRepository, *mock.MockReadingRepository) {
	ctrl := gomock.NewController(t)
	houses := mock.NewMockHouseRepository(ctrl)
	readings := mock.NewMockReadingRepository(ctrl)
	return NewHouseService(houses, readings), houses, readings
}

func TestHouseService_Register(t *testing.T) {
	svc, houses, _ := newHouseServiceWithMocks(t)

	in := domain.NewHouse{DeviceID: "esp32-01", Name: "Maison Nord"}
	stored := domain.House{ID: 1, DeviceID: in.DeviceID, Name: in.Name, CreatedAt: time.Now()}
	houses.EXPECT().Insert(gomock.Any(), in).Return(stored, nil)

	got, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestHouseService_Register_InvalidSkipsStorage(t *testing.T) {
	svc, _, _ := newHouseServiceWithMocks(t)

	_, err := svc.Register(context.Background(), domain.NewHouse{Name: "Maison Nord"})
	assert.ErrorIs(t, err, domain.ErrInvalidHouse)
}

func TestHouseService_Overview(t *testing.T) {
	svc, houses, readings := newHouseServiceWithMocks(t)

	house := domain.House{ID: 1, DeviceID: "esp32-01", Name: "Maison Nord"}
	reading := domain.Reading{ID: 9, DeviceID: "esp32-01", Energy1: 12}
	houses.EXPECT().Get(gomock.Any(), "esp32-01").Return(house, nil)
	readings.EXPECT().Latest(gomock.Any(), "esp32-01").Return(reading, nil)

	got, err := svc.Overview(context.Background(), "esp32-01")
	require.NoError(t, err)
	assert.Equal(t, house, got.House)
	require.NotNil(t, got.LatestReading)
	assert.Equal(t, reading, *got.LatestReading)
}

func TestHouseService_Overview_NoReadingYet(t *testing.T) {
	svc, houses, readings := newHouseServiceWithMocks(t)

	houses.EXPECT().Get(gomock.Any(), "esp32-01").Return(domain.House{ID: 1, DeviceID: "esp32-01"}, nil)
	readings.EXPECT().Latest(gomock.Any(), "esp32-01").Return(domain.Reading{}, domain.ErrNotFound)

	got, err := svc.Overview(context.Background(), "esp32-01")
	require.NoError(t, err)
	assert.Nil(t, got.LatestReading)
}

func TestHouseService_Overview_Errors(t *testing.T) {
	t.Run("unknown house", func(t *testing.T) {
		svc, houses, _ := newHouseServiceWithMocks(t)
		houses.EXPECT().Get(gomock.Any(), "ghost").Return(domain.House{}, domain.ErrNotFound)

		_, err := svc.Overview(context.Background(), "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("reading lookup fails", func(t *testing.T) {
		svc, houses, readings := newHouseServiceWithMocks(t)
		houses.EXPECT().Get(gomock.Any(), "esp32-01").Return(domain.House{ID: 1}, nil)
		readings.EXPECT().Latest(gomock.Any(), "esp32-01").Return(domain.Reading{}, errors.New("conn reset"))

		_, err := svc.Overview(context.Background(), "esp32-01")
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}
