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

func queuedCommand(in domain.NewCommand) domain.Command {
	return domain.Command{
		ID:          21,
		DeviceID:    in.DeviceID,
		CommandType: in.CommandType,
		Parameters:  in.Parameters,
		Status:      domain.CommandPending,
		CreatedAt:   time.Now(),
	}
}

func TestCommandService_Enqueue_Publishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	pub := mock.NewMockCommandPublisher(ctrl)
	svc := NewCommandService(repo, pub)

	in := domain.NewCommand{DeviceID: "esp32-01", CommandType: "relay_on", Parameters: domain.Parameters{"relay": 1.0}}
	cmd := queuedCommand(in)

	gomock.InOrder(
		repo.EXPECT().Insert(gomock.Any(), in).Return(cmd, nil),
		pub.EXPECT().PublishCommand(gomock.Any(), cmd).Return(nil),
	)

	got, err := svc.Enqueue(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
}

// stalledPublisher never gets an ack, like a client stuck reconnecting.
type stalledPublisher struct {
	hadDeadline bool
}

func (p *stalledPublisher) PublishCommand(ctx context.Context, _ domain.Command) error {
	_, p.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func TestCommandService_Enqueue_StalledBrokerDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	pub := &stalledPublisher{}
	svc := &commandService{repo: repo, publisher: pub, publishTimeout: 20 * time.Millisecond}

	in := domain.NewCommand{DeviceID: "esp32-01", CommandType: "reboot"}
	repo.EXPECT().Insert(gomock.Any(), in).Return(queuedCommand(in), nil)

	done := make(chan error, 1)
	go func() {
		// request contexts from fiber carry no deadline
		_, err := svc.Enqueue(context.Background(), in)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on the publisher")
	}
	assert.True(t, pub.hadDeadline)
}

func TestCommandService_Enqueue_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	pub := mock.NewMockCommandPublisher(ctrl)
	svc := NewCommandService(repo, pub)

	in := domain.NewCommand{DeviceID: "esp32-01", CommandType: "reboot"}
	cmd := queuedCommand(in)

	repo.EXPECT().Insert(gomock.Any(), in).Return(cmd, nil)
	pub.EXPECT().PublishCommand(gomock.Any(), cmd).Return(errors.New("broker down"))

	got, err := svc.Enqueue(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(21), got.ID)
}

func TestCommandService_Enqueue_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	svc := NewCommandService(repo, nil)

	in := domain.NewCommand{DeviceID: "esp32-01", CommandType: "reboot"}
	repo.EXPECT().Insert(gomock.Any(), in).Return(queuedCommand(in), nil)

	_, err := svc.Enqueue(context.Background(), in)
	assert.NoError(t, err)
}

func TestCommandService_Enqueue_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	pub := mock.NewMockCommandPublisher(ctrl)
	svc := NewCommandService(repo, pub)

	_, err := svc.Enqueue(context.Background(), domain.NewCommand{DeviceID: "esp32-01", CommandType: domain.CommandRechargeEnergy})
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
}

func TestCommandService_Enqueue_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	pub := mock.NewMockCommandPublisher(ctrl)
	svc := NewCommandService(repo, pub)

	boom := errors.New("insert command: timeout")
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(domain.Command{}, boom)

	_, err := svc.Enqueue(context.Background(), domain.NewCommand{DeviceID: "d", CommandType: "reboot"})
	assert.ErrorIs(t, err, boom)
}

func TestCommandService_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	svc := NewCommandService(repo, nil)

	want := []domain.Command{{ID: 1, DeviceID: "esp32-01", CommandType: "reboot", Status: domain.CommandPending}}
	repo.EXPECT().Pending(gomock.Any(), "esp32-01").Return(want, nil)

	got, err := svc.Pending(context.Background(), "esp32-01")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommandService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommandRepository(ctrl)
	svc := NewCommandService(repo, nil)

	repo.EXPECT().MarkExecuted(gomock.Any(), "esp32-01", int64(21)).Return(nil)
	require.NoError(t, svc.Confirm(context.Background(), domain.CommandConfirmation{DeviceID: "esp32-01", CommandID: 21}))

	repo.EXPECT().MarkExecuted(gomock.Any(), "esp32-01", int64(22)).Return(domain.ErrNotFound)
	err := svc.Confirm(context.Background(), domain.CommandConfirmation{DeviceID: "esp32-01", CommandID: 22})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Confirm(context.Background(), domain.CommandConfirmation{CommandID: 22})
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
}
