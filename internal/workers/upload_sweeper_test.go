package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUploadSweeper_SweepsUntilCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mock.NewMockStaleUploadSweeper(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	sweeper.EXPECT().
		SweepStale(gomock.Any(), time.Hour).
		DoAndReturn(func(context.Context, time.Duration) (int, error) {
			calls++
			if calls == 3 {
				cancel()
			}
			return 1, nil
		}).
		Times(3)

	done := make(chan struct{})
	go func() {
		NewUploadSweeper(sweeper, time.Millisecond, time.Hour, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
	assert.Equal(t, 3, calls)
}

func TestUploadSweeper_ErrorDoesNotStopSweeping(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mock.NewMockStaleUploadSweeper(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		sweeper.EXPECT().SweepStale(gomock.Any(), time.Minute).Return(0, errors.New("permission denied")),
		sweeper.EXPECT().SweepStale(gomock.Any(), time.Minute).DoAndReturn(func(context.Context, time.Duration) (int, error) {
			cancel()
			return 0, nil
		}),
	)

	NewUploadSweeper(sweeper, time.Millisecond, time.Minute, logger.Nop()).Run(ctx)
}

func TestUploadSweeper_DisabledReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mock.NewMockStaleUploadSweeper(ctrl)

	NewUploadSweeper(sweeper, 0, time.Hour, logger.Nop()).Run(context.Background())
}
