package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"timetable-service/internal/app/config"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newWorkerConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Timetable: config.AppTimetable{
			RefreshCronSpec:        "@every 1h",
			SlotRecomputeCronSpec:  "not a cron spec",
			LeaderLockTTLInSeconds: 50,
		},
	}
}

func TestWorker_TickOnce(t *testing.T) {
	event := &models.PeriodChangedEvent{ID: "evt-1", Type: constvars.EventTypePeriodChanged, Day: "Monday", Current: "8:00 AM TO 8:45 AM"}

	t.Run("Leader Publishes", func(t *testing.T) {
		locker := new(MockLockerService)
		usecase := new(MockScheduleUsecase)
		publisher := new(MockEventPublisher)

		locker.On("TryLock", mock.Anything, constvars.RedisKeySlotPublisherLock, 50*time.Second).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeySlotPublisherLock, "token").Return(nil)
		usecase.On("Tick", mock.Anything).Return(event, nil)
		publisher.On("PublishPeriodChanged", mock.Anything, *event).Return(nil)

		w := NewWorker(zap.NewNop(), newWorkerConfig(), locker, usecase, publisher)
		w.tickOnce(context.Background())

		locker.AssertExpectations(t)
		usecase.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Follower Skips", func(t *testing.T) {
		locker := new(MockLockerService)
		usecase := new(MockScheduleUsecase)
		publisher := new(MockEventPublisher)

		locker.On("TryLock", mock.Anything, constvars.RedisKeySlotPublisherLock, 50*time.Second).Return(false, "", nil)

		w := NewWorker(zap.NewNop(), newWorkerConfig(), locker, usecase, publisher)
		w.tickOnce(context.Background())

		usecase.AssertNotCalled(t, "Tick", mock.Anything)
		publisher.AssertNotCalled(t, "PublishPeriodChanged", mock.Anything, mock.Anything)
	})

	t.Run("Lock Error Skips", func(t *testing.T) {
		locker := new(MockLockerService)
		usecase := new(MockScheduleUsecase)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", errors.New("redis down"))

		w := NewWorker(zap.NewNop(), newWorkerConfig(), locker, usecase, new(MockEventPublisher))
		w.tickOnce(context.Background())

		usecase.AssertNotCalled(t, "Tick", mock.Anything)
	})

	t.Run("No Change Publishes Nothing", func(t *testing.T) {
		usecase := new(MockScheduleUsecase)
		publisher := new(MockEventPublisher)

		usecase.On("Tick", mock.Anything).Return(nil, nil)

		w := NewWorker(zap.NewNop(), newWorkerConfig(), nil, usecase, publisher)
		w.tickOnce(context.Background())

		publisher.AssertNotCalled(t, "PublishPeriodChanged", mock.Anything, mock.Anything)
	})

	t.Run("Tick Carries Worker Request ID", func(t *testing.T) {
		usecase := new(MockScheduleUsecase)
		usecase.On("Tick", mock.MatchedBy(func(ctx context.Context) bool {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			return requestID != ""
		})).Return(nil, nil)

		w := NewWorker(zap.NewNop(), newWorkerConfig(), nil, usecase, new(MockEventPublisher))
		w.tickOnce(context.Background())

		usecase.AssertExpectations(t)
	})
}

func TestWorker_RefreshOnce(t *testing.T) {
	t.Run("Reload Error Is Swallowed", func(t *testing.T) {
		usecase := new(MockScheduleUsecase)
		usecase.On("Reload", mock.Anything).Return(nil, errors.New("source down"))

		w := NewWorker(zap.NewNop(), newWorkerConfig(), nil, usecase, new(MockEventPublisher))
		assert.NotPanics(t, func() { w.refreshOnce(context.Background()) })
		usecase.AssertExpectations(t)
	})

	t.Run("Reload Success", func(t *testing.T) {
		usecase := new(MockScheduleUsecase)
		usecase.On("Reload", mock.Anything).Return(&responses.ReloadResult{Checksum: "abc", Changed: true}, nil)

		w := NewWorker(zap.NewNop(), newWorkerConfig(), nil, usecase, new(MockEventPublisher))
		w.refreshOnce(context.Background())
		usecase.AssertExpectations(t)
	})
}

func TestWorker_StartStop(t *testing.T) {
	w := NewWorker(zap.NewNop(), newWorkerConfig(), nil, new(MockScheduleUsecase), new(MockEventPublisher))

	w.Start(context.Background())
	assert.Len(t, w.cron.Entries(), 2, "an invalid spec falls back instead of dropping the job")

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.NotPanics(t, w.Stop, "stopping twice is safe")
}
