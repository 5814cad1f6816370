package schedule

import (
	"context"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@every 60s"

// Worker refreshes the timetable and recomputes the active period on their own
// cadences. Only the holder of the publisher lock emits period-change events.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	usecase   contracts.ScheduleUsecase
	publisher contracts.EventPublisher
	stop      chan struct{}
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

// NewWorker builds the worker. locker may be nil, in which case every
// instance publishes.
func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, usecase contracts.ScheduleUsecase, publisher contracts.EventPublisher) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, usecase: usecase, publisher: publisher, stop: make(chan struct{})}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	w.schedule(c, "refresh", w.cfg.Timetable.RefreshCronSpec, func() { w.refreshOnce(w.runCtx) })
	w.schedule(c, "slot", w.cfg.Timetable.SlotRecomputeCronSpec, func() { w.tickOnce(w.runCtx) })
	c.Start()
	w.cron = c
}

func (w *Worker) schedule(c *cron.Cron, job, spec string, fn func()) {
	_, err := c.AddFunc(spec, fn)
	if err != nil {
		w.log.Warn("timetable.worker: failed to schedule with provided cron spec; falling back to @every 60s",
			zap.String("job", job),
			zap.String("spec", spec),
			zap.Error(err),
		)
		_, _ = c.AddFunc(fallbackCronSpec, fn)
	}
}

// Stop gracefully stops the cron and waits for running jobs.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) refreshOnce(ctx context.Context) {
	ctx = utils.WithRequestID(ctx, utils.GenerateWorkerRequestID("refresh"))
	result, err := w.usecase.Reload(ctx)
	if err != nil {
		w.log.Warn("timetable.worker: refresh failed; keeping current snapshot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return
	}
	if result.Changed {
		w.log.Info("timetable.worker: timetable refreshed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingChecksumKey, result.Checksum),
		)
	}
}

func (w *Worker) tickOnce(ctx context.Context) {
	ctx = utils.WithRequestID(ctx, utils.GenerateWorkerRequestID("slot"))
	requestID := utils.GetRequestID(ctx)

	if w.locker != nil {
		ttl := time.Duration(w.cfg.Timetable.LeaderLockTTLInSeconds) * time.Second
		acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeySlotPublisherLock, ttl)
		if err != nil {
			w.log.Warn("timetable.worker: leader lock attempt failed", zap.String(constvars.LoggingRequestIDKey, requestID), zap.Error(err))
			return
		}
		if !acquired {
			w.log.Debug("timetable.worker: leader lock not acquired; another instance is publishing", zap.String(constvars.LoggingRequestIDKey, requestID))
			return
		}
		defer w.locker.Unlock(ctx, constvars.RedisKeySlotPublisherLock, token)
	}

	event, err := w.usecase.Tick(ctx)
	if err != nil {
		w.log.Warn("timetable.worker: slot recompute failed", zap.String(constvars.LoggingRequestIDKey, requestID), zap.Error(err))
		return
	}
	if event == nil {
		return
	}

	utils.LogTimetableEvent(w.log, constvars.EventTypePeriodChanged, requestID,
		zap.String(constvars.LoggingWeekdayKey, event.Day),
		zap.String("previous", event.Previous),
		zap.String(constvars.LoggingPeriodKey, event.Current),
	)
	if err := w.publisher.PublishPeriodChanged(ctx, *event); err != nil {
		w.log.Warn("timetable.worker: failed to publish period change", zap.String(constvars.LoggingRequestIDKey, requestID), zap.Error(err))
	}
}
