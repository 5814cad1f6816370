package schedule

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	source    contracts.DocumentSource
	cache     contracts.DocumentCache
	redisRepo contracts.RedisRepository
	clock     contracts.Clock
	policy    MergePolicy
	config    *config.InternalConfig
	Log       *zap.Logger

	snapshot atomic.Pointer[models.TimetableDocument]
	reloadMu sync.Mutex

	lastPeriodMu sync.Mutex
	lastPeriod   string
}

// NewScheduleUsecase wires the resolution engine to its collaborators. cache
// and redisRepo may be nil when Redis is disabled.
func NewScheduleUsecase(
	source contracts.DocumentSource,
	cache contracts.DocumentCache,
	redisRepo contracts.RedisRepository,
	clock contracts.Clock,
	config *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	policy, err := ParseMergePolicy(config.Timetable.DefaultPolicy, DefaultPolicy)
	if err != nil {
		logger.Warn("scheduleUsecase: unknown default policy; falling back to merged",
			zap.String(constvars.LoggingPolicyKey, config.Timetable.DefaultPolicy),
			zap.Error(err),
		)
		policy = DefaultPolicy
	}

	return &scheduleUsecase{
		source:    source,
		cache:     cache,
		redisRepo: redisRepo,
		clock:     clock,
		policy:    policy,
		config:    config,
		Log:       logger,
	}
}

func (uc *scheduleUsecase) Snapshot() *models.TimetableDocument {
	return uc.snapshot.Load()
}

func (uc *scheduleUsecase) Current(ctx context.Context, query requests.CurrentSlotQuery) (*responses.CurrentSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Current called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, query.Day),
		zap.String(constvars.LoggingInstantKey, query.Time),
		zap.String(constvars.LoggingPolicyKey, query.Policy),
	)

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	policy, err := ParseMergePolicy(query.Policy, uc.policy)
	if err != nil {
		return nil, exceptions.ErrTimetableInvalidPolicy(err, query.Policy)
	}

	now := uc.clock.Now()
	weekday := uc.weekdayOrToday(query.Day, now)
	instant := MinutesOf(now)
	if query.Time != "" {
		parsed, ok := ParseTime(query.Time)
		if !ok {
			return nil, exceptions.ErrTimetableInvalidTime(errors.New("time does not match H:MM [AM|PM]"), query.Time)
		}
		instant = parsed
	}

	resolution := Resolve(doc, weekday, instant, policy)
	response := &responses.CurrentSlot{
		Day:      weekday,
		Time:     FormatMinutes(instant),
		Minutes:  instant,
		Policy:   resolution.Policy,
		Active:   resolution.Active,
		Routine:  resolution.Routine,
		Document: documentMetadata(doc),
	}
	if resolution.Active != nil {
		display := BuildDisplay(*resolution.Active, doc.ClassOrder(), doc.LocationOrder())
		response.Display = &display
	}
	if resolution.Routine != nil {
		display := BuildDisplay(*resolution.Routine, doc.ClassOrder(), doc.LocationOrder())
		response.RoutineDisplay = &display
	}
	if resolution.IsEmpty() {
		response.Message = constvars.NoActiveSlotMessage
	}

	uc.Log.Info("scheduleUsecase.Current succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, weekday),
		zap.Int(constvars.LoggingInstantKey, instant),
		zap.String(constvars.LoggingPeriodKey, describeResolution(resolution)),
	)
	return response, nil
}

func (uc *scheduleUsecase) Day(ctx context.Context, query requests.DayQuery) (*responses.DaySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Day called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, query.Day),
	)

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	weekday := uc.weekdayOrToday(query.Day, uc.clock.Now())
	classes, locations := doc.ClassOrder(), doc.LocationOrder()

	day := doc.DayTrack(weekday)
	periods := make([]responses.PeriodView, 0, len(day))
	for _, period := range day {
		periods = append(periods, responses.PeriodView{
			Period:  period,
			Display: BuildDisplay(period, classes, locations),
		})
	}

	routine := doc.RoutineTrack()
	routineViews := make([]responses.PeriodView, 0, len(routine))
	for _, period := range routine {
		tagged := period.Tagged()
		routineViews = append(routineViews, responses.PeriodView{
			Period:  tagged,
			Display: BuildDisplay(tagged, classes, locations),
		})
	}

	return &responses.DaySchedule{
		Day:           weekday,
		Checksum:      doc.Checksum,
		Classes:       classes,
		Locations:     locations,
		Periods:       periods,
		CommonRoutine: routineViews,
	}, nil
}

func (uc *scheduleUsecase) Teachers(ctx context.Context, query requests.DayQuery) (*responses.TeacherList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Teachers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, query.Day),
	)

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	weekday := uc.weekdayOrToday(query.Day, uc.clock.Now())
	return &responses.TeacherList{
		Day:      weekday,
		Teachers: ListTeachers(doc, weekday),
	}, nil
}

func (uc *scheduleUsecase) Agenda(ctx context.Context, query requests.TeacherAgendaQuery) (*responses.TeacherAgenda, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Agenda called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, query.Day),
		zap.String(constvars.LoggingTeacherKey, query.Teacher),
	)

	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	weekday := uc.weekdayOrToday(query.Day, uc.clock.Now())
	return &responses.TeacherAgenda{
		Day:     weekday,
		Teacher: query.Teacher,
		Entries: AgendaFor(doc, weekday, query.Teacher),
	}, nil
}

// Week builds the teacher's agenda for every weekday of the document.
func (uc *scheduleUsecase) Week(ctx context.Context, teacher string) (*responses.TeacherWeek, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.Week called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherKey, teacher),
	)

	query := requests.TeacherAgendaQuery{Teacher: teacher}
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	weekdays := doc.Weekdays()
	week := &responses.TeacherWeek{
		Teacher: teacher,
		Days:    make([]responses.TeacherAgenda, 0, len(weekdays)),
	}
	for _, weekday := range weekdays {
		week.Days = append(week.Days, responses.TeacherAgenda{
			Day:     weekday,
			Teacher: teacher,
			Entries: AgendaFor(doc, weekday, teacher),
		})
	}
	return week, nil
}

func (uc *scheduleUsecase) Clock(ctx context.Context) *responses.Clock {
	now := uc.clock.Now()
	return &responses.Clock{
		Day:      now.Weekday().String(),
		Time:     FormatClock(now),
		Minutes:  MinutesOf(now),
		Timezone: now.Location().String(),
		Now:      now,
	}
}

func (uc *scheduleUsecase) Health(ctx context.Context) *responses.Health {
	health := &responses.Health{Status: constvars.HealthCheckSuccessMessage}
	if doc := uc.snapshot.Load(); doc != nil {
		loadedAt := doc.LoadedAt
		health.Loaded = true
		health.LoadedAt = &loadedAt
		health.Checksum = doc.Checksum
	}
	return health
}

// Reload fetches and decodes the document and installs it when it decoded
// cleanly. A failed reload keeps the current snapshot; when nothing is loaded
// yet the last good copy from the cache is installed instead and the original
// error is still returned.
func (uc *scheduleUsecase) Reload(ctx context.Context) (*responses.ReloadResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	var result *responses.ReloadResult
	err := utils.LogOperation(uc.Log, "scheduleUsecase.Reload", requestID, func() error {
		raw, err := uc.source.Fetch(ctx)
		if err != nil {
			return err
		}

		doc, warnings, err := DecodeDocument(raw.Body, raw.Origin, uc.clock.Now())
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			uc.Log.Warn("scheduleUsecase.Reload document has unparseable time ranges",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Strings(constvars.LoggingWarningsKey, warnings),
			)
		}

		result = uc.install(doc, warnings)
		if uc.cache != nil && result.Changed {
			if err := uc.cache.SaveLastGood(ctx, raw); err != nil {
				uc.Log.Warn("scheduleUsecase.Reload failed to cache last good document",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}
		return nil
	})
	if err != nil {
		if uc.snapshot.Load() == nil {
			uc.installFromCache(ctx)
		}
		return nil, err
	}
	return result, nil
}

// install swaps in doc unless it is identical to the current snapshot.
func (uc *scheduleUsecase) install(doc *models.TimetableDocument, warnings []string) *responses.ReloadResult {
	previous := uc.snapshot.Load()
	if previous != nil && previous.Checksum == doc.Checksum {
		return &responses.ReloadResult{
			Checksum: previous.Checksum,
			Source:   previous.Source,
			LoadedAt: previous.LoadedAt,
			Changed:  false,
			Warnings: warnings,
		}
	}

	uc.snapshot.Store(doc)
	uc.Log.Info("scheduleUsecase: installed timetable snapshot",
		zap.String(constvars.LoggingSourceKey, doc.Source),
		zap.String(constvars.LoggingChecksumKey, doc.Checksum),
		zap.Strings("weekdays", doc.Weekdays()),
	)
	return &responses.ReloadResult{
		Checksum: doc.Checksum,
		Source:   doc.Source,
		LoadedAt: doc.LoadedAt,
		Changed:  true,
		Warnings: warnings,
	}
}

func (uc *scheduleUsecase) installFromCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := uc.cache.LoadLastGood(ctx)
	if err != nil {
		uc.Log.Warn("scheduleUsecase.installFromCache no last good document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	doc, _, err := DecodeDocument(raw.Body, raw.Origin, uc.clock.Now())
	if err != nil {
		uc.Log.Error("scheduleUsecase.installFromCache cached document is invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	uc.install(doc, nil)
}

// Tick resolves the default policy at the current instant and reports a
// change against the last period seen, which is shared through Redis when it
// is available.
func (uc *scheduleUsecase) Tick(ctx context.Context) (*models.PeriodChangedEvent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doc, err := uc.loadedSnapshot()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	weekday := now.Weekday().String()
	instant := MinutesOf(now)
	current := describeResolution(Resolve(doc, weekday, instant, uc.policy))

	previous := uc.lastSeenPeriod(ctx)
	if previous == current {
		uc.Log.Debug("scheduleUsecase.Tick period unchanged",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPeriodKey, current),
		)
		return nil, nil
	}
	uc.rememberPeriod(ctx, current)

	return &models.PeriodChangedEvent{
		ID:         uuid.NewString(),
		Type:       constvars.EventTypePeriodChanged,
		Day:        weekday,
		Time:       FormatMinutes(instant),
		Previous:   previous,
		Current:    current,
		OccurredAt: now,
	}, nil
}

func (uc *scheduleUsecase) lastSeenPeriod(ctx context.Context) string {
	if uc.redisRepo != nil {
		stored, err := uc.redisRepo.Get(ctx, constvars.RedisKeyTimetableLastPeriod)
		if err == nil && stored == "" {
			return ""
		}
		if err == nil {
			var period string
			if err = json.Unmarshal([]byte(stored), &period); err == nil {
				return period
			}
		}
		uc.Log.Warn("scheduleUsecase.lastSeenPeriod redis unavailable; using local state", zap.Error(err))
	}

	uc.lastPeriodMu.Lock()
	defer uc.lastPeriodMu.Unlock()
	return uc.lastPeriod
}

func (uc *scheduleUsecase) rememberPeriod(ctx context.Context, period string) {
	uc.lastPeriodMu.Lock()
	uc.lastPeriod = period
	uc.lastPeriodMu.Unlock()

	if uc.redisRepo == nil {
		return
	}
	ttl := time.Duration(uc.config.Timetable.LastPeriodKeyTTLInHours) * time.Hour
	if err := uc.redisRepo.Set(ctx, constvars.RedisKeyTimetableLastPeriod, period, ttl); err != nil {
		uc.Log.Warn("scheduleUsecase.rememberPeriod failed to store period", zap.Error(err))
	}
}

func (uc *scheduleUsecase) loadedSnapshot() (*models.TimetableDocument, error) {
	doc := uc.snapshot.Load()
	if doc == nil {
		return nil, exceptions.ErrTimetableNotLoaded(errors.New("no timetable snapshot installed"))
	}
	return doc, nil
}

func (uc *scheduleUsecase) weekdayOrToday(day string, now time.Time) string {
	if day != "" {
		return day
	}
	return now.Weekday().String()
}

// describeResolution is the stable text used to detect period changes.
func describeResolution(resolution models.Resolution) string {
	if resolution.IsEmpty() {
		return constvars.NoActiveSlotMessage
	}
	parts := make([]string, 0, 2)
	if resolution.Active != nil {
		parts = append(parts, describePeriod(*resolution.Active))
	}
	if resolution.Routine != nil {
		parts = append(parts, describePeriod(*resolution.Routine))
	}
	return strings.Join(parts, " | ")
}

func describePeriod(period models.Period) string {
	if label := period.Label(); label != "" {
		return period.Time + " " + label
	}
	return period.Time
}

func documentMetadata(doc *models.TimetableDocument) *responses.DocumentMetadata {
	return &responses.DocumentMetadata{
		Checksum: doc.Checksum,
		Source:   doc.Source,
		LoadedAt: doc.LoadedAt,
	}
}
