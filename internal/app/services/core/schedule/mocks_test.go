package schedule

import (
	"context"
	"sync"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockDocumentSource struct {
	mock.Mock
}

func (m *MockDocumentSource) Name() string {
	return "mock"
}

func (m *MockDocumentSource) Fetch(ctx context.Context) (*contracts.RawDocument, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(*contracts.RawDocument)
	return raw, args.Error(1)
}

type MockDocumentCache struct {
	mock.Mock
}

func (m *MockDocumentCache) SaveLastGood(ctx context.Context, raw *contracts.RawDocument) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}

func (m *MockDocumentCache) LoadLastGood(ctx context.Context) (*contracts.RawDocument, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(*contracts.RawDocument)
	return raw, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPeriodChanged(ctx context.Context, event models.PeriodChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) Current(ctx context.Context, query requests.CurrentSlotQuery) (*responses.CurrentSlot, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*responses.CurrentSlot)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Day(ctx context.Context, query requests.DayQuery) (*responses.DaySchedule, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*responses.DaySchedule)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Teachers(ctx context.Context, query requests.DayQuery) (*responses.TeacherList, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*responses.TeacherList)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Agenda(ctx context.Context, query requests.TeacherAgendaQuery) (*responses.TeacherAgenda, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(*responses.TeacherAgenda)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Week(ctx context.Context, teacher string) (*responses.TeacherWeek, error) {
	args := m.Called(ctx, teacher)
	result, _ := args.Get(0).(*responses.TeacherWeek)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Clock(ctx context.Context) *responses.Clock {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Clock)
	return result
}

func (m *MockScheduleUsecase) Reload(ctx context.Context) (*responses.ReloadResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.ReloadResult)
	return result, args.Error(1)
}

func (m *MockScheduleUsecase) Health(ctx context.Context) *responses.Health {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Health)
	return result
}

func (m *MockScheduleUsecase) Snapshot() *models.TimetableDocument {
	args := m.Called()
	result, _ := args.Get(0).(*models.TimetableDocument)
	return result
}

func (m *MockScheduleUsecase) Tick(ctx context.Context) (*models.PeriodChangedEvent, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.PeriodChangedEvent)
	return result, args.Error(1)
}

// fixedClock is a settable clock for tests.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}
