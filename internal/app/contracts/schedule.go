package contracts

import (
	"context"
	"time"

	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
)

type Clock interface {
	Now() time.Time
}

type ScheduleUsecase interface {
	Current(ctx context.Context, query requests.CurrentSlotQuery) (*responses.CurrentSlot, error)
	Day(ctx context.Context, query requests.DayQuery) (*responses.DaySchedule, error)
	Teachers(ctx context.Context, query requests.DayQuery) (*responses.TeacherList, error)
	Agenda(ctx context.Context, query requests.TeacherAgendaQuery) (*responses.TeacherAgenda, error)
	Week(ctx context.Context, teacher string) (*responses.TeacherWeek, error)
	Clock(ctx context.Context) *responses.Clock
	Reload(ctx context.Context) (*responses.ReloadResult, error)
	Health(ctx context.Context) *responses.Health
	Snapshot() *models.TimetableDocument
	// Tick resolves the period running now and returns an event when it
	// differs from the last one seen, nil otherwise.
	Tick(ctx context.Context) (*models.PeriodChangedEvent, error)
}
