package contracts

import (
	"context"

	"timetable-service/internal/app/models"
)

type EventPublisher interface {
	PublishPeriodChanged(ctx context.Context, event models.PeriodChangedEvent) error
}
