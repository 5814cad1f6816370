package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) GetCurrentSlot(w http.ResponseWriter, r *http.Request) {
	query := requests.CurrentSlotQuery{
		Day:    r.URL.Query().Get(constvars.URLQueryParamDay),
		Time:   r.URL.Query().Get(constvars.URLQueryParamTime),
		Policy: r.URL.Query().Get(constvars.URLQueryParamPolicy),
	}
	utils.SanitizeCurrentSlotQuery(&query)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.RequestTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Current(ctx, query)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCurrentSlotSuccessMessage, result)
}

// GetDaySchedule answers 304 when the client already holds the same day of
// the same document.
func (ctrl *ScheduleController) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	query := requests.DayQuery{Day: pathParam(r, constvars.URLParamDay)}
	utils.SanitizeDayQuery(&query)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.RequestTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Day(ctx, query)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	etag := ""
	if result.Checksum != "" {
		etag = result.Checksum + "-" + result.Day
	}
	utils.BuildCachedSuccessResponse(w, r, etag, constvars.GetDayScheduleSuccessMessage, result)
}

func (ctrl *ScheduleController) GetTeachers(w http.ResponseWriter, r *http.Request) {
	query := requests.DayQuery{Day: r.URL.Query().Get(constvars.URLQueryParamDay)}
	utils.SanitizeDayQuery(&query)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.RequestTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Teachers(ctx, query)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTeachersSuccessMessage, result)
}

func (ctrl *ScheduleController) GetTeacherAgenda(w http.ResponseWriter, r *http.Request) {
	query := requests.TeacherAgendaQuery{
		Day:     r.URL.Query().Get(constvars.URLQueryParamDay),
		Teacher: pathParam(r, constvars.URLParamTeacher),
	}
	utils.SanitizeTeacherAgendaQuery(&query)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.RequestTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Agenda(ctx, query)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTeacherAgendaSuccessMessage, result)
}

func (ctrl *ScheduleController) GetTeacherWeek(w http.ResponseWriter, r *http.Request) {
	query := requests.TeacherAgendaQuery{Teacher: pathParam(r, constvars.URLParamTeacher)}
	utils.SanitizeTeacherAgendaQuery(&query)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.RequestTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Week(ctx, query.Teacher)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTeacherWeekSuccessMessage, result)
}

func (ctrl *ScheduleController) GetClock(w http.ResponseWriter, r *http.Request) {
	result := ctrl.ScheduleUsecase.Clock(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClockSuccessMessage, result)
}

func (ctrl *ScheduleController) ReloadTimetable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.ReloadTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Reload(ctx)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReloadTimetableSuccessMessage, result)
}

func (ctrl *ScheduleController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result := ctrl.ScheduleUsecase.Health(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, result)
}

func (ctrl *ScheduleController) buildError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

// pathParam returns the unescaped chi URL parameter, so teacher names with
// spaces or slashes survive routing.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return value
}
