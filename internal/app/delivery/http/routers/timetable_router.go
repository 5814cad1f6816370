package routers

import (
	"fmt"
	"net/http"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminLimiter func(http.Handler) http.Handler, scheduleController *controllers.ScheduleController) {
	router.Get("/now", scheduleController.GetCurrentSlot)
	router.Get("/clock", scheduleController.GetClock)
	router.Get(fmt.Sprintf("/days/{%s}", constvars.URLParamDay), scheduleController.GetDaySchedule)
	router.Get("/teachers", scheduleController.GetTeachers)
	router.Get(fmt.Sprintf("/teachers/{%s}/agenda", constvars.URLParamTeacher), scheduleController.GetTeacherAgenda)
	router.Get(fmt.Sprintf("/teachers/{%s}/week", constvars.URLParamTeacher), scheduleController.GetTeacherWeek)
	router.With(adminLimiter, middlewares.RequireAdminAPIKey).Post("/reload", scheduleController.ReloadTimetable)
}
