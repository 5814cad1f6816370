package routers

import (
	"strings"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	scheduleController *controllers.ScheduleController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID, constvars.HeaderAPIKey, constvars.HeaderIfNoneMatch},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderETag},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	publicLimiter, adminLimiter := middlewares.CreateRateLimiters()
	router.Use(publicLimiter)

	router.Get("/healthz", scheduleController.HealthCheck)

	endpointPrefix := routePrefix(internalConfig.App.EndpointPrefix)
	versionPrefix := routePrefix(internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/timetable", func(r chi.Router) {
				attachTimetableRoutes(r, middlewares, adminLimiter, scheduleController)
			})
		})
	})
}

// routePrefix turns "api", "/api" or "/api/" into "/api".
func routePrefix(segment string) string {
	return "/" + strings.Trim(segment, "/")
}
