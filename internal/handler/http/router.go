package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	corsOrigin string,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	positionHandler PositionHandler,
	checkinHandler CheckinHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Register)
			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.List)
			r.Post("/", departmentHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", departmentHandler.Get)
				r.Put("/", departmentHandler.Update)
				r.Delete("/", departmentHandler.Delete)
			})
		})

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", positionHandler.List)
			r.Post("/", positionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", positionHandler.Get)
				r.Put("/", positionHandler.Update)
				r.Delete("/", positionHandler.Delete)
			})
		})

		r.Route("/checkins", func(r chi.Router) {
			r.Post("/", checkinHandler.RecordScan)
			r.Get("/today", checkinHandler.TodayFeed)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/late", reportHandler.LateToday)
			r.Get("/early-leave", reportHandler.EarlyLeaveToday)
			r.Get("/overtime", reportHandler.OvertimeToday)
			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/statistics", reportHandler.MonthlyStatistics)
				r.Get("/history", reportHandler.History)
			})
		})

		r.Get("/events/stream", eventsHandler.Stream)
	})

	return r
}
