package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/facetrack/attendance-backend-go/internal/handler/http"
	mqttHandler "github.com/facetrack/attendance-backend-go/internal/handler/mqtt"
	"github.com/facetrack/attendance-backend-go/internal/pkg/cron"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	mqttpkg "github.com/facetrack/attendance-backend-go/internal/pkg/mqtt"
	"github.com/facetrack/attendance-backend-go/internal/pkg/sse"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
	checkinService "github.com/facetrack/attendance-backend-go/internal/service/checkin"
	departmentService "github.com/facetrack/attendance-backend-go/internal/service/department"
	employeeService "github.com/facetrack/attendance-backend-go/internal/service/employee"
	positionService "github.com/facetrack/attendance-backend-go/internal/service/position"
	reportService "github.com/facetrack/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := newLogger(cfg.App.LogLevel).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)

	hub := sse.NewHub()

	reportSvc := reportService.NewReportService(employeeRepo, checkinRepo, departmentRepo, logger)
	checkinSvc := checkinService.NewCheckinService(checkinRepo, employeeRepo, hub, logger)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo, positionRepo, logger)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, positionRepo)
	positionSvc := positionService.NewPositionService(positionRepo, departmentRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	positionHandler := appHTTP.NewPositionHandler(positionSvc)
	checkinHandler := appHTTP.NewCheckinHandler(checkinSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	mqttClient := mqttpkg.NewClient(mqttpkg.Config{
		BrokerURL: cfg.MQTT.BrokerURL,
		ClientID:  cfg.MQTT.ClientID,
		Username:  cfg.MQTT.Username,
		Password:  cfg.MQTT.Password,
	}, logger)

	ingestor := mqttHandler.NewIngestor(
		mqttClient,
		mqttHandler.Topics{
			Checkin:      cfg.MQTT.TopicCheckin,
			Registration: cfg.MQTT.TopicRegistration,
			Update:       cfg.MQTT.TopicUpdate,
		},
		checkinSvc,
		employeeSvc,
		logger,
	)
	if err := ingestor.Start(); err != nil {
		logger.Error("failed to start mqtt ingestor", "error", err)
		return
	}
	defer ingestor.Stop()

	scheduler := cron.NewScheduler()
	cron.NewSummaryJobs(reportSvc, hub).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		cfg.App.CORSOrigin,
		employeeHandler,
		departmentHandler,
		positionHandler,
		checkinHandler,
		reportHandler,
		eventsHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server started", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
}
