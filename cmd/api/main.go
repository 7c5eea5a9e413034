package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/config"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/hris-attendance/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/suggest"
	"github.com/cmlabs-hris/hris-attendance/internal/repository/postgresql"
	redisRepo "github.com/cmlabs-hris/hris-attendance/internal/repository/redis"
	attendanceService "github.com/cmlabs-hris/hris-attendance/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-attendance/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-attendance/internal/service/employee"
	reportService "github.com/cmlabs-hris/hris-attendance/internal/service/report"
	timesheetService "github.com/cmlabs-hris/hris-attendance/internal/service/timesheet"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/text/language"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("error loading timezone: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		return err
	}

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	var markerRepo attendance.ChangeMarkerRepository
	switch cfg.App.ChangeMarkerStore {
	case config.MarkerStoreRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		markerRepo = redisRepo.NewChangeMarkerRepository(rdb)
	default:
		markerRepo = postgresql.NewChangeMarkerRepository(db)
	}
	slog.Info("change marker store selected", "store", cfg.App.ChangeMarkerStore)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	attendanceSvc := attendanceService.NewAttendanceService(transactor, attendanceRepo, employeeRepo, markerRepo, loc)
	timesheetSvc := timesheetService.NewTimesheetService(
		transactor,
		timesheetRepo,
		employeeRepo,
		attendanceSvc,
		suggest.NewLexical(language.English),
		loc,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, loc)
	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService, cfg.Admin.PasswordHash)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:             logger,
		LogLevel:           cfg.SlogLevel(),
		CORSAllowedOrigins: cfg.App.CORSAllowedOrigins,
		LoginRatePerSecond: cfg.Login.RatePerSecond,
		LoginBurst:         cfg.Login.Burst,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(attendanceSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
