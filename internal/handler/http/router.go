package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Logger             *slog.Logger
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	LoginRatePerSecond float64
	LoginBurst         int
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Timesheet  TimesheetHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(rate.Limit(cfg.LoginRatePerSecond), cfg.LoginBurst))
			r.Post("/login", h.Auth.Login)
			r.Post("/admin/login", h.Auth.AdminLogin)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			// Employee self-service
			r.Group(func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)
				r.Post("/timesheets", h.Timesheet.Submit)
				r.Post("/timesheets/suggest-project", h.Timesheet.SuggestProject)
				r.Post("/attendance/declarations", h.Attendance.Declare)
				r.Get("/attendance/me", h.Attendance.GetMyAttendance)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
				})
				r.Get("/timesheets", h.Timesheet.ListByDate)
				r.Get("/attendance/today", h.Attendance.GetToday)
				r.Get("/reports/attendance", h.Report.GetMonthlyAttendanceReport)
				r.Get("/dashboard/marker", h.Dashboard.GetChangeMarker)
			})
		})
	})

	return r
}
