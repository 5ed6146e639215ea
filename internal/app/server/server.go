package server

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"hrapi/internal/domain/employees"
	"hrapi/internal/domain/jobs"
	"hrapi/internal/domain/performance"
	"hrapi/internal/domain/reports"
	"hrapi/internal/domain/vacations"
	"hrapi/internal/platform/config"
	"hrapi/internal/platform/metrics"
	"hrapi/internal/transport/http/api"
	employeeshandler "hrapi/internal/transport/http/handlers/employees"
	jobshandler "hrapi/internal/transport/http/handlers/jobs"
	performancehandler "hrapi/internal/transport/http/handlers/performance"
	reportshandler "hrapi/internal/transport/http/handlers/reports"
	vacationshandler "hrapi/internal/transport/http/handlers/vacations"
	"hrapi/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Logger  zerolog.Logger
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config) *App {
	return newApp(cfg, newLogger(cfg))
}

func newApp(cfg config.Config, logger zerolog.Logger) *App {
	collector := metrics.New()

	employeeStore := employees.NewStore(employees.Seed())
	jobStore := jobs.NewStore(jobs.Seed(), jobs.SeedApplications())
	performanceStore := performance.NewStore(performance.Seed(), performance.SeedPlans())
	vacationStore := vacations.NewStore(vacations.Seed(), vacations.SeedBalances())
	reportsService := reports.NewService(employeeStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	// Auth runs before Logger so the request log carries the subject.
	router.Use(middleware.Auth(cfg.AuthTokenSecret))
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer(logger, cfg.IsDevelopment()))
	router.Use(middleware.SecureHeaders(!cfg.IsDevelopment()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.NotFound(w, "The requested resource was not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.NotFound(w, "The requested resource was not found")
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "HR Performance Management API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"employees":   "/api/v1/employees",
				"jobs":        "/api/v1/jobs",
				"performance": "/api/v1/performance",
				"vacations":   "/api/v1/vacations",
				"reports":     "/api/v1/reports",
			},
		})
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.WriteJSON(w, http.StatusOK, collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		employeeshandler.NewHandler(employeeStore).RegisterRoutes(r)
		jobshandler.NewHandler(jobStore).RegisterRoutes(r)
		performancehandler.NewHandler(performanceStore).RegisterRoutes(r)
		vacationshandler.NewHandler(vacationStore).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: collector,
		Router:  router,
	}
}

func (a *App) Run() error {
	a.Logger.Info().
		Str("addr", a.Config.Addr).
		Str("environment", a.Config.Environment).
		Msg("HR API listening")

	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func newLogger(cfg config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
